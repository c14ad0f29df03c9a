package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMasterCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateMasterCommand("Bob", 41, 29)

	repo := new(MockMasterRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MasterRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*master.Master")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMasterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMasterCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, cmd.MasterID(), created.ID())
	assert.Equal(t, "Bob", created.Name())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateMasterCommandHandler_Handle_InvalidInput(t *testing.T) {
	ctx := t.Context()
	factory := new(MockMasterUoWFactory)
	h := commands.NewCreateMasterCommandHandler(factory)

	_, err := h.Handle(ctx, commands.NewCreateMasterCommand("", 41, 29))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = h.Handle(ctx, commands.NewCreateMasterCommand("Bob", 41, 181))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	factory.AssertNotCalled(t, "Create")
}

func TestCreateMasterCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	repo := new(MockMasterRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MasterRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*master.Master")).Return(errors.New("add error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMasterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMasterCommandHandler(factory)
	_, err := h.Handle(ctx, commands.NewCreateMasterCommand("Bob", 41, 29))
	require.EqualError(t, err, "add error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
