package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
)

// CreateMasterCommandHandler registers masters.
type CreateMasterCommandHandler struct {
	uowFactory MasterUoWFactory
}

// NewCreateMasterCommandHandler creates a handler for master registration.
func NewCreateMasterCommandHandler(uowFactory MasterUoWFactory) CreateMasterCommandHandler {
	return CreateMasterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the master data and persists the new master.
func (h CreateMasterCommandHandler) Handle(ctx context.Context, cmd CreateMasterCommand) (*master.Master, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lat, lng := cmd.Location()
	location, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return nil, err
	}

	created, err := master.NewMaster(cmd.MasterID(), cmd.Name(), location)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MasterRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
