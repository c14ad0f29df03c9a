package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAttachCommand(t *testing.T, orderID kernel.UUID, mediaType, capturedAt string, lat float64) commands.AttachAdlCommand {
	t.Helper()
	cmd, err := commands.NewAttachAdlCommand(
		orderID, kernel.NewUUID(), mediaType, "https://x/1.jpg", lat, 29, capturedAt, map[string]any{"device": "pixel"},
	)
	require.NoError(t, err)
	return cmd
}

func TestAttachAdlCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	require.NoError(t, o.Assign(kernel.NewUUID(), fixedNow))
	cmd := newAttachCommand(t, o.ID(), "photo", "2024-01-01T10:00:00Z", 41)

	orderRepo := new(MockOrderRepository)
	ledger := new(MockAdlLedger)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("AdlLedger").Return(ledger).Once(),
		ledger.On("Append", ctx, mock.AnythingOfType("*adl.Entry")).Return(cmd.EntryID(), nil).Once(),
		orderRepo.On("Save", ctx, o, int64(2)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachAdlCommandHandler(factory, fixedClock, 0)
	entry, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, cmd.EntryID(), entry.ID())
	assert.Equal(t, o.ID(), entry.OrderID())
	assert.Equal(t, adl.Photo, entry.Type())
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), entry.CapturedAt())
	assert.Equal(t, fixedNow, entry.CreatedAt())
	assert.Equal(t, map[string]any{"device": "pixel"}, entry.Meta())
	assert.Equal(t, int64(3), o.Version())
	orderRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAttachAdlCommandHandler_Handle_InvalidInput(t *testing.T) {
	ctx := t.Context()

	tests := []struct {
		name       string
		mediaType  string
		capturedAt string
		lat        float64
		expected   error
	}{
		{name: "unknown media type", mediaType: "audio", capturedAt: "2024-01-01T10:00:00Z", lat: 41, expected: errs.ErrValueIsInvalid},
		{name: "geo out of range", mediaType: "photo", capturedAt: "2024-01-01T10:00:00Z", lat: 91, expected: errs.ErrValueIsOutOfRange},
		{name: "unparsable capture time", mediaType: "video", capturedAt: "yesterday", lat: 41, expected: errs.ErrValueIsInvalid},
		{name: "capture time in the future", mediaType: "photo", capturedAt: "2024-01-01T12:00:01Z", lat: 41, expected: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrder(t)
			require.NoError(t, o.Assign(kernel.NewUUID(), fixedNow))
			cmd := newAttachCommand(t, o.ID(), tt.mediaType, tt.capturedAt, tt.lat)

			orderRepo := new(MockOrderRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(orderRepo).Once()
			orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			factory := new(MockLifecycleUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewAttachAdlCommandHandler(factory, fixedClock, 0)
			_, err := h.Handle(ctx, cmd)
			require.ErrorIs(t, err, tt.expected)
			uow.AssertNotCalled(t, "AdlLedger")
			uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}

func TestAttachAdlCommandHandler_Handle_SkewToleratesDeviceClock(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	require.NoError(t, o.Assign(kernel.NewUUID(), fixedNow))
	cmd := newAttachCommand(t, o.ID(), "photo", "2024-01-01T12:00:30Z", 41)

	orderRepo := new(MockOrderRepository)
	ledger := new(MockAdlLedger)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("AdlLedger").Return(ledger).Once()
	ledger.On("Append", ctx, mock.AnythingOfType("*adl.Entry")).Return(cmd.EntryID(), nil).Once()
	orderRepo.On("Save", ctx, o, int64(2)).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachAdlCommandHandler(factory, fixedClock, time.Minute)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertExpectations(t)
}

func TestAttachAdlCommandHandler_Handle_NewOrderRejectsEvidence(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t)
	cmd := newAttachCommand(t, o.ID(), "photo", "2024-01-01T10:00:00Z", 41)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachAdlCommandHandler(factory, fixedClock, 0)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, int64(1), o.Version())
	uow.AssertNotCalled(t, "AdlLedger")
}
