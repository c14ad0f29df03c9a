package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
)

// AttachAdlCommandHandler appends evidence to an order's ledger.
//
// The attach is a version-checked read-modify-write on the order: the order
// version is bumped and saved in the same transaction as the ledger append.
// Evidence therefore never lands on an order that was concurrently completed
// or rejected; the losing side gets a VersionConflictError.
type AttachAdlCommandHandler struct {
	uowFactory LifecycleUoWFactory
	clock      Clock
	skew       time.Duration
}

// NewAttachAdlCommandHandler creates a handler for evidence attachment.
// skew is the tolerated device clock drift for capture times; zero means none.
func NewAttachAdlCommandHandler(uowFactory LifecycleUoWFactory, clock Clock, skew time.Duration) AttachAdlCommandHandler {
	return AttachAdlCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		skew:       skew,
	}
}

// Handle validates the evidence, checks that the order accepts evidence, and
// appends the entry. The ledger is unchanged on any failure.
func (h AttachAdlCommandHandler) Handle(ctx context.Context, cmd AttachAdlCommand) (*adl.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.clock()
	entry, err := h.buildEntry(cmd, now)
	if err != nil {
		return nil, err
	}

	expectedVersion := o.Version()
	if err = o.RecordEvidence(now); err != nil {
		return nil, err
	}

	if _, err = uow.AdlLedger().Append(ctx, entry); err != nil {
		return nil, err
	}

	if err = orderRepo.Save(ctx, o, expectedVersion); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

func (h AttachAdlCommandHandler) buildEntry(cmd AttachAdlCommand, now time.Time) (*adl.Entry, error) {
	mediaType, typeErr := adl.ParseMediaType(cmd.MediaType())
	lat, lng := cmd.Geo()
	geo, geoErr := kernel.NewGeoPoint(lat, lng)
	capturedAt, capturedAtErr := adl.ParseCapturedAt(cmd.CapturedAt())
	if err := errors.Join(typeErr, geoErr, capturedAtErr); err != nil {
		return nil, err
	}

	return adl.NewEntry(
		cmd.EntryID(),
		cmd.OrderID(),
		mediaType,
		cmd.URL(),
		geo,
		capturedAt,
		cmd.Meta(),
		now,
		h.skew,
	)
}
