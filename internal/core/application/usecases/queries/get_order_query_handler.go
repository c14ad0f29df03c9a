package queries

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// GetOrderQueryHandler builds the order projection from the order store, the
// master repository and the evidence ledger.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle returns the projection or an errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetOrderQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{Order: o.Snapshot()}

	if masterID := o.Master(); masterID != nil {
		resp.Master, err = h.summarize(ctx, uow.MasterRepository(), *masterID)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	entries, err := uow.AdlLedger().ListByOrder(ctx, o.ID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	adl.SortByCapturedAt(entries)

	resp.Adl = make([]adl.Snapshot, 0, len(entries))
	for _, entry := range entries {
		resp.Adl = append(resp.Adl, entry.Snapshot())
	}

	return resp, nil
}

func (h GetOrderQueryHandler) summarize(
	ctx context.Context,
	repo ports.MasterRepository,
	id kernel.UUID,
) (*MasterSummary, error) {
	m, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // an unknown master renders as no master
	}
	if err != nil {
		return nil, err
	}

	return &MasterSummary{ID: m.ID(), Name: m.Name()}, nil
}
