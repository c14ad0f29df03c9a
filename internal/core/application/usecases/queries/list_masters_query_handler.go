package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

type ListMastersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListMastersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListMastersQueryHandler {
	return ListMastersQueryHandler{uowFactory: uowFactory}
}

// Handle returns the masters ordered by name.
func (h ListMastersQueryHandler) Handle(ctx context.Context, query ListMastersQuery) ([]ListMastersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	masters, err := h.uowFactory.Create().MasterRepository().List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ListMastersQueryResponse, 0, len(masters))
	for _, m := range masters {
		resp = append(resp, ListMastersQueryResponse{
			ID:       m.ID(),
			Name:     m.Name(),
			Location: m.Location(),
		})
	}

	return resp, nil
}
