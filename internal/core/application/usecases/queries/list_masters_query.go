package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrListMastersQueryIsNotConstructed = errors.New(
	"ListMastersQuery must be created via NewListMastersQuery constructor",
)

// ListMastersQuery retrieves every registered master.
type ListMastersQuery struct {
	guard guard.ConstructorGuard
}

func NewListMastersQuery() ListMastersQuery {
	return ListMastersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListMastersQuery) Validate() error {
	return q.guard.Validate(ErrListMastersQueryIsNotConstructed)
}

// ListMastersQueryResponse is the roster entry of a master.
type ListMastersQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Location kernel.GeoPoint
}
