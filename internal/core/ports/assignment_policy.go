package ports

import (
	"time"

	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"
)

// AssignmentPolicy picks a master among candidates and assigns the order to
// it. It must leave the order unchanged on failure and return an error
// matching errs.ErrPreconditionFailed when no candidate fits.
type AssignmentPolicy interface {
	Dispatch(o *order.Order, candidates []*master.Master, now time.Time) (*master.Master, error)
}
