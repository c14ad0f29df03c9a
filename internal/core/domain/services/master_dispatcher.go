package services

import (
	"math"
	"time"

	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ErrNoFreeMaster is returned when no candidate master can take the order.
var ErrNoFreeMaster = errs.NewPreconditionFailedError("no free master is available")

// MasterDispatcher is a domain service that assigns an order to the master
// whose base is closest to the order location.
//
// The caller is responsible for passing only free masters. Ties are broken by
// candidate order, so the result is deterministic for a given input.
//
// Example usage:
//
//	dispatcher := services.NewMasterDispatcher()
//	chosen, err := dispatcher.Dispatch(o, freeMasters, time.Now())
//	if errors.Is(err, services.ErrNoFreeMaster) {
//	    // Leave the order in status new
//	    return
//	}
type MasterDispatcher struct{}

// NewMasterDispatcher creates a new MasterDispatcher instance.
func NewMasterDispatcher() MasterDispatcher {
	return MasterDispatcher{}
}

// Dispatch selects the nearest master among candidates and assigns the order
// to it. On failure the order is left unchanged.
func (d MasterDispatcher) Dispatch(o *order.Order, candidates []*master.Master, now time.Time) (*master.Master, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	best, err := d.findNearestMaster(o, candidates)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID(), now); err != nil {
		return nil, err
	}

	return best, nil
}

func (d MasterDispatcher) findNearestMaster(o *order.Order, candidates []*master.Master) (*master.Master, error) {
	var (
		best         *master.Master
		bestDistance = math.MaxFloat64
	)

	for _, m := range candidates {
		if err := m.Validate(); err != nil {
			return nil, err
		}

		distance, err := m.DistanceTo(o.Location())
		if err != nil {
			return nil, err
		}

		if distance < bestDistance {
			bestDistance = distance
			best = m
		}
	}

	if best == nil {
		return nil, ErrNoFreeMaster
	}

	return best, nil
}
