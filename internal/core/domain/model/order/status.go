package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The zero value Unknown
// is invalid and helps catch uninitialized values.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// New is the initial status; the order waits for a master.
	New

	// Assigned means a master has been chosen but work has not started.
	Assigned

	// InProgress means the master is working on the order.
	InProgress

	// Completed is terminal: the work was done and evidenced.
	Completed

	// Rejected is terminal: the order was cancelled before completion.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		New:        "new",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
		Rejected:   "rejected",
	}
}

// getStatusTransitions lists, per status, the targets reachable through a
// status change. Assignment (new -> assigned) is a separate operation
// because it also binds a master.
func getStatusTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing transitions
	return map[Status][]Status{
		New:        {Rejected},
		Assigned:   {InProgress, Rejected},
		InProgress: {Completed, Rejected},
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{New, Assigned, InProgress, Completed, Rejected}
}

// ParseStatus converts the wire representation ("new", "in_progress", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the five lifecycle statuses.
func (s Status) Validate() error {
	if s < New || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// CanAcceptEvidence reports whether evidence may be attached in this status.
func (s Status) CanAcceptEvidence() bool {
	return s == Assigned || s == InProgress
}

// RequiresMaster reports whether an order in this status must reference a master.
func (s Status) RequiresMaster() bool {
	return s == Assigned || s == InProgress || s == Completed
}

// ValidateCanHaveMaster checks the consistency between the status and the
// presence of a master reference.
func (s Status) ValidateCanHaveMaster(hasMaster bool) error {
	if hasMaster && !s.RequiresMaster() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a master", s),
		)
	}

	if !hasMaster && s.RequiresMaster() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no master", s),
		)
	}

	return nil
}

// Assign returns Assigned when s is New and an invalid transition otherwise.
func (s Status) Assign() (Status, error) {
	if s != New {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Assigned.String())
	}
	return Assigned, nil
}

// TransitionTo returns target when the state machine allows s -> target.
// No-op transitions are rejected: every accepted call moves the order forward.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	for _, allowed := range getStatusTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}

	return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
}
