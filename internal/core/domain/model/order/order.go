package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// TitleMaxLength is the longest accepted title, in characters.
const TitleMaxLength = 255

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTitleIsRequired is returned for an empty or blank title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// Contact holds the optional customer contact details of an order.
type Contact struct {
	Name  string
	Phone string
}

// Order represents a unit of dispatchable field work. It is the aggregate root
// that owns the lifecycle status and the master assignment.
//
// Order follows these invariants:
//   - id, title, location and createdAt never change after creation
//   - masterID is set exactly while the status requires a master
//   - version starts at 1 and grows by one with every accepted mutation
//   - a terminal order rejects every mutation
type Order struct {
	id          kernel.UUID
	title       string
	description string
	contact     Contact
	location    kernel.GeoPoint
	masterID    *kernel.UUID
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	version     int64

	isConstructed bool
}

// Snapshot is the persisted state of an Order. Repositories use it to
// rebuild aggregates through RestoreOrder.
type Snapshot struct {
	ID          kernel.UUID
	Title       string
	Description string
	Contact     Contact
	Location    kernel.GeoPoint
	MasterID    *kernel.UUID
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int64
}

// NewOrder creates an order in status New with no master and version 1.
// Title and location are validated and all failures are returned joined.
//
// Example:
//
//	location, _ := kernel.NewGeoPoint(41.0, 29.0)
//	o, err := order.NewOrder(kernel.NewUUID(), "Leak repair", "", location, order.Contact{}, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	title string,
	description string,
	location kernel.GeoPoint,
	contact Contact,
	now time.Time,
) (*Order, error) {
	now = now.UTC()
	o := &Order{
		description:   strings.TrimSpace(description),
		contact:       Contact{Name: strings.TrimSpace(contact.Name), Phone: strings.TrimSpace(contact.Phone)},
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTitle(title),
		o.setLocation(location),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from persisted state, re-checking every
// invariant so corrupted rows surface as errors instead of invalid aggregates.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		description:   s.Description,
		contact:       s.Contact,
		createdAt:     s.CreatedAt.UTC(),
		updatedAt:     s.UpdatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setTitle(s.Title),
		o.setLocation(s.Location),
		o.setStatusAndMaster(s.Status, s.MasterID),
		o.setVersion(s.Version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Title returns the order title.
func (o *Order) Title() string {
	return o.title
}

// Description returns the optional free-text description.
func (o *Order) Description() string {
	return o.description
}

// Contact returns the optional customer contact details.
func (o *Order) Contact() Contact {
	return o.contact
}

// Location returns the service location.
func (o *Order) Location() kernel.GeoPoint {
	return o.location
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Master returns a copy of the assigned master's ID, or nil when unassigned.
func (o *Order) Master() *kernel.UUID {
	if o.masterID == nil {
		return nil
	}
	id := *o.masterID
	return &id
}

// CreatedAt returns the creation time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last accepted mutation in UTC.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency version.
func (o *Order) Version() int64 {
	return o.version
}

// Snapshot exports the aggregate state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:          o.id,
		Title:       o.title,
		Description: o.description,
		Contact:     o.contact,
		Location:    o.location,
		MasterID:    o.Master(),
		Status:      o.status,
		CreatedAt:   o.createdAt,
		UpdatedAt:   o.updatedAt,
		Version:     o.version,
	}
}

// ValidateAssign reports whether Assign would be accepted, without side effects.
func (o *Order) ValidateAssign() error {
	_, err := o.status.Assign()
	return err
}

// Assign binds the order to a master and moves it from New to Assigned.
func (o *Order) Assign(masterID kernel.UUID, now time.Time) error {
	if err := masterID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.masterID = &masterID
	o.touch(now)
	return nil
}

// ChangeStatus applies a status change requested by a caller. evidenceCount is
// the number of evidence entries currently in the ledger; completing requires
// at least one. Rejecting releases the master.
func (o *Order) ChangeStatus(target Status, evidenceCount int, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if newStatus == Completed && evidenceCount < 1 {
		return errs.NewPreconditionFailedErrorWithCause(
			"order cannot be completed without evidence",
			fmt.Errorf("order %s has no evidence attached", o.id),
		)
	}

	if newStatus == Rejected {
		o.masterID = nil
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// Start moves an assigned order to InProgress.
func (o *Order) Start(now time.Time) error {
	return o.ChangeStatus(InProgress, 0, now)
}

// Complete moves an in-progress order to Completed when evidence exists.
func (o *Order) Complete(evidenceCount int, now time.Time) error {
	return o.ChangeStatus(Completed, evidenceCount, now)
}

// Reject cancels a non-terminal order.
func (o *Order) Reject(now time.Time) error {
	return o.ChangeStatus(Rejected, 0, now)
}

// RecordEvidence registers that an evidence entry is being attached. It
// checks eligibility and bumps the version so that the attach commits only
// if no concurrent transition happened since the order was loaded.
func (o *Order) RecordEvidence(now time.Time) error {
	if !o.status.CanAcceptEvidence() {
		return errs.NewPreconditionFailedErrorWithCause(
			"evidence can only be attached to assigned or in_progress orders",
			fmt.Errorf("order %s is %s", o.id, o.status),
		)
	}

	o.touch(now)
	return nil
}

// touch records an accepted mutation. updatedAt never moves backwards.
func (o *Order) touch(now time.Time) {
	now = now.UTC()
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleIsRequired
	}
	if n := utf8.RuneCountInString(title); n > TitleMaxLength {
		return errs.NewValueIsOutOfRangeError("title length", n, 1, TitleMaxLength)
	}
	o.title = title
	return nil
}

func (o *Order) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setStatusAndMaster(status Status, masterID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveMaster(masterID != nil); err != nil {
		return err
	}
	if masterID != nil {
		if err := masterID.Validate(); err != nil {
			return err
		}
		id := *masterID
		o.masterID = &id
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is not positive", version))
	}
	o.version = version
	return nil
}
