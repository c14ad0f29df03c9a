package master

import (
	"errors"
	"strings"
	"unicode/utf8"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// NameMaxLength is the longest accepted master name, in characters.
const NameMaxLength = 255

var (
	// ErrNameIsRequired is returned when attempting to create a master without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMasterIsNotConstructed is returned when using an improperly initialized Master.
	ErrMasterIsNotConstructed = errors.New("Master must be created via NewMaster constructor")
)

// Master is a field worker that can be assigned to orders.
//
// Business rules:
//   - Master must have a valid UUID and a non-empty name
//   - Location is the master's base, used to rank candidates for automatic assignment
type Master struct {
	id       kernel.UUID
	name     string
	location kernel.GeoPoint
	guard    guard.ConstructorGuard
}

// NewMaster creates a new Master. All parameters are validated and failures
// are returned joined.
func NewMaster(id kernel.UUID, name string, location kernel.GeoPoint) (*Master, error) {
	m := &Master{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setLocation(location),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMaster reconstructs a Master from persistent storage.
func RestoreMaster(id kernel.UUID, name string, location kernel.GeoPoint) (*Master, error) {
	return NewMaster(id, name, location)
}

// IsEqual compares two masters by identity.
func (m *Master) IsEqual(other *Master) bool {
	if other == nil {
		return false
	}
	return m.id.IsEqual(other.id)
}

// Validate checks that the Master was built by NewMaster or RestoreMaster.
func (m *Master) Validate() error {
	if m == nil {
		return ErrMasterIsNotConstructed
	}
	return m.guard.Validate(ErrMasterIsNotConstructed)
}

// ID returns the master's unique identifier.
func (m *Master) ID() kernel.UUID {
	return m.id
}

// Name returns the display name of the master.
func (m *Master) Name() string {
	return m.name
}

// Location returns the master's base location.
func (m *Master) Location() kernel.GeoPoint {
	return m.location
}

// DistanceTo returns the great-circle distance in meters from the master's
// base to target.
func (m *Master) DistanceTo(target kernel.GeoPoint) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m.location.DistanceMeters(target)
}

func (m *Master) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Master) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	if n := utf8.RuneCountInString(name); n > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, NameMaxLength)
	}
	m.name = name
	return nil
}

func (m *Master) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	m.location = location
	return nil
}
