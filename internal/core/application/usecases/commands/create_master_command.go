package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateMasterCommandIsNotConstructed = errors.New(
	"CreateMasterCommand must be created via NewCreateMasterCommand constructor",
)

// CreateMasterCommand represents a request to register a new master.
//
// Example:
//
//	cmd := NewCreateMasterCommand("Mehmet", 41.01, 28.97)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("invalid master data: %w", err)
//	}
type CreateMasterCommand struct { //nolint:recvcheck //using for validation
	masterID  kernel.UUID
	name      string
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

// NewCreateMasterCommand creates a command to register a new master.
// Automatically generates a unique ID for the master.
func NewCreateMasterCommand(name string, latitude, longitude float64) CreateMasterCommand {
	return CreateMasterCommand{
		masterID:  kernel.NewUUID(),
		name:      name,
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateMasterCommand) Validate() error {
	return c.guard.Validate(ErrCreateMasterCommandIsNotConstructed)
}

// MasterID returns the generated master ID.
func (c CreateMasterCommand) MasterID() kernel.UUID {
	return c.masterID
}

func (c CreateMasterCommand) Name() string {
	return c.name
}

// Location returns the requested base coordinates as given.
func (c CreateMasterCommand) Location() (float64, float64) {
	return c.latitude, c.longitude
}
