package commands

import (
	"errors"
	"maps"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAttachAdlCommandIsNotConstructed = errors.New(
	"AttachAdlCommand must be created via NewAttachAdlCommand constructor",
)

// AttachAdlCommand requests that a piece of evidence be appended to an
// order's ledger. Type, url, coordinates and capture time are carried as
// received and validated when the command is handled.
type AttachAdlCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	entryID    kernel.UUID
	mediaType  string
	url        string
	latitude   float64
	longitude  float64
	capturedAt string
	meta       map[string]any

	guard guard.ConstructorGuard
}

// NewAttachAdlCommand creates an attach command. meta is copied.
func NewAttachAdlCommand(
	orderID kernel.UUID,
	entryID kernel.UUID,
	mediaType string,
	url string,
	latitude float64,
	longitude float64,
	capturedAt string,
	meta map[string]any,
) (AttachAdlCommand, error) {
	cmd := AttachAdlCommand{
		mediaType:  mediaType,
		url:        url,
		latitude:   latitude,
		longitude:  longitude,
		capturedAt: capturedAt,
		meta:       maps.Clone(meta),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEntryID(entryID),
	); err != nil {
		return AttachAdlCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachAdlCommand) Validate() error {
	return c.guard.Validate(ErrAttachAdlCommandIsNotConstructed)
}

func (c AttachAdlCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AttachAdlCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c AttachAdlCommand) MediaType() string {
	return c.mediaType
}

func (c AttachAdlCommand) URL() string {
	return c.url
}

// Geo returns the capture coordinates as given.
func (c AttachAdlCommand) Geo() (float64, float64) {
	return c.latitude, c.longitude
}

func (c AttachAdlCommand) CapturedAt() string {
	return c.capturedAt
}

func (c AttachAdlCommand) Meta() map[string]any {
	return maps.Clone(c.meta)
}

func (c *AttachAdlCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachAdlCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}
