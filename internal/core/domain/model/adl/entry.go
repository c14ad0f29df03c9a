package adl

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry was not created via NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("ADL entry must be created via NewEntry constructor")
	// ErrURLIsRequired is returned for an empty media reference.
	ErrURLIsRequired = errs.NewValueIsRequiredError("url")
)

// Entry is a single piece of evidence attached to an order.
//
// Entries are immutable: once appended to the ledger they cannot be edited,
// removed or moved to another order.
type Entry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	mediaType  MediaType
	url        string
	geo        kernel.GeoPoint
	capturedAt time.Time
	meta       map[string]any
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// Snapshot is the persisted state of an Entry.
type Snapshot struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Type       MediaType
	URL        string
	Geo        kernel.GeoPoint
	CapturedAt time.Time
	Meta       map[string]any
	CreatedAt  time.Time
}

// NewEntry validates and creates an entry ingested at ingestedAt.
//
// capturedAt may not be later than ingestedAt plus skew: evidence cannot be
// captured in the future. A zero skew means no device clock tolerance.
// meta is copied; the caller keeps ownership of the passed map.
func NewEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	mediaType MediaType,
	url string,
	geo kernel.GeoPoint,
	capturedAt time.Time,
	meta map[string]any,
	ingestedAt time.Time,
	skew time.Duration,
) (*Entry, error) {
	e := &Entry{
		meta:      maps.Clone(meta),
		createdAt: ingestedAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setMediaType(mediaType),
		e.setURL(url),
		e.setGeo(geo),
		e.setCapturedAt(capturedAt, ingestedAt.Add(skew)),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry rebuilds an Entry from persisted state. The capture time is
// not re-checked against the clock.
func RestoreEntry(s Snapshot) (*Entry, error) {
	e := &Entry{
		capturedAt: s.CapturedAt.UTC(),
		meta:       maps.Clone(s.Meta),
		createdAt:  s.CreatedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(s.ID),
		e.setOrderID(s.OrderID),
		e.setMediaType(s.Type),
		e.setURL(s.URL),
		e.setGeo(s.Geo),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the owning order.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

func (e *Entry) Type() MediaType {
	return e.mediaType
}

func (e *Entry) URL() string {
	return e.url
}

// Geo returns where the evidence was captured.
func (e *Entry) Geo() kernel.GeoPoint {
	return e.geo
}

// CapturedAt returns the device capture time in UTC.
func (e *Entry) CapturedAt() time.Time {
	return e.capturedAt
}

// Meta returns a copy of the annotation map. It is nil when no annotations were given.
func (e *Entry) Meta() map[string]any {
	return maps.Clone(e.meta)
}

// CreatedAt returns the ingestion time in UTC.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// Snapshot exports the entry state for persistence.
func (e *Entry) Snapshot() Snapshot {
	return Snapshot{
		ID:         e.id,
		OrderID:    e.orderID,
		Type:       e.mediaType,
		URL:        e.url,
		Geo:        e.geo,
		CapturedAt: e.capturedAt,
		Meta:       e.Meta(),
		CreatedAt:  e.createdAt,
	}
}

// SortByCapturedAt orders entries by capture time. The sort is stable, so
// entries captured at the same instant keep their ledger (arrival) order.
func SortByCapturedAt(entries []*Entry) {
	slices.SortStableFunc(entries, func(a, b *Entry) int {
		return a.capturedAt.Compare(b.capturedAt)
	})
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	e.orderID = orderID
	return nil
}

func (e *Entry) setMediaType(t MediaType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	e.mediaType = t
	return nil
}

func (e *Entry) setURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrURLIsRequired
	}
	e.url = url
	return nil
}

func (e *Entry) setGeo(geo kernel.GeoPoint) error {
	if err := geo.Validate(); err != nil {
		return err
	}
	e.geo = geo
	return nil
}

func (e *Entry) setCapturedAt(capturedAt, latest time.Time) error {
	if capturedAt.IsZero() {
		return errs.NewValueIsRequiredError("capturedAt")
	}
	if capturedAt.After(latest) {
		return errs.NewValueIsInvalidErrorWithCause(
			"capturedAt",
			fmt.Errorf("%s is later than ingestion time %s",
				capturedAt.UTC().Format(time.RFC3339), latest.UTC().Format(time.RFC3339)),
		)
	}
	e.capturedAt = capturedAt.UTC()
	return nil
}
