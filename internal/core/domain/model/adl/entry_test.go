package adl_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/adl"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ingestedAt = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func validGeo(t *testing.T) kernel.GeoPoint {
	t.Helper()
	geo, err := kernel.NewGeoPoint(41.0, 29.0)
	require.NoError(t, err)
	return geo
}

func newEntry(t *testing.T, capturedAt time.Time) *adl.Entry {
	t.Helper()
	e, err := adl.NewEntry(kernel.NewUUID(), kernel.NewUUID(), adl.Photo, "https://x/1.jpg",
		validGeo(t), capturedAt, nil, ingestedAt, 0)
	require.NoError(t, err)
	return e
}

func TestNewEntry(t *testing.T) {
	geo := validGeo(t)

	t.Run("should create entry", func(t *testing.T) {
		id, orderID := kernel.NewUUID(), kernel.NewUUID()
		capturedAt := ingestedAt.Add(-2 * time.Hour)
		meta := map[string]any{"note": "before", "floor": float64(3)}

		e, err := adl.NewEntry(id, orderID, adl.Video, " https://x/1.mp4 ", geo, capturedAt, meta, ingestedAt, 0)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(id))
		assert.True(t, e.OrderID().IsEqual(orderID))
		assert.Equal(t, adl.Video, e.Type())
		assert.Equal(t, "https://x/1.mp4", e.URL())
		assert.Equal(t, geo, e.Geo())
		assert.Equal(t, capturedAt, e.CapturedAt())
		assert.Equal(t, ingestedAt, e.CreatedAt())
		assert.Equal(t, meta, e.Meta())
	})

	t.Run("should copy meta", func(t *testing.T) {
		meta := map[string]any{"note": "before"}

		e, err := adl.NewEntry(kernel.NewUUID(), kernel.NewUUID(), adl.Photo, "u", geo, ingestedAt, meta, ingestedAt, 0)
		require.NoError(t, err)

		meta["note"] = "changed"
		e.Meta()["note"] = "changed again"

		assert.Equal(t, "before", e.Meta()["note"])
	})

	t.Run("should accept capture at ingestion time", func(t *testing.T) {
		_, err := adl.NewEntry(kernel.NewUUID(), kernel.NewUUID(), adl.Photo, "u", geo, ingestedAt, nil, ingestedAt, 0)

		require.NoError(t, err)
	})

	t.Run("should reject capture in the future", func(t *testing.T) {
		_, err := adl.NewEntry(kernel.NewUUID(), kernel.NewUUID(), adl.Photo, "u", geo,
			ingestedAt.Add(time.Second), nil, ingestedAt, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should honor skew tolerance", func(t *testing.T) {
		_, err := adl.NewEntry(kernel.NewUUID(), kernel.NewUUID(), adl.Photo, "u", geo,
			ingestedAt.Add(30*time.Second), nil, ingestedAt, time.Minute)

		require.NoError(t, err)
	})

	t.Run("should reject empty url", func(t *testing.T) {
		_, err := adl.NewEntry(kernel.NewUUID(), kernel.NewUUID(), adl.Photo, "   ", geo, ingestedAt, nil, ingestedAt, 0)

		require.ErrorIs(t, err, adl.ErrURLIsRequired)
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		_, err := adl.NewEntry(kernel.UUID{}, kernel.UUID{}, "audio", "", kernel.GeoPoint{}, time.Time{}, nil, ingestedAt, 0)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, adl.ErrURLIsRequired)
		require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreEntry(t *testing.T) {
	original := newEntry(t, ingestedAt.Add(-time.Minute))

	restored, err := adl.RestoreEntry(original.Snapshot())

	require.NoError(t, err)
	assert.Equal(t, original.Snapshot(), restored.Snapshot())

	t.Run("should not re-check capture time against the clock", func(t *testing.T) {
		s := original.Snapshot()
		s.CapturedAt = s.CreatedAt.Add(time.Hour)

		_, err := adl.RestoreEntry(s)

		require.NoError(t, err)
	})

	t.Run("should reject invalid type", func(t *testing.T) {
		s := original.Snapshot()
		s.Type = "audio"

		_, err := adl.RestoreEntry(s)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestEntry_Validate(t *testing.T) {
	var nilEntry *adl.Entry
	assert.Equal(t, adl.ErrEntryIsNotConstructed, nilEntry.Validate())

	var zero adl.Entry
	assert.Equal(t, adl.ErrEntryIsNotConstructed, zero.Validate())
}

func TestSortByCapturedAt(t *testing.T) {
	late := newEntry(t, ingestedAt.Add(-time.Minute))
	earlyFirst := newEntry(t, ingestedAt.Add(-time.Hour))
	earlySecond := newEntry(t, ingestedAt.Add(-time.Hour))

	entries := []*adl.Entry{late, earlyFirst, earlySecond}
	adl.SortByCapturedAt(entries)

	assert.Same(t, earlyFirst, entries[0])
	assert.Same(t, earlySecond, entries[1])
	assert.Same(t, late, entries[2])
}
