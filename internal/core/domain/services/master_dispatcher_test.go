package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/master"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func newOrderAt(t *testing.T, lat, lng float64) *order.Order {
	t.Helper()
	location, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "Leak repair", "", location, order.Contact{}, now)
	require.NoError(t, err)
	return o
}

func newMasterAt(t *testing.T, name string, lat, lng float64) *master.Master {
	t.Helper()
	location, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	m, err := master.NewMaster(kernel.NewUUID(), name, location)
	require.NoError(t, err)
	return m
}

func TestMasterDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewMasterDispatcher()

	t.Run("should dispatch order to nearest master", func(t *testing.T) {
		o := newOrderAt(t, 41.0, 29.0)
		far := newMasterAt(t, "Far", 39.9, 32.8)
		near := newMasterAt(t, "Near", 41.01, 29.01)
		middle := newMasterAt(t, "Middle", 40.5, 29.5)

		result, err := dispatcher.Dispatch(o, []*master.Master{far, near, middle}, now)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(near))
		assert.Equal(t, order.Assigned, o.Status())
		assert.True(t, o.Master().IsEqual(near.ID()))
	})

	t.Run("should keep first candidate on equal distance", func(t *testing.T) {
		o := newOrderAt(t, 0, 0)
		east := newMasterAt(t, "East", 0, 1)
		west := newMasterAt(t, "West", 0, -1)

		result, err := dispatcher.Dispatch(o, []*master.Master{east, west}, now)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(east))
	})

	t.Run("should handle master at the order location", func(t *testing.T) {
		o := newOrderAt(t, 41.0, 29.0)
		same := newMasterAt(t, "Same", 41.0, 29.0)

		result, err := dispatcher.Dispatch(o, []*master.Master{same}, now)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(same))
	})

	t.Run("should return precondition error when no candidates", func(t *testing.T) {
		for _, candidates := range [][]*master.Master{nil, {}} {
			o := newOrderAt(t, 41.0, 29.0)

			result, err := dispatcher.Dispatch(o, candidates, now)

			require.ErrorIs(t, err, services.ErrNoFreeMaster)
			require.ErrorIs(t, err, errs.ErrPreconditionFailed)
			assert.Nil(t, result)
			assert.Equal(t, order.New, o.Status())
			assert.Equal(t, int64(1), o.Version())
		}
	})

	t.Run("should return error when order is invalid", func(t *testing.T) {
		var invalidOrder *order.Order

		result, err := dispatcher.Dispatch(invalidOrder, []*master.Master{newMasterAt(t, "A", 0, 0)}, now)

		assert.Nil(t, result)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should return invalid transition when order is already assigned", func(t *testing.T) {
		o := newOrderAt(t, 41.0, 29.0)
		first := newMasterAt(t, "First", 41.0, 29.0)
		require.NoError(t, o.Assign(first.ID(), now))

		result, err := dispatcher.Dispatch(o, []*master.Master{newMasterAt(t, "Second", 41.0, 29.0)}, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, result)
		assert.True(t, o.Master().IsEqual(first.ID()))
	})

	t.Run("should return error on invalid candidate", func(t *testing.T) {
		o := newOrderAt(t, 41.0, 29.0)
		var invalid master.Master

		result, err := dispatcher.Dispatch(o, []*master.Master{newMasterAt(t, "A", 0, 0), &invalid}, now)

		require.ErrorIs(t, err, master.ErrMasterIsNotConstructed)
		assert.Nil(t, result)
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("should return error on nil candidate", func(t *testing.T) {
		o := newOrderAt(t, 41.0, 29.0)

		_, err := dispatcher.Dispatch(o, []*master.Master{nil}, now)

		require.ErrorIs(t, err, master.ErrMasterIsNotConstructed)
	})
}
