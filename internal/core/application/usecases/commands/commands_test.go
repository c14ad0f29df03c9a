package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "Leak repair", "sink", 41, 29, order.Contact{Name: "Ann"})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	lat, lng := cmd.Location()
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Leak repair", cmd.Title())
	assert.Equal(t, "sink", cmd.Description())
	assert.InDelta(t, 41.0, lat, 0)
	assert.InDelta(t, 29.0, lng, 0)
	assert.Equal(t, "Ann", cmd.Contact().Name)

	_, err = commands.NewCreateOrderCommand(kernel.UUID{}, "Leak repair", "", 41, 29, order.Contact{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAssignMasterCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("without master", func(t *testing.T) {
		cmd, err := commands.NewAssignMasterCommand(orderID, nil)
		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Nil(t, cmd.MasterID())
	})

	t.Run("master id is copied", func(t *testing.T) {
		masterID := kernel.NewUUID()
		cmd, err := commands.NewAssignMasterCommand(orderID, &masterID)
		require.NoError(t, err)

		got := cmd.MasterID()
		require.NotNil(t, got)
		*got = kernel.NewUUID()
		assert.Equal(t, masterID, *cmd.MasterID())
	})

	t.Run("invalid ids", func(t *testing.T) {
		zero := kernel.UUID{}
		_, err := commands.NewAssignMasterCommand(kernel.UUID{}, &zero)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewChangeStatusCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	for _, status := range order.AllStatuses() {
		cmd, err := commands.NewChangeStatusCommand(orderID, status.String())
		require.NoError(t, err)
		assert.Equal(t, status, cmd.Target())
	}

	_, err := commands.NewChangeStatusCommand(orderID, "done")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewChangeStatusCommand(kernel.UUID{}, "rejected")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	complete, err := commands.NewCompleteOrderCommand(orderID)
	require.NoError(t, err)
	assert.Equal(t, order.Completed, complete.Target())

	cancel, err := commands.NewCancelOrderCommand(orderID)
	require.NoError(t, err)
	assert.Equal(t, order.Rejected, cancel.Target())
}

func TestNewAttachAdlCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	entryID := kernel.NewUUID()
	meta := map[string]any{"device": "pixel"}

	cmd, err := commands.NewAttachAdlCommand(orderID, entryID, "photo", "https://x/1.jpg", 41, 29, "2024-01-01T10:00:00Z", meta)
	require.NoError(t, err)

	meta["device"] = "changed"
	assert.Equal(t, map[string]any{"device": "pixel"}, cmd.Meta())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, entryID, cmd.EntryID())
	assert.Equal(t, "photo", cmd.MediaType())
	assert.Equal(t, "https://x/1.jpg", cmd.URL())
	assert.Equal(t, "2024-01-01T10:00:00Z", cmd.CapturedAt())

	_, err = commands.NewAttachAdlCommand(kernel.UUID{}, kernel.UUID{}, "photo", "u", 0, 0, "", nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateMasterCommand(t *testing.T) {
	cmd := commands.NewCreateMasterCommand("Bob", 41, 29)
	require.NoError(t, cmd.Validate())
	require.NoError(t, cmd.MasterID().Validate())
	assert.Equal(t, "Bob", cmd.Name())

	require.ErrorIs(t, commands.CreateMasterCommand{}.Validate(), commands.ErrCreateMasterCommandIsNotConstructed)
}
