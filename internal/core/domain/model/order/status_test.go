package order_test

import (
	"fmt"
	"slices"
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.New))
		assert.Equal(t, 2, int(order.Assigned))
		assert.Equal(t, 3, int(order.InProgress))
		assert.Equal(t, 4, int(order.Completed))
		assert.Equal(t, 5, int(order.Rejected))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_StringAndParse(t *testing.T) {
	expected := map[order.Status]string{
		order.New:        "new",
		order.Assigned:   "assigned",
		order.InProgress: "in_progress",
		order.Completed:  "completed",
		order.Rejected:   "rejected",
	}

	for status, name := range expected {
		assert.Equal(t, name, status.String())

		parsed, err := order.ParseStatus(name)
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	assert.Equal(t, "unknown", order.Status(42).String())

	for _, bad := range []string{"", "unknown", "NEW", "done"} {
		_, err := order.ParseStatus(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}

func TestStatus_Predicates(t *testing.T) {
	tests := []struct {
		status         order.Status
		terminal       bool
		acceptEvidence bool
		requiresMaster bool
	}{
		{order.New, false, false, false},
		{order.Assigned, false, true, true},
		{order.InProgress, false, true, true},
		{order.Completed, true, false, true},
		{order.Rejected, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.acceptEvidence, tt.status.CanAcceptEvidence())
			assert.Equal(t, tt.requiresMaster, tt.status.RequiresMaster())
		})
	}
}

func TestStatus_ValidateCanHaveMaster(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			if status.RequiresMaster() {
				require.NoError(t, status.ValidateCanHaveMaster(true))
				require.Error(t, status.ValidateCanHaveMaster(false))
				return
			}
			require.NoError(t, status.ValidateCanHaveMaster(false))
			require.Error(t, status.ValidateCanHaveMaster(true))
		})
	}
}

func TestStatus_Assign(t *testing.T) {
	t.Run("should assign from new", func(t *testing.T) {
		next, err := order.New.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)
	})

	t.Run("should reject assignment from every other status", func(t *testing.T) {
		for _, status := range []order.Status{order.Assigned, order.InProgress, order.Completed, order.Rejected} {
			next, err := status.Assign()

			require.ErrorIs(t, err, errs.ErrInvalidTransition, status.String())
			assert.Equal(t, order.Unknown, next)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.New:        {order.Rejected},
		order.Assigned:   {order.InProgress, order.Rejected},
		order.InProgress: {order.Completed, order.Rejected},
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if slices.Contains(allowed[from], to) {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					return
				}

				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, order.Unknown, next)
			})
		}
	}

	t.Run("should reject invalid target", func(t *testing.T) {
		_, err := order.New.TransitionTo(order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
