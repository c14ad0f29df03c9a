package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	orderID := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", orderID)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, orderID, err.ID)
		assert.Equal(t, "object not found: "+orderID, err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("row deleted")
		err := errs.NewObjectNotFoundErrorWithCause("master", orderID, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: master, ID is: "+orderID+" (cause: row deleted)",
			err.Error())
	})
}

func TestInputErrors(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("type"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: type",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("capturedAt", errors.New("not RFC 3339")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: capturedAt (cause: not RFC 3339)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("title"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: title",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("url", errors.New("blank")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: url (cause: blank)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 91.5 is latitude, min value is -90, max value is 90",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("longitude", -181, -180, 180, errors.New("bad fix")),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -181 is longitude, min value is -180, max value is 180 (cause: bad fix)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}

	t.Run("out of range keeps messages on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("title", "Fix\nleak", 1, 255)
		assert.Contains(t, err.Error(), "Fix leak")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("version")

		assert.Equal(t, "version", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: version", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 is not positive")
		err := errs.NewVersionIsInvalidErrorWithCause("version", cause)

		assert.Equal(t, "version", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: version (cause: 0 is not positive)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("completed", "rejected")

		assert.Equal(t, "completed", err.From)
		assert.Equal(t, "rejected", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: completed -> rejected", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal status")
		err := errs.NewInvalidTransitionErrorWithCause("rejected", "new", cause)

		assert.Equal(t, "invalid transition: rejected -> new (cause: terminal status)", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestPreconditionFailedError(t *testing.T) {
	t.Run("NewPreconditionFailedError", func(t *testing.T) {
		err := errs.NewPreconditionFailedError("order has no evidence")

		assert.Equal(t, "order has no evidence", err.Rule)
		require.NoError(t, err.Cause)
		assert.Equal(t, "precondition failed: order has no evidence", err.Error())
		assert.Equal(t, errs.ErrPreconditionFailed, err.Unwrap())
	})

	t.Run("NewPreconditionFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("status is new")
		err := errs.NewPreconditionFailedErrorWithCause("evidence not accepted", cause)

		assert.Equal(t, "precondition failed: evidence not accepted (cause: status is new)", err.Error())
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})
}

func TestVersionConflictError(t *testing.T) {
	t.Run("NewVersionConflictError", func(t *testing.T) {
		err := errs.NewVersionConflictError("order", "abc", 3)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "abc", err.ID)
		assert.Equal(t, int64(3), err.Expected)
		assert.Equal(t, "version conflict: order abc is no longer at version 3", err.Error())
		assert.Equal(t, errs.ErrVersionConflict, err.Unwrap())
	})

	t.Run("NewVersionConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("row updated concurrently")
		err := errs.NewVersionConflictErrorWithCause("order", "abc", 1, cause)

		assert.Equal(t,
			"version conflict: order abc is no longer at version 1 (cause: row updated concurrently)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrVersionConflict)
	})
}

func TestSentinelMessages(t *testing.T) {
	sentinels := map[error]string{
		errs.ErrObjectNotFound:     "object not found",
		errs.ErrValueIsInvalid:     "value is invalid",
		errs.ErrValueIsOutOfRange:  "value is out of range",
		errs.ErrValueIsRequired:    "value is required",
		errs.ErrVersionIsInvalid:   "version is invalid",
		errs.ErrInvalidTransition:  "invalid transition",
		errs.ErrPreconditionFailed: "precondition failed",
		errs.ErrVersionConflict:    "version conflict",
	}

	for sentinel, message := range sentinels {
		assert.Equal(t, message, sentinel.Error())
	}
}

func TestJoinedValidationErrors(t *testing.T) {
	joined := errors.Join(
		errs.NewValueIsRequiredError("title"),
		errs.NewValueIsOutOfRangeError("latitude", 91, -90, 90),
	)

	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, joined, errs.ErrObjectNotFound)

	var rangeErr *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, joined, &rangeErr)
	assert.Equal(t, "latitude", rangeErr.ParamName)
}
