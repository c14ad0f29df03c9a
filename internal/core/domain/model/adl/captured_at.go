package adl

import (
	"fmt"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
)

// capturedAtLayouts are tried in order. Layouts without a zone are read as UTC.
var capturedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseCapturedAt parses a device capture timestamp. RFC 3339 is preferred;
// zone-less ISO 8601 date-times as produced by HTML datetime-local inputs are
// accepted and interpreted as UTC.
func ParseCapturedAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errs.NewValueIsRequiredError("capturedAt")
	}

	for _, layout := range capturedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
		"capturedAt",
		fmt.Errorf("%q is not a valid RFC 3339 timestamp", s),
	)
}
