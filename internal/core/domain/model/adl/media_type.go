package adl

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// MediaType is the kind of media an entry references.
type MediaType string

const (
	// Photo is a still image.
	Photo MediaType = "photo"
	// Video is a video clip.
	Video MediaType = "video"
)

// ParseMediaType converts the wire representation to a MediaType.
func ParseMediaType(s string) (MediaType, error) {
	t := MediaType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that t is Photo or Video.
func (t MediaType) Validate() error {
	switch t {
	case Photo, Video:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not one of photo, video", string(t)))
	}
}

func (t MediaType) String() string {
	return string(t)
}
