package report

import (
	"errors"
	"fmt"

	perr "umamiconnector/internal/platform/errors"
)

// ErrNoResponse is returned when Umami gave no body to normalize
var ErrNoResponse = perr.Unavailablef("error while fetching data: there is no response from Umami")

// InvalidKindError carries the offending api path value
type InvalidKindError struct{ Value string }

func (e *InvalidKindError) Error() string { return "invalid API path: " + e.Value }

// InvalidKind builds the user facing error for an unknown report kind
func InvalidKind(value string) error {
	cause := &InvalidKindError{Value: value}
	return perr.WithField(perr.Wrap(cause, perr.ErrorCodeInvalidArgument, cause.Error()), "api_path")
}

// IsInvalidKind reports whether err was caused by an unknown report kind
func IsInvalidKind(err error) bool {
	var e *InvalidKindError
	return errors.As(err, &e)
}

// ShapeError describes an upstream body that parsed as JSON but does not
// match the shape expected for the kind
type ShapeError struct {
	Kind   Kind
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("malformed %s response: %s", e.Kind, e.Reason)
}

func malformed(k Kind, format string, a ...any) error {
	cause := &ShapeError{Kind: k, Reason: fmt.Sprintf(format, a...)}
	return perr.Wrap(cause, perr.ErrorCodeUpstream, cause.Error())
}

// IsMalformed reports whether err was caused by an unexpected response shape
func IsMalformed(err error) bool {
	var e *ShapeError
	return errors.As(err, &e)
}

func invalidJSON(k Kind, err error) error {
	return perr.Wrapf(err, perr.ErrorCodeUpstream, "error while parsing %s response from Umami", k)
}
