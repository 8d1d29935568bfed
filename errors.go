package dictology

import (
	"errors"

	"github.com/viant/dictology/conv"
	"github.com/viant/dictology/resolver"
)

var (
	// ErrMissingArgument is returned when a required reference is nil
	ErrMissingArgument = resolver.ErrMissingArgument
	// ErrUnsupportedMemberKind is returned for members that are neither field nor property
	ErrUnsupportedMemberKind = resolver.ErrUnsupportedMemberKind
	// ErrReleased is returned by a resolver used after release
	ErrReleased = resolver.ErrReleased
	// ErrUnreachable is returned for a promoted member behind a nil embedded pointer
	ErrUnreachable = resolver.ErrUnreachable
	// ErrUnsupportedConversion is returned when no rule can produce a value of the requested type
	ErrUnsupportedConversion = conv.ErrUnsupportedConversion

	errUnknownKey = errors.New("no matching member")
)

// ConversionError carries the key, value and target type of a failed conversion
type ConversionError = conv.Error
