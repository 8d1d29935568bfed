package resolver

import "errors"

var (
	// ErrMissingArgument is returned when a required member or value is nil
	ErrMissingArgument = errors.New("missing argument")
	// ErrUnsupportedMemberKind is returned for members that are neither fields nor properties
	ErrUnsupportedMemberKind = errors.New("unsupported member kind")
	// ErrReleased is returned by any resolver call after Release
	ErrReleased = errors.New("resolver already released")
	// ErrUnreachable is returned when a promoted field sits behind a nil embedded pointer
	ErrUnreachable = errors.New("member unreachable")
)
