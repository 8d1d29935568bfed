package types

import (
	"fmt"
	"strings"
	"time"
)

// DateKind represents calendar kind of a plain instant
type DateKind int

const (
	// Unspecified wall clock without zone semantics
	Unspecified DateKind = iota
	// UTC coordinated universal time
	UTC
	// Local host local time
	Local
)

// UnspecifiedLocation is used for instants decoded with Unspecified kind
var UnspecifiedLocation = time.FixedZone("", 0)

var dateKindNames = [...]string{"Unspecified", "Utc", "Local"}

// String returns kind name
func (k DateKind) String() string {
	if k < 0 || int(k) >= len(dateKindNames) {
		return fmt.Sprintf("DateKind(%d)", int(k))
	}
	return dateKindNames[k]
}

// MarshalText returns kind name
func (k DateKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(dateKindNames) {
		return nil, fmt.Errorf("invalid date kind: %d", int(k))
	}
	return []byte(dateKindNames[k]), nil
}

// UnmarshalText parses case insensitive kind name
func (k *DateKind) UnmarshalText(text []byte) error {
	kind, err := ParseDateKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseDateKind parses case insensitive kind name
func ParseDateKind(name string) (DateKind, error) {
	for i, candidate := range dateKindNames {
		if strings.EqualFold(candidate, strings.TrimSpace(name)) {
			return DateKind(i), nil
		}
	}
	return Unspecified, fmt.Errorf("invalid date kind: %q", name)
}

// KindOf returns calendar kind of t
func KindOf(t time.Time) DateKind {
	switch t.Location() {
	case time.UTC:
		return UTC
	case time.Local:
		return Local
	}
	return Unspecified
}

// Location returns location used when decoding instants of the kind
func (k DateKind) Location() *time.Location {
	switch k {
	case UTC:
		return time.UTC
	case Local:
		return time.Local
	}
	return UnspecifiedLocation
}
