package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Undefined marks version component that was not specified
const Undefined = -1

// Version represents dotted major.minor[.build[.revision]] version
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// NewVersion creates a version, missing build and revision are undefined
func NewVersion(major, minor int, rest ...int) Version {
	ret := Version{Major: major, Minor: minor, Build: Undefined, Revision: Undefined}
	if len(rest) > 0 {
		ret.Build = rest[0]
	}
	if len(rest) > 1 {
		ret.Revision = rest[1]
	}
	return ret
}

// String returns dotted version text
func (v Version) String() string {
	parts := []string{strconv.Itoa(v.Major), strconv.Itoa(v.Minor)}
	if v.Build >= 0 {
		parts = append(parts, strconv.Itoa(v.Build))
		if v.Revision >= 0 {
			parts = append(parts, strconv.Itoa(v.Revision))
		}
	}
	return strings.Join(parts, ".")
}

// MarshalText returns dotted version text
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses dotted version text
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVersion parses dotted version with two up to four non negative components
func ParseVersion(text string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(text), ".")
	if len(parts) < 2 || len(parts) > 4 {
		return Version{}, fmt.Errorf("invalid version: %q", text)
	}
	values := make([]int, len(parts))
	for i, part := range parts {
		value, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version: %q: %w", text, err)
		}
		values[i] = int(value)
	}
	return NewVersion(values[0], values[1], values[2:]...), nil
}
