package dictology

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/dictology/conv"
	"github.com/viant/dictology/types"
)

var (
	versionType = reflect.TypeOf(types.Version{})
	guidType    = reflect.TypeOf(uuid.UUID{})
	uriType     = reflect.TypeOf(url.URL{})
)

var (
	// VersionConverter converts types.Version to and from version components
	VersionConverter = NewMemberConverter[types.Version](encodeVersion, decodeVersion)
	// GUIDConverter converts uuid.UUID to and from text in the settings layout
	GUIDConverter = NewNativeConverter[uuid.UUID](encodeGUID, decodeGUID)
	// URIConverter converts url.URL to and from relative or absolute URI text
	URIConverter = NewNativeConverter[url.URL](encodeURI, decodeURI)
)

func encodeVersion(value types.Version, s *Settings) (map[string]interface{}, error) {
	return map[string]interface{}{
		KeyMajor:    value.Major,
		KeyMinor:    value.Minor,
		KeyBuild:    value.Build,
		KeyRevision: value.Revision,
	}, nil
}

// decodeVersion requires major and minor, build and revision are taken progressively when defined
func decodeVersion(m map[string]interface{}, s *Settings) (types.Version, error) {
	major, okMajor := s.versionComponent(m, KeyMajor)
	minor, okMinor := s.versionComponent(m, KeyMinor)
	if !okMajor || !okMinor {
		return types.Version{}, conv.NewError("", m, versionType, fmt.Errorf("%s and %s are required", KeyMajor, KeyMinor))
	}
	build, ok := s.versionComponent(m, KeyBuild)
	if !ok {
		return types.NewVersion(major, minor), nil
	}
	revision, ok := s.versionComponent(m, KeyRevision)
	if !ok {
		return types.NewVersion(major, minor, build), nil
	}
	return types.NewVersion(major, minor, build, revision), nil
}

func (s *Settings) versionComponent(m map[string]interface{}, key string) (int, bool) {
	value, ok := m[key]
	if !ok || value == nil {
		return 0, false
	}
	var result int
	if err := s.coercer.Convert(value, &result); err != nil || result < 0 {
		return 0, false
	}
	return result, true
}

func encodeGUID(value uuid.UUID, s *Settings) (interface{}, error) {
	return types.FormatGUID(value, s.guidHandling), nil
}

// decodeGUID parses text in exactly the settings layout
func decodeGUID(value interface{}, s *Settings) (uuid.UUID, error) {
	switch actual := value.(type) {
	case uuid.UUID:
		return actual, nil
	case string:
		id, err := types.ParseGUID(actual, s.guidHandling)
		if err != nil {
			return uuid.UUID{}, conv.NewError("", value, guidType, err)
		}
		return id, nil
	}
	converted, err := s.coercer.Coerce(value, guidType)
	if err != nil {
		return uuid.UUID{}, err
	}
	return converted.Interface().(uuid.UUID), nil
}

func encodeURI(value url.URL, s *Settings) (interface{}, error) {
	return value.String(), nil
}

func decodeURI(value interface{}, s *Settings) (url.URL, error) {
	switch actual := value.(type) {
	case url.URL:
		return actual, nil
	case *url.URL:
		return *actual, nil
	case string:
		u, err := url.Parse(strings.TrimSpace(actual))
		if err != nil {
			return url.URL{}, conv.NewError("", value, uriType, err)
		}
		return *u, nil
	}
	return url.URL{}, conv.NewError("", value, uriType, nil)
}
