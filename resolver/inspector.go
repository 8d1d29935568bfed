package resolver

import (
	"reflect"
	"strings"

	"github.com/viant/dictology/classify"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
)

const (
	// ContractTag data contract marker tag, "-" ignores a member, a name renames it
	ContractTag = "dict"
	// WebTag JSON marker tag
	WebTag = "json"
)

// marker represents member filtering and naming decision
type marker struct {
	ignored bool
	name    string
	inline  bool
}

// fieldInspector inspects exported struct fields
type fieldInspector struct {
	tagNames         []string
	formatTag        bool
	inspectAncestors bool
	caseFormat       text.CaseFormat
}

// Inspect returns ordered members of struct type t
func (i *fieldInspector) Inspect(t reflect.Type) []*Member {
	var result []*Member
	i.collect(t, nil, map[string]bool{}, &result)
	return result
}

func (i *fieldInspector) collect(t reflect.Type, index []int, taken map[string]bool, result *[]*Member) {
	var embedded []reflect.StructField
	for j := 0; j < t.NumField(); j++ {
		field := t.Field(j)
		fieldIndex := append(append([]int{}, index...), j)
		field.Index = fieldIndex
		aMarker := i.marker(field)
		if aMarker.ignored {
			taken[field.Name] = true
			continue
		}
		if i.isPromoted(field, aMarker) {
			embedded = append(embedded, field)
			continue
		}
		if !field.IsExported() || taken[field.Name] {
			continue
		}
		taken[field.Name] = true
		*result = append(*result, NewField(t, field, fieldIndex))
	}
	for _, field := range embedded {
		i.collect(classify.Indirect(field.Type), field.Index, taken, result)
	}
}

func (i *fieldInspector) isPromoted(field reflect.StructField, aMarker *marker) bool {
	if !field.Anonymous {
		return false
	}
	fieldType := classify.Indirect(field.Type)
	if fieldType.Kind() != reflect.Struct || isWellKnown(fieldType) {
		return false
	}
	if field.Type.Kind() == reflect.Ptr && !field.IsExported() {
		return false
	}
	if aMarker.inline {
		return true
	}
	return i.inspectAncestors && aMarker.name == ""
}

func isWellKnown(t reflect.Type) bool {
	code, _ := classify.Of(t)
	return code != classify.Object
}

// Name returns external name of member
func (i *fieldInspector) Name(member *Member) string {
	if member.Kind == MemberField {
		if aMarker := i.marker(reflect.StructField{Name: member.Name, Tag: member.Tag}); aMarker.name != "" {
			return aMarker.name
		}
	}
	if i.caseFormat.IsDefined() {
		return formatName(member.Name, i.caseFormat)
	}
	return member.Name
}

func (i *fieldInspector) marker(field reflect.StructField) *marker {
	ret := &marker{}
	if i.formatTag {
		tag, err := format.Parse(field.Tag)
		if err != nil || tag == nil {
			return ret
		}
		ret.ignored = tag.Ignore
		ret.inline = tag.Inline
		ret.name = tag.Name
		if ret.name == "" && tag.CaseFormat != "" {
			if caseFormat := text.NewCaseFormat(tag.CaseFormat); caseFormat.IsDefined() {
				ret.name = formatName(field.Name, caseFormat)
			}
		}
		return ret
	}
	for _, tagName := range i.tagNames {
		value, ok := field.Tag.Lookup(tagName)
		if !ok {
			continue
		}
		if value == "-" {
			ret.ignored = true
			return ret
		}
		name, _, _ := strings.Cut(value, ",")
		ret.name = strings.TrimSpace(name)
		return ret
	}
	return ret
}

func formatName(name string, caseFormat text.CaseFormat) string {
	source := text.DetectCaseFormat(name)
	if !source.IsDefined() {
		source = text.CaseFormatUpperCamel
	}
	return source.Format(name, caseFormat)
}
