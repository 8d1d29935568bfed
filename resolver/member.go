package resolver

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// MemberKind represents member kind
type MemberKind int

const (
	// MemberUnknown is neither field nor property
	MemberUnknown MemberKind = iota
	// MemberField struct field member
	MemberField
	// MemberProperty accessor based member
	MemberProperty
)

// Getter returns property value of holder struct
type Getter func(holder reflect.Value) (reflect.Value, error)

// Setter sets property value of holder struct
type Setter func(holder reflect.Value, value reflect.Value) error

// Member represents data carrying slot of a type
type Member struct {
	Name          string
	Type          reflect.Type
	DeclaringType reflect.Type
	Kind          MemberKind
	Tag           reflect.StructTag
	Index         []int
	field         *xunsafe.Field
	getter        Getter
	setter        Setter
}

// NewProperty creates accessor based member, setter can be nil for read only property
func NewProperty(declaringType reflect.Type, name string, propertyType reflect.Type, getter Getter, setter Setter) *Member {
	return &Member{
		Name:          name,
		Type:          propertyType,
		DeclaringType: declaringType,
		Kind:          MemberProperty,
		getter:        getter,
		setter:        setter,
	}
}

// NewField creates field member, index is relative to the owner type
func NewField(declaringType reflect.Type, field reflect.StructField, index []int) *Member {
	ret := &Member{
		Name:          field.Name,
		Type:          field.Type,
		DeclaringType: declaringType,
		Kind:          MemberField,
		Tag:           field.Tag,
		Index:         index,
	}
	if len(index) == 1 && isScalar(field.Type) {
		ret.field = xunsafe.NewField(field)
	}
	return ret
}

// isScalar returns true for predeclared bool, numeric and string types, other kinds go through reflect
func isScalar(t reflect.Type) bool {
	if t.PkgPath() != "" {
		return false
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// CanSet returns true if member value can be set
func (m *Member) CanSet() bool {
	switch m.Kind {
	case MemberField:
		return true
	case MemberProperty:
		return m.setter != nil
	}
	return false
}

// Get returns member value of holder struct or pointer to struct.
// A promoted field behind a nil embedded pointer fails with ErrUnreachable.
func (m *Member) Get(holder reflect.Value) (reflect.Value, error) {
	holder, err := m.holder(holder, false)
	if err != nil {
		return reflect.Value{}, err
	}
	switch m.Kind {
	case MemberProperty:
		if m.getter == nil {
			return reflect.Value{}, fmt.Errorf("property %v.%s is write only", m.DeclaringType, m.Name)
		}
		return m.getter(holder)
	case MemberField:
		if m.field != nil {
			value := reflect.ValueOf(m.field.Value(unsafe.Pointer(holder.UnsafeAddr())))
			if !value.IsValid() {
				return reflect.Zero(m.Type), nil
			}
			return value, nil
		}
		value, err := holder.FieldByIndexErr(m.Index)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %v.%s", ErrUnreachable, m.DeclaringType, m.Name)
		}
		return value, nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %v.%s", ErrUnsupportedMemberKind, m.DeclaringType, m.Name)
}

// Set sets member value of pointer to struct holder, nil embedded pointers on the path are allocated
func (m *Member) Set(holder reflect.Value, value reflect.Value) error {
	holder, err := m.holder(holder, true)
	if err != nil {
		return err
	}
	if !value.IsValid() {
		value = reflect.Zero(m.Type)
	}
	if !value.Type().AssignableTo(m.Type) {
		return fmt.Errorf("cannot assign %v to %v.%s of type %v", value.Type(), m.DeclaringType, m.Name, m.Type)
	}
	switch m.Kind {
	case MemberProperty:
		if m.setter == nil {
			return fmt.Errorf("property %v.%s is read only", m.DeclaringType, m.Name)
		}
		return m.setter(holder, value)
	case MemberField:
		if m.field != nil && value.Type() == m.Type {
			m.field.SetValue(unsafe.Pointer(holder.UnsafeAddr()), value.Interface())
			return nil
		}
		target := holder
		for i, idx := range m.Index {
			if i > 0 && target.Kind() == reflect.Ptr {
				if target.IsNil() {
					target.Set(reflect.New(target.Type().Elem()))
				}
				target = target.Elem()
			}
			target = target.Field(idx)
		}
		target.Set(value)
		return nil
	}
	return fmt.Errorf("%w: %v.%s", ErrUnsupportedMemberKind, m.DeclaringType, m.Name)
}

// holder returns addressable struct value
func (m *Member) holder(holder reflect.Value, forUpdate bool) (reflect.Value, error) {
	if !holder.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: holder of %v.%s", ErrMissingArgument, m.DeclaringType, m.Name)
	}
	for holder.Kind() == reflect.Ptr || holder.Kind() == reflect.Interface {
		if holder.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil holder of %v.%s", ErrMissingArgument, m.DeclaringType, m.Name)
		}
		holder = holder.Elem()
	}
	if holder.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected struct holder for %v.%s, got %v", m.DeclaringType, m.Name, holder.Type())
	}
	if !holder.CanAddr() {
		if forUpdate {
			return reflect.Value{}, fmt.Errorf("holder of %v.%s is not addressable", m.DeclaringType, m.Name)
		}
		ptr := reflect.New(holder.Type())
		ptr.Elem().Set(holder)
		holder = ptr.Elem()
	}
	return holder, nil
}
