package resolver

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/viant/dictology/visitor"
)

// Resolver discovers members of a type and their external names
type Resolver interface {
	// Members returns ordered members of t, nil type yields no members
	Members(t reflect.Type) ([]*Member, error)
	// MemberName returns member external name
	MemberName(member *Member) (string, error)
	// MemberValue returns member value of holder
	MemberValue(member *Member, holder reflect.Value) (interface{}, error)
	// Release releases cached state, subsequent calls fail with ErrReleased
	Release() error
}

// Inspector defines member filtering and naming rules of a resolver strategy
type Inspector interface {
	// Inspect returns ordered members of struct type t
	Inspect(t reflect.Type) []*Member
	// Name returns external name of member
	Name(member *Member) string
}

type nameKey struct {
	declaringType reflect.Type
	name          string
}

// Base implements caching and lifetime of resolvers, strategy is delegated to an Inspector
type Base struct {
	inspector Inspector
	members   *visitor.SyncMap[reflect.Type, []*Member]
	names     *visitor.SyncMap[nameKey, string]
	released  atomic.Bool
}

// Members returns ordered members of t
func (b *Base) Members(t reflect.Type) ([]*Member, error) {
	if b.released.Load() {
		return nil, ErrReleased
	}
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, nil
	}
	return b.members.GetOrCreate(t, func() []*Member {
		return b.inspector.Inspect(t)
	}), nil
}

// MemberName returns member external name
func (b *Base) MemberName(member *Member) (string, error) {
	if err := b.check(member); err != nil {
		return "", err
	}
	key := nameKey{declaringType: member.DeclaringType, name: member.Name}
	return b.names.GetOrCreate(key, func() string {
		return b.inspector.Name(member)
	}), nil
}

// MemberValue returns member value of holder
func (b *Base) MemberValue(member *Member, holder reflect.Value) (interface{}, error) {
	if err := b.check(member); err != nil {
		return nil, err
	}
	value, err := member.Get(holder)
	if err != nil {
		return nil, err
	}
	if !value.IsValid() || !value.CanInterface() {
		return nil, nil
	}
	return value.Interface(), nil
}

// Release clears caches, it is safe to call more than once
func (b *Base) Release() error {
	if b.released.Swap(true) {
		return nil
	}
	b.members.Clear()
	b.names.Clear()
	return nil
}

// Released returns true if resolver was released
func (b *Base) Released() bool {
	return b.released.Load()
}

func (b *Base) check(member *Member) error {
	if b.released.Load() {
		return ErrReleased
	}
	if member == nil {
		return fmt.Errorf("%w: member", ErrMissingArgument)
	}
	if member.Kind != MemberField && member.Kind != MemberProperty {
		return fmt.Errorf("%w: %v.%s", ErrUnsupportedMemberKind, member.DeclaringType, member.Name)
	}
	return nil
}

// New creates resolver for supplied inspector
func New(inspector Inspector) *Base {
	return &Base{
		inspector: inspector,
		members:   visitor.NewSyncMap[reflect.Type, []*Member](),
		names:     visitor.NewSyncMap[nameKey, string](),
	}
}
