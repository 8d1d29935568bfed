package resolver

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
)

type Audit struct {
	Created time.Time
	Author  string `json:"author" dict:"createdBy"`
}

type Account struct {
	Audit
	ID       int    `json:"id" dict:"accountId"`
	Name     string `json:"-" dict:"name"`
	Secret   string `json:"secret" dict:"-"`
	Balance  float64
	internal string
}

type Formatted struct {
	UserName string `format:"caseFormat=lowerUnderscore"`
	Email    string `format:"name=mail"`
	Skip     string `format:"ignore=true"`
	Plain    int
}

func memberNames(t *testing.T, r Resolver, value interface{}) []string {
	members, err := r.Members(reflect.TypeOf(value))
	require.NoError(t, err)
	var result []string
	for _, member := range members {
		name, err := r.MemberName(member)
		require.NoError(t, err)
		result = append(result, name)
	}
	return result
}

func TestResolvers(t *testing.T) {
	var testCases = []struct {
		description string
		resolver    Resolver
		value       interface{}
		expect      []string
	}{
		{
			description: "default",
			resolver:    NewDefault(),
			value:       Account{},
			expect:      []string{"ID", "Name", "Secret", "Balance", "Created", "Author"},
		},
		{
			description: "default without ancestors",
			resolver:    NewDefault(WithInspectAncestors(false)),
			value:       &Account{},
			expect:      []string{"Audit", "ID", "Name", "Secret", "Balance"},
		},
		{
			description: "contract",
			resolver:    NewContract(),
			value:       Account{},
			expect:      []string{"accountId", "name", "Balance", "Created", "createdBy"},
		},
		{
			description: "web",
			resolver:    NewWeb(),
			value:       Account{},
			expect:      []string{"id", "secret", "Balance", "Created", "author"},
		},
		{
			description: "web with case format",
			resolver:    NewWeb(WithCaseFormat(text.CaseFormatLowerCamel)),
			value:       Account{},
			expect:      []string{"id", "secret", "balance", "created", "author"},
		},
		{
			description: "marker precedence",
			resolver:    NewContract(WithTagNames("json", "dict")),
			value:       Account{},
			expect:      []string{"id", "secret", "Balance", "Created", "author"},
		},
		{
			description: "format",
			resolver:    NewFormat(),
			value:       Formatted{},
			expect:      []string{"user_name", "mail", "Plain"},
		},
		{
			description: "non struct",
			resolver:    NewDefault(),
			value:       1,
			expect:      nil,
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, memberNames(t, testCase.resolver, testCase.value), testCase.description)
	}
}

func TestBase_Members_Nil(t *testing.T) {
	members, err := NewDefault().Members(nil)
	assert.NoError(t, err)
	assert.Empty(t, members)
}

func TestBase_Determinism(t *testing.T) {
	r := NewWeb()
	first, err := r.Members(reflect.TypeOf(Account{}))
	require.NoError(t, err)
	second, err := r.Members(reflect.TypeOf(&Account{}))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	for i := range first {
		assert.Same(t, first[i], second[i])
	}
	wg := sync.WaitGroup{}
	names := make([][]string, 8)
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, member := range first {
				name, _ := r.MemberName(member)
				names[i] = append(names[i], name)
			}
		}(i)
	}
	wg.Wait()
	for i := range names {
		assert.Equal(t, names[0], names[i])
	}
}

func TestBase_MemberValue(t *testing.T) {
	r := NewDefault()
	account := Account{ID: 7, Name: "x", Audit: Audit{Author: "bob"}}
	members, err := r.Members(reflect.TypeOf(account))
	require.NoError(t, err)
	values := map[string]interface{}{}
	for _, member := range members {
		value, err := r.MemberValue(member, reflect.ValueOf(account))
		require.NoError(t, err)
		values[member.Name] = value
	}
	assert.Equal(t, 7, values["ID"])
	assert.Equal(t, "x", values["Name"])
	assert.Equal(t, "bob", values["Author"])

	_, err = r.MemberValue(nil, reflect.ValueOf(account))
	assert.True(t, errors.Is(err, ErrMissingArgument))
	_, err = r.MemberName(nil)
	assert.True(t, errors.Is(err, ErrMissingArgument))
	unknown := &Member{Name: "X", DeclaringType: reflect.TypeOf(account)}
	_, err = r.MemberValue(unknown, reflect.ValueOf(account))
	assert.True(t, errors.Is(err, ErrUnsupportedMemberKind))
	_, err = r.MemberName(unknown)
	assert.True(t, errors.Is(err, ErrUnsupportedMemberKind))
}

func TestBase_Release(t *testing.T) {
	r := NewDefault()
	rType := reflect.TypeOf(Account{})
	members, err := r.Members(rType)
	require.NoError(t, err)
	require.NotEmpty(t, members)

	require.NoError(t, r.Release())
	require.NoError(t, r.Release())
	assert.True(t, r.Released())

	_, err = r.Members(rType)
	assert.True(t, errors.Is(err, ErrReleased))
	_, err = r.MemberName(members[0])
	assert.True(t, errors.Is(err, ErrReleased))
	_, err = r.MemberValue(members[0], reflect.ValueOf(Account{}))
	assert.True(t, errors.Is(err, ErrReleased))
	_, err = r.MemberName(nil)
	assert.True(t, errors.Is(err, ErrReleased))
}

func TestMember_Set(t *testing.T) {
	type Inner struct {
		Value string
	}
	type Outer struct {
		*Inner
		Count int
		Any   interface{}
	}
	r := NewDefault()
	members, err := r.Members(reflect.TypeOf(Outer{}))
	require.NoError(t, err)
	require.Len(t, members, 3)

	outer := &Outer{}
	holder := reflect.ValueOf(outer)
	for _, member := range members {
		switch member.Name {
		case "Count":
			require.NoError(t, member.Set(holder, reflect.ValueOf(3)))
		case "Any":
			require.NoError(t, member.Set(holder, reflect.ValueOf("x")))
		case "Value":
			require.NoError(t, member.Set(holder, reflect.ValueOf("promoted")))
		}
	}
	assert.Equal(t, 3, outer.Count)
	assert.Equal(t, "x", outer.Any)
	require.NotNil(t, outer.Inner)
	assert.Equal(t, "promoted", outer.Value)

	assert.Error(t, members[0].Set(reflect.ValueOf(Outer{}), reflect.ValueOf(1)))
	assert.Error(t, members[0].Set(holder, reflect.ValueOf(struct{}{})))

	_, err = members[len(members)-1].Get(reflect.ValueOf(Outer{}))
	assert.True(t, errors.Is(err, ErrUnreachable))
	_, err = r.MemberValue(members[len(members)-1], reflect.ValueOf(Outer{}))
	assert.True(t, errors.Is(err, ErrUnreachable))
	value, err := r.MemberValue(members[len(members)-1], reflect.ValueOf(Outer{Inner: &Inner{Value: "v"}}))
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestMember_SetComposite(t *testing.T) {
	type Level int
	type Fixed struct {
		Ints    [3]int
		Strings [2]string
		ID      uuid.UUID
		Grid    [2][2]int
		Level   Level
		Names   []string
	}
	id := uuid.MustParse("aa23d7c6-bd69-45cd-9890-600aa448638a")
	var testCases = []struct {
		description string
		name        string
		value       interface{}
	}{
		{description: "int array", name: "Ints", value: [3]int{1, 2, 3}},
		{description: "string array", name: "Strings", value: [2]string{"a", "b"}},
		{description: "identifier", name: "ID", value: id},
		{description: "nested array", name: "Grid", value: [2][2]int{{1, 2}, {3, 4}}},
		{description: "named int", name: "Level", value: Level(7)},
		{description: "slice", name: "Names", value: []string{"x", "y"}},
	}
	members, err := NewDefault().Members(reflect.TypeOf(Fixed{}))
	require.NoError(t, err)
	for _, testCase := range testCases {
		var member *Member
		for _, candidate := range members {
			if candidate.Name == testCase.name {
				member = candidate
			}
		}
		require.NotNil(t, member, testCase.description)
		holder := &Fixed{}
		require.NoError(t, member.Set(reflect.ValueOf(holder), reflect.ValueOf(testCase.value)), testCase.description)
		actual, err := member.Get(reflect.ValueOf(holder))
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.value, actual.Interface(), testCase.description)
	}
}

func TestInspect_IgnoredShadowsPromoted(t *testing.T) {
	type Base struct {
		Secret string
		Shared string
	}
	type Derived struct {
		Base
		Secret string `json:"-" dict:"-"`
		Own    string
	}
	var testCases = []struct {
		description string
		resolver    Resolver
		expect      []string
	}{
		{description: "contract", resolver: NewContract(), expect: []string{"Own", "Shared"}},
		{description: "web", resolver: NewWeb(), expect: []string{"Own", "Shared"}},
	}
	for _, testCase := range testCases {
		members, err := testCase.resolver.Members(reflect.TypeOf(Derived{}))
		require.NoError(t, err, testCase.description)
		var names []string
		for _, member := range members {
			names = append(names, member.Name)
		}
		assert.Equal(t, testCase.expect, names, testCase.description)
	}
}

type propertyInspector struct{}

func (p *propertyInspector) Inspect(t reflect.Type) []*Member {
	return []*Member{
		NewProperty(t, "Full", reflect.TypeOf(""), func(holder reflect.Value) (reflect.Value, error) {
			first := holder.FieldByName("First").String()
			last := holder.FieldByName("Last").String()
			return reflect.ValueOf(first + " " + last), nil
		}, nil),
	}
}

func (p *propertyInspector) Name(member *Member) string {
	return "full_name"
}

func TestNewProperty(t *testing.T) {
	type Person struct {
		First, Last string
	}
	r := New(&propertyInspector{})
	members, err := r.Members(reflect.TypeOf(Person{}))
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, MemberProperty, members[0].Kind)
	assert.False(t, members[0].CanSet())
	value, err := r.MemberValue(members[0], reflect.ValueOf(&Person{First: "Ada", Last: "Lovelace"}))
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", value)
	name, err := r.MemberName(members[0])
	require.NoError(t, err)
	assert.Equal(t, "full_name", name)
	assert.Error(t, members[0].Set(reflect.ValueOf(&Person{}), reflect.ValueOf("x")))
}
