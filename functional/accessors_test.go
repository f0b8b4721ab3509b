package functional

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-combinators/commonerrors"
	"github.com/ARM-software/golang-combinators/commonerrors/errortest"
)

type person struct {
	Name string
	age  int
}

type Address struct {
	City string
}

type customer struct {
	*Address
	person
}

func TestGetter(t *testing.T) {
	first := faker.Word()
	second := faker.Word()
	obj := map[string]string{
		"hello": first,
		"world": second,
	}
	v, found := Getter[map[string]string]("hello")(obj)
	assert.True(t, found)
	assert.Equal(t, first, v)
	v, found = Getter[map[string]string]("hello2")(obj)
	assert.False(t, found)
	assert.Empty(t, v)

	ref := GetterRef[map[string]string]("world")(obj)
	require.NotNil(t, ref)
	assert.Equal(t, second, *ref)
	assert.Nil(t, GetterRef[map[string]string]("hello2")(obj))
	assert.Nil(t, GetterRef[map[string]string]("hello")(nil))
}

func TestIndexGetter(t *testing.T) {
	list := []int{5, 3, 6, 2}
	v, found := IndexGetter[[]int](2)(list)
	assert.True(t, found)
	assert.Equal(t, 6, v)
	_, found = IndexGetter[[]int](10)(list)
	assert.False(t, found)
	_, found = IndexGetter[[]int](-1)(list)
	assert.False(t, found)
}

func TestFieldGetter(t *testing.T) {
	name := faker.Name()
	p := person{Name: name, age: 42}
	v, found := FieldGetter("Name")(p)
	assert.True(t, found)
	assert.Equal(t, name, v)
	v, found = FieldGetter("age")(&p)
	assert.True(t, found)
	assert.Equal(t, 42, v)
	_, found = FieldGetter("address")(&p)
	assert.False(t, found)
}

func TestSetter(t *testing.T) {
	obj := map[string]int{}
	setY := Setter[map[string]int]("y")
	result := setY(obj, 2)
	assert.Equal(t, 2, obj["y"])
	assert.Equal(t, obj, result)

	result = setY(nil, 3)
	require.NotNil(t, result)
	assert.Equal(t, 3, result["y"])

	v, found := Getter[map[string]int]("y")(setY(obj, 7))
	assert.True(t, found)
	assert.Equal(t, 7, v)
}

func TestIndexSetter(t *testing.T) {
	list := []string{"a", "b", "c"}
	result, err := IndexSetter[[]string](1)(list, "z")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "z", "c"}, result)
	assert.Equal(t, "z", list[1])

	result, err = IndexSetter[[]string](5)(list, "f")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "z", "c", "", "", "f"}, result)

	_, err = IndexSetter[[]string](-1)(list, "f")
	errortest.RequireError(t, err, commonerrors.ErrOutOfRange)
}

func TestFieldSetter(t *testing.T) {
	p := &person{}
	name := faker.Name()
	require.NoError(t, FieldSetter("Name")(p, name))
	require.NoError(t, FieldSetter("age")(p, 30))
	assert.Equal(t, name, p.Name)
	assert.Equal(t, 30, p.age)
	errortest.AssertError(t, FieldSetter("age")(p, "thirty"), commonerrors.ErrInvalid)
	errortest.AssertError(t, FieldSetter("address")(p, "x"), commonerrors.ErrNotFound)
}

func TestPromotedFieldAccessors(t *testing.T) {
	c := &customer{person: person{Name: faker.Name()}}
	name, found := FieldGetter("Name")(c)
	require.True(t, found)
	assert.Equal(t, c.Name, name)

	city, found := FieldGetter("City")(c)
	assert.False(t, found)
	assert.Nil(t, city)
	errortest.AssertError(t, FieldSetter("City")(c, faker.Word()), commonerrors.ErrNotFound)

	c.Address = &Address{}
	word := faker.Word()
	require.NoError(t, FieldSetter("City")(c, word))
	city, found = FieldGetter("City")(c)
	require.True(t, found)
	assert.Equal(t, word, city)
}
