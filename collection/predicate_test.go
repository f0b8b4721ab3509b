package collection

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func first[T any](args ...T) T { return args[0] }

func greater(args ...int) bool { return args[0] > args[1] }

func TestAnyN(t *testing.T) {
	assert.False(t, AnyN(first[bool], []bool{}))
	assert.False(t, AnyN[bool](first[bool]))
	assert.True(t, AnyN(first[bool], []bool{false, true}))
	assert.False(t, AnyN(first[bool], []bool{false, false}))
	assert.True(t, AnyN(greater, []int{1, 5, 3}, []int{2, 6, 1}))
	assert.False(t, AnyN(greater, []int{1, 5, 3}, []int{2, 6}))

	t.Run("short-circuit", func(t *testing.T) {
		calls := 0
		assert.True(t, AnyN(func(args ...int) bool {
			calls++
			return args[0] == 2
		}, []int{1, 2, 3, 4}))
		assert.Equal(t, 2, calls)
	})
}

func TestAllN(t *testing.T) {
	assert.True(t, AllN(first[bool], []bool{}))
	assert.True(t, AllN[bool](first[bool]))
	assert.True(t, AllN(first[bool], []bool{true, true}))
	assert.False(t, AllN(first[bool], []bool{true, false}))
	assert.True(t, AllN(greater, []int{3, 7, 2}, []int{2, 6, 1}))
	assert.True(t, AllN(greater, []int{3, 7, 0}, []int{2, 6}))
	assert.False(t, AllN(greater, []int{3, 5, 2}, []int{2, 6, 1}))

	t.Run("short-circuit", func(t *testing.T) {
		calls := 0
		assert.False(t, AllN(func(args ...int) bool {
			calls++
			return args[0] < 2
		}, []int{1, 2, 3, 4}))
		assert.Equal(t, 2, calls)
	})
}

func TestNoneN(t *testing.T) {
	assert.True(t, NoneN(first[bool], []bool{}))
	assert.True(t, NoneN(first[bool], []bool{false, false}))
	assert.False(t, NoneN(first[bool], []bool{false, true}))
	assert.True(t, NoneN(greater, []int{1, 5}, []int{2, 6}))
}

func TestTruthy(t *testing.T) {
	identity := first[any]
	assert.True(t, AllTruthy(identity, []any{}))
	assert.False(t, AnyTruthy(identity, []any{}))
	assert.True(t, NoneTruthy(identity, []any{}))
	assert.True(t, AnyTruthy(identity, []any{0, "", nil, faker.Word()}))
	assert.False(t, AllTruthy(identity, []any{1, "a", nil}))
	assert.True(t, AllTruthy(identity, []any{1, "a", []int{}}))
	assert.True(t, NoneTruthy(identity, []any{0, "", nil, false}))
}

func TestAnyAllNoneFunc(t *testing.T) {
	positive := func(x int) bool { return x > 0 }
	assert.True(t, AnyFunc([]int{-1, 0, 2}, positive))
	assert.False(t, AnyFunc([]int{}, positive))
	assert.True(t, AllFunc([]int{1, 2}, positive))
	assert.True(t, AllFunc([]int{}, positive))
	assert.False(t, AllFunc([]int{1, -2}, positive))
	assert.True(t, NoneFunc(scores{-1, -2}, positive))
	assert.False(t, NoneFunc(scores{-1, 2}, positive))
}

func TestMatch(t *testing.T) {
	positive := func(x int) bool { return x > 0 }
	even := func(x int) bool { return x%2 == 0 }
	assert.True(t, Match(3, positive, even))
	assert.True(t, Match(-4, positive, even))
	assert.False(t, Match(-3, positive, even))
	assert.False(t, Match[int](3))
	assert.True(t, MatchAll(4, positive, even))
	assert.False(t, MatchAll(3, positive, even))
	assert.False(t, MatchAll[int](3))
}
