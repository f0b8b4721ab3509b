package collection

import (
	"cmp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	list := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, Reverse(list))
	assert.Equal(t, []int{1, 2, 3}, list)
	assert.Empty(t, Reverse([]int{}))
	assert.Equal(t, scores{2, 1}, Reverse(scores{1, 2}))
}

func TestSort(t *testing.T) {
	list := []int{3, 1, 2}
	assert.Equal(t, []int{1, 2, 3}, SortOrdered(list))
	assert.Equal(t, []int{3, 1, 2}, list)
	descending := Sort(list, func(a, b int) int { return cmp.Compare(b, a) })
	assert.Equal(t, []int{3, 2, 1}, descending)
	assert.True(t, slices.IsSorted(SortOrdered([]string{"b", "c", "a"})))

	byLength := Sort([]string{"ccc", "a", "bb", "d"}, func(a, b string) int { return cmp.Compare(len(a), len(b)) })
	assert.Equal(t, []string{"a", "d", "bb", "ccc"}, byLength)
	assert.Equal(t, "a,d,bb,ccc", strings.Join(byLength, ","))
}
