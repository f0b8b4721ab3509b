package collection_test

import (
	"fmt"
	"strings"

	"github.com/ARM-software/golang-combinators/collection"
)

func ExampleZip() {
	fmt.Println(collection.Zip([]int{1, 2, 3}, []int{4, 5}))
	// Output: [[1 4] [2 5]]
}

func ExampleMapN() {
	join := func(args ...string) string { return strings.Join(args, "") }
	fmt.Println(collection.MapN(join, []string{"a", "b"}, []string{"x", "y"}))
	// Output: [ax by]
}

func ExampleReduceFromFirst() {
	add := func(a, b int) int { return a + b }
	total, err := collection.ReduceFromFirst([]int{1, 2, 3, 4}, add)
	fmt.Println(total, err)
	_, err = collection.ReduceFromFirst([]int{}, add)
	fmt.Println(err)
	// Output:
	// 10 <nil>
	// empty: reduction requires either elements or an initial value
}

func ExampleAllN() {
	identity := func(args ...bool) bool { return args[0] }
	fmt.Println(collection.AllN(identity, []bool{}), collection.AnyN(identity, []bool{}))
	// Output: true false
}
