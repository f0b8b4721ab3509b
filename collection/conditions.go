package collection

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-combinators/commonerrors"
)

// Conditions is a list of boolean conditions which can be combined.
type Conditions []bool

// NewConditions creates an empty set of conditions.
func NewConditions(capacity int) Conditions {
	return make([]bool, 0, capacity)
}

// NewConditionsFromValues creates a set of conditions.
func NewConditionsFromValues(conditions ...bool) Conditions {
	c := NewConditions(len(conditions))
	c.Add(conditions...)
	return c
}

// Add adds conditions and returns itself.
func (c *Conditions) Add(conditions ...bool) Conditions {
	if c == nil {
		return nil
	}
	*c = append(*c, conditions...)
	return *c
}

// ForEach will execute function each() on every condition unless an error is returned and will end at this point.
func (c *Conditions) ForEach(each func(bool) error) error {
	if c == nil || len(*c) == 0 {
		return commonerrors.UndefinedParameter("the collection of conditions is empty")
	}
	for i := range *c {
		if err := each((*c)[i]); err != nil {
			return err
		}
	}
	return nil
}

// Contains returns whether at least one of the conditions has the value condition.
func (c *Conditions) Contains(condition bool) bool {
	if c == nil {
		return false
	}
	if condition {
		return c.Any()
	}
	return AnyFalse(*c...)
}

// All returns true if all conditions are true, which holds when there are none.
func (c *Conditions) All() bool {
	if c == nil {
		return true
	}
	return All(*c)
}

// Any returns true if there is at least one condition which is true.
func (c *Conditions) Any() bool {
	if c == nil {
		return false
	}
	return Any(*c)
}

// Concat appends more to the conditions and returns itself.
func (c *Conditions) Concat(more *Conditions) Conditions {
	if more == nil {
		return c.Add()
	}
	return c.Add(*more...)
}

// Negate returns a new set of conditions with negated values.
func (c *Conditions) Negate() Conditions {
	if c == nil {
		return nil
	}
	return Negate(*c...)
}

// And performs an `and` operation on all conditions
func (c *Conditions) And() bool {
	return c.All()
}

// Or performs an `or` operation on all conditions
func (c *Conditions) Or() bool {
	return c.Any()
}

// Xor performs a `xor` operation on all conditions
func (c *Conditions) Xor() bool {
	if c == nil {
		return false
	}
	return Xor(*c...)
}

// OneHot returns true if one, and only one, condition is true.
func (c *Conditions) OneHot() bool {
	if c == nil {
		return false
	}
	return OneHot(*c...)
}

//
// Boolean reductions
//

// Any returns true if there is at least one element of the slice which is true.
func Any(slice []bool) bool {
	return AnySequence(slices.Values(slice))
}

// AnySequence returns true if there is at least one element of the sequence which is true.
func AnySequence(seq iter.Seq[bool]) bool {
	if seq == nil {
		return false
	}
	for e := range seq {
		if e {
			return true
		}
	}
	return false
}

// AnyTrue returns whether there is a value set to true
func AnyTrue(values ...bool) bool {
	return Any(values)
}

// AnyFalseSequence returns true if there is at least one element of the sequence which is false.
func AnyFalseSequence(seq iter.Seq[bool]) bool {
	if seq == nil {
		return false
	}
	for e := range seq {
		if !e {
			return true
		}
	}
	return false
}

// AnyFalse returns whether there is a value set to false
func AnyFalse(values ...bool) bool {
	return AnyFalseSequence(slices.Values(values))
}

// AllSequence returns true if all items of the sequence are true. This holds for an empty sequence.
func AllSequence(seq iter.Seq[bool]) bool {
	return !AnyFalseSequence(seq)
}

// All returns true if all items of the slice are true. This holds for an empty slice.
func All(slice []bool) bool {
	return AllSequence(slices.Values(slice))
}

// AllTrue returns whether all values are true.
func AllTrue(values ...bool) bool {
	return All(values)
}

// Negate returns the slice with contrary values.
func Negate(values ...bool) []bool {
	if values == nil {
		return nil
	}
	return Map(values, func(b bool) bool { return !b })
}

// And performs an 'and' operation on an array of booleans.
func And(values ...bool) bool {
	return All(values)
}

// Or performs an 'or' operation on an array of booleans.
func Or(values ...bool) bool {
	return Any(values)
}

// Xor performs a `xor` on an array of booleans. This behaves like an XOR gate; it returns true if the number of true values is odd, and false if the number of true values is zero or even.
func Xor(values ...bool) bool {
	// false is the neutral element of the xor operator
	return Reduce(values, false, xor)
}

// xor(true, true)   = false
// xor(false, false) = false
// xor(true, false)  = true
func xor(a, b bool) bool {
	return a != b
}

// OneHot returns true if one, and only one, of the supplied values is true. See https://en.wikipedia.org/wiki/One-hot
func OneHot(values ...bool) bool {
	return Reduce(values, 0, func(count int, b bool) int {
		if b {
			count++
		}
		return count
	}) == 1
}
