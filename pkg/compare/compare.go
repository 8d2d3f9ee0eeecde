// Package compare defines the three-way ordering vocabulary shared by the
// inductive data types.
package compare

import (
	"cmp"
	"strconv"
)

// Ordering is the result of comparing a left value with a right value.
type Ordering int8

// Possible Ordering values.
const (
	Less    Ordering = -1 // left < right
	Equal   Ordering = 0  // left == right
	Greater Ordering = 1  // left > right
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "Ordering(" + strconv.Itoa(int(o)) + ")"
	}
}

// Int returns -1, 0 or 1, in the convention of the standard library's compare
// functions.
func (o Ordering) Int() int { return int(o) }

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering { return -o }

// FromInt converts the result of a standard library compare function, which
// may be any negative or positive number, to an Ordering.
func FromInt(i int) Ordering {
	switch {
	case i < 0:
		return Less
	case i > 0:
		return Greater
	default:
		return Equal
	}
}

// Comparable is implemented by values of type T that can be compared with
// values of type U.
//
// A type T satisfying Comparable[T] is "self-comparable"; generic code
// spells this as the constraint [T Comparable[T]].
type Comparable[U any] interface {
	// Compare compares the receiver (on the left) with other (on the right).
	Compare(other U) Ordering
}

// Comparator is a function comparing a T on the left with a U on the right.
type Comparator[T, U any] func(left T, right U) Ordering

// Builtin compares two values of a type supporting the < operator.
func Builtin[T cmp.Ordered](a, b T) Ordering {
	return FromInt(cmp.Compare(a, b))
}

// Of returns the Comparator induced by the Compare method of a
// self-comparable type.
func Of[T Comparable[T]]() Comparator[T, T] {
	return func(left, right T) Ordering { return left.Compare(right) }
}

// By returns a Comparator that compares values by the keys key extracts from
// them.
func By[T any, K Comparable[K]](key func(T) K) Comparator[T, T] {
	return func(left, right T) Ordering { return key(left).Compare(key(right)) }
}

// Flip returns a Comparator for the reverse order of c.
func Flip[T any](c Comparator[T, T]) Comparator[T, T] {
	return func(left, right T) Ordering { return c(left, right).Reverse() }
}
