// Package list implements persistent singly-linked lists defined
// inductively.
//
// A List is either [Nil] or a [Cons] of a value and another List. Lists are
// immutable; every operation returns a new list, sharing structure with its
// inputs where possible. Indices, lengths and counts are [nat.Nat] values.
//
// Operations that may legitimately fail to produce a result, such as
// searching or accessing an index that is out of bounds, report it with an
// additional boolean return value. Operations with an "Unsafe" suffix assume
// an invariant instead, and panic if it does not hold.
//
// Operations whose signatures need additional type parameters, or a
// comparable element type, are functions rather than methods.
package list

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xiaq/inductive/pkg/compare"
	"github.com/xiaq/inductive/pkg/nat"
)

// List is a persistent list. The only implementations are [Nil] and [Cons].
type List[T any] interface {
	// Len returns the number of values in the list as an int.
	Len() int
	// Index returns the value at position i. If i is out of range, it
	// returns an error of type *IndexError.
	Index(i int) (T, error)
	// Slice returns the values of the list in a new slice.
	Slice() []T
	// Iterate calls f with each value in order, stopping when f returns
	// false.
	Iterate(f func(T) bool)
	// String formats the list like [3, 5, 2].
	String() string

	// Length returns the number of values in the list.
	Length() nat.Nat
	// IsEmpty reports whether the list is Nil.
	IsEmpty() bool

	// ForAll reports whether predicate holds for every value.
	ForAll(predicate func(T) bool) bool
	// ForAny reports whether predicate holds for at least one value.
	ForAny(predicate func(T) bool) bool
	// ForOnlyOne reports whether predicate holds for exactly one value.
	ForOnlyOne(predicate func(T) bool) bool

	// Arrange moves each value to the index f returns for it. It fails if f
	// returns the same index for two values or an index out of bounds.
	Arrange(f func(T) nat.Nat) (List[T], bool)
	// ArrangeUnsafe is like Arrange, but panics with ErrNotInjective
	// instead of failing.
	ArrangeUnsafe(f func(T) nat.Nat) List[T]
	// ArrangeWithIndex is like Arrange, but f also takes the current index of
	// the value.
	ArrangeWithIndex(f func(index nat.Nat, value T) nat.Nat) (List[T], bool)
	// ArrangeWithIndexUnsafe is like ArrangeWithIndex, but panics with
	// ErrNotInjective instead of failing.
	ArrangeWithIndexUnsafe(f func(index nat.Nat, value T) nat.Nat) List[T]
	// MakeFirst moves the value at index to the front, keeping the order of
	// the other values. It fails if index is out of bounds.
	MakeFirst(index nat.Nat) (List[T], bool)
	// Reverse returns the values in reverse order.
	Reverse() List[T]
	// Sort returns the values ordered by comparator. Values comparing equal
	// keep their relative order.
	Sort(comparator compare.Comparator[T, T]) List[T]

	// Prepend returns [item, ...list].
	Prepend(item T) Cons[T]
	// Append returns [...list, item].
	Append(item T) Cons[T]
	// Concatenate returns [...list, ...other].
	Concatenate(other List[T]) List[T]
	// Remove returns the value at index and the list without it. It fails
	// if index is out of bounds.
	Remove(index nat.Nat) (T, List[T], bool)
	// WithoutFirst returns the list without its first value, or the list
	// itself if it is empty.
	WithoutFirst() List[T]
	// WithoutLast returns the list without its last value, or the list
	// itself if it is empty.
	WithoutLast() List[T]

	// Find returns the first value for which predicate holds.
	Find(predicate func(T) bool) (T, bool)
	// FindWithIndex is like Find, but predicate also takes the index of the
	// value.
	FindWithIndex(predicate func(index nat.Nat, value T) bool) (T, bool)

	// Keep returns the values for which predicate holds.
	Keep(predicate func(T) bool) List[T]
	// Discard returns the values for which predicate does not hold.
	Discard(predicate func(T) bool) List[T]

	// FoldCons combines the values from left to right with f, using the
	// first value as the seed. It fails if the list is empty.
	FoldCons(f func(T, T) T) (T, bool)
	// Accumulate returns the seed followed by every intermediate result of
	// folding the list with f.
	Accumulate(f func(T, T) T, initial T) List[T]
	// AccumulateCons returns every intermediate result of FoldCons,
	// starting with the first value. It fails if the list is empty.
	AccumulateCons(f func(T, T) T) (List[T], bool)

	// Cut splits the list before the first value for which predicate
	// holds. If there is none, the second part is empty.
	Cut(predicate func(T) bool) (List[T], List[T])
	// CutWithIndex is like Cut, but predicate also takes the index of the
	// value.
	CutWithIndex(predicate func(index nat.Nat, value T) bool) (List[T], List[T])
	// CutAt splits the list before index. Cutting at the length of the list
	// yields the list and Nil. It fails if index is greater than the length.
	CutAt(index nat.Nat) (List[T], List[T], bool)
	// CutAtClamped is like CutAt, but clamps index to the length of the list.
	CutAtClamped(index nat.Nat) (List[T], List[T])

	isList()
}

// Pair is a pair of values.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// ErrIndexOutOfRange is wrapped by all *IndexError values.
var ErrIndexOutOfRange = errors.New("list index out of range")

// ErrNotInjective is the panic value of the Unsafe arrangement methods when
// the arranging function does not map the indices of the list onto
// themselves one-to-one.
var ErrNotInjective = errors.New("invariant violation: function is not injective")

// IndexError is returned by [List.Index] for an index out of range.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("list index out of range: %d, length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// New returns a list of the given items.
func New[T any](items ...T) List[T] {
	var l List[T] = Nil[T]{}
	for i := len(items) - 1; i >= 0; i-- {
		l = Cons[T]{items[i], l}
	}
	return l
}

// FromSlice returns a list of the values in s.
func FromSlice[T any](s []T) List[T] { return New(s...) }

// Empty returns an empty list.
func Empty[T any]() List[T] { return Nil[T]{} }

func format[T any](l List[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	l.Iterate(func(v T) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, v)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
