package list

import (
	"github.com/xiaq/inductive/pkg/compare"
	"github.com/xiaq/inductive/pkg/nat"
)

// Implementations of the methods that are defined in terms of other methods
// of List, shared by Nil and Cons.

func ignoreIndex[T, R any](f func(T) R) func(nat.Nat, T) R {
	return func(_ nat.Nat, v T) R { return f(v) }
}

func arrangeWithIndex[T any](l List[T], f func(nat.Nat, T) nat.Nat) (List[T], bool) {
	return place(l, targetsOf(l, f, nat.Zero{}), nat.Zero{}, l.Length())
}

// Returns the index each value is to be moved to, in the order of the values.
func targetsOf[T any](l List[T], f func(nat.Nat, T) nat.Nat, i nat.Nat) List[nat.Nat] {
	c, ok := l.(Cons[T])
	if !ok {
		return Nil[nat.Nat]{}
	}
	return Cons[nat.Nat]{f(i, c.Value), targetsOf(c.Next, f, nat.Next(i))}
}

// Builds the list from position i onwards by finding, for each position, the
// one value targeting it. Since there are as many values as positions, every
// position having exactly one value means that no value targets the same
// position as another or a position out of bounds.
func place[T any](l List[T], targets List[nat.Nat], i, length nat.Nat) (List[T], bool) {
	if i.GreaterEqual(length) {
		return Nil[T]{}, true
	}
	if !targets.ForOnlyOne(i.Equal) {
		return nil, false
	}
	rest, ok := place(l, targets, nat.Next(i), length)
	if !ok {
		return nil, false
	}
	return Cons[T]{sourceOf(l, targets, i), rest}, true
}

// Returns the value targeting i. There must be one.
func sourceOf[T any](l List[T], targets List[nat.Nat], i nat.Nat) T {
	c, t := l.(Cons[T]), targets.(Cons[nat.Nat])
	if t.Value.Equal(i) {
		return c.Value
	}
	return sourceOf(c.Next, t.Next, i)
}

func arrangeWithIndexUnsafe[T any](l List[T], f func(nat.Nat, T) nat.Nat) List[T] {
	arranged, ok := arrangeWithIndex(l, f)
	if !ok {
		panic(ErrNotInjective)
	}
	return arranged
}

func makeFirst[T any](l List[T], index nat.Nat) (List[T], bool) {
	if !index.Less(l.Length()) {
		return nil, false
	}
	return l.ArrangeWithIndex(func(i nat.Nat, _ T) nat.Nat {
		switch {
		case i.Equal(index):
			// Move it to the front.
			return nat.Zero{}
		case i.Less(index):
			// Shift right to leave room for the new first value.
			return nat.Next(i)
		default:
			return i
		}
	})
}

func cutAt[T any](l List[T], index nat.Nat) (List[T], List[T], bool) {
	if index.Greater(l.Length()) {
		return nil, nil, false
	}
	before, after := l.CutWithIndex(func(i nat.Nat, _ T) bool { return i.Equal(index) })
	return before, after, true
}

// A stable merge sort. Lists of length 2 or more are cut into two non-empty
// halves, so the recursion terminates.
func mergeSort[T any](l List[T], c compare.Comparator[T, T]) List[T] {
	if l.Length().Less(nat.Two) {
		return l
	}
	before, after := l.CutAtClamped(l.Length().FloorDiv(nat.Two))
	return merge(mergeSort(before, c), mergeSort(after, c), c)
}

func merge[T any](a, b List[T], c compare.Comparator[T, T]) List[T] {
	ca, ok := a.(Cons[T])
	if !ok {
		return b
	}
	cb, ok := b.(Cons[T])
	if !ok {
		return a
	}
	if c(cb.Value, ca.Value) == compare.Less {
		return Cons[T]{cb.Value, merge(a, cb.Next, c)}
	}
	return Cons[T]{ca.Value, merge(ca.Next, b, c)}
}
