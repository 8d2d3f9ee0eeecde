package list

import (
	"github.com/xiaq/inductive/pkg/compare"
	"github.com/xiaq/inductive/pkg/nat"
)

// Cons is a value followed by the rest of the list.
type Cons[T any] struct {
	Value T
	Next  List[T]
}

func (Cons[T]) isList() {}

// Uncons returns the fields of the Cons.
func (l Cons[T]) Uncons() (T, List[T]) { return l.Value, l.Next }

// FoldConsSafe is like FoldCons, but returns the result directly since the
// receiver is known not to be empty.
func (l Cons[T]) FoldConsSafe(f func(T, T) T) T {
	return Fold(l.Next, f, l.Value)
}

func (l Cons[T]) Len() int { return 1 + l.Next.Len() }

func (l Cons[T]) Index(i int) (T, error) {
	if v, ok := at[T](l, i); ok {
		return v, nil
	}
	var zero T
	return zero, &IndexError{i, l.Len()}
}

func at[T any](l List[T], i int) (T, bool) {
	c, ok := l.(Cons[T])
	if !ok || i < 0 {
		var zero T
		return zero, false
	}
	if i == 0 {
		return c.Value, true
	}
	return at(c.Next, i-1)
}

func (l Cons[T]) Slice() []T {
	s := make([]T, 0, l.Len())
	l.Iterate(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

func (l Cons[T]) Iterate(f func(T) bool) {
	if f(l.Value) {
		l.Next.Iterate(f)
	}
}

func (l Cons[T]) String() string { return format[T](l) }

func (l Cons[T]) Length() nat.Nat { return nat.Succ{Pred: l.Next.Length()} }

func (Cons[T]) IsEmpty() bool { return false }

func (l Cons[T]) ForAll(predicate func(T) bool) bool {
	return Fold(Map[T](l, predicate), func(a, b bool) bool { return a && b }, true)
}

func (l Cons[T]) ForAny(predicate func(T) bool) bool {
	return Fold(Map[T](l, predicate), func(a, b bool) bool { return a || b }, false)
}

func (l Cons[T]) ForOnlyOne(predicate func(T) bool) bool {
	return l.Keep(predicate).Length() == nat.One
}

func (l Cons[T]) Arrange(f func(T) nat.Nat) (List[T], bool) {
	return arrangeWithIndex[T](l, ignoreIndex(f))
}

func (l Cons[T]) ArrangeUnsafe(f func(T) nat.Nat) List[T] {
	return arrangeWithIndexUnsafe[T](l, ignoreIndex(f))
}

func (l Cons[T]) ArrangeWithIndex(f func(nat.Nat, T) nat.Nat) (List[T], bool) {
	return arrangeWithIndex[T](l, f)
}

func (l Cons[T]) ArrangeWithIndexUnsafe(f func(nat.Nat, T) nat.Nat) List[T] {
	return arrangeWithIndexUnsafe[T](l, f)
}

func (l Cons[T]) MakeFirst(index nat.Nat) (List[T], bool) {
	return makeFirst[T](l, index)
}

func (l Cons[T]) Reverse() List[T] {
	last := l.Length().Sub(nat.One)
	return l.ArrangeWithIndexUnsafe(func(i nat.Nat, _ T) nat.Nat {
		return last.Sub(i)
	})
}

func (l Cons[T]) Sort(comparator compare.Comparator[T, T]) List[T] {
	return mergeSort[T](l, comparator)
}

func (l Cons[T]) Prepend(item T) Cons[T] { return Cons[T]{item, l} }

func (l Cons[T]) Append(item T) Cons[T] {
	return Cons[T]{l.Value, l.Next.Append(item)}
}

func (l Cons[T]) Concatenate(other List[T]) List[T] {
	return Cons[T]{l.Value, l.Next.Concatenate(other)}
}

func (l Cons[T]) Remove(index nat.Nat) (T, List[T], bool) {
	arranged, ok := l.MakeFirst(index)
	if !ok {
		var zero T
		return zero, nil, false
	}
	v, rest := arranged.(Cons[T]).Uncons()
	return v, rest, true
}

func (l Cons[T]) WithoutFirst() List[T] { return l.Next }

func (l Cons[T]) WithoutLast() List[T] {
	if l.Next.IsEmpty() {
		return l.Next
	}
	return Cons[T]{l.Value, l.Next.WithoutLast()}
}

func (l Cons[T]) Find(predicate func(T) bool) (T, bool) {
	return l.FindWithIndex(ignoreIndex(predicate))
}

func (l Cons[T]) FindWithIndex(predicate func(nat.Nat, T) bool) (T, bool) {
	return findWithIndex[T](l, predicate, nat.Zero{})
}

func findWithIndex[T any](l List[T], predicate func(nat.Nat, T) bool, i nat.Nat) (T, bool) {
	c, ok := l.(Cons[T])
	if !ok {
		var zero T
		return zero, false
	}
	if predicate(i, c.Value) {
		return c.Value, true
	}
	return findWithIndex(c.Next, predicate, nat.Next(i))
}

func (l Cons[T]) Keep(predicate func(T) bool) List[T] {
	if predicate(l.Value) {
		return Cons[T]{l.Value, l.Next.Keep(predicate)}
	}
	return l.Next.Keep(predicate)
}

func (l Cons[T]) Discard(predicate func(T) bool) List[T] {
	return l.Keep(func(v T) bool { return !predicate(v) })
}

func (l Cons[T]) FoldCons(f func(T, T) T) (T, bool) {
	return l.FoldConsSafe(f), true
}

func (l Cons[T]) Accumulate(f func(T, T) T, initial T) List[T] {
	return Cons[T]{initial, l.Next.Accumulate(f, f(initial, l.Value))}
}

func (l Cons[T]) AccumulateCons(f func(T, T) T) (List[T], bool) {
	return l.Next.Accumulate(f, l.Value), true
}

func (l Cons[T]) Cut(predicate func(T) bool) (List[T], List[T]) {
	return l.CutWithIndex(ignoreIndex(predicate))
}

func (l Cons[T]) CutWithIndex(predicate func(nat.Nat, T) bool) (List[T], List[T]) {
	return cutWithIndex[T](l, predicate, nat.Zero{})
}

func cutWithIndex[T any](l List[T], predicate func(nat.Nat, T) bool, i nat.Nat) (List[T], List[T]) {
	c, ok := l.(Cons[T])
	if !ok || predicate(i, c.Value) {
		return Nil[T]{}, l
	}
	before, after := cutWithIndex(c.Next, predicate, nat.Next(i))
	return Cons[T]{c.Value, before}, after
}

func (l Cons[T]) CutAt(index nat.Nat) (List[T], List[T], bool) {
	return cutAt[T](l, index)
}

func (l Cons[T]) CutAtClamped(index nat.Nat) (List[T], List[T]) {
	before, after, _ := cutAt[T](l, nat.Min(index, l.Length()))
	return before, after
}
