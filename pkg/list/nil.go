package list

import (
	"github.com/xiaq/inductive/pkg/compare"
	"github.com/xiaq/inductive/pkg/nat"
)

// Nil is the empty list.
type Nil[T any] struct{}

func (Nil[T]) isList() {}

func (Nil[T]) Len() int { return 0 }

func (Nil[T]) Index(i int) (T, error) {
	var zero T
	return zero, &IndexError{i, 0}
}

func (Nil[T]) Slice() []T               { return nil }
func (Nil[T]) Iterate(func(T) bool)     {}
func (Nil[T]) String() string           { return "[]" }
func (Nil[T]) Length() nat.Nat          { return nat.Zero{} }
func (Nil[T]) IsEmpty() bool            { return true }
func (Nil[T]) ForAll(func(T) bool) bool { return true }
func (Nil[T]) ForAny(func(T) bool) bool { return false }

func (Nil[T]) ForOnlyOne(func(T) bool) bool { return false }

func (l Nil[T]) Arrange(f func(T) nat.Nat) (List[T], bool) {
	return arrangeWithIndex[T](l, ignoreIndex(f))
}

func (l Nil[T]) ArrangeUnsafe(f func(T) nat.Nat) List[T] {
	return arrangeWithIndexUnsafe[T](l, ignoreIndex(f))
}

func (l Nil[T]) ArrangeWithIndex(f func(nat.Nat, T) nat.Nat) (List[T], bool) {
	return arrangeWithIndex[T](l, f)
}

func (l Nil[T]) ArrangeWithIndexUnsafe(f func(nat.Nat, T) nat.Nat) List[T] {
	return arrangeWithIndexUnsafe[T](l, f)
}

// Every index is out of bounds.
func (Nil[T]) MakeFirst(nat.Nat) (List[T], bool) { return nil, false }

func (l Nil[T]) Reverse() List[T]                      { return l }
func (l Nil[T]) Sort(compare.Comparator[T, T]) List[T] { return l }
func (l Nil[T]) Prepend(item T) Cons[T]                { return Cons[T]{item, l} }
func (l Nil[T]) Append(item T) Cons[T]                 { return Cons[T]{item, l} }
func (Nil[T]) Concatenate(other List[T]) List[T]       { return other }

func (Nil[T]) Remove(nat.Nat) (T, List[T], bool) {
	var zero T
	return zero, nil, false
}

func (l Nil[T]) WithoutFirst() List[T] { return l }
func (l Nil[T]) WithoutLast() List[T]  { return l }

func (Nil[T]) Find(func(T) bool) (T, bool) {
	var zero T
	return zero, false
}

func (Nil[T]) FindWithIndex(func(nat.Nat, T) bool) (T, bool) {
	var zero T
	return zero, false
}

func (l Nil[T]) Keep(func(T) bool) List[T]    { return l }
func (l Nil[T]) Discard(func(T) bool) List[T] { return l }

func (Nil[T]) FoldCons(func(T, T) T) (T, bool) {
	var zero T
	return zero, false
}

func (l Nil[T]) Accumulate(_ func(T, T) T, initial T) List[T] {
	return Cons[T]{initial, l}
}

func (Nil[T]) AccumulateCons(func(T, T) T) (List[T], bool) { return nil, false }

func (l Nil[T]) Cut(func(T) bool) (List[T], List[T]) { return l, l }

func (l Nil[T]) CutWithIndex(func(nat.Nat, T) bool) (List[T], List[T]) {
	return l, l
}

func (l Nil[T]) CutAt(index nat.Nat) (List[T], List[T], bool) {
	return cutAt[T](l, index)
}

func (l Nil[T]) CutAtClamped(nat.Nat) (List[T], List[T]) { return l, l }
