package list

import (
	"cmp"

	"github.com/xiaq/inductive/pkg/compare"
	"github.com/xiaq/inductive/pkg/nat"
)

// Map returns [f(item0), ..., f(itemN)].
func Map[T, U any](l List[T], f func(T) U) List[U] {
	c, ok := l.(Cons[T])
	if !ok {
		return Nil[U]{}
	}
	return Cons[U]{f(c.Value), Map(c.Next, f)}
}

// FlatMap returns [...f(item0), ..., ...f(itemN)].
func FlatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	c, ok := l.(Cons[T])
	if !ok {
		return Nil[U]{}
	}
	return f(c.Value).Concatenate(FlatMap(c.Next, f))
}

// Combine returns [f(a0, b0), ..., f(aN, bN)]. If the lists have different
// lengths, the result is as long as the shorter one.
func Combine[T, U, V any](l List[T], other List[U], f func(T, U) V) List[V] {
	a, ok := l.(Cons[T])
	if !ok {
		return Nil[V]{}
	}
	b, ok := other.(Cons[U])
	if !ok {
		return Nil[V]{}
	}
	return Cons[V]{f(a.Value, b.Value), Combine(a.Next, b.Next, f)}
}

// Fold returns initial OP item0 OP ... OP itemN, where a OP b is f(a, b),
// evaluated from left to right.
func Fold[T, U any](l List[T], f func(U, T) U, initial U) U {
	c, ok := l.(Cons[T])
	if !ok {
		return initial
	}
	return Fold(c.Next, f, f(initial, c.Value))
}

// Pairwise returns [(item0, item1), (item1, item2), ..., (itemN-1, itemN)].
func Pairwise[T any](l List[T]) List[Pair[T, T]] {
	c, ok := l.(Cons[T])
	if !ok {
		return Nil[Pair[T, T]]{}
	}
	next, ok := c.Next.(Cons[T])
	if !ok {
		return Nil[Pair[T, T]]{}
	}
	return Cons[Pair[T, T]]{Pair[T, T]{c.Value, next.Value}, Pairwise[T](next)}
}

// SortBy sorts the list by the keys key extracts from the values.
func SortBy[T any, K compare.Comparable[K]](l List[T], key func(T) K) List[T] {
	return l.Sort(compare.By(key))
}

// SortComparable sorts a list whose values are comparable with each other.
func SortComparable[T compare.Comparable[T]](l List[T]) List[T] {
	return l.Sort(compare.Of[T]())
}

// SortOrdered sorts a list of values supporting the < operator.
func SortOrdered[T cmp.Ordered](l List[T]) List[T] {
	return l.Sort(compare.Builtin[T])
}

// Contains reports whether item is in the list.
func Contains[T comparable](l List[T], item T) bool {
	return l.ForAny(func(v T) bool { return v == item })
}

// Occurrences returns how many times item appears in the list.
func Occurrences[T comparable](l List[T], item T) nat.Nat {
	return l.Keep(func(v T) bool { return v == item }).Length()
}

// IsUnique reports whether item appears exactly once in the list.
func IsUnique[T comparable](l List[T], item T) bool {
	return l.ForOnlyOne(func(v T) bool { return v == item })
}

// Deduplicate keeps the first appearance of each value.
func Deduplicate[T comparable](l List[T]) List[T] {
	c, ok := l.(Cons[T])
	if !ok {
		return l
	}
	rest := c.Next.Discard(func(v T) bool { return v == c.Value })
	return Cons[T]{c.Value, Deduplicate(rest)}
}

// Equal reports whether two lists have the same values in the same order.
func Equal[T comparable](a, b List[T]) bool {
	ca, ok := a.(Cons[T])
	if !ok {
		return b.IsEmpty()
	}
	cb, ok := b.(Cons[T])
	return ok && ca.Value == cb.Value && Equal(ca.Next, cb.Next)
}

// Join concatenates all the lists in l.
func Join[T any](l List[List[T]]) List[T] {
	return FlatMap(l, func(x List[T]) List[T] { return x })
}

// Transpose swaps the rows and columns of l. If the rows have different
// lengths, the result has as many rows as the shortest row of l has values.
func Transpose[T any](l List[List[T]]) List[List[T]] {
	if l.IsEmpty() || l.ForAny(List[T].IsEmpty) {
		return Nil[List[T]]{}
	}
	heads := Map(l, func(row List[T]) T { return row.(Cons[T]).Value })
	tails := Map(l, List[T].WithoutFirst)
	return Cons[List[T]]{heads, Transpose(tails)}
}

// MapApply applies each function in l to argument.
func MapApply[T, U any](l List[func(T) U], argument T) List[U] {
	return Map(l, func(f func(T) U) U { return f(argument) })
}

// MapApplyBinary applies each function in l to left and right.
func MapApplyBinary[T, U, V any](l List[func(T, U) V], left T, right U) List[V] {
	return Map(l, func(f func(T, U) V) V { return f(left, right) })
}
