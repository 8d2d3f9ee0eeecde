package eval

import (
	"fmt"
	"reflect"

	"github.com/xiaq/inductive/pkg/compare"
	"github.com/xiaq/inductive/pkg/list"
	"github.com/xiaq/inductive/pkg/nat"
)

// Values manipulated by the evaluator have one of the following types:
//
//   - nat.Nat
//   - bool
//   - int, the result of the int builtin
//   - list.List[any], whose elements are values
//   - list.Pair[any, any], whose fields are values
//   - *Builtin
//   - the value of None

type noneType struct{}

func (noneType) String() string { return "none" }

// None is the value of absent results, such as dividing by zero.
var None any = noneType{}

var (
	natType  = reflect.TypeOf((*nat.Nat)(nil)).Elem()
	listType = reflect.TypeOf((*list.List[any])(nil)).Elem()
)

// Kind returns the name of the kind of a value, used in error messages.
func Kind(v any) string {
	switch v.(type) {
	case nat.Nat:
		return "nat"
	case bool:
		return "bool"
	case int:
		return "int"
	case list.List[any]:
		return "list"
	case list.Pair[any, any]:
		return "pair"
	case *Builtin:
		return "builtin"
	case noneType:
		return "none"
	default:
		return fmt.Sprintf("!!%T", v)
	}
}

func kindOfType(t reflect.Type) string {
	switch t {
	case natType:
		return "nat"
	case listType:
		return "list"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Pointer:
		return "builtin"
	}
	return t.String()
}

// Repr returns the representation of a value as printed by Eval.
func Repr(v any) string { return fmt.Sprint(v) }

// Cmp compares two values. Nats, bools and ints are compared in the natural
// order, with false before true. Lists and pairs are compared
// lexicographically. The second return value is false if the values are of
// different kinds or cannot be ordered.
func Cmp(a, b any) (compare.Ordering, bool) {
	switch a := a.(type) {
	case nat.Nat:
		if b, ok := b.(nat.Nat); ok {
			return a.Compare(b), true
		}
	case bool:
		if b, ok := b.(bool); ok {
			switch {
			case a == b:
				return compare.Equal, true
			case !a:
				return compare.Less, true
			default:
				return compare.Greater, true
			}
		}
	case int:
		if b, ok := b.(int); ok {
			return compare.Builtin(a, b), true
		}
	case list.List[any]:
		if b, ok := b.(list.List[any]); ok {
			return cmpLists(a, b)
		}
	case list.Pair[any, any]:
		if b, ok := b.(list.Pair[any, any]); ok {
			return cmpLists(list.New(a.First, a.Second), list.New(b.First, b.Second))
		}
	case noneType:
		if _, ok := b.(noneType); ok {
			return compare.Equal, true
		}
	}
	return compare.Equal, false
}

func cmpLists(a, b list.List[any]) (compare.Ordering, bool) {
	ca, aok := a.(list.Cons[any])
	cb, bok := b.(list.Cons[any])
	if !aok || !bok {
		return a.Length().Compare(b.Length()), true
	}
	if o, ok := Cmp(ca.Value, cb.Value); !ok || o != compare.Equal {
		return o, ok
	}
	return cmpLists(ca.Next, cb.Next)
}

// Equal reports whether two values are equal. Builtins are only equal to
// themselves.
func Equal(a, b any) bool {
	if a, ok := a.(*Builtin); ok {
		return a == b
	}
	o, ok := Cmp(a, b)
	return ok && o == compare.Equal
}

func optional(v any, ok bool) any {
	if !ok {
		return None
	}
	return v
}

func toAnyList[T any](l list.List[T]) list.List[any] {
	return list.Map(l, func(v T) any { return v })
}
