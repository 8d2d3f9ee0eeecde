package eval

import (
	"fmt"

	"github.com/xiaq/inductive/pkg/compare"
	"github.com/xiaq/inductive/pkg/list"
	"github.com/xiaq/inductive/pkg/nat"
)

// Numerical operations.

func init() {
	addBuiltinFns(map[string]builtinImpl{
		// Comparison
		"<":  fn2e(lt),
		"<=": fn2e(le),
		">":  fn2e(gt),
		">=": fn2e(ge),
		"=":  fn2(Equal),

		// Arithmetic
		"+":      variadic(add),
		"-":      fn2(nat.Nat.Sub),
		"*":      variadic(mul),
		"/":      fn2(div),
		"//":     fn2(nat.Nat.FloorDiv),
		"%":      fn2(nat.Nat.Mod),
		"divmod": fn2(divmod),

		// Predicates
		"odd?":  fn1(nat.Nat.IsOdd),
		"even?": fn1(nat.Nat.IsEven),

		// Derived
		"succ":   fn1(nat.Next),
		"pred":   fn1(nat.Pred),
		"double": fn1(nat.Double),
		"square": fn1(nat.Square),

		// Conversions
		"int":   fn1(nat.Nat.Int),
		"bytes": fn1(bytesFn),
	})
}

func cmpFn(a, b any) (compare.Ordering, error) {
	o, ok := Cmp(a, b)
	if !ok {
		return o, fmt.Errorf("%w: %s and %s", ErrUncomparable, Kind(a), Kind(b))
	}
	return o, nil
}

func lt(a, b any) (bool, error) {
	o, err := cmpFn(a, b)
	return o == compare.Less, err
}

func le(a, b any) (bool, error) {
	o, err := cmpFn(a, b)
	return o != compare.Greater, err
}

func gt(a, b any) (bool, error) {
	o, err := cmpFn(a, b)
	return o == compare.Greater, err
}

func ge(a, b any) (bool, error) {
	o, err := cmpFn(a, b)
	return o != compare.Less, err
}

func add(ns ...nat.Nat) nat.Nat {
	return list.Fold(list.New(ns...), nat.Nat.Add, nat.Nat(nat.Zero{}))
}

func mul(ns ...nat.Nat) nat.Nat {
	return list.Fold(list.New(ns...), nat.Nat.Mul, nat.One)
}

func div(a, b nat.Nat) any { return optional(a.Div(b)) }

func divmod(a, b nat.Nat) any {
	q, r, ok := a.DivMod(b)
	if !ok {
		return None
	}
	return list.New[any](q, r)
}

// Returns the unary byte representation of n, as a list of zeros.
func bytesFn(n nat.Nat) list.List[any] {
	return list.Map(list.FromSlice(n.Bytes()), func(b byte) any {
		return nat.MustFromInt(int(b))
	})
}
