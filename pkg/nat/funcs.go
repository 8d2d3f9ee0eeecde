package nat

import (
	"errors"
	"strconv"
)

// Next returns the successor of n.
func Next(n Nat) Nat { return Succ{n} }

// Pred returns the predecessor of n, or Zero if n is Zero.
func Pred(n Nat) Nat {
	if s, ok := n.(Succ); ok {
		return s.Pred
	}
	return n
}

// Double returns n + n.
func Double(n Nat) Nat { return n.Add(n) }

// Square returns n * n.
func Square(n Nat) Nat { return n.Mul(n) }

// Ramp returns max(0, n), which is always n.
func Ramp(n Nat) Nat { return n }

// RampInverse returns min(0, n), which is always Zero.
func RampInverse(Nat) Nat { return Zero{} }

// Max returns the greater of n and m.
func Max(n, m Nat) Nat {
	if n.GreaterEqual(m) {
		return n
	}
	return m
}

// Min returns the lesser of n and m.
func Min(n, m Nat) Nat {
	if n.LessEqual(m) {
		return n
	}
	return m
}

// AsIntegerRatio returns a pair of integers whose ratio is n, in lowest terms
// and with a positive denominator.
func AsIntegerRatio(n Nat) (int, int) { return n.Int(), 1 }

// ErrNegative is the panic value of [MustFromInt] when called with a negative
// argument.
var ErrNegative = errors.New("argument must not be negative")

// FromInt converts v to a Nat. The second return value is false iff v is
// negative.
func FromInt(v int) (Nat, bool) {
	if v < 0 {
		return nil, false
	}
	return build(v), true
}

// MustFromInt is like [FromInt], but panics with [ErrNegative] when v is
// negative.
func MustFromInt(v int) Nat {
	n, ok := FromInt(v)
	if !ok {
		panic(ErrNegative)
	}
	return n
}

// ByRamp converts v to a Nat, mapping negative values to Zero.
func ByRamp(v int) Nat {
	if v <= 0 {
		return Zero{}
	}
	return build(v)
}

func build(v int) Nat {
	var n Nat = Zero{}
	for ; v > 0; v-- {
		n = Succ{n}
	}
	return n
}

// LengthOf returns the length of s as a Nat.
func LengthOf[S ~[]E, E any](s S) Nat { return build(len(s)) }

// LengthOfString returns the length of s in bytes as a Nat.
func LengthOfString(s string) Nat { return build(len(s)) }

// Parse parses the decimal representation of a Nat, as produced by
// [Nat.String]. Errors are of type *strconv.NumError.
func Parse(s string) (Nat, error) {
	if s == "" {
		return nil, &strconv.NumError{Func: "Parse", Num: s, Err: strconv.ErrSyntax}
	}
	var n Nat = Zero{}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, &strconv.NumError{Func: "Parse", Num: s, Err: strconv.ErrSyntax}
		}
		n = n.Mul(Ten).Add(Digits[r-'0'])
	}
	return n, nil
}
