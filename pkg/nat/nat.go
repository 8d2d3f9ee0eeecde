// Package nat implements natural numbers following the Peano axioms.
//
// A Nat is either [Zero] or the [Succ] of another Nat. Every operation is
// defined by structural recursion on the right-hand operand, so the cost of
// an operation is proportional to the values involved; the package is not
// meant for computing with large numbers. Values deeper than a few million
// successors may need the Setup function of package
// github.com/xiaq/inductive/pkg/config to raise the stack ceiling.
//
// Division comes in two flavors. [Nat.Div] is strict and reports failure on
// a zero divisor, whereas [Nat.FloorDiv] and [Nat.Mod] follow the convention
// of proof assistants such as Rocq and are total: n // 0 = 0 and n % 0 = 0.
//
// Two Nat values are equal iff they have the same shape, which is also what
// the == operator on Nat values reports.
package nat

import "github.com/xiaq/inductive/pkg/compare"

// Nat is a natural number. The only implementations are [Zero] and [Succ].
type Nat interface {
	// Greater reports whether the receiver is greater than m.
	Greater(m Nat) bool
	// GreaterEqual reports whether the receiver is greater than or equal to m.
	GreaterEqual(m Nat) bool
	// Less reports whether the receiver is less than m.
	Less(m Nat) bool
	// LessEqual reports whether the receiver is less than or equal to m.
	LessEqual(m Nat) bool
	// Compare compares the receiver with m.
	Compare(m Nat) compare.Ordering
	// Equal reports whether the receiver and m have the same shape.
	Equal(m Nat) bool

	// Add returns the sum of the receiver and m.
	Add(m Nat) Nat
	// Sub returns the difference of the receiver and m, or Zero if m is
	// greater than the receiver.
	Sub(m Nat) Nat
	// Mul returns the product of the receiver and m.
	Mul(m Nat) Nat
	// DivMod returns the quotient and remainder of the receiver divided by
	// m. The last return value is false iff m is Zero.
	DivMod(m Nat) (quotient, remainder Nat, ok bool)
	// Div returns the quotient of the receiver divided by m. The second
	// return value is false iff m is Zero.
	Div(m Nat) (Nat, bool)
	// FloorDiv returns the quotient of the receiver divided by m, or Zero
	// if m is Zero.
	FloorDiv(m Nat) Nat
	// Mod returns the remainder of the receiver divided by m, or Zero if m
	// is Zero.
	Mod(m Nat) Nat

	// IsOdd reports whether the receiver is odd.
	IsOdd() bool
	// IsEven reports whether the receiver is even.
	IsEven() bool

	// Abs returns the receiver.
	Abs() Nat
	// Bool reports whether the receiver is not Zero.
	Bool() bool
	// Int converts the receiver to an int.
	Int() int
	// Float64 converts the receiver to a float64.
	Float64() float64
	// Complex128 converts the receiver to a complex128 with no imaginary part.
	Complex128() complex128
	// Bytes returns the unary encoding of the receiver: a slice of zero bytes
	// whose length is the value of the receiver.
	Bytes() []byte
	// String returns the decimal representation of the receiver.
	String() string
	// GoString returns the structure of the receiver, eliding the inner
	// successors of values above five.
	GoString() string

	isNat()
}

// Digits.
var (
	One   Nat = Succ{Zero{}}
	Two   Nat = Succ{One}
	Three Nat = Succ{Two}
	Four  Nat = Succ{Three}
	Five  Nat = Succ{Four}
	Six   Nat = Succ{Five}
	Seven Nat = Succ{Six}
	Eight Nat = Succ{Seven}
	Nine  Nat = Succ{Eight}
	Ten   Nat = Succ{Nine}
)

// Digits contains the values from 0 to 10, indexed by their value.
var Digits = [...]Nat{Zero{}, One, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten}

var digitStrings = [...]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
