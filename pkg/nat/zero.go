package nat

import "github.com/xiaq/inductive/pkg/compare"

// Zero represents the number 0.
type Zero struct{}

func (Zero) isNat() {}

// 0 > n = False
func (Zero) Greater(Nat) bool { return false }

// 0 >= n iff n == 0
func (Zero) GreaterEqual(m Nat) bool {
	_, isZero := m.(Zero)
	return isZero
}

// 0 < n iff n != 0
func (Zero) Less(m Nat) bool {
	_, isSucc := m.(Succ)
	return isSucc
}

// 0 <= n
func (Zero) LessEqual(Nat) bool { return true }

func (Zero) Compare(m Nat) compare.Ordering {
	if _, isZero := m.(Zero); isZero {
		return compare.Equal
	}
	return compare.Less
}

func (Zero) Equal(m Nat) bool {
	_, isZero := m.(Zero)
	return isZero
}

// 0 + n = n
func (Zero) Add(m Nat) Nat { return m }

// 0 - n = 0
func (z Zero) Sub(Nat) Nat { return z }

// 0 * n = 0
func (z Zero) Mul(Nat) Nat { return z }

func (z Zero) DivMod(m Nat) (Nat, Nat, bool) {
	if _, isZero := m.(Zero); isZero {
		return nil, nil, false
	}
	return z, z, true
}

// 0 / 0 is absent, 0 / n = 0 otherwise
func (z Zero) Div(m Nat) (Nat, bool) {
	if _, isZero := m.(Zero); isZero {
		return nil, false
	}
	return z, true
}

// 0 // n = 0, including n = 0
func (z Zero) FloorDiv(Nat) Nat { return z }

// 0 % n = 0, including n = 0
func (z Zero) Mod(Nat) Nat { return z }

func (Zero) IsOdd() bool  { return false }
func (Zero) IsEven() bool { return true }

func (z Zero) Abs() Nat             { return z }
func (Zero) Bool() bool             { return false }
func (Zero) Int() int               { return 0 }
func (Zero) Float64() float64       { return 0 }
func (Zero) Complex128() complex128 { return 0 }
func (Zero) Bytes() []byte          { return []byte{} }
func (Zero) String() string         { return "0" }
func (Zero) GoString() string       { return "Zero" }
