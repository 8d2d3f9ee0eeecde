package nat

import "github.com/xiaq/inductive/pkg/compare"

// Succ represents the number following Pred.
type Succ struct {
	Pred Nat
}

func (Succ) isNat() {}

// S(n) > 0; S(n) > S(m) iff n > m
func (n Succ) Greater(m Nat) bool {
	p, ok := m.(Succ)
	if !ok {
		return true
	}
	return n.Pred.Greater(p.Pred)
}

// S(n) >= 0; S(n) >= S(m) iff n >= m
func (n Succ) GreaterEqual(m Nat) bool {
	p, ok := m.(Succ)
	if !ok {
		return true
	}
	return n.Pred.GreaterEqual(p.Pred)
}

// S(n) < 0 = False; S(n) < S(m) iff n < m
func (n Succ) Less(m Nat) bool {
	p, ok := m.(Succ)
	if !ok {
		return false
	}
	return n.Pred.Less(p.Pred)
}

// S(n) <= 0 = False; S(n) <= S(m) iff n <= m
func (n Succ) LessEqual(m Nat) bool {
	p, ok := m.(Succ)
	if !ok {
		return false
	}
	return n.Pred.LessEqual(p.Pred)
}

func (n Succ) Compare(m Nat) compare.Ordering {
	p, ok := m.(Succ)
	if !ok {
		return compare.Greater
	}
	return n.Pred.Compare(p.Pred)
}

func (n Succ) Equal(m Nat) bool {
	p, ok := m.(Succ)
	return ok && n.Pred.Equal(p.Pred)
}

// n + 0 = n; n + S(m) = S(n) + m
func (n Succ) Add(m Nat) Nat {
	p, ok := m.(Succ)
	if !ok {
		return n
	}
	return Succ{n}.Add(p.Pred)
}

// n - 0 = n; S(n) - S(m) = n - m
func (n Succ) Sub(m Nat) Nat {
	p, ok := m.(Succ)
	if !ok {
		return n
	}
	return n.Pred.Sub(p.Pred)
}

// n * 0 = 0; n * S(m) = n + n * m
func (n Succ) Mul(m Nat) Nat {
	p, ok := m.(Succ)
	if !ok {
		return Zero{}
	}
	return n.Add(n.Mul(p.Pred))
}

func (n Succ) DivMod(m Nat) (Nat, Nat, bool) {
	d, ok := m.(Succ)
	if !ok {
		return nil, nil, false
	}
	q, r := divMod(n, d, Zero{})
	return q, r, true
}

// Finds the quotient by repeated subtraction. Terminates because d is at
// least one, so n strictly decreases.
func divMod(n Nat, d Succ, quotient Nat) (Nat, Nat) {
	if n.Less(d) {
		return quotient, n
	}
	return divMod(n.Sub(d), d, Succ{quotient})
}

func (n Succ) Div(m Nat) (Nat, bool) {
	q, _, ok := n.DivMod(m)
	return q, ok
}

func (n Succ) FloorDiv(m Nat) Nat {
	q, _, ok := n.DivMod(m)
	if !ok {
		return Zero{}
	}
	return q
}

func (n Succ) Mod(m Nat) Nat {
	_, r, ok := n.DivMod(m)
	if !ok {
		return Zero{}
	}
	return r
}

func (n Succ) IsOdd() bool  { return !n.Pred.IsOdd() }
func (n Succ) IsEven() bool { return !n.Pred.IsEven() }

func (n Succ) Abs() Nat               { return n }
func (Succ) Bool() bool               { return true }
func (n Succ) Int() int               { return 1 + n.Pred.Int() }
func (n Succ) Float64() float64       { return 1 + n.Pred.Float64() }
func (n Succ) Complex128() complex128 { return 1 + n.Pred.Complex128() }

// The bytes are all zero, so appending at the end is as good as prepending.
func (n Succ) Bytes() []byte { return append(n.Pred.Bytes(), 0) }

func (n Succ) String() string {
	for i := 1; i < len(digitStrings); i++ {
		if n.Equal(Digits[i]) {
			return digitStrings[i]
		}
	}
	tens, units := n.FloorDiv(Ten), n.Mod(Ten)
	return tens.String() + units.String()
}

func (n Succ) GoString() string {
	if n.Greater(Five) {
		return "Succ(...)"
	}
	return "Succ(" + n.Pred.GoString() + ")"
}
