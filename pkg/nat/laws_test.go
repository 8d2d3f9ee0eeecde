package nat

import (
	"math/rand"
	"reflect"
	"strconv"
	"testing"
	"testing/quick"
)

// small is a Nat of bounded depth, generated by testing/quick.
type small struct{ Nat }

const maxDepth = 24

func (small) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(small{build(r.Intn(maxDepth + 1))})
}

// nonzero is like small, but never Zero.
type nonzero struct{ Nat }

func (nonzero) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(nonzero{build(1 + r.Intn(maxDepth))})
}

// tiny is like small, but bounded tighter, for laws whose cost is cubic or
// worse in the operands.
type tiny struct{ Nat }

func (tiny) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(tiny{build(r.Intn(9))})
}

func check(t *testing.T, name string, f any) {
	t.Helper()
	if err := quick.Check(f, nil); err != nil {
		t.Errorf("%s: %v", name, err)
	}
}

func TestEqualityLaws(t *testing.T) {
	check(t, "reflexivity", func(n small) bool { return n.Equal(n.Nat) })
	check(t, "symmetry", func(n, m small) bool {
		return n.Equal(m.Nat) == m.Equal(n.Nat)
	})
	check(t, "transitivity", func(n small) bool {
		m := Pred(Next(n.Nat))
		p := build(n.Int())
		return n.Equal(m) && m.Equal(p) && n.Equal(p)
	})
	check(t, "== agrees with Equal", func(n, m small) bool {
		return (n.Nat == m.Nat) == n.Equal(m.Nat)
	})
}

func TestOrderLaws(t *testing.T) {
	check(t, "pred(succ(n)) == n", func(n small) bool {
		return Pred(Next(n.Nat)) == n.Nat
	})
	check(t, "0 > n is false", func(n small) bool { return !Zero{}.Greater(n.Nat) })
	check(t, "0 <= n", func(n small) bool { return Zero{}.LessEqual(n.Nat) })
	check(t, "n > 0 for n != 0", func(n nonzero) bool { return n.Greater(Zero{}) })
	check(t, "0 < n for n != 0", func(n nonzero) bool { return Zero{}.Less(n.Nat) })
	check(t, "pred preserves >", func(n, m nonzero) bool {
		return Pred(n.Nat).Greater(Pred(m.Nat)) == n.Greater(m.Nat)
	})
	check(t, "n <= m iff n < succ(m)", func(n, m small) bool {
		return n.LessEqual(m.Nat) == n.Less(Next(m.Nat))
	})
	check(t, "order agrees with Int", func(n, m small) bool {
		a, b := n.Int(), m.Int()
		return n.Greater(m.Nat) == (a > b) &&
			n.GreaterEqual(m.Nat) == (a >= b) &&
			n.Less(m.Nat) == (a < b) &&
			n.LessEqual(m.Nat) == (a <= b)
	})
	check(t, "Compare agrees with Less and Equal", func(n, m small) bool {
		switch o := n.Compare(m.Nat); {
		case n.Less(m.Nat):
			return o < 0
		case n.Equal(m.Nat):
			return o == 0
		default:
			return o > 0
		}
	})
}

func TestAdditionLaws(t *testing.T) {
	check(t, "0 + n = n", func(n small) bool { return Zero{}.Add(n.Nat) == n.Nat })
	check(t, "n + 0 = n", func(n small) bool { return n.Add(Zero{}) == n.Nat })
	check(t, "commutativity", func(n, m small) bool {
		return n.Add(m.Nat) == m.Add(n.Nat)
	})
	check(t, "associativity", func(n, m, p small) bool {
		return n.Add(m.Nat).Add(p.Nat) == n.Add(m.Add(p.Nat))
	})
}

func TestSubtractionLaws(t *testing.T) {
	check(t, "0 - n = 0", func(n small) bool { return Zero{}.Sub(n.Nat) == Nat(Zero{}) })
	check(t, "n - 0 = n", func(n small) bool { return n.Sub(Zero{}) == n.Nat })
	check(t, "n - (m + p) = n - m - p", func(n, m, p small) bool {
		return n.Sub(m.Add(p.Nat)) == n.Sub(m.Nat).Sub(p.Nat)
	})
	check(t, "n - (m - p) = n - m + p when p <= m <= n", func(n, m, p small) bool {
		if !(p.LessEqual(m.Nat) && m.LessEqual(n.Nat)) {
			// Build an ordered triple from the generated values instead.
			n, m = small{n.Add(m.Add(p.Nat))}, small{m.Add(p.Nat)}
		}
		return n.Sub(m.Sub(p.Nat)) == n.Sub(m.Nat).Add(p.Nat)
	})
}

func TestMultiplicationLaws(t *testing.T) {
	check(t, "0 * n = 0", func(n small) bool { return Zero{}.Mul(n.Nat) == Nat(Zero{}) })
	check(t, "n * 0 = 0", func(n small) bool { return n.Mul(Zero{}) == Nat(Zero{}) })
	check(t, "1 * n = n", func(n small) bool { return One.Mul(n.Nat) == n.Nat })
	check(t, "n * 1 = n", func(n small) bool { return n.Mul(One) == n.Nat })
	check(t, "commutativity", func(n, m small) bool {
		return n.Mul(m.Nat) == m.Mul(n.Nat)
	})
	check(t, "associativity", func(n, m, p tiny) bool {
		return n.Mul(m.Nat).Mul(p.Nat) == n.Mul(m.Mul(p.Nat))
	})
	check(t, "left distributivity over +", func(n, m, p tiny) bool {
		return n.Mul(m.Add(p.Nat)) == n.Mul(m.Nat).Add(n.Mul(p.Nat))
	})
	check(t, "right distributivity over +", func(n, m, p tiny) bool {
		return n.Add(m.Nat).Mul(p.Nat) == n.Mul(p.Nat).Add(m.Mul(p.Nat))
	})
	check(t, "left distributivity over -", func(n, m, p tiny) bool {
		return n.Mul(m.Sub(p.Nat)) == n.Mul(m.Nat).Sub(n.Mul(p.Nat))
	})
	check(t, "right distributivity over -", func(n, m, p tiny) bool {
		return n.Sub(m.Nat).Mul(p.Nat) == n.Mul(p.Nat).Sub(m.Mul(p.Nat))
	})
}

func TestDivisionLaws(t *testing.T) {
	check(t, "divmod(n, 0) is absent", func(n small) bool {
		_, _, ok := n.DivMod(Zero{})
		return !ok
	})
	check(t, "divmod(0, m) = (0, 0)", func(m nonzero) bool {
		q, r, ok := Zero{}.DivMod(m.Nat)
		return ok && q == Nat(Zero{}) && r == Nat(Zero{})
	})
	check(t, "q*m + r = n and r < m", func(n small, m nonzero) bool {
		q, r, ok := n.DivMod(m.Nat)
		return ok && r.Less(m.Nat) && q.Mul(m.Nat).Add(r) == n.Nat
	})
	check(t, "n / 0 is absent", func(n small) bool {
		_, ok := n.Div(Zero{})
		return !ok
	})
	check(t, "n // 0 = 0", func(n small) bool { return n.FloorDiv(Zero{}) == Nat(Zero{}) })
	check(t, "n % 0 = 0", func(n small) bool { return n.Mod(Zero{}) == Nat(Zero{}) })
	check(t, "n % m < m", func(n small, m nonzero) bool { return n.Mod(m.Nat).Less(m.Nat) })
	check(t, "// and % agree with int", func(n small, m nonzero) bool {
		return n.FloorDiv(m.Nat).Int() == n.Int()/m.Int() &&
			n.Mod(m.Nat).Int() == n.Int()%m.Int()
	})
}

func TestParityLaws(t *testing.T) {
	check(t, "exactly one of odd and even", func(n small) bool {
		return n.IsOdd() != n.IsEven()
	})
	check(t, "parity agrees with int", func(n small) bool {
		return n.IsOdd() == (n.Int()%2 == 1)
	})
}

func TestConversionLaws(t *testing.T) {
	check(t, "int is injective", func(n, m small) bool {
		return (n.Int() == m.Int()) == (n.Nat == m.Nat)
	})
	check(t, "str round-trips through int parsing", func(n small) bool {
		i, err := strconv.Atoi(n.String())
		return err == nil && i == n.Int() && build(i) == n.Nat
	})
	check(t, "str round-trips through Parse", func(n small) bool {
		m, err := Parse(n.String())
		return err == nil && m == n.Nat
	})
	check(t, "length_of(bytes(n)) == n", func(n small) bool {
		return LengthOf(n.Bytes()) == n.Nat
	})
	check(t, "float is monotonic", func(n, m small) bool {
		return n.Less(m.Nat) == (n.Float64() < m.Float64())
	})
	check(t, "complex is real", func(n small) bool {
		c := n.Complex128()
		return imag(c) == 0 && real(c) == n.Float64()
	})
}

func TestLargeString(t *testing.T) {
	for _, i := range []int{99, 100, 101, 1234} {
		if s := build(i).String(); s != strconv.Itoa(i) {
			t.Errorf("build(%d).String() = %q", i, s)
		}
	}
}
