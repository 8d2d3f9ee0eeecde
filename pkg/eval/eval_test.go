package eval

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/xiaq/inductive/pkg/nat"
	"github.com/xiaq/inductive/pkg/parse"
	"github.com/xiaq/inductive/pkg/store"
	. "github.com/xiaq/inductive/pkg/tt"
)

// Evaluates src with a fresh Evaler, returning the output and the error.
func eval(src string) (string, error) {
	var sb strings.Builder
	err := NewEvaler().Eval(src, &sb)
	return strings.TrimSuffix(sb.String(), "\n"), err
}

func TestEval_Nat(t *testing.T) {
	Test(t, Fn("eval", eval), Table{
		Args("0").Rets("0", nil),
		Args("42").Rets("42", nil),
		Args("(+)").Rets("0", nil),
		Args("(+ 1 2 3)").Rets("6", nil),
		Args("(- 7 4)").Rets("3", nil),
		Args("(- 4 7)").Rets("0", nil),
		Args("(*)").Rets("1", nil),
		Args("(* 3 4)").Rets("12", nil),
		Args("(/ 9 3)").Rets("3", nil),
		Args("(/ 7 0)").Rets("none", nil),
		Args("(// 7 2)").Rets("3", nil),
		Args("(// 7 0)").Rets("0", nil),
		Args("(% 7 0)").Rets("0", nil),
		Args("(% 7 2)").Rets("1", nil),
		Args("(divmod 7 2)").Rets("[3, 1]", nil),
		Args("(divmod 7 0)").Rets("none", nil),
		Args("(odd? 3) (even? 3)").Rets("true\nfalse", nil),
		Args("(succ 9) (pred 0) (pred 10)").Rets("10\n0\n9", nil),
		Args("(double 4) (square 4)").Rets("8\n16", nil),
		Args("(int 5)").Rets("5", nil),
		Args("(bytes 3)").Rets("[0, 0, 0]", nil),
		Args("(bytes 0)").Rets("[]", nil),
	})
}

func TestEval_Comparison(t *testing.T) {
	Test(t, Fn("eval", eval), Table{
		Args("(< 2 3) (< 3 3) (<= 3 3) (> 3 2) (>= 2 3)").
			Rets("true\nfalse\ntrue\ntrue\nfalse", nil),
		Args("(= 3 3) (= 3 4) (= 3 true)").Rets("true\nfalse\nfalse", nil),
		Args("(< false true)").Rets("true", nil),
		Args("(< (list 1 2) (list 1 3)) (< (list 1) (list 1 0))").Rets("true\ntrue", nil),
		Args("(< 1 true)").Rets("", ErrUncomparable),
	})
}

func TestEval_List(t *testing.T) {
	Test(t, Fn("eval", eval), Table{
		Args("()").Rets("[]", nil),
		Args("(list 3 5 2)").Rets("[3, 5, 2]", nil),
		Args("(length (list 3 5 2))").Rets("3", nil),
		Args("(reverse (list 3 5 2))").Rets("[2, 5, 3]", nil),
		Args("(sort (list 3 5 2 0))").Rets("[0, 2, 3, 5]", nil),
		Args("(sort (list (list 2) (list 1 9) (list 1)))").Rets("[[1], [1, 9], [2]]", nil),
		Args("(sort (list 1 true))").Rets("", ErrUncomparable),
		Args("(pairwise (list 3 5 2))").Rets("[(3, 5), (5, 2)]", nil),
		Args("(join (list (list 1 2) () (list 3)))").Rets("[1, 2, 3]", nil),
		Args("(join (list 1))").Rets("", ErrWrongType),
		Args("(transpose (list (list 1 2 3) (list 4 5 6)))").Rets("[[1, 4], [2, 5], [3, 6]]", nil),
		Args("(dedup (list 3 5 3 2 5))").Rets("[3, 5, 2]", nil),
		Args("(first-of odd? (list 2 4 5 7))").Rets("5", nil),
		Args("(first-of odd? (list 2 4))").Rets("none", nil),
		Args("(first-of odd? (list true))").Rets("", ErrWrongType),
		Args("(make-first (list 1 2 3 4) 2)").Rets("[3, 1, 2, 4]", nil),
		Args("(make-first (list 1 2 3 4) 9)").Rets("none", nil),
		Args("(remove (list 1 2 3) 1)").Rets("[2, [1, 3]]", nil),
		Args("(remove (list 1 2 3) 3)").Rets("none", nil),
		Args("(cut-at (list 1 2 3) 1)").Rets("[[1], [2, 3]]", nil),
		Args("(cut-at (list 1 2 3) 4)").Rets("none", nil),
		Args("(cut-at-clamped (list 1 2 3) 9)").Rets("[[1, 2, 3], []]", nil),
		Args("(concat (list 1) () (list 2 3))").Rets("[1, 2, 3]", nil),
		Args("(append (list 1 2) 3) (prepend (list 1 2) 0)").Rets("[1, 2, 3]\n[0, 1, 2]", nil),
		Args("(contains (list 1 2) 2) (contains (list 1 2) 3)").Rets("true\nfalse", nil),
		Args("(occurrences (list 1 2 1) 1)").Rets("2", nil),
		Args("(map square (list 1 2 3))").Rets("[1, 4, 9]", nil),
		Args("(keep even? (list 1 2 3 4))").Rets("[2, 4]", nil),
	})
}

func TestEval_Constants(t *testing.T) {
	Test(t, Fn("eval", eval), Table{
		Args("none true false").Rets("none\ntrue\nfalse", nil),
		Args("(= none none)").Rets("true", nil),
		Args("odd?").Rets("<builtin odd?>", nil),
	})
}

func TestEval_Let(t *testing.T) {
	Test(t, Fn("eval", eval), Table{
		Args("(let x 4) (square x)").Rets("4\n16", nil),
		Args("(let l (list 3 5 2)) (sort l)").Rets("[3, 5, 2]\n[2, 3, 5]", nil),
		Args("(let f square) (f 3)").Rets("<builtin square>\n9", nil),
		Args("(let x)").Rets("", ErrBadLet),
		Args("(let (x) 1)").Rets("", ErrBadLet),
		Args("(let none 1)").Rets("", ErrBadLet),
		Args("(let list 1)").Rets("", ErrBadLet),
	})
}

func TestEval_Errors(t *testing.T) {
	Test(t, Fn("eval", eval), Table{
		Args("x").Rets("", ErrUnknownVariable),
		Args("(1 2)").Rets("", ErrNotCallable),
		Args("(succ)").Rets("", ErrArity),
		Args("(succ 1 2)").Rets("", ErrArity),
		Args("(succ true)").Rets("", ErrWrongType),
		Args("(length 1)").Rets("", ErrWrongType),
		Args("(succ").Rets("", parse.ErrUnbalanced),
		// Output before the error is kept.
		Args("1 (succ x) 2").Rets("1", ErrUnknownVariable),
	})
}

func TestEval_ErrorPosition(t *testing.T) {
	_, err := eval("(+ 1 (succ y))")
	var evalErr *Error
	if !errors.As(err, &evalErr) || evalErr.Pos != 11 {
		t.Errorf("got error %v, want *Error at 11", err)
	}

	_, err = eval("(+ 1 (succ true))")
	if !errors.As(err, &evalErr) || evalErr.Pos != 5 {
		t.Errorf("got error %v, want *Error at 5", err)
	}
	want := "eval error at 5: succ: wrong type: want nat, got bool"
	if err.Error() != want {
		t.Errorf("got message %q, want %q", err.Error(), want)
	}
}

type mapStore map[string]nat.Nat

func (s mapStore) Var(name string) (nat.Nat, error) {
	if v, ok := s[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", store.ErrNoVar, name)
}

func (s mapStore) SetVar(name string, v nat.Nat) error {
	s[name] = v
	return nil
}

var errBroken = errors.New("broken store")

type brokenStore struct{}

func (brokenStore) Var(string) (nat.Nat, error)  { return nil, errBroken }
func (brokenStore) SetVar(string, nat.Nat) error { return errBroken }

func TestEval_Store(t *testing.T) {
	st := mapStore{"y": nat.Three}
	ev := NewEvaler()
	ev.Store = st
	var sb strings.Builder

	if err := ev.Eval("(let x (+ y 1)) (let l (list x))", &sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "4\n[4]\n" {
		t.Errorf("got output %q", sb.String())
	}
	if st["x"] != nat.Four {
		t.Errorf("x saved as %v, want 4", st["x"])
	}
	if _, ok := st["l"]; ok {
		t.Errorf("list value saved to store")
	}

	// Variables saved by one Evaler are visible to another sharing the store.
	ev2 := NewEvaler()
	ev2.Store = st
	sb.Reset()
	if err := ev2.Eval("(square x)", &sb); err != nil || sb.String() != "16\n" {
		t.Errorf("second Evaler -> (%q, %v)", sb.String(), err)
	}
	if err := ev2.Eval("l", &sb); !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("unsaved variable -> %v, want ErrUnknownVariable", err)
	}

	ev3 := NewEvaler()
	ev3.Store = brokenStore{}
	if err := ev3.Eval("z", &sb); !errors.Is(err, errBroken) {
		t.Errorf("lookup with broken store -> %v, want errBroken", err)
	}
	if err := ev3.Eval("(let z 1)", &sb); !errors.Is(err, errBroken) {
		t.Errorf("let with broken store -> %v, want errBroken", err)
	}
}

func TestLookupBuiltin(t *testing.T) {
	for _, name := range strings.Fields(`+ - * / // % divmod < <= > >= =
		odd? even? succ pred double square list length reverse sort pairwise
		join transpose dedup first-of make-first remove cut-at cut-at-clamped
		concat append prepend contains occurrences bytes int`) {
		b, ok := LookupBuiltin(name)
		if !ok {
			t.Errorf("builtin %s not found", name)
		} else if b.Name() != name {
			t.Errorf("builtin %s has name %s", name, b.Name())
		}
	}
	if _, ok := LookupBuiltin("let"); ok {
		t.Errorf("let is a builtin")
	}
}
