// Package eval implements the evaluator of inductive's calculator language.
//
// A program is a sequence of forms as read by the parse package. Numbers
// evaluate to Nat values; tokens evaluate to constants (none, true and
// false), builtins or variables; lists are calls of the builtin or variable
// in head position, except for the special form (let name expr).
package eval

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/xiaq/inductive/pkg/list"
	"github.com/xiaq/inductive/pkg/logutil"
	"github.com/xiaq/inductive/pkg/nat"
	"github.com/xiaq/inductive/pkg/parse"
	"github.com/xiaq/inductive/pkg/store"
)

var logger = logutil.GetLogger("[eval] ")

// Possible errors wrapped by errors returned from the evaluator.
var (
	ErrUnknownVariable = errors.New("unknown variable")
	ErrNotCallable     = errors.New("not callable")
	ErrArity           = errors.New("wrong number of arguments")
	ErrWrongType       = errors.New("wrong type")
	ErrUncomparable    = errors.New("uncomparable values")
	ErrBadLet          = errors.New("bad let form")
)

// Error is an error that occurred when evaluating a form.
type Error struct {
	// Byte offset of the innermost form whose evaluation failed.
	Pos int
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("eval error at %d: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// VarStore persists variables. It is implemented by store.Store.
type VarStore interface {
	// Var returns the value of a variable, or an error wrapping
	// store.ErrNoVar if there is no such variable.
	Var(name string) (nat.Nat, error)
	SetVar(name string, v nat.Nat) error
}

// Evaler holds the state of evaluation.
type Evaler struct {
	// If not nil, variables not bound in the Evaler are looked up in Store,
	// and Nat values bound with let are saved to it.
	Store VarStore

	mu     sync.Mutex
	global map[string]any
}

// NewEvaler creates a new Evaler.
func NewEvaler() *Evaler {
	return &Evaler{global: map[string]any{}}
}

var constants = map[string]any{"none": None, "true": true, "false": false}

// Eval evaluates all the forms in src, writing the representation of the
// value of each one to out on its own line. It stops at the first error.
func (ev *Evaler) Eval(src string, out io.Writer) error {
	forms, err := parse.Parse(src)
	if err != nil {
		return err
	}
	for _, form := range forms {
		v, err := ev.EvalNode(form)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, Repr(v))
	}
	return nil
}

// EvalNode evaluates a single form.
func (ev *Evaler) EvalNode(n *parse.Node) (any, error) {
	switch n.Kind {
	case parse.Number:
		v, err := nat.Parse(n.Text)
		if err != nil {
			return nil, &Error{n.From, err}
		}
		return v, nil
	case parse.Token:
		v, err := ev.lookup(n.Text)
		if err != nil {
			return nil, &Error{n.From, err}
		}
		return v, nil
	default:
		v, err := ev.evalList(n)
		if err != nil {
			var evalErr *Error
			if !errors.As(err, &evalErr) {
				err = &Error{n.From, err}
			}
			return nil, err
		}
		return v, nil
	}
}

func (ev *Evaler) lookup(name string) (any, error) {
	if v, ok := constants[name]; ok {
		return v, nil
	}
	if b, ok := builtins[name]; ok {
		return b, nil
	}
	ev.mu.Lock()
	v, ok := ev.global[name]
	ev.mu.Unlock()
	if ok {
		return v, nil
	}
	if ev.Store != nil {
		v, err := ev.Store.Var(name)
		if err == nil {
			return v, nil
		} else if !errors.Is(err, store.ErrNoVar) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
}

func (ev *Evaler) evalList(n *parse.Node) (any, error) {
	if len(n.List) == 0 {
		return list.Empty[any](), nil
	}
	head := n.List[0]
	if head.Kind == parse.Token && head.Text == "let" {
		return ev.let(n)
	}
	f, err := ev.EvalNode(head)
	if err != nil {
		return nil, err
	}
	b, ok := f.(*Builtin)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, Kind(f))
	}
	args := make([]any, len(n.List)-1)
	for i, argNode := range n.List[1:] {
		args[i], err = ev.EvalNode(argNode)
		if err != nil {
			return nil, err
		}
	}
	return b.Call(args...)
}

// Evaluates (let name expr).
func (ev *Evaler) let(n *parse.Node) (any, error) {
	if len(n.List) != 3 || n.List[1].Kind != parse.Token {
		return nil, fmt.Errorf("%w: want (let name expr)", ErrBadLet)
	}
	name := n.List[1].Text
	if _, ok := constants[name]; ok {
		return nil, fmt.Errorf("%w: cannot bind constant %s", ErrBadLet, name)
	}
	if _, ok := builtins[name]; ok {
		return nil, fmt.Errorf("%w: cannot bind builtin %s", ErrBadLet, name)
	}
	v, err := ev.EvalNode(n.List[2])
	if err != nil {
		return nil, err
	}
	ev.mu.Lock()
	ev.global[name] = v
	ev.mu.Unlock()
	if nv, ok := v.(nat.Nat); ok && ev.Store != nil {
		if err := ev.Store.SetVar(name, nv); err != nil {
			return nil, err
		}
		logger.Printf("saved variable %s", name)
	}
	return v, nil
}
