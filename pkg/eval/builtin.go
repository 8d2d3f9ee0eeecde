package eval

import (
	"fmt"
	"reflect"
)

// Builtin is a builtin function.
type Builtin struct {
	name string
	builtinImpl
}

type builtinImpl struct {
	// Number of arguments, or -1 if the function is variadic.
	arity int
	impl  func(args []any) (any, error)
}

func (b *Builtin) String() string { return "<builtin " + b.name + ">" }

// Name returns the name of the builtin.
func (b *Builtin) Name() string { return b.name }

// Call calls the builtin with the given arguments.
func (b *Builtin) Call(args ...any) (any, error) {
	if b.arity >= 0 && len(args) != b.arity {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, b.name, b.arity, len(args))
	}
	v, err := b.impl(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.name, err)
	}
	return v, nil
}

var builtins = map[string]*Builtin{}

func addBuiltinFns(fns map[string]builtinImpl) {
	for name, impl := range fns {
		builtins[name] = &Builtin{name, impl}
	}
}

// LookupBuiltin returns the builtin with the given name.
func LookupBuiltin(name string) (*Builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}

// The following functions adapt Go functions with typed parameters to
// builtinImpl, converting arguments with convert.

func fn1[A, R any](f func(A) R) builtinImpl {
	return fn1e(func(a A) (R, error) { return f(a), nil })
}

func fn1e[A, R any](f func(A) (R, error)) builtinImpl {
	return builtinImpl{1, func(args []any) (any, error) {
		a, err := convert[A](args[0])
		if err != nil {
			return nil, err
		}
		return f(a)
	}}
}

func fn2[A, B, R any](f func(A, B) R) builtinImpl {
	return fn2e(func(a A, b B) (R, error) { return f(a, b), nil })
}

func fn2e[A, B, R any](f func(A, B) (R, error)) builtinImpl {
	return builtinImpl{2, func(args []any) (any, error) {
		a, err := convert[A](args[0])
		if err != nil {
			return nil, err
		}
		b, err := convert[B](args[1])
		if err != nil {
			return nil, err
		}
		return f(a, b)
	}}
}

func variadic[A, R any](f func(...A) R) builtinImpl {
	return builtinImpl{-1, func(args []any) (any, error) {
		as := make([]A, len(args))
		for i, arg := range args {
			a, err := convert[A](arg)
			if err != nil {
				return nil, err
			}
			as[i] = a
		}
		return f(as...), nil
	}}
}

func convert[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	want := kindOfType(reflect.TypeOf((*T)(nil)).Elem())
	return zero, fmt.Errorf("%w: want %s, got %s", ErrWrongType, want, Kind(v))
}

// Calls a builtin used as a predicate.
func callPredicate(pred *Builtin, v any) (bool, error) {
	r, err := pred.Call(v)
	if err != nil {
		return false, err
	}
	return convert[bool](r)
}
