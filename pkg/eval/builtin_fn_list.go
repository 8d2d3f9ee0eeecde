package eval

import (
	"fmt"

	"github.com/xiaq/inductive/pkg/compare"
	"github.com/xiaq/inductive/pkg/list"
	"github.com/xiaq/inductive/pkg/nat"
)

// List operations.

type anyList = list.List[any]

func init() {
	addBuiltinFns(map[string]builtinImpl{
		// Construction
		"list":    variadic(list.New[any]),
		"concat":  variadic(concat),
		"append":  fn2(appendFn),
		"prepend": fn2(prepend),

		// Queries
		"length":      fn1(anyList.Length),
		"contains":    fn2(list.Contains[any]),
		"occurrences": fn2(list.Occurrences[any]),
		"first-of":    fn2e(firstOf),

		// Arrangement
		"reverse":    fn1(anyList.Reverse),
		"sort":       fn1e(sortFn),
		"make-first": fn2(makeFirst),
		"remove":     fn2(remove),
		"dedup":      fn1(list.Deduplicate[any]),

		// Cutting
		"cut-at":         fn2(cutAt),
		"cut-at-clamped": fn2(cutAtClamped),

		// Derived lists
		"pairwise":  fn1(pairwise),
		"join":      fn1e(join),
		"transpose": fn1e(transpose),
		"map":       fn2e(mapFn),
		"keep":      fn2e(keep),
	})
}

func concat(ls ...anyList) anyList { return list.Join(list.New(ls...)) }

func appendFn(l anyList, v any) anyList { return l.Append(v) }

func prepend(l anyList, v any) anyList { return l.Prepend(v) }

func firstOf(pred *Builtin, l anyList) (any, error) {
	var err error
	v, ok := l.Find(func(v any) bool {
		if err != nil {
			return false
		}
		var holds bool
		holds, err = callPredicate(pred, v)
		return holds
	})
	if err != nil {
		return nil, err
	}
	return optional(v, ok), nil
}

type uncomparable struct{ err error }

func sortFn(l anyList) (sorted anyList, err error) {
	defer func() {
		if r := recover(); r != nil {
			u, ok := r.(uncomparable)
			if !ok {
				panic(r)
			}
			err = u.err
		}
	}()
	return l.Sort(func(a, b any) compare.Ordering {
		o, err := cmpFn(a, b)
		if err != nil {
			panic(uncomparable{err})
		}
		return o
	}), nil
}

func makeFirst(l anyList, i nat.Nat) any { return optional(l.MakeFirst(i)) }

func remove(l anyList, i nat.Nat) any {
	v, rest, ok := l.Remove(i)
	if !ok {
		return None
	}
	return list.New[any](v, rest)
}

func cutAt(l anyList, i nat.Nat) any {
	before, after, ok := l.CutAt(i)
	if !ok {
		return None
	}
	return list.New[any](before, after)
}

func cutAtClamped(l anyList, i nat.Nat) anyList {
	before, after := l.CutAtClamped(i)
	return list.New[any](before, after)
}

func pairwise(l anyList) anyList { return toAnyList(list.Pairwise(l)) }

func rows(l anyList) (list.List[anyList], error) {
	var err error
	ls := list.Map(l, func(v any) anyList {
		row, e := convert[anyList](v)
		if e != nil && err == nil {
			err = fmt.Errorf("row: %w", e)
		}
		return row
	})
	return ls, err
}

func join(l anyList) (anyList, error) {
	ls, err := rows(l)
	if err != nil {
		return nil, err
	}
	return list.Join(ls), nil
}

func transpose(l anyList) (anyList, error) {
	ls, err := rows(l)
	if err != nil {
		return nil, err
	}
	return toAnyList(list.Transpose(ls)), nil
}

func mapFn(f *Builtin, l anyList) (anyList, error) {
	var err error
	mapped := list.Map(l, func(v any) any {
		if err != nil {
			return None
		}
		var r any
		r, err = f.Call(v)
		return r
	})
	if err != nil {
		return nil, err
	}
	return mapped, nil
}

func keep(pred *Builtin, l anyList) (anyList, error) {
	var err error
	kept := l.Keep(func(v any) bool {
		if err != nil {
			return false
		}
		var holds bool
		holds, err = callPredicate(pred, v)
		return holds
	})
	if err != nil {
		return nil, err
	}
	return kept, nil
}
