// Package transform provides named integer transforms and helpers to compose
// them into pipelines fed to seq.Map.
//
// Example:
//
//	fn, err := transform.Parse("square,double")
//	if err != nil {
//		return err
//	}
//	values := seq.Collect(seq.Map(numrange.New(1, 3), fn)) // [2 8 18]
package transform

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrUnknownTransform is returned when a transform name is not registered.
var ErrUnknownTransform = errors.New("transform: unknown transform")

// Func maps one integer to another.
type Func func(int64) int64

var builtins = map[string]Func{
	"identity":  Identity,
	"square":    func(v int64) int64 { return v * v },
	"double":    func(v int64) int64 { return v + v },
	"negate":    func(v int64) int64 { return -v },
	"increment": func(v int64) int64 { return v + 1 },
	"decrement": func(v int64) int64 { return v - 1 },
	"abs": func(v int64) int64 {
		if v < 0 {
			return -v
		}
		return v
	},
}

// Identity returns v unchanged.
func Identity(v int64) int64 {
	return v
}

// Names lists the registered transforms in alphabetical order.
func Names() []string {
	names := lo.Keys(builtins)
	slices.Sort(names)
	return names
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := builtins[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTransform, "%q", name)
	}
	return fn, nil
}

// Pipe applies fns from left to right.
//
// Example:
//
//	square, _ := Lookup("square")
//	double, _ := Lookup("double")
//	Pipe(square, double)(3) // 18
func Pipe(fns ...Func) Func {
	return func(v int64) int64 {
		result := v
		for _, fn := range fns {
			result = fn(result)
		}
		return result
	}
}

// Compose applies fns from right to left.
func Compose(fns ...Func) Func {
	return func(v int64) int64 {
		result := v
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Parse turns a comma separated list of names into a left-to-right pipeline.
// Blank entries are ignored; an empty list yields Identity.
func Parse(list string) (Func, error) {
	names := lo.Filter(strings.Split(list, ","), func(name string, _ int) bool {
		return strings.TrimSpace(name) != ""
	})
	if len(names) == 0 {
		return Identity, nil
	}
	fns := make([]Func, 0, len(names))
	for _, name := range names {
		fn, err := Lookup(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return Pipe(fns...), nil
}
