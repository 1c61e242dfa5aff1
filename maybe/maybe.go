/*
Package maybe implements an option type, modelled after Elm's Maybe.

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

A Maybe either holds a value (Just) or nothing at all. Clients destructure
a Maybe with a pattern-match style switch:

	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		…
	case m.Nothing():
		…
	}

The switch form compares Matchers and therefore needs a comparable T.
For other types, test the result of Just against nil:

	if m := x.Match(); m.Just(&v) != nil {
		…
	}
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a computation producing a Maybe onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	if m := x.Match(); m.Just(&v) != nil {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if any.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	if m := x.Match(); m.Just(&v) != nil {
		return Just(f(v))
	}
	return Nothing[S]()
}

// Values drops every Nothing from a slice of Maybes and returns the
// remaining values, preserving their order.
func Values[T any](xs []Maybe[T]) []T {
	r := make([]T, 0, len(xs))
	for _, x := range xs {
		var v T
		if m := x.Match(); m.Just(&v) != nil {
			r = append(r, v)
		}
	}
	return r
}

// --- Matching --------------------------------------------------------------

// Matcher is used to destructure a Maybe, see package documentation.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
