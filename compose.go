// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package maybe

// LiftMaybe turns a plain function from A to B into one from Maybe[A] to
// Maybe[B]. The lifted function applies f to a held value and wraps the
// result; a Nothing stays a Nothing and f is never invoked for it.
func LiftMaybe[A any, B any](f func(A) B) func(Maybe[A]) Maybe[B] {
	return func(m Maybe[A]) Maybe[B] {
		if m.present {
			return Just(f(m.value))
		}
		return Nothing[B]()
	}
}

// AndThenMaybe composes two Maybe-returning functions into one. The composed
// function applies f and, only when that yields a Just, feeds the held value
// to g. A Nothing from f short-circuits the chain: g is never invoked.
func AndThenMaybe[X any, Y any, Z any](f func(X) Maybe[Y], g func(Y) Maybe[Z]) func(X) Maybe[Z] {
	return func(x X) Maybe[Z] {
		m := f(x)
		if m.present {
			return g(m.value)
		}
		return Nothing[Z]()
	}
}

// AndThenMaybe3 binds three functions, left to right.
func AndThenMaybe3[W any, X any, Y any, Z any](
	f func(W) Maybe[X],
	g func(X) Maybe[Y],
	h func(Y) Maybe[Z],
) func(W) Maybe[Z] {
	return AndThenMaybe(AndThenMaybe(f, g), h)
}

// AndThenMaybe4 binds four functions, left to right.
func AndThenMaybe4[V any, W any, X any, Y any, Z any](
	f func(V) Maybe[W],
	g func(W) Maybe[X],
	h func(X) Maybe[Y],
	i func(Y) Maybe[Z],
) func(V) Maybe[Z] {
	return AndThenMaybe(AndThenMaybe3(f, g, h), i)
}

// FlattenMaybe collapses one level of nesting: Just(Just(v)) becomes
// Just(v), while Just(Nothing) and Nothing both become Nothing.
func FlattenMaybe[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if m.present {
		return m.value
	}
	return Nothing[T]()
}
