// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package maybe provides a generic container that holds either a value of
// type T (Just) or no value at all (Nothing), along with combinators for
// composing functions over it without intermediate presence checks. It is
// useful for values that cannot be represented by nil, or that use nil as a
// meaningful value rather than as an indicator of absence.
package maybe

import "fmt"

type Maybe[T any] struct {
	present bool
	value   T
}

// Just wraps a value in a Maybe that holds it.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{
		present: true,
		value:   v,
	}
}

// Nothing returns an empty Maybe of the given value type. The zero value of
// Maybe[T] is equivalent.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust reports whether a value is held.
func (m Maybe[T]) IsJust() bool {
	return m.present
}

// IsNothing reports whether no value is held.
func (m Maybe[T]) IsNothing() bool {
	return !m.present
}

// UnsafeGetJust returns the held value. Calling it on a Nothing is a
// contract violation and panics. Callers either check IsJust first or use
// JustWithDefault/ThrowOnNothing, which check for them.
func (m Maybe[T]) UnsafeGetJust() T {
	if !m.present {
		panic("maybe: UnsafeGetJust called on Nothing")
	}
	return m.value
}

// Clone returns an independent copy of the container. fn copies the held
// value into dst; passing nil falls back to plain assignment, which is only
// a deep copy when T is a value type with no reference fields.
func (m Maybe[T]) Clone(fn func(dst *T, src T)) Maybe[T] {
	if !m.present {
		return Nothing[T]()
	}
	if fn == nil {
		return Just(m.value)
	}
	var v T
	fn(&v, m.value)
	return Just(v)
}

func (m Maybe[T]) String() string {
	if !m.present {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// JustWithDefault returns the held value, or def when m is Nothing.
func JustWithDefault[T any](def T, m Maybe[T]) T {
	if m.present {
		return m.value
	}
	return def
}

// ThrowOnNothing returns the held value, or the caller's err (unchanged)
// when m is Nothing. This is the bridge from absence to a propagatable
// error; use it when absence is exceptional rather than expected.
func ThrowOnNothing[T any](err error, m Maybe[T]) (T, error) {
	if !m.present {
		var zero T
		return zero, err
	}
	return m.value, nil
}

// Equal reports whether x and y are both Nothing, or both hold values that
// compare equal.
func Equal[T comparable](x Maybe[T], y Maybe[T]) bool {
	if x.present && y.present {
		return x.value == y.value
	}
	return x.present == y.present
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](x Maybe[T], y Maybe[T]) bool {
	return !Equal(x, y)
}

// EqualBy is Equal for value types without a built-in comparison; eq decides
// equality of two held values.
func EqualBy[T any](eq func(T, T) bool, x Maybe[T], y Maybe[T]) bool {
	if x.present && y.present {
		return eq(x.value, y.value)
	}
	return x.present == y.present
}
