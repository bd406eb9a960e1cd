// Package iter provides iterators that report end-of-sequence as a Nothing
// rather than a sentinel value or an error.
package iter

import (
	"context"

	"gopkg.microglot.org/maybe.go"
)

// Iterator produces values until the sequence is exhausted, at which point
// Next returns Nothing on every subsequent call.
type Iterator[T any] interface {
	Next(ctx context.Context) maybe.Maybe[T]
	Close(ctx context.Context) error
}

// Filter decides which values an iterator keeps.
type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

// Lookahead is an Iterator that supports peeking at upcoming values without
// consuming them.
type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(ctx context.Context, n uint8) maybe.Maybe[T]
}

// FilterFunc adapts a plain function to the Filter interface. Use like:
//
//	FilterFunc[T](func(ctx context.Context, v T) bool { return true })
//
// Always use Filter, not this type, in signatures.
type FilterFunc[T any] func(ctx context.Context, v T) bool

func (f FilterFunc[T]) Keep(ctx context.Context, v T) bool {
	return f(ctx, v)
}

// NewSlice converts a slice of values into an Iterator over them.
func NewSlice[T any](vs []T) Iterator[T] {
	return &iteratorSlice[T]{slice: vs}
}

type iteratorSlice[T any] struct {
	slice []T
	next  int
}

func (it *iteratorSlice[T]) Next(ctx context.Context) maybe.Maybe[T] {
	if it.next >= len(it.slice) {
		return maybe.Nothing[T]()
	}
	v := it.slice[it.next]
	it.next = it.next + 1
	return maybe.Just(v)
}

func (it *iteratorSlice[T]) Close(ctx context.Context) error {
	return nil
}

// NewFilter wraps an iterator so that only values passing the filter are
// returned.
func NewFilter[T any](it Iterator[T], f Filter[T]) Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   Iterator[T]
	filter Filter[T]
}

func (it *iteratorFilter[T]) Next(ctx context.Context) maybe.Maybe[T] {
	for {
		v := it.iter.Next(ctx)
		if v.IsNothing() {
			return v
		}
		if it.filter.Keep(ctx, v.UnsafeGetJust()) {
			return v
		}
	}
}

func (it *iteratorFilter[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// NewMap wraps an iterator with a per-element transform. End of sequence
// passes through untouched because the transform is lifted over the Maybe.
func NewMap[A any, B any](it Iterator[A], f func(A) B) Iterator[B] {
	return &iteratorMap[A, B]{
		iter: it,
		lift: maybe.LiftMaybe(f),
	}
}

type iteratorMap[A any, B any] struct {
	iter Iterator[A]
	lift func(maybe.Maybe[A]) maybe.Maybe[B]
}

func (it *iteratorMap[A, B]) Next(ctx context.Context) maybe.Maybe[B] {
	return it.lift(it.iter.Next(ctx))
}

func (it *iteratorMap[A, B]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// NewLookahead wraps an iterator in a Lookahead that can peek up to n values
// ahead of the cursor.
func NewLookahead[T any](it Iterator[T], n uint8) Lookahead[T] {
	return &lookahead[T]{
		iter: it,
		n:    n,
	}
}

type lookahead[T any] struct {
	iter   Iterator[T]
	n      uint8
	window []maybe.Maybe[T]
}

func (look *lookahead[T]) fill(ctx context.Context) {
	look.window = make([]maybe.Maybe[T], look.n+1)
	for x := range look.window {
		look.window[x] = look.iter.Next(ctx)
	}
}

func (look *lookahead[T]) Next(ctx context.Context) maybe.Maybe[T] {
	if look.window == nil {
		look.fill(ctx)
		return look.window[0]
	}
	copy(look.window, look.window[1:])
	look.window[len(look.window)-1] = look.iter.Next(ctx)
	return look.window[0]
}

func (look *lookahead[T]) Lookahead(ctx context.Context, n uint8) maybe.Maybe[T] {
	if look.window == nil {
		look.fill(ctx)
	}
	if n > look.n {
		return maybe.Nothing[T]()
	}
	return look.window[n]
}

func (look *lookahead[T]) Close(ctx context.Context) error {
	return look.iter.Close(ctx)
}

// Justs drains an iterator of Maybe elements, collecting the values of Just
// elements and dropping Nothings, then closes the iterator.
func Justs[T any](ctx context.Context, it Iterator[maybe.Maybe[T]]) ([]T, error) {
	var out []T
	for {
		next := it.Next(ctx)
		if next.IsNothing() {
			return out, it.Close(ctx)
		}
		if v := maybe.FlattenMaybe(next); v.IsJust() {
			out = append(out, v.UnsafeGetJust())
		}
	}
}

// First returns the first value of the iterator, or Nothing when the
// iterator is empty, then closes the iterator.
func First[T any](ctx context.Context, it Iterator[T]) (maybe.Maybe[T], error) {
	v := it.Next(ctx)
	return v, it.Close(ctx)
}
