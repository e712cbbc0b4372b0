package TreeSet

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

type state uint8

const (
	stateEmpty state = iota // zero Iterator, bound to no set.
	stateAt                 // at the leaf of h.
	stateEnd                // one past the last element.
)

// Iterator is a read-only bidirectional cursor over a TreeSet in ascending order.
// Iterators are values: copying one gives an independent cursor at the same position.
//
// An Iterator stays valid across insertions and across erasure of other elements.
// Using an Iterator whose element was erased, or that was obtained before Clear or
// Assign, panics with ErrInvalidIterator; so does stepping outside [Begin, End]
// or dereferencing End.
type Iterator[T cmp.Ordered, S constraints.Unsigned] struct {
	set *TreeSet[T, S]
	h   handle[S]
	st  state
}

// leaf the iterator is at, panics if there's none.
func (it *Iterator[T, S]) leaf() S {
	switch it.st {
	case stateEmpty:
		panic(fmt.Errorf("%w: unbound iterator", ErrInvalidIterator))
	case stateEnd:
		panic(fmt.Errorf("%w: iterator at end", ErrInvalidIterator))
	}
	if !it.set.valid(it.h) {
		panic(fmt.Errorf("%w: element was erased", ErrInvalidIterator))
	}
	return it.h.i
}

// Value at the iterator.
func (it Iterator[T, S]) Value() T {
	return it.set.ns[it.leaf()].v
}

// Next moves to the following element, or to End after the last one.
// Time: amortized O(1), O(log n) worst case.
func (it *Iterator[T, S]) Next() {
	if it.st == stateEnd {
		panic(fmt.Errorf("%w: advancing past end", ErrInvalidIterator))
	}
	if nx := it.set.next(it.leaf()); nx != 0 {
		it.h = it.set.handle(nx)
	} else {
		it.h, it.st = handle[S]{}, stateEnd
	}
}

// Prev moves to the preceding element. From End it moves to the largest element.
// Time: amortized O(1), O(log n) worst case.
func (it *Iterator[T, S]) Prev() {
	var pv S
	switch it.st {
	case stateEmpty:
		panic(fmt.Errorf("%w: unbound iterator", ErrInvalidIterator))
	case stateEnd:
		pv = it.set.rightmost(it.set.root)
	default:
		pv = it.set.prev(it.leaf())
	}
	if pv == 0 {
		panic(fmt.Errorf("%w: retreating before begin", ErrInvalidIterator))
	}
	it.h, it.st = it.set.handle(pv), stateAt
}

// Valid reports whether the iterator is at an element that still exists.
func (it Iterator[T, S]) Valid() bool {
	return it.st == stateAt && it.set.valid(it.h)
}

// IsEnd reports whether the iterator is one past the last element.
func (it Iterator[T, S]) IsEnd() bool {
	return it.st == stateEnd
}

// Equal reports whether both iterators belong to the same set and are at the same position.
func (it Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return it.set == o.set && it.st == o.st && it.h == o.h
}
