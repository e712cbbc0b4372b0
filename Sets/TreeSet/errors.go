package TreeSet

import "errors"

var (
	// ErrInvalidIterator is the panic value (wrapped) for dereferencing End,
	// stepping out of range, or using an iterator whose element was erased.
	ErrInvalidIterator = errors.New("TreeSet: invalid iterator")
	// ErrForeignIterator signals an iterator passed to a set it doesn't belong to.
	ErrForeignIterator = errors.New("TreeSet: iterator belongs to another set")
	// ErrCorrupt wraps every invariant violation reported by Check.
	ErrCorrupt = errors.New("TreeSet: corrupt tree")
	// ErrExhausted is the panic value when the index type S can't address another node.
	ErrExhausted = errors.New("TreeSet: index space exhausted")
)
