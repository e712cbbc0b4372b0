package TreeSet

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/g-m-twostay/ordset/Sets"
	"golang.org/x/exp/constraints"
)

var _ Sets.Sorted[int] = (*TreeSet[int, uint])(nil)

// TreeSet is an ordered set of T on a 2-3 tree. T's natural order decides
// both ordering and equivalence: a and b are the same element when neither
// a<b nor b<a. S is the type used for node indexes and subtree sizes, so it must
// be wide enough for about twice the number of elements; running out panics
// with ErrExhausted. S shouldn't be wider than uint since sizes are reported as uint.
//
// The zero value is an empty set ready to use.
type TreeSet[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// New empty set. hint is the number of elements to reserve room for.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *TreeSet[T, S] {
	u := new(TreeSet[T, S])
	u.init(hint)
	return u
}

// From the given elements, in any order. Duplicates are ignored.
func From[T cmp.Ordered, S constraints.Unsigned](vs ...T) *TreeSet[T, S] {
	u := New[T](S(len(vs)))
	for _, v := range vs {
		u.insert(v)
	}
	return u
}

// FromRange builds a set from the elements in [first, last) of another set.
// first and last must come from the same set.
func FromRange[T cmp.Ordered, S constraints.Unsigned](first, last Iterator[T, S]) *TreeSet[T, S] {
	if first.set != last.set {
		panic(fmt.Errorf("%w: range bounds from different sets", ErrForeignIterator))
	}
	u := New[T, S](0)
	for it := first; !it.Equal(last); it.Next() {
		u.insert(it.Value())
	}
	return u
}

// FromSeq builds a set from any sequence of elements.
func FromSeq[T cmp.Ordered, S constraints.Unsigned](seq iter.Seq[T]) *TreeSet[T, S] {
	u := New[T, S](0)
	for v := range seq {
		u.insert(v)
	}
	return u
}

// Insert v. Returns false, without changing anything, if v is already present.
// Time: O(log n)
func (u *TreeSet[T, S]) Insert(v T) bool {
	return u.insert(v)
}

// Put [Sets.Set.Put]
func (u *TreeSet[T, S]) Put(v T) bool {
	return u.insert(v)
}

// Erase v. Returns false if v isn't present. Iterators at v become invalid,
// all other iterators stay usable.
// Time: O(log n)
func (u *TreeSet[T, S]) Erase(v T) bool {
	if leaf := u.lowerBound(v); leaf != 0 && equal(u.ns[leaf].v, v) {
		u.erase(leaf)
		return true
	}
	return false
}

// Remove [Sets.Set.Remove]
func (u *TreeSet[T, S]) Remove(v T) bool {
	return u.Erase(v)
}

// EraseAt erases the element it is at and returns the iterator to the element following it.
// Panics if it isn't at an element of u.
func (u *TreeSet[T, S]) EraseAt(it Iterator[T, S]) Iterator[T, S] {
	if it.set != u {
		panic(fmt.Errorf("%w: EraseAt", ErrForeignIterator))
	}
	leaf := it.leaf()
	it.Next()
	u.erase(leaf)
	return it
}

// Has v.
// Time: O(log n)
func (u *TreeSet[T, S]) Has(v T) bool {
	leaf := u.lowerBound(v)
	return leaf != 0 && equal(u.ns[leaf].v, v)
}

// Find returns the iterator at v, or End if v isn't present.
func (u *TreeSet[T, S]) Find(v T) Iterator[T, S] {
	if leaf := u.lowerBound(v); leaf != 0 && equal(u.ns[leaf].v, v) {
		return u.iterAt(leaf)
	}
	return u.End()
}

// LowerBound returns the iterator at the smallest element not less than v, or End.
func (u *TreeSet[T, S]) LowerBound(v T) Iterator[T, S] {
	if leaf := u.lowerBound(v); leaf != 0 && !(u.ns[leaf].v < v) {
		return u.iterAt(leaf)
	}
	return u.End()
}

// UpperBound returns the iterator at the smallest element greater than v, or End.
func (u *TreeSet[T, S]) UpperBound(v T) Iterator[T, S] {
	if leaf := u.successor(v); leaf != 0 {
		return u.iterAt(leaf)
	}
	return u.End()
}

func (u *TreeSet[T, S]) successor(v T) S {
	leaf := u.lowerBound(v)
	if leaf == 0 || u.ns[leaf].v < v {
		return 0
	}
	if v < u.ns[leaf].v {
		return leaf
	}
	return u.next(leaf)
}

// Size of the set.
// Time: O(1)
func (u *TreeSet[T, S]) Size() uint {
	return uint(u.size())
}

// Empty reports whether the set has no elements.
func (u *TreeSet[T, S]) Empty() bool {
	return u.root == 0
}

// Height of the tree: 0 when empty, 1 for a single element.
func (u *TreeSet[T, S]) Height() int {
	return u.height()
}

// Begin returns the iterator at the smallest element, which is End if the set is empty.
func (u *TreeSet[T, S]) Begin() Iterator[T, S] {
	if u.root == 0 {
		return u.End()
	}
	return u.iterAt(u.leftmost(u.root))
}

// End returns the position one past the largest element.
func (u *TreeSet[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{set: u, st: stateEnd}
}

func (u *TreeSet[T, S]) iterAt(leaf S) Iterator[T, S] {
	return Iterator[T, S]{set: u, h: u.handle(leaf), st: stateAt}
}

// Min [Sets.Sorted.Min]
func (u *TreeSet[T, S]) Min() (T, bool) {
	return u.value(u.leftmost(u.root))
}

// Max [Sets.Sorted.Max]
func (u *TreeSet[T, S]) Max() (T, bool) {
	return u.value(u.rightmost(u.root))
}

// Take the smallest element without removing it. Zero value if the set is empty.
func (u *TreeSet[T, S]) Take() T {
	v, _ := u.Min()
	return v
}

// Predecessor [Sets.Sorted.Predecessor]
// Time: O(log n)
func (u *TreeSet[T, S]) Predecessor(v T) (T, bool) {
	leaf := u.lowerBound(v)
	if leaf != 0 && !(u.ns[leaf].v < v) {
		leaf = u.prev(leaf)
	}
	return u.value(leaf)
}

// Successor [Sets.Sorted.Successor]
// Time: O(log n)
func (u *TreeSet[T, S]) Successor(v T) (T, bool) {
	return u.value(u.successor(v))
}

// At [Sets.Sorted.At]. Returns (x, true) if k<Size(), otherwise (zero, false).
// Time: O(log n)
func (u *TreeSet[T, S]) At(k uint) (T, bool) {
	if k >= u.Size() {
		return *new(T), false
	}
	return u.ns[u.at(S(k))].v, true
}

// RankOf [Sets.Sorted.RankOf]. If v isn't present, the rank is the one v would have if inserted.
// Time: O(log n)
func (u *TreeSet[T, S]) RankOf(v T) (uint, bool) {
	r, leaf := u.rank(v)
	return uint(r), leaf != 0 && equal(u.ns[leaf].v, v)
}

// Clone returns an independent copy made by inserting u's elements in ascending order.
func (u *TreeSet[T, S]) Clone() *TreeSet[T, S] {
	c := New[T](u.size())
	for i := u.leftmost(u.root); i != 0; i = u.next(i) {
		c.insert(u.ns[i].v)
	}
	return c
}

// Assign replaces u's elements with a copy of other's. Assigning a set to itself
// does nothing. Iterators into u become invalid.
func (u *TreeSet[T, S]) Assign(other *TreeSet[T, S]) {
	if u == other {
		return
	}
	u.Clear()
	for i := other.leftmost(other.root); i != 0; i = other.next(i) {
		u.insert(other.ns[i].v)
	}
}

// Clear removes every element. The arena keeps its memory for reuse.
func (u *TreeSet[T, S]) Clear() {
	if n := u.clear(); n > 0 {
		tracer().Debugf("TreeSet: cleared %d nodes", n)
	}
}

// Range [Sets.Set.Range]. Elements are visited in ascending order. u mustn't be
// modified during the iteration.
func (u *TreeSet[T, S]) Range(f func(T) bool) {
	for i := u.leftmost(u.root); i != 0; i = u.next(i) {
		if !f(u.ns[i].v) {
			return
		}
	}
}

// All elements in ascending order.
func (u *TreeSet[T, S]) All() iter.Seq[T] {
	return u.Range
}

// Backward returns all elements in descending order.
func (u *TreeSet[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := u.rightmost(u.root); i != 0; i = u.prev(i) {
			if !yield(u.ns[i].v) {
				return
			}
		}
	}
}

// Values in ascending order.
func (u *TreeSet[T, S]) Values() []T {
	vs := make([]T, 0, u.Size())
	u.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func (u *TreeSet[T, S]) String() string {
	var sb strings.Builder
	sb.WriteString("TreeSet[")
	first := true
	u.Range(func(v T) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
