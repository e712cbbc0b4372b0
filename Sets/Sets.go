package Sets

// Set of unique elements.
type Set[E any] interface {
	//Put e into the set. Returns false if e was already present.
	Put(E) bool
	Has(E) bool
	//Remove e. Returns false if e wasn't present.
	Remove(E) bool
	Size() uint
	//Take an element without removing it. Zero value if the set is empty.
	Take() E
	//Range calls f on the elements until f returns false.
	Range(func(E) bool)
}

// Sorted is a Set that keeps its elements in ascending order. Receivers that
// return a bool as the second value report whether the first one is defined.
type Sorted[E any] interface {
	Set[E]
	//Min element of the set.
	Min() (E, bool)
	//Max element of the set.
	Max() (E, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v E) (E, bool)
	//Successor returns the smallest element greater than v.
	Successor(v E) (E, bool)
	//At returns the k-th smallest element, starting from 0.
	At(k uint) (E, bool)
	//RankOf v is the number of elements less than v, and whether v is in the set.
	RankOf(v E) (uint, bool)
	//Corrupt reports whether the structure violates its own invariants.
	Corrupt() bool
}
