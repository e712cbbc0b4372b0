package TreeSet

import (
	"cmp"
	"fmt"

	"github.com/g-m-twostay/ordset"
	"golang.org/x/exp/constraints"
)

// A node in the arena. Leaves have n==0 and hold a key in v; internal nodes
// hold 2 or 3 children (4 only while being split) and v is the largest key below.
// The zero value at index 0 is the nil node.
type node[T cmp.Ordered, S constraints.Unsigned] struct {
	v    T
	sz   S    // number of leaves below, 1 for a leaf.
	p    S    // parent, 0 for the root. Never used to free nodes.
	kids [4]S // kids[:n] sorted by v. kids[0] links the free list when the slot is free.
	n    uint8
	gen  uint32 // bumped every time the slot is freed.
}

// handle to a node that can tell whether the slot was freed since it was taken.
type handle[S constraints.Unsigned] struct {
	i   S
	gen uint32
}

type base[T cmp.Ordered, S constraints.Unsigned] struct {
	ns         []node[T, S] // ns[0] is the nil node.
	live       ordset.BitArray
	root, free S // free is the beginning of the linked list of free indexes through node.kids[0].
}

func (u *base[T, S]) init(hint S) {
	// a tree with n leaves has fewer than n internal nodes.
	c := 2*int(hint) + 1
	u.ns = make([]node[T, S], 1, c)
	u.live = ordset.NewBitArray(c)
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ns[a].kids[0] = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index.
func (u *base[T, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.ns[b].kids[0]
	}
	return b
}

// alloc a leaf holding v. Free slots are reused before the arena grows.
// Pointers into u.ns are invalid after this call.
func (u *base[T, S]) alloc(v T) S {
	if len(u.ns) == 0 {
		u.init(0)
	}
	i := u.popFree()
	if i == 0 {
		i = S(len(u.ns))
		if int(i) != len(u.ns) || i == 0 {
			panic(fmt.Errorf("%w: %d nodes", ErrExhausted, len(u.ns)))
		}
		u.ns = append(u.ns, node[T, S]{})
	}
	u.ns[i] = node[T, S]{v: v, sz: 1, gen: u.ns[i].gen}
	u.live.Up(int(i))
	return i
}

// release a node; every handle to it goes stale.
func (u *base[T, S]) release(i S) {
	u.live.Down(int(i))
	u.recycle(i)
}

// recycle the slot without touching its live bit.
func (u *base[T, S]) recycle(i S) {
	u.ns[i] = node[T, S]{gen: u.ns[i].gen + 1}
	u.addFree(i)
}

// value of leaf i, false for the nil node.
func (u *base[T, S]) value(i S) (v T, ok bool) {
	if i != 0 {
		return u.ns[i].v, true
	}
	return
}

func (u *base[T, S]) size() S {
	if u.root == 0 {
		return 0
	}
	return u.ns[u.root].sz
}

func (u *base[T, S]) handle(i S) handle[S] {
	return handle[S]{i, u.ns[i].gen}
}

func (u *base[T, S]) valid(h handle[S]) bool {
	return h.i != 0 && int(h.i) < len(u.ns) && u.live.Get(int(h.i)) && u.ns[h.i].gen == h.gen
}

// frame of the post-order walk in clear.
type frame[S constraints.Unsigned] struct {
	i    S
	next uint8
}

// clear releases every node, children before parents. Nothing stays live, so the
// live bits are dropped at once.
func (u *base[T, S]) clear() (freed int) {
	if u.root == 0 {
		return
	}
	st := []frame[S]{{u.root, 0}}
	for len(st) > 0 {
		top := &st[len(st)-1]
		if n := &u.ns[top.i]; top.next < n.n {
			k := n.kids[top.next]
			top.next++
			st = append(st, frame[S]{k, 0})
			continue
		}
		u.recycle(top.i)
		freed++
		st = st[:len(st)-1]
	}
	u.live.Reset()
	u.root = 0
	return
}
