package TreeSet

import (
	"cmp"
)

// equal is the equivalence derived from <.
func equal[T cmp.Ordered](a, b T) bool {
	return !(a < b || b < a)
}

// update v and sz of an internal node from its children.
func (u *base[T, S]) update(i S) {
	n := &u.ns[i]
	if n.n == 0 {
		return
	}
	n.v = u.ns[n.kids[n.n-1]].v
	var sz S
	for _, k := range n.kids[:n.n] {
		sz += u.ns[k].sz
	}
	n.sz = sz
}

// updateUp calls update on i and all its ancestors.
func (u *base[T, S]) updateUp(i S) {
	for ; i != 0; i = u.ns[i].p {
		u.update(i)
	}
}

func (u *base[T, S]) setKids(par S, kids ...S) {
	n := &u.ns[par]
	n.n = uint8(copy(n.kids[:], kids))
	for _, k := range kids {
		u.ns[k].p = par
	}
	u.update(par)
}

// addKid appends kid to par and moves it to its sorted position.
func (u *base[T, S]) addKid(kid, par S) {
	u.ns[kid].p = par
	n := &u.ns[par]
	n.kids[n.n] = kid
	for i := n.n; i > 0 && u.ns[n.kids[i]].v < u.ns[n.kids[i-1]].v; i-- {
		n.kids[i], n.kids[i-1] = n.kids[i-1], n.kids[i]
	}
	n.n++
	u.update(par)
}

// removeKid from par without updating par.
func (u *base[T, S]) removeKid(par, kid S) {
	n := &u.ns[par]
	for i := uint8(0); i < n.n; i++ {
		if n.kids[i] == kid {
			copy(n.kids[i:n.n], n.kids[i+1:n.n])
			n.n--
			n.kids[n.n] = 0
			return
		}
	}
	mustHold(false, "removeKid: not a child")
}

func (u *base[T, S]) lastKid(par S) S {
	return u.ns[par].kids[u.ns[par].n-1]
}

// lowerBound returns the leaf with the smallest key >= v, or the rightmost
// leaf if every key is less than v. Returns 0 for an empty tree.
func (u *base[T, S]) lowerBound(v T) S {
	cur := u.root
	for cur != 0 && u.ns[cur].n > 0 {
		n := &u.ns[cur]
		if !(u.ns[n.kids[0]].v < v) {
			cur = n.kids[0]
		} else if n.n == 2 || !(u.ns[n.kids[1]].v < v) {
			cur = n.kids[1]
		} else {
			cur = n.kids[2]
		}
	}
	return cur
}

// insert v. Returns false if an equivalent key is already present.
func (u *base[T, S]) insert(v T) bool {
	if u.root == 0 {
		u.root = u.alloc(v)
		return true
	}
	at := u.lowerBound(v)
	if equal(u.ns[at].v, v) {
		return false
	}
	leaf := u.alloc(v)
	if par := u.ns[at].p; par == 0 {
		l, r := at, leaf
		if v < u.ns[at].v {
			l, r = leaf, at
		}
		u.root = u.alloc(u.ns[r].v)
		u.setKids(u.root, l, r)
	} else {
		u.addKid(leaf, par)
		u.updateUp(u.ns[par].p)
		u.split(par)
	}
	return true
}

// split i while it has 4 children, moving up the tree. This is the only way
// the height grows.
func (u *base[T, S]) split(i S) {
	for u.ns[i].n == 4 {
		kids := u.ns[i].kids
		brother := u.alloc(u.ns[kids[3]].v)
		u.setKids(brother, kids[2], kids[3])
		u.setKids(i, kids[0], kids[1])
		u.ns[i].kids[2], u.ns[i].kids[3] = 0, 0
		if p := u.ns[i].p; p != 0 {
			u.addKid(brother, p)
			i = p
			continue
		}
		u.root = u.alloc(u.ns[brother].v)
		u.setKids(u.root, i, brother)
		tracer().Debugf("TreeSet: root split, %d leaves", u.ns[u.root].sz)
	}
}

// uncle is the sibling of par that par borrows from or merges into, and whether it's
// on par's left. When par is the last of three, the uncle is the middle child.
func (u *base[T, S]) uncle(par S) (S, bool) {
	g := &u.ns[u.ns[par].p]
	if g.n == 3 && g.kids[2] == par {
		return g.kids[1], true
	}
	if g.kids[0] == par {
		return g.kids[1], false
	}
	return g.kids[0], true
}

// erase node x, which is a leaf on the first round. Each round either
// resolves locally or merges and erases the emptied parent one level up.
func (u *base[T, S]) erase(x S) {
	for {
		par := u.ns[x].p
		if par == 0 {
			u.root = 0
			u.release(x)
			return
		}
		if u.ns[par].n == 3 {
			u.removeKid(par, x)
			u.updateUp(par)
			u.release(x)
			return
		}
		brother := u.ns[par].kids[0]
		if brother == x {
			brother = u.ns[par].kids[1]
		}
		if u.ns[par].p == 0 {
			u.ns[brother].p = 0
			u.root = brother
			u.release(par)
			u.release(x)
			tracer().Debugf("TreeSet: root shrunk, %d leaves", u.ns[brother].sz)
			return
		}
		u.removeKid(par, x)
		u.release(x)
		uncle, left := u.uncle(par)
		if u.ns[uncle].n == 2 {
			u.removeKid(par, brother)
			u.addKid(brother, uncle)
			tracer().Debugf("TreeSet: merged into node %d", uncle)
			x = par
			continue
		}
		var k S
		if left {
			k = u.lastKid(uncle)
		} else {
			k = u.ns[uncle].kids[0]
		}
		u.removeKid(uncle, k)
		u.addKid(k, par)
		u.update(uncle)
		u.updateUp(par)
		tracer().Debugf("TreeSet: borrowed from node %d", uncle)
		return
	}
}

func (u *base[T, S]) leftmost(i S) S {
	for i != 0 && u.ns[i].n > 0 {
		i = u.ns[i].kids[0]
	}
	return i
}

func (u *base[T, S]) rightmost(i S) S {
	for i != 0 && u.ns[i].n > 0 {
		i = u.lastKid(i)
	}
	return i
}

// next leaf after leaf x in ascending order, 0 if x is the last.
func (u *base[T, S]) next(x S) S {
	for p := u.ns[x].p; p != 0 && u.lastKid(p) == x; p = u.ns[x].p {
		x = p
	}
	p := u.ns[x].p
	if p == 0 {
		return 0
	}
	n := &u.ns[p]
	if n.kids[0] == x {
		x = n.kids[1]
	} else {
		x = n.kids[2]
	}
	return u.leftmost(x)
}

// prev leaf before leaf x in ascending order, 0 if x is the first.
func (u *base[T, S]) prev(x S) S {
	for p := u.ns[x].p; p != 0 && u.ns[p].kids[0] == x; p = u.ns[x].p {
		x = p
	}
	p := u.ns[x].p
	if p == 0 {
		return 0
	}
	n := &u.ns[p]
	if n.kids[1] == x {
		x = n.kids[0]
	} else {
		x = n.kids[1]
	}
	return u.rightmost(x)
}

// at returns the k-th leaf, starting from 0. k must be less than the root's sz.
func (u *base[T, S]) at(k S) S {
	cur := u.root
	for u.ns[cur].n > 0 {
		n := &u.ns[cur]
		i := uint8(0)
		for ; i < n.n-1 && k >= u.ns[n.kids[i]].sz; i++ {
			k -= u.ns[n.kids[i]].sz
		}
		cur = n.kids[i]
	}
	return cur
}

// rank is the number of keys less than v, along the lowerBound path.
func (u *base[T, S]) rank(v T) (r S, leaf S) {
	cur := u.root
	for cur != 0 && u.ns[cur].n > 0 {
		n := &u.ns[cur]
		if !(u.ns[n.kids[0]].v < v) {
			cur = n.kids[0]
		} else if n.n == 2 || !(u.ns[n.kids[1]].v < v) {
			r += u.ns[n.kids[0]].sz
			cur = n.kids[1]
		} else {
			r += u.ns[n.kids[0]].sz + u.ns[n.kids[1]].sz
			cur = n.kids[2]
		}
	}
	if cur != 0 && u.ns[cur].v < v {
		r++
	}
	return r, cur
}

func (u *base[T, S]) height() (h int) {
	for i := u.root; i != 0; h++ {
		if u.ns[i].n == 0 {
			return h + 1
		}
		i = u.ns[i].kids[0]
	}
	return
}

func mustHold(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
