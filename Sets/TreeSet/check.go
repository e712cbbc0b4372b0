package TreeSet

import "fmt"

// Check validates the structural invariants of the tree: equal leaf depth, 2 or 3
// children per internal node, children sorted by key, cached keys and sizes, parent
// links, and that exactly the reachable nodes are marked live in the arena.
// Time: O(n)
func (u *TreeSet[T, S]) Check() error {
	if n := u.live.Len(); n < len(u.ns) {
		return fmt.Errorf("%w: live bits cover %d of %d slots", ErrCorrupt, n, len(u.ns))
	}
	if u.root == 0 {
		if c := u.live.Count(); c != 0 {
			return fmt.Errorf("%w: empty tree has %d live nodes", ErrCorrupt, c)
		}
		return nil
	}
	if p := u.ns[u.root].p; p != 0 {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorrupt, u.root, p)
	}
	var reached int
	if _, err := u.checkNode(u.root, &reached); err != nil {
		return err
	}
	if c := u.live.Count(); c != reached {
		return fmt.Errorf("%w: %d live nodes, %d reachable", ErrCorrupt, c, reached)
	}
	return nil
}

// Corrupt [Sets.Sorted.Corrupt]
func (u *TreeSet[T, S]) Corrupt() bool {
	return u.Check() != nil
}

func (u *TreeSet[T, S]) checkNode(i S, reached *int) (height int, err error) {
	if i == 0 || int(i) >= len(u.ns) || !u.live.Get(int(i)) {
		return 0, fmt.Errorf("%w: node %d isn't live", ErrCorrupt, i)
	}
	*reached++
	n := &u.ns[i]
	if n.n == 0 {
		if n.sz != 1 {
			return 0, fmt.Errorf("%w: leaf %d has size %d", ErrCorrupt, i, n.sz)
		}
		return 1, nil
	}
	if n.n < 2 || n.n > 3 {
		return 0, fmt.Errorf("%w: node %d has %d children", ErrCorrupt, i, n.n)
	}
	var sz S
	for j, k := range n.kids[:n.n] {
		if k != 0 && u.ns[k].p != i {
			return 0, fmt.Errorf("%w: child %d of %d has parent %d", ErrCorrupt, k, i, u.ns[k].p)
		}
		if j > 0 && !(u.ns[n.kids[j-1]].v < u.ns[k].v) {
			return 0, fmt.Errorf("%w: children of %d out of order at %d", ErrCorrupt, i, j)
		}
		h, err := u.checkNode(k, reached)
		if err != nil {
			return 0, err
		}
		if j == 0 {
			height = h
		} else if h != height {
			return 0, fmt.Errorf("%w: node %d has subtrees of heights %d and %d", ErrCorrupt, i, height, h)
		}
		sz += u.ns[k].sz
	}
	if last := u.ns[n.kids[n.n-1]].v; !equal(n.v, last) {
		return 0, fmt.Errorf("%w: node %d caches %v, last child has %v", ErrCorrupt, i, n.v, last)
	}
	if sz != n.sz {
		return 0, fmt.Errorf("%w: node %d caches size %d, children sum to %d", ErrCorrupt, i, n.sz, sz)
	}
	return height + 1, nil
}
