package TreeSet

import (
	"slices"
	"testing"

	"github.com/openacid/testkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steps[T int | string](u *TreeSet[T, uint]) (n uint) {
	for it := u.Begin(); !it.Equal(u.End()); it.Next() {
		n++
	}
	return
}

func TestScenarioOneToFive(t *testing.T) {
	s := New[int, uint](0)
	for i := 1; i <= 5; i++ {
		s.Insert(i)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Values())
	assert.True(t, s.Erase(3))
	assert.Equal(t, []int{1, 2, 4, 5}, s.Values())
	assert.True(t, s.Find(3).Equal(s.End()))
	assert.Equal(t, 4, s.LowerBound(3).Value())
	require.NoError(t, s.Check())
}

func TestScenarioSingleKey(t *testing.T) {
	s := New[int, uint](0)
	s.Insert(7)
	it := s.Begin()
	assert.Equal(t, 7, it.Value())
	it.Next()
	assert.True(t, it.Equal(s.End()))
	assert.Equal(t, 1, s.Height())
}

func TestScenarioDescendingThenAscending(t *testing.T) {
	s := New[int, uint](0)
	for i := 10; i > 0; i-- {
		s.Insert(i)
	}
	require.Equal(t, uint(10), s.Size())
	for i := 1; i <= 10; i++ {
		before := s.Size()
		require.True(t, s.Erase(i))
		require.Equal(t, before-1, s.Size())
		vs := s.Values()
		require.True(t, slices.IsSorted(vs))
		require.Len(t, vs, int(s.Size()))
		require.NoError(t, s.Check())
	}
	assert.True(t, s.Empty())
	assert.True(t, s.Begin().Equal(s.End()))
}

func TestInsertIdempotent(t *testing.T) {
	s := From[int, uint](3, 1, 2)
	assert.False(t, s.Insert(2))
	assert.False(t, s.Put(2))
	assert.Equal(t, uint(3), s.Size())
	assert.Equal(t, []int{1, 2, 3}, s.Values())
	assert.False(t, s.Erase(42))
	assert.False(t, s.Remove(42))
}

func TestOrderIndependent(t *testing.T) {
	keys := rg.Perm(500)
	a := From[int, uint](keys...)
	slices.Reverse(keys)
	b := From[int, uint](keys...)
	assert.Equal(t, a.Values(), b.Values())
	assert.Equal(t, a.Size(), steps(a))
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())
}

func TestFindAbsent(t *testing.T) {
	s := From[int, uint](2, 4, 6, 8)
	s.Erase(4)
	for _, k := range []int{1, 4, 5, 9} {
		assert.True(t, s.Find(k).IsEnd(), "Find(%d)", k)
		assert.False(t, s.Has(k), "Has(%d)", k)
	}
	assert.True(t, s.LowerBound(9).IsEnd())
	assert.Equal(t, 6, s.UpperBound(2).Value())
	assert.Equal(t, 6, s.UpperBound(5).Value())
	assert.True(t, s.UpperBound(8).IsEnd())
	empty := New[int, uint](0)
	assert.True(t, empty.Find(1).Equal(empty.End()))
	assert.True(t, empty.LowerBound(1).Equal(empty.End()))
}

func TestMinMax(t *testing.T) {
	s := From[int, uint](5, -3, 12, 0)
	lo, ok := s.Min()
	assert.True(t, ok)
	assert.Equal(t, -3, lo)
	hi, ok := s.Max()
	assert.True(t, ok)
	assert.Equal(t, 12, hi)
	assert.Equal(t, -3, s.Take())
	assert.Equal(t, lo, s.Begin().Value())
	end := s.End()
	end.Prev()
	assert.Equal(t, hi, end.Value())
	_, ok = New[int, uint](0).Max()
	assert.False(t, ok)
	assert.Equal(t, 0, New[int, uint](0).Take())
}

func TestZeroValue(t *testing.T) {
	var s TreeSet[int, uint16]
	assert.True(t, s.Empty())
	assert.Equal(t, uint(0), s.Size())
	assert.False(t, s.Has(1))
	assert.False(t, s.Erase(1))
	_, ok := s.Min()
	assert.False(t, ok)
	_, ok = s.Predecessor(1)
	assert.False(t, ok)
	_, ok = s.Successor(1)
	assert.False(t, ok)
	r, in := s.RankOf(1)
	assert.Equal(t, uint(0), r)
	assert.False(t, in)
	assert.True(t, s.Begin().IsEnd())
	assert.True(t, s.Clone().Empty())
	s.Clear()
	require.NoError(t, s.Check())

	for i := 10; i > 0; i-- {
		assert.True(t, s.Insert(i))
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, s.Values())
	require.NoError(t, s.Check())
	var d TreeSet[int, uint16]
	d.Assign(&s)
	assert.Equal(t, s.Values(), d.Values())
}

func TestCloneIndependent(t *testing.T) {
	s := From[int, uint](1, 2, 3, 4, 5, 6, 7)
	c := s.Clone()
	assert.Equal(t, s.Values(), c.Values())
	c.Erase(4)
	c.Insert(100)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, s.Values())
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7, 100}, c.Values())
	require.NoError(t, s.Check())
	require.NoError(t, c.Check())
}

func TestAssign(t *testing.T) {
	s := From[int, uint](1, 2, 3)
	d := From[int, uint](9, 8)
	d.Assign(s)
	assert.Equal(t, []int{1, 2, 3}, d.Values())
	d.Insert(0)
	assert.Equal(t, []int{1, 2, 3}, s.Values())
	d.Assign(d)
	assert.Equal(t, []int{0, 1, 2, 3}, d.Values())
	d.Assign(New[int, uint](0))
	assert.True(t, d.Empty())
	require.NoError(t, d.Check())
}

func TestConstructors(t *testing.T) {
	s := From[int, uint](5, 1, 9, 3, 7, 1)
	assert.Equal(t, uint(5), s.Size())

	r := FromRange(s.LowerBound(3), s.Find(9))
	assert.Equal(t, []int{3, 5, 7}, r.Values())
	all := FromRange(s.Begin(), s.End())
	assert.Equal(t, s.Values(), all.Values())
	none := FromRange(s.End(), s.End())
	assert.True(t, none.Empty())

	q := FromSeq[int, uint](slices.Values([]int{4, 2, 4, 8}))
	assert.Equal(t, []int{2, 4, 8}, q.Values())
	assert.Panics(t, func() { FromRange(s.Begin(), q.End()) })
}

func TestSequences(t *testing.T) {
	s := From[int, uint](3, 1, 2, 5, 4)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(s.All()))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, slices.Collect(s.Backward()))
	var firstTwo []int
	for v := range s.All() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	assert.Equal(t, []int{1, 2}, firstTwo)
	assert.Equal(t, "TreeSet[1 2 3 4 5]", s.String())
	assert.Equal(t, "TreeSet[]", New[int, uint](0).String())
}

func TestStringKeys(t *testing.T) {
	var keys []string
	for _, fn := range testkeys.AssetNames() {
		if ks := testkeys.Load(fn); len(ks) >= 1000 {
			keys = ks
			break
		}
	}
	if len(keys) == 0 {
		t.Skip("no key set with at least 1000 keys")
	}
	if len(keys) > 20000 {
		keys = keys[:20000]
	}
	shuffled := slices.Clone(keys)
	rg.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	s := From[string, uint](shuffled...)
	want := slices.Compact(slices.Sorted(slices.Values(keys)))
	require.Equal(t, want, s.Values())
	require.Equal(t, uint(len(want)), steps(s))
	require.NoError(t, s.Check())
	for i, k := range want {
		if i%2 == 0 {
			require.True(t, s.Erase(k))
		}
	}
	require.NoError(t, s.Check())
	for i, k := range want {
		assert.Equal(t, i%2 == 1, s.Has(k), k)
	}
}
