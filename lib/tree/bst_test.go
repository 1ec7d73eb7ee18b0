package tree

import (
	"cmp"
	randv2 "math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBSTree(t *testing.T, elements ...int) BSTree[int] {
	tree, err := NewBSTree[int]()
	require.NoError(t, err)
	for _, e := range elements {
		require.NoError(t, tree.Insert(e))
	}
	return tree
}

func bfsValues[E any](tree BinaryTree[E]) []E {
	res := make([]E, 0, tree.Len())
	tree.BFS(func(n Node[E]) {
		res = append(res, n.Value())
	})
	return res
}

func TestBSTreeInsert(t *testing.T) {
	tree := newBSTree(t, 5, 3, 8, 3, 9, 1)
	require.Equal(t, int64(6), tree.Len())
	require.Equal(t, []int{1, 3, 3, 5, 8, 9}, slices.Collect(tree.All()))
	require.Equal(t, []int{9, 8, 5, 3, 3, 1}, slices.Collect(tree.Backward()))

	last, err := tree.LastInserted()
	require.NoError(t, err)
	require.Equal(t, 1, last.Value())
	require.Equal(t, 3, last.Depth())
	p, err := last.Parent()
	require.NoError(t, err)
	require.Equal(t, 3, p.Value())

	// The duplicate is placed on the left.
	root, err := tree.Root()
	require.NoError(t, err)
	l, err := root.Left()
	require.NoError(t, err)
	require.Equal(t, 3, l.Value())
	ll, err := l.Left()
	require.NoError(t, err)
	require.Equal(t, 3, ll.Value())
	require.False(t, l.HasRight())

	first, err := tree.Min()
	require.NoError(t, err)
	require.Equal(t, 1, first.Value())
	end, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, 9, end.Value())
}

func TestBSTreeInsertNil(t *testing.T) {
	tree, err := NewBSTreeFunc[*int](func(i, j *int) int {
		return cmp.Compare(*i, *j)
	})
	require.NoError(t, err)
	require.ErrorIs(t, tree.Insert(nil), ErrInvalidArgument)
	require.True(t, tree.IsEmpty())

	one := 1
	require.NoError(t, tree.Insert(&one))
	require.Equal(t, int64(1), tree.Len())

	_, err = NewBSTreeFunc[int](nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBSTreeDelete(t *testing.T) {
	type testcase struct {
		name     string
		inserts  []int
		remove   int
		expected []int // bfs
	}
	testcases := []testcase{
		{
			name:     "leaf",
			inserts:  []int{4, 2, 6},
			remove:   6,
			expected: []int{4, 2},
		},
		{
			name:     "one child",
			inserts:  []int{4, 2, 6, 7},
			remove:   6,
			expected: []int{4, 2, 7},
		},
		{
			name:     "two children borrows the predecessor",
			inserts:  []int{4, 2, 6, 1, 3, 5, 7},
			remove:   4,
			expected: []int{3, 2, 6, 1, 5, 7},
		},
		{
			name:     "root only",
			inserts:  []int{4},
			remove:   4,
			expected: []int{},
		},
		{
			name:     "duplicate",
			inserts:  []int{5, 3, 8, 3},
			remove:   5,
			expected: []int{3, 3, 8},
		},
		{
			name:     "absent",
			inserts:  []int{4, 2, 6},
			remove:   10,
			expected: []int{4, 2, 6},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree := newBSTree(tt, tc.inserts...)
			tree.Delete(tc.remove)
			require.Equal(tt, tc.expected, bfsValues[int](tree))
			require.Equal(tt, int64(len(tc.expected)), tree.Len())
			_, err := tree.LastInserted()
			require.ErrorIs(tt, err, ErrNotFound)
			// idempotent
			tree.Delete(tc.remove)
			if !slices.Contains(tc.expected, tc.remove) {
				require.Equal(tt, tc.expected, bfsValues[int](tree))
			}
		})
	}
}

func TestBSTreeRotate(t *testing.T) {
	tree := newBSTree(t, 4, 2, 6, 1, 3, 5, 7)
	origin := newBSTree(t, 4, 2, 6, 1, 3, 5, 7)
	require.True(t, tree.Equal(origin))

	root, err := tree.Root()
	require.NoError(t, err)
	require.NoError(t, tree.RotateLeft(root))
	require.Equal(t, []int{6, 4, 7, 2, 5, 1, 3}, bfsValues[int](tree))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(tree.All()))
	require.False(t, tree.Equal(origin))

	root, err = tree.Root()
	require.NoError(t, err)
	require.Equal(t, 6, root.Value())
	require.NoError(t, tree.RotateRight(root))
	require.True(t, tree.Equal(origin))

	// rotate the internal node
	root, _ = tree.Root()
	l, _ := root.Left()
	require.NoError(t, RotateRight[int](tree, l))
	require.Equal(t, []int{4, 1, 6, 2, 5, 7, 3}, bfsValues[int](tree))
	l, _ = root.Left()
	require.NoError(t, RotateLeft[int](tree, l))
	require.True(t, tree.Equal(origin))

	// no-op without the child
	leaf, ok := tree.Search(7)
	require.True(t, ok)
	require.NoError(t, tree.RotateLeft(leaf))
	require.NoError(t, tree.RotateRight(leaf))
	require.True(t, tree.Equal(origin))

	// the view must belong to the tree
	require.ErrorIs(t, tree.RotateLeft(nil), ErrInvalidArgument)
	other, _ := origin.Root()
	require.ErrorIs(t, tree.RotateRight(other), ErrInvalidArgument)
	require.True(t, tree.Equal(origin))
}

func TestBSTreeSearchAfterRotate(t *testing.T) {
	tree := newBSTree(t, 2, 2, 2, 2)
	root, err := tree.Root()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, tree.RotateRight(root))
	}
	require.True(t, tree.Contains(2))
	tree.Delete(2)
	tree.Delete(2)
	require.Equal(t, int64(2), tree.Len())
	require.True(t, tree.Contains(2))
}

func TestBSTreeForeach(t *testing.T) {
	tree := newBSTree(t, 4, 2, 6, 1, 3)
	expected := []int{1, 2, 3}
	tree.Foreach(func(idx int64, e int) bool {
		require.Equal(t, expected[idx], e)
		return idx < int64(len(expected)-1)
	})

	desc, err := NewBSTree[int](WithTreeDesc[int]())
	require.NoError(t, err)
	for _, e := range []int{4, 2, 6} {
		require.NoError(t, desc.Insert(e))
	}
	expected = []int{6, 4, 2}
	desc.Foreach(func(idx int64, e int) bool {
		require.Equal(t, expected[idx], e)
		return true
	})
}

func TestBSTreeClear(t *testing.T) {
	tree := newBSTree(t, 4, 2, 6)
	tree.Clear()
	require.True(t, tree.IsEmpty())
	_, err := tree.Root()
	require.ErrorIs(t, err, ErrNotFound)
	_, err = tree.Min()
	require.ErrorIs(t, err, ErrNotFound)
	_, err = tree.Max()
	require.ErrorIs(t, err, ErrNotFound)
	_, err = tree.LastInserted()
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, -1, tree.Height())
	require.Empty(t, tree.String())
}

func TestBSTreeRandomInsertAndRemove(t *testing.T) {
	total := 2048
	tree := newBSTree(t)
	elements := make([]int, 0, total)
	for i := 0; i < total; i++ {
		e := randv2.IntN(total)
		elements = append(elements, e)
		require.NoError(t, tree.Insert(e))
	}
	sorted := slices.Clone(elements)
	slices.Sort(sorted)
	require.Equal(t, sorted, slices.Collect(tree.All()))

	randv2.Shuffle(len(elements), func(i, j int) {
		elements[i], elements[j] = elements[j], elements[i]
	})
	for i, e := range elements[:total>>1] {
		tree.Delete(e)
		require.Equal(t, int64(total-i-1), tree.Len())
	}
	rest := slices.Clone(elements[total>>1:])
	slices.Sort(rest)
	require.Equal(t, rest, slices.Collect(tree.All()))
}

// A skewed tree must not overflow the goroutine stack.
func TestBSTreeSkewed(t *testing.T) {
	total := 10000
	tree := newBSTree(t)
	for i := 0; i < total; i++ {
		require.NoError(t, tree.Insert(i))
	}
	require.Equal(t, total-1, tree.Height())
	last, err := tree.Max()
	require.NoError(t, err)
	require.Equal(t, total-1, tree.Depth(last))
	require.Equal(t, total, len(slices.Collect(tree.Backward())))
	tree.Clear()
	require.True(t, tree.IsEmpty())
}

func BenchmarkBSTree_Random(b *testing.B) {
	b.StopTimer()
	tree, _ := NewBSTree[int]()
	rngArr := make([]int, 0, b.N)
	for i := 0; i < b.N; i++ {
		rngArr = append(rngArr, randv2.Int())
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Insert(rngArr[i])
	}
}
