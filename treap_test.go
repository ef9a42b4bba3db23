package treearray

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// inorder collects the values of the subtree rooted at i.
func inorder[T any](a *arena[T], i int) []T {
	if i == nilNode {
		return nil
	}
	n := a.nodes[i]
	out := inorder(a, n.left)
	out = append(out, n.value)
	return append(out, inorder(a, n.right)...)
}

// buildSeq builds a treap over 0..n-1 by repeated merges.
func buildSeq(a *arena[int], n int) int {
	root := nilNode
	for i := 0; i < n; i++ {
		idx := a.allocate()
		a.at(idx).value = i
		root = a.merge(root, idx)
	}
	return root
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func TestTreap_MergeWithSentinel(t *testing.T) {
	a := newArena[int](0, 0, nil)
	x := a.allocate()
	require.Equal(t, x, a.merge(x, nilNode))
	require.Equal(t, x, a.merge(nilNode, x))
	require.Equal(t, nilNode, a.merge(nilNode, nilNode))
}

func TestTreap_MergeTieFavorsRight(t *testing.T) {
	a := newArena[int](0, 0, nil)
	l, r := a.allocate(), a.allocate()
	a.at(l).priority = 7
	a.at(r).priority = 7

	root := a.merge(l, r)
	require.Equal(t, r, root)
	require.Equal(t, l, a.nodes[r].left)
	require.Equal(t, 2, a.sizeOf(root))
}

func TestTreap_MergeHigherPriorityWins(t *testing.T) {
	a := newArena[int](0, 0, nil)
	l, r := a.allocate(), a.allocate()
	a.at(l).priority = 9
	a.at(r).priority = 3

	root := a.merge(l, r)
	require.Equal(t, l, root)
	require.Equal(t, r, a.nodes[l].right)
}

func TestTreap_Split(t *testing.T) {
	const n = 200
	for _, k := range []int{0, 1, 57, n - 1, n, n + 10} {
		a := newArena[int](0, 0, rand.NewPCG(uint64(k), 3))
		root := buildSeq(a, n)

		left, right := a.split(root, k)
		cut := min(k, n)
		require.Equal(t, cut, a.sizeOf(left), "k=%d", k)
		require.Equal(t, n-cut, a.sizeOf(right), "k=%d", k)
		require.Equal(t, seq(0, cut), append([]int{}, inorder(a, left)...))
		require.Equal(t, seq(cut, n), append([]int{}, inorder(a, right)...))

		joined := a.merge(left, right)
		require.Equal(t, seq(0, n), inorder(a, joined))
		require.Equal(t, n, a.sizeOf(joined))
	}

	a := newArena[int](0, 0, nil)
	l, r := a.split(nilNode, 3)
	require.Equal(t, nilNode, l)
	require.Equal(t, nilNode, r)
}

func TestTreap_Locate(t *testing.T) {
	a := newArena[int](0, 0, nil)
	root := buildSeq(a, 500)
	for rank := 0; rank < 500; rank++ {
		i := a.locate(root, rank)
		require.NotEqual(t, nilNode, i)
		require.Equal(t, rank, a.nodes[i].value)
	}
	require.Equal(t, nilNode, a.locate(root, 500))
	require.Equal(t, nilNode, a.locate(root, -1))
	require.Equal(t, nilNode, a.locate(nilNode, 0))
}

func TestTreap_BuildBalanced(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 16, 17, 1023, 4096} {
		a := newArena[int](n+1, 0, nil)
		root := a.buildBalanced(seq(0, n))
		require.Equal(t, seq(0, n), inorder(a, root), "n=%d", n)
		require.Equal(t, n, a.sizeOf(root))
		require.Equal(t, n, a.live)
		require.Equal(t, n+1, len(a.nodes), "presized arena must not grow")

		arr := &Array[int]{arena: a, head: root}
		checkInvariants(t, arr)
	}

	a := newArena[int](0, 0, nil)
	require.Equal(t, nilNode, a.buildBalanced(nil))
}

func TestTreap_SiftDown(t *testing.T) {
	a := newArena[int](0, 0, nil)
	root, l, r := a.allocate(), a.allocate(), a.allocate()
	a.at(root).left, a.at(root).right = l, r
	a.at(root).priority = 1
	a.at(l).priority = 5
	a.at(r).priority = 9

	a.siftDown(root)
	require.Equal(t, uint64(9), a.nodes[root].priority)
	require.Equal(t, uint64(1), a.nodes[r].priority)
	require.Equal(t, uint64(5), a.nodes[l].priority)
}

func TestTreap_ReverseAndFree(t *testing.T) {
	a := newArena[int](0, 0, nil)
	root := buildSeq(a, 64)
	a.reverse(root)
	got := inorder(a, root)
	for i, v := range got {
		require.Equal(t, 63-i, v)
	}

	a.freeSubtree(root)
	require.Zero(t, a.live)
	require.Equal(t, 64, a.free)
	a.freeSubtree(nilNode)
}

func TestTreap_UpdateSizeIgnoresSentinel(t *testing.T) {
	a := newArena[int](0, 0, nil)
	a.updateSize(nilNode)
	require.Zero(t, a.sizeOf(nilNode))
}
