package treearray

// The treap engine. Every function here works on node indices of a single
// arena and knows nothing about ownership; callers make the arena private
// before calling anything that mutates.
// ส่วนนี้คืออัลกอริทึมของ treap (merge, split, locate) ทำงานผ่าน index ใน arena

// sizeOf returns the subtree size rooted at i (0 for the sentinel).
func (a *arena[T]) sizeOf(i int) int {
	return a.nodes[i].size
}

// updateSize recomputes the size of i from its children. It has to run on
// every node whose child links changed, innermost first.
func (a *arena[T]) updateSize(i int) {
	if i == nilNode {
		return
	}
	n := a.at(i)
	n.size = a.nodes[n.left].size + a.nodes[n.right].size + 1
}

// merge joins two treaps where every element of l comes before every
// element of r. The root with the higher priority wins; on a tie the right
// root wins.
// merge รวม treap สองต้น โดยสมาชิกทั้งหมดของ l อยู่ก่อน r
func (a *arena[T]) merge(l, r int) int {
	if l == nilNode || r == nilNode {
		// At most one side is non-zero and the sentinel is 0.
		return l + r
	}
	if a.nodes[l].priority > a.nodes[r].priority {
		right := a.merge(a.nodes[l].right, r)
		a.nodes[l].right = right
		a.updateSize(l)
		return l
	}
	left := a.merge(l, a.nodes[r].left)
	a.nodes[r].left = left
	a.updateSize(r)
	return r
}

// split cuts the treap rooted at i into the first k elements and the rest.
// split แบ่ง treap ออกเป็น k สมาชิกแรก และส่วนที่เหลือ
func (a *arena[T]) split(i, k int) (left, right int) {
	if i == nilNode {
		return nilNode, nilNode
	}
	leftSize := a.sizeOf(a.nodes[i].left)
	if leftSize < k {
		l, r := a.split(a.nodes[i].right, k-leftSize-1)
		a.nodes[i].right = l
		left, right = i, r
	} else {
		l, r := a.split(a.nodes[i].left, k)
		a.nodes[i].left = r
		left, right = l, i
	}
	a.updateSize(left)
	a.updateSize(right)
	return left, right
}

// locate walks down to the node holding the element at rank (0-based).
// It returns nilNode when rank is out of range.
// locate ค้นหาโหนดตามอันดับ (order statistics)
func (a *arena[T]) locate(i, rank int) int {
	for i != nilNode {
		n := a.at(i)
		leftSize := a.sizeOf(n.left)
		switch {
		case rank < leftSize:
			i = n.left
		case rank > leftSize:
			rank -= leftSize + 1
			i = n.right
		default:
			return i
		}
	}
	return nilNode
}

// buildBalanced builds a treap holding values in order in O(len(values)).
// Each midpoint is allocated after its halves and its priority is sifted
// down until the heap property holds again. Swapping priorities rather
// than nodes keeps the shape, so sizes stay valid during the sift.
// buildBalanced สร้าง treap จาก slice ในเวลาเชิงเส้น
func (a *arena[T]) buildBalanced(values []T) int {
	if len(values) == 0 {
		return nilNode
	}
	mid := len(values) / 2
	left := a.buildBalanced(values[:mid])
	right := a.buildBalanced(values[mid+1:])

	i := a.allocate()
	n := a.at(i)
	n.value = values[mid]
	n.left, n.right = left, right
	a.updateSize(i)
	a.siftDown(i)
	return i
}

// siftDown moves the priority of i down its subtree until it is not lower
// than either child's.
func (a *arena[T]) siftDown(i int) {
	for {
		n := a.at(i)
		top := i
		if n.left != nilNode && a.nodes[n.left].priority > a.nodes[top].priority {
			top = n.left
		}
		if n.right != nilNode && a.nodes[n.right].priority > a.nodes[top].priority {
			top = n.right
		}
		if top == i {
			return
		}
		a.nodes[i].priority, a.nodes[top].priority = a.nodes[top].priority, a.nodes[i].priority
		i = top
	}
}

// reverse mirrors the subtree rooted at i by swapping the children of
// every node. Sizes are unaffected.
func (a *arena[T]) reverse(i int) {
	if i == nilNode {
		return
	}
	n := a.at(i)
	n.left, n.right = n.right, n.left
	a.reverse(n.left)
	a.reverse(n.right)
}

// freeSubtree returns every node of the subtree rooted at i to the free list.
func (a *arena[T]) freeSubtree(i int) {
	if i == nilNode {
		return
	}
	n := a.at(i)
	left, right := n.left, n.right
	a.freeSubtree(left)
	a.freeSubtree(right)
	a.freeNode(i)
}
