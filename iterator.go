package treearray

import "iter"

// Iterator walks the elements of an Array in order using an explicit stack
// of node indices, so deep trees never grow the call stack.
// The typical use is:
//
//	it := a.NewIterator()
//	for it.Next() {
//		i, v := it.Index(), it.Value()
//		// ...
//	}
//
// An Iterator does not hold a share of the arena. Modifying the Array while
// iterating over it is not supported.
// Iterator คือโครงสร้างที่ใช้วนลูปผ่านสมาชิกของ Array ตามลำดับ โดยใช้ stack แทน recursion
type Iterator[T any] struct {
	arena    *arena[T]
	root     int   // โหนดเริ่มต้นของการเดิน
	total    int   // จำนวนสมาชิกใต้ root
	stack    []int // ยอดของ stack คือโหนดปัจจุบัน
	index    int   // อันดับของโหนดปัจจุบัน
	pending  bool  // true = ยอด stack ยังไม่ถูกคืนผ่าน Next()
	backward bool
}

// IteratorOption configures an Iterator.
type IteratorOption[T any] func(*Iterator[T])

// WithBackward makes the iterator walk from the last element to the first.
func WithBackward[T any]() IteratorOption[T] {
	return func(it *Iterator[T]) {
		it.backward = true
	}
}

// NewIterator creates an iterator positioned before the first element.
// A call to Next() is required to advance to the first element.
// NewIterator สร้าง Iterator ที่ชี้ไปยังตำแหน่งก่อนรายการแรก ต้องเรียก Next() ก่อนใช้งาน
func (a *Array[T]) NewIterator(opts ...IteratorOption[T]) *Iterator[T] {
	return newIterator(a.arena, a.head, opts...)
}

// newIterator creates an iterator over the subtree rooted at root, which
// need not be the head of an Array.
func newIterator[T any](ar *arena[T], root int, opts ...IteratorOption[T]) *Iterator[T] {
	it := &Iterator[T]{
		arena: ar,
		root:  root,
		total: ar.sizeOf(root),
	}
	for _, opt := range opts {
		opt(it)
	}
	it.Reset()
	return it
}

// push descends from i towards the first element in walking order,
// pushing every node on the way.
func (it *Iterator[T]) push(i int) {
	for i != nilNode {
		it.stack = append(it.stack, i)
		n := it.arena.at(i)
		if it.backward {
			i = n.right
		} else {
			i = n.left
		}
	}
}

// Reset moves the iterator back to its initial state, before the first
// element.
// Reset ย้าย Iterator กลับไปยังสถานะเริ่มต้น
func (it *Iterator[T]) Reset() {
	it.stack = it.stack[:0]
	it.push(it.root)
	it.pending = true
	if it.backward {
		it.index = it.total - 1
	} else {
		it.index = 0
	}
}

// Next moves the iterator to the next element and reports whether there is
// one. Once it returns false it keeps returning false.
// Next เลื่อน Iterator ไปยังรายการถัดไป คืนค่า false เมื่อไม่มีรายการเหลือ
func (it *Iterator[T]) Next() bool {
	if it.pending {
		it.pending = false
		return len(it.stack) > 0
	}
	if len(it.stack) == 0 {
		return false
	}
	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	n := it.arena.at(top)
	if it.backward {
		it.push(n.left)
		it.index--
	} else {
		it.push(n.right)
		it.index++
	}
	return len(it.stack) > 0
}

// Value returns the element at the current position. It should only be
// called after Next() has returned true.
// Value คืนค่าของสมาชิก ณ ตำแหน่งปัจจุบัน
func (it *Iterator[T]) Value() T {
	return it.arena.nodes[it.stack[len(it.stack)-1]].value
}

// Index returns the position of the current element. It should only be
// called after Next() has returned true.
// Index คืนอันดับของสมาชิก ณ ตำแหน่งปัจจุบัน
func (it *Iterator[T]) Index() int {
	return it.index
}

// Seek positions the iterator so that the following Next() yields the
// element at index i. An out-of-range i exhausts the iterator.
// Seek เลื่อน Iterator เพื่อให้ Next() ครั้งถัดไปคืนสมาชิก ณ ตำแหน่ง i
func (it *Iterator[T]) Seek(i int) {
	it.stack = it.stack[:0]
	it.pending = true
	it.index = i
	if i < 0 || i >= it.total {
		return
	}
	// Keep the ancestors that come after the target in walking order;
	// they are exactly the ones Next() would still have to visit.
	cur, rank := it.root, i
	for cur != nilNode {
		n := it.arena.at(cur)
		leftSize := it.arena.sizeOf(n.left)
		switch {
		case rank < leftSize:
			if !it.backward {
				it.stack = append(it.stack, cur)
			}
			cur = n.left
		case rank > leftSize:
			if it.backward {
				it.stack = append(it.stack, cur)
			}
			rank -= leftSize + 1
			cur = n.right
		default:
			it.stack = append(it.stack, cur)
			return
		}
	}
}

// Clone creates an independent copy of the iterator at its current position.
// Clone สร้างสำเนาของ Iterator ที่ตำแหน่งเดียวกัน
func (it *Iterator[T]) Clone() *Iterator[T] {
	c := *it
	c.stack = append([]int(nil), it.stack...)
	return &c
}

// Range calls f for every element in order, stopping early if f returns
// false.
// Range วนลูปตามลำดับและหยุดเมื่อ f คืนค่า false
func (a *Array[T]) Range(f func(i int, v T) bool) {
	it := a.NewIterator()
	for it.Next() {
		if !f(it.Index(), it.Value()) {
			return
		}
	}
}

// All returns an iterator over index-value pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		a.Range(yield)
	}
}

// Values returns an iterator over the elements in order.
// Values คืน iter.Seq ของค่าสมาชิกตามลำดับ
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := a.NewIterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from last to first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := a.NewIterator(WithBackward[T]())
		for it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}
