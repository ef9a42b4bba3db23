// Package treearray implements a generic, randomly indexable sequence backed
// by an implicit treap.
// Indexing, insertion and removal at any position run in expected
// O(log n), and cloning an Array is O(1): clones share their node arena
// until one of them is about to write, at which point it takes a private
// copy (copy-on-write).
//
// An Array is not safe for concurrent mutation. Distinct clones may be
// used from different goroutines.
package treearray

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

// Array is an ordered sequence of T with value semantics under Clone.
// The zero value for an Array is not ready to use; one of the constructors
// must be called.
// Array คือโครงสร้างหลัก เก็บ index ของ root (head) และอ้างอิงถึง arena ที่อาจถูกแชร์
type Array[T any] struct {
	arena *arena[T] // พื้นที่เก็บโหนด (แชร์ได้ด้วย reference count)
	head  int       // root ของ treap

	initialCapacity int         // ความจุเริ่มต้น (จำนวน slot รวม sentinel)
	growthFactor    float64     // สัดส่วนการขยาย arena
	source          rand.Source // แหล่งสุ่ม priority (ถ้ากำหนด)
}

// Option is a function that configures an Array.
// Option คือฟังก์ชันสำหรับกำหนดค่าของ Array
type Option[T any] func(*Array[T])

// WithCapacity preallocates room for n elements.
func WithCapacity[T any](n int) Option[T] {
	return func(a *Array[T]) {
		if n > 0 {
			a.initialCapacity = n + 1
		}
	}
}

// WithGrowthFactor sets the factor applied to the required size whenever
// the arena has to grow. Values not greater than 1 are ignored.
// WithGrowthFactor กำหนดสัดส่วนการขยาย arena (ค่าเริ่มต้นคือ 2)
func WithGrowthFactor[T any](factor float64) Option[T] {
	return func(a *Array[T]) {
		if factor > 1.0 {
			a.growthFactor = factor
		}
	}
}

// WithSeed makes node priorities of the initial arena deterministic.
// Arenas produced later by copy-on-write are seeded from the process-wide
// generator regardless.
func WithSeed[T any](seed1, seed2 uint64) Option[T] {
	return func(a *Array[T]) {
		a.source = rand.NewPCG(seed1, seed2)
	}
}

// New creates an empty Array.
// New สร้าง Array ว่าง
func New[T any](opts ...Option[T]) *Array[T] {
	a := &Array[T]{growthFactor: defaultGrowthFactor}
	for _, opt := range opts {
		opt(a)
	}
	a.arena = newArena[T](a.initialCapacity, a.growthFactor, a.source)
	a.source = nil
	return a
}

// FromSlice creates an Array holding a copy of values, built in linear time.
// FromSlice สร้าง Array จาก slice ด้วยการสร้าง treap แบบสมดุลในเวลาเชิงเส้น
func FromSlice[T any](values []T, opts ...Option[T]) *Array[T] {
	a := New(opts...)
	if len(values) == 0 {
		return a
	}
	a.arena.grow(len(values))
	a.head = a.arena.buildBalanced(values)
	return a
}

// FromSeq creates an Array from a sequence of unknown length by appending
// its values one by one.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) *Array[T] {
	a := New(opts...)
	for v := range seq {
		a.insertUnique(a.Len(), v)
	}
	return a
}

// Of creates an Array holding the given values.
func Of[T any](values ...T) *Array[T] {
	return FromSlice(values)
}

// Repeat creates an Array holding count copies of v.
func Repeat[T any](v T, count int, opts ...Option[T]) *Array[T] {
	if count < 0 {
		panic(fmt.Sprintf("treearray: negative count %d", count))
	}
	values := make([]T, count)
	for i := range values {
		values[i] = v
	}
	return FromSlice(values, opts...)
}

// checkIndex panics unless 0 <= i < n.
func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("treearray: %s index %d out of range [0:%d]", op, i, n))
	}
}

// checkPosition panics unless 0 <= i <= n.
func checkPosition(op string, i, n int) {
	if i < 0 || i > n {
		panic(fmt.Sprintf("treearray: %s position %d out of range [0:%d]", op, i, n))
	}
}

// checkRange panics unless 0 <= from <= to <= n.
func checkRange(op string, from, to, n int) {
	if from < 0 || to < from || to > n {
		panic(fmt.Sprintf("treearray: %s range [%d:%d] out of range [0:%d]", op, from, to, n))
	}
}

// ensureUnique gives the Array a private arena before it writes to it.
// Every mutating method calls it after validating its arguments and
// before touching any node.
// ensureUnique คัดลอก arena หากมีการแชร์อยู่ (copy-on-write)
func (a *Array[T]) ensureUnique() {
	if !a.arena.shared() {
		return
	}
	shared := a.arena
	a.arena = shared.clone()
	shared.unref()
	log.Debugf("copy-on-write: copied arena with %d live nodes (%d slots)",
		a.arena.live, len(a.arena.nodes))
}

// Len returns the number of elements.
// Len คืนค่าจำนวนสมาชิกทั้งหมด
func (a *Array[T]) Len() int {
	return a.arena.sizeOf(a.head)
}

// Cap returns the number of elements the current arena holds without growing.
// Cap คืนจำนวนสมาชิกที่ arena รองรับได้โดยไม่ต้องขยาย
func (a *Array[T]) Cap() int {
	return len(a.arena.nodes) - 1
}

// IsEmpty reports whether the Array has no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.head == nilNode
}

// Get returns the element at index i. It panics if i is out of range.
// Get คืนค่าสมาชิก ณ ตำแหน่ง i
func (a *Array[T]) Get(i int) T {
	checkIndex("Get", i, a.Len())
	return a.arena.nodes[a.arena.locate(a.head, i)].value
}

// Set replaces the element at index i. It panics if i is out of range.
// Set แทนที่ค่าของสมาชิก ณ ตำแหน่ง i (คัดลอก arena ก่อนถ้ามีการแชร์)
func (a *Array[T]) Set(i int, v T) {
	checkIndex("Set", i, a.Len())
	a.ensureUnique()
	a.arena.at(a.arena.locate(a.head, i)).value = v
}

// First returns the first element and true, or false if the Array is empty.
// First คืนค่าสมาชิกตัวแรก
func (a *Array[T]) First() (T, bool) {
	if a.IsEmpty() {
		var zero T
		return zero, false
	}
	return a.Get(0), true
}

// Last returns the last element and true, or false if the Array is empty.
// Last คืนค่าสมาชิกตัวสุดท้าย
func (a *Array[T]) Last() (T, bool) {
	if a.IsEmpty() {
		var zero T
		return zero, false
	}
	return a.Get(a.Len() - 1), true
}

// insertUnique inserts v at position i. The arena must already be private.
func (a *Array[T]) insertUnique(i int, v T) {
	n := a.arena.allocate()
	a.arena.at(n).value = v
	if a.head == nilNode {
		a.head = n
		return
	}
	left, right := a.arena.split(a.head, i)
	a.head = a.arena.merge(a.arena.merge(left, n), right)
}

// Insert inserts v so that it ends up at index i, shifting later elements
// up by one. i may equal Len().
// Insert เพิ่ม v ที่ตำแหน่ง i (i เท่ากับ Len() ได้)
func (a *Array[T]) Insert(i int, v T) {
	checkPosition("Insert", i, a.Len())
	a.ensureUnique()
	a.insertUnique(i, v)
}

// Append adds vs at the end, in order. A single value is inserted
// directly; several are built into a balanced run first like AppendSlice.
// Append เพิ่มสมาชิกต่อท้าย (หลายตัวจะสร้างเป็น treap ก่อนแล้วค่อยต่อ)
func (a *Array[T]) Append(vs ...T) {
	switch len(vs) {
	case 0:
	case 1:
		a.Insert(a.Len(), vs[0])
	default:
		a.InsertSlice(a.Len(), vs)
	}
}

// Prepend adds v at the front.
// Prepend เพิ่ม v ไว้หน้าสุด
func (a *Array[T]) Prepend(v T) {
	a.Insert(0, v)
}

// Remove deletes and returns the element at index i.
// Remove ลบและคืนค่าสมาชิก ณ ตำแหน่ง i
func (a *Array[T]) Remove(i int) T {
	checkIndex("Remove", i, a.Len())
	a.ensureUnique()

	before, rest := a.arena.split(a.head, i)
	removed, after := a.arena.split(rest, 1)
	v := a.arena.nodes[removed].value
	a.head = a.arena.merge(before, after)
	a.arena.freeNode(removed)
	return v
}

// RemoveFirst deletes and returns the first element. It panics on an empty
// Array.
// RemoveFirst ลบและคืนค่าสมาชิกตัวแรก
func (a *Array[T]) RemoveFirst() T {
	if a.IsEmpty() {
		panic("treearray: RemoveFirst on empty array")
	}
	return a.Remove(0)
}

// RemoveLast deletes and returns the last element. It panics on an empty
// Array.
// RemoveLast ลบและคืนค่าสมาชิกตัวสุดท้าย
func (a *Array[T]) RemoveLast() T {
	if a.IsEmpty() {
		panic("treearray: RemoveLast on empty array")
	}
	return a.Remove(a.Len() - 1)
}

// RemoveRange deletes the elements with indices in [from, to).
// RemoveRange ลบสมาชิกในช่วง [from, to)
func (a *Array[T]) RemoveRange(from, to int) {
	checkRange("RemoveRange", from, to, a.Len())
	if from == to {
		return
	}
	a.ensureUnique()

	left, rest := a.arena.split(a.head, from)
	dropped, right := a.arena.split(rest, to-from)
	a.head = a.arena.merge(left, right)
	a.arena.freeSubtree(dropped)
}

// splice inserts the treap rooted at sub at position i.
func (a *Array[T]) splice(i, sub int) {
	left, right := a.arena.split(a.head, i)
	a.head = a.arena.merge(a.arena.merge(left, sub), right)
}

// InsertSlice inserts values so that values[0] ends up at index i. The run
// is built as a balanced treap first and spliced in with two splits and two
// merges.
// InsertSlice แทรก slice ทั้งชุดที่ตำแหน่ง i โดยสร้างเป็น treap ก่อนแล้วค่อยต่อเข้าไป
func (a *Array[T]) InsertSlice(i int, values []T) {
	checkPosition("InsertSlice", i, a.Len())
	if len(values) == 0 {
		return
	}
	a.ensureUnique()
	a.arena.grow(len(values))
	a.splice(i, a.arena.buildBalanced(values))
}

// InsertArray inserts the elements of other at position i. other may be a
// itself or a clone of it; its elements are copied into a's arena either way.
func (a *Array[T]) InsertArray(i int, other *Array[T]) {
	checkPosition("InsertArray", i, a.Len())
	a.InsertSlice(i, other.ToSlice())
}

// AppendSlice adds values at the end.
// AppendSlice เพิ่ม slice ต่อท้าย
func (a *Array[T]) AppendSlice(values []T) {
	a.InsertSlice(a.Len(), values)
}

// AppendArray adds the elements of other at the end.
func (a *Array[T]) AppendArray(other *Array[T]) {
	a.InsertArray(a.Len(), other)
}

// ReplaceRange replaces the elements in [from, to) with values.
func (a *Array[T]) ReplaceRange(from, to int, values []T) {
	checkRange("ReplaceRange", from, to, a.Len())
	a.RemoveRange(from, to)
	a.InsertSlice(from, values)
}

// Swap exchanges the elements at indices i and j.
// Swap สลับค่าของสมาชิก ณ ตำแหน่ง i และ j (สลับค่า ไม่ได้ย้ายโหนด)
func (a *Array[T]) Swap(i, j int) {
	n := a.Len()
	checkIndex("Swap", i, n)
	checkIndex("Swap", j, n)
	if i == j {
		return
	}
	a.ensureUnique()
	ni := a.arena.at(a.arena.locate(a.head, i))
	nj := a.arena.at(a.arena.locate(a.head, j))
	ni.value, nj.value = nj.value, ni.value
}

// Reverse reverses the order of the elements in place in O(n).
// Reverse กลับลำดับสมาชิกทั้งหมด
func (a *Array[T]) Reverse() {
	if a.IsEmpty() {
		return
	}
	a.ensureUnique()
	a.arena.reverse(a.head)
}

// Reserve makes sure at least n elements fit without growing the arena.
// Reserve จองพื้นที่ให้รองรับสมาชิกอย่างน้อย n ตัวโดยไม่ต้องขยาย arena
func (a *Array[T]) Reserve(n int) {
	if n < 0 {
		panic(fmt.Sprintf("treearray: negative capacity %d", n))
	}
	a.ensureUnique()
	a.arena.grow(n + 1 - a.arena.used())
}

// Clear removes all elements. With keepCapacity the arena keeps its slab
// for reuse; otherwise it shrinks back to the default size.
// Clear ลบสมาชิกทั้งหมด
func (a *Array[T]) Clear(keepCapacity bool) {
	a.head = nilNode
	if a.arena.shared() {
		capacity := defaultCapacity
		if keepCapacity {
			capacity = len(a.arena.nodes)
		}
		growthFactor := a.arena.growthFactor
		a.arena.unref()
		a.arena = newArena[T](capacity, growthFactor, nil)
		return
	}
	a.arena.reset(keepCapacity)
}

// Clone returns an Array with the same contents in O(1). Both share one
// arena until either of them is modified.
// Clone คืนสำเนาของ Array ในเวลา O(1) โดยแชร์ arena จนกว่าจะมีการแก้ไข
func (a *Array[T]) Clone() *Array[T] {
	a.arena.retain()
	return &Array[T]{
		arena:        a.arena,
		head:         a.head,
		growthFactor: a.growthFactor,
	}
}

// Release gives up a's share of its arena. A remaining clone that becomes
// the sole holder can then write without copying. a is empty afterwards and
// may be reused.
// Release คืนส่วนแบ่ง arena ของ a แล้วทำให้ a ว่าง
func (a *Array[T]) Release() {
	growthFactor := a.arena.growthFactor
	a.arena.unref()
	a.arena = newArena[T](defaultCapacity, growthFactor, nil)
	a.head = nilNode
}

// Compact returns a copy of a rebuilt as a balanced treap in an arena sized
// exactly for its elements, dropping free slots left behind by removals.
func (a *Array[T]) Compact() *Array[T] {
	return FromSlice(a.ToSlice(),
		WithCapacity[T](a.Len()),
		WithGrowthFactor[T](a.arena.growthFactor),
	)
}

// ToSlice returns the elements in order as a new slice.
// ToSlice คืนสมาชิกทั้งหมดตามลำดับเป็น slice ใหม่
func (a *Array[T]) ToSlice() []T {
	out := make([]T, 0, a.Len())
	for v := range a.Values() {
		out = append(out, v)
	}
	return out
}
