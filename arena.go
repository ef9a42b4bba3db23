package treearray

import (
	"math/rand/v2"
	"sync/atomic"
)

const (
	// defaultCapacity is the number of slots (sentinel included) an arena
	// starts with when no capacity is requested.
	defaultCapacity = 8
	// defaultGrowthFactor is applied to the required slot count whenever the
	// arena runs out of room.
	defaultGrowthFactor = 2.0
)

// arena owns the node slab of one or more Arrays. Nodes are addressed by
// index, slot 0 is the sentinel and freed slots are chained through
// node.next. Memory is never returned to the runtime node by node; the
// whole slab is replaced on growth, reset or when the last holder lets go.
// arena คือพื้นที่เก็บโหนดทั้งหมดของ Array (อาจถูกแชร์ระหว่างหลาย Array)
// โหนดถูกอ้างอิงด้วย index, ช่องที่ 0 คือ sentinel และช่องที่ถูกคืนจะถูกร้อยต่อกันใน free list
type arena[T any] struct {
	nodes        []node[T]    // len(nodes) คือความจุทั้งหมด
	live         int          // จำนวนโหนดที่ใช้งานอยู่
	free         int          // จำนวนช่องว่างใน free list
	freeHead     int          // หัวของ free list (nilNode = ว่าง)
	refs         atomic.Int32 // จำนวน Array ที่ถือ arena นี้อยู่
	rand         *rand.Rand   // ตัวสร้าง priority
	growthFactor float64
}

// newSource returns a PCG source seeded from the process-wide generator.
// The top-level functions of math/rand/v2 are safe for concurrent use, so
// arenas created on different goroutines never share generator state.
func newSource() rand.Source {
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}

// newArena creates an arena with room for capacity slots (sentinel included).
func newArena[T any](capacity int, growthFactor float64, src rand.Source) *arena[T] {
	if capacity < 1 {
		capacity = defaultCapacity
	}
	if growthFactor <= 1.0 {
		growthFactor = defaultGrowthFactor
	}
	if src == nil {
		src = newSource()
	}
	a := &arena[T]{
		nodes:        make([]node[T], capacity),
		rand:         rand.New(src),
		growthFactor: growthFactor,
	}
	a.refs.Store(1)
	return a
}

// used is the number of slots in the occupied range: live nodes, free
// slots and the sentinel.
func (a *arena[T]) used() int {
	return a.live + a.free + 1
}

// at returns the slot at index i. An index at or beyond capacity is a
// caller bug and panics through the slice bounds check.
func (a *arena[T]) at(i int) *node[T] {
	return &a.nodes[i]
}

// grow makes sure extra more slots fit behind the occupied range,
// reallocating the slab when they do not.
// grow ขยาย arena เมื่อพื้นที่ไม่พอสำหรับอีก extra ช่อง
func (a *arena[T]) grow(extra int) {
	need := a.used() + extra
	if need <= len(a.nodes) {
		return
	}
	newCap := int(float64(max(need, 1)) * a.growthFactor)
	if newCap < need {
		newCap = need
	}
	nodes := make([]node[T], newCap)
	copy(nodes, a.nodes[:a.used()])
	log.Tracef("arena grown from %d to %d slots (%d live, %d free)",
		len(a.nodes), newCap, a.live, a.free)
	a.nodes = nodes
}

// allocate hands out a fresh node with a new random priority, reusing the
// head of the free list when there is one. It never returns nilNode.
// allocate จัดสรรโหนดใหม่ โดยใช้ช่องจาก free list ก่อนถ้ามี
func (a *arena[T]) allocate() int {
	var i int
	if a.freeHead != nilNode {
		i = a.freeHead
		a.freeHead = a.nodes[i].next
		a.free--
	} else {
		a.grow(1)
		i = a.used()
	}
	a.nodes[i] = node[T]{
		used:     true,
		priority: a.rand.Uint64(),
		size:     1,
	}
	a.live++
	return i
}

// freeNode puts slot i at the head of the free list.
// freeNode คืนช่อง i กลับเข้า free list
func (a *arena[T]) freeNode(i int) {
	if i == nilNode {
		panic("treearray: cannot free the sentinel node")
	}
	if a.live == 0 {
		panic("treearray: cannot free a node from an empty arena")
	}
	n := a.at(i)
	n.reset()
	n.next = a.freeHead
	a.freeHead = i
	a.free++
	a.live--
}

// clone returns a private deep copy of the occupied range with the same
// capacity. The copy gets its own priority source and a single holder.
func (a *arena[T]) clone() *arena[T] {
	c := &arena[T]{
		nodes:        make([]node[T], len(a.nodes)),
		live:         a.live,
		free:         a.free,
		freeHead:     a.freeHead,
		rand:         rand.New(newSource()),
		growthFactor: a.growthFactor,
	}
	copy(c.nodes, a.nodes[:a.used()])
	c.refs.Store(1)
	return c
}

// reset drops every node. With keepCapacity the slab is kept and zeroed,
// otherwise it is replaced by a default-sized one.
func (a *arena[T]) reset(keepCapacity bool) {
	if keepCapacity {
		clear(a.nodes[:a.used()])
	} else {
		a.nodes = make([]node[T], defaultCapacity)
	}
	a.live, a.free, a.freeHead = 0, 0, nilNode
}

// retain registers one more holder.
func (a *arena[T]) retain() {
	a.refs.Add(1)
}

// unref drops one holder. The last holder out zeroes the occupied range so
// that values held by the nodes become unreachable.
func (a *arena[T]) unref() {
	if a.refs.Add(-1) == 0 {
		a.reset(true)
	}
}

// shared reports whether more than one Array currently holds the arena.
func (a *arena[T]) shared() bool {
	return a.refs.Load() > 1
}
