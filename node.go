package treearray

// nilNode is the reserved index of the sentinel slot. It never holds data
// and its size is always 0, so size lookups on missing children need no
// special case.
// nilNode คือ index ของ sentinel ที่จองไว้ ไม่เก็บข้อมูลและมี size เป็น 0 เสมอ
const nilNode = 0

// node คือหนึ่งช่อง (slot) ใน arena
type node[T any] struct {
	value    T
	used     bool   // false = ช่องว่างที่อยู่ใน free list
	priority uint64 // priority แบบสุ่มสำหรับคุณสมบัติ max-heap
	size     int    // จำนวนโหนดใน subtree รวมตัวเอง
	left     int
	right    int
	next     int // ช่องว่างถัดไปใน free list (ใช้เฉพาะตอนที่ used == false)
}

// reset clears the slot so it can sit on the free list without keeping
// the old value reachable for the garbage collector.
// reset เคลียร์ข้อมูลในช่องเพื่อให้ GC เก็บค่าเก่าคืนได้
func (n *node[T]) reset() {
	var zero T
	n.value = zero
	n.used = false
	n.priority = 0
	n.size = 0
	n.left, n.right = nilNode, nilNode
}
