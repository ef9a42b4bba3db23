package treearray

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/davecgh/go-spew/spew"
)

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of elements at the same index.
func EqualFunc[T, U any](a *Array[T], b *Array[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.NewIterator(), b.NewIterator()
	for ia.Next() && ib.Next() {
		if !eq(ia.Value(), ib.Value()) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold equal elements in the same order.
// Equal ตรวจสอบว่า a และ b มีสมาชิกเท่ากันทุกตำแหน่ง
func Equal[T comparable](a, b *Array[T]) bool {
	if a.arena == b.arena && a.head == b.head {
		return true
	}
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualSlice reports whether a holds the same elements as s, in order.
func EqualSlice[T comparable](a *Array[T], s []T) bool {
	if a.Len() != len(s) {
		return false
	}
	it := a.NewIterator()
	for it.Next() {
		if it.Value() != s[it.Index()] {
			return false
		}
	}
	return true
}

// Index returns the index of the first occurrence of v in a, or -1.
func Index[T comparable](a *Array[T], v T) int {
	it := a.NewIterator()
	for it.Next() {
		if it.Value() == v {
			return it.Index()
		}
	}
	return -1
}

// Contains reports whether v is present in a.
func Contains[T comparable](a *Array[T], v T) bool {
	return Index(a, v) >= 0
}

// Hash returns a position-sensitive xxhash of the elements. Each element is
// hashed with elem and mixed with its 1-based position before being fed to
// the digest, so arrays that are Equal hash the same and permutations of
// one another usually do not.
// Hash คำนวณ hash โดยผสมค่าของสมาชิกกับตำแหน่ง (เริ่มที่ 1)
func (a *Array[T]) Hash(elem func(T) uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	it := a.NewIterator()
	for it.Next() {
		binary.LittleEndian.PutUint64(buf[:], uint64(it.Index()+1)^elem(it.Value()))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// HashString is an element hasher for Array[string].Hash.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes is an element hasher for Array[[]byte].Hash.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// String renders the elements as "[a, b, c]". It is meant for debugging and
// is not a parseable format.
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	it := a.NewIterator()
	for it.Next() {
		if it.Index() > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, it.Value())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Dump returns a detailed, multi-line rendering of the elements in order.
// Dump คืนรายละเอียดของสมาชิกทั้งหมดผ่าน go-spew
func (a *Array[T]) Dump() string {
	return spew.Sdump(a.ToSlice())
}

// GoString implements fmt.GoStringer so that %#v prints the Dump form
// instead of the arena internals.
func (a *Array[T]) GoString() string {
	return a.Dump()
}
