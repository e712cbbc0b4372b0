package ordset

import (
	"math/bits"
)

// NewBitArray with room for at least size bits. It grows on demand in Up.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a bit set indexed from 0. The zero value is an empty set.
type BitArray struct {
	bits []uint
}

// Len is the number of bits currently addressable without growing.
func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

// Get bit i. Bits past Len are 0.
func (u BitArray) Get(i int) bool {
	if w := i / bits.UintSize; w < len(u.bits) {
		return (u.bits[w]>>(i%bits.UintSize))&1 == 1
	}
	return false
}

// Up sets bit i, growing the array if needed.
func (u *BitArray) Up(i int) {
	w := i / bits.UintSize
	if w >= len(u.bits) {
		u.bits = append(u.bits, make([]uint, w-len(u.bits)+1)...)
	}
	u.bits[w] |= 1 << (i % bits.UintSize)
}

// Down clears bit i.
func (u BitArray) Down(i int) {
	if w := i / bits.UintSize; w < len(u.bits) {
		u.bits[w] &^= 1 << (i % bits.UintSize)
	}
}

// Count of set bits.
func (u BitArray) Count() (n int) {
	for _, w := range u.bits {
		n += bits.OnesCount(w)
	}
	return
}

// Reset clears every bit without releasing memory.
func (u BitArray) Reset() {
	clear(u.bits)
}
