// Package bitgrid implements a packed one-bit-per-cell flag plane used as
// the visited set of grid explorations.
//
// Each row occupies stride = ceil(width/64) 64-bit words; the bit for (x, y)
// lives in word y*stride + x/64 under mask 1<<(x%64). Membership tests and
// updates are O(1) and a row's flags stay contiguous in memory.
package bitgrid

const wordBits = 64

// Bits is a width×height plane of flags, all initially clear.
type Bits struct {
	width, height int
	stride        int
	words         []uint64
}

// New allocates a cleared plane. Width and height must be positive.
// Memory: height×ceil(width/64) words.
func New(width, height int) *Bits {
	stride := (width + wordBits - 1) / wordBits
	return &Bits{
		width:  width,
		height: height,
		stride: stride,
		words:  make([]uint64, stride*height),
	}
}

// locate returns the word index and mask addressing (x, y).
func (b *Bits) locate(x, y int) (int, uint64) {
	return y*b.stride + x/wordBits, uint64(1) << (uint(x) % wordBits)
}

// Test reports whether (x, y) is set.
func (b *Bits) Test(x, y int) bool {
	w, m := b.locate(x, y)
	return b.words[w]&m != 0
}

// Set raises the flag at (x, y).
func (b *Bits) Set(x, y int) {
	w, m := b.locate(x, y)
	b.words[w] |= m
}

// TestAndSet raises the flag at (x, y) and reports whether it was clear
// before the call.
func (b *Bits) TestAndSet(x, y int) bool {
	w, m := b.locate(x, y)
	if b.words[w]&m != 0 {
		return false
	}
	b.words[w] |= m

	return true
}
