package word64

import (
	"math/bits"
)

// Arithmetic on Word is two's complement and wraps modulo 1<<64. Native
// operators also work on the type; the methods exist so expressions can be
// chained and so the surface matches across signed and bit-pattern views.

// Neg returns the two's complement negation of w. It is the value that
// satisfies w.Add(w.Neg()) == Zero; negating the pattern 1<<63 returns the
// same pattern.
func (w Word) Neg() Word { return -w }

func (w Word) Add(n Word) Word { return w + n }
func (w Word) Sub(n Word) Word { return w - n }
func (w Word) Inc() Word       { return w + 1 }
func (w Word) Dec() Word       { return w - 1 }
func (w Word) Mul(n Word) Word { return w * n }

// Quo returns the quotient w/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division, like Go.
func (w Word) Quo(by Word) Word {
	if by == 0 {
		panic("word64: division by zero")
	}
	return w / by
}

// Rem returns the remainder of w%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (w Word) Rem(by Word) Word {
	if by == 0 {
		panic("word64: division by zero")
	}
	return w % by
}

// QuoRem returns the quotient and remainder of w/by in one call.
func (w Word) QuoRem(by Word) (q, r Word) {
	if by == 0 {
		panic("word64: division by zero")
	}
	return w / by, w % by
}

func (w Word) And(n Word) Word    { return w & n }
func (w Word) AndNot(n Word) Word { return w &^ n }
func (w Word) Or(n Word) Word     { return w | n }
func (w Word) Xor(n Word) Word    { return w ^ n }
func (w Word) Not() Word          { return ^w }

// Lsh shifts w left by n bits. Shifting by 64 or more produces Zero.
func (w Word) Lsh(n uint) Word { return w << n }

// Rsh shifts w right by n bits, filling with zeros. Shifting by 64 or more
// produces Zero.
func (w Word) Rsh(n uint) Word { return w >> n }

func (w Word) BitLen() int         { return bits.Len64(uint64(w)) }
func (w Word) LeadingZeros() uint  { return uint(bits.LeadingZeros64(uint64(w))) }
func (w Word) TrailingZeros() uint { return uint(bits.TrailingZeros64(uint64(w))) }
func (w Word) OnesCount() uint     { return uint(bits.OnesCount64(uint64(w))) }
