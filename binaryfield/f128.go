// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binaryfield

import "github.com/holiman/uint256"

// F128 is an element of GF(2^128) reduced modulo
// x^128 + x^7 + x^2 + x + 1. This is the extension field: sumcheck
// challenges, Fiat-Shamir responses and the recursive Ligerito
// commitment chain all live in F128. It is backed by uint256.Int
// purely as a fixed-width 128-bit (really, up to 256-bit intermediate)
// XOR/shift register; none of its arithmetic carry semantics are used.
type F128 struct {
	v uint256.Int
}

// f128Modulus is x^7 + x^2 + x + 1, the low bits of x^128+x^7+x^2+x+1.
var f128Modulus = uint256.NewInt(0x87)

func F128Zero() F128 { return F128{} }

func F128One() F128 { return F128{v: *uint256.NewInt(1)} }

// F128FromUint64 places x in the low 64 bits, zero elsewhere.
func F128FromUint64(x uint64) F128 {
	return F128{v: *uint256.NewInt(x)}
}

// F128FromBytes16 interprets b (little-endian, exactly 16 bytes) as a
// field element. Panics if len(b) != 16: a malformed wire length is
// rejected by the caller before this is invoked.
func F128FromBytes16(b []byte) F128 {
	if len(b) != 16 {
		panic("binaryfield: F128FromBytes16 requires 16 bytes")
	}
	var padded [32]byte
	copy(padded[:16], b)
	var v uint256.Int
	v.SetBytes(reverse(padded[:]))
	return F128{v: v}
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// Bytes returns the little-endian 16-byte encoding of a.
func (a F128) Bytes() []byte {
	full := a.v.Bytes32() // big-endian, 32 bytes
	out := make([]byte, 16)
	for i := 0; i < 16; i++ {
		out[i] = full[31-i]
	}
	return out
}

func (a F128) Add(b F128) F128 {
	var out uint256.Int
	out.Xor(&a.v, &b.v)
	return F128{v: out}
}

func (a F128) IsZero() bool { return a.v.IsZero() }

func (a F128) One() F128 { return F128One() }

func (a F128) Equal(b F128) bool { return a.v.Eq(&b.v) }

func bitSet(x *uint256.Int, i uint) bool {
	var t uint256.Int
	t.Rsh(x, i)
	t.And(&t, uint256.NewInt(1))
	return !t.IsZero()
}

// Mul multiplies two field elements via carry-less polynomial
// multiplication into a 256-bit accumulator (safe: 127+127 < 255 bits)
// followed by reduction modulo f128Modulus.
func (a F128) Mul(b F128) F128 {
	var wide uint256.Int
	for i := uint(0); i < 128; i++ {
		if bitSet(&b.v, i) {
			var shifted uint256.Int
			shifted.Lsh(&a.v, i)
			wide.Xor(&wide, &shifted)
		}
	}
	return F128{v: reduceF128(wide)}
}

// reduceF128 folds bits 254..128 of a carry-less product back down
// using x^128 = x^7 + x^2 + x + 1.
func reduceF128(wide uint256.Int) uint256.Int {
	for i := 254; i >= 128; i-- {
		if bitSet(&wide, uint(i)) {
			var term uint256.Int
			term.Lsh(f128Modulus, uint(i-128))
			wide.Xor(&wide, &term)
		}
	}
	// clear anything above bit 127 left by construction (there should
	// be none once the loop above completes, but the mask guards
	// against a stray high bit from a future modulus change).
	var mask uint256.Int
	mask.Lsh(uint256.NewInt(1), 128)
	mask.Sub(&mask, uint256.NewInt(1))
	var out uint256.Int
	out.And(&wide, &mask)
	return out
}

// Inv returns a^-1 via a^(2^128-2). Panics on zero; see F16.Inv.
func (a F128) Inv() F128 {
	if a.IsZero() {
		panic(errInvertZero)
	}
	return invByFermat[F128](a, 128)
}
