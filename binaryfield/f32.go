// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binaryfield

// F32 is an element of GF(2^32) reduced modulo x^32 + x^7 + x^3 + x^2 + 1.
// This is the base field: Reed-Solomon codewords and the rows opened
// during a Ligerito query are F32 elements.
type F32 uint32

// f32Modulus is x^7 + x^3 + x^2 + 1, the low bits of x^32+x^7+x^3+x^2+1.
const f32Modulus = uint64(0x8D)

func F32Zero() F32 { return F32(0) }
func F32One() F32  { return F32(1) }

func F32FromUint32(x uint32) F32 { return F32(x) }

func (a F32) Uint32() uint32 { return uint32(a) }

func (a F32) Add(b F32) F32 {
	return F32(uint32(a) ^ uint32(b))
}

func (a F32) IsZero() bool { return a == 0 }

func (a F32) One() F32 { return F32One() }

func (a F32) Equal(b F32) bool { return a == b }

func (a F32) Bytes() []byte {
	return []byte{byte(a), byte(a >> 8), byte(a >> 16), byte(a >> 24)}
}

func (a F32) Mul(b F32) F32 {
	var wide uint64
	av, bv := uint64(a), uint64(b)
	for i := 0; i < 32; i++ {
		if (bv>>uint(i))&1 == 1 {
			wide ^= av << uint(i)
		}
	}
	return F32(reduceF32(wide))
}

// reduceF32 folds bits 62..32 of a carry-less product back down using
// x^32 = x^7 + x^3 + x^2 + 1.
func reduceF32(wide uint64) uint32 {
	for i := 62; i >= 32; i-- {
		if (wide>>uint(i))&1 == 1 {
			wide ^= f32Modulus << uint(i-32)
		}
	}
	return uint32(wide)
}

// Inv returns a^-1 via a^(2^32-2). Panics on zero; see F16.Inv.
func (a F32) Inv() F32 {
	if a.IsZero() {
		panic(errInvertZero)
	}
	return invByFermat[F32](a, 32)
}
