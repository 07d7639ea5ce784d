// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binaryfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestF16AddIsXorInvolution(t *testing.T) {
	a := F16FromUint16(0x1234)
	b := F16FromUint16(0x5a5a)
	require.Equal(t, a, a.Add(b).Add(b), "double add of the same element must be the identity")
	require.True(t, a.Add(a).IsZero(), "a + a must be zero in characteristic 2")
}

func TestF16MulInverse(t *testing.T) {
	tests := []F16{F16FromUint16(1), F16FromUint16(2), F16FromUint16(0xBEEF), F16FromUint16(0xFFFF)}
	for _, a := range tests {
		inv := a.Inv()
		require.True(t, a.Mul(inv).Equal(F16One()), "a * a^-1 must equal one")
	}
}

func TestF16InvertZeroPanics(t *testing.T) {
	require.Panics(t, func() { F16Zero().Inv() })
}

func TestF32MulDistributesOverAdd(t *testing.T) {
	a := F32FromUint32(0xDEADBEEF)
	b := F32FromUint32(0xCAFEBABE)
	c := F32FromUint32(0x01234567)

	lhs := a.Mul(b.Add(c))
	rhs := a.Mul(b).Add(a.Mul(c))
	require.True(t, lhs.Equal(rhs), "multiplication must distribute over addition")
}

func TestF32MulInverse(t *testing.T) {
	a := F32FromUint32(0x0BADF00D)
	inv := a.Inv()
	require.True(t, a.Mul(inv).Equal(F32One()))
}

func TestF128AddXorRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	for i := range buf {
		buf[i] = byte(i*7 + 3)
	}
	a := F128FromBytes16(buf)
	require.Equal(t, buf, a.Bytes())
}

func TestF128MulInverse(t *testing.T) {
	a := F128FromUint64(0x0123456789ABCDEF)
	inv := a.Inv()
	require.True(t, a.Mul(inv).Equal(F128One()))
}

func TestF128MulDistributesOverAdd(t *testing.T) {
	a := F128FromUint64(0xAAAAAAAABBBBBBBB)
	b := F128FromUint64(0xCCCCCCCCDDDDDDDD)
	c := F128FromUint64(0x1111111122222222)

	lhs := a.Mul(b.Add(c))
	rhs := a.Mul(b).Add(a.Mul(c))
	require.True(t, lhs.Equal(rhs))
}

// TestEmbedF32IsAdditiveHomomorphism exercises the field-embedding
// testable property: EmbedF32 commutes with addition.
func TestEmbedF32IsAdditiveHomomorphism(t *testing.T) {
	a := F32FromUint32(0x89ABCDEF)
	b := F32FromUint32(0x01234567)

	sumThenEmbed := EmbedF32(a.Add(b))
	embedThenSum := EmbedF32(a).Add(EmbedF32(b))
	require.True(t, sumThenEmbed.Equal(embedThenSum), "embedding must commute with addition")
}

func TestF128ZeroValueIsAdditiveIdentity(t *testing.T) {
	var zero F128
	require.True(t, zero.IsZero())
	a := F128FromUint64(42)
	require.True(t, a.Add(zero).Equal(a))
}
