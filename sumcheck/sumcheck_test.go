// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sumcheck

import (
	"testing"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/stretchr/testify/require"
)

func TestInduceSumcheckPolyConsistency(t *testing.T) {
	n := 3
	rows := [][]binaryfield.F32{
		{binaryfield.F32FromUint32(1), binaryfield.F32FromUint32(2)},
		{binaryfield.F32FromUint32(3), binaryfield.F32FromUint32(4)},
		{binaryfield.F32FromUint32(5), binaryfield.F32FromUint32(6)},
	}
	vChallenges := []binaryfield.F128{binaryfield.F128FromUint64(9)}
	queries := []int{1, 3, 6}
	alpha := binaryfield.F128FromUint64(17)

	basisPoly, enforcedSum := InduceSumcheckPoly(n, rows, vChallenges, queries, alpha)
	require.Len(t, basisPoly, 1<<uint(n))
	require.True(t, CheckConsistency(basisPoly, enforcedSum), "sum(basis_poly) must equal enforced_sum")
}

func TestRoundMessageValidity(t *testing.T) {
	s0 := binaryfield.F128FromUint64(5)
	s1 := binaryfield.F128FromUint64(7)
	valid := RoundMessage{S0: s0, S1: s1, S2: s0.Add(s1)}
	require.True(t, valid.Valid())

	invalid := RoundMessage{S0: s0, S1: s1, S2: binaryfield.F128FromUint64(123456)}
	require.False(t, invalid.Valid())
}

func TestVerifierInstanceFoldHalvesLength(t *testing.T) {
	poly := []binaryfield.F128{
		binaryfield.F128FromUint64(1),
		binaryfield.F128FromUint64(2),
		binaryfield.F128FromUint64(3),
		binaryfield.F128FromUint64(4),
	}
	sum := binaryfield.F128Zero()
	for _, v := range poly {
		sum = sum.Add(v)
	}
	inst := NewVerifierInstance(poly, sum)
	require.NoError(t, inst.Fold(binaryfield.F128FromUint64(42)))
	require.Len(t, inst.Poly(), 2)

	expectedSum := binaryfield.F128Zero()
	for _, v := range inst.Poly() {
		expectedSum = expectedSum.Add(v)
	}
	require.True(t, inst.Sum().Equal(expectedSum))
}

func TestVerifierInstanceGlueRequiresIntroduceNew(t *testing.T) {
	inst := NewVerifierInstance([]binaryfield.F128{binaryfield.F128FromUint64(1)}, binaryfield.F128FromUint64(1))
	require.Error(t, inst.Glue(binaryfield.F128FromUint64(2)))
}

func TestVerifierInstanceGlueCombinesSumsLinearly(t *testing.T) {
	a := []binaryfield.F128{binaryfield.F128FromUint64(1), binaryfield.F128FromUint64(2)}
	sumA := a[0].Add(a[1])
	inst := NewVerifierInstance(a, sumA)

	b := []binaryfield.F128{binaryfield.F128FromUint64(3), binaryfield.F128FromUint64(4)}
	sumB := b[0].Add(b[1])
	inst.IntroduceNew(b, sumB)

	beta := binaryfield.F128FromUint64(9)
	require.NoError(t, inst.Glue(beta))

	expectedSum := sumA.Add(beta.Mul(sumB))
	require.True(t, inst.Sum().Equal(expectedSum))

	recomputed := binaryfield.F128Zero()
	for _, v := range inst.Poly() {
		recomputed = recomputed.Add(v)
	}
	require.True(t, recomputed.Equal(inst.Sum()))
}
