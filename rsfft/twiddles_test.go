// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsfft

import (
	"testing"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/stretchr/testify/require"
)

func TestEvalSkAtVksDiagonalMatchesDefinition(t *testing.T) {
	basis := StandardBasisF32(4)
	sk := EvalSkAtVks(basis)
	// sk[0][j] = s_0(v_j) = v_j by definition.
	for j, v := range basis {
		require.True(t, sk[0][j].Equal(v))
	}
}

func TestComputeTwiddlesAtZeroShiftIsZero(t *testing.T) {
	basis := StandardBasisF32(4)
	sk := EvalSkAtVks(basis)
	tw := ComputeTwiddles(basis, binaryfield.F32Zero(), sk)
	for k, v := range tw {
		require.True(t, v.IsZero(), "twiddle at level %d must vanish for zero shift", k)
	}
}

func TestComputePisFirstEntryIsOne(t *testing.T) {
	basis := StandardBasisF32(3)
	sk := EvalSkAtVks(basis)
	pis := ComputePis(sk)
	require.True(t, pis[0].Equal(binaryfield.F32One()))
}

func TestShortFromLongTwiddlesLength(t *testing.T) {
	long := make([]binaryfield.F32, 1<<6)
	for i := range long {
		long[i] = binaryfield.F32FromUint32(uint32(i))
	}
	short := ShortFromLongTwiddles(long, 6, 3)
	require.Len(t, short, 3)
}
