// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package merkle

import (
	"testing"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/stretchr/testify/require"
)

func buildF128Rows(n int) [][]binaryfield.F128 {
	rows := make([][]binaryfield.F128, n)
	for i := range rows {
		rows[i] = []binaryfield.F128{binaryfield.F128FromUint64(uint64(i))}
	}
	return rows
}

func TestBuildF128OpenVerifyRoundTrip(t *testing.T) {
	rows := buildF128Rows(8)
	tree, err := BuildF128(rows)
	require.NoError(t, err)

	proof, err := tree.Open([]int{0, 3, 7})
	require.NoError(t, err)

	leaves := make([]Digest, len(proof.Indices))
	for i, idx := range proof.Indices {
		leaves[i] = HashRowF128(rows[idx])
	}
	require.True(t, Verify(tree.Root(), proof, leaves))
}

func TestBuildF128RejectsNonPowerOfTwo(t *testing.T) {
	_, err := BuildF128(buildF128Rows(5))
	require.Error(t, err)
}
