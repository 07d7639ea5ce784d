// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package merkle

import (
	"testing"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/stretchr/testify/require"
)

func buildRows(n, width int) [][]binaryfield.F32 {
	rows := make([][]binaryfield.F32, n)
	for i := range rows {
		row := make([]binaryfield.F32, width)
		for j := range row {
			row[j] = binaryfield.F32FromUint32(uint32(i*31 + j))
		}
		rows[i] = row
	}
	return rows
}

func TestBuildRejectsNonPowerOfTwo(t *testing.T) {
	_, err := Build(buildRows(3, 4))
	require.Error(t, err)
}

func TestOpenVerifyRoundTrip(t *testing.T) {
	rows := buildRows(16, 4)
	tree, err := Build(rows)
	require.NoError(t, err)

	query := []int{1, 3, 3, 7, 15}
	proof, err := tree.Open(query)
	require.NoError(t, err)

	claimed := make([]Digest, len(proof.Indices))
	for i, idx := range proof.Indices {
		claimed[i] = HashRow(rows[idx])
	}
	require.True(t, Verify(tree.Root(), proof, claimed))
}

func TestVerifyRejectsTamperedLeaf(t *testing.T) {
	rows := buildRows(8, 4)
	tree, err := Build(rows)
	require.NoError(t, err)

	proof, err := tree.Open([]int{2, 5})
	require.NoError(t, err)

	claimed := make([]Digest, len(proof.Indices))
	for i, idx := range proof.Indices {
		claimed[i] = HashRow(rows[idx])
	}
	// Flip a byte in one claimed leaf: the root must no longer match.
	claimed[0][0] ^= 0xFF
	require.False(t, Verify(tree.Root(), proof, claimed))
}

func TestOpenRejectsOutOfRangeIndex(t *testing.T) {
	rows := buildRows(4, 2)
	tree, err := Build(rows)
	require.NoError(t, err)
	_, err = tree.Open([]int{99})
	require.Error(t, err)
}
