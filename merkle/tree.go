// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package merkle implements component C4: duplex-hashed Merkle
// commitments over the rows of a codeword matrix, and inclusion
// proofs for a sampled set of query indices. Leaves and internal
// nodes are both hashed with BLAKE3, distinguished only by a domain
// label, matching the transcript package's hash family so C4 and C5
// share one collision-resistance assumption.
package merkle

import (
	"fmt"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/zeebo/blake3"
)

const (
	leafDomain = "ligerito/merkle/leaf"
	nodeDomain = "ligerito/merkle/node"
)

// Digest is a 32-byte BLAKE3 hash.
type Digest [32]byte

// Tree is a prover-side Merkle commitment: every level is retained so
// inclusion proofs for arbitrary query sets can be produced without
// recomputation.
type Tree struct {
	levels [][]Digest // levels[0] = leaves, levels[len-1] = {root}
}

// Root returns the commitment's root digest.
func (t *Tree) Root() Digest {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// HashRow hashes one row of base-field elements into a leaf digest.
func HashRow(row []binaryfield.F32) Digest {
	h := blake3.New()
	h.Write([]byte(leafDomain))
	for _, e := range row {
		b := e.Bytes()
		h.Write(b)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func hashNode(left, right Digest) Digest {
	h := blake3.New()
	h.Write([]byte(nodeDomain))
	h.Write(left[:])
	h.Write(right[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Build commits to a matrix of rows, each row a codeword over F32.
// The number of rows must be an exact power of two: the commitment
// covers exactly 2^d leaves, with no ad hoc padding.
func Build(rows [][]binaryfield.F32) (*Tree, error) {
	n := len(rows)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("merkle: row count %d is not a power of two", n)
	}
	leaves := make([]Digest, n)
	for i, row := range rows {
		leaves[i] = HashRow(row)
	}
	levels := [][]Digest{leaves}
	cur := leaves
	for len(cur) > 1 {
		next := make([]Digest, len(cur)/2)
		for i := range next {
			next[i] = hashNode(cur[2*i], cur[2*i+1])
		}
		levels = append(levels, next)
		cur = next
	}
	return &Tree{levels: levels}, nil
}

// Leaf returns the leaf digest at index i.
func (t *Tree) Leaf(i int) Digest {
	return t.levels[0][i]
}

// Depth returns log2 of the number of committed leaves.
func (t *Tree) Depth() int {
	return len(t.levels) - 1
}
