// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package merkle

import (
	"fmt"
	"sort"
)

// Proof is the inclusion witness for a set of queried leaf indices:
// for every queried index, in ascending index order, the sibling
// digest at every level from the leaf up to the root.
type Proof struct {
	Indices   []int
	Siblings  [][]Digest // Siblings[i] has Depth entries, for Indices[i]
	NumLeaves int
}

// Open produces an inclusion proof for the given (unordered, possibly
// duplicated) set of query indices. Indices are sorted and deduplicated
// before building the proof.
func (t *Tree) Open(indices []int) (*Proof, error) {
	depth := t.Depth()
	n := 1 << uint(depth)

	dedup := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("merkle: query index %d out of range [0,%d)", i, n)
		}
		dedup[i] = struct{}{}
	}
	sorted := make([]int, 0, len(dedup))
	for i := range dedup {
		sorted = append(sorted, i)
	}
	sort.Ints(sorted)

	proof := &Proof{Indices: sorted, NumLeaves: n, Siblings: make([][]Digest, len(sorted))}
	for qi, idx := range sorted {
		path := make([]Digest, depth)
		cur := idx
		for level := 0; level < depth; level++ {
			sibling := cur ^ 1
			path[level] = t.levels[level][sibling]
			cur >>= 1
		}
		proof.Siblings[qi] = path
	}
	return proof, nil
}

// Verify reconstructs the root from claimedLeaves (keyed by the same
// indices recorded in the proof, in the same order) and compares it
// to root. claimedLeaves must have the same length and order as
// proof.Indices.
func Verify(root Digest, proof *Proof, claimedLeaves []Digest) bool {
	if proof == nil || len(claimedLeaves) != len(proof.Indices) || len(proof.Siblings) != len(proof.Indices) {
		return false
	}
	depth := 0
	if len(proof.Siblings) > 0 {
		depth = len(proof.Siblings[0])
	}
	for qi, idx := range proof.Indices {
		if len(proof.Siblings[qi]) != depth {
			return false
		}
		cur := claimedLeaves[qi]
		pos := idx
		for level := 0; level < depth; level++ {
			sib := proof.Siblings[qi][level]
			if pos&1 == 0 {
				cur = hashNode(cur, sib)
			} else {
				cur = hashNode(sib, cur)
			}
			pos >>= 1
		}
		if cur != root {
			return false
		}
	}
	return true
}
