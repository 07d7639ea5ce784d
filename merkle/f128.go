// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package merkle

import (
	"fmt"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/zeebo/blake3"
)

// HashRowF128 hashes one row of extension-field elements into a leaf
// digest, mirroring HashRow. Recursive commitments (every round after
// the first) commit to F128 rows.
func HashRowF128(row []binaryfield.F128) Digest {
	h := blake3.New()
	h.Write([]byte(leafDomain))
	for _, e := range row {
		h.Write(e.Bytes())
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// BuildF128 commits to a matrix of F128 rows, mirroring Build.
func BuildF128(rows [][]binaryfield.F128) (*Tree, error) {
	n := len(rows)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("merkle: row count %d is not a power of two", n)
	}
	leaves := make([]Digest, n)
	for i, row := range rows {
		leaves[i] = HashRowF128(row)
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
