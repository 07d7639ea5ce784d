// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package osst

import (
	"fmt"

	"github.com/cloudflare/circl/group"
)

// ComputeLagrangeCoefficients returns, for each index in indices, the
// Lagrange coefficient at x=0: mu_j = prod_{k != j} i_k / (i_k - i_j),
// evaluated in the group's scalar field. indices must be pairwise
// distinct and non-zero.
func ComputeLagrangeCoefficients(indices []uint32) (map[uint32]group.Scalar, error) {
	if err := checkDistinctNonZero(indices); err != nil {
		return nil, err
	}

	out := make(map[uint32]group.Scalar, len(indices))
	for _, j := range indices {
		num := G.NewScalar()
		num.SetUint64(1)
		den := G.NewScalar()
		den.SetUint64(1)

		ij := G.NewScalar()
		ij.SetUint64(uint64(j))

		for _, k := range indices {
			if k == j {
				continue
			}
			ik := G.NewScalar()
			ik.SetUint64(uint64(k))

			num.Mul(num, ik)

			diff := G.NewScalar()
			diff.Sub(ik, ij)
			den.Mul(den, diff)
		}

		denInv := G.NewScalar()
		denInv.Inv(den)

		mu := G.NewScalar()
		mu.Mul(num, denInv)
		out[j] = mu
	}
	return out, nil
}

func checkDistinctNonZero(indices []uint32) error {
	seen := make(map[uint32]struct{}, len(indices))
	for _, i := range indices {
		if i == 0 {
			return fmt.Errorf("osst: index 0 is not a valid 1-based signer index")
		}
		if _, dup := seen[i]; dup {
			return fmt.Errorf("osst: duplicate index %d", i)
		}
		seen[i] = struct{}{}
	}
	return nil
}
