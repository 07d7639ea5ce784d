// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package osst

import (
	"github.com/cloudflare/circl/group"
)

var challengeDST = []byte("lux-osst-challenge-v1")

// Verify checks a set of threshold contributions against group public
// key y, requiring at least threshold of them, for payload. It never
// panics: a malformed or insufficient contribution set simply returns
// false.
func Verify(y group.Element, threshold int, contributions []Contribution, payload []byte) bool {
	if y == nil || len(contributions) < threshold {
		return false
	}

	indices := make([]uint32, len(contributions))
	byIndex := make(map[uint32]Contribution, len(contributions))
	for i, c := range contributions {
		if c.U == nil || c.S == nil {
			return false
		}
		indices[i] = c.Index
		byIndex[c.Index] = c
	}
	if err := checkDistinctNonZero(indices); err != nil {
		return false
	}

	coeffs, err := ComputeLagrangeCoefficients(indices)
	if err != nil {
		return false
	}

	cbar := challengeScalar(y, payload, contributions)

	lhs := G.NewScalar()
	lhs.SetUint64(0)
	for _, c := range contributions {
		mu := coeffs[c.Index]
		term := G.NewScalar()
		term.Mul(mu, c.S)
		lhs.Add(lhs, term)
	}
	lhsElem := G.NewElement()
	lhsElem.MulGen(lhs)

	yc := G.NewElement()
	yc.Mul(y, cbar)

	var prodU group.Element
	first := true
	for _, c := range contributions {
		mu := coeffs[c.Index]
		term := G.NewElement()
		term.Mul(c.U, mu)
		if first {
			prodU = term
			first = false
			continue
		}
		next := G.NewElement()
		next.Add(prodU, term)
		prodU = next
	}
	if prodU == nil {
		return false
	}

	rhs := G.NewElement()
	rhs.Add(yc, prodU)

	return lhsElem.IsEqual(rhs)
}

// challengeScalar binds the challenge to the group key, payload, and
// every contribution's commitment point, in ascending index order so
// the same contribution set always yields the same challenge
// regardless of input ordering.
func challengeScalar(y group.Element, payload []byte, contributions []Contribution) group.Scalar {
	sorted := append([]Contribution(nil), contributions...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].Index > sorted[j].Index; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}

	yBytes, _ := y.MarshalBinary()
	input := append([]byte("osst"), yBytes...)
	input = append(input, payload...)
	for _, c := range sorted {
		ub, _ := c.U.MarshalBinary()
		input = append(input, ub...)
	}
	return G.HashToScalar(input, challengeDST)
}
