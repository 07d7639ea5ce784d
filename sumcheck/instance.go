// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sumcheck

import (
	"fmt"

	"github.com/luxfi/ligerito/binaryfield"
)

// VerifierInstance is the verifier's stateful folding object: it
// tracks a current basis polynomial and the running sum it must
// reduce to, across a sequence of Fold operations, and supports
// gluing in a second instance (from the next recursive round) with a
// batching challenge before continuing.
type VerifierInstance struct {
	poly    []binaryfield.F128
	sum     binaryfield.F128
	pending []binaryfield.F128
	pendSum binaryfield.F128
	pendingSet bool
}

func NewVerifierInstance(poly []binaryfield.F128, sum binaryfield.F128) *VerifierInstance {
	return &VerifierInstance{poly: poly, sum: sum}
}

func (v *VerifierInstance) Poly() []binaryfield.F128 { return v.poly }
func (v *VerifierInstance) Sum() binaryfield.F128     { return v.sum }

// Fold substitutes the round's folding challenge r for the current
// variable, halving the polynomial length and recomputing the sum
// from the folded entries.
func (v *VerifierInstance) Fold(r binaryfield.F128) error {
	if len(v.poly) < 2 {
		return fmt.Errorf("sumcheck: cannot fold a polynomial of length %d", len(v.poly))
	}
	half := len(v.poly) / 2
	next := make([]binaryfield.F128, half)
	for i := 0; i < half; i++ {
		diff := v.poly[i].Add(v.poly[i+half])
		next[i] = v.poly[i].Add(r.Mul(diff))
	}
	v.poly = next
	sum := binaryfield.F128Zero()
	for _, e := range next {
		sum = sum.Add(e)
	}
	v.sum = sum
	return nil
}

// IntroduceNew stages a second (polynomial, sum) pair — produced by
// InduceSumcheckPoly for the next recursive round — to be combined
// with the current instance on the next Glue call.
func (v *VerifierInstance) IntroduceNew(poly []binaryfield.F128, sum binaryfield.F128) {
	v.pending = poly
	v.pendSum = sum
	v.pendingSet = true
}

// Glue linearly combines the pending instance into the current one
// with coefficient beta: poly += beta*pending (entrywise, zero-padded
// to the longer length), sum += beta*pendingSum.
func (v *VerifierInstance) Glue(beta binaryfield.F128) error {
	if !v.pendingSet {
		return fmt.Errorf("sumcheck: glue called with no pending instance introduced")
	}
	n := len(v.poly)
	if len(v.pending) > n {
		n = len(v.pending)
	}
	combined := make([]binaryfield.F128, n)
	for i := 0; i < n; i++ {
		var a, b binaryfield.F128
		if i < len(v.poly) {
			a = v.poly[i]
		}
		if i < len(v.pending) {
			b = v.pending[i]
		}
		combined[i] = a.Add(beta.Mul(b))
	}
	v.poly = combined
	v.sum = v.sum.Add(beta.Mul(v.pendSum))
	v.pending = nil
	v.pendingSet = false
	return nil
}

// CheckConsistency verifies the sum(basis_poly) == enforced_sum
// invariant the verifier's debug path checks every round.
func CheckConsistency(basisPoly []binaryfield.F128, enforcedSum binaryfield.F128) bool {
	sum := binaryfield.F128Zero()
	for _, v := range basisPoly {
		sum = sum.Add(v)
	}
	return sum.Equal(enforcedSum)
}
