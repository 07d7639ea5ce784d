// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sumcheck implements component C6: inducing the sumcheck
// polynomial from a batch of opened rows and partial-evaluation
// challenges, and the verifier's stateful folding instance that
// threads a running polynomial and sum across recursive rounds.
package sumcheck

import "github.com/luxfi/ligerito/binaryfield"

// InduceSumcheckPoly folds a batch of opened, alpha-batched rows into
// a length-2^n basis polynomial and the scalar sum it must reduce to.
// For each query q (with its opened row), d_q is the row's multilinear
// evaluation at vChallenges; the result is placed at index q mod 2^n
// and scaled by alpha^q, mirroring how queries from a larger block
// fold onto the smaller round-n domain.
func InduceSumcheckPoly(n int, openedRows [][]binaryfield.F32, vChallenges []binaryfield.F128, sortedQueries []int, alpha binaryfield.F128) ([]binaryfield.F128, binaryfield.F128) {
	size := 1 << uint(n)
	basisPoly := make([]binaryfield.F128, size)
	for qi, q := range sortedQueries {
		d := mleEval(openedRows[qi], vChallenges)
		idx := q % size
		scale := powF128(alpha, q)
		basisPoly[idx] = basisPoly[idx].Add(d.Mul(scale))
	}
	enforcedSum := binaryfield.F128Zero()
	for _, v := range basisPoly {
		enforcedSum = enforcedSum.Add(v)
	}
	return basisPoly, enforcedSum
}

// InduceSumcheckPolyF128 is InduceSumcheckPoly's extension-field twin:
// every recursive round after the pre-step commits and opens rows
// that already live in F128 (they are RS-encoded F128 message rows),
// so no embedding step is needed before folding.
func InduceSumcheckPolyF128(n int, openedRows [][]binaryfield.F128, vChallenges []binaryfield.F128, sortedQueries []int, alpha binaryfield.F128) ([]binaryfield.F128, binaryfield.F128) {
	size := 1 << uint(n)
	basisPoly := make([]binaryfield.F128, size)
	for qi, q := range sortedQueries {
		d := mleEvalF128(openedRows[qi], vChallenges)
		idx := q % size
		scale := powF128(alpha, q)
		basisPoly[idx] = basisPoly[idx].Add(d.Mul(scale))
	}
	enforcedSum := binaryfield.F128Zero()
	for _, v := range basisPoly {
		enforcedSum = enforcedSum.Add(v)
	}
	return basisPoly, enforcedSum
}

func mleEvalF128(row []binaryfield.F128, point []binaryfield.F128) binaryfield.F128 {
	cur := make([]binaryfield.F128, len(row))
	copy(cur, row)
	for _, r := range point {
		half := len(cur) / 2
		next := make([]binaryfield.F128, half)
		for i := 0; i < half; i++ {
			diff := cur[i].Add(cur[i+half])
			next[i] = cur[i].Add(r.Mul(diff))
		}
		cur = next
	}
	return cur[0]
}

// MLEEvalF32 evaluates the multilinear extension of a base-field row
// at an extension-field point, embedding the row first. Exported for
// the prover's round-0 contraction step, which needs the identical
// fold used internally by InduceSumcheckPoly.
func MLEEvalF32(row []binaryfield.F32, point []binaryfield.F128) binaryfield.F128 {
	return mleEval(row, point)
}

// mleEval evaluates the multilinear extension of row (embedded into
// F128) at point, by iteratively folding the row in half per
// coordinate of point: fold(v, r)[i] = v[i] + r*(v[i]+v[i+half]).
// len(row) must equal 1<<len(point).
func mleEval(row []binaryfield.F32, point []binaryfield.F128) binaryfield.F128 {
	cur := make([]binaryfield.F128, len(row))
	for i, v := range row {
		cur[i] = binaryfield.EmbedF32(v)
	}
	for _, r := range point {
		half := len(cur) / 2
		next := make([]binaryfield.F128, half)
		for i := 0; i < half; i++ {
			diff := cur[i].Add(cur[i+half])
			next[i] = cur[i].Add(r.Mul(diff))
		}
		cur = next
	}
	return cur[0]
}

// powF128 computes base^exp by square-and-multiply. exp is a public
// query position, never a secret, so no constant-time
// discipline is required here.
func powF128(base binaryfield.F128, exp int) binaryfield.F128 {
	result := base.One()
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(b)
		}
		b = b.Mul(b)
		exp >>= 1
	}
	return result
}
