// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ligerito

import (
	"fmt"

	"github.com/luxfi/ligerito/binaryfield"
	cfgconst "github.com/luxfi/ligerito/config"
	"github.com/luxfi/ligerito/merkle"
	"github.com/luxfi/ligerito/rsfft"
	"github.com/luxfi/ligerito/sumcheck"
	"github.com/luxfi/ligerito/transcript"
)

// Verify checks proof against cfg, re-deriving every transcript
// challenge and Merkle/sumcheck consistency check the prover would
// have made. It never panics on malformed input: every bounds or
// consistency failure returns false, not an error or panic — proof
// rejection and "this proof is garbage" are the same outcome to a
// caller.
func Verify(cfg Config, proof *Proof, tr transcript.Transcript) bool {
	if err := cfg.Validate(); err != nil {
		return false
	}
	if proof == nil || proof.Config.RecursiveSteps != cfg.RecursiveSteps {
		return false
	}
	if len(proof.RecursiveRoots) != cfg.RecursiveSteps ||
		len(proof.RecursiveOpenings) != cfg.RecursiveSteps ||
		len(proof.SumcheckRounds) != cfg.RecursiveSteps {
		return false
	}

	tr.AbsorbRoot("ligerito/initial-root", proof.InitialRoot)

	vPre := make([]binaryfield.F32, cfg.InitialK)
	for j := range vPre {
		vPre[j] = tr.ChallengeF32(fmt.Sprintf("ligerito/v-pre/%d", j))
	}

	initRows := 1 << uint(cfg.InitialDim)
	initQueryCount := cfgconst.S
	if initQueryCount > initRows {
		initQueryCount = initRows
	}
	initQueries := sortInts(tr.ChallengeIndices("ligerito/initial-queries", initQueryCount, initRows))
	if !sameIndices(initQueries, proof.InitialOpening.Indices) {
		return false
	}
	if !checkRSValidityF32(proof.InitialOpening.Rows, cfg.InitialK) {
		return false
	}
	initLeaves := make([]merkle.Digest, len(proof.InitialOpening.Rows))
	for i, row := range proof.InitialOpening.Rows {
		initLeaves[i] = merkle.HashRow(row)
	}
	if !merkle.Verify(proof.InitialRoot, proof.InitialOpening.MerkleProof, initLeaves) {
		return false
	}

	var inst *sumcheck.VerifierInstance
	d := cfg.InitialDim
	for i := 0; i < cfg.RecursiveSteps; i++ {
		rows := 1 << uint(cfg.LogDims[i])
		cols := 1 << uint(cfg.Ks[i])

		tr.AbsorbRoot(fmt.Sprintf("ligerito/recursive-root/%d", i), proof.RecursiveRoots[i])

		numQueries := cfgconst.S
		if numQueries > rows {
			numQueries = rows
		}
		queries := sortInts(tr.ChallengeIndices(fmt.Sprintf("ligerito/queries/%d", i), numQueries, rows))
		opening := proof.RecursiveOpenings[i]
		if !sameIndices(queries, opening.Indices) {
			return false
		}
		if len(opening.Rows) != len(queries) {
			return false
		}
		for _, row := range opening.Rows {
			if len(row) != cols<<uint(rsfft.LogInvRate) {
				return false
			}
		}
		if !checkRSValidityF128(opening.Rows, cfg.Ks[i]) {
			return false
		}
		leaves := make([]merkle.Digest, len(opening.Rows))
		for qi, row := range opening.Rows {
			leaves[qi] = merkle.HashRowF128(row)
		}
		if !merkle.Verify(proof.RecursiveRoots[i], opening.MerkleProof, leaves) {
			return false
		}

		vChallenges := make([]binaryfield.F128, cfg.Ks[i])
		for j := range vChallenges {
			vChallenges[j] = tr.ChallengeF128(fmt.Sprintf("ligerito/v/%d/%d", i, j))
		}
		alpha := tr.ChallengeF128(fmt.Sprintf("ligerito/alpha/%d", i))

		prefixRows := make([][]binaryfield.F128, len(opening.Rows))
		for qi, row := range opening.Rows {
			prefixRows[qi] = row[:cols]
		}
		basisPoly, enforcedSum := sumcheck.InduceSumcheckPolyF128(d, prefixRows, vChallenges, queries, alpha)
		if !sumcheck.CheckConsistency(basisPoly, enforcedSum) {
			return false
		}

		if inst == nil {
			inst = sumcheck.NewVerifierInstance(basisPoly, enforcedSum)
			tr.AbsorbElemF128("ligerito/enforced-sum/0", enforcedSum)
		} else {
			tr.AbsorbElemF128(fmt.Sprintf("ligerito/glue-sum/%d", i), inst.Sum().Add(enforcedSum))
			beta := tr.ChallengeF128(fmt.Sprintf("ligerito/beta/%d", i))
			inst.IntroduceNew(basisPoly, enforcedSum)
			if err := inst.Glue(beta); err != nil {
				return false
			}
		}

		rounds := proof.SumcheckRounds[i]
		if len(rounds) != cfg.Ks[i] {
			return false
		}
		for j, msg := range rounds {
			if !msg.Valid() {
				return false
			}
			if !msg.ClaimedSum().Equal(inst.Sum()) {
				return false
			}
			tr.AbsorbElemsF128(fmt.Sprintf("ligerito/round-msg/%d/%d", i, j), []binaryfield.F128{msg.S0, msg.S1, msg.S2})
			r := tr.ChallengeF128(fmt.Sprintf("ligerito/round-challenge/%d/%d", i, j))
			if err := inst.Fold(r); err != nil {
				return false
			}
		}

		d = cfg.LogDims[i]
	}

	if inst == nil || !sameF128Slice(inst.Poly(), proof.Yr) {
		return false
	}
	tr.AbsorbElemsF128("ligerito/yr", proof.Yr)

	return verifyFinalOpening(proof.Yr, proof.FinalOpening, tr)
}

func verifyFinalOpening(yr []binaryfield.F128, fo FinalOpening, tr transcript.Transcript) bool {
	codeword, err := rsfft.EncodeF128(yr)
	if err != nil {
		return false
	}
	tr.AbsorbRoot("ligerito/final-root", fo.Root)

	numQueries := cfgconst.S
	if numQueries > len(codeword) {
		numQueries = len(codeword)
	}
	queries := sortInts(tr.ChallengeIndices("ligerito/final-queries", numQueries, len(codeword)))
	if !sameIndices(queries, fo.Indices) || len(fo.Values) != len(queries) {
		return false
	}
	leaves := make([]merkle.Digest, len(fo.Values))
	for i, q := range queries {
		if !fo.Values[i].Equal(codeword[q]) {
			return false
		}
		leaves[i] = merkle.HashRowF128([]binaryfield.F128{fo.Values[i]})
	}
	return merkle.Verify(fo.Root, fo.MerkleProof, leaves)
}

// checkRSValidityF32 re-encodes each opened row's systematic prefix
// (length 2^k) and checks it reproduces the full committed codeword,
// catching a prover that committed to something other than a valid
// Reed-Solomon codeword.
func checkRSValidityF32(rows [][]binaryfield.F32, k int) bool {
	msgLen := 1 << uint(k)
	for _, row := range rows {
		if len(row) <= msgLen {
			return false
		}
		recomputed, err := rsfft.Encode(row[:msgLen])
		if err != nil || !sameF32Slice(recomputed, row) {
			return false
		}
	}
	return true
}

func checkRSValidityF128(rows [][]binaryfield.F128, k int) bool {
	msgLen := 1 << uint(k)
	for _, row := range rows {
		if len(row) <= msgLen {
			return false
		}
		recomputed, err := rsfft.EncodeF128(row[:msgLen])
		if err != nil || !sameF128Slice(recomputed, row) {
			return false
		}
	}
	return true
}

func sameIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameF32Slice(a, b []binaryfield.F32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func sameF128Slice(a, b []binaryfield.F128) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
