// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ligerito

import (
	"github.com/luxfi/ligerito/binaryfield"
	"github.com/luxfi/ligerito/merkle"
	"github.com/luxfi/ligerito/sumcheck"
)

// RowOpeningF32 is a base-field row opening: the queried row indices,
// the opened rows themselves (full codewords, as committed), and the
// Merkle inclusion proof binding them to a committed root. This
// opening is not consumed by sumcheck induction: the verifier
// re-encodes each row's systematic prefix (its first 2^k entries,
// which equal the pre-encoding message row) to check Reed-Solomon
// codeword validity, and checks the full rows against the Merkle
// proof as they were actually committed.
type RowOpeningF32 struct {
	Indices     []int
	Rows        [][]binaryfield.F32
	MerkleProof *merkle.Proof
}

// RowOpeningF128 is RowOpeningF32's extension-field twin, used for
// every recursive round's opening.
type RowOpeningF128 struct {
	Indices     []int
	Rows        [][]binaryfield.F128
	MerkleProof *merkle.Proof
}

// FinalOpening is the innermost Ligero opening (§4.7 step 12): a
// direct systematic encoding of yr, committed and sampled at a fresh
// set of query positions.
type FinalOpening struct {
	Root        merkle.Digest
	Indices     []int
	Values      []binaryfield.F128
	MerkleProof *merkle.Proof
}

// Proof is a finalized Ligerito proof: every commitment root, the row
// openings that feed each round's sumcheck induction, the per-round
// sumcheck transcripts, the innermost folded polynomial, and its
// final opening.
type Proof struct {
	Config Config

	InitialRoot    merkle.Digest   // commitment to the base-field matrix
	RecursiveRoots []merkle.Digest // one per recursive round, length Config.RecursiveSteps

	InitialOpening    RowOpeningF32    // sampled rows of InitialRoot, checked for RS-codeword validity only
	RecursiveOpenings []RowOpeningF128 // RecursiveOpenings[i]: opened rows of RecursiveRoots[i], feeds round i's sumcheck induction

	SumcheckRounds [][]sumcheck.RoundMessage // SumcheckRounds[i] has Config.Ks[i] entries

	Yr           []binaryfield.F128
	FinalOpening FinalOpening
}
