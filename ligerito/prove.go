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

// Prove runs the Ligerito prover over poly (length at most
// cfg.MessageLen(), zero-padded if shorter) against tr, producing a
// finalized proof.
//
// Pre-step: the polynomial is reshaped into a base-field matrix,
// encoded row-wise, and Merkle-committed; a sample of its rows is
// recorded for an RS-codeword-validity check (InitialOpening). The
// initial partial-evaluation challenges fold each row into a single
// extension-field vector, the polynomial entering recursive round 0.
//
// Each recursive round i reshapes its entering polynomial (dimension
// d) into a 2^LogDims[i] x 2^Ks[i] matrix, encodes and commits it,
// samples and opens its own rows, induces a sumcheck polynomial from
// those openings (§4.6), glues it into the running verifier instance,
// and folds that instance for Ks[i] rounds — producing the
// dimension-LogDims[i] polynomial that enters round i+1.
func Prove(cfg Config, poly []binaryfield.F32, tr transcript.Transcript) (*Proof, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	want := cfg.MessageLen()
	if len(poly) > want {
		return nil, fmt.Errorf("ligerito: polynomial length %d exceeds configured length %d", len(poly), want)
	}
	padded := make([]binaryfield.F32, want)
	copy(padded, poly)

	initRows := reshapeF32(padded, 1<<uint(cfg.InitialDim), 1<<uint(cfg.InitialK))
	initCodewords := make([][]binaryfield.F32, len(initRows))
	for i, row := range initRows {
		cw, err := rsfft.Encode(row)
		if err != nil {
			return nil, fmt.Errorf("ligerito: encoding initial row %d: %w", i, err)
		}
		initCodewords[i] = cw
	}
	initTree, err := merkle.Build(initCodewords)
	if err != nil {
		return nil, fmt.Errorf("ligerito: committing initial matrix: %w", err)
	}
	initRoot := initTree.Root()
	tr.AbsorbRoot("ligerito/initial-root", initRoot)

	vPre := make([]binaryfield.F32, cfg.InitialK)
	for j := range vPre {
		vPre[j] = tr.ChallengeF32(fmt.Sprintf("ligerito/v-pre/%d", j))
	}
	vPreEmbedded := make([]binaryfield.F128, len(vPre))
	for j, v := range vPre {
		vPreEmbedded[j] = binaryfield.EmbedF32(v)
	}

	p := make([]binaryfield.F128, 1<<uint(cfg.InitialDim))
	for r, row := range initRows {
		p[r] = sumcheck.MLEEvalF32(row, vPreEmbedded)
	}

	initQueryCount := cfgconst.S
	if initQueryCount > len(initRows) {
		initQueryCount = len(initRows)
	}
	initQueries := sortInts(tr.ChallengeIndices("ligerito/initial-queries", initQueryCount, len(initRows)))
	initOpenedRows := make([][]binaryfield.F32, len(initQueries))
	for qi, q := range initQueries {
		initOpenedRows[qi] = initCodewords[q]
	}
	initProof, err := initTree.Open(initQueries)
	if err != nil {
		return nil, fmt.Errorf("ligerito: opening initial rows: %w", err)
	}
	initialOpening := RowOpeningF32{Indices: initQueries, Rows: initOpenedRows, MerkleProof: initProof}

	var inst *sumcheck.VerifierInstance
	recursiveRoots := make([]merkle.Digest, cfg.RecursiveSteps)
	recursiveOpenings := make([]RowOpeningF128, cfg.RecursiveSteps)
	sumcheckRounds := make([][]sumcheck.RoundMessage, cfg.RecursiveSteps)

	d := cfg.InitialDim
	for i := 0; i < cfg.RecursiveSteps; i++ {
		rows := 1 << uint(cfg.LogDims[i])
		cols := 1 << uint(cfg.Ks[i])
		matrix := reshapeF128(p, rows, cols)
		codewords := make([][]binaryfield.F128, rows)
		for r, row := range matrix {
			cw, err := rsfft.EncodeF128(row)
			if err != nil {
				return nil, fmt.Errorf("ligerito: encoding round %d row %d: %w", i, r, err)
			}
			codewords[r] = cw
		}
		tree, err := merkle.BuildF128(codewords)
		if err != nil {
			return nil, fmt.Errorf("ligerito: committing round %d matrix: %w", i, err)
		}
		root := tree.Root()
		recursiveRoots[i] = root
		tr.AbsorbRoot(fmt.Sprintf("ligerito/recursive-root/%d", i), root)

		numQueries := cfgconst.S
		if numQueries > rows {
			numQueries = rows
		}
		queries := sortInts(tr.ChallengeIndices(fmt.Sprintf("ligerito/queries/%d", i), numQueries, rows))

		vChallenges := make([]binaryfield.F128, cfg.Ks[i])
		for j := range vChallenges {
			vChallenges[j] = tr.ChallengeF128(fmt.Sprintf("ligerito/v/%d/%d", i, j))
		}
		alpha := tr.ChallengeF128(fmt.Sprintf("ligerito/alpha/%d", i))

		openedRows := make([][]binaryfield.F128, len(queries))
		prefixRows := make([][]binaryfield.F128, len(queries))
		for qi, q := range queries {
			openedRows[qi] = codewords[q]
			prefixRows[qi] = codewords[q][:cols]
		}
		mproof, err := tree.Open(queries)
		if err != nil {
			return nil, fmt.Errorf("ligerito: opening round %d rows: %w", i, err)
		}
		recursiveOpenings[i] = RowOpeningF128{Indices: queries, Rows: openedRows, MerkleProof: mproof}

		basisPoly, enforcedSum := sumcheck.InduceSumcheckPolyF128(d, prefixRows, vChallenges, queries, alpha)

		if inst == nil {
			inst = sumcheck.NewVerifierInstance(basisPoly, enforcedSum)
			tr.AbsorbElemF128("ligerito/enforced-sum/0", enforcedSum)
		} else {
			tr.AbsorbElemF128(fmt.Sprintf("ligerito/glue-sum/%d", i), inst.Sum().Add(enforcedSum))
			beta := tr.ChallengeF128(fmt.Sprintf("ligerito/beta/%d", i))
			inst.IntroduceNew(basisPoly, enforcedSum)
			if err := inst.Glue(beta); err != nil {
				return nil, fmt.Errorf("ligerito: gluing round %d: %w", i, err)
			}
		}

		rounds := make([]sumcheck.RoundMessage, cfg.Ks[i])
		for j := 0; j < cfg.Ks[i]; j++ {
			cur := inst.Poly()
			half := len(cur) / 2
			s0 := sumOf(cur[:half])
			s1 := sumOf(cur[half:])
			msg := sumcheck.RoundMessage{S0: s0, S1: s1, S2: s0.Add(s1)}
			rounds[j] = msg
			tr.AbsorbElemsF128(fmt.Sprintf("ligerito/round-msg/%d/%d", i, j), []binaryfield.F128{msg.S0, msg.S1, msg.S2})
			r := tr.ChallengeF128(fmt.Sprintf("ligerito/round-challenge/%d/%d", i, j))
			if err := inst.Fold(r); err != nil {
				return nil, fmt.Errorf("ligerito: folding round %d.%d: %w", i, j, err)
			}
		}
		sumcheckRounds[i] = rounds

		p = inst.Poly()
		d = cfg.LogDims[i]
	}

	tr.AbsorbElemsF128("ligerito/yr", p)

	finalOpening, err := buildFinalOpening(p, tr)
	if err != nil {
		return nil, fmt.Errorf("ligerito: final opening: %w", err)
	}

	return &Proof{
		Config:            cfg,
		InitialRoot:       initRoot,
		RecursiveRoots:    recursiveRoots,
		InitialOpening:    initialOpening,
		RecursiveOpenings: recursiveOpenings,
		SumcheckRounds:    sumcheckRounds,
		Yr:                p,
		FinalOpening:      *finalOpening,
	}, nil
}

// sumOf adds a slice of F128 elements.
func sumOf(xs []binaryfield.F128) binaryfield.F128 {
	acc := binaryfield.F128Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// sortInts returns a freshly sorted, deduplicated-by-construction copy
// of qs (ChallengeIndices already guarantees distinctness).
func sortInts(qs []int) []int {
	out := append([]int(nil), qs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func buildFinalOpening(yr []binaryfield.F128, tr transcript.Transcript) (*FinalOpening, error) {
	codeword, err := rsfft.EncodeF128(yr)
	if err != nil {
		return nil, err
	}
	rows := make([][]binaryfield.F128, len(codeword))
	for i, v := range codeword {
		rows[i] = []binaryfield.F128{v}
	}
	tree, err := merkle.BuildF128(rows)
	if err != nil {
		return nil, err
	}
	root := tree.Root()
	tr.AbsorbRoot("ligerito/final-root", root)

	numQueries := cfgconst.S
	if numQueries > len(codeword) {
		numQueries = len(codeword)
	}
	queries := sortInts(tr.ChallengeIndices("ligerito/final-queries", numQueries, len(codeword)))
	values := make([]binaryfield.F128, len(queries))
	for i, q := range queries {
		values[i] = codeword[q]
	}
	proof, err := tree.Open(queries)
	if err != nil {
		return nil, err
	}
	return &FinalOpening{Root: root, Indices: queries, Values: values, MerkleProof: proof}, nil
}
