// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bridge decides when the application layer built on top of
// ligerito must regenerate a gigaproof or a tip proof, and whether a
// given block sits in an epoch's submission tail window. It holds no
// field arithmetic or IOP logic of its own; it is the policy wrapper
// around the config-centralized thresholds that a header-chain prover
// (the "gigaproof"/"tip proof" consumers named in spec.md's glossary)
// would consult before spending the work of running ligerito.Prove
// again.
package bridge

import "github.com/luxfi/ligerito/config"

// RegenPolicy decides proof-regeneration cadence for a single chain's
// header-proof pipeline. Heights and epochs are block/epoch numbers,
// never wall-clock time, matching the rest of this module's ban on
// timing side channels.
type RegenPolicy struct {
	// LastGigaproofEpoch is the last epoch number a gigaproof anchored.
	LastGigaproofEpoch uint64

	// LastTipProofBlock is the last block number a tip proof covered.
	LastTipProofBlock uint64
}

// NeedsGigaproof reports whether a new gigaproof must be produced:
// the chain has advanced GigaproofRegenThreshold epochs past the last
// one anchored.
func (p RegenPolicy) NeedsGigaproof(currentEpoch uint64) bool {
	if currentEpoch < p.LastGigaproofEpoch {
		return false
	}
	return currentEpoch-p.LastGigaproofEpoch >= config.GigaproofRegenThreshold
}

// NeedsTipProof reports whether a new tip proof must be produced: the
// chain tip has advanced TipProofRegenBlocks past the last tip proof.
func (p RegenPolicy) NeedsTipProof(currentBlock uint64) bool {
	if currentBlock < p.LastTipProofBlock {
		return false
	}
	return currentBlock-p.LastTipProofBlock >= config.TipProofRegenBlocks
}

// InSubmissionTail reports whether blockInEpoch (0-based offset from
// the epoch's first block) falls in the epoch's submission tail, the
// window after which late submitters lose priority.
func InSubmissionTail(blockInEpoch uint64) bool {
	return blockInEpoch >= config.SubmissionTailStart
}

// EpochOf returns the epoch number containing absolute block height.
func EpochOf(blockHeight uint64) uint64 {
	return blockHeight / config.EpochLength
}
