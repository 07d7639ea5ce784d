// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config centralizes the magic constants scattered across the
// original source's modules: Ligerito's statistical parameter and
// inverse rate, and the header-chain proof-regeneration policy's
// thresholds. Every other package reads these from here rather than
// redefining them locally.
package config

const (
	// S is the number of queries per Ligero round (statistical
	// parameter; determines soundness together with LogInvRate).
	S = 148

	// LogInvRate is log2 of the Reed-Solomon inverse rate. Must match
	// rsfft.LogInvRate; kept as a separate named constant here because
	// config is the canonical home for protocol parameters and rsfft
	// must not import it (rsfft has no dependency on proof-level
	// policy, only on field arithmetic).
	LogInvRate = 2

	// GigaproofRegenThreshold is the number of epochs a gigaproof
	// covers before regeneration is due.
	GigaproofRegenThreshold = 200

	// TipProofRegenBlocks is how often, in blocks, the tip proof
	// (covering the remainder to chain tip) is regenerated.
	TipProofRegenBlocks = 1

	// EpochLength is the number of blocks in one epoch.
	EpochLength = 600

	// SubmissionTailStart is the block offset within an epoch after
	// which proof submission enters its tail window.
	SubmissionTailStart = 2 * EpochLength / 3

	// MinSigners is the minimum number of registered signers required
	// to start a DKG round.
	MinSigners = 3

	// MaxSigners is the largest signer set a single ceremony admits.
	MaxSigners = 256

	// MaxEncryptedShareSize bounds a single DKG round-2 encrypted
	// share, matching the original pallet's MaxEncryptedShareSize.
	MaxEncryptedShareSize = 512

	// DkgTimeout is how many blocks each DKG round (1, 2, 3) is given
	// to complete before the ceremony fails with DkgFailureTimeout.
	DkgTimeout = 100

	// SigningTimeout is how many blocks a signing request is given to
	// collect threshold-many partial signatures before it expires.
	SigningTimeout = 50

	// HeartbeatInterval is how often, in blocks, the liveness
	// challenge is rotated.
	HeartbeatInterval = 20

	// OfflineThreshold is how many blocks without a heartbeat before a
	// signer is frozen; twice this marks the signer for removal. (A
	// signer silent for HeartbeatInterval blocks is already Offline.)
	OfflineThreshold = 40

	// CircuitBreakerThreshold is the cumulative count of expired
	// signing requests that trips the circuit breaker.
	CircuitBreakerThreshold = 5
)

// Threshold returns the strict-BFT signing threshold for n signers:
// floor(2n/3) + 1. Callers must use this rather than rounding
// differently — a laxer threshold would accept signatures from fewer
// than the honest-majority assumption requires.
func Threshold(n int) int {
	return (2*n)/3 + 1
}
