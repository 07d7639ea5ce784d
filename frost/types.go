// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package frost implements component C10: the FROST-style distributed
// key generation and signing state machine, signer liveness tracking,
// and the circuit breaker that halts signing when too few signers
// remain active.
package frost

import (
	"errors"

	"github.com/cloudflare/circl/group"
)

// G is the concrete prime-order group every frost operation runs
// against, matching osst's choice of Ristretto255 in place of Pallas.
var G = group.Ristretto255

// DkgPhase is the distributed key generation ceremony's current phase.
type DkgPhase uint8

const (
	DkgIdle DkgPhase = iota
	DkgRound1
	DkgRound2
	DkgRound3
	DkgFailed
)

// DkgFailureReason explains why a DKG ceremony moved to DkgFailed.
type DkgFailureReason uint8

const (
	DkgFailureNone DkgFailureReason = iota
	DkgFailureTimeout
	DkgFailureInvalidCommitment
	DkgFailureInvalidShare
	DkgFailureInsufficientParticipation
)

// SignerStatus is a registered signer's liveness state.
type SignerStatus uint8

const (
	SignerActive SignerStatus = iota
	SignerFrozen
	SignerOffline
	SignerPendingRemoval
)

// FreezeReason explains why a signer was frozen.
type FreezeReason uint8

const (
	FreezeMissedSigning FreezeReason = iota
	FreezeMissedHeartbeat
	FreezeDkgFailure
)

// CircuitBreakerState is the bridge-wide circuit breaker's state.
type CircuitBreakerState uint8

const (
	BridgeActive CircuitBreakerState = iota
	BridgeCircuitBroken
	BridgeEmergencyRecovery
)

// CircuitBreakReason explains why the circuit breaker tripped.
type CircuitBreakReason uint8

const (
	CircuitInsufficientLiveness CircuitBreakReason = iota
	CircuitRepeatedSigningFailure
	CircuitRepeatedDkgFailure
	CircuitManualHalt
)

// SigningRequestStatus is a signing request's lifecycle stage.
type SigningRequestStatus uint8

const (
	SigningWaitingForCommitments SigningRequestStatus = iota
	SigningInProgress
	SigningComplete
	SigningFailed
)

// ParticipationStats is a signer's auditable participation trail in
// signing ceremonies. It is recorded only; the freeze/eject liveness
// escalation is driven by heartbeat timing, not by these counters.
type ParticipationStats struct {
	SigningRoundsAvailable    uint32
	SigningRoundsParticipated uint32
	LastParticipationBlock    uint64
	ConsecutiveMisses         uint32
}

// Signer is one registered DKG/signing participant.
type Signer struct {
	Index         uint32
	EncryptionKey [32]byte
	PublicShare   group.Element
	JoinedAt      uint64
	Status        SignerStatus
	FrozenSince   uint64
	FreezeReason  FreezeReason
	OfflineSince  uint64
	Stats         ParticipationStats
}

// Signature is a Schnorr-style threshold signature: a commitment
// point and a scalar response, combined from partial signatures by
// Lagrange-weighted aggregation.
type Signature struct {
	R group.Element
	S group.Scalar
}

// PartialSignature is one signer's contribution to a threshold
// signature: a commitment point and a scalar response, the same
// Schnorr-share shape used throughout.
type PartialSignature struct {
	Index uint32
	R     group.Element
	S     group.Scalar
}

// SigningRequest is one in-flight threshold signing ceremony.
type SigningRequest struct {
	ID          uint64
	Nonce       [32]byte
	Payload     []byte
	CreatedAt   uint64
	Deadline    uint64
	Status      SigningRequestStatus
	PartialSigs map[uint32]PartialSignature
	FinalSig    *Signature
}

var (
	ErrAlreadyRegistered      = errors.New("frost: signer already registered")
	ErrNotRegistered          = errors.New("frost: signer not registered")
	ErrTooManySigners         = errors.New("frost: signer set is full")
	ErrWrongDkgPhase          = errors.New("frost: wrong dkg phase for this operation")
	ErrInvalidCommitment      = errors.New("frost: invalid dkg commitment")
	ErrInvalidShare           = errors.New("frost: invalid dkg share")
	ErrShareTooLarge          = errors.New("frost: encrypted share exceeds maximum size")
	ErrNoGroupKey             = errors.New("frost: no group public key established")
	ErrNonceReused            = errors.New("frost: nonce already used")
	ErrBridgeHalted           = errors.New("frost: bridge is halted")
	ErrRequestNotFound        = errors.New("frost: signing request not found")
	ErrAlreadySigned          = errors.New("frost: signer already submitted a partial signature")
	ErrSigningTimeout         = errors.New("frost: signing request deadline has passed")
	ErrSignerFrozen           = errors.New("frost: signer is not active")
	ErrInvalidHeartbeat       = errors.New("frost: invalid heartbeat response")
	ErrNotHalted              = errors.New("frost: bridge is not halted")
	ErrInsufficientSigners    = errors.New("frost: fewer signers than MinSigners")
	ErrNotRoot                = errors.New("frost: caller is not the root authority")
	ErrEmergencyRecoveryUsed  = errors.New("frost: emergency recovery already used")
	ErrWrongResharePhase      = errors.New("frost: wrong reshare phase for this operation")
	ErrReshareInProgress      = errors.New("frost: a reshare ceremony is already in progress")
	ErrNoReshareInProgress    = errors.New("frost: no reshare ceremony in progress")
)
