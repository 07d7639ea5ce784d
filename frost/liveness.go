// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package frost

import (
	"crypto/sha256"
	"crypto/subtle"
)

// expectedHeartbeatResponse computes the keyed response a signer must
// return for the current liveness challenge: two SHA-256 halves keyed
// on both operand orders, standing in for an HMAC without pulling in
// a separate keyed-hash dependency for 64 bytes of output. Resolves
// the open question left by the source's verify_heartbeat_signature,
// which returned true unconditionally.
func expectedHeartbeatResponse(challenge [32]byte, key [32]byte) [64]byte {
	var out [64]byte
	first := sha256.Sum256(append(append([]byte{}, key[:]...), challenge[:]...))
	second := sha256.Sum256(append(append([]byte{}, challenge[:]...), key[:]...))
	copy(out[0:32], first[:])
	copy(out[32:64], second[:])
	return out
}

// VerifyHeartbeat checks response against the expected keyed response
// for challenge and key, in constant time.
func VerifyHeartbeat(challenge [32]byte, response [64]byte, key [32]byte) bool {
	want := expectedHeartbeatResponse(challenge, key)
	return subtle.ConstantTimeCompare(want[:], response[:]) == 1
}

// SubmitHeartbeat records a liveness response to the current rotating
// challenge. A correct response reactivates a signer previously marked
// Offline or Frozen{FreezeMissedHeartbeat}; it does not lift a freeze
// imposed for another reason.
func (m *Manager) SubmitHeartbeat(index uint32, response [64]byte, now uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	signer, ok := m.signers[index]
	if !ok {
		return ErrNotRegistered
	}
	if !VerifyHeartbeat(m.heartbeatChallenge, response, signer.EncryptionKey) {
		return ErrInvalidHeartbeat
	}

	m.lastHeartbeat[index] = now
	if signer.Status == SignerOffline || (signer.Status == SignerFrozen && signer.FreezeReason == FreezeMissedHeartbeat) {
		signer.Status = SignerActive
	}
	return nil
}

// rotateHeartbeatChallengeLocked advances the liveness challenge every
// HeartbeatInterval blocks, deterministically from the prior challenge
// and the current height (no wall clock, no randomness).
func (m *Manager) rotateHeartbeatChallengeLocked(now uint64) {
	if m.params.HeartbeatInterval == 0 || now%m.params.HeartbeatInterval != 0 {
		return
	}
	var buf [40]byte
	copy(buf[0:32], m.heartbeatChallenge[:])
	for i := 0; i < 8; i++ {
		buf[32+i] = byte(now >> (8 * i))
	}
	m.heartbeatChallenge = sha256.Sum256(buf[:])
}

// checkSignerLivenessLocked applies the heartbeat-miss escalation
// (Offline at HeartbeatInterval, Frozen at OfflineThreshold,
// PendingRemoval at 2*OfflineThreshold)
// and trips the circuit breaker if too few signers remain Active.
func (m *Manager) checkSignerLivenessLocked(now uint64) {
	m.rotateHeartbeatChallengeLocked(now)

	active := 0
	for idx, s := range m.signers {
		last, seen := m.lastHeartbeat[idx]
		if !seen {
			last = s.JoinedAt
		}
		missed := now - last

		switch {
		case missed >= 2*m.params.OfflineThreshold:
			s.Status = SignerPendingRemoval
		case missed >= m.params.OfflineThreshold:
			if s.Status != SignerPendingRemoval {
				s.Status = SignerFrozen
				s.FreezeReason = FreezeMissedHeartbeat
				s.FrozenSince = now
			}
		case missed >= m.params.HeartbeatInterval:
			if s.Status == SignerActive {
				s.Status = SignerOffline
				s.OfflineSince = now
			}
		}

		if s.Status == SignerActive {
			active++
		}
	}

	if m.bridgeState == BridgeActive && active < m.params.Threshold {
		m.triggerCircuitBreakerLocked(CircuitInsufficientLiveness, now)
	}
}

func (m *Manager) triggerCircuitBreakerLocked(reason CircuitBreakReason, now uint64) {
	if m.bridgeState == BridgeActive {
		m.bridgeState = BridgeCircuitBroken
		m.circuitReason = reason
		m.circuitSinceBlock = now
	}
}

// Halt trips the circuit breaker manually. Only the root authority may
// call this (isRoot is the caller's already-verified origin check;
// this package has no notion of accounts or extrinsic origins of its
// own).
func (m *Manager) Halt(isRoot bool, now uint64) error {
	if !isRoot {
		return ErrNotRoot
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.triggerCircuitBreakerLocked(CircuitManualHalt, now)
	return nil
}

// Resume returns the bridge to Active from CircuitBroken. Rejected if
// the bridge is already Active, or mid emergency recovery.
func (m *Manager) Resume(isRoot bool) error {
	if !isRoot {
		return ErrNotRoot
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bridgeState != BridgeCircuitBroken {
		return ErrNotHalted
	}
	m.bridgeState = BridgeActive
	m.circuitReason = 0
	m.consecutiveSigningFailures = 0
	return nil
}

// InitiateEmergencyRecovery moves a circuit-broken bridge into
// EmergencyRecovery bound to recoveryAddress. Rejected if the bridge
// has already undergone emergency recovery once before.
func (m *Manager) InitiateEmergencyRecovery(isRoot bool, recoveryAddress [32]byte, now uint64) error {
	if !isRoot {
		return ErrNotRoot
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hadEmergencyRecovery {
		return ErrEmergencyRecoveryUsed
	}
	if m.bridgeState != BridgeCircuitBroken {
		return ErrNotHalted
	}
	m.bridgeState = BridgeEmergencyRecovery
	m.recoveryAddress = recoveryAddress
	m.recoveryInitiatedAt = now
	m.hadEmergencyRecovery = true
	return nil
}
