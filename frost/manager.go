// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package frost

import (
	"sync"

	"github.com/cloudflare/circl/group"
)

type shareKey struct{ From, To uint32 }

// Manager is the FROST state machine: DKG ceremony, signer registry
// and liveness, signing queue, and circuit breaker, all guarded by a
// single mutex so every transition is serialized — matching a pallet
// applying one block's extrinsics in order, not true concurrency.
// Every mutating method takes the caller's current block height
// explicitly; nothing here reads a wall clock.
type Manager struct {
	mu     sync.RWMutex
	params Params

	signers   map[uint32]*Signer
	nextIndex uint32

	phase            DkgPhase
	dkgDeadline      uint64
	dkgFailureReason DkgFailureReason

	commitments map[uint32][32]byte
	shares      map[shareKey][]byte

	groupPublicKey group.Element
	haveGroupKey   bool

	nextRequestID uint64
	usedNonces    map[[32]byte]bool
	signingQueue  map[uint64]*SigningRequest

	lastHeartbeat      map[uint32]uint64
	heartbeatChallenge [32]byte

	consecutiveSigningFailures uint32

	bridgeState       CircuitBreakerState
	circuitReason     CircuitBreakReason
	circuitSinceBlock uint64

	hadEmergencyRecovery bool
	recoveryAddress      [32]byte
	recoveryInitiatedAt  uint64

	reshare *ReshareCeremony
}

// NewManager creates an idle Manager with the given parameters.
func NewManager(params Params) *Manager {
	return &Manager{
		params:       params,
		signers:      make(map[uint32]*Signer),
		commitments:  make(map[uint32][32]byte),
		shares:       make(map[shareKey][]byte),
		usedNonces:   make(map[[32]byte]bool),
		signingQueue: make(map[uint64]*SigningRequest),
		lastHeartbeat: make(map[uint32]uint64),
		bridgeState:  BridgeActive,
	}
}

func (m *Manager) Phase() DkgPhase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

func (m *Manager) DkgFailureReason() DkgFailureReason {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dkgFailureReason
}

func (m *Manager) GroupPublicKey() (group.Element, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.groupPublicKey, m.haveGroupKey
}

func (m *Manager) BridgeState() CircuitBreakerState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bridgeState
}

func (m *Manager) Signer(index uint32) (Signer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.signers[index]
	if !ok {
		return Signer{}, false
	}
	return *s, true
}

func (m *Manager) SignerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.signers)
}

// RegisterSigner adds a new signer and starts the DKG ceremony once
// MinSigners have registered.
func (m *Manager) RegisterSigner(encryptionKey [32]byte, now uint64) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.signers) >= m.params.MaxSigners {
		return 0, ErrTooManySigners
	}

	m.nextIndex++
	index := m.nextIndex
	m.signers[index] = &Signer{
		Index:         index,
		EncryptionKey: encryptionKey,
		JoinedAt:      now,
		Status:        SignerActive,
	}

	m.maybeStartDKGLocked(now)
	return index, nil
}

func (m *Manager) maybeStartDKGLocked(now uint64) {
	if m.phase != DkgIdle {
		return
	}
	if len(m.signers) < m.params.MinSigners {
		return
	}
	m.phase = DkgRound1
	m.dkgDeadline = now + m.params.DkgTimeout
}
