// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package frost

// ResharePhase is a custodian-rotation ceremony's current phase. A
// reshare redistributes secret shares among a (possibly changed) set
// of signers without changing the group public key, unlike a fresh
// DKG. Supplements spec.md §4.10's "root/sudo can force a new
// reshare" with the reshare ceremony's own phase shape, mirrored from
// DKG's Commitments -> Subshares -> Verification structure.
type ResharePhase uint8

const (
	ReshareCommitments ResharePhase = iota
	ReshareSubshares
	ReshareVerification
	ReshareFailed
)

// ReshareCeremony tracks one in-flight custodian rotation.
type ReshareCeremony struct {
	Phase        ResharePhase
	NewSigners   []uint32
	Commitments  map[uint32][32]byte
	Subshares    map[shareKey][]byte
	Verified     map[uint32]bool
	Deadline     uint64
	FailedReason DkgFailureReason
}

// ForceReshare starts a reshare ceremony among newSigners. Only the
// root authority may call this; rejected while one is already in
// progress.
func (m *Manager) ForceReshare(isRoot bool, newSigners []uint32, now uint64) error {
	if !isRoot {
		return ErrNotRoot
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.reshare != nil && m.reshare.Phase != ReshareFailed {
		return ErrReshareInProgress
	}
	for _, idx := range newSigners {
		if _, ok := m.signers[idx]; !ok {
			return ErrNotRegistered
		}
	}

	m.reshare = &ReshareCeremony{
		Phase:       ReshareCommitments,
		NewSigners:  append([]uint32(nil), newSigners...),
		Commitments: make(map[uint32][32]byte),
		Subshares:   make(map[shareKey][]byte),
		Verified:    make(map[uint32]bool),
		Deadline:    now + m.params.DkgTimeout,
	}
	return nil
}

// ReshareState returns the current reshare ceremony, if any.
func (m *Manager) ReshareState() (ReshareCeremony, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.reshare == nil {
		return ReshareCeremony{}, false
	}
	return *m.reshare, true
}

// SubmitReshareCommitment records a new signer's round-1 commitment
// for the in-flight reshare, advancing to ReshareSubshares once every
// new signer has one.
func (m *Manager) SubmitReshareCommitment(index uint32, commitment [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := m.reshare
	if r == nil || r.Phase != ReshareCommitments {
		return ErrWrongResharePhase
	}
	if !containsSigner(r.NewSigners, index) {
		return ErrNotRegistered
	}
	r.Commitments[index] = commitment
	if len(r.Commitments) == len(r.NewSigners) {
		r.Phase = ReshareSubshares
	}
	return nil
}

// SubmitReshareSubshare records an encrypted subshare exchanged
// between new signers, advancing to ReshareVerification once the full
// matrix is present.
func (m *Manager) SubmitReshareSubshare(from, to uint32, encrypted []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := m.reshare
	if r == nil || r.Phase != ReshareSubshares {
		return ErrWrongResharePhase
	}
	if len(encrypted) > m.params.MaxEncryptedShareSize {
		return ErrShareTooLarge
	}
	r.Subshares[shareKey{From: from, To: to}] = encrypted

	n := len(r.NewSigners)
	if len(r.Subshares) == n*(n-1) {
		r.Phase = ReshareVerification
	}
	return nil
}

// SubmitReshareVerification records that new signer index has
// verified its reshared key material. Once all new signers have
// verified, the ceremony completes and the reshare is cleared.
func (m *Manager) SubmitReshareVerification(index uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := m.reshare
	if r == nil || r.Phase != ReshareVerification {
		return ErrWrongResharePhase
	}
	if !containsSigner(r.NewSigners, index) {
		return ErrNotRegistered
	}
	r.Verified[index] = true

	for _, idx := range r.NewSigners {
		if !r.Verified[idx] {
			return nil
		}
	}
	m.reshare = nil
	return nil
}

// OnFinalizeReshare times out an in-progress reshare ceremony past its
// deadline, called alongside OnFinalize.
func (m *Manager) OnFinalizeReshare(now uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := m.reshare
	if r == nil {
		return
	}
	if r.Phase != ReshareFailed && now > r.Deadline {
		r.Phase = ReshareFailed
		r.FailedReason = DkgFailureTimeout
	}
}

func containsSigner(set []uint32, idx uint32) bool {
	for _, s := range set {
		if s == idx {
			return true
		}
	}
	return false
}
