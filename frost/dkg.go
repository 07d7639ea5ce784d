// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package frost

import "github.com/cloudflare/circl/group"

// SubmitCommitment records signer index's round-1 commitment and
// advances to round 2 once every registered signer has one.
func (m *Manager) SubmitCommitment(index uint32, commitment [32]byte, now uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.signers[index]; !ok {
		return ErrNotRegistered
	}
	if m.phase != DkgRound1 {
		return ErrWrongDkgPhase
	}

	m.commitments[index] = commitment

	if len(m.commitments) == len(m.signers) {
		m.phase = DkgRound2
		m.dkgDeadline = now + m.params.DkgTimeout
	}
	return nil
}

// SubmitShare records the encrypted round-2 share signer `from` sent
// to signer `to`, advancing to round 3 once every ordered pair among
// registered signers has exchanged one.
func (m *Manager) SubmitShare(from, to uint32, encryptedShare []byte, now uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.signers[from]; !ok {
		return ErrNotRegistered
	}
	if _, ok := m.signers[to]; !ok {
		return ErrInvalidShare
	}
	if m.phase != DkgRound2 {
		return ErrWrongDkgPhase
	}
	if len(encryptedShare) > m.params.MaxEncryptedShareSize {
		return ErrShareTooLarge
	}

	m.shares[shareKey{From: from, To: to}] = encryptedShare

	n := len(m.signers)
	expected := n * (n - 1)
	if len(m.shares) == expected {
		m.phase = DkgRound3
		m.dkgDeadline = now + m.params.DkgTimeout
	}
	return nil
}

// SubmitVerification records signer index's round-3 public share
// and, once every registered signer has submitted one, derives the
// group public key as the sum of all public shares and returns the
// ceremony to Idle.
func (m *Manager) SubmitVerification(index uint32, publicShare group.Element, now uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	signer, ok := m.signers[index]
	if !ok {
		return ErrNotRegistered
	}
	if m.phase != DkgRound3 {
		return ErrWrongDkgPhase
	}

	signer.PublicShare = publicShare
	signer.Status = SignerActive

	allVerified := true
	for _, s := range m.signers {
		if s.PublicShare == nil {
			allVerified = false
			break
		}
	}
	if !allVerified {
		return nil
	}

	m.groupPublicKey = sumPublicShares(m.signers)
	m.haveGroupKey = true
	m.phase = DkgIdle
	_ = now
	return nil
}

func sumPublicShares(signers map[uint32]*Signer) group.Element {
	var sum group.Element
	first := true
	for _, s := range signers {
		if first {
			sum = s.PublicShare
			first = false
			continue
		}
		next := G.NewElement()
		next.Add(sum, s.PublicShare)
		sum = next
	}
	return sum
}

// OnFinalize runs the per-block housekeeping a pallet would perform
// in its on_finalize hook: DKG timeout, expired signing requests, and
// signer liveness checks. Call it once per block with the block's
// height.
func (m *Manager) OnFinalize(now uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.phase {
	case DkgRound1, DkgRound2, DkgRound3:
		if now > m.dkgDeadline {
			m.phase = DkgFailed
			m.dkgFailureReason = DkgFailureTimeout
		}
	}

	m.processExpiredSigningRequestsLocked(now)
	m.checkSignerLivenessLocked(now)
}
