// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package frost

import (
	"github.com/cloudflare/circl/group"

	"github.com/luxfi/ligerito/osst"
)

var signingChallengeDST = []byte("lux-frost-signing-challenge-v1")

// CreateSigningRequest enqueues a new signing ceremony for payload,
// rejecting a previously used nonce and requiring an established
// group key.
func (m *Manager) CreateSigningRequest(nonce [32]byte, payload []byte, now uint64) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.bridgeState != BridgeActive {
		return 0, ErrBridgeHalted
	}
	if m.usedNonces[nonce] {
		return 0, ErrNonceReused
	}
	if !m.haveGroupKey {
		return 0, ErrNoGroupKey
	}

	m.usedNonces[nonce] = true
	id := m.nextRequestID
	m.nextRequestID++

	m.signingQueue[id] = &SigningRequest{
		ID:          id,
		Nonce:       nonce,
		Payload:     append([]byte(nil), payload...),
		CreatedAt:   now,
		Deadline:    now + m.params.SigningTimeout,
		Status:      SigningWaitingForCommitments,
		PartialSigs: make(map[uint32]PartialSignature),
	}
	return id, nil
}

// SubmitPartialSignature records signer index's contribution to
// request requestID, aggregating into a final threshold signature
// once Threshold-many contributions have arrived.
func (m *Manager) SubmitPartialSignature(requestID uint64, index uint32, r group.Element, s group.Scalar, now uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	signer, ok := m.signers[index]
	if !ok {
		return ErrNotRegistered
	}
	if signer.Status != SignerActive {
		return ErrSignerFrozen
	}

	req, ok := m.signingQueue[requestID]
	if !ok {
		return ErrRequestNotFound
	}
	if _, already := req.PartialSigs[index]; already {
		return ErrAlreadySigned
	}
	if now > req.Deadline {
		return ErrSigningTimeout
	}

	req.PartialSigs[index] = PartialSignature{Index: index, R: r, S: s}
	req.Status = SigningInProgress

	if len(req.PartialSigs) >= m.params.Threshold && req.FinalSig == nil {
		sig, err := aggregatePartialSignatures(req.PartialSigs)
		if err == nil {
			req.FinalSig = sig
			req.Status = SigningComplete

			for idx := range req.PartialSigs {
				if s, ok := m.signers[idx]; ok {
					s.Stats.SigningRoundsParticipated++
					s.Stats.ConsecutiveMisses = 0
					s.Stats.LastParticipationBlock = now
				}
			}
		}
	}
	return nil
}

// aggregatePartialSignatures combines partials into a single
// Signature by the same Lagrange-at-zero weighting osst uses: R and S
// are each the sum of every contribution scaled by its coefficient.
func aggregatePartialSignatures(partials map[uint32]PartialSignature) (*Signature, error) {
	indices := make([]uint32, 0, len(partials))
	for idx := range partials {
		indices = append(indices, idx)
	}
	coeffs, err := osst.ComputeLagrangeCoefficients(indices)
	if err != nil {
		return nil, err
	}

	sAcc := G.NewScalar()
	sAcc.SetUint64(0)
	var rAcc group.Element
	first := true
	for _, idx := range indices {
		p := partials[idx]
		mu := coeffs[idx]

		sTerm := G.NewScalar()
		sTerm.Mul(mu, p.S)
		sAcc.Add(sAcc, sTerm)

		rTerm := G.NewElement()
		rTerm.Mul(p.R, mu)
		if first {
			rAcc = rTerm
			first = false
			continue
		}
		next := G.NewElement()
		next.Add(rAcc, rTerm)
		rAcc = next
	}

	return &Signature{R: rAcc, S: sAcc}, nil
}

// VerifySignature checks a threshold signature against group key y
// and payload, using the same commit-then-respond Schnorr equation
// osst.Verify checks for a single contribution set: g^S = Y^c * R.
func VerifySignature(y group.Element, sig Signature, payload []byte) bool {
	if sig.R == nil || sig.S == nil {
		return false
	}
	rBytes, err := sig.R.MarshalBinary()
	if err != nil {
		return false
	}
	yBytes, err := y.MarshalBinary()
	if err != nil {
		return false
	}
	input := append([]byte("frost-sig"), yBytes...)
	input = append(input, payload...)
	input = append(input, rBytes...)
	c := G.HashToScalar(input, signingChallengeDST)

	lhs := G.NewElement()
	lhs.MulGen(sig.S)

	yc := G.NewElement()
	yc.Mul(y, c)
	rhs := G.NewElement()
	rhs.Add(yc, sig.R)

	return lhs.IsEqual(rhs)
}

func (m *Manager) processExpiredSigningRequestsLocked(now uint64) {
	var failures uint32
	for id, req := range m.signingQueue {
		if now > req.Deadline && req.FinalSig == nil {
			failures++
			for idx, s := range m.signers {
				s.Stats.SigningRoundsAvailable++
				if _, participated := req.PartialSigs[idx]; participated {
					s.Stats.SigningRoundsParticipated++
					s.Stats.ConsecutiveMisses = 0
					s.Stats.LastParticipationBlock = now
				} else {
					s.Stats.ConsecutiveMisses++
				}
			}
			req.Status = SigningFailed
			delete(m.signingQueue, id)
		}
	}
	if failures > 0 {
		m.consecutiveSigningFailures += failures
		if m.consecutiveSigningFailures >= m.params.CircuitBreakerThreshold {
			m.triggerCircuitBreakerLocked(CircuitRepeatedSigningFailure, now)
		}
	}
}
