// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package frost

import (
	"crypto/rand"
	"testing"

	"github.com/cloudflare/circl/group"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/ligerito/osst"
)

func register3(t *testing.T, m *Manager) (idx1, idx2, idx3 uint32) {
	t.Helper()
	var k1, k2, k3 [32]byte
	rand.Read(k1[:])
	rand.Read(k2[:])
	rand.Read(k3[:])
	var err error
	idx1, err = m.RegisterSigner(k1, 0)
	require.NoError(t, err)
	idx2, err = m.RegisterSigner(k2, 0)
	require.NoError(t, err)
	idx3, err = m.RegisterSigner(k3, 0)
	require.NoError(t, err)
	return
}

// TestDkgHappyPath is scenario S5: n=3, t=2 DKG ceremony completes and
// the group public key is established.
func TestDkgHappyPath(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	idx1, idx2, idx3 := register3(t, m)
	require.Equal(t, DkgRound1, m.Phase())

	for _, idx := range []uint32{idx1, idx2, idx3} {
		var c [32]byte
		rand.Read(c[:])
		require.NoError(t, m.SubmitCommitment(idx, c, 1))
	}
	require.Equal(t, DkgRound2, m.Phase())

	for _, from := range []uint32{idx1, idx2, idx3} {
		for _, to := range []uint32{idx1, idx2, idx3} {
			if from == to {
				continue
			}
			require.NoError(t, m.SubmitShare(from, to, []byte("share"), 2))
		}
	}
	require.Equal(t, DkgRound3, m.Phase())

	secrets := map[uint32]group.Scalar{}
	for _, idx := range []uint32{idx1, idx2, idx3} {
		s := G.RandomNonZeroScalar(rand.Reader)
		secrets[idx] = s
		pub := G.NewElement()
		pub.MulGen(s)
		require.NoError(t, m.SubmitVerification(idx, pub, 3))
	}

	require.Equal(t, DkgIdle, m.Phase())
	_, ok := m.GroupPublicKey()
	require.True(t, ok)
	require.True(t, m.BridgeState() == BridgeActive)
}

// TestDkgTimeout is testable property 9: 3 of 3 signers registered,
// none submit a round-1 commitment, and after DkgTimeout blocks the
// ceremony is Failed{Timeout}.
func TestDkgTimeout(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	register3(t, m)
	require.Equal(t, DkgRound1, m.Phase())

	m.OnFinalize(params.DkgTimeout + 1)
	require.Equal(t, DkgFailed, m.Phase())
	require.Equal(t, DkgFailureTimeout, m.DkgFailureReason())
}

func establishGroupKey(t *testing.T, m *Manager, idx1, idx2, idx3 uint32) {
	t.Helper()
	var c [32]byte
	require.NoError(t, m.SubmitCommitment(idx1, c, 1))
	require.NoError(t, m.SubmitCommitment(idx2, c, 1))
	require.NoError(t, m.SubmitCommitment(idx3, c, 1))
	for _, from := range []uint32{idx1, idx2, idx3} {
		for _, to := range []uint32{idx1, idx2, idx3} {
			if from == to {
				continue
			}
			require.NoError(t, m.SubmitShare(from, to, []byte("s"), 2))
		}
	}
	for _, idx := range []uint32{idx1, idx2, idx3} {
		s := G.RandomNonZeroScalar(rand.Reader)
		pub := G.NewElement()
		pub.MulGen(s)
		require.NoError(t, m.SubmitVerification(idx, pub, 3))
	}
	require.Equal(t, DkgIdle, m.Phase())
}

// TestNonceReplayRejected is testable property 10.
func TestNonceReplayRejected(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	idx1, idx2, idx3 := register3(t, m)
	establishGroupKey(t, m, idx1, idx2, idx3)

	var nonce [32]byte
	rand.Read(nonce[:])

	_, err := m.CreateSigningRequest(nonce, []byte("tx"), 10)
	require.NoError(t, err)

	_, err = m.CreateSigningRequest(nonce, []byte("tx2"), 11)
	require.ErrorIs(t, err, ErrNonceReused)
}

// TestSigningAggregationAndVerification runs a full signing ceremony
// and checks the aggregated signature against VerifySignature.
func TestSigningAggregationAndVerification(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	idx1, idx2, idx3 := register3(t, m)
	establishGroupKey(t, m, idx1, idx2, idx3)

	secret := G.NewScalar()
	secret.SetUint64(99)
	y := G.NewElement()
	y.MulGen(secret)

	// degree-1 Shamir split of secret at x=1,2,3; all three signers
	// contribute below, meeting DefaultParams(3)'s threshold of 3.
	coeff := G.RandomNonZeroScalar(rand.Reader)
	shareAt := func(x uint64) group.Scalar {
		xs := G.NewScalar()
		xs.SetUint64(x)
		term := G.NewScalar()
		term.Mul(coeff, xs)
		out := G.NewScalar()
		out.Add(secret, term)
		return out
	}
	shares := map[uint32]group.Scalar{idx1: shareAt(1), idx2: shareAt(2), idx3: shareAt(3)}

	var nonce [32]byte
	rand.Read(nonce[:])
	payload := []byte("signed payload")
	reqID, err := m.CreateSigningRequest(nonce, payload, 10)
	require.NoError(t, err)

	signers := []uint32{idx1, idx2, idx3}
	nonces := map[uint32]group.Scalar{}
	commitments := map[uint32]group.Element{}
	for _, idx := range signers {
		k := G.RandomNonZeroScalar(rand.Reader)
		nonces[idx] = k
		r := G.NewElement()
		r.MulGen(k)
		commitments[idx] = r
	}

	coeffs, err := osst.ComputeLagrangeCoefficients(signers)
	require.NoError(t, err)

	var rAgg group.Element
	first := true
	for _, idx := range signers {
		term := G.NewElement()
		term.Mul(commitments[idx], coeffs[idx])
		if first {
			rAgg = term
			first = false
			continue
		}
		next := G.NewElement()
		next.Add(rAgg, term)
		rAgg = next
	}

	yBytes, err := y.MarshalBinary()
	require.NoError(t, err)
	rBytes, err := rAgg.MarshalBinary()
	require.NoError(t, err)
	challengeInput := append([]byte("frost-sig"), yBytes...)
	challengeInput = append(challengeInput, payload...)
	challengeInput = append(challengeInput, rBytes...)
	c := G.HashToScalar(challengeInput, signingChallengeDST)

	for _, idx := range signers {
		term := G.NewScalar()
		term.Mul(c, shares[idx])
		s := G.NewScalar()
		s.Add(nonces[idx], term)
		require.NoError(t, m.SubmitPartialSignature(reqID, idx, commitments[idx], s, 11))
	}

	req := m.signingQueue[reqID]
	require.NotNil(t, req)
	require.Equal(t, SigningComplete, req.Status)
	require.NotNil(t, req.FinalSig)
	require.True(t, VerifySignature(y, *req.FinalSig, payload))
}

// TestHeartbeatAndOfflineEscalation exercises liveness: a signer who
// never heartbeats becomes Offline, then Frozen, then PendingRemoval
// as blocks pass, while a heartbeating signer stays Active.
func TestHeartbeatAndOfflineEscalation(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	idx1, idx2, idx3 := register3(t, m)
	establishGroupKey(t, m, idx1, idx2, idx3)

	m.OnFinalize(params.HeartbeatInterval + 1)
	s1, _ := m.Signer(idx1)
	require.Equal(t, SignerOffline, s1.Status)

	m.OnFinalize(params.OfflineThreshold + 1)
	s1, _ = m.Signer(idx1)
	require.Equal(t, SignerFrozen, s1.Status)
	require.Equal(t, FreezeMissedHeartbeat, s1.FreezeReason)

	m.OnFinalize(2*params.OfflineThreshold + 1)
	s1, _ = m.Signer(idx1)
	require.Equal(t, SignerPendingRemoval, s1.Status)

	_ = idx2
	_ = idx3
}

// TestHeartbeatReactivatesFrozenSigner checks that a valid heartbeat
// response clears an offline/missed-heartbeat freeze.
func TestHeartbeatReactivatesFrozenSigner(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	var key [32]byte
	rand.Read(key[:])
	idx, err := m.RegisterSigner(key, 0)
	require.NoError(t, err)

	m.OnFinalize(params.HeartbeatInterval + 1)
	s, _ := m.Signer(idx)
	require.Equal(t, SignerOffline, s.Status)

	m.OnFinalize(params.OfflineThreshold + 1)
	s, _ = m.Signer(idx)
	require.Equal(t, SignerFrozen, s.Status)
	require.Equal(t, FreezeMissedHeartbeat, s.FreezeReason)

	resp := expectedHeartbeatResponse(m.heartbeatChallenge, key)
	require.NoError(t, m.SubmitHeartbeat(idx, resp, params.OfflineThreshold+2))

	s, _ = m.Signer(idx)
	require.Equal(t, SignerActive, s.Status)
}

// TestCircuitBreakerHaltResume is scenario S6.
func TestCircuitBreakerHaltResume(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	require.NoError(t, m.Halt(true, 1))
	require.Equal(t, BridgeCircuitBroken, m.BridgeState())

	require.NoError(t, m.Resume(true))
	require.Equal(t, BridgeActive, m.BridgeState())

	require.ErrorIs(t, m.Resume(true), ErrNotHalted)
}

func TestHaltResumeRequireRoot(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	require.ErrorIs(t, m.Halt(false, 1), ErrNotRoot)
}

func TestEmergencyRecoveryOnceOnly(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	require.NoError(t, m.Halt(true, 1))

	var addr [32]byte
	rand.Read(addr[:])
	require.NoError(t, m.InitiateEmergencyRecovery(true, addr, 2))
	require.Equal(t, BridgeEmergencyRecovery, m.BridgeState())

	require.NoError(t, m.Halt(true, 3))
	require.ErrorIs(t, m.InitiateEmergencyRecovery(true, addr, 4), ErrEmergencyRecoveryUsed)
}

// TestReshareCeremony exercises the four-phase reshare ceremony.
func TestReshareCeremony(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	idx1, idx2, idx3 := register3(t, m)
	establishGroupKey(t, m, idx1, idx2, idx3)

	newSigners := []uint32{idx1, idx2, idx3}
	require.NoError(t, m.ForceReshare(true, newSigners, 10))

	var c [32]byte
	for _, idx := range newSigners {
		require.NoError(t, m.SubmitReshareCommitment(idx, c))
	}
	st, ok := m.ReshareState()
	require.True(t, ok)
	require.Equal(t, ReshareSubshares, st.Phase)

	for _, from := range newSigners {
		for _, to := range newSigners {
			if from == to {
				continue
			}
			require.NoError(t, m.SubmitReshareSubshare(from, to, []byte("x")))
		}
	}
	st, _ = m.ReshareState()
	require.Equal(t, ReshareVerification, st.Phase)

	for _, idx := range newSigners {
		require.NoError(t, m.SubmitReshareVerification(idx))
	}
	_, ok = m.ReshareState()
	require.False(t, ok)
}

func TestForceReshareRequiresRoot(t *testing.T) {
	params := DefaultParams(3)
	m := NewManager(params)
	require.ErrorIs(t, m.ForceReshare(false, nil, 0), ErrNotRoot)
}
