// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transcript

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/luxfi/ligerito/merkle"
)

// SHA256 is the counter-construction transcript: state is a running
// 32-byte digest seeded by a u64 nonce; every absorb folds in
// sha256(state || label || data); every squeeze derives output bytes
// from sha256(state || label || counter) for an incrementing counter,
// then folds the final counter block back into state.
type SHA256 struct {
	state [32]byte
}

func NewSHA256(domainLabel string, nonce uint64) *SHA256 {
	h := sha256.New()
	h.Write([]byte("ligerito/sha256/"))
	h.Write([]byte(domainLabel))
	var nb [8]byte
	binary.LittleEndian.PutUint64(nb[:], nonce)
	h.Write(nb[:])
	var t SHA256
	copy(t.state[:], h.Sum(nil))
	return &t
}

func (t *SHA256) AbsorbRoot(label string, root merkle.Digest) {
	t.absorb(label, root[:])
}

func (t *SHA256) AbsorbBytes(label string, data []byte) {
	t.absorb(label, data)
}

func (t *SHA256) AbsorbElemF32(label string, e binaryfield.F32) {
	t.absorb(label, e.Bytes())
}

func (t *SHA256) AbsorbElemF128(label string, e binaryfield.F128) {
	t.absorb(label, e.Bytes())
}

func (t *SHA256) AbsorbElemsF128(label string, es []binaryfield.F128) {
	h := sha256.New()
	h.Write(t.state[:])
	h.Write([]byte(label))
	for _, e := range es {
		h.Write(e.Bytes())
	}
	copy(t.state[:], h.Sum(nil))
}

func (t *SHA256) absorb(label string, data []byte) {
	h := sha256.New()
	h.Write(t.state[:])
	h.Write([]byte(label))
	h.Write(data)
	copy(t.state[:], h.Sum(nil))
}

func (t *SHA256) squeeze(label string, n int) []byte {
	out := make([]byte, 0, n)
	var counter uint64
	var last []byte
	for len(out) < n {
		h := sha256.New()
		h.Write(t.state[:])
		h.Write([]byte(label))
		var cb [8]byte
		binary.LittleEndian.PutUint64(cb[:], counter)
		h.Write(cb[:])
		last = h.Sum(nil)
		out = append(out, last...)
		counter++
	}
	copy(t.state[:], last) // ratchet forward with the final block
	return out[:n]
}

func (t *SHA256) ChallengeF32(label string) binaryfield.F32 {
	b := t.squeeze(label, 4)
	return binaryfield.F32FromUint32(binary.LittleEndian.Uint32(b))
}

func (t *SHA256) ChallengeF128(label string) binaryfield.F128 {
	b := t.squeeze(label, 16)
	return binaryfield.F128FromBytes16(b)
}

func (t *SHA256) ChallengeIndices(label string, count, upperBound int) []int {
	return challengeIndices(label, count, upperBound, t.squeeze)
}
