// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transcript

import (
	"encoding/binary"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/luxfi/ligerito/merkle"
	"github.com/zeebo/blake3"
)

// Merlin is a Merlin-style duplex transcript built on BLAKE3: every
// absorb writes label, length-prefix and data into the running
// hasher state; every squeeze finalizes a digest, expands it to the
// requested length via a counter-indexed hash, then ratchets the
// state forward by re-absorbing the digest so the same bytes can
// never be squeezed twice.
type Merlin struct {
	state *blake3.Hasher
}

func NewMerlin(domainLabel string) *Merlin {
	h := blake3.New()
	h.Write([]byte("ligerito/merlin/"))
	h.Write([]byte(domainLabel))
	return &Merlin{state: h}
}

func (t *Merlin) writeLabeled(label string, data []byte) {
	t.state.Write([]byte(label))
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(data)))
	t.state.Write(lenBuf[:])
	t.state.Write(data)
}

func (t *Merlin) AbsorbRoot(label string, root merkle.Digest) {
	t.writeLabeled(label, root[:])
}

func (t *Merlin) AbsorbBytes(label string, data []byte) {
	t.writeLabeled(label, data)
}

func (t *Merlin) AbsorbElemF32(label string, e binaryfield.F32) {
	t.writeLabeled(label, e.Bytes())
}

func (t *Merlin) AbsorbElemF128(label string, e binaryfield.F128) {
	t.writeLabeled(label, e.Bytes())
}

func (t *Merlin) AbsorbElemsF128(label string, es []binaryfield.F128) {
	data := make([]byte, 0, 16*len(es))
	for _, e := range es {
		data = append(data, e.Bytes()...)
	}
	t.writeLabeled(label, data)
}

func (t *Merlin) squeeze(label string, n int) []byte {
	t.state.Write([]byte(label))
	digest := t.state.Sum(nil)

	out := make([]byte, 0, n)
	for counter := uint64(0); len(out) < n; counter++ {
		h := blake3.New()
		h.Write(digest)
		var cb [8]byte
		binary.LittleEndian.PutUint64(cb[:], counter)
		h.Write(cb[:])
		out = append(out, h.Sum(nil)...)
	}
	t.state.Write(digest) // ratchet
	return out[:n]
}

func (t *Merlin) ChallengeF32(label string) binaryfield.F32 {
	b := t.squeeze(label, 4)
	return binaryfield.F32FromUint32(binary.LittleEndian.Uint32(b))
}

func (t *Merlin) ChallengeF128(label string) binaryfield.F128 {
	b := t.squeeze(label, 16)
	return binaryfield.F128FromBytes16(b)
}

func (t *Merlin) ChallengeIndices(label string, count, upperBound int) []int {
	return challengeIndices(label, count, upperBound, t.squeeze)
}
