// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transcript

import (
	"encoding/binary"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/luxfi/ligerito/merkle"
	"golang.org/x/crypto/blake2b"
)

// Blake2b targets constrained environments where BLAKE3's SIMD
// advantage doesn't pay for its extra code size. It follows the same
// counter-construction shape as SHA256, but folds with BLAKE2b-256.
type Blake2b struct {
	state [32]byte
}

func NewBlake2b(domainLabel string, nonce uint64) *Blake2b {
	h, _ := blake2b.New256(nil)
	h.Write([]byte("ligerito/blake2b/"))
	h.Write([]byte(domainLabel))
	var nb [8]byte
	binary.LittleEndian.PutUint64(nb[:], nonce)
	h.Write(nb[:])
	var t Blake2b
	copy(t.state[:], h.Sum(nil))
	return &t
}

func (t *Blake2b) absorb(label string, data []byte) {
	h, _ := blake2b.New256(nil)
	h.Write(t.state[:])
	h.Write([]byte(label))
	h.Write(data)
	copy(t.state[:], h.Sum(nil))
}

func (t *Blake2b) AbsorbRoot(label string, root merkle.Digest) { t.absorb(label, root[:]) }
func (t *Blake2b) AbsorbBytes(label string, data []byte)       { t.absorb(label, data) }
func (t *Blake2b) AbsorbElemF32(label string, e binaryfield.F32) {
	t.absorb(label, e.Bytes())
}
func (t *Blake2b) AbsorbElemF128(label string, e binaryfield.F128) {
	t.absorb(label, e.Bytes())
}
func (t *Blake2b) AbsorbElemsF128(label string, es []binaryfield.F128) {
	h, _ := blake2b.New256(nil)
	h.Write(t.state[:])
	h.Write([]byte(label))
	for _, e := range es {
		h.Write(e.Bytes())
	}
	copy(t.state[:], h.Sum(nil))
}

func (t *Blake2b) squeeze(label string, n int) []byte {
	out := make([]byte, 0, n)
	var counter uint64
	var last []byte
	for len(out) < n {
		h, _ := blake2b.New256(nil)
		h.Write(t.state[:])
		h.Write([]byte(label))
		var cb [8]byte
		binary.LittleEndian.PutUint64(cb[:], counter)
		h.Write(cb[:])
		last = h.Sum(nil)
		out = append(out, last...)
		counter++
	}
	copy(t.state[:], last)
	return out[:n]
}

func (t *Blake2b) ChallengeF32(label string) binaryfield.F32 {
	b := t.squeeze(label, 4)
	return binaryfield.F32FromUint32(binary.LittleEndian.Uint32(b))
}

func (t *Blake2b) ChallengeF128(label string) binaryfield.F128 {
	b := t.squeeze(label, 16)
	return binaryfield.F128FromBytes16(b)
}

func (t *Blake2b) ChallengeIndices(label string, count, upperBound int) []int {
	return challengeIndices(label, count, upperBound, t.squeeze)
}
