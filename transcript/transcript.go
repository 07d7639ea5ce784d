// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package transcript implements component C5: the Fiat-Shamir
// transcript that turns the interactive Ligerito IOP into a
// non-interactive proof. Three instantiations are provided — a
// Merlin-style duplex, a SHA-256 counter construction, and an
// optional BLAKE2b variant for constrained environments — all
// satisfying the same Transcript interface. They are deterministic
// given their call sequence but are NOT mutually compatible: a proof
// absorbed with one must be verified with the same construction.
package transcript

import (
	"encoding/binary"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/luxfi/ligerito/merkle"
)

// Transcript is the Fiat-Shamir sponge interface shared by every
// hash instantiation.
type Transcript interface {
	AbsorbRoot(label string, root merkle.Digest)
	AbsorbBytes(label string, data []byte)
	AbsorbElemF32(label string, e binaryfield.F32)
	AbsorbElemF128(label string, e binaryfield.F128)
	AbsorbElemsF128(label string, es []binaryfield.F128)
	ChallengeF32(label string) binaryfield.F32
	ChallengeF128(label string) binaryfield.F128
	// ChallengeIndices squeezes count distinct indices in
	// [0, upperBound), drawing more bytes on collision.
	ChallengeIndices(label string, count, upperBound int) []int
}

// challengeIndices is the shared distinct-index sampling logic: every
// instantiation squeezes 8 bytes per attempt via squeezeFn and retries
// under a sub-label on collision, so the implementation differs only
// in how squeezeFn turns a label into bytes.
func challengeIndices(label string, count, upperBound int, squeezeFn func(string, int) []byte) []int {
	if upperBound <= 0 || count > upperBound {
		return nil
	}
	seen := make(map[int]struct{}, count)
	out := make([]int, 0, count)
	attempt := 0
	for len(out) < count {
		sub := label + "#" + itoa(attempt)
		raw := squeezeFn(sub, 8)
		v := int(binary.LittleEndian.Uint64(raw) % uint64(upperBound))
		attempt++
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
