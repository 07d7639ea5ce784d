// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transcript

import (
	"testing"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/stretchr/testify/require"
)

func newAll() []Transcript {
	return []Transcript{
		NewMerlin("test"),
		NewSHA256("test", 42),
		NewBlake2b("test", 42),
	}
}

func exercise(t Transcript) binaryfield.F128 {
	t.AbsorbBytes("domain", []byte("ligerito"))
	t.AbsorbElemF32("x", binaryfield.F32FromUint32(7))
	t.AbsorbElemF128("y", binaryfield.F128FromUint64(99))
	return t.ChallengeF128("challenge")
}

func TestTranscriptsAreDeterministic(t *testing.T) {
	for _, mk := range []func() Transcript{
		func() Transcript { return NewMerlin("test") },
		func() Transcript { return NewSHA256("test", 42) },
		func() Transcript { return NewBlake2b("test", 42) },
	} {
		a := exercise(mk())
		b := exercise(mk())
		require.True(t, a.Equal(b), "same call sequence must yield the same challenge")
	}
}

func TestTranscriptsDivergeAcrossAbsorbedData(t *testing.T) {
	one := NewSHA256("test", 1)
	one.AbsorbBytes("msg", []byte("a"))
	a := one.ChallengeF128("c")

	two := NewSHA256("test", 1)
	two.AbsorbBytes("msg", []byte("b"))
	b := two.ChallengeF128("c")

	require.False(t, a.Equal(b))
}

func TestTranscriptInstantiationsAreNotInterchangeable(t *testing.T) {
	results := make(map[string]binaryfield.F128)
	results["merlin"] = exercise(NewMerlin("test"))
	results["sha256"] = exercise(NewSHA256("test", 42))
	results["blake2b"] = exercise(NewBlake2b("test", 42))

	require.False(t, results["merlin"].Equal(results["sha256"]))
	require.False(t, results["merlin"].Equal(results["blake2b"]))
	require.False(t, results["sha256"].Equal(results["blake2b"]))
}

func TestChallengeIndicesAreDistinct(t *testing.T) {
	for _, tr := range newAll() {
		indices := tr.ChallengeIndices("queries", 10, 64)
		require.Len(t, indices, 10)
		seen := make(map[int]bool)
		for _, i := range indices {
			require.False(t, seen[i], "index %d repeated", i)
			require.True(t, i >= 0 && i < 64)
			seen[i] = true
		}
	}
}
