// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ligerito

import (
	"testing"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/luxfi/ligerito/transcript"
	"github.com/stretchr/testify/require"
)

func proveAndVerify(t *testing.T, cfg Config, poly []binaryfield.F32) bool {
	t.Helper()
	proof, err := Prove(cfg, poly, transcript.NewMerlin("ligerito-test"))
	require.NoError(t, err)
	return Verify(cfg, proof, transcript.NewMerlin("ligerito-test"))
}

func allOnes(n int) []binaryfield.F32 {
	out := make([]binaryfield.F32, n)
	for i := range out {
		out[i] = binaryfield.F32One()
	}
	return out
}

func patterned(n int) []binaryfield.F32 {
	out := make([]binaryfield.F32, n)
	for i := range out {
		out[i] = binaryfield.F32FromUint32(uint32(i*7 + 13))
	}
	return out
}

// TestHardcodedConfig12AllOnes is scenario S1.
func TestHardcodedConfig12AllOnes(t *testing.T) {
	cfg := HardcodedConfig12()
	poly := allOnes(cfg.MessageLen())
	require.True(t, proveAndVerify(t, cfg, poly))
}

// TestHardcodedConfig12Zero is scenario S2.
func TestHardcodedConfig12Zero(t *testing.T) {
	cfg := HardcodedConfig12()
	poly := make([]binaryfield.F32, cfg.MessageLen())
	require.True(t, proveAndVerify(t, cfg, poly))
}

// TestHardcodedConfig12Patterned is scenario S3 (the verifying half).
func TestHardcodedConfig12Patterned(t *testing.T) {
	cfg := HardcodedConfig12()
	poly := patterned(cfg.MessageLen())
	require.True(t, proveAndVerify(t, cfg, poly))
}

// TestHardcodedConfig12PatternedTamperedInput is scenario S3's second
// half: a single flipped input coefficient before proving changes the
// proof but the proof for the flipped input still verifies against
// itself (testable property 4 holds for every input); property 5
// (soundness) is exercised in TestSoundnessBitFlip below by perturbing
// the proof after it has been produced, not the input before.
func TestHardcodedConfig12PatternedTamperedInput(t *testing.T) {
	cfg := HardcodedConfig12()
	poly := patterned(cfg.MessageLen())
	poly[0] = poly[0].Add(binaryfield.F32One())
	require.True(t, proveAndVerify(t, cfg, poly))
}

// TestSoundnessBitFlip is testable property 5: flipping a single bit
// of the innermost polynomial yr in the proof must make Verify return
// false.
func TestSoundnessBitFlip(t *testing.T) {
	cfg := HardcodedConfig12()
	poly := patterned(cfg.MessageLen())
	proof, err := Prove(cfg, poly, transcript.NewMerlin("ligerito-test"))
	require.NoError(t, err)
	require.True(t, Verify(cfg, proof, transcript.NewMerlin("ligerito-test")))

	tampered := *proof
	tampered.Yr = append([]binaryfield.F128(nil), proof.Yr...)
	tampered.Yr[0] = tampered.Yr[0].Add(binaryfield.F128One())
	require.False(t, Verify(cfg, &tampered, transcript.NewMerlin("ligerito-test")))
}

// TestSoundnessTamperedOpenedRow perturbs a single extension-field
// element inside an opened recursive row rather than yr, exercising the
// Merkle-inclusion and RS-validity checks instead of the final
// consistency check.
func TestSoundnessTamperedOpenedRow(t *testing.T) {
	cfg := HardcodedConfig12()
	poly := patterned(cfg.MessageLen())
	proof, err := Prove(cfg, poly, transcript.NewMerlin("ligerito-test"))
	require.NoError(t, err)
	require.True(t, Verify(cfg, proof, transcript.NewMerlin("ligerito-test")))

	tampered := *proof
	tampered.RecursiveOpenings = append([]RowOpeningF128(nil), proof.RecursiveOpenings...)
	opening := tampered.RecursiveOpenings[0]
	rows := append([][]binaryfield.F128(nil), opening.Rows...)
	row := append([]binaryfield.F128(nil), rows[0]...)
	row[0] = row[0].Add(binaryfield.F128One())
	rows[0] = row
	opening.Rows = rows
	tampered.RecursiveOpenings[0] = opening

	require.False(t, Verify(cfg, &tampered, transcript.NewMerlin("ligerito-test")))
}

func TestConfigValidateRejectsShapeMismatch(t *testing.T) {
	cfg := HardcodedConfig12()
	cfg.LogDims = []int{2, 0}
	require.Error(t, cfg.Validate())
}
