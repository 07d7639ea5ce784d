// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ligerito implements components C7 and C8: the recursive
// Ligerito prover and verifier built on top of the additive-NTT
// Reed-Solomon encoder (rsfft), Merkle commitments (merkle), the
// Fiat-Shamir transcript (transcript) and the sumcheck kernel
// (sumcheck).
package ligerito

import "fmt"

// Config names the shape of a Ligerito proof over a polynomial of
// length 2^(InitialDim+InitialK): the initial matrix reshape, and for
// each of RecursiveSteps recursive rounds, the column width (Ks[i])
// and resulting row-count dimension (LogDims[i]) of that round's
// matrix. Ks[i] doubles as the number of interactive sumcheck-fold
// rounds run at step i, since folding a dimension-D_i polynomial by
// Ks[i] variables produces the dimension-LogDims[i] polynomial that
// enters step i+1 — the invariant LogDims[i]+Ks[i] == D_i (with
// D_0 = InitialDim, D_{i+1} = LogDims[i]) must hold for every i.
type Config struct {
	InitialDim     int
	InitialK       int
	RecursiveSteps int
	Ks             []int
	LogDims        []int
}

// Validate checks the Config's internal shape invariant.
func (c Config) Validate() error {
	if len(c.Ks) != c.RecursiveSteps || len(c.LogDims) != c.RecursiveSteps {
		return fmt.Errorf("ligerito: config names %d recursive steps but Ks has %d and LogDims has %d entries", c.RecursiveSteps, len(c.Ks), len(c.LogDims))
	}
	d := c.InitialDim
	for i := 0; i < c.RecursiveSteps; i++ {
		if c.LogDims[i]+c.Ks[i] != d {
			return fmt.Errorf("ligerito: step %d: LogDims[%d]+Ks[%d] = %d+%d != %d (entering dimension)", i, i, i, c.LogDims[i], c.Ks[i], d)
		}
		d = c.LogDims[i]
	}
	return nil
}

// MessageLen returns the length the input polynomial must have.
func (c Config) MessageLen() int {
	return 1 << uint(c.InitialDim+c.InitialK)
}

// FinalDim returns the dimension of the innermost folded polynomial
// (yr) absorbed at the end of the proof.
func (c Config) FinalDim() int {
	if c.RecursiveSteps == 0 {
		return c.InitialDim
	}
	return c.LogDims[c.RecursiveSteps-1]
}

// HardcodedConfig12 is the length-4096 (2^12) preset exercised by the
// end-to-end test scenarios: an initial 64x64 matrix, folded by two
// recursive steps of width 8 each down to a singleton innermost
// opening.
func HardcodedConfig12() Config {
	return Config{
		InitialDim:     6,
		InitialK:       6,
		RecursiveSteps: 2,
		Ks:             []int{3, 3},
		LogDims:        []int{3, 0},
	}
}
