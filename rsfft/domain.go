// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rsfft implements the additive NTT (binary FFT) and the
// Reed-Solomon encoder built on top of it (components C2 and C3):
// subspace-basis twiddle precomputation, forward/inverse transforms
// over an affine GF(2)-subspace domain, and systematic / non-systematic
// encoding of base-field messages into Reed-Solomon codewords.
package rsfft

import "github.com/luxfi/ligerito/binaryfield"

// StandardBasisF32 returns the standard basis v_0..v_{m-1} of F32 as a
// GF(2)-vector space: v_i is the field element with only bit i set.
func StandardBasisF32(m int) []binaryfield.F32 {
	out := make([]binaryfield.F32, m)
	for i := range out {
		out[i] = binaryfield.F32FromUint32(uint32(1) << uint(i))
	}
	return out
}

// DomainPointF32 returns the i-th point of the affine subspace
// shift + span(basis): the XOR of shift with the subset of basis
// vectors selected by the set bits of i.
func DomainPointF32(i int, basis []binaryfield.F32, shift binaryfield.F32) binaryfield.F32 {
	p := shift
	for k, v := range basis {
		if (i>>uint(k))&1 == 1 {
			p = p.Add(v)
		}
	}
	return p
}

// DomainF32 returns all 2^len(basis) points of shift + span(basis), in
// index order.
func DomainF32(basis []binaryfield.F32, shift binaryfield.F32) []binaryfield.F32 {
	out := make([]binaryfield.F32, 1<<uint(len(basis)))
	for i := range out {
		out[i] = DomainPointF32(i, basis, shift)
	}
	return out
}
