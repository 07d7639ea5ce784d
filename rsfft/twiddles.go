// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsfft

import "github.com/luxfi/ligerito/binaryfield"

// EvalSkAtVks computes the table sk[k][j] = s_k(v_j) for 0 <= k <= j < n,
// where s_0(x) = x and s_{k+1}(x) = s_k(x)^2 + s_k(v_k)*s_k(x). Because
// s_k is GF(2)-linear, it suffices to track its value at each basis
// vector; the recurrence specializes to
//
//	s_{k+1}(v_j) = s_k(v_j) * (s_k(v_j) + s_k(v_k))   for j > k
//
// which is the iterative squaring recurrence used to precompute
// twiddle factors without ever representing s_k as an explicit
// polynomial.
func EvalSkAtVks(basis []binaryfield.F32) [][]binaryfield.F32 {
	n := len(basis)
	sk := make([][]binaryfield.F32, n)
	sk[0] = make([]binaryfield.F32, n)
	copy(sk[0], basis)
	for k := 0; k < n-1; k++ {
		sk[k+1] = make([]binaryfield.F32, n)
		base := sk[k][k]
		for j := k + 1; j < n; j++ {
			v := sk[k][j]
			sk[k+1][j] = v.Mul(v.Add(base))
		}
	}
	return sk
}

// ComputeTwiddles returns, for each level k in 0..len(basis), the value
// s_k(shift): the twiddle a stage-k butterfly applies to the constant
// (shift-dependent) part of its domain offset. sk is the table
// produced by EvalSkAtVks for the same basis.
func ComputeTwiddles(basis []binaryfield.F32, shift binaryfield.F32, sk [][]binaryfield.F32) []binaryfield.F32 {
	n := len(basis)
	out := make([]binaryfield.F32, n)
	for k := 0; k < n; k++ {
		// s_k is linear: s_k(shift) = XOR over set bits j of shift's
		// representation in the basis of s_k(v_j). shift is itself a
		// field element, not a basis-coordinate vector, so expand its
		// bit pattern against the standard basis index positions.
		acc := binaryfield.F32Zero()
		sv := shift.Uint32()
		for j := k; j < n; j++ {
			if (sv>>uint(j))&1 == 1 {
				acc = acc.Add(sk[k][j])
			}
		}
		out[k] = acc
	}
	return out
}

// ComputePis returns pi_i = product over set bits k of i of s_k(v_k),
// the scalar non-systematic encoding uses to pre-weight message
// position i before applying the forward transform.
func ComputePis(sk [][]binaryfield.F32) []binaryfield.F32 {
	n := len(sk)
	size := 1 << uint(n)
	pis := make([]binaryfield.F32, size)
	pis[0] = binaryfield.F32One()
	for i := 1; i < size; i++ {
		low := i & (i - 1)
		bit := i &^ low
		k := bitIndex(bit)
		pis[i] = pis[low].Mul(sk[k][k])
	}
	return pis
}

func bitIndex(x int) int {
	k := 0
	for x > 1 {
		x >>= 1
		k++
	}
	return k
}

// ShortFromLongTwiddles extracts the k per-level twiddles needed for a
// message of length 2^k from a long domain-indexed twiddle table of
// size 2^n (n >= k), via the deterministic pattern: start at offset
// 2^(n-k)-1, then double the jump between successive indices. This
// mirrors the index-selection used by the short-from-long extraction
// in the Reed-Solomon reference implementation: each output entry
// picks out the long table's representative for the corresponding
// short-transform level.
func ShortFromLongTwiddles(long []binaryfield.F32, n, k int) []binaryfield.F32 {
	out := make([]binaryfield.F32, k)
	idx := (1 << uint(n-k)) - 1
	jump := 1 << uint(n-k)
	for i := range out {
		out[i] = long[idx]
		idx += jump
		jump <<= 1
	}
	return out
}
