// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsfft

import (
	"fmt"

	"github.com/luxfi/ligerito/binaryfield"
)

// LogInvRate is rho in spec terms: block-length = message-length << LogInvRate.
const LogInvRate = 2

func domainF32(i int, basis []binaryfield.F32, shift binaryfield.F32) binaryfield.F32 {
	return DomainPointF32(i, basis, shift)
}

// Encode performs systematic Reed-Solomon encoding: message (length
// 2^k) is inverse-transformed to its coefficient representation,
// zero-padded to length 2^(k+LogInvRate), then forward-transformed
// with shift=0. Because shift=0 is used for both the IFFT and the
// FFT, the codeword's first 2^k entries reproduce the original
// message exactly (the systematic property the test suite asserts).
func Encode(message []binaryfield.F32) ([]binaryfield.F32, error) {
	k := bitLen(len(message))
	if len(message) != 1<<uint(k) {
		return nil, fmt.Errorf("rsfft: message length %d is not a power of two", len(message))
	}
	n := k + LogInvRate
	msgBasis := StandardBasisF32(k)
	zero := binaryfield.F32Zero()
	coeffs := IFFT[binaryfield.F32](message, msgBasis, zero, domainF32)

	padded := make([]binaryfield.F32, 1<<uint(n))
	copy(padded, coeffs)

	blockBasis := StandardBasisF32(n)
	return FFT[binaryfield.F32](padded, blockBasis, zero, domainF32), nil
}

// EncodeInPlace encodes message into dst, which must already be sized
// 1<<(bitLen(len(message))+LogInvRate).
func EncodeInPlace(dst []binaryfield.F32, message []binaryfield.F32) error {
	codeword, err := Encode(message)
	if err != nil {
		return err
	}
	if len(dst) != len(codeword) {
		return fmt.Errorf("rsfft: destination length %d does not match codeword length %d", len(dst), len(codeword))
	}
	copy(dst, codeword)
	return nil
}

// EncodeNonSystematic pre-weights each message position i by
// pi_i = product of s_k(v_k) over set bits k of i, then applies the
// forward transform directly (no IFFT step). The resulting codeword
// does not reproduce the message at any fixed set of positions; it is
// used where only the RS-distance guarantee is needed, not systematic
// recovery.
func EncodeNonSystematic(message []binaryfield.F32) ([]binaryfield.F32, error) {
	k := bitLen(len(message))
	if len(message) != 1<<uint(k) {
		return nil, fmt.Errorf("rsfft: message length %d is not a power of two", len(message))
	}
	n := k + LogInvRate
	msgBasis := StandardBasisF32(k)
	sk := EvalSkAtVks(msgBasis)
	pis := ComputePis(sk)

	weighted := make([]binaryfield.F32, 1<<uint(n))
	for i, m := range message {
		weighted[i] = m.Mul(pis[i])
	}

	blockBasis := StandardBasisF32(n)
	zero := binaryfield.F32Zero()
	return FFT[binaryfield.F32](weighted, blockBasis, zero, domainF32), nil
}

func bitLen(n int) int {
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	return k
}
