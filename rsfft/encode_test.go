// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsfft

import (
	"testing"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/stretchr/testify/require"
)

func patternMessage(n int) []binaryfield.F32 {
	msg := make([]binaryfield.F32, n)
	for i := range msg {
		msg[i] = binaryfield.F32FromUint32(uint32(i*7 + 13))
	}
	return msg
}

func TestEncodeIsSystematic(t *testing.T) {
	msg := patternMessage(16)
	codeword, err := Encode(msg)
	require.NoError(t, err)
	require.Len(t, codeword, 16<<LogInvRate)
	for i := range msg {
		require.True(t, msg[i].Equal(codeword[i]), "systematic position %d must reproduce message", i)
	}
}

func TestEncodeIsLinear(t *testing.T) {
	a := patternMessage(8)
	b := make([]binaryfield.F32, 8)
	for i := range b {
		b[i] = binaryfield.F32FromUint32(uint32(i*3 + 1))
	}

	sum := make([]binaryfield.F32, 8)
	for i := range sum {
		sum[i] = a[i].Add(b[i])
	}

	encA, err := Encode(a)
	require.NoError(t, err)
	encB, err := Encode(b)
	require.NoError(t, err)
	encSum, err := Encode(sum)
	require.NoError(t, err)

	for i := range encSum {
		require.True(t, encSum[i].Equal(encA[i].Add(encB[i])), "RS encoding must be F-linear at position %d", i)
	}
}

func TestEncodeRejectsNonPowerOfTwo(t *testing.T) {
	_, err := Encode(make([]binaryfield.F32, 5))
	require.Error(t, err)
}
