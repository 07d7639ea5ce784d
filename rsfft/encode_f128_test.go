// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsfft

import (
	"testing"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/stretchr/testify/require"
)

func TestEncodeF128Systematic(t *testing.T) {
	message := []binaryfield.F128{
		binaryfield.F128FromUint64(1),
		binaryfield.F128FromUint64(2),
		binaryfield.F128FromUint64(3),
		binaryfield.F128FromUint64(4),
	}
	codeword, err := EncodeF128(message)
	require.NoError(t, err)
	require.Len(t, codeword, len(message)<<uint(LogInvRate))
	for i, m := range message {
		require.True(t, codeword[i].Equal(m))
	}
}

func TestEncodeF128RejectsNonPowerOfTwo(t *testing.T) {
	_, err := EncodeF128([]binaryfield.F128{binaryfield.F128FromUint64(1), binaryfield.F128FromUint64(2), binaryfield.F128FromUint64(3)})
	require.Error(t, err)
}
