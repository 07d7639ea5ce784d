// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsfft

import (
	"testing"

	"github.com/luxfi/ligerito/binaryfield"
	"github.com/stretchr/testify/require"
)

func TestFFTIFFTRoundTrip(t *testing.T) {
	shifts := []binaryfield.F32{
		binaryfield.F32Zero(),
		binaryfield.F32FromUint32(1),
		binaryfield.F32FromUint32(0xABCD),
	}

	for _, m := range []int{2, 3, 4, 8} {
		basis := StandardBasisF32(m)
		size := 1 << uint(m)
		for _, shift := range shifts {
			coeffs := make([]binaryfield.F32, size)
			for i := range coeffs {
				coeffs[i] = binaryfield.F32FromUint32(uint32(i*97 + 11))
			}

			evals := FFT[binaryfield.F32](coeffs, basis, shift, domainF32)
			recovered := IFFT[binaryfield.F32](evals, basis, shift, domainF32)

			for i := range coeffs {
				require.True(t, coeffs[i].Equal(recovered[i]),
					"round trip mismatch at m=%d shift=%v index=%d", m, shift, i)
			}
		}
	}
}
