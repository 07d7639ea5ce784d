// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsfft

import (
	"fmt"

	"github.com/luxfi/ligerito/binaryfield"
)

// EncodeF128 is the extension-field twin of Encode: systematic
// Reed-Solomon encoding of a message of F128 elements. Recursive
// Ligerito rounds commit to matrices whose rows already live in F128
// (they are produced by folding a base-field row against extension-
// field challenges), so the row encoder used from round one onward
// must operate over F128 directly rather than embedding afterward.
func EncodeF128(message []binaryfield.F128) ([]binaryfield.F128, error) {
	k := bitLen(len(message))
	if len(message) != 1<<uint(k) {
		return nil, fmt.Errorf("rsfft: message length %d is not a power of two", len(message))
	}
	n := k + LogInvRate
	msgBasis := StandardBasisF128(k)
	zero := binaryfield.F128Zero()
	coeffs := IFFT[binaryfield.F128](message, msgBasis, zero, domainF128)

	padded := make([]binaryfield.F128, 1<<uint(n))
	copy(padded, coeffs)

	blockBasis := StandardBasisF128(n)
	return FFT[binaryfield.F128](padded, blockBasis, zero, domainF128), nil
}
