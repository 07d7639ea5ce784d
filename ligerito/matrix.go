// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ligerito

import "github.com/luxfi/ligerito/binaryfield"

// reshapeF32 splits a length rows*cols vector into rows contiguous
// chunks of length cols (row-major).
func reshapeF32(poly []binaryfield.F32, rows, cols int) [][]binaryfield.F32 {
	out := make([][]binaryfield.F32, rows)
	for r := 0; r < rows; r++ {
		out[r] = poly[r*cols : (r+1)*cols]
	}
	return out
}

// reshapeF128 is reshapeF32's extension-field twin.
func reshapeF128(poly []binaryfield.F128, rows, cols int) [][]binaryfield.F128 {
	out := make([][]binaryfield.F128, rows)
	for r := 0; r < rows; r++ {
		out[r] = poly[r*cols : (r+1)*cols]
	}
	return out
}
