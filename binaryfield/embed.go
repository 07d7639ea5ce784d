// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binaryfield

// EmbedF32 lifts a base-field element into the extension field by
// zero-padding its high bits. Addition commutes with EmbedF32:
// EmbedF32(a+b) == EmbedF32(a)+EmbedF32(b), since both are plain XOR
// on the coefficient vector. Multiplication does NOT commute with this
// embedding in general — F32 reduces modulo its own degree-32
// polynomial while the padded value is reduced modulo F128's
// degree-128 polynomial — so EmbedF32 is an additive group embedding,
// not a ring embedding. Callers needing a field element that behaves
// identically under both operations must lift before multiplying,
// never multiply in F32 and embed the result.
func EmbedF32(x F32) F128 {
	return F128FromUint64(uint64(x))
}
