// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package osst implements component C9: verification of One-Step
// Schnorr Threshold contributions over a prime-order group. The
// group is Ristretto255 (github.com/cloudflare/circl/group) standing
// in for the originally specified Pallas curve, which has no Go
// implementation in the retrieved pack.
package osst

import "github.com/cloudflare/circl/group"

// G is the concrete prime-order group every osst operation runs
// against.
var G = group.Ristretto255

// Contribution is one signer's share of a threshold identification:
// a 1-based index, a commitment point U, and a scalar response S.
type Contribution struct {
	Index uint32
	U     group.Element
	S     group.Scalar
}
