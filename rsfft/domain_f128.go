// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rsfft

import "github.com/luxfi/ligerito/binaryfield"

// StandardBasisF128 returns the standard basis v_0..v_{m-1} of F128 as
// a GF(2)-vector space, mirroring StandardBasisF32. Recursive Ligerito
// rounds commit and encode matrices whose rows live in the extension
// field, so the transform machinery needs an F128 domain as well as
// the base-field one.
func StandardBasisF128(m int) []binaryfield.F128 {
	out := make([]binaryfield.F128, m)
	for i := range out {
		out[i] = binaryfield.F128FromUint64(uint64(1) << uint(i))
	}
	return out
}

func domainF128(i int, basis []binaryfield.F128, shift binaryfield.F128) binaryfield.F128 {
	p := shift
	for k, v := range basis {
		if (i>>uint(k))&1 == 1 {
			p = p.Add(v)
		}
	}
	return p
}
