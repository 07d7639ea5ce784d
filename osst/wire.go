// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package osst

import (
	"encoding/binary"
	"fmt"
)

// ContributionSize is the wire length of one marshaled contribution:
// a 4-byte big-endian index, a 32-byte compressed curve point, and a
// 32-byte scalar.
const ContributionSize = 4 + 32 + 32

// MarshalBinary encodes c as index(4) || U(32) || S(32).
func (c Contribution) MarshalBinary() ([]byte, error) {
	uBytes, err := c.U.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("osst: marshaling commitment: %w", err)
	}
	sBytes, err := c.S.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("osst: marshaling response: %w", err)
	}
	if len(uBytes) != 32 || len(sBytes) != 32 {
		return nil, fmt.Errorf("osst: unexpected encoded length (U=%d S=%d)", len(uBytes), len(sBytes))
	}

	out := make([]byte, ContributionSize)
	binary.BigEndian.PutUint32(out[:4], c.Index)
	copy(out[4:36], uBytes)
	copy(out[36:68], sBytes)
	return out, nil
}

// UnmarshalBinary decodes c from the wire format produced by
// MarshalBinary.
func (c *Contribution) UnmarshalBinary(data []byte) error {
	if len(data) != ContributionSize {
		return fmt.Errorf("osst: contribution must be %d bytes, got %d", ContributionSize, len(data))
	}
	c.Index = binary.BigEndian.Uint32(data[:4])

	u := G.NewElement()
	if err := u.UnmarshalBinary(data[4:36]); err != nil {
		return fmt.Errorf("osst: decoding commitment: %w", err)
	}
	s := G.NewScalar()
	if err := s.UnmarshalBinary(data[36:68]); err != nil {
		return fmt.Errorf("osst: decoding response: %w", err)
	}
	c.U = u
	c.S = s
	return nil
}
