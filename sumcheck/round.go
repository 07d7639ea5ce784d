// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sumcheck

import "github.com/luxfi/ligerito/binaryfield"

// RoundMessage is the prover's per-round sumcheck message for one
// folded variable: f(0), f(1), and their sum. The round polynomial is
// linear in the variable being folded, f(x) = S0 + (S0+S1)*x, so S2 is
// redundant bookkeeping (S2 == S0 + S1) rather than an independent
// quadratic coefficient — treating it as a genuine quadratic term was
// a known source of confusion in the reference implementation this
// was ported from.
type RoundMessage struct {
	S0, S1, S2 binaryfield.F128 // f(0), f(1), f(0)+f(1)
}

// Valid checks the S2 == S0 + S1 redundancy invariant.
func (m RoundMessage) Valid() bool {
	return m.S2.Equal(m.S0.Add(m.S1))
}

// ClaimedSum is the total sum this round's message asserts: f(0)+f(1).
func (m RoundMessage) ClaimedSum() binaryfield.F128 {
	return m.S0.Add(m.S1)
}

// EvaluateLinear evaluates f(x) = S0 + (S0+S1)*x, the unique linear
// polynomial through f(0)=S0 and f(1)=S1.
func (m RoundMessage) EvaluateLinear(x binaryfield.F128) binaryfield.F128 {
	diff := m.S0.Add(m.S1)
	return m.S0.Add(x.Mul(diff))
}
