// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package frost

import cfgconst "github.com/luxfi/ligerito/config"

// Params holds a ceremony's block-denominated timeouts and size
// limits. DefaultParams derives these from the centralized config
// package so no package redefines them locally.
type Params struct {
	MinSigners              int
	MaxSigners              int
	Threshold               int
	DkgTimeout              uint64
	SigningTimeout          uint64
	HeartbeatInterval       uint64
	OfflineThreshold        uint64
	CircuitBreakerThreshold uint32
	MaxEncryptedShareSize   int
}

// DefaultParams returns the canonical parameters for an n-signer
// ceremony, with the strict-BFT threshold of config.Threshold(n).
func DefaultParams(n int) Params {
	return Params{
		MinSigners:              cfgconst.MinSigners,
		MaxSigners:              cfgconst.MaxSigners,
		Threshold:               cfgconst.Threshold(n),
		DkgTimeout:              cfgconst.DkgTimeout,
		SigningTimeout:          cfgconst.SigningTimeout,
		HeartbeatInterval:       cfgconst.HeartbeatInterval,
		OfflineThreshold:        cfgconst.OfflineThreshold,
		CircuitBreakerThreshold: cfgconst.CircuitBreakerThreshold,
		MaxEncryptedShareSize:   cfgconst.MaxEncryptedShareSize,
	}
}
