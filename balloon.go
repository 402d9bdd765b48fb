// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/balloon/balloon.go

// Package balloon implements the Balloon memory-hard password hashing
// function (Boneh, Corrigan-Gibbs, Schechter 2016): an expand/mix/extract
// construction over a pluggable cryptographic digest, its parallel M-core
// variant, and constant-time verification.
//
// Balloon and BalloonM return a raw digest; hex-encoding it is the caller's
// job, except for the friendly wrappers (BalloonHash, BalloonMHash) which
// fix a recommended parameter set and return lowercase hex directly. This
// package stores no encoded password format and performs no key-derivation
// framing - callers who need either build it on top of the digest returned
// here.
package balloon

import (
	"encoding/hex"
	"fmt"

	"github.com/SymbolNotFound/balloon/block"
	"github.com/SymbolNotFound/balloon/digest"
)

// Params collects the tunable cost parameters of a Balloon call, for callers
// who want to build and reuse one parameter set across many invocations.
type Params struct {
	SpaceCost    uint64
	TimeCost     uint64
	ParallelCost uint64
	Delta        uint64
}

// Friendly-wrapper parameter set fixed by spec: space_cost=16, time_cost=20,
// delta=4 (BalloonHash), plus parallel_cost=4 for BalloonMHash.
const (
	friendlySpaceCost    = 16
	friendlyTimeCost     = 20
	friendlyParallelCost = 4
)

// Balloon computes the raw Balloon digest of password salted with salt,
// using spaceCost blocks of memory and timeCost mixing rounds. delta
// defaults to 3; pass WithDelta to override, and WithAlgorithm to select a
// digest other than SHA-256.
func Balloon(password, salt []byte, spaceCost, timeCost uint64, opts ...Option) (block.Block, error) {
	cfg := applyOptions(newSettings(defaultDelta), opts)
	return balloon(password, salt, spaceCost, timeCost, cfg)
}

// BalloonHash is the friendly wrapper: space_cost=16, time_cost=20, delta=4,
// SHA-256, returned as lowercase hex.
func BalloonHash(password, salt []byte) (string, error) {
	out, err := balloon(password, salt, friendlySpaceCost, friendlyTimeCost,
		newSettings(friendlyDelta))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(out), nil
}

// balloon is the shared implementation behind Balloon and BalloonHash, once
// a settings value (algorithm + delta) has already been resolved.
func balloon(password, salt []byte, spaceCost, timeCost uint64, cfg settings) (block.Block, error) {
	if err := validateCostParams(spaceCost, timeCost, cfg.delta); err != nil {
		return nil, err
	}

	prim, err := digest.New(cfg.algorithm)
	if err != nil {
		return nil, err
	}

	buf := make([]block.Block, spaceCost)
	seed, err := prim.H(uint64(0), password, salt)
	if err != nil {
		return nil, err
	}
	buf[0] = seed
	cnt := uint64(1)

	cnt, err = expand(prim, buf, cnt, spaceCost)
	if err != nil {
		return nil, err
	}

	if err := mix(prim, buf, cnt, cfg.delta, salt, spaceCost, timeCost); err != nil {
		return nil, err
	}

	return buf[spaceCost-1], nil
}

// validateCostParams rejects the zero-valued parameters the reference
// construction leaves undefined (see spec's design notes on space_cost=0),
// before any buffer is allocated or any hash invoked.
func validateCostParams(spaceCost, timeCost, delta uint64) error {
	if spaceCost == 0 {
		return fmt.Errorf("%w: space_cost must be >= 1, got 0", ErrInvalidParameter)
	}
	if timeCost == 0 {
		return fmt.Errorf("%w: time_cost must be >= 1, got 0", ErrInvalidParameter)
	}
	if delta == 0 {
		return fmt.Errorf("%w: delta must be >= 1, got 0", ErrInvalidParameter)
	}
	return nil
}
