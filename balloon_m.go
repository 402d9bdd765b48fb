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
// github.com:SymbolNotFound/balloon/balloon_m.go

package balloon

import (
	"encoding/hex"
	"fmt"

	"github.com/SymbolNotFound/balloon/block"
	"github.com/SymbolNotFound/balloon/digest"
	"github.com/SymbolNotFound/balloon/lane"
)

// BalloonM computes the M-core (parallel) Balloon digest: parallelCost
// independent Balloon instances, one per lane over a distinct per-lane
// salt, XOR-combined and finalized with one more digest of
// (password, salt, combined). delta defaults to 3.
func BalloonM(password, salt []byte, spaceCost, timeCost, parallelCost uint64, opts ...Option) (block.Block, error) {
	cfg := applyOptions(newSettings(defaultDelta), opts)
	return balloonM(password, salt, spaceCost, timeCost, parallelCost, cfg)
}

// BalloonMHash is the friendly wrapper: space_cost=16, time_cost=20,
// parallel_cost=4, delta=4, SHA-256, returned as lowercase hex.
func BalloonMHash(password, salt []byte) (string, error) {
	out, err := balloonM(password, salt, friendlySpaceCost, friendlyTimeCost,
		friendlyParallelCost, newSettings(friendlyDelta))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(out), nil
}

func balloonM(password, salt []byte, spaceCost, timeCost, parallelCost uint64, cfg settings) (block.Block, error) {
	if err := validateCostParams(spaceCost, timeCost, cfg.delta); err != nil {
		return nil, err
	}
	if parallelCost == 0 {
		return nil, fmt.Errorf("%w: parallel_cost must be >= 1, got 0", ErrInvalidParameter)
	}

	pool := lane.Run(int(parallelCost), func(index int) (block.Block, error) {
		laneSaltSuffix := block.EncodeLE64(uint64(index) + 1)
		laneSalt := make([]byte, 0, len(salt)+8)
		laneSalt = append(laneSalt, salt...)
		laneSalt = append(laneSalt, laneSaltSuffix[:]...)
		return balloon(password, laneSalt, spaceCost, timeCost, cfg)
	})

	outs := make([]block.Block, parallelCost)
	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
		}
		outs[r.Index] = r.Value
	}
	if firstErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkerFailure, firstErr)
	}

	combined := block.Block(outs[0])
	for i := 1; i < len(outs); i++ {
		combined = block.XOR(combined, outs[i])
	}

	prim, err := digest.New(cfg.algorithm)
	if err != nil {
		return nil, err
	}
	return prim.H(password, salt, combined)
}
