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
// github.com:SymbolNotFound/balloon/options.go

package balloon

import "github.com/SymbolNotFound/balloon/digest"

// defaultDelta is the delta used by the low-level API (Balloon, BalloonM,
// Verify, VerifyM) when no WithDelta option is given.
const defaultDelta = 3

// friendlyDelta is the delta fixed by the BalloonHash/BalloonMHash wrappers.
const friendlyDelta = 4

// settings holds the construction-time choices an Option can override. The
// zero value (algorithm SHA256, delta 0) is never used directly - every
// entry point starts from newSettings so delta gets its real default.
type settings struct {
	algorithm digest.Algorithm
	delta     uint64
}

func newSettings(delta uint64) settings {
	return settings{algorithm: digest.SHA256, delta: delta}
}

// Option customizes the digest backend or the delta (dependency count) a
// call uses. A nil source defaulting to a concrete implementation is how the
// teacher package handles this for a single knob (New(source sha1.Hasher));
// with two independent knobs here, functional options compose more cleanly.
type Option func(*settings)

// WithAlgorithm selects the underlying cryptographic digest. The default is
// digest.SHA256.
func WithAlgorithm(a digest.Algorithm) Option {
	return func(s *settings) { s.algorithm = a }
}

// WithDelta overrides the number of pseudo-random dependencies mixed into
// each block per mix-phase step. The low-level functions default to 3; the
// friendly wrappers fix it at 4 and do not accept options.
func WithDelta(d uint64) Option {
	return func(s *settings) { s.delta = d }
}

func applyOptions(base settings, opts []Option) settings {
	for _, opt := range opts {
		opt(&base)
	}
	return base
}
