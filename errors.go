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
// github.com:SymbolNotFound/balloon/errors.go

package balloon

import "errors"

// Sentinel errors identifying the recoverable failure kinds this package
// distinguishes. Use errors.Is to test for them; the errors returned from
// this package wrap one of these with additional context via fmt.Errorf's
// %w verb.
var (
	// ErrInvalidParameter is returned when space_cost, time_cost, delta or
	// parallel_cost is zero. The algorithm accepts every other input
	// (including empty password/salt) without complaint.
	ErrInvalidParameter = errors.New("balloon: invalid parameter")

	// ErrInvalidHexLength is returned by Verify/VerifyM when the expected
	// digest string's length does not match 2*H_LEN for the selected
	// algorithm.
	ErrInvalidHexLength = errors.New("balloon: invalid hex digest length")

	// ErrWorkerFailure wraps the first error encountered by any lane of a
	// BalloonM/VerifyM call. It is fatal to the whole call; no partial
	// result is ever returned alongside it.
	ErrWorkerFailure = errors.New("balloon: worker lane failed")
)
