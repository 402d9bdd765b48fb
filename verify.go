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
// github.com:SymbolNotFound/balloon/verify.go

package balloon

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Verify recomputes Balloon(password, salt, spaceCost, timeCost, ...opts)
// and compares it against expectedHex using a constant-time byte
// comparison. expectedHex must be lowercase; exact byte equality is
// required, not case-insensitive matching.
func Verify(expectedHex string, password, salt []byte, spaceCost, timeCost uint64, opts ...Option) (bool, error) {
	cfg := applyOptions(newSettings(defaultDelta), opts)
	out, err := balloon(password, salt, spaceCost, timeCost, cfg)
	if err != nil {
		return false, err
	}
	return compareHex(expectedHex, out)
}

// VerifyM is the M-core counterpart of Verify.
func VerifyM(expectedHex string, password, salt []byte, spaceCost, timeCost, parallelCost uint64, opts ...Option) (bool, error) {
	cfg := applyOptions(newSettings(defaultDelta), opts)
	out, err := balloonM(password, salt, spaceCost, timeCost, parallelCost, cfg)
	if err != nil {
		return false, err
	}
	return compareHex(expectedHex, out)
}

// compareHex checks expectedHex's length before touching the constant-time
// primitive (a length mismatch reveals nothing about the digest's bytes, so
// it is safe to branch on), then compares expectedHex against the lowercase
// hex rendition of computed with subtle.ConstantTimeCompare, as strings, so
// an uppercase (or otherwise non-lowercase) rendition of the right digest -
// which would decode to the identical bytes - is correctly rejected, and
// equality never short-circuits on the first differing byte.
func compareHex(expectedHex string, computed []byte) (bool, error) {
	wantLen := 2 * len(computed)
	if len(expectedHex) != wantLen {
		return false, fmt.Errorf("%w: got %d hex characters, want %d", ErrInvalidHexLength, len(expectedHex), wantLen)
	}

	computedHex := hex.EncodeToString(computed)
	return subtle.ConstantTimeCompare([]byte(computedHex), []byte(expectedHex)) == 1, nil
}
