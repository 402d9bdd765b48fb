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
// github.com:SymbolNotFound/balloon/expand.go

package balloon

import (
	"github.com/SymbolNotFound/balloon/block"
	"github.com/SymbolNotFound/balloon/digest"
)

// expand grows buf from a single seed block (at buf[0]) to spaceCost blocks
// by hash-chaining: buf[s] = H(cnt, buf[s-1]), cnt incrementing once per
// step. It returns the counter value after the last step. With
// spaceCost == 1 it performs no iterations and returns cnt unchanged.
func expand(prim digest.Primitive, buf []block.Block, cnt uint64, spaceCost uint64) (uint64, error) {
	for s := uint64(1); s < spaceCost; s++ {
		next, err := prim.H(cnt, buf[s-1])
		if err != nil {
			return cnt, err
		}
		buf[s] = next
		cnt++
	}
	return cnt, nil
}
