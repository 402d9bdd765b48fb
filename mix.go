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
// github.com:SymbolNotFound/balloon/mix.go

package balloon

import (
	"github.com/SymbolNotFound/balloon/block"
	"github.com/SymbolNotFound/balloon/digest"
)

// mix performs timeCost rounds of dependent-plus-pseudo-random rereferencing
// over buf, in place. Every counter advance (and the one case that does NOT
// advance the counter - the idx_block lookup hash) is normative: it mirrors
// the reference construction exactly, and any deviation changes every
// digest the package produces.
func mix(prim digest.Primitive, buf []block.Block, cnt uint64, delta uint64, salt []byte, spaceCost, timeCost uint64) error {
	for t := uint64(0); t < timeCost; t++ {
		for s := uint64(0); s < spaceCost; s++ {
			prev := block.WrapIndex(s, spaceCost)

			next, err := prim.H(cnt, buf[prev], buf[s])
			if err != nil {
				return err
			}
			buf[s] = next
			cnt++

			for i := uint64(0); i < delta; i++ {
				idxBlock, err := prim.H(t, s, i)
				if err != nil {
					return err
				}

				otherRaw, err := prim.H(cnt, salt, idxBlock)
				if err != nil {
					return err
				}
				cnt++

				other := block.DecodeLEMod(otherRaw, spaceCost)

				next, err := prim.H(cnt, buf[s], buf[other])
				if err != nil {
					return err
				}
				buf[s] = next
				cnt++
			}
		}
	}
	return nil
}
