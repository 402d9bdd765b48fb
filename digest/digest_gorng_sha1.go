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
// github.com:SymbolNotFound/balloon/digest/digest_gorng_sha1.go

package digest

import (
	"fmt"

	"github.com/SymbolNotFound/balloon/block"
	"github.com/SymbolNotFound/balloon/sha1"
)

// gorngSHA1Primitive backs digest.SHA1 with this module's own hand-rolled
// SHA-1 (package sha1), rather than crypto/sha1. Its Hasher type doesn't
// expose the Sum/Size/BlockSize trio hashPrimitive's func() hash.Hash shape
// needs, so it gets its own small adapter instead of going through
// hashPrimitive.
type gorngSHA1Primitive struct{}

func (gorngSHA1Primitive) Len() int { return sha1.DIGEST_BYTES }

func (gorngSHA1Primitive) H(args ...any) (block.Block, error) {
	h := sha1.New()
	for i, arg := range args {
		switch v := arg.(type) {
		case []byte:
			if _, err := h.Write(v); err != nil {
				return nil, err
			}
		case block.Block:
			if _, err := h.Write(v); err != nil {
				return nil, err
			}
		case uint64:
			le := block.EncodeLE64(v)
			if _, err := h.Write(le[:]); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("digest: argument %d has unsupported type %T", i, arg)
		}
	}
	return h.Hash().Bytes(), nil
}

func init() {
	register(SHA1, func() Primitive { return gorngSHA1Primitive{} })
}
