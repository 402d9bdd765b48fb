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
// github.com:SymbolNotFound/balloon/digest/adapter.go

package digest

import (
	"fmt"
	"hash"

	"github.com/SymbolNotFound/balloon/block"
)

// hashPrimitive adapts any stdlib-shaped hash.Hash constructor to Primitive.
// Every backend in this package is, underneath, "make a fresh hash.Hash,
// write the encoded arguments into it, read Sum(nil) back out" - this type
// is that adapter shared by all of them.
type hashPrimitive struct {
	newHash func() hash.Hash
	size    int
}

func (p hashPrimitive) Len() int { return p.size }

func (p hashPrimitive) H(args ...any) (block.Block, error) {
	h := p.newHash()
	for i, arg := range args {
		switch v := arg.(type) {
		case []byte:
			h.Write(v)
		case block.Block:
			h.Write(v)
		case uint64:
			le := block.EncodeLE64(v)
			h.Write(le[:])
		default:
			return nil, fmt.Errorf("digest: argument %d has unsupported type %T", i, arg)
		}
	}
	return h.Sum(nil), nil
}
