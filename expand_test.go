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
// github.com:SymbolNotFound/balloon/expand_test.go

package balloon

import (
	"bytes"
	"testing"

	"github.com/SymbolNotFound/balloon/block"
	"github.com/SymbolNotFound/balloon/digest"
)

func Test_expand_FillsBuffer(t *testing.T) {
	prim, err := digest.New(digest.SHA256)
	if err != nil {
		t.Fatalf("digest.New() error: %v", err)
	}

	const spaceCost = 5
	buf := make([]block.Block, spaceCost)
	seed, err := prim.H(uint64(0), []byte("password"), []byte("salt"))
	if err != nil {
		t.Fatalf("H() error: %v", err)
	}
	buf[0] = seed

	cnt, err := expand(prim, buf, 1, spaceCost)
	if err != nil {
		t.Fatalf("expand() error: %v", err)
	}
	if cnt != spaceCost {
		t.Errorf("expand() cnt = %d, want %d", cnt, spaceCost)
	}
	for i, b := range buf {
		if len(b) != prim.Len() {
			t.Errorf("buf[%d] has length %d, want %d", i, len(b), prim.Len())
		}
	}
}

func Test_expand_SpaceCostOneIsNoOp(t *testing.T) {
	prim, err := digest.New(digest.SHA256)
	if err != nil {
		t.Fatalf("digest.New() error: %v", err)
	}
	buf := make([]block.Block, 1)
	buf[0] = block.Block(bytes.Repeat([]byte{0xAB}, 32))

	cnt, err := expand(prim, buf, 1, 1)
	if err != nil {
		t.Fatalf("expand() error: %v", err)
	}
	if cnt != 1 {
		t.Errorf("expand() with space_cost=1 advanced cnt to %d, want unchanged 1", cnt)
	}
}

func Test_expand_ChainsFromPrevious(t *testing.T) {
	prim, err := digest.New(digest.SHA256)
	if err != nil {
		t.Fatalf("digest.New() error: %v", err)
	}
	buf := make([]block.Block, 3)
	buf[0] = block.Block(bytes.Repeat([]byte{0x01}, 32))

	if _, err := expand(prim, buf, 1, 3); err != nil {
		t.Fatalf("expand() error: %v", err)
	}

	want1, err := prim.H(uint64(1), buf[0])
	if err != nil {
		t.Fatalf("H() error: %v", err)
	}
	if !bytes.Equal(buf[1], want1) {
		t.Errorf("buf[1] = %x, want H(1, buf[0]) = %x", buf[1], want1)
	}

	want2, err := prim.H(uint64(2), buf[1])
	if err != nil {
		t.Fatalf("H() error: %v", err)
	}
	if !bytes.Equal(buf[2], want2) {
		t.Errorf("buf[2] = %x, want H(2, buf[1]) = %x", buf[2], want2)
	}
}
