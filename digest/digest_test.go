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
// github.com:SymbolNotFound/balloon/digest/digest_test.go

package digest_test

import (
	"encoding/hex"
	"testing"

	"github.com/SymbolNotFound/balloon/digest"
)

func Test_Lengths(t *testing.T) {
	tests := []struct {
		algorithm digest.Algorithm
		wantLen   int
	}{
		{digest.MD5, 16},
		{digest.SHA1, 20},
		{digest.SHA224, 28},
		{digest.SHA256, 32},
		{digest.SHA384, 48},
		{digest.SHA512, 64},
		{digest.SHA512_224, 28},
		{digest.SHA512_256, 32},
		{digest.SHA3_224, 28},
		{digest.SHA3_256, 32},
		{digest.SHA3_384, 48},
		{digest.SHA3_512, 64},
		{digest.BLAKE2s256, 32},
		{digest.BLAKE2b512, 64},
	}
	for _, tt := range tests {
		t.Run(tt.algorithm.String(), func(t *testing.T) {
			p, err := digest.New(tt.algorithm)
			if err != nil {
				t.Fatalf("New(%v) error: %v", tt.algorithm, err)
			}
			if p.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", p.Len(), tt.wantLen)
			}
			out, err := p.H([]byte("hello"))
			if err != nil {
				t.Fatalf("H() error: %v", err)
			}
			if len(out) != tt.wantLen {
				t.Errorf("H() returned %d bytes, want %d", len(out), tt.wantLen)
			}
		})
	}
}

func Test_UnsupportedAlgorithm(t *testing.T) {
	if _, err := digest.New(digest.Algorithm(999)); err == nil {
		t.Error("New() with an out-of-range algorithm should error, got nil")
	}
}

func Test_SHA256KnownVector(t *testing.T) {
	p, err := digest.New(digest.SHA256)
	if err != nil {
		t.Fatalf("New(SHA256) error: %v", err)
	}
	out, err := p.H([]byte(""))
	if err != nil {
		t.Fatalf("H() error: %v", err)
	}
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := hex.EncodeToString(out)
	if got != want {
		t.Errorf("SHA256(\"\") = %s, want %s", got, want)
	}
}

func Test_ConcatenationOrder(t *testing.T) {
	p, err := digest.New(digest.SHA256)
	if err != nil {
		t.Fatalf("New(SHA256) error: %v", err)
	}
	a, err := p.H(uint64(0), []byte("password"), []byte("salt"))
	if err != nil {
		t.Fatalf("H() error: %v", err)
	}
	b, err := p.H(uint64(0), []byte("passwordsalt"))
	if err != nil {
		t.Fatalf("H() error: %v", err)
	}
	if hex.EncodeToString(a) != hex.EncodeToString(b) {
		t.Error("H(0, \"password\", \"salt\") should equal H(0, \"passwordsalt\") - concatenation is raw, no separator")
	}
}
