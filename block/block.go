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
// github.com:SymbolNotFound/balloon/block/block.go

// Package block defines the fixed-width byte buffer that the Balloon
// construction hashes, shuffles and extracts, plus the small set of
// byte-level helpers (little-endian encoding, XOR, modulo-reduction of a
// full block into a bounded index) that the expand/mix phases build on.
package block

import (
	"math/big"
)

// Block is the unit the buffer is built from: one digest output. Its length
// is fixed by whichever Primitive produced it (32 bytes for SHA-256).
type Block []byte

// EncodeLE64 renders v as 8 bytes, least-significant byte first. Every
// integer argument fed to the hash primitive (cnt, s, t, i, lane index) uses
// this encoding.
func EncodeLE64(v uint64) [8]byte {
	var out [8]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// XOR combines a and b byte-wise. When the operands are equal length (the
// only case the core algorithm exercises) this degenerates to a plain
// byte-wise XOR. When they differ, the shorter operand is treated as
// left-zero-padded to the longer's length in 8-byte words, matching the
// reference construction's word-wise padding rule; callers inside this
// module never hit that path since every XOR here is between two Blocks
// produced by the same Primitive.
func XOR(a, b []byte) []byte {
	if len(a) == len(b) {
		out := make([]byte, len(a))
		for i := range a {
			out[i] = a[i] ^ b[i]
		}
		return out
	}

	longer, shorter := a, b
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}

	padded := make([]byte, len(longer))
	pad := len(longer) - len(shorter)
	// Zero-pad in 8-byte words: round the gap down to a word boundary so the
	// shorter operand's own bytes always start on a word boundary too.
	wordPad := pad - (pad % 8)
	copy(padded[wordPad:], shorter)

	out := make([]byte, len(longer))
	for i := range longer {
		out[i] = longer[i] ^ padded[i]
	}
	return out
}

// DecodeLEMod interprets b as an arbitrary-width unsigned little-endian
// integer and reduces it modulo mod. The reference implementation reverses
// the block's bytes and accumulates big-endian over the reversal, which is
// equivalent to a plain little-endian read of the original bytes; this
// copies the block in reverse order and reads that copy as a big-endian
// big.Int.
func DecodeLEMod(b Block, mod uint64) uint64 {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	n := new(big.Int).SetBytes(be)
	m := new(big.Int).SetUint64(mod)
	return n.Mod(n, m).Uint64()
}

// WrapIndex returns (s-1) mod n, resolving the mix phase's read of buf[s-1]
// when s==0 to the buffer's last position instead of a negative index.
func WrapIndex(s, n uint64) uint64 {
	if s == 0 {
		return n - 1
	}
	return s - 1
}
