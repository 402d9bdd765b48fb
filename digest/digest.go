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
// github.com:SymbolNotFound/balloon/digest/digest.go

// Package digest adapts a fixed set of cryptographic hash functions to the
// single operation the Balloon construction needs: feed it an ordered list
// of byte strings and unsigned 64-bit integers, get back one Block. There is
// no separator and no length prefix between arguments - the concatenation is
// raw, which is required for the digest to reproduce the reference test
// vectors.
package digest

import (
	"fmt"

	"github.com/SymbolNotFound/balloon/block"
)

// Algorithm names one of the digests this package can adapt. The zero value
// is SHA256, matching the friendly wrappers' default and every test vector
// in the specification.
type Algorithm int

const (
	SHA256 Algorithm = iota
	MD5
	SHA1
	SHA224
	SHA384
	SHA512
	SHA512_224
	SHA512_256
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	BLAKE2s256
	BLAKE2b512
)

// String renders the algorithm's canonical name, used in error messages.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "MD5"
	case SHA1:
		return "SHA1"
	case SHA224:
		return "SHA224"
	case SHA256:
		return "SHA256"
	case SHA384:
		return "SHA384"
	case SHA512:
		return "SHA512"
	case SHA512_224:
		return "SHA512/224"
	case SHA512_256:
		return "SHA512/256"
	case SHA3_224:
		return "SHA3-224"
	case SHA3_256:
		return "SHA3-256"
	case SHA3_384:
		return "SHA3-384"
	case SHA3_512:
		return "SHA3-512"
	case BLAKE2s256:
		return "BLAKE2s-256"
	case BLAKE2b512:
		return "BLAKE2b-512"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Primitive is the uniform adapter spec §4.1 describes: a variable-arity
// concatenation-then-digest operation, plus its fixed output length.
type Primitive interface {
	// H concatenates every argument, in order, and returns the digest of
	// the result. Each argument must be a []byte, a block.Block or a uint64;
	// a uint64 is encoded as 8 bytes little-endian before concatenation.
	H(args ...any) (block.Block, error)

	// Len is H_LEN for this primitive: the number of bytes H always returns.
	Len() int
}

// New constructs the Primitive backing the given Algorithm. Constructing
// with an out-of-range Algorithm value is a programmer error and is
// reported synchronously, before any hashing is attempted.
func New(algorithm Algorithm) (Primitive, error) {
	factory, ok := registry[algorithm]
	if !ok {
		return nil, fmt.Errorf("digest: unsupported algorithm %v", algorithm)
	}
	return factory(), nil
}

// registry maps each Algorithm to a constructor for its Primitive. Filled in
// by digest_stdlib.go, digest_gorng_sha1.go, digest_sha3.go and
// digest_blake2.go so that each
// backend's own file owns the import of the library it adapts.
var registry = map[Algorithm]func() Primitive{}

func register(a Algorithm, factory func() Primitive) {
	registry[a] = factory
}
