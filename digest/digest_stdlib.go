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
// github.com:SymbolNotFound/balloon/digest/digest_stdlib.go

package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
)

func init() {
	register(MD5, func() Primitive { return hashPrimitive{md5.New, md5.Size} })
	register(SHA224, func() Primitive { return hashPrimitive{sha256.New224, sha256.Size224} })
	register(SHA256, func() Primitive { return hashPrimitive{sha256.New, sha256.Size} })
	register(SHA384, func() Primitive { return hashPrimitive{sha512.New384, sha512.Size384} })
	register(SHA512, func() Primitive { return hashPrimitive{sha512.New, sha512.Size} })
	register(SHA512_224, func() Primitive { return hashPrimitive{sha512.New512_224, sha512.Size224} })
	register(SHA512_256, func() Primitive { return hashPrimitive{sha512.New512_256, sha512.Size256} })
}
