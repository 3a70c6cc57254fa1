// hkdf-go: HMAC-based extract-and-expand key derivation
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hkdf provides HKDF key derivation over SHA-256, SHA-384 and SHA-512.
//
// https://datatracker.ietf.org/doc/html/rfc5869
//
// A missing salt is treated as the empty byte string (RFC 5869 Section 2.2
// allows either that or HashLen zero bytes). A missing info is the empty
// byte string too. All functions are pure and safe for concurrent use.
package hkdf

import (
	"crypto/hmac"
	"errors"
	"fmt"
)

// Error types for HKDF derivation failures
var (
	ErrUnsupportedAlgorithm = errors.New("hkdf: unsupported hash algorithm")
	ErrInvalidKey           = errors.New("hkdf: invalid pseudorandom key")
	ErrInvalidLength        = errors.New("hkdf: invalid output length")
)

// maxBlocks is the number of hash blocks addressable by the one byte counter.
const maxBlocks = 255

// Extract derives a HashLen sized pseudorandom key from the input keying
// material, using the salt as the HMAC key. The ikm and salt may be nil or
// empty.
func Extract(h Hash, ikm, salt []byte) ([]byte, error) {
	info, ok := hashes[h]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, h)
	}
	mac := hmac.New(info.new, salt)
	mac.Write(ikm)
	return mac.Sum(nil), nil
}

// Expand stretches a pseudorandom key into n bytes of output keying material
// bound to the info context. The info may be nil or empty.
//
// The prk should be the output of Extract, but any uniformly random, non-empty
// secret of at least HashLen bytes is acceptable. Its length is not checked.
func Expand(h Hash, prk []byte, n int, info []byte) ([]byte, error) {
	if len(prk) == 0 {
		return nil, ErrInvalidKey
	}
	hinfo, ok := hashes[h]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, h)
	}
	if n <= 0 || n > maxBlocks*hinfo.size {
		return nil, fmt.Errorf("%w: %d not in [1, %d] for %v", ErrInvalidLength, n, maxBlocks*hinfo.size, h)
	}
	var (
		mac    = hmac.New(hinfo.new, prk)
		blocks = (n + hinfo.size - 1) / hinfo.size
		out    = make([]byte, n)
		prev   []byte
	)
	for i := 1; i <= blocks; i++ {
		mac.Reset()
		mac.Write(prev)
		mac.Write(info)
		mac.Write([]byte{byte(i)})
		prev = mac.Sum(prev[:0])

		// The final block is truncated by copy to the bytes still missing
		copy(out[(i-1)*hinfo.size:], prev)
	}
	clear(prev)
	return out, nil
}

// DeriveKey runs Extract followed by Expand, returning n bytes of output
// keying material. Errors from either stage are returned unchanged.
func DeriveKey(h Hash, ikm []byte, n int, salt, info []byte) ([]byte, error) {
	prk, err := Extract(h, ikm, salt)
	if err != nil {
		return nil, err
	}
	defer clear(prk)

	return Expand(h, prk, n, info)
}

// MustDeriveKey runs Extract followed by Expand, returning n bytes of output
// keying material. It panics if the derivation fails.
func MustDeriveKey(h Hash, ikm []byte, n int, salt, info []byte) []byte {
	okm, err := DeriveKey(h, ikm, n, salt, info)
	if err != nil {
		panic(err)
	}
	return okm
}

// Key derives a key of length n from the secret, salt, and info using
// HKDF-SHA256. The salt and info may be nil or empty.
//
// Panics if n is not positive or exceeds the maximum output length for
// SHA-256 HKDF, which is 255 * 32 = 8160 bytes.
func Key(secret, salt, info []byte, n int) []byte {
	return MustDeriveKey(SHA256, secret, n, salt, info)
}

// MaxLength returns the largest output length Expand accepts for the hash,
// or 0 if the hash is not supported.
func MaxLength(h Hash) int {
	return maxBlocks * h.Size()
}
