// hkdf-go: HMAC-based extract-and-expand key derivation
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hkdf

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strconv"
	"strings"
)

// Hash identifies the hash function underlying the HMAC of a derivation.
type Hash uint8

// Supported hash functions. The zero value is not a valid hash.
const (
	SHA256 Hash = 1 + iota
	SHA384
	SHA512
)

// hashInfo is the metadata needed to run HKDF over a hash function.
type hashInfo struct {
	name string           // Canonical display name
	size int              // Output length in bytes (HashLen)
	new  func() hash.Hash // Constructor handed to HMAC
}

// hashes is the table of supported hash functions. It is never modified after
// package initialization.
var hashes = map[Hash]hashInfo{
	SHA256: {name: "SHA-256", size: sha256.Size, new: sha256.New},
	SHA384: {name: "SHA-384", size: sha512.Size384, new: sha512.New384},
	SHA512: {name: "SHA-512", size: sha512.Size, new: sha512.New},
}

// ParseHash resolves a hash name such as "SHA-256" or "sha256" into its
// identifier. Matching ignores case and dashes.
func ParseHash(name string) (Hash, error) {
	normal := strings.ReplaceAll(strings.ToUpper(name), "-", "")
	for h, info := range hashes {
		if strings.ReplaceAll(info.name, "-", "") == normal {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// Available reports whether the hash function is supported.
func (h Hash) Available() bool {
	_, ok := hashes[h]
	return ok
}

// Size returns the output length of the hash function in bytes, or 0 if the
// hash is not supported.
func (h Hash) Size() int {
	return hashes[h].size
}

// String implements fmt.Stringer.
func (h Hash) String() string {
	if info, ok := hashes[h]; ok {
		return info.name
	}
	return "Hash(" + strconv.Itoa(int(h)) + ")"
}
