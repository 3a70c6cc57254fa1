// hkdf-go: HMAC-based extract-and-expand key derivation
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textenc converts between raw key material and its hex or strict
// base64 text form.
package textenc

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Supported text formats
const (
	Hex    = "hex"
	Base64 = "base64"
)

var (
	// ErrUnknownFormat is returned when the format is neither hex nor base64.
	ErrUnknownFormat = errors.New("textenc: unknown format")

	// ErrInvalidCharacter is returned when base64 input contains \r or \n.
	ErrInvalidCharacter = errors.New("textenc: invalid character")
)

// Decode converts text in the given format into bytes. Hex is accepted in
// either case, base64 must be strict standard encoding without line breaks.
// The empty string decodes to an empty slice.
func Decode(format, s string) ([]byte, error) {
	switch format {
	case Hex:
		return hex.DecodeString(s)
	case Base64:
		if strings.ContainsAny(s, "\r\n") {
			return nil, ErrInvalidCharacter
		}
		return base64.StdEncoding.Strict().DecodeString(s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Encode converts bytes into text in the given format. Hex output is lower
// case.
func Encode(format string, b []byte) (string, error) {
	switch format {
	case Hex:
		return hex.EncodeToString(b), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(b), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
