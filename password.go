// Copyright 2012 Dmitry Chestnykh (original Go scrypt implementation)
// Copyright 2009 Colin Percival (original C implementation and design)
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
)

// dkLen is the derived key length this package's envelope always uses.
// scrypt itself supports arbitrary dkLen (see Key); the envelope format
// fixes it at 32 bytes.
const dkLen = 32

// saltLen is the size of salt drawn for newly generated envelopes.
const saltLen = 32

// Hasher produces and verifies v2 envelopes at a fixed cost (N, r, p),
// drawing salt from Rand. The zero value is not usable; construct one
// with New or NewWithParams. A Hasher's Rand is shared across calls and
// must be safe for concurrent use if the Hasher itself is used
// concurrently — crypto/rand.Reader, the default, is.
type Hasher struct {
	Params Params
	Rand   io.Reader
}

// New returns a Hasher using DefaultParams (N=16384, r=8, p=1) and
// crypto/rand.Reader as the salt source.
func New() *Hasher {
	return NewWithParams(DefaultParams)
}

// NewWithParams returns a Hasher using the given cost parameters and
// crypto/rand.Reader as the salt source. The parameters are not validated
// until the first Encode call, so that constructing a Hasher never fails.
func NewWithParams(params Params) *Hasher {
	return &Hasher{Params: params, Rand: rand.Reader}
}

// Encode hashes password and returns a v2 envelope string. It fails with
// ErrInvalidArgument if password is empty, or with ErrInvalidParameter if
// h.Params fails the power-of-two/overflow guard.
func (h *Hasher) Encode(password string) (string, error) {
	if len(password) == 0 {
		return "", fmt.Errorf("%w: password must not be empty", ErrInvalidArgument)
	}
	if err := h.Params.validate(true); err != nil {
		return "", err
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(h.Rand, salt); err != nil {
		return "", fmt.Errorf("%w: salt source failed: %v", ErrInvalidArgument, err)
	}

	dk, err := deriveKey([]byte(password), salt, h.Params, dkLen)
	if err != nil {
		return "", err
	}
	defer zero(dk)

	return formatV2(h.Params, salt, dk), nil
}

// Compare reports whether password matches the envelope produced by a
// prior Encode (or any valid v0/v1/v2 envelope). It fails with
// ErrInvalidArgument if password is empty, with ErrInvalidEnvelope if
// envelope does not parse, or with ErrInvalidParameter if the envelope's
// embedded parameters fail the guard — these are raised rather than
// folded into a false result, so callers can distinguish "wrong password"
// from "corrupt stored hash".
func Compare(password, envelope string) (bool, error) {
	if len(password) == 0 {
		return false, fmt.Errorf("%w: password must not be empty", ErrInvalidArgument)
	}

	parsed, err := parseEnvelope(envelope)
	if err != nil {
		return false, err
	}
	if err := parsed.validate(); err != nil {
		return false, err
	}

	dk, err := deriveKey([]byte(password), parsed.salt, parsed.params, len(parsed.dk))
	if err != nil {
		return false, err
	}
	defer zero(dk)

	candidate := parsed.format()
	reDerived := &parsedEnvelope{ver: parsed.ver, params: parsed.params, salt: parsed.salt, dk: dk}
	return constantTimeEqualString(candidate, reDerived.format()), nil
}

// IsValid reports whether envelope matches the grammar of a v0, v1, or v2
// hash string. It never returns an error and returns false for any
// malformed input, including non-scrypt strings.
func IsValid(envelope string) bool {
	return isValidEnvelope(envelope)
}

// constantTimeEqualString compares a and b byte-for-byte without
// branching on the position of the first difference: lengths are
// compared first (envelope length is not secret), then
// subtle.ConstantTimeCompare accumulates the difference across every
// byte with no early exit.
func constantTimeEqualString(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Package-level convenience wrappers over a package-default Hasher, for
// callers who don't need custom cost parameters.

var defaultHasher = New()

// Encode hashes password with DefaultParams and returns a v2 envelope.
// Equivalent to New().Encode(password).
func Encode(password string) (string, error) {
	return defaultHasher.Encode(password)
}
