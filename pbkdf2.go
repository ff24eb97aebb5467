// Copyright 2012 Dmitry Chestnykh (original Go scrypt implementation)
// Copyright 2009 Colin Percival (original C implementation and design)
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"hash"
)

// errDKLenTooLarge is returned by pbkdf2HMACSHA256 when the requested
// output length exceeds what a 32-bit PBKDF2 block counter can address.
var errDKLenTooLarge = errors.New("scrypt: derived key length too large")

// pbkdf2HMACSHA256 implements PBKDF2 (RFC 2898) with HMAC-SHA256 as the
// pseudorandom function, consuming crypto/hmac and crypto/sha256 as the
// host crypto library's HMAC/SHA-256 primitives.
//
// The scrypt driver in scrypt.go only ever calls this with c == 1, which
// collapses F(P, S, c, i) to a single HMAC(P, S || BE32(i)) per output
// block — U_1 is the whole sum, there is no U_2..U_c to XOR in. The
// general c-iteration path below still exists because PBKDF2 is specified
// for arbitrary c, and a malformed or future caller passing c != 1 should
// get correct output, not undefined behavior.
func pbkdf2HMACSHA256(password, salt []byte, c, dkLen int) ([]byte, error) {
	prf := hmac.New(sha256.New, password)
	hLen := prf.Size()

	numBlocks := (dkLen + hLen - 1) / hLen
	if numBlocks > (1<<32 - 1) {
		return nil, errDKLenTooLarge
	}

	dk := make([]byte, 0, numBlocks*hLen)
	var buf [4]byte
	for block := 1; block <= numBlocks; block++ {
		binary.BigEndian.PutUint32(buf[:], uint32(block))

		u := hmacSum(prf, salt, buf[:])
		t := make([]byte, hLen)
		copy(t, u)

		for i := 1; i < c; i++ {
			u = hmacSum(prf, u, nil)
			xorBlockN(t, u)
		}

		dk = append(dk, t...)
	}

	return dk[:dkLen], nil
}

// hmacSum resets prf, writes parts in order, and returns Sum(nil).
func hmacSum(prf hash.Hash, parts ...[]byte) []byte {
	prf.Reset()
	for _, p := range parts {
		prf.Write(p)
	}
	return prf.Sum(nil)
}
