// Copyright 2012 Dmitry Chestnykh (original Go scrypt implementation)
// Copyright 2009 Colin Percival (original C implementation and design)
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import "encoding/binary"

// smix implements scrypt's ROMix construction over a single 128*r-byte
// block b (one of the p parallel blocks the driver in scrypt.go hands it).
//
// v is the N-slot memory-hard table (128*r*N bytes) and xy is scratch of
// size 256*r bytes, treated as two adjacent 128*r-byte regions (x and y).
// Both are owned by the caller and sized once for the whole derivation.
//
// Fill phase: for i in [0, N), store a snapshot of X into V[i], then
// advance X by one BlockMix. Mix phase: for i in [0, N), look up
// V[Integerify(X) mod N], XOR it into X, and advance X by one BlockMix
// again. Because N is a power of two, mod N reduces to a bitmask.
func smix(b []byte, r, n int, v, xy []byte) {
	blockSize := 128 * r
	x := xy[:blockSize]
	y := xy[blockSize : 2*blockSize]

	copy(x, b[:blockSize])

	for i := 0; i < n; i++ {
		copy(v[i*blockSize:(i+1)*blockSize], x)
		blockMix(x, y, r)
	}

	mask := uint64(n - 1)
	for i := 0; i < n; i++ {
		j := integerify(x, r) & mask
		off := int(j) * blockSize
		xorBlockN(x, v[off:off+blockSize])
		blockMix(x, y, r)
	}

	copy(b[:blockSize], x)
}

// integerify reads the first 8 bytes of the last 64-byte sub-block of x
// (block index 2r-1) as a little-endian uint64, per scrypt's Integerify.
func integerify(x []byte, r int) uint64 {
	return binary.LittleEndian.Uint64(x[(2*r-1)*64:])
}

// xorBlockN XORs len(src) bytes of src into dst in place.
func xorBlockN(dst, src []byte) {
	for i, v := range src {
		dst[i] ^= v
	}
}
