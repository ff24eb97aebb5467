// Copyright 2012 Dmitry Chestnykh (original Go scrypt implementation)
// Copyright 2009 Colin Percival (original C implementation and design)
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

// blockMix implements scrypt's BlockMix construction: one mixing pass over
// a 128*r-byte region, built from 2r chained applications of salsa208
// over 64-byte sub-blocks.
//
// b is read and overwritten in place; y is scratch of the same size
// (128*r bytes), reused across calls by the caller to avoid per-call
// allocation. The first r 64-byte blocks of the output hold the
// even-indexed Salsa outputs (Y0, Y2, ...) and the last r blocks hold the
// odd-indexed ones (Y1, Y3, ...) — the interleave scrypt's BlockMix
// defines.
func blockMix(b, y []byte, r int) {
	var x [64]byte
	copy(x[:], b[(2*r-1)*64:(2*r)*64])

	for i := 0; i < 2*r; i++ {
		xorBlock64(&x, b[i*64:(i+1)*64])
		salsa208(&x)
		copy(y[i*64:(i+1)*64], x[:])
	}

	for i := 0; i < r; i++ {
		copy(b[i*64:(i+1)*64], y[(i*2)*64:(i*2+1)*64])
	}
	for i := 0; i < r; i++ {
		copy(b[(i+r)*64:(i+r+1)*64], y[(i*2+1)*64:(i*2+2)*64])
	}
}

// xorBlock64 XORs the 64 bytes of src into dst in place.
func xorBlock64(dst *[64]byte, src []byte) {
	for i := 0; i < 64; i++ {
		dst[i] ^= src[i]
	}
}
