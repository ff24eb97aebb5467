// Copyright 2012 Dmitry Chestnykh (original Go scrypt implementation)
// Copyright 2009 Colin Percival (original C implementation and design)
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

// Key derives a key of length keyLen from password and salt using scrypt
// with cost parameters N, r, p, and returns it.
//
// N is the CPU/memory cost, a power of two greater than 1. r and p must
// satisfy r*p < 2^30 along with the overflow bounds in Params.validate.
// If the parameters are invalid, Key returns a nil slice and
// ErrInvalidParameter.
//
// The recommended parameters for interactive logins as of 2009 are
// N=16384, r=8, p=1 (DefaultParams); they should be increased as memory
// and CPU parallelism increase on the deployment hardware.
//
// Key is the raw KDF primitive this package's password envelope API
// (Encode/Compare) is built on; most callers storing password hashes
// should use those instead.
func Key(password, salt []byte, N, r, p, keyLen int) ([]byte, error) {
	params := Params{N: N, R: r, P: p}
	if err := params.validate(true); err != nil {
		return nil, err
	}
	return deriveKey(password, salt, params, keyLen)
}

// deriveKey runs the scrypt construction for already-validated params:
// PBKDF2 expands (password, salt) into p*128*r bytes, each 128*r-byte
// slice is mixed independently through ROMix (smix), and a second PBKDF2
// pass contracts the mixed bytes down to keyLen bytes.
//
// The p ROMix invocations are independent — each operates on a disjoint
// slice of b — but this driver runs them sequentially on the caller's
// goroutine, the same single-threaded default the reference scrypt
// design uses; a caller wanting parallel ROMix would need to give each
// invocation its own v/xy scratch.
func deriveKey(password, salt []byte, params Params, keyLen int) ([]byte, error) {
	r, n, p := params.R, params.N, params.P

	b, err := pbkdf2HMACSHA256(password, salt, 1, p*128*r)
	if err != nil {
		return nil, err
	}
	defer zero(b)

	v, xy, err := allocScratch(r, n)
	if err != nil {
		return nil, err
	}
	defer zero(v)
	defer zero(xy)

	for i := 0; i < p; i++ {
		smix(b[i*128*r:(i+1)*128*r], r, n, v, xy)
	}

	dk, err := pbkdf2HMACSHA256(password, b, 1, keyLen)
	if err != nil {
		return nil, err
	}
	return dk, nil
}

// allocScratch allocates the V table (128*r*N bytes, scrypt's dominant
// allocation) and the XY scratch (256*r bytes). Params.validate already
// bounds r, N, and p so this product cannot overflow a 32-bit size_t. A
// panic raised by the allocation is recovered here and reported as
// ErrOutOfMemory. When the host simply has no memory left, the Go runtime
// stops the process with a fatal error that recover does not intercept, so
// that case does not return ErrOutOfMemory.
func allocScratch(r, n int) (v, xy []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			v, xy, err = nil, nil, ErrOutOfMemory
		}
	}()
	v = make([]byte, 128*r*n)
	xy = make([]byte, 256*r)
	return v, xy, nil
}
