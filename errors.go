// Copyright 2012 Dmitry Chestnykh (original Go scrypt implementation)
// Copyright 2009 Colin Percival (original C implementation and design)
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import "errors"

// Error kinds returned by this package. Use errors.Is to test for a
// specific kind; wrapped errors carry additional context via %w.
var (
	// ErrInvalidArgument is returned for an empty or nil password, or
	// when the configured salt source yields zero bytes.
	ErrInvalidArgument = errors.New("scrypt: invalid argument")

	// ErrInvalidParameter is returned when (N, r, p) fails the guard
	// in Params.validate.
	ErrInvalidParameter = errors.New("scrypt: invalid parameter")

	// ErrInvalidEnvelope is returned when an envelope string fails to
	// parse: wrong shape, bad base64, or an unrecognized version tag.
	ErrInvalidEnvelope = errors.New("scrypt: invalid envelope")

	// ErrOutOfMemory is returned when allocating the V/XY scratch panics.
	// The Go runtime's own out-of-memory condition is fatal to the process
	// and is not reported through this error.
	ErrOutOfMemory = errors.New("scrypt: out of memory")
)
