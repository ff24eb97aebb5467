// Copyright 2012 Dmitry Chestnykh (original Go scrypt implementation)
// Copyright 2009 Colin Percival (original C implementation and design)
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scrypt implements the scrypt key derivation function, as defined
// in Colin Percival's paper "Stronger Key Derivation via Sequential
// Memory-Hard Functions", and a self-describing text envelope for storing
// and verifying scrypt password hashes.
//
// Use Key to derive raw key material for a fixed cost (N, r, p) and output
// length, or use Encode/Compare/IsValid to produce and check the envelope
// strings ("$s2$N$r$p$salt$hash") that this package's Hasher emits.
package scrypt
