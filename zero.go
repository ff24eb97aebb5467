// Copyright 2012 Dmitry Chestnykh (original Go scrypt implementation)
// Copyright 2009 Colin Percival (original C implementation and design)
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

// zero overwrites buf with zeros. Transient buffers (B, V, XY) hold
// password-derived material and are zeroed before release so it doesn't
// linger in memory after the derivation that produced it returns.
func zero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
