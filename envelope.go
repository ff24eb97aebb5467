// Copyright 2012 Dmitry Chestnykh (original Go scrypt implementation)
// Copyright 2009 Colin Percival (original C implementation and design)
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// version tags the three envelope formats this package understands.
// Only v2 is ever produced by Encode; v0 and v1 are accepted by Compare
// for backwards compatibility with hashes stored by older deployments.
type version int

const (
	v0 version = iota
	v1
	v2
)

// parsedEnvelope is the parsed form of a "$sX$..." hash string: version,
// (N, r, p), salt, and derived key, all carried together so a parsed
// envelope can be re-derived and re-formatted without any other input.
type parsedEnvelope struct {
	ver    version
	params Params
	salt   []byte
	dk     []byte
}

// formatV2 renders params, salt and dk as "$s2$N$r$p$b64salt$b64dk", the only format
// Encode ever produces.
func formatV2(params Params, salt, dk []byte) string {
	return fmt.Sprintf("$s2$%d$%d$%d$%s$%s",
		params.N, params.R, params.P,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(dk))
}

// formatV1 renders params, salt and dk as "$s1$hexpacked$b64salt$b64dk", where hexpacked is
// lowercase_hex(N<<16 | r<<8 | p) with r and p limited to one byte and N
// to two bytes.
func formatV1(params Params, salt, dk []byte) string {
	packed := uint32(params.N&0xffff)<<16 | uint32(params.R&0xff)<<8 | uint32(params.P&0xff)
	return fmt.Sprintf("$s1$%x$%s$%s",
		packed,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(dk))
}

// formatV0 renders params, salt and dk as "$s0$hexpacked$b64salt$b64dk", where hexpacked
// packs the exponent e (N = 2^e) the same way formatV1 packs N itself.
func formatV0(params Params, salt, dk []byte) string {
	exponent := uint32(0)
	for n := params.N; n > 1; n >>= 1 {
		exponent++
	}
	packed := (exponent&0xffff)<<16 | uint32(params.R&0xff)<<8 | uint32(params.P&0xff)
	return fmt.Sprintf("$s0$%x$%s$%s",
		packed,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(dk))
}

// format renders e in its own version's grammar; this is what Compare
// re-emits for comparison against the stored envelope.
func (e *parsedEnvelope) format() string {
	switch e.ver {
	case v2:
		return formatV2(e.params, e.salt, e.dk)
	case v1:
		return formatV1(e.params, e.salt, e.dk)
	case v0:
		return formatV0(e.params, e.salt, e.dk)
	default:
		panic("scrypt: unreachable version")
	}
}

// isValidEnvelope implements IsValid's structural check, used both by the
// exported IsValid and as the first gate inside parseEnvelope: accept a
// string only when its second field has length 2 and begins with "s", the
// version digit is 0, 1, or 2, and the field count matches that version's
// grammar (7 for v2, 5 for v0/v1).
func isValidEnvelope(s string) bool {
	fields := strings.Split(s, "$")
	if len(fields) < 2 {
		return false
	}
	tag := fields[1]
	if len(tag) != 2 || tag[0] != 's' {
		return false
	}
	switch tag[1] {
	case '0', '1':
		return len(fields) == 5
	case '2':
		return len(fields) == 7
	default:
		return false
	}
}

// parseEnvelope parses s into an envelope, or returns ErrInvalidEnvelope.
func parseEnvelope(s string) (*parsedEnvelope, error) {
	if !isValidEnvelope(s) {
		return nil, fmt.Errorf("%w: malformed envelope", ErrInvalidEnvelope)
	}

	fields := strings.Split(s, "$")
	switch fields[1][1] {
	case '2':
		return parseV2(fields)
	case '1':
		return parseV1(fields)
	case '0':
		return parseV0(fields)
	default:
		return nil, fmt.Errorf("%w: unrecognized version", ErrInvalidEnvelope)
	}
}

// parseV2 parses "$s2$N$r$p$b64salt$b64dk": fields[0] is the empty
// leading field from the split, fields[1] is "s2".
func parseV2(fields []string) (*parsedEnvelope, error) {
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: bad N: %v", ErrInvalidEnvelope, err)
	}
	r, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: bad r: %v", ErrInvalidEnvelope, err)
	}
	p, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: bad p: %v", ErrInvalidEnvelope, err)
	}
	salt, dk, err := decodeSaltAndDK(fields[5], fields[6])
	if err != nil {
		return nil, err
	}
	return &parsedEnvelope{ver: v2, params: Params{N: n, R: r, P: p}, salt: salt, dk: dk}, nil
}

// parseV1 parses "$s1$hexpacked$b64salt$b64dk" where hexpacked packs N
// (two bytes), r (one byte), and p (one byte).
func parseV1(fields []string) (*parsedEnvelope, error) {
	packed, err := strconv.ParseUint(fields[2], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: bad packed config: %v", ErrInvalidEnvelope, err)
	}
	n := int((packed >> 16) & 0xffff)
	r := int((packed >> 8) & 0xff)
	p := int(packed & 0xff)

	salt, dk, err := decodeSaltAndDK(fields[3], fields[4])
	if err != nil {
		return nil, err
	}
	return &parsedEnvelope{ver: v1, params: Params{N: n, R: r, P: p}, salt: salt, dk: dk}, nil
}

// parseV0 parses "$s0$hexpacked$b64salt$b64dk" where hexpacked packs the
// exponent e (N = 2^e, two bytes), r (one byte), and p (one byte).
func parseV0(fields []string) (*parsedEnvelope, error) {
	packed, err := strconv.ParseUint(fields[2], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: bad packed config: %v", ErrInvalidEnvelope, err)
	}
	exponent := (packed >> 16) & 0xffff
	r := int((packed >> 8) & 0xff)
	p := int(packed & 0xff)

	if exponent >= 63 {
		return nil, fmt.Errorf("%w: exponent too large", ErrInvalidEnvelope)
	}
	n := 1 << exponent

	salt, dk, err := decodeSaltAndDK(fields[3], fields[4])
	if err != nil {
		return nil, err
	}
	return &parsedEnvelope{ver: v0, params: Params{N: n, R: r, P: p}, salt: salt, dk: dk}, nil
}

func decodeSaltAndDK(b64salt, b64dk string) (salt, dk []byte, err error) {
	salt, err = base64.StdEncoding.DecodeString(b64salt)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad salt encoding: %v", ErrInvalidEnvelope, err)
	}
	dk, err = base64.StdEncoding.DecodeString(b64dk)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: bad derived key encoding: %v", ErrInvalidEnvelope, err)
	}
	return salt, dk, nil
}

// validate runs the parameter guard (Params.validate) appropriate to e's
// version: v0 skips the power-of-two check, since its stored field is an
// exponent and N = 2^e is trivially a power of two; v1 and v2 enforce it.
// This must run before deriveKey allocates V/XY, so a malformed envelope
// cannot be used to force a large allocation.
func (e *parsedEnvelope) validate() error {
	strict := e.ver != v0
	return e.params.validate(strict)
}
