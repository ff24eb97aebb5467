package scrypt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEnvelopeRejectsWrongTagLetter(t *testing.T) {
	require.False(t, isValidEnvelope("$e1$adasdasd$asdasdsd"))
}

func TestIsValidEnvelopeRejectsWrongFieldCount(t *testing.T) {
	require.False(t, isValidEnvelope("$s2$16384$8$1$salt$dk$extra"))
	require.False(t, isValidEnvelope("$s2$16384$8$1$salt"))
	require.False(t, isValidEnvelope("$s1$40000801$salt$dk$extra"))
}

func TestIsValidEnvelopeAcceptsEachVersion(t *testing.T) {
	require.True(t, isValidEnvelope("$s2$16384$8$1$c2FsdA==$ZGVyaXZlZGtleQ=="))
	require.True(t, isValidEnvelope("$s1$40000801$c2FsdA==$ZGVyaXZlZGtleQ=="))
	require.True(t, isValidEnvelope("$s0$40000801$c2FsdA==$ZGVyaXZlZGtleQ=="))
}

func TestIsValidEnvelopeRejectsBadTag(t *testing.T) {
	require.False(t, isValidEnvelope("$s3$16384$8$1$c2FsdA==$ZGVyaXZlZGtleQ=="))
	require.False(t, isValidEnvelope("$X2$16384$8$1$c2FsdA==$ZGVyaXZlZGtleQ=="))
	require.False(t, isValidEnvelope("not an envelope at all"))
	require.False(t, isValidEnvelope(""))
}

func TestFormatV2ParseRoundTrip(t *testing.T) {
	// Parsing a v2 envelope and re-emitting it from the parsed fields
	// must reproduce the input byte-for-byte.
	params := Params{N: 1024, R: 8, P: 1}
	salt := []byte("0123456789abcdef0123456789abcdef")
	dk := []byte("thirtytwobytederivedkeyyyyyyyyy!")

	s := formatV2(params, salt, dk)
	parsed, err := parseEnvelope(s)
	require.NoError(t, err)
	require.Equal(t, v2, parsed.ver)
	require.Equal(t, params, parsed.params)
	require.Equal(t, salt, parsed.salt)
	require.Equal(t, dk, parsed.dk)
	require.Equal(t, s, parsed.format())
}

func TestParseV1Vector(t *testing.T) {
	// Packed 0x40000801 decodes to N=0x4000=16384, r=0x08=8, p=0x01=1.
	s := "$s1$40000801$5ScyYcGbFmSF5P+A64cThg+c6rFtsfyxDHkWWCt97xI=$U+7EMhBXHjNHudmn/sgvX4VZ6ddoSKLkL0nDOSKYLaQ="
	parsed, err := parseEnvelope(s)
	require.NoError(t, err)
	require.Equal(t, v1, parsed.ver)
	require.Equal(t, Params{N: 16384, R: 8, P: 1}, parsed.params)
}

func TestParseV0RejectsUnreasonableExponent(t *testing.T) {
	// The packed value 0x40000801 decodes, under the v0 exponent rule,
	// to an exponent of 0x4000 — far beyond any representable N. This
	// module rejects rather than attempting to allocate 2^16384.
	s := "$s0$40000801$eM1F+ITBb6SVFQ5QxD2jWXY8s4RGsIU+Yh4JosOewoY=$1h22/MY2cpm9Vz7//NRiXwCjffVXQWOKJ7n27vNVfP4="
	_, err := parseEnvelope(s)
	require.ErrorIs(t, err, ErrInvalidEnvelope)
}

func TestParseV0SmallExponent(t *testing.T) {
	s := formatV0(Params{N: 1 << 10, R: 8, P: 1}, []byte("saltsaltsaltsalt"), make([]byte, 32))
	parsed, err := parseEnvelope(s)
	require.NoError(t, err)
	require.Equal(t, v0, parsed.ver)
	require.Equal(t, 1<<10, parsed.params.N)
	require.Equal(t, 8, parsed.params.R)
	require.Equal(t, 1, parsed.params.P)
}

func TestParseEnvelopeRejectsBadBase64(t *testing.T) {
	_, err := parseEnvelope("$s2$16384$8$1$not-valid-base64!!!$ZGVyaXZlZGtleQ==")
	require.ErrorIs(t, err, ErrInvalidEnvelope)
}

func TestParseEnvelopeRejectsNonNumericParams(t *testing.T) {
	_, err := parseEnvelope("$s2$abc$8$1$c2FsdA==$ZGVyaXZlZGtleQ==")
	require.ErrorIs(t, err, ErrInvalidEnvelope)
}
