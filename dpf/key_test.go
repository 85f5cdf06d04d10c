package dpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLen(t *testing.T) {
	assert.Equal(t, 52, keyLen(1))
	assert.Equal(t, 18*20+34, keyLen(20))
}

func TestKeyEncodeDecodeRoundTrip(t *testing.T) {
	var key [16]byte
	for i := range key {
		key[i] = byte(3 * i)
	}
	ctx, err := NewContext(key)
	assert.NoError(t, err)
	defer ctx.Close()

	k0, k1, err := Gen(ctx, 8, 5)
	assert.NoError(t, err)

	buf0 := k0.Encode()
	buf1 := k1.Encode()
	assert.Len(t, buf0, keyLen(8))
	assert.Len(t, buf1, keyLen(8))

	decoded0, err := DecodeKey(8, buf0)
	assert.NoError(t, err)
	assert.Equal(t, k0, decoded0)

	decoded1, err := DecodeKey(8, buf1)
	assert.NoError(t, err)
	assert.Equal(t, k1, decoded1)
}

func TestKeysDifferOnlyInHeader(t *testing.T) {
	var key [16]byte
	ctx, err := NewContext(key)
	assert.NoError(t, err)
	defer ctx.Close()

	k0, k1, err := Gen(ctx, 10, 42)
	assert.NoError(t, err)

	buf0 := k0.Encode()
	buf1 := k1.Encode()
	assert.Equal(t, len(buf0), len(buf1))

	for i := 18; i < len(buf0); i++ {
		assert.Equalf(t, buf0[i], buf1[i], "byte %d should be shared between k0 and k1", i)
	}
	// Byte 0 is the party tag: 0 for k0 and 1 for k1, so it always differs.
	assert.NotEqual(t, buf0[0], buf1[0])
}

func TestDecodeKeyRejectsWrongLength(t *testing.T) {
	_, err := DecodeKey(8, make([]byte, 10))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDecodeKeyRejectsBadDomainWidth(t *testing.T) {
	_, err := DecodeKey(0, make([]byte, keyLen(1)))
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = DecodeKey(65, make([]byte, keyLen(65)))
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDecodeKeyRejectsBadPartyTag(t *testing.T) {
	buf := make([]byte, keyLen(4))
	buf[0] = 7
	_, err := DecodeKey(4, buf)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
