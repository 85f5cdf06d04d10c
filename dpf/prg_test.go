package dpf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextExpandDeterministic(t *testing.T) {
	var key [16]byte
	for i := range key {
		key[i] = byte(i)
	}
	ctx, err := NewContext(key)
	assert.NoError(t, err)
	defer ctx.Close()

	var x seed
	for i := range x {
		x[i] = byte(2 * i)
	}

	sL1, tL1, sR1, tR1, err := ctx.expand(x)
	assert.NoError(t, err)
	sL2, tL2, sR2, tR2, err := ctx.expand(x)
	assert.NoError(t, err)

	assert.Equal(t, sL1, sL2)
	assert.Equal(t, sR1, sR2)
	assert.Equal(t, tL1, tL2)
	assert.Equal(t, tR1, tR2)
}

func TestContextExpandClearsLSB(t *testing.T) {
	var key [16]byte
	ctx, err := NewContext(key)
	assert.NoError(t, err)
	defer ctx.Close()

	var x seed
	sL, _, sR, _, err := ctx.expand(x)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), sL.lsb())
	assert.Equal(t, byte(0), sR.lsb())
}

func TestContextExpandLeftRightDiffer(t *testing.T) {
	var key [16]byte
	for i := range key {
		key[i] = byte(17 * i)
	}
	ctx, err := NewContext(key)
	assert.NoError(t, err)
	defer ctx.Close()

	var x seed
	sL, _, sR, _, err := ctx.expand(x)
	assert.NoError(t, err)
	assert.NotEqual(t, sL, sR, "G's left and right outputs should not coincide")
}

func TestContextExpandAfterClose(t *testing.T) {
	var key [16]byte
	ctx, err := NewContext(key)
	assert.NoError(t, err)
	ctx.Close()

	_, _, _, _, err = ctx.expand(seed{})
	assert.ErrorIs(t, err, ErrCipherBackend)
}
