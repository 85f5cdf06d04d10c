package dpf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoEntropySourceReturnsDistinctValues(t *testing.T) {
	var src CryptoEntropySource
	a, err := src.Read16()
	assert.NoError(t, err)
	b, err := src.Read16()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

type failingEntropy struct{}

func (failingEntropy) Read16() ([16]byte, error) {
	return [16]byte{}, errors.New("entropy source unavailable")
}

func TestGenPropagatesEntropyFailure(t *testing.T) {
	ctx := newTestContext(t, 0x90)
	_, _, err := Gen(ctx, 8, 1, WithEntropySource(failingEntropy{}))
	assert.Error(t, err)
}
