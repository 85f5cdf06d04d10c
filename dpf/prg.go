package dpf

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Context is a length-doubling PRG bound to a fixed 128-bit AES key. It
// implements G: {0,1}^128 -> {0,1}^128 x {0,1} x {0,1}^128 x {0,1} via a
// Davies-Meyer construction over two fixed-key AES-128-ECB calls.
//
// A Context is a scoped resource: construct one with NewContext and release
// it with Close on every exit path. Internally cipher.Block implementations
// may keep scratch state across calls, so a Context must never be shared
// between goroutines; each worker derives its own Context from the same key
// bytes instead.
type Context struct {
	block cipher.Block
}

// NewContext constructs a PRG context bound to the given 128-bit AES key.
func NewContext(key [16]byte) (*Context, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipherBackend, err)
	}
	return &Context{block: block}, nil
}

// Close releases the context. After Close, the Context must not be used
// again.
func (c *Context) Close() {
	c.block = nil
}

// expand implements G(x): two AES-128 encryptions under the context's fixed
// key, Davies-Meyer whitened, with the left/right domain separator folded
// back in before the control bit is read off the low bit of each half.
func (c *Context) expand(x seed) (sL seed, tL byte, sR seed, tR byte, err error) {
	if c.block == nil {
		return seed{}, 0, seed{}, 0, fmt.Errorf("%w: context is closed", ErrCipherBackend)
	}

	xPrime := x.clearLSB()
	xPrimeRight := xPrime
	xPrimeRight[0] |= 1 // xPrime XOR 1, restoring the right-child domain separator

	var y0, y1 seed
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCipherBackend, r)
		}
	}()
	c.block.Encrypt(y0[:], xPrime[:])
	c.block.Encrypt(y1[:], xPrimeRight[:])

	z0 := y0.xor(xPrime)
	z1 := y1.xor(xPrimeRight)

	tL = z0.lsb()
	tR = z1.lsb()
	sL = z0.clearLSB()
	sR = z1.clearLSB()
	return sL, tL, sR, tR, nil
}
