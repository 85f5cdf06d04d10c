package dpfgroup

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// streamPRG stretches a lambda-bit seed into length pseudorandom bytes via
// AES-CTR with an all-zero IV: seed lengths of 16/24/32 bytes select
// AES-128/192/256, matching the three lambda values Init accepts exactly, so
// the seed doubles as the block cipher key directly.
func streamPRG(seed []byte, length int) ([]byte, error) {
	block, err := aes.NewCipher(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipherBackend, err)
	}

	output := make([]byte, length)
	iv := make([]byte, aes.BlockSize)
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(output, output)
	return output, nil
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// splitPRGOutput parses a streamPRG output of 2*(lambdaBytes+1) bytes into
// the left/right child seeds and control bits, per §4.2's layout for this
// variant's wider PRG.
func splitPRGOutput(prgOutput []byte, lambdaBytes int) (sL []byte, tL byte, sR []byte, tR byte, err error) {
	if len(prgOutput) != 2*(lambdaBytes+1) {
		return nil, 0, nil, 0, fmt.Errorf("%w: PRG output has length %d, want %d", ErrCipherBackend, len(prgOutput), 2*(lambdaBytes+1))
	}
	sL = prgOutput[:lambdaBytes]
	tL = prgOutput[lambdaBytes] & 1
	sR = prgOutput[lambdaBytes+1 : 2*lambdaBytes+1]
	tR = prgOutput[2*lambdaBytes+1] & 1
	return sL, tL, sR, tR, nil
}
