package dpf

import (
	"errors"
	"fmt"
)

// GenOption configures Gen.
type GenOption func(*genConfig)

type genConfig struct {
	entropy EntropySource
}

// WithEntropySource overrides the default crypto/rand-backed entropy
// source. Useful for deterministic tests; production callers should not
// need it.
func WithEntropySource(src EntropySource) GenOption {
	return func(c *genConfig) { c.entropy = src }
}

// Gen generates a pair of DPF keys for domain width n and secret index
// alpha, using the PRG bound to ctx. Evaluating both returned keys at any
// x in [0, 2^n) and summing the shares mod p yields 1 at x == alpha and 0
// elsewhere.
func Gen(ctx *Context, n int, alpha uint64, opts ...GenOption) (k0, k1 Key, err error) {
	if n < 1 || n > 64 {
		return Key{}, Key{}, fmt.Errorf("%w: domain width %d out of [1,64]", ErrInvalidParameter, n)
	}
	if n < 64 && alpha>>uint(n) != 0 {
		return Key{}, Key{}, fmt.Errorf("%w: alpha %d exceeds domain width %d", ErrInvalidParameter, alpha, n)
	}

	cfg := genConfig{entropy: CryptoEntropySource{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	root0, err := cfg.entropy.Read16()
	if err != nil {
		if !errors.Is(err, ErrEntropyFailure) {
			err = fmt.Errorf("%w: %v", ErrEntropyFailure, err)
		}
		return Key{}, Key{}, err
	}
	root1, err := cfg.entropy.Read16()
	if err != nil {
		if !errors.Is(err, ErrEntropyFailure) {
			err = fmt.Errorf("%w: %v", ErrEntropyFailure, err)
		}
		return Key{}, Key{}, err
	}

	const alice, bob = 0, 1
	s := [2]seed{seed(root0), seed(root1)}
	t := [2]byte{0, 1} // t^0_alice = 0, t^0_bob = 1

	cws := make([]correctionWord, n)

	for i := 0; i < n; i++ {
		alphaBit := byte((alpha >> uint(n-1-i)) & 1)

		var sL, sR [2]seed
		var tL, tR [2]byte
		for p := alice; p <= bob; p++ {
			l, tl, r, tr, expandErr := ctx.expand(s[p])
			if expandErr != nil {
				return Key{}, Key{}, expandErr
			}
			sL[p], tL[p] = l, tl
			sR[p], tR[p] = r, tr
		}

		sCW := sR[alice].xor(sR[bob])
		if alphaBit == 1 {
			sCW = sL[alice].xor(sL[bob])
		}
		tCWLeft := xorBit(xorBit(tL[alice], tL[bob]), alphaBit^1)
		tCWRight := xorBit(xorBit(tR[alice], tR[bob]), alphaBit)
		cws[i] = correctionWord{s: sCW, tLeft: tCWLeft, tRight: tCWRight}

		for p := alice; p <= bob; p++ {
			var sKeep seed
			var tKeepOut, tCWKeep byte
			if alphaBit == 1 {
				sKeep, tKeepOut, tCWKeep = sR[p], tR[p], tCWRight
			} else {
				sKeep, tKeepOut, tCWKeep = sL[p], tL[p], tCWLeft
			}

			if t[p] == 1 {
				s[p] = sKeep.xor(sCW)
				t[p] = xorBit(tKeepOut, tCWKeep)
			} else {
				s[p] = sKeep
				t[p] = tKeepOut
			}
		}
	}

	finalSeedAlice := seedToField(s[alice])
	finalSeedBob := seedToField(s[bob])
	cwFinal := modP(1 - int64(finalSeedAlice) + int64(finalSeedBob))
	if t[bob] == 1 {
		cwFinal = neg(cwFinal)
	}

	k0 = Key{party: alice, rootSeed: seed(root0), rootBit: 0, cw: cws, finalWord: cwFinal}
	k1 = Key{party: bob, rootSeed: seed(root1), rootBit: 1, cw: cws, finalWord: cwFinal}
	return k0, k1, nil
}
