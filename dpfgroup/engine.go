package dpfgroup

import (
	"crypto/rand"
	"fmt"
	"math/big"

	secp256k1fp "github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
)

// Engine binds a security parameter lambda (in bits) to the PRG output
// width it implies. Init accepts the same three choices package dpf's
// sibling teacher construction did: 128, 192 or 256, selecting AES-128,
// AES-192 or AES-256 respectively as the length-doubling PRG's cipher.
type Engine struct {
	lambda      int
	lambdaBytes int
}

// Init builds an Engine for the given security parameter.
func Init(lambda int) (*Engine, error) {
	switch lambda {
	case 128, 192, 256:
	default:
		return nil, fmt.Errorf("%w: lambda must be 128, 192 or 256, got %d", ErrInvalidParameter, lambda)
	}
	return &Engine{lambda: lambda, lambdaBytes: lambda / 8}, nil
}

// Lambda reports the engine's security parameter in bits.
func (e *Engine) Lambda() int { return e.lambda }

func randomSeed(n int) ([]byte, error) {
	s := make([]byte, n)
	if _, err := rand.Read(s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipherBackend, err)
	}
	return s, nil
}

// bitsOf returns x's bits, MSB first, zero-extended to exactly width bits.
// It returns an error if x needs more than width bits.
func bitsOf(x *big.Int, width int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: point must be non-negative", ErrInvalidParameter)
	}
	if x.BitLen() > width {
		return nil, fmt.Errorf("%w: point needs %d bits, exceeds lambda=%d", ErrInvalidParameter, x.BitLen(), width)
	}
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		out[width-1-i] = byte(x.Bit(i))
	}
	return out, nil
}

// Gen generates a pair of keys for the point (alpha, beta): evaluating both
// keys at x == alpha and combining via CombineResults yields beta; any other
// x yields the field's zero element.
func (e *Engine) Gen(alpha, beta *big.Int) (k0, k1 Key, err error) {
	alphaBits, err := bitsOf(alpha, e.lambda)
	if err != nil {
		return Key{}, Key{}, err
	}

	const alice, bob = 0, 1
	s := [2][]byte{}
	t := [2]byte{0, 1}

	s[alice], err = randomSeed(e.lambdaBytes)
	if err != nil {
		return Key{}, Key{}, err
	}
	s[bob], err = randomSeed(e.lambdaBytes)
	if err != nil {
		return Key{}, Key{}, err
	}
	rootSeed := [2][]byte{append([]byte(nil), s[alice]...), append([]byte(nil), s[bob]...)}

	cws := make([]CorrectionWord, e.lambda)

	for i := 0; i < e.lambda; i++ {
		var sL, sR [2][]byte
		var tL, tR [2]byte
		for p := alice; p <= bob; p++ {
			out, expandErr := streamPRG(s[p], 2*(e.lambdaBytes+1))
			if expandErr != nil {
				return Key{}, Key{}, expandErr
			}
			l, tlBit, r, trBit, splitErr := splitPRGOutput(out, e.lambdaBytes)
			if splitErr != nil {
				return Key{}, Key{}, splitErr
			}
			sL[p], tL[p] = l, tlBit
			sR[p], tR[p] = r, trBit
		}

		alphaBit := alphaBits[i]
		keepLeft := alphaBit == 0

		sCW := xorBytes(sR[alice], sR[bob])
		if !keepLeft {
			sCW = xorBytes(sL[alice], sL[bob])
		}
		tCWLeft := (tL[alice] ^ tL[bob]) ^ alphaBit ^ 1
		tCWRight := (tR[alice] ^ tR[bob]) ^ alphaBit
		cws[i] = CorrectionWord{S: sCW, TLeft: tCWLeft & 1, TRight: tCWRight & 1}

		for p := alice; p <= bob; p++ {
			var sKeep []byte
			var tKeepOut, tCWKeep byte
			if keepLeft {
				sKeep, tKeepOut, tCWKeep = sL[p], tL[p], cws[i].TLeft
			} else {
				sKeep, tKeepOut, tCWKeep = sR[p], tR[p], cws[i].TRight
			}
			if t[p] == 1 {
				s[p] = xorBytes(sKeep, cws[i].S)
				t[p] = tKeepOut ^ tCWKeep
			} else {
				s[p] = sKeep
				t[p] = tKeepOut
			}
		}
	}

	finalSeedAlice, err := e.convert(s[alice])
	if err != nil {
		return Key{}, Key{}, err
	}
	finalSeedBob, err := e.convert(s[bob])
	if err != nil {
		return Key{}, Key{}, err
	}

	betaElem := new(secp256k1fp.Element).SetBigInt(beta)
	negAlice := new(secp256k1fp.Element).Neg(finalSeedAlice)
	sum := new(secp256k1fp.Element).Add(betaElem, negAlice)
	sum.Add(sum, finalSeedBob)
	if t[bob] == 1 {
		sum.Neg(sum)
	}
	finalBytes := sum.Bytes()

	cws = append(cws, CorrectionWord{S: finalBytes[:]})

	k0 = Key{Party: alice, Seed: rootSeed[alice], CW: cws}
	k1 = Key{Party: bob, Seed: rootSeed[bob], CW: cws}
	return k0, k1, nil
}

// Eval evaluates one party's key at x.
func (e *Engine) Eval(k Key, x *big.Int) (*big.Int, error) {
	if k.Party > 1 {
		return nil, fmt.Errorf("%w: key party tag %d is not 0 or 1", ErrInvalidParameter, k.Party)
	}
	if len(k.CW) != e.lambda+1 {
		return nil, fmt.Errorf("%w: key has %d correction words, want %d", ErrInvalidParameter, len(k.CW), e.lambda+1)
	}

	xBits, err := bitsOf(x, e.lambda)
	if err != nil {
		return nil, err
	}

	s := k.Seed
	t := k.Party
	for i := 0; i < e.lambda; i++ {
		out, expandErr := streamPRG(s, 2*(e.lambdaBytes+1))
		if expandErr != nil {
			return nil, expandErr
		}
		if t == 1 {
			cw := k.CW[i]
			appended := append(append([]byte(nil), cw.S...), cw.TLeft)
			appended = append(appended, cw.S...)
			appended = append(appended, cw.TRight)
			out = xorBytes(out, appended)
		}
		sL, tL, sR, tR, splitErr := splitPRGOutput(out, e.lambdaBytes)
		if splitErr != nil {
			return nil, splitErr
		}
		if xBits[i] == 0 {
			s, t = sL, tL
		} else {
			s, t = sR, tR
		}
	}

	finalSeed, err := e.convert(s)
	if err != nil {
		return nil, err
	}
	cwFinal := new(secp256k1fp.Element).SetBytes(k.CW[e.lambda].S)

	res := new(secp256k1fp.Element).Set(finalSeed)
	if t == 1 {
		res.Add(finalSeed, cwFinal)
	}
	if k.Party == 1 {
		res.Neg(res)
	}

	resBytes := res.Bytes()
	return new(big.Int).SetBytes(resBytes[:]), nil
}

// CombineResults adds two partial evaluations in the secp256k1 base field.
func (e *Engine) CombineResults(y0, y1 *big.Int) *big.Int {
	a := new(secp256k1fp.Element).SetBigInt(y0)
	b := new(secp256k1fp.Element).SetBigInt(y1)
	sum := new(secp256k1fp.Element).Add(a, b)
	sumBytes := sum.Bytes()
	return new(big.Int).SetBytes(sumBytes[:])
}

// convert maps a raw seed into the secp256k1 base field by stretching it
// through the PRG once more and reducing: the curve's base field has prime
// order, so a Set reduces mod that prime for us.
func (e *Engine) convert(seed []byte) (*secp256k1fp.Element, error) {
	stretched, err := streamPRG(seed, e.lambdaBytes+1)
	if err != nil {
		return nil, err
	}
	elem := new(secp256k1fp.Element).SetBigInt(new(big.Int).SetBytes(stretched))
	return elem, nil
}
