package dpf

import "fmt"

// maxCacheLevels bounds the shallow-layer cache BatchEval builds: the top
// min(maxCacheLevels, n) levels of the party's tree are expanded once and
// shared across every point in the batch.
const maxCacheLevels = 12

// Eval evaluates a single party's key at one input x. It is equivalent to
// calling BatchEval with a one-element slice, but skips building a cache
// that a single evaluation would never amortize.
func Eval(ctx *Context, n int, k Key, x uint64) (uint64, error) {
	if err := checkEvalArgs(n, k, x); err != nil {
		return 0, err
	}
	return descend(ctx, k, k.rootSeed, k.rootBit, 0, n, x)
}

// BatchEvalOption configures BatchEval.
type BatchEvalOption func(*batchEvalConfig)

type batchEvalConfig struct {
	cacheLevel int
	cacheLevelSet bool
}

// WithCacheLevel overrides the shallow-layer cache depth BatchEval builds.
// The default is min(12, n); this exists so callers (chiefly tests) can
// confirm that every cache depth produces byte-identical results, per the
// correctness property that cache depth is a pure performance lever.
func WithCacheLevel(c int) BatchEvalOption {
	return func(cfg *batchEvalConfig) { cfg.cacheLevel = c; cfg.cacheLevelSet = true }
}

// BatchEval evaluates a single party's key at every point in xs, sharing
// the top min(12, n) levels of PRG expansion across the whole batch.
func BatchEval(ctx *Context, n int, k Key, xs []uint64, opts ...BatchEvalOption) ([]uint64, error) {
	for _, x := range xs {
		if err := checkEvalArgs(n, k, x); err != nil {
			return nil, err
		}
	}

	c := maxCacheLevels
	if n < c {
		c = n
	}
	cfg := batchEvalConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cacheLevelSet {
		c = cfg.cacheLevel
		if c < 0 || c > n {
			return nil, fmt.Errorf("%w: cache level %d out of [0,%d]", ErrInvalidParameter, c, n)
		}
	}

	cacheSeed, cacheBit, err := buildCache(ctx, k, c)
	if err != nil {
		return nil, err
	}

	out := make([]uint64, len(xs))
	for i, x := range xs {
		prefix := x
		if n > c {
			prefix = x >> uint(n-c)
		}
		var idx uint64
		if c > 0 {
			idx = prefix & ((uint64(1) << uint(c)) - 1)
		}
		share, err := descend(ctx, k, cacheSeed[idx], cacheBit[idx], c, n, x)
		if err != nil {
			return nil, err
		}
		out[i] = share
	}
	return out, nil
}

// buildCache expands the top c levels of the party's tree into two
// parallel arrays of length 2^c, indexed by the high c bits of x.
func buildCache(ctx *Context, k Key, c int) (seeds []seed, bits []byte, err error) {
	return expandSubtree(ctx, k.cw[:c], k.rootSeed, k.rootBit)
}

// expandSubtree expands a subtree rooted at (rootSeed, rootBit) down
// len(cw) levels, applying cw[0], cw[1], ... in order, and returns the
// 2^len(cw) resulting (seed, control bit) pairs in MSB-first leaf order.
//
// It expands in place, level by level, writing node idx's children to
// 2*idx and 2*idx+1 of the same backing array and walking idx from high to
// low within a level: since 2*idx > idx for every idx > 0 processed this
// way, a child slot is only ever written after its own value has already
// been read (the idx == 0 case reads seeds[0] before overwriting it too).
// This lets one array double in place rather than ping-ponging between two.
func expandSubtree(ctx *Context, cw []correctionWord, rootSeed seed, rootBit byte) (seeds []seed, bits []byte, err error) {
	levels := len(cw)
	width := 1 << uint(levels)
	seeds = make([]seed, width)
	bits = make([]byte, width)
	seeds[0] = rootSeed
	bits[0] = rootBit

	filled := 1
	for level := 0; level < levels; level++ {
		lvl := cw[level]
		for idx := filled - 1; idx >= 0; idx-- {
			sL, tL, sR, tR, expandErr := ctx.expand(seeds[idx])
			if expandErr != nil {
				return nil, nil, expandErr
			}
			if bits[idx] == 1 {
				sL = sL.xor(lvl.s)
				sR = sR.xor(lvl.s)
				tL = xorBit(tL, lvl.tLeft)
				tR = xorBit(tR, lvl.tRight)
			}
			seeds[2*idx] = sL
			bits[2*idx] = tL
			seeds[2*idx+1] = sR
			bits[2*idx+1] = tR
		}
		filled *= 2
	}
	return seeds, bits, nil
}

// descend walks the remaining n-fromLevel levels of the tree starting from
// (s, t) at fromLevel, using the high-to-low bits of x below that level,
// and returns the field share for party k.Party().
//
// The child selection is written as an arithmetic multiplex on the input
// bit rather than a branch, since x (unlike the control bit) is the
// evaluator's per-query secret and this is the hot loop both Eval and
// BatchEval spend their time in.
func descend(ctx *Context, k Key, s seed, t byte, fromLevel, n int, x uint64) (uint64, error) {
	for i := fromLevel; i < n; i++ {
		cw := k.cw[i]
		sL, tL, sR, tR, err := ctx.expand(s)
		if err != nil {
			return 0, err
		}
		if t == 1 {
			sL = sL.xor(cw.s)
			sR = sR.xor(cw.s)
			tL = xorBit(tL, cw.tLeft)
			tR = xorBit(tR, cw.tRight)
		}

		xi := byte((x >> uint(n-1-i)) & 1)
		s = muxSeed(xi, sL, sR)
		t = muxBit(xi, tL, tR)
	}

	out := seedToField(s)
	if t == 1 {
		out = reduceAdd(out + k.finalWord)
	}
	if k.party == 1 {
		out = neg(out)
	}
	return out, nil
}

// muxSeed selects sR when bit == 1 and sL when bit == 0, via arithmetic
// rather than a conditional branch.
func muxSeed(bit byte, sL, sR seed) seed {
	var mask byte
	if bit == 1 {
		mask = 0xFF
	}
	var out seed
	for i := range out {
		out[i] = (sL[i] &^ mask) | (sR[i] & mask)
	}
	return out
}

// muxBit selects tR when bit == 1 and tL when bit == 0.
func muxBit(bit, tL, tR byte) byte {
	return (tL &^ bit) | (tR & bit)
}

func checkEvalArgs(n int, k Key, x uint64) error {
	if n < 1 || n > 64 {
		return fmt.Errorf("%w: domain width %d out of [1,64]", ErrInvalidParameter, n)
	}
	if k.DomainWidth() != n {
		return fmt.Errorf("%w: key has domain width %d, Eval called with n=%d", ErrInvalidParameter, k.DomainWidth(), n)
	}
	if n < 64 && x>>uint(n) != 0 {
		return fmt.Errorf("%w: x %d exceeds domain width %d", ErrInvalidParameter, x, n)
	}
	return nil
}
