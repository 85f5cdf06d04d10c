package dpf

import (
	"fmt"
	"runtime"
	"sync"
)

// parallelDepthThreshold is the number of top levels FullEvalRaw expands
// sequentially before fanning the remaining subtrees out across
// goroutines. Chosen so the sequential prefix stays small (at most 256
// subtree roots) while still giving every worker goroutine a meaningfully
// sized slice of the domain to walk.
const parallelDepthThreshold = 8

// Leaf is one full-domain evaluator output: the raw (seed, control bit)
// pair at a leaf, before the reduce/cw_final/negate post-processing that
// turns it into a field share.
type Leaf struct {
	Seed [16]byte
	Bit  byte
}

// FullEvalRaw computes one party's key at every point in [0, 2^n), in
// MSB-first leaf order, returning the raw (seed, control bit) pairs. It is
// the caller's responsibility to reduce each seed to a field element via
// the same steps Eval performs (see FullEvalShares for a bundled version).
//
// Unlike Eval and BatchEval, FullEvalRaw takes the raw 16-byte PRG key
// rather than an existing *Context: for n beyond parallelDepthThreshold it
// fans work out across goroutines, each of which must own its own Context
// (see the Context doc comment), and a Context alone cannot be re-derived
// without the key bytes it was built from.
func FullEvalRaw(key [16]byte, n int, k Key) ([]Leaf, error) {
	if n < 1 || n > 64 {
		return nil, fmt.Errorf("%w: domain width %d out of [1,64]", ErrInvalidParameter, n)
	}
	if k.DomainWidth() != n {
		return nil, fmt.Errorf("%w: key has domain width %d, FullEvalRaw called with n=%d", ErrInvalidParameter, k.DomainWidth(), n)
	}

	seqLevels := n
	if n > parallelDepthThreshold {
		seqLevels = parallelDepthThreshold
	}

	rootCtx, err := NewContext(key)
	if err != nil {
		return nil, err
	}
	defer rootCtx.Close()

	roots, rootBits, err := expandSubtree(rootCtx, k.cw[:seqLevels], k.rootSeed, k.rootBit)
	if err != nil {
		return nil, err
	}

	leaves := make([]Leaf, uint64(1)<<uint(n))

	if seqLevels == n {
		for i, s := range roots {
			leaves[i] = Leaf{Seed: [16]byte(s), Bit: rootBits[i]}
		}
		return leaves, nil
	}

	remaining := k.cw[seqLevels:n]
	subtreeSize := 1 << uint(n-seqLevels)

	sem := make(chan struct{}, workerLimit())
	var wg sync.WaitGroup
	errs := make([]error, len(roots))

	for r := range roots {
		r := r
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			subCtx, ctxErr := NewContext(key)
			if ctxErr != nil {
				errs[r] = ctxErr
				return
			}
			defer subCtx.Close()

			subSeeds, subBits, expandErr := expandSubtree(subCtx, remaining, roots[r], rootBits[r])
			if expandErr != nil {
				errs[r] = expandErr
				return
			}
			base := r * subtreeSize
			for i, s := range subSeeds {
				leaves[base+i] = Leaf{Seed: [16]byte(s), Bit: subBits[i]}
			}
		}()
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return leaves, nil
}

// FullEvalShares computes one party's field shares at every point in
// [0, 2^n), applying the same reduce/cw_final/negate post-processing Eval
// applies to a single point.
func FullEvalShares(key [16]byte, n int, k Key) ([]uint64, error) {
	leaves, err := FullEvalRaw(key, n, k)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(leaves))
	for i, leaf := range leaves {
		share := seedToField(seed(leaf.Seed))
		if leaf.Bit == 1 {
			share = reduceAdd(share + k.finalWord)
		}
		if k.party == 1 {
			share = neg(share)
		}
		out[i] = share
	}
	return out, nil
}

func workerLimit() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}
