// Package dspf builds a sum-of-point-functions batch layer on top of
// package dpf: one key pair encodes several (point) pairs at once, so a
// caller who needs "is x one of these t points" can generate and evaluate a
// single object instead of juggling t independent DPF keys by hand.
package dspf

import (
	"fmt"

	"github.com/ariane-crypt/dpf/dpf"
)

// Key bundles the per-point DPF keys making up one party's share of a
// multi-point batch. All inner keys share the same domain width.
type Key struct {
	n       int
	dpfKeys []dpf.Key
}

// DomainWidth reports the domain width shared by every point in the batch.
func (k Key) DomainWidth() int { return k.n }

// PointCount reports how many points this key batches together.
func (k Key) PointCount() int { return len(k.dpfKeys) }

// Gen generates a pair of batch keys for the given domain width and set of
// distinct points. Duplicate points are rejected: a sum-of-point-functions
// construction is only well-defined for a domain where at most one point
// function fires at any x, so two keys honoring the same alpha would break
// the "exactly one nonzero term" invariant Eval relies on.
func Gen(ctx *dpf.Context, n int, points []uint64) (k0, k1 Key, err error) {
	if len(points) == 0 {
		return Key{}, Key{}, fmt.Errorf("%w: points must be non-empty", dpf.ErrInvalidParameter)
	}

	seen := make(map[uint64]struct{}, len(points))
	for _, p := range points {
		if _, dup := seen[p]; dup {
			return Key{}, Key{}, fmt.Errorf("%w: duplicate point %d", dpf.ErrInvalidParameter, p)
		}
		seen[p] = struct{}{}
	}

	k0.n, k1.n = n, n
	k0.dpfKeys = make([]dpf.Key, len(points))
	k1.dpfKeys = make([]dpf.Key, len(points))
	for i, p := range points {
		a, b, genErr := dpf.Gen(ctx, n, p)
		if genErr != nil {
			return Key{}, Key{}, genErr
		}
		k0.dpfKeys[i] = a
		k1.dpfKeys[i] = b
	}
	return k0, k1, nil
}

// EvalEach evaluates every inner point function at x, returning one share
// per point in the same order Gen received the points.
func EvalEach(ctx *dpf.Context, k Key, x uint64) ([]uint64, error) {
	out := make([]uint64, len(k.dpfKeys))
	for i, inner := range k.dpfKeys {
		share, err := dpf.Eval(ctx, k.n, inner, x)
		if err != nil {
			return nil, err
		}
		out[i] = share
	}
	return out, nil
}

// Eval returns this party's share of the batch as a single indicator: added
// mod p to the other party's Eval result, it is 1 if x equals one of the
// points the keys were generated for, and 0 otherwise. It is
// equivalent to evaluating every inner point function and summing, but does
// not itself check that only one term fired; call CombineEach followed by a
// multiple-nonzero check if that needs verifying.
func Eval(ctx *dpf.Context, k Key, x uint64) (uint64, error) {
	shares, err := EvalEach(ctx, k, x)
	if err != nil {
		return 0, err
	}
	sum := uint64(0)
	for _, s := range shares {
		sum = dpf.ReduceAdd(sum + s)
	}
	return sum, nil
}

// CombineEach sums corresponding per-point shares from two EvalEach calls
// into one combined share per point.
func CombineEach(y0, y1 []uint64) ([]uint64, error) {
	if len(y0) != len(y1) {
		return nil, fmt.Errorf("%w: share slices have length %d and %d", dpf.ErrInvalidParameter, len(y0), len(y1))
	}
	out := make([]uint64, len(y0))
	for i := range y0 {
		out[i] = dpf.ReduceAdd(y0[i] + y1[i])
	}
	return out, nil
}

// CombineSingleResult sums two parties' per-point share slices and folds
// them into one value, erroring out if more than one point came back
// nonzero: that would mean the caller evaluated a batch at an x that,
// against the Gen-time uniqueness check, somehow matches two entries.
func CombineSingleResult(y0, y1 []uint64) (uint64, error) {
	combined, err := CombineEach(y0, y1)
	if err != nil {
		return 0, err
	}
	nonZeroFound := false
	result := uint64(0)
	for _, c := range combined {
		if c == 0 {
			continue
		}
		if nonZeroFound {
			return 0, fmt.Errorf("%w: multiple nonzero shares for this x", dpf.ErrInvalidParameter)
		}
		nonZeroFound = true
		result = c
	}
	return result, nil
}
