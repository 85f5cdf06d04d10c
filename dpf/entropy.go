package dpf

import (
	"crypto/rand"
	"fmt"
)

// EntropySource supplies the randomness Gen needs for root seeds. It is an
// explicit, caller-supplied collaborator rather than package-level state: a
// reference FSS implementation this library draws on instead keyed a hidden
// counter-mode PRG from a lazily initialized static key and advanced a
// static counter on every call, which is unsafe to share across goroutines
// and impossible to reason about the lifetime of. Gen never falls back to
// anything like that.
type EntropySource interface {
	// Read16 returns 16 uniformly random bytes, or an error if the
	// underlying source refuses. It must never panic.
	Read16() ([16]byte, error)
}

// CryptoEntropySource is the default EntropySource, backed by crypto/rand.
type CryptoEntropySource struct{}

// Read16 implements EntropySource.
func (CryptoEntropySource) Read16() ([16]byte, error) {
	var out [16]byte
	if _, err := rand.Read(out[:]); err != nil {
		return out, fmt.Errorf("%w: %v", ErrEntropyFailure, err)
	}
	return out, nil
}
