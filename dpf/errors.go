package dpf

import "errors"

// Sentinel error kinds. Every failure path in this package wraps exactly one
// of these with fmt.Errorf's %w so callers can discriminate with errors.Is,
// and nothing is ever swallowed, retried internally, or printed.
var (
	// ErrInvalidParameter covers a bad domain width, an alpha or x outside
	// the domain, a mismatched n between Gen and Eval, or a key buffer of
	// the wrong length. Never retried.
	ErrInvalidParameter = errors.New("dpf: invalid parameter")

	// ErrEntropyFailure is returned when the configured EntropySource
	// refuses a read. The caller may retry.
	ErrEntropyFailure = errors.New("dpf: entropy source failure")

	// ErrCipherBackend is returned when the AES-128 backend reports an
	// internal error. The Context that produced it must not be reused;
	// construct a fresh one.
	ErrCipherBackend = errors.New("dpf: cipher backend failure")
)
