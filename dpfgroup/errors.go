package dpfgroup

import "errors"

var (
	// ErrInvalidParameter is returned when a lambda, point, or key argument
	// violates its documented domain.
	ErrInvalidParameter = errors.New("dpfgroup: invalid parameter")
	// ErrCipherBackend is returned when the underlying block cipher or
	// stream construction fails or receives malformed input, and when
	// crypto/rand fails to supply a root seed in Gen.
	ErrCipherBackend = errors.New("dpfgroup: cipher backend error")
)
