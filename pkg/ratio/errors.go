package ratio

import "errors"

var (
	// ErrConfiguration marks an invariant violated before any computation
	// starts. No partial result is produced.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrNumericDomain marks an observation that produced a mathematically
	// undefined intermediate, e.g. a log of a non-positive growth factor.
	ErrNumericDomain = errors.New("numeric domain")
)
