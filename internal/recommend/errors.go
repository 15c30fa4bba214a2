package recommend

import "errors"

var (
	// ErrInvalidConfig is returned at service construction when weights or
	// confidence thresholds are unusable. Never corrected silently.
	ErrInvalidConfig = errors.New("invalid recommendation config")

	// ErrNotFound covers a product without active supplier candidates and an
	// apply that targets a product-supplier pair with no association.
	ErrNotFound = errors.New("not found")

	// ErrTxFailed wraps a failed apply transaction. The preferred set is
	// unchanged; the caller may retry.
	ErrTxFailed = errors.New("apply transaction failed")
)
