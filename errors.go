package sdk

import "errors"

var (
	// ErrHostCall indicates that a waPC host invocation failed. Capability
	// clients wrap host failures with this error before handing them to
	// their error hooks.
	ErrHostCall = errors.New("host call failed")
)
