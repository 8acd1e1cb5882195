package corejson

import "errors"

// Precondition violations. These are the only failures this package
// surfaces as an error return from a constructor; malformed input never
// produces one (see Kind Invalid instead).
var (
	// ErrInvalidDepth is returned by NewScanner/NewEmitter when the
	// supplied depth hint is not positive.
	ErrInvalidDepth = errors.New("corejson: depth hint must be positive")

	// ErrMissingPropertyName is the panic value used by Emitter.OpenProperty
	// when called with an absent (nil) name.
	ErrMissingPropertyName = errors.New("corejson: property name is required")
)
