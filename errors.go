package pgident

import "errors"

// Sentinel errors returned by identifier and name construction.
//
// These follow Go's sentinel error pattern so callers can branch with
// errors.Is regardless of wrapping:
//
//	if errors.Is(err, pgident.ErrNullByte) {
//	    // Reject the input outright, quoting cannot help
//	}
var (
	// ErrNullByte indicates an input contains a NUL byte. A NUL byte can
	// never be embedded in a quoted identifier, so construction aborts
	// rather than truncating or stripping it.
	ErrNullByte = errors.New("null byte in identifier")

	// ErrEmptyName indicates a name was built from zero identifiers.
	// There is no leaf to address, so an empty part list is rejected
	// before any identifier validation happens.
	ErrEmptyName = errors.New("zero length identifier list")
)
