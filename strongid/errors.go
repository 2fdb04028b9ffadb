package strongid

import "errors"

// Sentinel errors returned by the codec. Callers match them with errors.Is;
// every return site wraps the sentinel with the offending input for context.
var (
	// ErrInvalidConfig indicates a malformed width or length setting.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrMalformedIdentifier indicates text that fails the identifier grammar.
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// ErrInvalidCodename indicates a codename that is too short, contains
	// non-alphabetic characters, or a negative codename integer.
	ErrInvalidCodename = errors.New("invalid codename")

	// ErrInvalidInteger indicates a negative canonical integer.
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrInvalidLevel indicates an unrecognized level tag, or a level
	// transition that does not exist (e.g. the parent of a top-level value).
	ErrInvalidLevel = errors.New("invalid level")

	// ErrInsufficientLength indicates a requested byte length smaller than
	// the minimum needed to hold the canonical integer.
	ErrInsufficientLength = errors.New("insufficient length")
)
