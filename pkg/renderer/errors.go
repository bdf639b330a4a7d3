package renderer

import "errors"

var (
	// ErrReadOnly signals a mutation or submit attempt on a read-only
	// session.
	ErrReadOnly = errors.New("renderer: session is read-only")
	// ErrUnknownField signals a value update for a key no schema element
	// owns.
	ErrUnknownField = errors.New("renderer: unknown field")
)
