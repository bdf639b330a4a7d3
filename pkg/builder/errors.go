package builder

import "errors"

// ErrNotFound is returned when a mutation targets an element id that is not
// part of the working schema. Removal of an absent id is an error, not a
// silent no-op, so stale editor state surfaces immediately.
var ErrNotFound = errors.New("builder: element not found")
