package assets

import "fmt"

// ReadError reports a failure reading a binary source during encoding. It is
// recoverable: the surrounding session stays usable and the error surfaces to
// the submitting user as a field-level problem.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("assets: read %q: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// MalformedDataError reports corrupt stored data encountered while decoding
// an encoded record back to bytes. Display preparation treats it as a
// per-field failure; the rest of the form still renders.
type MalformedDataError struct {
	Reason string
	Err    error
}

func (e *MalformedDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assets: malformed data: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("assets: malformed data: %s", e.Reason)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}
