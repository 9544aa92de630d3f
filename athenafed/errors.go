package athenafed

import "fmt"

// ErrEncoding is a sentinel for use with errors.Is to check whether any
// error in a chain is an *EncodingError.
var ErrEncoding = &EncodingError{}

// EncodingError reports a wire codec failure: invalid base64, a malformed
// size-prefixed frame, an unexpected message header type, or a missing
// required JSON field in a binary carrier.
type EncodingError struct {
	Message string
	Cause   error
}

func (e *EncodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Is supports errors.Is by matching any *EncodingError target.
func (e *EncodingError) Is(target error) bool {
	_, ok := target.(*EncodingError)
	return ok
}

func (e *EncodingError) Unwrap() error { return e.Cause }

// ErrFieldMismatch is a sentinel for use with errors.Is to check whether any
// error in a chain is a *FieldMismatchError.
var ErrFieldMismatch = &FieldMismatchError{}

// FieldMismatchError reports a required envelope field that was absent on
// decode. Decoding a payload against the wrong expected variant surfaces as
// this error rather than a discriminant error, since the caller always
// decodes into the concrete variant it expects.
type FieldMismatchError struct {
	Variant string // envelope variant being decoded
	Field   string // wire name of the missing field
}

func (e *FieldMismatchError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Variant, e.Field)
}

// Is supports errors.Is by matching any *FieldMismatchError target.
func (e *FieldMismatchError) Is(target error) bool {
	_, ok := target.(*FieldMismatchError)
	return ok
}

// ErrTransport is a sentinel for use with errors.Is to check whether any
// error in a chain is a *TransportError.
var ErrTransport = &TransportError{}

// TransportError reports a failure of the external transport collaborator:
// a network error, a remote function error, or a malformed response payload.
// Transport failures are fatal to the calling planner operation; nothing in
// this package retries.
type TransportError struct {
	Target string // remote function name
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("invoking %q: %v", e.Target, e.Err)
}

// Is supports errors.Is by matching any *TransportError target.
func (e *TransportError) Is(target error) bool {
	_, ok := target.(*TransportError)
	return ok
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrConfiguration is a sentinel for use with errors.Is to check whether any
// error in a chain is a *ConfigurationError.
var ErrConfiguration = &ConfigurationError{}

// ConfigurationError reports an invalid region or function identifier
// supplied at client construction time.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// Is supports errors.Is by matching any *ConfigurationError target.
func (e *ConfigurationError) Is(target error) bool {
	_, ok := target.(*ConfigurationError)
	return ok
}
