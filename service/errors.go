package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"booking-widget/api"
)

var (
	ErrNoSelection = errors.New("no rooms selected")
	ErrUnknownRoom = errors.New("room is not part of the current results")
)

// ValidationError reports missing or invalid input. No request is sent when
// it is returned.
type ValidationError struct {
	fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationError *ValidationError

	if errors.As(err, &validationError) {
		return validationError
	}

	return nil
}

func (ve *ValidationError) addError(field, msg string) {
	ve.fields[field] = append(ve.fields[field], msg)
}

func (ve *ValidationError) fieldsCount() int {
	return len(ve.fields)
}

func (ve *ValidationError) Fields() map[string][]string {
	return ve.fields
}

func (ve *ValidationError) Error() string {
	keys := make([]string, 0, len(ve.fields))
	for k := range ve.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(ve.fields[k], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// TransportError wraps a failed call to the hotel API: network and decoding
// failures, and non-2xx answers (StatusCode set).
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func newTransportError(op string, err error) *TransportError {
	te := &TransportError{Op: op, Err: err}
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		te.StatusCode = statusErr.StatusCode
	}
	return te
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsServerRejection reports whether the API answered with a non-success status.
func (e *TransportError) IsServerRejection() bool {
	return e.StatusCode != 0
}

func IsTransportError(err error) *TransportError {
	var transportError *TransportError
	if errors.As(err, &transportError) {
		return transportError
	}
	return nil
}
