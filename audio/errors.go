// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedFormat  = errors.New("unrecognized format")
	ErrSystem              = errors.New("system error")
	ErrMalformedData       = errors.New("malformed data")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrFormatUnsupported   = errors.New("format not supported for writing")
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrNoEngine            = errors.New("no engine registered")

	ErrClosed = fmt.Errorf("%w: stream is closed", ErrInvalidOperation)
)

// ErrorCode is an engine error code. The numbering follows libsndfile.
type ErrorCode int

const (
	CodeNone ErrorCode = iota
	CodeUnrecognizedFormat
	CodeSystem
	CodeMalformedData
	CodeUnsupportedEncoding
)

// Err returns the sentinel matching c, or nil for CodeNone.
func (c ErrorCode) Err() error {
	switch c {
	case CodeNone:
		return nil
	case CodeUnrecognizedFormat:
		return ErrUnrecognizedFormat
	case CodeSystem:
		return ErrSystem
	case CodeMalformedData:
		return ErrMalformedData
	case CodeUnsupportedEncoding:
		return ErrUnsupportedEncoding
	default:
		return ErrSystem
	}
}

// String returns the generic message for c.
func (c ErrorCode) String() string {
	switch c {
	case CodeNone:
		return "No Error."
	case CodeUnrecognizedFormat:
		return "Format not recognised."
	case CodeSystem:
		return "System error."
	case CodeMalformedData:
		return "Supported file format but file is malformed."
	case CodeUnsupportedEncoding:
		return "Supported file format but unsupported encoding."
	default:
		return fmt.Sprintf("Unknown error code %d.", int(c))
	}
}

// EngineError is a failure reported by a codec engine.
type EngineError struct {
	Code    ErrorCode
	Message string
}

func (e *EngineError) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Message
}

func (e *EngineError) Unwrap() error {
	return e.Code.Err()
}

// NewEngineError builds an EngineError for code. Message defaults to the
// code's generic text.
func NewEngineError(code ErrorCode, message string) *EngineError {
	return &EngineError{Code: code, Message: message}
}

// CodeOf classifies err. Errors that carry no engine code map to CodeSystem;
// nil maps to CodeNone.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return CodeNone
	}

	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code
	}

	switch {
	case errors.Is(err, ErrUnrecognizedFormat):
		return CodeUnrecognizedFormat
	case errors.Is(err, ErrMalformedData):
		return CodeMalformedData
	case errors.Is(err, ErrUnsupportedEncoding):
		return CodeUnsupportedEncoding
	default:
		return CodeSystem
	}
}
