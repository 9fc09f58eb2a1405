// Package core provides the conversion, membership and error-message rules behind sanitized input.
package core

import "errors"

// Sentinel errors for input validation.
var (
	ErrConversion      = errors.New("input conversion failed")
	ErrMembership      = errors.New("input not in expected values")
	ErrNoInput         = errors.New("no input")
	ErrInvalidExpected = errors.New("invalid expected values")
)

// ConversionError is returned when the raw input cannot be converted to the expected type.
type ConversionError struct {
	TypeName string
	Input    string
	Err      error
}

func (e *ConversionError) Error() string {
	return "input type must be " + e.TypeName
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConversion.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// MembershipError is returned when a value is not among the expected values.
// Message is the full human-readable text, e.g. "input must be 42".
type MembershipError struct {
	Value   interface{}
	Message string
}

func (e *MembershipError) Error() string {
	return e.Message
}

// Is reports whether target is ErrMembership.
func (e *MembershipError) Is(target error) bool { return target == ErrMembership }
