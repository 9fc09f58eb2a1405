package core

import "fmt"

// ResultKind tells how validation of one input ended.
type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultConversionFailure
	ResultMembershipFailure
)

func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultConversionFailure:
		return "conversion failure"
	case ResultMembershipFailure:
		return "membership failure"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the outcome of validating one raw input.
// Err is a *ConversionError or *MembershipError when Kind is not ResultOK.
type Result[T any] struct {
	Kind  ResultKind
	Value T
	Err   error
}

// OK reports whether the input was accepted.
func (r Result[T]) OK() bool { return r.Kind == ResultOK }

// Unwrap returns the value, or the zero value and the failure.
func (r Result[T]) Unwrap() (T, error) {
	if r.Kind != ResultOK {
		var zero T
		return zero, r.Err
	}
	return r.Value, nil
}

// Evaluate converts raw with conv and checks the value against expected.
// A nil expected accepts every converted value.
func Evaluate[T comparable](raw string, conv Converter[T], expected Expected[T]) Result[T] {
	value, err := conv.convert(raw)
	if err != nil {
		return Result[T]{
			Kind: ResultConversionFailure,
			Err:  &ConversionError{TypeName: conv.typeName(), Input: raw, Err: err},
		}
	}
	if expected != nil && !expected.Contains(value) {
		return Result[T]{
			Kind:  ResultMembershipFailure,
			Value: value,
			Err:   &MembershipError{Value: value, Message: MembershipMessage(expected, value)},
		}
	}
	return Result[T]{Kind: ResultOK, Value: value}
}
