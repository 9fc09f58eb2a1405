// Package sanitize reads one line of input and validates it: the line is
// converted to a target type and checked against a set of allowed values.
//
// Quick start:
//
//	n, err := sanitize.Input("Please enter a valid integer: ", sanitize.Int, nil)
//
//	fruit, err := sanitize.Text().
//		WithPrompt("Please enter a fruit: ").
//		WithValues("apple", "orange", "peach").
//		Ask()
//	// banana -> input must be apple, orange or peach
//
// Validation runs once per call. Re-prompting after an error is up to the caller.
package sanitize

import (
	"io"

	"github.com/klejdi94/sanitize/console"
	"github.com/klejdi94/sanitize/core"
)

// Validator reads and validates values of type T.
// Configure it before sharing; reading does not modify it.
type Validator[T comparable] struct {
	prompt   string
	conv     core.Converter[T]
	expected core.Expected[T]
}

// New starts a validator that converts input with conv.
func New[T comparable](conv core.Converter[T]) *Validator[T] {
	return &Validator[T]{conv: conv}
}

// Text starts a validator that keeps the raw line as its value.
func Text() *Validator[string] {
	return &Validator[string]{}
}

// WithPrompt sets the text written before reading.
func (v *Validator[T]) WithPrompt(prompt string) *Validator[T] {
	v.prompt = prompt
	return v
}

// WithExpected sets the allowed values, e.g. a Sequence or a Range.
func (v *Validator[T]) WithExpected(expected core.Expected[T]) *Validator[T] {
	v.expected = expected
	return v
}

// WithValues restricts input to the listed values.
func (v *Validator[T]) WithValues(values ...T) *Validator[T] {
	return v.WithExpected(core.Values(values...))
}

// Check validates a raw line without any I/O.
func (v *Validator[T]) Check(raw string) core.Result[T] {
	return core.Evaluate(raw, v.conv, v.expected)
}

// Read writes the prompt to out, reads one line from in and validates it.
// Errors are *core.ConversionError, *core.MembershipError, or I/O errors.
func (v *Validator[T]) Read(in io.Reader, out io.Writer) (T, error) {
	return v.ask(console.New(console.WithInput(in), console.WithOutput(out)))
}

// Ask is Read on stdin and stdout.
func (v *Validator[T]) Ask() (T, error) {
	return v.ask(console.New())
}

func (v *Validator[T]) ask(c *console.Console) (T, error) {
	raw, err := c.Ask(v.prompt)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.Check(raw).Unwrap()
}

// Input prompts on stdout, reads a line from stdin and validates it.
// expected may be nil to accept any converted value.
func Input[T comparable](prompt string, conv core.Converter[T], expected core.Expected[T]) (T, error) {
	return New(conv).WithPrompt(prompt).WithExpected(expected).Ask()
}

// Values lists allowed values in order.
func Values[T comparable](values ...T) core.Sequence[T] {
	return core.Values(values...)
}

// Range allows start, start+1, ... up to but excluding stop.
func Range[T core.Number](start, stop T) core.Range[T] {
	return core.NewRange(start, stop)
}

// StepRange allows start, start+step, ... up to but excluding stop. It panics if step is zero.
func StepRange[T core.Number](start, stop, step T) core.Range[T] {
	return core.StepRange(start, stop, step)
}

// Re-export core types and values for convenience.
type (
	// Kind tags a set of expected values.
	Kind = core.Kind
	// ResultKind tells how a validation ended.
	ResultKind = core.ResultKind
	// ConversionError reports input that could not be converted.
	ConversionError = core.ConversionError
	// MembershipError reports a value outside the expected values.
	MembershipError = core.MembershipError
)

// Built-in converters (re-export from core).
var (
	Int    = core.Int
	Float  = core.Float
	Bool   = core.Bool
	String = core.String
)

var (
	ErrConversion      = core.ErrConversion
	ErrMembership      = core.ErrMembership
	ErrNoInput         = core.ErrNoInput
	ErrInvalidExpected = core.ErrInvalidExpected
)
