package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Converter turns raw input text into a value of type T.
// Name is the type name used in conversion errors ("input type must be <Name>").
type Converter[T any] struct {
	Name    string
	Convert func(raw string) (T, error)
}

// ConverterFunc returns a Converter with the given type name and conversion function.
func ConverterFunc[T any](name string, fn func(string) (T, error)) Converter[T] {
	return Converter[T]{Name: name, Convert: fn}
}

// Built-in converters. Numeric converters ignore surrounding whitespace.
var (
	Int = ConverterFunc("int", func(raw string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(raw))
	})
	Float = ConverterFunc("float", func(raw string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(raw), 64)
	})
	Bool = ConverterFunc("bool", func(raw string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(raw))
	})
	String = ConverterFunc("str", func(raw string) (string, error) {
		return raw, nil
	})
)

// typeName returns the name reported in conversion errors.
func (c Converter[T]) typeName() string {
	if c.Name != "" {
		return c.Name
	}
	var zero T
	return fmt.Sprintf("%T", zero)
}

// convert applies the conversion. A converter without a function is the identity
// and only works when T is string.
func (c Converter[T]) convert(raw string) (T, error) {
	if c.Convert != nil {
		return c.Convert(raw)
	}
	if v, ok := any(raw).(T); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("no conversion from string to %T", zero)
}

// FormatValue renders a value the way it appears in error messages.
// Whole floats keep a trailing ".0" so 2.0 prints as "2.0", not "2".
func FormatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, bitSize int) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	abs := math.Abs(f)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
