package core

import "strings"

// maxListed is how many leading range elements an elided message shows.
const maxListed = 5

const emptyMessage = "input must be one of no values"

// MembershipMessage builds the error text for a value rejected by expected.
func MembershipMessage[T comparable](expected Expected[T], rejected T) string {
	n := expected.Len()
	if n == 1 {
		return "input must be " + formatElement(expected, expected.At(0))
	}
	if expected.Kind() == KindRange {
		if b, ok := expected.(Bounded[T]); ok {
			return rangeMessage(b, rejected)
		}
	}
	return listMessage(expected)
}

func rangeMessage[T comparable](r Bounded[T], rejected T) string {
	switch {
	case r.Below(rejected):
		return "input must be greater than or equal to " + formatElement[T](r, r.Start())
	case r.AtOrAbove(rejected):
		return "input must be less than " + formatElement[T](r, r.Stop())
	case r.Len() > maxListed:
		head := make([]string, 0, maxListed)
		for i := 0; i < maxListed; i++ {
			head = append(head, formatElement[T](r, r.At(i)))
		}
		return "input must be in " + strings.Join(head, ", ") + " , ..., " + formatElement[T](r, r.At(r.Len()-1))
	default:
		return listMessage[T](r)
	}
}

// listMessage joins all elements as "a, b or c".
func listMessage[T comparable](expected Expected[T]) string {
	n := expected.Len()
	if n == 0 {
		return emptyMessage
	}
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, formatElement(expected, expected.At(i)))
	}
	return "input must be " + strings.Join(items[:n-1], ", ") + " or " + items[n-1]
}

// elementFormatter is implemented by expected values that print their elements
// differently from FormatValue.
type elementFormatter[T comparable] interface {
	FormatElement(value T) string
}

func formatElement[T comparable](expected Expected[T], value T) string {
	if f, ok := expected.(elementFormatter[T]); ok {
		return f.FormatElement(value)
	}
	return FormatValue(value)
}
