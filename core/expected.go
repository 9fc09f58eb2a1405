package core

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Kind tags the shape of a set of expected values.
type Kind int

const (
	KindSequence Kind = iota
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindRange:
		return "range"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Expected is an ordered set of allowed values.
type Expected[T comparable] interface {
	Kind() Kind
	Len() int
	At(i int) T
	Contains(value T) bool
}

// Bounded is implemented by expected values of KindRange.
type Bounded[T comparable] interface {
	Expected[T]
	Start() T
	Stop() T
	// Below reports value < Start(); AtOrAbove reports value >= Stop().
	Below(value T) bool
	AtOrAbove(value T) bool
}

// Sequence is an ordered list of allowed values.
type Sequence[T comparable] struct {
	items []T
}

// Values returns a Sequence holding a copy of the given values.
func Values[T comparable](values ...T) Sequence[T] {
	return Sequence[T]{items: append([]T(nil), values...)}
}

func (s Sequence[T]) Kind() Kind { return KindSequence }
func (s Sequence[T]) Len() int   { return len(s.items) }
func (s Sequence[T]) At(i int) T { return s.items[i] }

func (s Sequence[T]) Contains(value T) bool {
	for _, item := range s.items {
		if item == value {
			return true
		}
	}
	return false
}

// Number is the element type of a Range.
type Number interface {
	constraints.Signed | constraints.Float
}

// floatTolerance absorbs rounding when float values are matched to range steps.
const floatTolerance = 1e-9

// Range is the arithmetic progression start, start+step, ... stopping before stop.
// A negative step counts down. Float ranges only contain whole steps from start,
// so 3.5 is inside the bounds of Range(0.0, 10.0) but not a member.
//
// A float range whose start and step are whole numbers is an integer range that
// accepts float values: its elements and bounds print as integers ("0, 1, 2").
type Range[T Number] struct {
	start, stop, step T
	n                 int
	whole             bool
}

// NewStepRange returns the range [start, stop) with the given step.
// It fails with ErrInvalidExpected when step is zero.
func NewStepRange[T Number](start, stop, step T) (Range[T], error) {
	if step == 0 {
		return Range[T]{}, fmt.Errorf("%w: range step must not be zero", ErrInvalidExpected)
	}
	return Range[T]{
		start: start,
		stop:  stop,
		step:  step,
		n:     rangeLen(start, stop, step),
		whole: isFloat[T]() && isWhole(float64(start)) && isWhole(float64(step)),
	}, nil
}

// StepRange is like NewStepRange but panics when step is zero.
func StepRange[T Number](start, stop, step T) Range[T] {
	r, err := NewStepRange(start, stop, step)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRange returns the range [start, stop) with step 1.
func NewRange[T Number](start, stop T) Range[T] {
	return StepRange(start, stop, 1)
}

func (r Range[T]) Kind() Kind { return KindRange }
func (r Range[T]) Len() int   { return r.n }
func (r Range[T]) Start() T   { return r.start }
func (r Range[T]) Stop() T    { return r.stop }
func (r Range[T]) Step() T    { return r.step }

// At returns the i-th element; negative i counts from the end.
func (r Range[T]) At(i int) T {
	if i < 0 {
		i += r.n
	}
	if i < 0 || i >= r.n {
		panic(fmt.Sprintf("core: range index %d out of bounds [0:%d]", i, r.n))
	}
	v := r.start + T(i)*r.step
	if isFloat[T]() {
		return T(cleanFloat(float64(v)))
	}
	return v
}

// FormatElement renders an element or bound of the range for messages.
func (r Range[T]) FormatElement(value T) string {
	if r.whole && isWhole(float64(value)) {
		return strconv.FormatFloat(float64(value), 'f', 0, 64)
	}
	return FormatValue(value)
}

func (r Range[T]) Below(value T) bool     { return value < r.start }
func (r Range[T]) AtOrAbove(value T) bool { return value >= r.stop }

func (r Range[T]) Contains(value T) bool {
	if r.n == 0 {
		return false
	}
	if r.step > 0 && (value < r.start || value >= r.stop) {
		return false
	}
	if r.step < 0 && (value > r.start || value <= r.stop) {
		return false
	}
	if isFloat[T]() {
		k := (float64(value) - float64(r.start)) / float64(r.step)
		i := math.Round(k)
		return math.Abs(k-i) <= floatTolerance && i >= 0 && i < float64(r.n)
	}
	return (int64(value)-int64(r.start))%int64(r.step) == 0
}

func rangeLen[T Number](start, stop, step T) int {
	if isFloat[T]() {
		n := math.Ceil((float64(stop)-float64(start))/float64(step) - floatTolerance)
		if n <= 0 || math.IsNaN(n) {
			return 0
		}
		return int(n)
	}
	lo, hi, st := int64(start), int64(stop), int64(step)
	if st < 0 {
		lo, hi, st = hi, lo, -st
	}
	if lo >= hi {
		return 0
	}
	return int((hi - lo + st - 1) / st)
}

// cleanFloat drops the accumulated error of start + i*step, e.g. 0.30000000000000004 -> 0.3.
func cleanFloat(f float64) float64 {
	c, err := strconv.ParseFloat(strconv.FormatFloat(f, 'g', 15, 64), 64)
	if err != nil {
		return f
	}
	return c
}

func isWhole(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

func isFloat[T Number]() bool {
	var half T = 1
	half /= 2
	return half != 0
}
