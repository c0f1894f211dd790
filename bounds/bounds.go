// Package bounds describes the closed interval [min, max] every container
// enforces.
//
// A Bounds value always satisfies min <= max: it can only be obtained from New,
// Full, Of, Parse or as the zero value, which is the degenerate range [0, 0].
package bounds

import (
	"fmt"
	"math/big"

	"github.com/vipcxj/clamps/internal/wide"
	"github.com/vipcxj/clamps/number"
)

// Bounds is a validated closed interval of T.
type Bounds[T number.Number] struct {
	min T
	max T
}

// New returns the range [min, max]. It fails with a *RangeError when
// min > max or when a bound is NaN; the bounds are never swapped.
func New[T number.Number](min, max T) (Bounds[T], error) {
	if min != min || max != max || min > max {
		return Bounds[T]{}, &RangeError[T]{Min: min, Max: max}
	}
	return Bounds[T]{min: min, max: max}, nil
}

// Must panics if err is not nil.
func Must[T number.Number](b Bounds[T], err error) Bounds[T] {
	if err != nil {
		panic(err)
	}
	return b
}

// Full returns the domain-wide range of T.
func Full[T number.Number]() Bounds[T] {
	return Bounds[T]{min: number.MinOf[T](), max: number.MaxOf[T]()}
}

func (b Bounds[T]) Min() T {
	return b.min
}

func (b Bounds[T]) Max() T {
	return b.max
}

// IsDegenerate reports whether the range holds a single value.
func (b Bounds[T]) IsDegenerate() bool {
	return b.min == b.max
}

// Contains reports whether min <= v <= max. NaN is never contained.
func (b Bounds[T]) Contains(v T) bool {
	return b.min <= v && v <= b.max
}

// Check returns nil when v is contained, an *OutOfRangeError otherwise.
// NaN is reported as too small.
func (b Bounds[T]) Check(v T) error {
	switch {
	case v > b.max:
		return &OutOfRangeError[T]{Value: v, Min: b.min, Max: b.max, Side: TooLarge}
	case !(v >= b.min):
		return &OutOfRangeError[T]{Value: v, Min: b.min, Max: b.max, Side: TooSmall}
	}
	return nil
}

// Clamp returns the nearest contained value to v. NaN clamps to min.
func (b Bounds[T]) Clamp(v T) T {
	switch {
	case v > b.max:
		return b.max
	case !(v >= b.min):
		return b.min
	}
	return v
}

// String renders the range as "[min, max]".
func (b Bounds[T]) String() string {
	return fmt.Sprintf("[%s, %s]", number.Format(b.min), number.Format(b.max))
}

// Rebind replaces the range with [min, max] and returns the previous one.
// On error b is left untouched.
func (b *Bounds[T]) Rebind(min, max T) (Bounds[T], error) {
	next, err := New(min, max)
	if err != nil {
		return Bounds[T]{}, err
	}
	prev := *b
	*b = next
	return prev, nil
}

// Width returns the number of values in b, max - min + 1. The result never
// overflows: the width of the full uint64 range is 2^64.
func Width[T number.Integer](b Bounds[T]) *big.Int {
	return wide.Of(b.max).Sub(wide.Of(b.min)).Add(wide.FromInt64(1)).Big()
}
