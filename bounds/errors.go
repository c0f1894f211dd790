//go:generate go run github.com/dmarkham/enumer -type=Side -transform=kebab
package bounds

import (
	"errors"
	"fmt"

	"github.com/vipcxj/clamps/number"
)

var (
	// ErrInvalidRange is matched by every error reporting min > max.
	ErrInvalidRange = errors.New("invalid range")
	// ErrOutOfRange is matched by every error reporting a value outside its bounds.
	ErrOutOfRange = errors.New("value out of range")
)

// Side tells which bound an out of range value violated.
type Side int

const (
	TooSmall Side = iota
	TooLarge
)

// RangeError reports a bound pair that does not form a range.
type RangeError[T number.Number] struct {
	Min T
	Max T
}

func (e *RangeError[T]) Error() string {
	if e.Min != e.Min || e.Max != e.Max {
		return fmt.Sprintf("invalid range [%s, %s]: bound is NaN", number.Format(e.Min), number.Format(e.Max))
	}
	return fmt.Sprintf("invalid range [%s, %s]: min is greater than max", number.Format(e.Min), number.Format(e.Max))
}

func (e *RangeError[T]) Unwrap() error {
	return ErrInvalidRange
}

// OutOfRangeError reports a value the rejecting policy refused.
type OutOfRangeError[T number.Number] struct {
	Value T
	Min   T
	Max   T
	Side  Side
}

func (e *OutOfRangeError[T]) Error() string {
	return fmt.Sprintf("value %s out of range [%s, %s]: %s",
		number.Format(e.Value), number.Format(e.Min), number.Format(e.Max), e.Side)
}

func (e *OutOfRangeError[T]) Unwrap() error {
	return ErrOutOfRange
}
