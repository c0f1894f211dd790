// Package bounded implements the rejecting policy: a value that does not fit
// its bounds is refused with bounds.ErrOutOfRange instead of being adjusted.
//
// Rejecting containers expose no arithmetic; build a new container from the
// computed value instead.
package bounded

import (
	"cmp"
	"fmt"

	"github.com/vipcxj/clamps/bounds"
	"github.com/vipcxj/clamps/number"
)

// Bounded holds a value inside runtime bounds. The zero value holds 0 in [0, 0].
type Bounded[T number.Number] struct {
	b bounds.Bounds[T]
	v T
}

// New validates [min, max] and then v against it.
func New[T number.Number](min, max, v T) (Bounded[T], error) {
	b, err := bounds.New(min, max)
	if err != nil {
		return Bounded[T]{}, err
	}
	return From(b, v)
}

// From returns v inside b, or an *bounds.OutOfRangeError.
func From[T number.Number](b bounds.Bounds[T], v T) (Bounded[T], error) {
	if err := b.Check(v); err != nil {
		return Bounded[T]{}, err
	}
	return Bounded[T]{b: b, v: v}, nil
}

func (c Bounded[T]) Get() T                   { return c.v }
func (c Bounded[T]) Bounds() bounds.Bounds[T] { return c.b }
func (c Bounded[T]) Min() T                   { return c.b.Min() }
func (c Bounded[T]) Max() T                   { return c.b.Max() }
func (c Bounded[T]) Compare(x T) int          { return cmp.Compare(c.v, x) }
func (c Bounded[T]) Equal(x T) bool           { return c.v == x }
func (c Bounded[T]) String() string           { return describe(c.v, c.b) }

// Rebind replaces the bounds and returns the previous ones. It fails with
// bounds.ErrInvalidRange for min > max and with bounds.ErrOutOfRange when the
// held value does not fit the new bounds; c is unchanged on failure.
func (c *Bounded[T]) Rebind(min, max T) (bounds.Bounds[T], error) {
	next, err := bounds.New(min, max)
	if err != nil {
		return bounds.Bounds[T]{}, err
	}
	if err := next.Check(c.v); err != nil {
		return bounds.Bounds[T]{}, err
	}
	prev := c.b
	c.b = next
	return prev, nil
}

func describe[T number.Number](v T, b bounds.Bounds[T]) string {
	return fmt.Sprintf("%s in %s", number.Format(v), b)
}
