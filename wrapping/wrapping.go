// Package wrapping implements the wrapping policy: a value outside [min, max]
// is reduced modulo the range width max - min + 1, the way a clock face wraps
// hours. Only integer domains have a width, so floats are not accepted.
//
// Arithmetic computes the exact result first and wraps it afterwards, so the
// outcome never depends on overflow of T itself.
package wrapping

import (
	"cmp"
	"fmt"

	"github.com/vipcxj/clamps/bounds"
	"github.com/vipcxj/clamps/internal/wide"
	"github.com/vipcxj/clamps/number"
)

// Wrapping holds a value inside runtime bounds. The zero value holds 0 in [0, 0].
type Wrapping[T number.Integer] struct {
	b bounds.Bounds[T]
	v T
}

// New validates [min, max] and wraps v into it. The only failure is
// bounds.ErrInvalidRange.
func New[T number.Integer](min, max, v T) (Wrapping[T], error) {
	b, err := bounds.New(min, max)
	if err != nil {
		return Wrapping[T]{}, err
	}
	return From(b, v), nil
}

// From wraps v into b.
func From[T number.Integer](b bounds.Bounds[T], v T) Wrapping[T] {
	return Wrapping[T]{b: b, v: Wrap(b, v)}
}

func (c Wrapping[T]) Get() T                   { return c.v }
func (c Wrapping[T]) Bounds() bounds.Bounds[T] { return c.b }
func (c Wrapping[T]) Min() T                   { return c.b.Min() }
func (c Wrapping[T]) Max() T                   { return c.b.Max() }
func (c Wrapping[T]) Compare(x T) int          { return cmp.Compare(c.v, x) }
func (c Wrapping[T]) Equal(x T) bool           { return c.v == x }
func (c Wrapping[T]) String() string           { return describe(c.v, c.b) }

// Add sets the value to (v + x) wrapped into the bounds.
func (c *Wrapping[T]) Add(x T) { c.v = apply(c.b, c.v, x, wide.Int.Add) }

// Sub sets the value to (v - x) wrapped into the bounds.
func (c *Wrapping[T]) Sub(x T) { c.v = apply(c.b, c.v, x, wide.Int.Sub) }

// Mul sets the value to (v * x) wrapped into the bounds.
func (c *Wrapping[T]) Mul(x T) { c.v = apply(c.b, c.v, x, wide.Int.Mul) }

// Div sets the value to (v / x) wrapped into the bounds. The quotient is
// truncated toward zero; x == 0 panics.
func (c *Wrapping[T]) Div(x T) { c.v = apply(c.b, c.v, x, wide.Int.Quo) }

// Rem sets the value to (v % x) wrapped into the bounds; x == 0 panics.
func (c *Wrapping[T]) Rem(x T) { c.v = apply(c.b, c.v, x, wide.Int.Rem) }

// Rebind validates [min, max], wraps the held value into it and returns the
// previous bounds. On error c is unchanged.
func (c *Wrapping[T]) Rebind(min, max T) (bounds.Bounds[T], error) {
	prev := c.b
	if _, err := c.b.Rebind(min, max); err != nil {
		return bounds.Bounds[T]{}, err
	}
	c.v = Wrap(c.b, c.v)
	return prev, nil
}

// Wrap returns min + floormod(v - min, max - min + 1). Values already inside
// b are returned unchanged.
func Wrap[T number.Integer](b bounds.Bounds[T], v T) T {
	if b.Contains(v) {
		return v
	}
	return wrap(b, wide.Of(v))
}

func wrap[T number.Integer](b bounds.Bounds[T], c wide.Int) T {
	lo := wide.Of(b.Min())
	width := wide.Of(b.Max()).Sub(lo).Add(wide.FromInt64(1))
	return wide.To[T](lo.Add(c.Sub(lo).Mod(width)))
}

func apply[T number.Integer](b bounds.Bounds[T], v, x T, op func(wide.Int, wide.Int) wide.Int) T {
	return wrap(b, op(wide.Of(v), wide.Of(x)))
}

func describe[T number.Integer](v T, b bounds.Bounds[T]) string {
	return fmt.Sprintf("%s in %s", number.Format(v), b)
}
