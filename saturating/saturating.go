// Package saturating implements the saturating policy: a value below min
// becomes min and a value above max becomes max.
//
// Integer arithmetic is computed exactly before clamping, so 100 + 100 in
// [0, 150] of int8 gives 150 rather than a wrapped negative. Float arithmetic
// runs natively; an infinite result clamps to the nearer bound and NaN
// clamps to min.
package saturating

import (
	"cmp"
	"fmt"
	"math"

	"github.com/vipcxj/clamps/bounds"
	"github.com/vipcxj/clamps/internal/wide"
	"github.com/vipcxj/clamps/number"
)

// Saturating holds a value inside runtime bounds. The zero value holds 0 in [0, 0].
type Saturating[T number.Number] struct {
	b bounds.Bounds[T]
	v T
}

// New validates [min, max] and clamps v into it. The only failure is
// bounds.ErrInvalidRange.
func New[T number.Number](min, max, v T) (Saturating[T], error) {
	b, err := bounds.New(min, max)
	if err != nil {
		return Saturating[T]{}, err
	}
	return From(b, v), nil
}

// From clamps v into b.
func From[T number.Number](b bounds.Bounds[T], v T) Saturating[T] {
	return Saturating[T]{b: b, v: b.Clamp(v)}
}

func (c Saturating[T]) Get() T                   { return c.v }
func (c Saturating[T]) Bounds() bounds.Bounds[T] { return c.b }
func (c Saturating[T]) Min() T                   { return c.b.Min() }
func (c Saturating[T]) Max() T                   { return c.b.Max() }
func (c Saturating[T]) Compare(x T) int          { return cmp.Compare(c.v, x) }
func (c Saturating[T]) Equal(x T) bool           { return c.v == x }
func (c Saturating[T]) String() string           { return describe(c.v, c.b) }

// Add sets the value to (v + x) clamped into the bounds.
func (c *Saturating[T]) Add(x T) { c.v = apply(c.b, c.v, x, add[T], wide.Int.Add) }

// Sub sets the value to (v - x) clamped into the bounds.
func (c *Saturating[T]) Sub(x T) { c.v = apply(c.b, c.v, x, sub[T], wide.Int.Sub) }

// Mul sets the value to (v * x) clamped into the bounds.
func (c *Saturating[T]) Mul(x T) { c.v = apply(c.b, c.v, x, mul[T], wide.Int.Mul) }

// Div sets the value to (v / x) clamped into the bounds. Integer division
// truncates toward zero and panics when x == 0.
func (c *Saturating[T]) Div(x T) { c.v = apply(c.b, c.v, x, quo[T], wide.Int.Quo) }

// Rem sets the value to (v % x) clamped into the bounds. Floats use
// math.Mod; integers panic when x == 0.
func (c *Saturating[T]) Rem(x T) { c.v = apply(c.b, c.v, x, rem[T], wide.Int.Rem) }

// Rebind validates [min, max], clamps the held value into it and returns the
// previous bounds. On error c is unchanged.
func (c *Saturating[T]) Rebind(min, max T) (bounds.Bounds[T], error) {
	prev := c.b
	if _, err := c.b.Rebind(min, max); err != nil {
		return bounds.Bounds[T]{}, err
	}
	c.v = c.b.Clamp(c.v)
	return prev, nil
}

func apply[T number.Number](b bounds.Bounds[T], v, x T, native func(T, T) T, exact func(wide.Int, wide.Int) wide.Int) T {
	if number.IsFloat[T]() {
		return b.Clamp(native(v, x))
	}
	r := exact(wide.Of(v), wide.Of(x))
	switch {
	case r.Cmp(wide.Of(b.Min())) < 0:
		return b.Min()
	case r.Cmp(wide.Of(b.Max())) > 0:
		return b.Max()
	}
	return wide.To[T](r)
}

func add[T number.Number](a, b T) T { return a + b }
func sub[T number.Number](a, b T) T { return a - b }
func mul[T number.Number](a, b T) T { return a * b }
func quo[T number.Number](a, b T) T { return a / b }
func rem[T number.Number](a, b T) T { return T(math.Mod(float64(a), float64(b))) }

func describe[T number.Number](v T, b bounds.Bounds[T]) string {
	return fmt.Sprintf("%s in %s", number.Format(v), b)
}
