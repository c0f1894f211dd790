package wrapping

import (
	"cmp"

	"github.com/vipcxj/clamps/bounds"
	"github.com/vipcxj/clamps/internal/wide"
	"github.com/vipcxj/clamps/number"
)

// Fixed holds a value inside the static bounds R. It stores the offset from
// R.Min(), so the zero value holds R.Min().
type Fixed[T number.Integer, R bounds.Static[T]] struct {
	off T
}

// NewFixed validates R and wraps v into it.
func NewFixed[T number.Integer, R bounds.Static[T]](v T) (Fixed[T, R], error) {
	b, err := bounds.Of[T, R]()
	if err != nil {
		return Fixed[T, R]{}, err
	}
	var c Fixed[T, R]
	c.set(b, Wrap(b, v))
	return c, nil
}

func (c Fixed[T, R]) Get() T {
	return bounds.MustOf[T, R]().Min() + c.off
}

func (c Fixed[T, R]) Bounds() bounds.Bounds[T] { return bounds.MustOf[T, R]() }
func (c Fixed[T, R]) Min() T                   { return bounds.MustOf[T, R]().Min() }
func (c Fixed[T, R]) Max() T                   { return bounds.MustOf[T, R]().Max() }
func (c Fixed[T, R]) Compare(x T) int          { return cmp.Compare(c.Get(), x) }
func (c Fixed[T, R]) Equal(x T) bool           { return c.Get() == x }
func (c Fixed[T, R]) String() string           { return describe(c.Get(), c.Bounds()) }

func (c *Fixed[T, R]) Add(x T) { c.apply(x, wide.Int.Add) }
func (c *Fixed[T, R]) Sub(x T) { c.apply(x, wide.Int.Sub) }
func (c *Fixed[T, R]) Mul(x T) { c.apply(x, wide.Int.Mul) }
func (c *Fixed[T, R]) Div(x T) { c.apply(x, wide.Int.Quo) }
func (c *Fixed[T, R]) Rem(x T) { c.apply(x, wide.Int.Rem) }

// Dynamic returns the equivalent generic container.
func (c Fixed[T, R]) Dynamic() Wrapping[T] {
	return Wrapping[T]{b: c.Bounds(), v: c.Get()}
}

func (c *Fixed[T, R]) apply(x T, op func(wide.Int, wide.Int) wide.Int) {
	b := bounds.MustOf[T, R]()
	c.set(b, apply(b, b.Min()+c.off, x, op))
}

func (c *Fixed[T, R]) set(b bounds.Bounds[T], v T) {
	c.off = v - b.Min()
}

type (
	I8[R bounds.Static[int8]]         = Fixed[int8, R]
	I16[R bounds.Static[int16]]       = Fixed[int16, R]
	I32[R bounds.Static[int32]]       = Fixed[int32, R]
	I64[R bounds.Static[int64]]       = Fixed[int64, R]
	Int[R bounds.Static[int]]         = Fixed[int, R]
	U8[R bounds.Static[uint8]]        = Fixed[uint8, R]
	U16[R bounds.Static[uint16]]      = Fixed[uint16, R]
	U32[R bounds.Static[uint32]]      = Fixed[uint32, R]
	U64[R bounds.Static[uint64]]      = Fixed[uint64, R]
	Uint[R bounds.Static[uint]]       = Fixed[uint, R]
	Uintptr[R bounds.Static[uintptr]] = Fixed[uintptr, R]
)
