package bounds

import "github.com/vipcxj/clamps/number"

// Static carries bounds in a type. Implementations are zero-size marker
// types, for example:
//
//	type Percent struct{}
//
//	func (Percent) Min() int8 { return 0 }
//	func (Percent) Max() int8 { return 100 }
type Static[T number.Number] interface {
	Min() T
	Max() T
}

// Domain is the static range of every value of T.
type Domain[T number.Number] struct{}

func (Domain[T]) Min() T { return number.MinOf[T]() }
func (Domain[T]) Max() T { return number.MaxOf[T]() }

// Of returns the runtime copy of the static bounds R.
func Of[T number.Number, R Static[T]]() (Bounds[T], error) {
	var r R
	return New(r.Min(), r.Max())
}

// MustOf is like Of but panics when R does not describe a range. The concrete
// containers call it on use, so a zero value with an invalid R panics there.
func MustOf[T number.Number, R Static[T]]() Bounds[T] {
	return Must(Of[T, R]())
}
