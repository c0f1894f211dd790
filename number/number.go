// Package number defines the numeric domains the containers accept.
//
// A domain is any type whose underlying type is one of Go's integer or
// floating point types. Every domain is totally ordered with <, closed under
// + - * in its own (wrapping) arithmetic and has a smallest and a largest
// representable value, reported by MinOf and MaxOf.
package number

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Signed 限定有符号整型
type Signed interface {
	constraints.Signed
}

// Unsigned 限定无符号整型
type Unsigned interface {
	constraints.Unsigned
}

// Integer is any fixed-width integer domain.
type Integer interface {
	constraints.Integer
}

// Float is any IEEE-754 domain.
type Float interface {
	constraints.Float
}

// Number is the ordered numeric capability every container is parameterized over.
type Number interface {
	Integer | Float
}

func kindOf[T Number]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

// IsFloat reports whether T is a floating point domain.
func IsFloat[T Number]() bool {
	k := kindOf[T]()
	return k == reflect.Float32 || k == reflect.Float64
}

// IsSigned reports whether T can hold negative values. Float domains are signed.
func IsSigned[T Number]() bool {
	switch kindOf[T]() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return false
	}
	return true
}

// Bits returns the storage width of T in bits.
func Bits[T Number]() int {
	return reflect.TypeFor[T]().Bits()
}

// MinOf returns the smallest finite value representable by T.
func MinOf[T Number]() T {
	switch {
	case IsFloat[T]():
		return -MaxOf[T]()
	case IsSigned[T]():
		return T(int64(-1) << (Bits[T]() - 1))
	default:
		return 0
	}
}

// MaxOf returns the largest finite value representable by T.
func MaxOf[T Number]() T {
	bits := Bits[T]()
	switch {
	case IsFloat[T]():
		var f float64 = math.MaxFloat64
		if bits == 32 {
			f = math.MaxFloat32
		}
		return T(f)
	case IsSigned[T]():
		return T(int64(^uint64(0) >> (65 - bits)))
	default:
		return T(^uint64(0) >> (64 - bits))
	}
}
