// Package wide provides the exact integer arithmetic the wrapping and
// saturating policies compute their raw candidates with.
//
// An Int stays on a plain int64 while results fit and promotes itself to a
// math/big value when an operation would overflow. Sums, differences and
// products of two 64-bit operands never exceed 128 bits, so the promoted path
// stays bounded.
package wide

import (
	"errors"
	"math"
	"math/big"

	"github.com/vipcxj/clamps/number"
)

// ErrDivideByZero is the panic value of Quo, Rem and Mod with a zero divisor.
var ErrDivideByZero = errors.New("integer divide by zero")

// Int is an exact integer. The zero value is 0.
type Int struct {
	small int64
	big   *big.Int // nil while the value fits small
}

// FromInt64 returns v as an Int.
func FromInt64(v int64) Int {
	return Int{small: v}
}

// Of converts a value of an integer domain. T must not be a float domain.
func Of[T number.Number](v T) Int {
	if number.IsSigned[T]() {
		return Int{small: int64(v)}
	}
	u := uint64(v)
	if u <= math.MaxInt64 {
		return Int{small: int64(u)}
	}
	return Int{big: new(big.Int).SetUint64(u)}
}

// To converts x back to T. The caller guarantees x is representable by T.
func To[T number.Number](x Int) T {
	if x.big == nil {
		return T(x.small)
	}
	if x.big.IsUint64() {
		return T(x.big.Uint64())
	}
	return T(x.big.Int64())
}

// Big returns x as a newly allocated big.Int.
func (x Int) Big() *big.Int {
	if x.big == nil {
		return big.NewInt(x.small)
	}
	return new(big.Int).Set(x.big)
}

// String returns the decimal representation of x.
func (x Int) String() string {
	return x.Big().String()
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	if x.big != nil {
		return x.big.Sign()
	}
	switch {
	case x.small < 0:
		return -1
	case x.small > 0:
		return 1
	}
	return 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	if x.big == nil && y.big == nil {
		switch {
		case x.small < y.small:
			return -1
		case x.small > y.small:
			return 1
		}
		return 0
	}
	return x.Big().Cmp(y.Big())
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.big == nil && y.big == nil {
		a, b := x.small, y.small
		c := a + b
		if (b > 0 && c > a) || (b <= 0 && c <= a) {
			return Int{small: c}
		}
	}
	return promote(new(big.Int).Add(x.Big(), y.Big()))
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	if x.big == nil && y.big == nil {
		a, b := x.small, y.small
		c := a - b
		if (b > 0 && c < a) || (b <= 0 && c >= a) {
			return Int{small: c}
		}
	}
	return promote(new(big.Int).Sub(x.Big(), y.Big()))
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	if x.big == nil && y.big == nil {
		a, b := x.small, y.small
		if a == 0 || b == 0 {
			return Int{}
		}
		overflow := (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64)
		if c := a * b; !overflow && c/b == a {
			return Int{small: c}
		}
	}
	return promote(new(big.Int).Mul(x.Big(), y.Big()))
}

// Quo returns x / y truncated toward zero, like Go's / operator.
func (x Int) Quo(y Int) Int {
	if y.Sign() == 0 {
		panic(ErrDivideByZero)
	}
	if x.big == nil && y.big == nil && !(x.small == math.MinInt64 && y.small == -1) {
		return Int{small: x.small / y.small}
	}
	return promote(new(big.Int).Quo(x.Big(), y.Big()))
}

// Rem returns x % y with the sign of x, like Go's % operator.
func (x Int) Rem(y Int) Int {
	if y.Sign() == 0 {
		panic(ErrDivideByZero)
	}
	if x.big == nil && y.big == nil {
		return Int{small: x.small % y.small}
	}
	return promote(new(big.Int).Rem(x.Big(), y.Big()))
}

// Mod returns the Euclidean modulus of x by m: the result r satisfies
// 0 <= r < |m| whatever the signs of x and m.
func (x Int) Mod(m Int) Int {
	if m.Sign() == 0 {
		panic(ErrDivideByZero)
	}
	if x.big == nil && m.big == nil {
		r := x.small % m.small
		if r < 0 {
			if m.small > 0 {
				r += m.small
			} else {
				r -= m.small
			}
		}
		return Int{small: r}
	}
	return promote(new(big.Int).Mod(x.Big(), m.Big()))
}

// promote keeps the fast path for results that fit an int64 again.
func promote(z *big.Int) Int {
	if z.IsInt64() {
		return Int{small: z.Int64()}
	}
	return Int{big: z}
}
