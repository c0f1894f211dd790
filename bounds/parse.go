package bounds

import (
	"fmt"
	"strings"

	"github.com/vipcxj/clamps/number"
)

// Parse parses value and returns the closed range it denotes.
//
// Supported formats:
//   - N
//   - =N
//   - >N, >=N, <N, <=N
//   - (min,max), (min,max], [min,max), [min,max]
//   - ( ,max), (min, ), ( ,max] etc.
//
// Spaces are ignored. A missing side takes the domain limit of T and must be
// written open. Open integer ends are tightened by one, so "(0,10)" is [1, 9].
// Open ends are rejected for float domains, which have no next value.
//
// Empty intervals, such as "(3,3)" or "[5,1]", fail with ErrInvalidRange.
func Parse[T number.Number](value string) (Bounds[T], error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return Bounds[T]{}, fmt.Errorf("empty range")
	}

	lo, hi := number.MinOf[T](), number.MaxOf[T]()

	// prefix operators
	switch {
	case strings.HasPrefix(s, "="):
		n, err := number.Parse[T](s[1:])
		if err != nil {
			return Bounds[T]{}, fmt.Errorf("invalid =N: %w", err)
		}
		return New(n, n)
	case strings.HasPrefix(s, ">="):
		n, err := number.Parse[T](s[2:])
		if err != nil {
			return Bounds[T]{}, fmt.Errorf("invalid >=N: %w", err)
		}
		return New(n, hi)
	case strings.HasPrefix(s, ">"):
		n, err := number.Parse[T](s[1:])
		if err != nil {
			return Bounds[T]{}, fmt.Errorf("invalid >N: %w", err)
		}
		n, err = tighten(n, true, value)
		if err != nil {
			return Bounds[T]{}, err
		}
		return New(n, hi)
	case strings.HasPrefix(s, "<="):
		n, err := number.Parse[T](s[2:])
		if err != nil {
			return Bounds[T]{}, fmt.Errorf("invalid <=N: %w", err)
		}
		return New(lo, n)
	case strings.HasPrefix(s, "<"):
		n, err := number.Parse[T](s[1:])
		if err != nil {
			return Bounds[T]{}, fmt.Errorf("invalid <N: %w", err)
		}
		n, err = tighten(n, false, value)
		if err != nil {
			return Bounds[T]{}, err
		}
		return New(lo, n)
	}

	// interval notation
	if len(s) >= 2 && (s[0] == '(' || s[0] == '[') && (s[len(s)-1] == ')' || s[len(s)-1] == ']') {
		leftInclusive := s[0] == '['
		rightInclusive := s[len(s)-1] == ']'
		inner := strings.TrimSpace(s[1 : len(s)-1])
		parts := strings.SplitN(inner, ",", 2)
		if len(parts) != 2 {
			return Bounds[T]{}, fmt.Errorf("invalid interval syntax: %s", value)
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])

		min := lo
		if left == "" {
			if leftInclusive {
				return Bounds[T]{}, fmt.Errorf("infinite side must be open on left: %s", value)
			}
		} else {
			n, err := number.Parse[T](left)
			if err != nil {
				return Bounds[T]{}, fmt.Errorf("invalid left bound: %w", err)
			}
			if !leftInclusive {
				if n, err = tighten(n, true, value); err != nil {
					return Bounds[T]{}, err
				}
			}
			min = n
		}

		max := hi
		if right == "" {
			if rightInclusive {
				return Bounds[T]{}, fmt.Errorf("infinite side must be open on right: %s", value)
			}
		} else {
			n, err := number.Parse[T](right)
			if err != nil {
				return Bounds[T]{}, fmt.Errorf("invalid right bound: %w", err)
			}
			if !rightInclusive {
				if n, err = tighten(n, false, value); err != nil {
					return Bounds[T]{}, err
				}
			}
			max = n
		}
		return New(min, max)
	}

	// plain number
	if n, err := number.Parse[T](s); err == nil {
		return New(n, n)
	}

	return Bounds[T]{}, fmt.Errorf("unrecognized range format: %s", value)
}

// tighten turns an open end into the nearest included integer.
func tighten[T number.Number](n T, lower bool, value string) (T, error) {
	if number.IsFloat[T]() {
		return n, fmt.Errorf("open bound needs an integer domain: %s", value)
	}
	if lower {
		if n == number.MaxOf[T]() {
			return n, fmt.Errorf("empty interval %s: %w", value, ErrInvalidRange)
		}
		return n + 1, nil
	}
	if n == number.MinOf[T]() {
		return n, fmt.Errorf("empty interval %s: %w", value, ErrInvalidRange)
	}
	return n - 1, nil
}
