package number

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a base-10 literal into T. The literal must fit T's width:
// "300" is rejected for uint8 and "-1" for any unsigned domain.
func Parse[T Number](s string) (T, error) {
	tok := strings.TrimSpace(s)
	if tok == "" {
		return 0, fmt.Errorf("empty number")
	}
	bits := Bits[T]()
	switch {
	case IsFloat[T]():
		f, err := strconv.ParseFloat(tok, bits)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", TypeName[T](), tok, err)
		}
		return T(f), nil
	case IsSigned[T]():
		n, err := strconv.ParseInt(tok, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", TypeName[T](), tok, err)
		}
		return T(n), nil
	default:
		n, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, bits)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", TypeName[T](), tok, err)
		}
		return T(n), nil
	}
}

// Format renders v the way Parse reads it back.
func Format[T Number](v T) string {
	switch {
	case IsFloat[T]():
		return strconv.FormatFloat(float64(v), 'g', -1, Bits[T]())
	case IsSigned[T]():
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatUint(uint64(v), 10)
	}
}

// TypeName returns the name of T, e.g. "int8" or "float64".
func TypeName[T Number]() string {
	return kindOf[T]().String()
}
