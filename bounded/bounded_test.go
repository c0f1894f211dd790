package bounded

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vipcxj/clamps/bounds"
)

type digit struct{}

func (digit) Min() int8 { return 0 }
func (digit) Max() int8 { return 9 }

type negative struct{}

func (negative) Min() int64 { return math.MinInt64 }
func (negative) Max() int64 { return -1 }

type broken struct{}

func (broken) Min() uint8 { return 10 }
func (broken) Max() uint8 { return 0 }

func TestNew_InRangeValuesAreKept(t *testing.T) {
	for v := -20; v <= 20; v++ {
		c, err := New(-5, 5, v)
		inRange := v >= -5 && v <= 5
		if inRange {
			if err != nil {
				t.Fatalf("New(-5, 5, %d): %v", v, err)
			}
			if c.Get() != v {
				t.Fatalf("New(-5, 5, %d).Get() = %d", v, c.Get())
			}
			continue
		}
		if !errors.Is(err, bounds.ErrOutOfRange) {
			t.Fatalf("New(-5, 5, %d): got %v, want ErrOutOfRange", v, err)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(10, 0, 5); !errors.Is(err, bounds.ErrInvalidRange) {
		t.Fatalf("New(10, 0, 5): got %v, want ErrInvalidRange", err)
	}
	_, err := New(0, 100, 101)
	var oe *bounds.OutOfRangeError[int]
	if !errors.As(err, &oe) || oe.Side != bounds.TooLarge {
		t.Fatalf("New(0, 100, 101): got %v, want too-large", err)
	}
	_, err = New(0.0, 1.0, math.NaN())
	if !errors.Is(err, bounds.ErrOutOfRange) {
		t.Fatalf("New(0, 1, NaN): got %v, want ErrOutOfRange", err)
	}
}

func TestAccessors(t *testing.T) {
	c, err := New[uint16](3, 70, 42)
	if err != nil {
		t.Fatal(err)
	}
	got := []any{c.Get(), c.Min(), c.Max(), c.String(), c.Compare(41), c.Compare(42), c.Compare(43), c.Equal(42)}
	want := []any{uint16(42), uint16(3), uint16(70), "42 in [3, 70]", 1, 0, -1, true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("accessors mismatch (-want +got):\n%s", diff)
	}

	var zero Bounded[int32]
	if zero.Get() != 0 || zero.String() != "0 in [0, 0]" {
		t.Fatalf("zero Bounded = %s", zero)
	}
}

func TestRebind(t *testing.T) {
	c, err := New(0, 10, 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Rebind(0, 5); !errors.Is(err, bounds.ErrOutOfRange) {
		t.Fatalf("Rebind(0, 5) with 8: got %v, want ErrOutOfRange", err)
	}
	if _, err := c.Rebind(10, 0); !errors.Is(err, bounds.ErrInvalidRange) {
		t.Fatalf("Rebind(10, 0): got %v, want ErrInvalidRange", err)
	}
	if c.String() != "8 in [0, 10]" {
		t.Fatalf("failed Rebind mutated container: %s", c)
	}

	prev, err := c.Rebind(8, 20)
	if err != nil {
		t.Fatalf("Rebind(8, 20): %v", err)
	}
	if prev.String() != "[0, 10]" || c.String() != "8 in [8, 20]" {
		t.Fatalf("Rebind(8, 20): prev %s, now %s", prev, c)
	}
}

func TestFixed(t *testing.T) {
	var zero I8[digit]
	if zero.Get() != 0 {
		t.Fatalf("zero I8[digit] = %d", zero.Get())
	}
	var neg I64[negative]
	if neg.Get() != math.MinInt64 || neg.String() != "-9223372036854775808 in [-9223372036854775808, -1]" {
		t.Fatalf("zero I64[negative] = %s", neg)
	}

	for v := int8(math.MinInt8); ; v++ {
		f, ferr := NewFixed[int8, digit](v)
		g, gerr := From(bounds.MustOf[int8, digit](), v)
		if (ferr == nil) != (gerr == nil) {
			t.Fatalf("%d: fixed err %v, generic err %v", v, ferr, gerr)
		}
		if ferr == nil && (f.Get() != g.Get() || f.Dynamic() != g) {
			t.Fatalf("%d: fixed %s, generic %s", v, f, g)
		}
		if v == math.MaxInt8 {
			break
		}
	}

	if _, err := NewFixed[uint8, broken](1); !errors.Is(err, bounds.ErrInvalidRange) {
		t.Fatalf("NewFixed[broken]: got %v, want ErrInvalidRange", err)
	}
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, bounds.ErrInvalidRange) {
			t.Fatalf("zero U8[broken].Get(): recovered %v, want ErrInvalidRange", err)
		}
	}()
	var b U8[broken]
	b.Get()
}
