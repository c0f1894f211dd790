package wrapping

import (
	"errors"
	"math"
	"testing"

	"github.com/vipcxj/clamps/bounds"
	"github.com/vipcxj/clamps/internal/wide"
)

type digit struct{}

func (digit) Min() int8 { return 0 }
func (digit) Max() int8 { return 9 }

type five struct{}

func (five) Min() int8 { return 5 }
func (five) Max() int8 { return 5 }

type cold struct{}

func (cold) Min() int8 { return -100 }
func (cold) Max() int8 { return -50 }

type mixed struct{}

func (mixed) Min() int32 { return -5 }
func (mixed) Max() int32 { return 10 }

func TestNew_WrapsIntoRange(t *testing.T) {
	cases := []struct {
		name        string
		min, max, v int
		exp         int
	}{
		{"in_range", 0, 9, 4, 4},
		{"above", 0, 9, 13, 3},
		{"below", 0, 9, -3, 7},
		{"far_below", 0, 9, -23, 7},
		{"lower_edge", 0, 9, 10, 0},
		{"upper_edge", 0, 9, -1, 9},
		{"degenerate", 5, 5, 1234, 5},
		{"negative_range", -10, -6, 0, -10},
	}
	for _, tc := range cases {
		c, err := New(tc.min, tc.max, tc.v)
		if err != nil {
			t.Fatalf("%s: New(%d, %d, %d): %v", tc.name, tc.min, tc.max, tc.v, err)
		}
		if c.Get() != tc.exp {
			t.Fatalf("%s: New(%d, %d, %d).Get() = %d, want %d", tc.name, tc.min, tc.max, tc.v, c.Get(), tc.exp)
		}
	}
}

func TestNew_InvalidRange(t *testing.T) {
	if _, err := New(10, 0, 5); !errors.Is(err, bounds.ErrInvalidRange) {
		t.Fatalf("New(10, 0, 5): got %v, want ErrInvalidRange", err)
	}
	c, _ := New(0, 10, 3)
	if _, err := c.Rebind(10, 0); !errors.Is(err, bounds.ErrInvalidRange) {
		t.Fatalf("Rebind(10, 0): got %v, want ErrInvalidRange", err)
	}
	if c.String() != "3 in [0, 10]" {
		t.Fatalf("failed Rebind mutated container: %s", c)
	}
}

func TestWrap_InRangeAndIdempotent(t *testing.T) {
	ranges := []bounds.Bounds[int8]{
		bounds.Must(bounds.New[int8](0, 9)),
		bounds.Must(bounds.New[int8](-100, -50)),
		bounds.Must(bounds.New[int8](5, 5)),
		bounds.Must(bounds.New[int8](-1, 0)),
		bounds.Full[int8](),
	}
	for _, b := range ranges {
		for v := int8(math.MinInt8); ; v++ {
			w := Wrap(b, v)
			if !b.Contains(w) {
				t.Fatalf("Wrap(%s, %d) = %d, outside range", b, v, w)
			}
			if again := Wrap(b, w); again != w {
				t.Fatalf("Wrap(%s, Wrap(%d)) = %d, want %d", b, v, again, w)
			}
			if b.Contains(v) && w != v {
				t.Fatalf("Wrap(%s, %d) = %d, in-range values must be kept", b, v, w)
			}
			if v == math.MaxInt8 {
				break
			}
		}
	}
}

func TestArithmetic(t *testing.T) {
	c, _ := New(0, 100, 80)
	c.Add(50)
	if c.Get() != 29 {
		t.Fatalf("[0, 100] 80 + 50 = %d, want 29", c.Get())
	}

	d, _ := New(5, 5, 5)
	d.Add(3)
	d.Mul(-7)
	d.Sub(100)
	if d.Get() != 5 {
		t.Fatalf("[5, 5] after arithmetic = %d, want 5", d.Get())
	}

	g, _ := New(-5, 10, 3)
	g.Add(1)
	if g.Get() != 4 {
		t.Fatalf("[-5, 10] 3 + 1 = %d, want 4", g.Get())
	}
	g.Mul(4)
	if g.Get() != 0 {
		t.Fatalf("[-5, 10] 4 * 4 = %d, want 0", g.Get())
	}
	g.Sub(6)
	if g.Get() != 10 {
		t.Fatalf("[-5, 10] 0 - 6 = %d, want 10", g.Get())
	}
	g.Div(-2)
	if g.Get() != -5 {
		t.Fatalf("[-5, 10] 10 / -2 = %d, want -5", g.Get())
	}
	g.Add(2)
	g.Rem(2)
	if g.Get() != -1 {
		t.Fatalf("[-5, 10] -3 %% 2 = %d, want -1", g.Get())
	}
}

func TestArithmetic_SubstrateOverflow(t *testing.T) {
	i := From(bounds.Full[int64](), math.MaxInt64)
	i.Add(1)
	if i.Get() != math.MinInt64 {
		t.Fatalf("int64 max + 1 = %d, want min", i.Get())
	}
	i.Div(-1)
	if i.Get() != math.MinInt64 {
		t.Fatalf("int64 min / -1 = %d, want min", i.Get())
	}

	u, _ := New[uint8](250, 255, 254)
	u.Add(10)
	if u.Get() != 252 {
		t.Fatalf("[250, 255] 254 + 10 = %d, want 252", u.Get())
	}
	u.Mul(255)
	if want := wrapRef(250, 255, 252*255); u.Get() != want {
		t.Fatalf("[250, 255] 252 * 255 = %d, want %d", u.Get(), want)
	}

	big, _ := New[uint64](0, math.MaxUint64-1, math.MaxUint64)
	if big.Get() != 0 {
		t.Fatalf("[0, 2^64-2] 2^64-1 = %d, want 0", big.Get())
	}
}

func wrapRef(min, max, v int64) uint8 {
	w := max - min + 1
	r := (v - min) % w
	if r < 0 {
		r += w
	}
	return uint8(min + r)
}

func TestRebind_Rewraps(t *testing.T) {
	c, _ := New(0, 10, 8)
	prev, err := c.Rebind(0, 5)
	if err != nil {
		t.Fatalf("Rebind(0, 5): %v", err)
	}
	if prev.String() != "[0, 10]" || c.Get() != 2 {
		t.Fatalf("Rebind(0, 5): prev %s, now %s", prev, c)
	}
}

func TestDivideByZeroPanics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, wide.ErrDivideByZero) {
			t.Fatalf("Div(0): recovered %v", err)
		}
	}()
	c, _ := New(0, 9, 3)
	c.Div(0)
}

func TestFixed_ZeroValue(t *testing.T) {
	var c I8[cold]
	if c.Get() != -100 || c.String() != "-100 in [-100, -50]" {
		t.Fatalf("zero I8[cold] = %s", c)
	}
	c.Sub(1)
	if c.Get() != -50 {
		t.Fatalf("I8[cold] -100 - 1 = %d, want -50", c.Get())
	}
}

func TestFixed_InteroperatesWithGeneric(t *testing.T) {
	generic, _ := New[int32](-5, 10, 3)
	concrete, _ := NewFixed[int32, mixed](3)
	generic.Add(1)
	concrete.Sub(1)
	if generic.Get() != 4 || concrete.Get() != 2 {
		t.Fatalf("generic %s, concrete %s", generic, concrete)
	}
	concrete.Div(2)
	if !concrete.Equal(1) || concrete.Compare(generic.Get()) != -1 {
		t.Fatalf("concrete / 2 = %s", concrete)
	}
}

func TestFixed_MatchesGenericForEveryInt8(t *testing.T) {
	checkCoherence[digit](t)
	checkCoherence[five](t)
	checkCoherence[cold](t)
	checkCoherence[bounds.Domain[int8]](t)
}

func checkCoherence[R bounds.Static[int8]](t *testing.T) {
	t.Helper()
	b := bounds.MustOf[int8, R]()
	for v := int8(math.MinInt8); ; v++ {
		f, err := NewFixed[int8, R](v)
		if err != nil {
			t.Fatalf("NewFixed%s(%d): %v", b, v, err)
		}
		g := From(b, v)
		if f.Dynamic() != g {
			t.Fatalf("%s construct %d: fixed %s, generic %s", b, v, f, g)
		}
		f.Add(v)
		g.Add(v)
		f.Mul(3)
		g.Mul(3)
		f.Sub(-7)
		g.Sub(-7)
		if f.Get() != g.Get() {
			t.Fatalf("%s arithmetic on %d: fixed %s, generic %s", b, v, f, g)
		}
		if v != 0 {
			f.Rem(v)
			g.Rem(v)
			if f.Get() != g.Get() {
				t.Fatalf("%s %% %d: fixed %s, generic %s", b, v, f, g)
			}
		}
		if v == math.MaxInt8 {
			break
		}
	}
}
