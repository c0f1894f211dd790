package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseOps(t *testing.T) {
	got, err := ParseOps([]string{"+1, *4", " -6 ", "/2,%3", ""})
	if err != nil {
		t.Fatal(err)
	}
	want := []Op{
		{Symbol: '+', Operand: "1"},
		{Symbol: '*', Operand: "4"},
		{Symbol: '-', Operand: "6"},
		{Symbol: '/', Operand: "2"},
		{Symbol: '%', Operand: "3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseOps mismatch (-want +got):\n%s", diff)
	}
	names := []string{}
	for _, op := range got {
		names = append(names, op.Name())
	}
	if diff := cmp.Diff([]string{"add", "mul", "sub", "div", "rem"}, names); diff != "" {
		t.Fatalf("Name mismatch (-want +got):\n%s", diff)
	}
	if got[2].String() != "-6" {
		t.Fatalf("String() = %q", got[2].String())
	}

	for _, bad := range []string{"+", "5", "x5", "^2"} {
		if _, err := ParseOps([]string{bad}); err == nil {
			t.Fatalf("ParseOps(%q): expected error", bad)
		}
	}
	if ops, err := ParseOps(nil); err != nil || len(ops) != 0 {
		t.Fatalf("ParseOps(nil) = %v, %v", ops, err)
	}
}
