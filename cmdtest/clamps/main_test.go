package clamps

import (
	"flag"
	"testing"

	"github.com/vipcxj/clamps/cmd"
	"github.com/vipcxj/clamps/cmdtest"
)

var update = flag.Bool("update", false, "update yaml expectations with results")

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Register("clamps", cmd.Execute)
	ts.Run(t, *update)
}
