//go:generate go run github.com/dmarkham/enumer -type=Policy -trimprefix=Policy -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
package cli

// Policy selects the container a value is evaluated in.
type Policy int

const (
	PolicyReject Policy = iota
	PolicyWrap
	PolicySaturate
)

type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

// Options is one evaluation requested on the command line.
type Options struct {
	Policy Policy
	Type   string
	Range  string
	Value  string
	Ops    []string
	Rebind string
	Export string
	Shell  ShellType
}
