package cli

import "testing"

func TestExportValue(t *testing.T) {
	cases := []struct {
		name  string
		shell ShellType
		val   string
		exp   string
	}{
		{"sh", ShellTypeSh, "3", "export N='3'"},
		{"sh_quote", ShellTypeSh, "it's", `export N='it'\''s'`},
		{"powershell", ShellTypePowershell, "-7", "$Env:N = '-7'"},
		{"powershell_quote", ShellTypePowershell, "it's", "$Env:N = 'it''s'"},
		{"cmd", ShellTypeCmd, "42", `set "N=42"`},
		{"cmd_quote", ShellTypeCmd, `4"2`, `set "N=42"`},
	}
	for _, tc := range cases {
		got, err := exportValue(tc.shell, "N", tc.val)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.exp {
			t.Fatalf("%s: exportValue = %q, want %q", tc.name, got, tc.exp)
		}
	}
}

func TestValidEnvName(t *testing.T) {
	for name, exp := range map[string]bool{
		"N": true, "_x1": true, "CLAMPS_VALUE": true,
		"": false, "1X": false, "A-B": false, "A B": false,
	} {
		if got := validEnvName(name); got != exp {
			t.Fatalf("validEnvName(%q) = %v, want %v", name, got, exp)
		}
	}
}

func TestShellTypeOf(t *testing.T) {
	cases := map[string]ShellType{
		"bash":           ShellTypeSh,
		"zsh":            ShellTypeSh,
		"pwsh":           ShellTypePowershell,
		"PowerShell.exe": ShellTypePowershell,
		"cmd.exe":        ShellTypeCmd,
		"unknown":        ShellTypeSh,
	}
	for name, exp := range cases {
		if got := shellTypeOf(name); got != exp {
			t.Fatalf("shellTypeOf(%q) = %s, want %s", name, got, exp)
		}
	}
}
