package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// buildShellLiteral: POSIX shell 整体用单引号包裹，内部单引号用 '\'' 拼接。
func buildShellLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// buildPowershellLiteral: 单引号内双写单引号以转义
func buildPowershellLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// buildCmdLiteral drops the characters cmd would interpret inside set "...".
func buildCmdLiteral(s string) string {
	return strings.NewReplacer(`"`, "", "\r", "", "\n", "").Replace(s)
}

func validEnvName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// exportValue renders the assignment of val to varName for the shell,
// scoped to the current session.
func exportValue(shellType ShellType, varName string, val string) (string, error) {
	if !validEnvName(varName) {
		return "", fmt.Errorf("invalid variable name %q", varName)
	}
	shellType, err := decideShellType(shellType)
	if err != nil {
		return "", err
	}
	switch shellType {
	case ShellTypeSh:
		return fmt.Sprintf("export %s=%s", varName, buildShellLiteral(val)), nil
	case ShellTypePowershell:
		return fmt.Sprintf("$Env:%s = %s", varName, buildPowershellLiteral(val)), nil
	case ShellTypeCmd:
		return fmt.Sprintf("set \"%s=%s\"", varName, buildCmdLiteral(val)), nil
	default:
		// should not reach here
		return "", fmt.Errorf("unsupported shell type: %v", shellType)
	}
}

func decideShellType(shellType ShellType) (ShellType, error) {
	switch shellType {
	case ShellTypeSh, ShellTypePowershell, ShellTypeCmd:
		return shellType, nil
	case ShellTypeAuto:
		fallthrough
	default:
		shellName, err := detectUserShell()
		if err != nil {
			return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
		}
		return shellTypeOf(shellName), nil
	}
}

func shellTypeOf(shellName string) ShellType {
	shellName = strings.ToLower(shellName)
	shellName = strings.TrimSuffix(shellName, ".exe")
	switch shellName {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	default:
		// default to sh-like
		return ShellTypeSh
	}
}

// detectUserShell 沿父进程链查找常见 shell 名称，找不到时回退到 SHELL / COMSPEC。
func detectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", fmt.Errorf("cannot get parent process: %w", err)
	}
	seen := map[int32]struct{}{}
	known := []string{
		"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
		"powershell", "pwsh", "cmd",
	}

	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		n := strings.TrimSuffix(strings.ToLower(name), ".exe")
		for _, k := range known {
			if n == k {
				return name, nil
			}
		}

		parent, perr := p.Parent()
		if perr != nil || parent == nil {
			break
		}
		p = parent
	}

	// 回退环境变量，它们只是默认 shell，不一定是当前实际使用的 shell
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}

	return "", fmt.Errorf("user shell not detected")
}
