// Package cmdtest runs YAML described command line cases against an
// in-process entry point and compares stdout, stderr and the exit code
// separately.
//
// A test file holds a "tests" sequence:
//
//	tests:
//	  - name: wrap
//	    cmd: clamps
//	    args: [wrap, --range, "[0,9]", "13"]
//	    env:
//	      CLAMPS_TYPE: int8
//	    expect:
//	      stdout: "3\n"
//	      exitCode: 0
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// Expect is the observable outcome of one run.
type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// Case 对应 YAML 文件中的单个测试用例
type Case struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"` // 参数数组，规避引号问题
	Env         map[string]string `yaml:"env,omitempty"`
	Expect      Expect            `yaml:"expect"`
}

type file struct {
	path  string
	Tests []Case `yaml:"tests"`
}

// Suite is every case of a directory.
type Suite struct {
	files    []*file
	commands map[string]func() int
}

// Read loads every .yaml and .yml file under dir.
func Read(dir string) (*Suite, error) {
	s := &Suite{commands: make(map[string]func() int)}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		ext := strings.ToLower(filepath.Ext(path))
		if d.IsDir() || (ext != ".yaml" && ext != ".yml") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		f := &file{path: path}
		if err := yaml.Unmarshal(content, f); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if len(f.Tests) == 0 {
			return fmt.Errorf("%s: missing 'tests' key", path)
		}
		s.files = append(s.files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Register binds the cmd field of the cases to an entry point returning the
// exit code.
func (s *Suite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run executes every case. With update set, mismatching expectations are
// written back to their files instead of failing.
func (s *Suite) Run(t *testing.T, update bool) {
	for _, f := range s.files {
		t.Run(filepath.Base(f.path), func(t *testing.T) {
			changed := false
			for i := range f.Tests {
				c := &f.Tests[i]
				name := c.Name
				if name == "" {
					name = fmt.Sprintf("case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					got := s.execute(t, c)
					if got == c.Expect {
						return
					}
					if update {
						c.Expect = got
						changed = true
						return
					}
					t.Errorf("%s %s: outcome mismatch (-want +got):\n%s",
						c.Cmd, strings.Join(c.Args, " "), cmp.Diff(c.Expect, got))
				})
			}
			if changed {
				if err := f.persist(); err != nil {
					t.Fatalf("persist %s: %v", f.path, err)
				}
			}
		})
	}
}

func (s *Suite) execute(t *testing.T, c *Case) Expect {
	run, ok := s.commands[c.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", c.Cmd)
	}
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		t.Setenv(k, c.Env[k])
	}

	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	defer func() {
		os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr
	}()

	os.Args = append([]string{c.Cmd}, c.Args...)
	stdout, wOut := capture(t)
	stderr, wErr := capture(t)
	os.Stdout, os.Stderr = wOut, wErr

	var got Expect
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				got.ExitCode = -1
			}
		}()
		got.ExitCode = run()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	got.Stdout = <-stdout
	got.Stderr = <-stderr
	return got
}

// capture returns a pipe writer and the channel its content is delivered on
// once the writer is closed.
func capture(t *testing.T) (<-chan string, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	out := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		out <- buf.String()
	}()
	return out, w
}

func (f *file) persist() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(f.path, buf.Bytes(), 0o644)
}
