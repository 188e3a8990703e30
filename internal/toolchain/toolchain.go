// Package toolchain runs the Node-side tools that do the heavy lifting:
// create-next-app, shadcn, and the package manager. Every invocation
// carries its working directory explicitly so the tool never changes
// the process working directory.
package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes one subprocess invocation.
type Command struct {
	// Name is the binary to run, e.g. "npx".
	Name string

	// Args are the arguments, excluding the binary name.
	Args []string

	// Dir is the working directory the command runs in. Required;
	// commands never run in the process working directory implicitly.
	Dir string

	// Env holds extra KEY=VALUE entries appended to the inherited
	// environment.
	Env []string
}

// String renders the command line for logs and dry-run output.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Output captures the result of a subprocess run.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes commands. The real implementation shells out; tests
// substitute a fake.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// ExecRunner runs commands via os/exec, streaming output to the
// configured writers while capturing it.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to
	// os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Quiet captures subprocess output without streaming it.
	Quiet bool
}

// Run executes the command. A non-zero exit is reported through
// Output.ExitCode with a nil error; errors are reserved for failures
// to start the process at all.
func (r *ExecRunner) Run(ctx context.Context, c Command) (*Output, error) {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	if r.Quiet {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	} else {
		cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)
	}

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("running %s: %w", c.Name, err)
	}

	return output, nil
}

// StderrTail returns the last lines of captured stderr for error
// details, trimmed to keep reports readable.
func (o *Output) StderrTail(maxLines int) string {
	lines := strings.Split(strings.TrimSpace(o.Stderr), "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
