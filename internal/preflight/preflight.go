// Package preflight verifies the local toolchain before any setup step
// runs: Node.js at a supported version, npx, and the selected package
// manager. Failing early keeps a broken environment from producing a
// half-scaffolded project.
package preflight

import (
	"context"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/nextforge-dev/nextforge/internal/errors"
)

// MinNodeVersion is the oldest Node.js release Next.js supports.
var MinNodeVersion = semver.MustParse("18.18.0")

// Tool queries installed command-line tools. The indirection exists so
// tests can fake a machine without Node.
type Tool interface {
	// LookPath reports where a binary lives, like exec.LookPath.
	LookPath(file string) (string, error)

	// Version runs a binary with a version flag and returns its
	// trimmed stdout.
	Version(ctx context.Context, name string, args ...string) (string, error)
}

type execTool struct{}

func (execTool) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (execTool) Version(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Checker runs the environment checks.
type Checker struct {
	tool Tool
}

// New returns a Checker backed by the real toolchain.
func New() *Checker {
	return &Checker{tool: execTool{}}
}

// NewWithTool returns a Checker backed by a custom Tool.
func NewWithTool(tool Tool) *Checker {
	return &Checker{tool: tool}
}

// Result describes one checked tool, for the doctor report.
type Result struct {
	// Name of the binary checked, e.g. "node".
	Name string

	// Found reports whether the binary is on PATH.
	Found bool

	// Path is the resolved binary location when found.
	Path string

	// Version is the tool's reported version when found.
	Version string

	// Err is the coded error when the check failed.
	Err error
}

// Check gates scaffolding on the environment. It returns the first
// failure as a coded error.
func (c *Checker) Check(ctx context.Context, packageManager string) error {
	if err := c.CheckNode(ctx); err != nil {
		return err
	}
	if err := c.CheckNpx(); err != nil {
		return err
	}
	return c.CheckPackageManager(packageManager)
}

// CheckNode verifies that Node.js is installed and recent enough.
func (c *Checker) CheckNode(ctx context.Context) error {
	if _, err := c.tool.LookPath("node"); err != nil {
		return errors.New("E110").
			WithSuggestion("Install Node.js 18.18.0 or newer from https://nodejs.org")
	}

	raw, err := c.tool.Version(ctx, "node", "--version")
	if err != nil {
		return errors.New("E110").
			WithDetail("node is on PATH but 'node --version' failed.").
			Wrap(err)
	}

	version, err := parseNodeVersion(raw)
	if err != nil {
		return errors.New("E110").
			WithDetailf("Could not parse Node.js version %q.", raw).
			Wrap(err)
	}

	if version.LessThan(MinNodeVersion) {
		return errors.New("E111").
			WithDetailf("Found Node.js %s, need %s or newer.", version, MinNodeVersion).
			WithSuggestion("Upgrade Node.js, e.g. via your version manager or https://nodejs.org")
	}

	return nil
}

// CheckNpx verifies that npx is installed. It ships with npm, so a
// missing npx almost always means a broken Node install.
func (c *Checker) CheckNpx() error {
	if _, err := c.tool.LookPath("npx"); err != nil {
		return errors.New("E110").
			WithDetail("npx is not on PATH. It is bundled with npm since version 5.2.").
			WithSuggestion("Reinstall Node.js or install npm")
	}
	return nil
}

// CheckPackageManager verifies that the selected package manager is
// installed.
func (c *Checker) CheckPackageManager(packageManager string) error {
	if _, err := c.tool.LookPath(packageManager); err != nil {
		return errors.New("E112").
			WithDetailf("%s is not on PATH.", packageManager).
			WithSuggestion("Install " + packageManager + " or pick another one with --pm")
	}
	return nil
}

// Report runs every check and returns one Result per tool, found or
// not. Used by the doctor command.
func (c *Checker) Report(ctx context.Context, packageManager string) []Result {
	results := []Result{
		c.report(ctx, "node", c.CheckNode(ctx)),
		c.report(ctx, "npx", c.CheckNpx()),
	}
	if packageManager != "node" && packageManager != "npx" {
		results = append(results, c.report(ctx, packageManager, c.CheckPackageManager(packageManager)))
	}
	return results
}

func (c *Checker) report(ctx context.Context, name string, checkErr error) Result {
	r := Result{Name: name, Err: checkErr}
	if path, err := c.tool.LookPath(name); err == nil {
		r.Found = true
		r.Path = path
		if v, err := c.tool.Version(ctx, name, "--version"); err == nil {
			r.Version = strings.TrimPrefix(v, "v")
		}
	}
	return r
}

// parseNodeVersion turns "v20.11.1" into a semver version.
func parseNodeVersion(raw string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
}
