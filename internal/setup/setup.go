// Package setup orchestrates the scaffolding run: an ordered list of
// named steps executed strictly in sequence, aborting on the first
// failure. Every error carries the name of the step that produced it,
// and nothing is rolled back, so a failed run leaves the partial
// project on disk for inspection.
package setup

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nextforge-dev/nextforge/internal/config"
	"github.com/nextforge-dev/nextforge/internal/errors"
	"github.com/nextforge-dev/nextforge/internal/patch"
	"github.com/nextforge-dev/nextforge/internal/project"
	"github.com/nextforge-dev/nextforge/internal/templates"
	"github.com/nextforge-dev/nextforge/internal/toolchain"
	"github.com/nextforge-dev/nextforge/internal/ui"
)

// basePackages are the runtime dependencies the template set imports
// beyond what create-next-app and shadcn already install.
var basePackages = []string{"next-themes", "lucide-react"}

// docsPackages carry the MDX toolchain for the docs variant.
var docsPackages = []string{"@next/mdx", "@mdx-js/loader", "@mdx-js/react", "@types/mdx"}

// Step is one named unit of the setup sequence.
type Step struct {
	// Name identifies the step in progress output and errors, e.g.
	// "create-app".
	Name string

	// Description is a one-line summary for plans and progress. For
	// subprocess steps it is the command line.
	Description string

	// Run performs the step.
	Run func(ctx context.Context) error
}

// Plan is the ordered setup sequence for one project.
type Plan struct {
	project *project.Project
	cfg     *config.Config
	runner  toolchain.Runner
	printer *ui.Printer
	steps   []Step
}

// NewPlan assembles the step list for proj under cfg. Subprocesses go
// through runner; progress goes through printer.
func NewPlan(proj *project.Project, cfg *config.Config, runner toolchain.Runner, printer *ui.Printer) *Plan {
	p := &Plan{
		project: proj,
		cfg:     cfg,
		runner:  runner,
		printer: printer,
	}

	parentDir := filepath.Dir(proj.Dir)
	createCmd := toolchain.CreateNextApp(parentDir, proj.Name, cfg.PackageManager)
	initCmd := toolchain.ShadcnInit(proj.Dir)
	addCmd := toolchain.ShadcnAdd(proj.Dir)

	setName := "base"
	packages := basePackages
	if cfg.Docs {
		setName = "docs"
		packages = append(append([]string{}, basePackages...), docsPackages...)
	}
	depsCmd := toolchain.AddDependencies(proj.Dir, cfg.PackageManager, packages)

	p.steps = []Step{
		{
			Name:        "create-app",
			Description: createCmd.String(),
			Run: func(ctx context.Context) error {
				return p.runTool(ctx, createCmd, "E120")
			},
		},
		{
			Name:        "shadcn-init",
			Description: initCmd.String(),
			Run: func(ctx context.Context) error {
				return p.runTool(ctx, initCmd, "E121")
			},
		},
		{
			Name:        "wait-for-registry",
			Description: fmt.Sprintf("wait %s for the component registry to settle", cfg.RegistryDelay),
			Run: func(ctx context.Context) error {
				return wait(ctx, cfg.RegistryDelay)
			},
		},
		{
			Name:        "shadcn-add",
			Description: addCmd.String(),
			Run: func(ctx context.Context) error {
				return p.runTool(ctx, addCmd, "E122")
			},
		},
	}

	if !cfg.SkipInstall {
		p.steps = append(p.steps, Step{
			Name:        "install-deps",
			Description: depsCmd.String(),
			Run: func(ctx context.Context) error {
				return p.runTool(ctx, depsCmd, "E123")
			},
		})
	}

	p.steps = append(p.steps,
		Step{
			Name:        "write-templates",
			Description: fmt.Sprintf("write the %s template set", setName),
			Run: func(ctx context.Context) error {
				return p.writeTemplates(setName)
			},
		},
		Step{
			Name:        "patch-layout",
			Description: "patch app/layout.tsx with the theme-aware shell",
			Run: func(ctx context.Context) error {
				return p.patchLayout()
			},
		},
	)

	return p
}

// Steps returns the ordered step list, for dry-run output.
func (p *Plan) Steps() []Step {
	return p.steps
}

// Run executes the steps strictly in sequence and stops at the first
// failure, wrapping it with the step name.
func (p *Plan) Run(ctx context.Context) error {
	total := len(p.steps)
	for i, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return errors.Newf(errors.CategorySetup, "setup cancelled").
				WithStep(step.Name).
				Wrap(err)
		}

		p.printer.Step(i+1, total, step.Name, step.Description)

		if err := step.Run(ctx); err != nil {
			if fe, ok := err.(*errors.ForgeError); ok {
				return fe.WithStep(step.Name)
			}
			return errors.Newf(errors.CategorySetup, "step failed").
				WithStep(step.Name).
				Wrap(err)
		}
	}
	return nil
}

// runTool executes one subprocess and converts failures into the
// step's error code. A non-zero exit carries the stderr tail so the
// user sees what the tool said without scrolling back.
func (p *Plan) runTool(ctx context.Context, cmd toolchain.Command, code string) error {
	out, err := p.runner.Run(ctx, cmd)
	if err != nil {
		return errors.New(code).
			WithSuggestion("Check your network connection and re-run the command").
			Wrap(err)
	}
	if out.ExitCode != 0 {
		e := errors.New(code).
			WithDetailf("%s exited with status %d.", cmd.Name, out.ExitCode)
		if tail := out.StderrTail(8); tail != "" {
			e = e.WithDetailf("%s exited with status %d. Last output:\n\n%s", cmd.Name, out.ExitCode, tail)
		}
		return e.WithSuggestion("Check your network connection and re-run the command")
	}
	return nil
}

func (p *Plan) writeTemplates(setName string) error {
	set, err := templates.Get(setName)
	if err != nil {
		return err
	}

	written, err := set.Write(p.project.Dir, templates.Data{
		ProjectName: p.project.Name,
		DisplayName: p.project.DisplayName,
	})
	if err != nil {
		return err
	}

	p.printer.Muted("%d files written", len(written))
	return nil
}

func (p *Plan) patchLayout() error {
	result, err := patch.File(p.project.LayoutPath(), patch.LayoutSubstitutions(p.project.DisplayName))
	if err != nil {
		return err
	}

	if result.Changed() {
		p.printer.Muted("%d substitutions applied", len(result.Applied))
	} else {
		p.printer.Muted("layout already patched, nothing to do")
	}
	return nil
}

// wait pauses for d or until the context is cancelled. The pause
// between shadcn init and add gives the freshly written
// components.json time to be picked up by the registry tooling.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
