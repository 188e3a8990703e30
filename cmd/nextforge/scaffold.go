package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nextforge-dev/nextforge/internal/config"
	"github.com/nextforge-dev/nextforge/internal/errors"
	"github.com/nextforge-dev/nextforge/internal/project"
	"github.com/nextforge-dev/nextforge/internal/setup"
	"github.com/nextforge-dev/nextforge/internal/toolchain"
	"github.com/nextforge-dev/nextforge/internal/ui"
)

func newRootCmd(c *cli) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "nextforge [project-name]",
		Short: "Scaffold a production-ready Next.js application",
		Long: `nextforge scaffolds a production-ready Next.js application.

Given a project name it runs create-next-app, installs every shadcn/ui
component, and layers a theme-aware shell on top:

  • TypeScript, Tailwind CSS, ESLint, App Router, Turbopack
  • Dark mode via next-themes, with a toggle in the header
  • Header, footer, and mobile navigation wired into the root layout
  • Marketing, legal, and error pages, sitemap and robots routes
  • Performance-tuned next.config and example middleware
  • Optional MDX documentation section (--docs)

Examples:
  nextforge my-app
  nextforge my-app --pm pnpm --docs
  nextforge my-app --dry-run`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(c, cmd, args, cfgFile)
		},
	}

	cmd.Flags().String("pm", config.DefaultPackageManager, "Package manager (npm, pnpm, bun)")
	cmd.Flags().Bool("docs", false, "Include the MDX documentation section")
	cmd.Flags().BoolP("yes", "y", false, "Skip prompts and use defaults")
	cmd.Flags().Bool("dry-run", false, "Print the setup plan without running anything")
	cmd.Flags().Bool("skip-install", false, "Skip installing extra dependencies")
	cmd.Flags().Duration("registry-delay", config.DefaultRegistryDelay, "Pause between shadcn init and add")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("verbose", false, "Show subprocess output")
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Path to a nextforge.yaml config file")

	cmd.AddCommand(
		doctorCmd(c),
		versionCmd(c),
	)

	return cmd
}

func runScaffold(c *cli, cmd *cobra.Command, args []string, cfgFile string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	// Subprocess output is captured by default and surfaced only on
	// failure; --verbose streams it live.
	if runner, ok := c.runner.(*toolchain.ExecRunner); ok {
		runner.Quiet = !cfg.Verbose
	}

	if cfg.NoColor {
		c.printer = ui.NewWithStyles(c.printer.Writer(), c.printer.ErrWriter(), ui.PlainStyles())
		errors.DisableColors()
	}

	p := c.printer
	p.Banner()

	if cfg.Verbose {
		p.Muted("config: %s", cfg)
		if file := config.FileUsed(); file != "" {
			p.Muted("config file: %s", file)
		}
	}

	interactive := c.isTTY() && !cfg.Yes
	reader := bufio.NewReader(c.stdin)

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		if !interactive {
			return errors.New("E101").
				WithSuggestion("Run: nextforge <project-name>")
		}
		if name, err = promptName(p, reader); err != nil {
			return err
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	proj, err := project.Resolve(cwd, name)
	if err != nil {
		return err
	}
	if err := proj.EnsureAbsent(); err != nil {
		return err
	}

	if interactive {
		if err := promptOptions(p, reader, cmd, cfg); err != nil {
			return err
		}
	}

	plan := setup.NewPlan(proj, cfg, c.runner, p)

	if cfg.DryRun {
		printPlan(c, proj, plan)
		return nil
	}

	if err := c.checker.Check(cmd.Context(), cfg.PackageManager); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	p.Info("Creating %s...", proj.Name)
	p.Println()

	start := time.Now()
	if err := plan.Run(ctx); err != nil {
		return err
	}

	p.Println()
	p.Success("Created %s/ in %s", proj.Name, time.Since(start).Round(time.Second))
	p.Println()
	p.Println("  To get started:")
	p.Println()
	p.Printf("    cd %s\n", proj.Name)
	p.Printf("    %s run dev\n", cfg.PackageManager)
	p.Println()
	p.Println("  Your app will be running at http://localhost:3000")
	p.Println()

	return nil
}

// printPlan lists the steps a run would execute, for --dry-run.
func printPlan(c *cli, proj *project.Project, plan *setup.Plan) {
	p := c.printer
	p.Info("Plan for %s:", proj.Dir)
	p.Println()

	steps := plan.Steps()
	for i, step := range steps {
		p.Step(i+1, len(steps), step.Name, step.Description)
	}

	p.Println()
	p.Muted("Dry run, nothing was executed.")
}
