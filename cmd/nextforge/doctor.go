package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nextforge-dev/nextforge/internal/config"
)

func doctorCmd(c *cli) *cobra.Command {
	var pm string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the local environment for required tools",
		Long: `Check that the tools nextforge shells out to are installed.

The report covers Node.js (with its minimum supported version), npx,
and the package manager a scaffold would use. A broken environment is
reported before any project is touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(c, cmd, pm)
		},
	}

	cmd.Flags().StringVar(&pm, "pm", "", "Package manager to check (defaults to the configured one)")

	return cmd
}

func runDoctor(c *cli, cmd *cobra.Command, pm string) error {
	if pm == "" {
		cfg, err := config.Load("", nil)
		if err != nil {
			return err
		}
		pm = cfg.PackageManager
	}

	p := c.printer
	results := c.checker.Report(cmd.Context(), pm)

	t := table.NewWriter()
	t.SetOutputMirror(p.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Tool", "Status", "Version", "Path"})

	var firstErr error
	for _, r := range results {
		status := "ok"
		switch {
		case r.Err != nil && !r.Found:
			status = "missing"
		case r.Err != nil:
			status = "unsupported"
		}
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
		}
		t.AppendRow(table.Row{r.Name, status, r.Version, r.Path})
	}
	t.Render()

	p.Println()
	if firstErr != nil {
		return firstErr
	}
	p.Success("Environment ready")
	return nil
}
