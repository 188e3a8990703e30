package main

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nextforge-dev/nextforge/internal/config"
	"github.com/nextforge-dev/nextforge/internal/ui"
)

// promptName asks for the project name. Validation happens in the
// caller, so a bad answer gets the same coded error as a bad argument.
func promptName(p *ui.Printer, reader *bufio.Reader) (string, error) {
	p.Printf("? Project name: ")
	answer, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// promptOptions asks for the settings not pinned down by flags.
// Pressing enter keeps the configured default.
func promptOptions(p *ui.Printer, reader *bufio.Reader, cmd *cobra.Command, cfg *config.Config) error {
	if !cmd.Flags().Changed("pm") {
		p.Printf("? Package manager (%s) [%s]: ", strings.Join(config.ValidPackageManagers, ", "), cfg.PackageManager)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		if answer = strings.TrimSpace(answer); answer != "" {
			cfg.PackageManager = answer
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if !cmd.Flags().Changed("docs") {
		def := "y/N"
		if cfg.Docs {
			def = "Y/n"
		}
		p.Printf("? Include the MDX docs section? [%s] ", def)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		switch strings.TrimSpace(strings.ToLower(answer)) {
		case "y", "yes":
			cfg.Docs = true
		case "n", "no":
			cfg.Docs = false
		}
	}

	return nil
}
