package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd(c *cli) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version, commit, and build information for the nextforge CLI.`,
		Run: func(cmd *cobra.Command, args []string) {
			p := c.printer
			if short {
				p.Println(version)
				return
			}

			p.Banner()
			p.Println()
			p.Printf("  Version:    %s\n", version)
			p.Printf("  Commit:     %s\n", commit)
			p.Printf("  Built:      %s\n", date)
			p.Printf("  Go version: %s\n", runtime.Version())
			p.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			p.Println()
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
