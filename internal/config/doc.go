// Package config provides configuration loading for the nextforge CLI.
//
// Settings merge from four layers, highest priority first:
// command-line flags, NEXTFORGE_* environment variables, an optional
// YAML config file, and built-in defaults. A .env file in the working
// directory is loaded before environment variables are read.
//
// # Configuration File
//
// The loader looks for nextforge.yaml (or .yml) in the working
// directory, then in the user config directory:
//
//	package_manager: pnpm
//	docs: true
//	registry_delay: 2s
//
// # Usage
//
//	cfg, err := config.Load(cfgFile, cmd.Flags())
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println("Package manager:", cfg.PackageManager)
package config
