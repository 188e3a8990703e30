package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nextforge-dev/nextforge/internal/errors"
)

const (
	// DefaultPackageManager is used when no package manager is selected.
	DefaultPackageManager = "npm"

	// DefaultRegistryDelay is how long to wait between shadcn init and
	// shadcn add, giving the freshly written components.json time to be
	// picked up.
	DefaultRegistryDelay = 2 * time.Second
)

// ValidPackageManagers lists the package managers the scaffolder can
// drive. Ordered for help text and prompts.
var ValidPackageManagers = []string{"npm", "pnpm", "bun"}

// Config holds the tool settings, merged from defaults, the optional
// config file, NEXTFORGE_* environment variables, and flags.
type Config struct {
	// PackageManager selects the package manager for create-next-app
	// and dependency installs: npm, pnpm, or bun.
	PackageManager string `koanf:"package_manager"`

	// Docs enables the MDX documentation variant of the template set.
	Docs bool `koanf:"docs"`

	// Yes skips interactive prompts and accepts defaults.
	Yes bool `koanf:"yes"`

	// DryRun prints the setup plan without running anything.
	DryRun bool `koanf:"dry_run"`

	// SkipInstall skips the extra dependency install step.
	SkipInstall bool `koanf:"skip_install"`

	// RegistryDelay is the pause between shadcn init and shadcn add.
	RegistryDelay time.Duration `koanf:"registry_delay"`

	// NoColor disables styled terminal output. The NO_COLOR environment
	// variable is honored independently.
	NoColor bool `koanf:"no_color"`

	// Verbose echoes subprocess output even on success.
	Verbose bool `koanf:"verbose"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		PackageManager: DefaultPackageManager,
		RegistryDelay:  DefaultRegistryDelay,
	}
}

// Validate checks the merged configuration for values the rest of the
// tool cannot work with.
func (c *Config) Validate() error {
	if !IsValidPackageManager(c.PackageManager) {
		return errors.New("E150").
			WithDetailf("Unknown package manager %q. Valid values: %s.", c.PackageManager, strings.Join(ValidPackageManagers, ", "))
	}
	if c.RegistryDelay < 0 {
		return errors.New("E150").
			WithDetailf("registry_delay must not be negative, got %s.", c.RegistryDelay)
	}
	return nil
}

// IsValidPackageManager reports whether pm names a supported package
// manager.
func IsValidPackageManager(pm string) bool {
	for _, v := range ValidPackageManagers {
		if pm == v {
			return true
		}
	}
	return false
}

// String returns a single-line summary for verbose output.
func (c *Config) String() string {
	return fmt.Sprintf("pm=%s docs=%t yes=%t dry_run=%t skip_install=%t registry_delay=%s",
		c.PackageManager, c.Docs, c.Yes, c.DryRun, c.SkipInstall, c.RegistryDelay)
}
