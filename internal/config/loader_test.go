package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlagSet mirrors the flags the root command registers.
func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("pm", DefaultPackageManager, "")
	flags.Bool("docs", false, "")
	flags.Bool("yes", false, "")
	flags.Bool("dry-run", false, "")
	flags.Bool("skip-install", false, "")
	flags.Duration("registry-delay", DefaultRegistryDelay, "")
	flags.Bool("no-color", false, "")
	flags.Bool("verbose", false, "")
	return flags
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "npm", cfg.PackageManager)
	assert.Equal(t, 2*time.Second, cfg.RegistryDelay)
	assert.False(t, cfg.Docs)
	assert.Empty(t, FileUsed())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := "package_manager: pnpm\ndocs: true\nregistry_delay: 5s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nextforge.yaml"), []byte(yaml), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.True(t, cfg.Docs)
	assert.Equal(t, 5*time.Second, cfg.RegistryDelay)
	assert.Equal(t, "nextforge.yaml", FileUsed())
}

func TestLoadExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package_manager: bun\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "bun", cfg.PackageManager)
	assert.Equal(t, path, FileUsed())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "nextforge.yaml"), []byte("package_manager: pnpm\n"), 0o644))
	t.Setenv("NEXTFORGE_PACKAGE_MANAGER", "bun")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "bun", cfg.PackageManager)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NEXTFORGE_PACKAGE_MANAGER", "bun")

	flags := newFlagSet()
	require.NoError(t, flags.Set("pm", "pnpm"))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "pnpm", cfg.PackageManager)
}

func TestLoadUnchangedFlagsDoNotOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NEXTFORGE_PACKAGE_MANAGER", "pnpm")

	// Flag registered but not set on the command line.
	cfg, err := Load("", newFlagSet())
	require.NoError(t, err)

	assert.Equal(t, "pnpm", cfg.PackageManager)
}

func TestLoadKebabCaseFlags(t *testing.T) {
	chdir(t, t.TempDir())

	flags := newFlagSet()
	require.NoError(t, flags.Set("skip-install", "true"))
	require.NoError(t, flags.Set("dry-run", "true"))
	require.NoError(t, flags.Set("no-color", "true"))
	require.NoError(t, flags.Set("registry-delay", "250ms"))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.True(t, cfg.SkipInstall)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 250*time.Millisecond, cfg.RegistryDelay)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// godotenv sets process env vars; make sure this one is absent
	// before and after.
	require.NoError(t, os.Unsetenv("NEXTFORGE_DOCS"))
	t.Cleanup(func() { _ = os.Unsetenv("NEXTFORGE_DOCS") })

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NEXTFORGE_DOCS=true\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.True(t, cfg.Docs)
}

func TestLoadRejectsInvalidMerge(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NEXTFORGE_PACKAGE_MANAGER", "yarn")

	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E150")
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "nextforge.yaml"), []byte("package_manager: [unclosed\n"), 0o644))

	_, err := Load("", nil)
	require.Error(t, err)
}
