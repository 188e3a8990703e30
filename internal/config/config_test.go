package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextforge-dev/nextforge/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "npm", cfg.PackageManager)
	assert.Equal(t, 2*time.Second, cfg.RegistryDelay)
	assert.False(t, cfg.Docs)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.SkipInstall)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "pnpm",
			mutate: func(c *Config) { c.PackageManager = "pnpm" },
		},
		{
			name:   "bun",
			mutate: func(c *Config) { c.PackageManager = "bun" },
		},
		{
			name:    "unknown package manager",
			mutate:  func(c *Config) { c.PackageManager = "yarn" },
			wantErr: true,
		},
		{
			name:    "empty package manager",
			mutate:  func(c *Config) { c.PackageManager = "" },
			wantErr: true,
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.RegistryDelay = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var fe *errors.ForgeError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, "E150", fe.Code)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsValidPackageManager(t *testing.T) {
	assert.True(t, IsValidPackageManager("npm"))
	assert.True(t, IsValidPackageManager("pnpm"))
	assert.True(t, IsValidPackageManager("bun"))
	assert.False(t, IsValidPackageManager("yarn"))
	assert.False(t, IsValidPackageManager("NPM"))
	assert.False(t, IsValidPackageManager(""))
}
