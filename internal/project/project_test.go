package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextforge-dev/nextforge/internal/errors"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	p, err := Resolve(dir, "my-app")
	require.NoError(t, err)

	assert.Equal(t, "my-app", p.Name)
	assert.Equal(t, "My App", p.DisplayName)
	assert.Equal(t, filepath.Join(dir, "my-app"), p.Dir)
	assert.True(t, filepath.IsAbs(p.Dir))
}

func TestResolveRejectsInvalidName(t *testing.T) {
	_, err := Resolve(t.TempDir(), "My App")
	require.Error(t, err)

	var fe *errors.ForgeError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "E102", fe.Code)
}

func TestEnsureAbsent(t *testing.T) {
	dir := t.TempDir()

	p, err := Resolve(dir, "my-app")
	require.NoError(t, err)
	require.NoError(t, p.EnsureAbsent())

	// Existing directory
	require.NoError(t, os.MkdirAll(p.Dir, 0o755))
	err = p.EnsureAbsent()
	require.Error(t, err)

	var fe *errors.ForgeError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "E103", fe.Code)
}

func TestEnsureAbsentRejectsExistingFile(t *testing.T) {
	dir := t.TempDir()

	p, err := Resolve(dir, "my-app")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(p.Dir, []byte("not a directory"), 0o644))

	err = p.EnsureAbsent()
	require.Error(t, err)

	var fe *errors.ForgeError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "E103", fe.Code)
}

func TestLayoutPath(t *testing.T) {
	p, err := Resolve(t.TempDir(), "my-app")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(p.Dir, "app", "layout.tsx"), p.LayoutPath())
}
