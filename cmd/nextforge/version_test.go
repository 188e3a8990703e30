package main

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionShort(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.execute("version", "--short"))

	assert.Equal(t, "dev\n", env.out.String())
}

func TestVersionFull(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.execute("version"))

	out := env.out.String()
	assert.Contains(t, out, "Version:    dev")
	assert.Contains(t, out, "Commit:     none")
	assert.Contains(t, out, "Go version: "+runtime.Version())
}
