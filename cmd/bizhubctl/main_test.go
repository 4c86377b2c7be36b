package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{
		{"migrate"},
		{"rls", "enable"},
		{"rls", "disable"},
		{"sessions", "purge"},
		{"seed"},
		{"tenants", "list"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestPurgeRejectsNegativeCutoff(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"sessions", "purge", "--older-than=-1h"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--older-than must not be negative")
}

func TestSeedMissingFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := newRootCmd()
	root.SetArgs([]string{"seed", "testdata/does-not-exist.yaml"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read testdata/does-not-exist.yaml")
}

func TestSeedRejectsExtraArgs(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"seed", "a.yaml", "b.yaml"})

	assert.Error(t, root.Execute())
}
