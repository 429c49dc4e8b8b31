package where

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ytget/ytinfo/internal/filesystem"
)

func TestConfigOverride(t *testing.T) {
	filesystem.SetMemMapFs()
	t.Cleanup(filesystem.SetOsFs)

	t.Setenv(EnvConfigPath, "/custom/ytinfo")

	require.Equal(t, "/custom/ytinfo", Config())
	exists, err := filesystem.API().DirExists("/custom/ytinfo")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestLogs(t *testing.T) {
	filesystem.SetMemMapFs()
	t.Cleanup(filesystem.SetOsFs)

	t.Setenv(EnvConfigPath, "/custom/ytinfo")

	require.Equal(t, filepath.Join("/custom/ytinfo", "logs"), Logs())
}
