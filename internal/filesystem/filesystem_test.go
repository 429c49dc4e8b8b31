package filesystem

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestSetMemMapFs(t *testing.T) {
	SetMemMapFs()
	t.Cleanup(SetOsFs)

	_, ok := API().Fs.(*afero.MemMapFs)
	require.True(t, ok, "expected in-memory backend")

	require.NoError(t, API().WriteFile("/tmp/check.txt", []byte("ok"), 0o644))
	data, err := API().ReadFile("/tmp/check.txt")
	require.NoError(t, err)
	require.Equal(t, "ok", string(data))
}

func TestSetOsFs(t *testing.T) {
	SetMemMapFs()
	SetOsFs()

	_, ok := API().Fs.(*afero.OsFs)
	require.True(t, ok, "expected OS backend")
}
