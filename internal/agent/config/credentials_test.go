package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/agent/config"
)

func TestDefaultPath_ReturnsPathInHomeDir(t *testing.T) {
	p, err := config.DefaultPath()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".bookmarks", "credentials.json"), p)
}

func TestLoad_FileNotExists_ReturnsEmptyCredentials(t *testing.T) {
	creds, err := config.Load(filepath.Join(t.TempDir(), "no-such-file.json"))
	require.NoError(t, err)
	require.NotNil(t, creds)
	require.Empty(t, creds.AccessToken)
}

func TestLoad_BadJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(p, []byte("{"), 0o600))

	_, err := config.Load(p)
	require.Error(t, err)
}

func TestSaveLoad_RoundTripAndPermissions(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "creds.json")

	require.NoError(t, config.Save(p, &config.Credentials{AccessToken: "tok", Email: "a@b.c"}))

	got, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, "tok", got.AccessToken)
	require.Equal(t, "a@b.c", got.Email)

	if runtime.GOOS != "windows" {
		st, err := os.Stat(p)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), st.Mode().Perm())
	}
}
