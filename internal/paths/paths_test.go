package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCWD points the working-directory lookup at dir for one test.
func withCWD(t *testing.T, dir string) {
	t.Helper()
	orig := platformDir.getwd
	platformDir.getwd = func() (string, error) { return dir, nil }
	t.Cleanup(func() { platformDir.getwd = orig })
}

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/vendors", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		orig := platformDir.homeDir
		platformDir.homeDir = func() (string, error) { return "/home/tester", nil }
		defer func() { platformDir.homeDir = orig }()

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/home/tester/.config/vendors", got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		envVal  string
		wantSub string
	}{
		{"flag wins over env", "/explicit/config", "/env/config", "/explicit/config"},
		{"env wins when flag empty", "", "/env/config", "/env/config"},
		{"platform default when both empty", "", "", "vendors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Contains(t, got, tt.wantSub)
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	withCWD(t, "/work")

	tests := []struct {
		name        string
		flag        string
		configValue string
		envVal      string
		want        string
	}{
		{"flag wins over all", "/flag/data", "/config/data", "/env/data", "/flag/data"},
		{"config wins over env", "", "/config/data", "/env/data", "/config/data"},
		{"env wins when flag and config empty", "", "", "/env/data", "/env/data"},
		{"CWD default when all empty", "", "", "", filepath.Join("/work", DefaultDataDirName)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.envVal)
			got, err := ResolveDataDir(tt.flag, tt.configValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDataDir_RelativeBecomesAbsolute(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	got, err := ResolveDataDir("relative/path", "")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
}

func TestResolveEnvFile(t *testing.T) {
	cwd := t.TempDir()
	configDir := t.TempDir()
	withCWD(t, cwd)

	t.Run("nothing to load", func(t *testing.T) {
		got, err := ResolveEnvFile("", configDir)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("config dir file", func(t *testing.T) {
		path := filepath.Join(configDir, EnvFileName)
		require.NoError(t, os.WriteFile(path, []byte("A=1\n"), 0o600))
		got, err := ResolveEnvFile("", configDir)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("cwd file wins over config dir", func(t *testing.T) {
		path := filepath.Join(cwd, EnvFileName)
		require.NoError(t, os.WriteFile(path, []byte("A=2\n"), 0o600))
		got, err := ResolveEnvFile("", configDir)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("flag wins", func(t *testing.T) {
		got, err := ResolveEnvFile("/some/where/.env.local", configDir)
		require.NoError(t, err)
		assert.Equal(t, "/some/where/.env.local", got)
	})
}
