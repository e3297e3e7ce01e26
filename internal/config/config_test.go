package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppc-optimizer/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(5000), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, []string{"xlsx", "xls"}, cfg.Upload.AllowedExtensions)
	assert.Equal(t, int64(32<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "8088")
	t.Setenv("UPLOAD_DIR", "/var/tmp/ppc")
	t.Setenv("UPLOAD_ALLOWED_EXTENSIONS", "xlsx")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(8088), cfg.HTTP.Port)
	assert.Equal(t, "/var/tmp/ppc", cfg.Upload.Dir)
	assert.Equal(t, []string{"xlsx"}, cfg.Upload.AllowedExtensions)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoggerLevels(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug, "WARN": slog.LevelWarn, "warning": slog.LevelWarn,
		"err": slog.LevelError, "bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, configs.Logger{Level: in}.SlogLevel(), in)
	}
	assert.Equal(t, "text", configs.Logger{Format: "xml"}.SlogFormat())
	assert.NotNil(t, configs.Logger{Format: "json"}.New(os.Stderr))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	want := CLIDefaults{Format: "yaml", TargetACOS: 25, ExportDir: "/tmp/out"}

	files := map[string]string{
		"ppcctl.toml": "format = \"yaml\"\ntarget_acos = 25.0\nexport_dir = \"/tmp/out\"\n",
		"ppcctl.yaml": "format: yaml\ntarget_acos: 25\nexport_dir: /tmp/out\n",
		"ppcctl.json": `{"format":"yaml","target_acos":25,"export_dir":"/tmp/out"}`,
	}
	for name, content := range files {
		got, err := LoadFile(writeFile(t, name, content))
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(writeFile(t, "ppcctl.ini", "format=json"))
	assert.ErrorContains(t, err, "unsupported config file format")

	_, err = LoadFile(writeFile(t, "bad.yaml", "format: [unterminated"))
	assert.ErrorContains(t, err, "error parsing config file")

	_, err = LoadFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
