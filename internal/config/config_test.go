package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v := New()
	used, err := Read(v, "")
	require.NoError(t, err)
	assert.Empty(t, used)

	cfg, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestRead_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formaudit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("association: last-label\nformat: json\nsanitize: true\n"), 0o644))

	v := New()
	used, err := Read(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "last-label", cfg.Association)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.Sanitize)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestRead_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".formaudit")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("format: yaml\n"), 0o644))

	v := New()
	used, err := Read(v, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), used)

	cfg, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestRead_MissingExplicitFile(t *testing.T) {
	_, err := Read(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDecode_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FORMAUDIT_ASSOCIATION", "last-label")
	t.Setenv("FORMAUDIT_LOG_LEVEL", "debug")

	cfg, err := Decode(New())
	require.NoError(t, err)
	assert.Equal(t, "last-label", cfg.Association)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestDecode_RejectsUnknownValues(t *testing.T) {
	v := New()
	v.Set(KeyFormat, "pdf")

	_, err := Decode(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "pdf"`)
}

func TestValidate_Default(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestValidate_TemplatesDir(t *testing.T) {
	cfg := Default()
	cfg.TemplatesDir = t.TempDir()
	require.NoError(t, Validate(cfg))

	cfg.TemplatesDir = filepath.Join(cfg.TemplatesDir, "missing")
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid templates_dir")
}
