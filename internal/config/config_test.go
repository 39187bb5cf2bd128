package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestLoad_YML(t *testing.T) {
	dir := t.TempDir()
	content := `ghdl: /opt/ghdl/bin/ghdl
ghdlArgs: ["-s", "-dp", "--std=08"]
timeout: 30s
format: mermaid
parallelism: 2
repeatedModes: true
style:
  rankdir: TB
  fontsize: 14
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vhdldot.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/ghdl/bin/ghdl", cfg.GHDL)
	assert.Equal(t, []string{"-s", "-dp", "--std=08"}, cfg.GHDLArgs)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "mermaid", cfg.Format)
	assert.Equal(t, 2, cfg.Parallelism)
	assert.True(t, cfg.RepeatedModes)
	assert.Equal(t, "TB", cfg.Style.RankDir)
	assert.Equal(t, 14, cfg.Style.FontSize)
	assert.Empty(t, cfg.Style.Splines)
	assert.Nil(t, cfg.Style.MinHeight)
}

func TestLoad_ExplicitZeroMinHeight(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vhdldot.yml"), []byte("style:\n  minHeight: 0\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Style.MinHeight)
	assert.Equal(t, 0, *cfg.Style.MinHeight)
}

func TestLoad_YAMLExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vhdldot.yaml"), []byte("strict: true\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vhdldot.yml"), []byte("parallelism: [1, 2\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
