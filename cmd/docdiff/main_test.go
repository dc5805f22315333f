package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/docdiff/internal/config"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	flags, err := ParseFlags([]string{"-l", "a.txt", "-r", "b.txt", "-m", "md", "-f", "html", "--format", "json,text", "-w", "--history"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", flags.LeftPath)
	assert.Equal(t, "b.txt", flags.RightPath)
	assert.Equal(t, "md", flags.Mode)
	assert.Equal(t, []string{"html", "json", "text"}, flags.Formats)
	assert.True(t, flags.Watch)
	assert.True(t, flags.History)

	_, err = ParseFlags([]string{"-l", "a.txt"}, &out)
	assert.Error(t, err)

	flags, err = ParseFlags([]string{"--list-history", "5"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 5, flags.ListHistory)

	_, err = ParseFlags([]string{"--unknown"}, &out)
	assert.Error(t, err)
}

func TestResolveMode(t *testing.T) {
	mode, err := resolveMode("html", "word")
	require.NoError(t, err)
	assert.Equal(t, models.ModeHTMLBlock, mode)

	mode, err = resolveMode("", "markdownBlock")
	require.NoError(t, err)
	assert.Equal(t, models.ModeMarkdownBlock, mode)

	mode, err = resolveMode("", "")
	require.NoError(t, err)
	assert.Equal(t, models.ModeWord, mode)

	_, err = resolveMode("xml", "")
	assert.Error(t, err)
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := config.NewDefaultGlobalConfig()
	applyFlagOverrides(cfg, AppFlags{OutputDir: "out", Formats: []string{"json"}, History: true, Export: true, LogLevel: "debug"})
	assert.Equal(t, "out", cfg.ReporterConfig.OutputDir)
	assert.Equal(t, []string{"json"}, cfg.ReporterConfig.Formats)
	assert.True(t, cfg.StorageConfig.HistoryEnabled)
	assert.True(t, cfg.StorageConfig.ExportEnabled)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	content := "log_config:\n  log_level: error\n" +
		"reporter_config:\n  output_dir: " + filepath.Join(dir, "reports") + "\n  formats: [json]\n" +
		"storage_config:\n  sqlite_db_path: " + filepath.Join(dir, "history.db") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_CompareAndListHistory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	left := filepath.Join(dir, "left.txt")
	right := filepath.Join(dir, "right.txt")
	require.NoError(t, os.WriteFile(left, []byte("The cat sat on the mat."), 0644))
	require.NoError(t, os.WriteFile(right, []byte("The dog sat on the mat."), 0644))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-c", cfgPath, "-l", left, "-r", right, "--history"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Changes:")
	assert.Contains(t, stdout.String(), "Report: ")

	stdout.Reset()
	code = run(context.Background(), []string{"-c", cfgPath, "--list-history", "3"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "#1")
	assert.Contains(t, stdout.String(), "[word]")
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 1, run(context.Background(), []string{"-c", cfgPath, "-l", filepath.Join(dir, "nope"), "-r", cfgPath}, &stdout, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"-c", filepath.Join(dir, "missing.yaml"), "-l", cfgPath, "-r", cfgPath}, &stdout, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"-c", cfgPath, "-l", cfgPath, "-r", cfgPath, "-m", "xml"}, &stdout, &stderr))
	assert.Equal(t, 0, run(context.Background(), []string{"--help"}, &stdout, &stderr))
}
