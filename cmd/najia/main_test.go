package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/najia/internal/config"
	"github.com/aretw0/najia/pkg/hexagram"
)

func TestReadRequests(t *testing.T) {
	in := strings.NewReader("# casts\n221242|2024-03-15\n\n111113\n")
	reqs, err := readRequests(in)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, []int{2, 2, 1, 2, 4, 2}, reqs[0].Lines)
	assert.Equal(t, "2024-03-15", reqs[0].Date)
	assert.Empty(t, reqs[1].Date)

	_, err = readRequests(strings.NewReader("111111\n11x111\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, hexagram.Table()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 65)
	assert.True(t, strings.HasPrefix(lines[0], "PATTERN"))
	assert.Contains(t, lines[1], "乾为天")
}

func TestCommands(t *testing.T) {
	run := func(t *testing.T, args ...string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, config.Save(path, config.Default()))

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(append([]string{"--config", path}, args...))
		require.NoError(t, rootCmd.Execute(), out.String())
		return out.String()
	}

	t.Run("Config Init And Show", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "najia.yaml")
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"--config", path, "config", "init"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), path)

		out.Reset()
		rootCmd.SetArgs([]string{"--config", path, "config", "show"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "workers: 4")
	})

	t.Run("Version", func(t *testing.T) {
		assert.Contains(t, run(t, "version"), "najia version")
	})

	t.Run("Cast", func(t *testing.T) {
		out := run(t, "cast", "221242", "--month", "寅", "--day", "甲子", "--format", "markdown")
		assert.Contains(t, out, "地山谦")
		assert.Contains(t, out, "水山蹇")
	})

	t.Run("Tables Mermaid", func(t *testing.T) {
		out := run(t, "tables", "--mermaid", "--palace", "兑", "--cast", "221242")
		assert.True(t, strings.HasPrefix(out, "graph TD"))
		assert.Contains(t, out, "h001000")
	})
}
