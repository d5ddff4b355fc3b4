package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/perch-docs/internal/catalog"
	"github.com/arcanaland/perch-docs/internal/config"
	"github.com/arcanaland/perch-docs/internal/widget"
)

// resetFlags restores defaults left behind by a previous Execute
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return runInConfig(t, args...)
}

func runInConfig(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestEmbedCommand(t *testing.T) {
	out, err := run(t, "embed", "abc123")
	require.NoError(t, err)
	assert.Contains(t, out, `id="perch-widget-abc123"`)
	assert.Contains(t, out, "height: 724px;")
	assert.Contains(t, out, `title="Perch Financial Tool"`)

	out, err = run(t, "embed", "abc123", "--height", "500px", "--title", "My Tool")
	require.NoError(t, err)
	assert.Contains(t, out, "height: 500px;")
	assert.Contains(t, out, `title="My Tool"`)

	out, err = run(t, "embed", "abc123", "--url")
	require.NoError(t, err)
	assert.Equal(t, widget.SourceURL("abc123")+"\n", out)
}

func TestCardsList(t *testing.T) {
	out, err := run(t, "cards", "ls")
	require.NoError(t, err)

	last := -1
	for _, c := range catalog.LeadManagement() {
		idx := strings.Index(out, c.Href)
		require.GreaterOrEqual(t, idx, 0, c.Href)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestCardsExport(t *testing.T) {
	out, err := run(t, "cards", "export")
	require.NoError(t, err)

	cards, err := catalog.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, catalog.LeadManagement(), cards)
}

func TestCardsUse(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeCatalog(t, `
[[cards]]
title = "Lender"
href = "https://embeds.myperch.io/static/lender/firm"
description = "Submit leads as the lender."
icon = "building"
`)

	_, err := runInConfig(t, "cards", "use", path)
	require.NoError(t, err)
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, path, cfg.CatalogPath)

	out, err := runInConfig(t, "cards", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "Lender")
	assert.NotContains(t, out, "Partner Owner")

	_, err = runInConfig(t, "cards", "use", "--builtin")
	require.NoError(t, err)
	out, err = runInConfig(t, "cards", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "Partner Owner")
}

func TestCardsUseRejectsInvalidCatalog(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeCatalog(t, `
[[cards]]
title = "Broken"
href = "not a url"
description = "d"
icon = "user"
`)

	out, err := runInConfig(t, "cards", "use", path)
	require.Error(t, err)
	assert.Contains(t, out, "not an absolute URL")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.CatalogPath)
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in catalog")
	assert.Contains(t, out, "is valid")

	path := writeCatalog(t, "[[cards]]\ntitle = \"\"\n")
	out, err = run(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "title is required")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "embed", "abc123")
	assert.Error(t, err)
}

func TestWrapText(t *testing.T) {
	lines := wrapText("Submit leads as the partner firm. Only owners can access this portal.", 20)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 20, l)
	}
	assert.Equal(t,
		"Submit leads as the partner firm. Only owners can access this portal.",
		strings.Join(lines, " "))
	assert.Equal(t, []string{""}, wrapText("  ", 20))
}

func TestGetIconSymbol(t *testing.T) {
	assert.NotEqual(t, getIconSymbol("building"), getIconSymbol("user"))
	assert.Equal(t, "•", getIconSymbol("rocket"))
}
