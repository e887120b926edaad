package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/restyle/style/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPrintsStyledTree(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "page.html", `<html><head><style>label { color: red }</style></head>
<body><div class="x"><label id="name">Name</label></div></body></html>`)
	sheet := writeFile(t, dir, "theme.css", `.x { font-size: 20px }`)
	cfg := writeFile(t, dir, "config.yaml", "match_cache_capacity: 8\n")
	dot := filepath.Join(dir, "tree.dot")
	//
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(context.Background(), []string{"restyle",
		"--css", sheet, "--config", cfg, "--props", "color,font-size", "--dot", dot, doc})
	require.NoError(t, err)
	t.Logf("\n%s", out.String())
	assert.Contains(t, out.String(), "label#name")
	assert.Contains(t, out.String(), "color: red (shared)")
	assert.Contains(t, out.String(), "font-size: 20px (inherited(shared))")
	assert.NotContains(t, out.String(), "display")
	_, err = os.Stat(dot)
	assert.NoError(t, err)
}

func TestRunRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "page.html", `<div></div>`)
	app := newApp()
	app.Writer = &bytes.Buffer{}
	err := app.Run(context.Background(), []string{"restyle", "--props", "colour", doc})
	assert.ErrorIs(t, err, cssom.ErrUnknownProperty)
	//
	app = newApp()
	app.Writer = &bytes.Buffer{}
	err = app.Run(context.Background(), []string{"restyle"})
	assert.Error(t, err)
}
