package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mb0/schemac/diag"
)

func TestParseArgsMissingSchema(t *testing.T) {
	notes := &diag.List{}
	parseArgs(nil, notes)
	require.False(t, notes.OK())
	assert.Contains(t, notes.Notes()[0].Message, "input schema file is required")
}

func TestParseArgsDefaultsFromClassName(t *testing.T) {
	notes := &diag.List{}
	schema, hdr, src, class := parseArgs([]string{"doc.yaml"}, notes)
	require.True(t, notes.OK())
	assert.Equal(t, "doc.yaml", schema)
	assert.Equal(t, "Schema", class)
	assert.Equal(t, "Schema.h", hdr)
	assert.Equal(t, "Schema.cc", src)
}

func TestParseArgsClassNameDrivesDefaultPaths(t *testing.T) {
	notes := &diag.List{}
	_, hdr, src, class := parseArgs([]string{"doc.yaml", "--class", "Widget"}, notes)
	require.True(t, notes.OK())
	assert.Equal(t, "Widget", class)
	assert.Equal(t, "Widget.h", hdr)
	assert.Equal(t, "Widget.cc", src)
}

func TestParseArgsSrcDerivesHdr(t *testing.T) {
	notes := &diag.List{}
	_, hdr, src, _ := parseArgs([]string{"doc.yaml", "--src", "out/widget.cc"}, notes)
	require.True(t, notes.OK())
	assert.Equal(t, "out/widget.h", hdr)
	assert.Equal(t, "out/widget.cc", src)
}

func TestParseArgsHdrDerivesSrc(t *testing.T) {
	notes := &diag.List{}
	_, hdr, src, _ := parseArgs([]string{"doc.yaml", "--hdr", "out/widget.h"}, notes)
	require.True(t, notes.OK())
	assert.Equal(t, "out/widget.h", hdr)
	assert.Equal(t, "out/widget.cc", src)
}

func TestParseArgsExplicitPathsWin(t *testing.T) {
	notes := &diag.List{}
	_, hdr, src, _ := parseArgs([]string{"doc.yaml", "--hdr", "a.h", "--src", "b.cc"}, notes)
	require.True(t, notes.OK())
	assert.Equal(t, "a.h", hdr)
	assert.Equal(t, "b.cc", src)
}

func TestParseArgsMissingOptionValueErrors(t *testing.T) {
	notes := &diag.List{}
	parseArgs([]string{"doc.yaml", "--hdr"}, notes)
	require.False(t, notes.OK())
	found := false
	for _, n := range notes.Notes() {
		if n.Severity == diag.Error {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseArgsUnknownOptionWarnsNotAborts(t *testing.T) {
	notes := &diag.List{}
	schema, _, _, _ := parseArgs([]string{"doc.yaml", "--bogus"}, notes)
	require.True(t, notes.OK())
	assert.Equal(t, "doc.yaml", schema)
	require.Equal(t, 1, len(notes.Notes()))
	assert.Equal(t, diag.Warn, notes.Notes()[0].Severity)
	assert.Contains(t, notes.Notes()[0].Message, "--bogus")
}

func TestPrintDiagnosticsCoversEverySeverity(t *testing.T) {
	notes := &diag.List{}
	notes.Info("loaded %d bytes", 12)
	notes.Warn("unused option %q", "--bogus")
	notes.Error("bad ref %q", "#/x")

	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	printDiagnostics(f, notes)
	require.NoError(t, f.Close())

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "loaded 12 bytes")
	assert.Contains(t, text, `unused option "--bogus"`)
	assert.Contains(t, text, `bad ref "#/x"`)
}

func TestReplaceExt(t *testing.T) {
	assert.Equal(t, "foo.cc", replaceExt("foo.h", ".cc"))
	assert.Equal(t, "dir/foo.cc", replaceExt("dir/foo.h", ".cc"))
	assert.Equal(t, "foo.cc", replaceExt("foo", ".cc"))
}
