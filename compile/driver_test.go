package compile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mb0/schemac/log"
)

func TestDriverRunWritesOutputFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte("type: object\nrequired: [a]\n"), 0o644))

	hdrPath := filepath.Join(dir, "Doc.h")
	srcPath := filepath.Join(dir, "Doc.cc")
	d := &Driver{SchemaPath: schemaPath, HdrPath: hdrPath, SrcPath: srcPath, ClassName: "Doc", Log: &log.Test{TB: t}}
	notes := d.Run()
	require.True(t, notes.OK())

	hdr, err := os.ReadFile(hdrPath)
	require.NoError(t, err)
	assert.Contains(t, string(hdr), "class Doc {")

	src, err := os.ReadFile(srcPath)
	require.NoError(t, err)
	assert.Contains(t, string(src), "Doc::operator()")
}

func TestDriverRunReportsDiagnosticErrors(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte("type: array\nminItems: 5\nmaxItems: 2\n"), 0o644))

	d := &Driver{
		SchemaPath: schemaPath,
		HdrPath:    filepath.Join(dir, "Doc.h"),
		SrcPath:    filepath.Join(dir, "Doc.cc"),
		ClassName:  "Doc",
		Log:        &log.Test{TB: t},
	}
	notes := d.Run()
	assert.False(t, notes.OK())
}

func TestDriverRunRejectsNonMapRoot(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte("- a\n- b\n"), 0o644))

	d := &Driver{
		SchemaPath: schemaPath,
		HdrPath:    filepath.Join(dir, "Doc.h"),
		SrcPath:    filepath.Join(dir, "Doc.cc"),
		ClassName:  "Doc",
		Log:        &log.Test{TB: t},
	}
	notes := d.Run()
	require.False(t, notes.OK())
	assert.Contains(t, notes.Notes()[len(notes.Notes())-1].Message, "must be a map")
}
