package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteSingleLine(t *testing.T) {
	var b strings.Builder
	s := NewSink(&b)
	s.Write("bool %s(int x)\n", "check")
	assert.Equal(t, "bool check(int x)\n", b.String())
}

func TestWriteAppliesIndentPerLine(t *testing.T) {
	var b strings.Builder
	s := NewSink(&b)
	s.Write("if (x) {\n")
	s.Indent()
	s.Write("foo();\n")
	s.Write("bar();\n")
	s.Dedent()
	s.Write("}\n")
	assert.Equal(t, "if (x) {\n  foo();\n  bar();\n}\n", b.String())
}

func TestWriteBlankLineHasNoIndent(t *testing.T) {
	var b strings.Builder
	s := NewSink(&b)
	s.Indent()
	s.Write("a();\n\nb();\n")
	assert.Equal(t, "  a();\n\n  b();\n", b.String())
}

func TestWriteMidLineFragmentThenContinuation(t *testing.T) {
	var b strings.Builder
	s := NewSink(&b)
	s.Indent()
	s.Write("if (")
	s.Write("x && y")
	s.Write(") {\n")
	assert.Equal(t, "  if (x && y) {\n", b.String())
}

func TestByteAndStr(t *testing.T) {
	var b strings.Builder
	s := NewSink(&b)
	s.Str("auto v = 1;")
	s.Byte('\n')
	assert.Equal(t, "auto v = 1;\n", b.String())
}

func TestDepthTracksIndentDedent(t *testing.T) {
	var b strings.Builder
	s := NewSink(&b)
	assert.Equal(t, 0, s.Depth())
	s.Indent()
	s.Indent()
	assert.Equal(t, 2, s.Depth())
	s.Dedent()
	assert.Equal(t, 1, s.Depth())
}

func TestMultipleConsecutiveNewlines(t *testing.T) {
	var b strings.Builder
	s := NewSink(&b)
	s.Indent()
	s.Write("a();\n\n\nb();\n")
	assert.Equal(t, "  a();\n\n\n  b();\n", b.String())
}
