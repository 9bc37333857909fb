package compile

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mb0/schemac/diag"
	"github.com/mb0/schemac/schema"
)

// processEnum implements spec.md §4.12: the value must structurally equal
// one of a fixed, closed list of allowed values. Each allowed value is
// re-serialized to YAML text at compile time and embedded as a C++ raw
// string literal reloaded with YAML::Load, so the runtime comparison via
// equal() works on two parsed node trees rather than two strings - this
// survives key ordering and scalar style differences between the schema
// document's encoding and however the value under test happened to be
// written. The same re-serialized text, joined with commas, is baked into
// the generated error message so a failure names every allowed value.
func processEnum(c *Context, node *yaml.Node, varName string) *diag.List {
	notes := &diag.List{}
	if schema.KindOf(node) != schema.Sequence {
		notes.Error("'%s' value at line %d is not type %s.", schema.PropEnum, schema.Line(node), schema.TypeArray)
		return notes
	}
	allowed := schema.Items(node)
	if len(allowed) == 0 {
		notes.Warn("'%s' at line %d is empty - nothing can satisfy it.", schema.PropEnum, schema.Line(node))
		return notes
	}

	literals := make([]string, 0, len(allowed))
	for _, n := range allowed {
		text, err := reserialize(n)
		if err != nil {
			notes.Error("Could not re-serialize '%s' alternative at line %d: %s.", schema.PropEnum, schema.Line(n), err)
			continue
		}
		literals = append(literals, text)
	}
	if len(literals) == 0 {
		return notes
	}
	usage := strings.Join(literals, ", ")

	matched := c.varName()
	c.Impl.Write("bool %s = false;\n", matched)
	c.Impl.Write("for (auto && alt : { ")
	for i, lit := range literals {
		if i > 0 {
			c.Impl.Write(", ")
		}
		c.Impl.Write("YAML::Load(R\"schemac(%s)schemac\")", lit)
	}
	c.Impl.Write(" }) {\n")
	c.Impl.Indent()
	c.Impl.Write("if (equal(alt, %s)) {\n", varName)
	c.Impl.Indent()
	c.Impl.Write("%s = true;\nbreak;\n", matched)
	c.Impl.Dedent()
	c.Impl.Write("}\n")
	c.Impl.Dedent()
	c.Impl.Write("}\n")

	c.Impl.Write("if (! %s) {\n", matched)
	c.Impl.Indent()
	c.Impl.Write("YAML::Emitter %sem;\n%sem << %s;\n", matched, matched, varName)
	c.Impl.Write("erratum.error(\"'{}' value '{}' at line {} is invalid - it must be one of {}.\", name, %sem.c_str(), %s.Mark().line, R\"schemac(%s)schemac\");\n",
		matched, varName, usage)
	c.Impl.Write("return false;\n")
	c.Impl.Dedent()
	c.Impl.Write("}\n")
	return notes
}

// reserialize renders node back to YAML text, in the node's own flow or
// block style, suitable for embedding in a C++ raw string literal. Raw string delimiters can't nest the ")schemac"
// terminator, so a value containing that exact sequence is rejected -
// vanishingly unlikely in practice, but reported rather than silently
// producing broken output.
func reserialize(node *yaml.Node) (string, error) {
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}
	text := strings.TrimRight(string(out), "\n")
	if strings.Contains(text, ")schemac") {
		return "", errRawDelimiterCollision
	}
	return text, nil
}

var errRawDelimiterCollision = rawDelimError{}

type rawDelimError struct{}

func (rawDelimError) Error() string { return `value contains the raw string delimiter ")schemac"` }
