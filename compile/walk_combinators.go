package compile

import (
	"gopkg.in/yaml.v3"

	"github.com/mb0/schemac/diag"
	"github.com/mb0/schemac/schema"
)

// processAnyOf implements spec.md §4.10: `anyOf` is a sequence of
// sub-schemas, at least one of which must accept the value. An empty
// sequence records a WARN and emits nothing further.
func processAnyOf(c *Context, node *yaml.Node, varName string) *diag.List {
	notes := &diag.List{}
	if schema.KindOf(node) != schema.Sequence {
		notes.Error("'%s' value at line %d is not type %s.", schema.PropAnyOf, schema.Line(node), schema.TypeArray)
		return notes
	}
	alts := schema.Items(node)
	if len(alts) == 0 {
		notes.Warn("'%s' at line %d is empty - nothing can satisfy it.", schema.PropAnyOf, schema.Line(node))
		return notes
	}

	errName := c.varName() + "_err"
	list := c.varName()
	c.Impl.Write("swoc::Errata %s;\n", errName)
	emitValidatorArray(c, list, errName, alts, notes)

	c.Impl.Write("if (! std::any_of(%s.begin(), %s.end(), [&](auto && fn) { return fn(%s); })) {\n", list, list, varName)
	c.Impl.Indent()
	c.Impl.Write("erratum.note(%s);\n", errName)
	c.Impl.Write("erratum.error(\"'{}' value at line {} satisfied none of the %d alternatives of '%s'\", name, %s.Mark().line);\n",
		len(alts), schema.PropAnyOf, varName)
	c.Impl.Write("return false;\n")
	c.Impl.Dedent()
	c.Impl.Write("}\n")
	return notes
}

// processOneOf implements spec.md §4.11: like anyOf, but exactly one
// alternative must accept the value. A second success short-circuits with
// an immediate error instead of letting every remaining alternative run;
// zero successes attach the accumulated inner errors.
func processOneOf(c *Context, node *yaml.Node, varName string) *diag.List {
	notes := &diag.List{}
	if schema.KindOf(node) != schema.Sequence {
		notes.Error("'%s' value at line %d is not type %s.", schema.PropOneOf, schema.Line(node), schema.TypeArray)
		return notes
	}
	alts := schema.Items(node)
	if len(alts) == 0 {
		notes.Warn("'%s' at line %d is empty - nothing can satisfy it.", schema.PropOneOf, schema.Line(node))
		return notes
	}

	errName := c.varName() + "_err"
	list := c.varName()
	c.Impl.Write("swoc::Errata %s;\n", errName)
	emitValidatorArray(c, list, errName, alts, notes)

	count := c.varName() + "_count"
	c.Impl.Write("unsigned %s = 0;\n", count)
	c.Impl.Write("for (auto && fn : %s) {\n", list)
	c.Impl.Indent()
	c.Impl.Write("if (fn(%s) && ++%s > 1) {\n", varName, count)
	c.Impl.Indent()
	c.Impl.Write("erratum.error(\"'{}' value at line {} satisfied more than one of the %d alternatives of '%s'\", name, %s.Mark().line);\n",
		len(alts), schema.PropOneOf, varName)
	c.Impl.Write("return false;\n")
	c.Impl.Dedent()
	c.Impl.Write("}\n")
	c.Impl.Dedent()
	c.Impl.Write("}\n")
	c.Impl.Write("if (%s != 1) {\n", count)
	c.Impl.Indent()
	c.Impl.Write("erratum.note(%s);\n", errName)
	c.Impl.Write("erratum.error(\"'{}' value at line {} satisfied {} of the %d alternatives of '%s', expected exactly one\", name, %s.Mark().line, %s);\n",
		len(alts), schema.PropOneOf, varName, count)
	c.Impl.Write("return false;\n")
	c.Impl.Dedent()
	c.Impl.Write("}\n")
	return notes
}

// emitValidatorArray lowers a sequence of sub-schemas into a local
// std::array<Validator, N> of lambdas, one per alternative, each recursing
// through ValidateNode over a freshly allocated parameter name. Each
// lambda shadows `erratum` with an init-capture naming the combinator's
// own scratch accumulator (errName), so a failing alternative's
// diagnostics land there instead of on the real enclosing erratum - an
// alternative that was merely tried and rejected must not make the
// overall anyOf/oneOf look like a failure once another alternative
// matches (spec.md §4.10 step 1, §4.11).
func emitValidatorArray(c *Context, list, errName string, alts []*yaml.Node, notes *diag.List) {
	c.Impl.Write("std::array<Validator, %d> %s = {\n", len(alts), list)
	c.Impl.Indent()
	for i, alt := range alts {
		param := c.varName()
		c.Impl.Write("[&erratum = %s, name](YAML::Node const& %s) {\n", errName, param)
		c.Impl.Indent()
		sub := ValidateNode(c, alt, param)
		notes.Absorb(sub)
		c.Impl.Write("return true;\n")
		c.Impl.Dedent()
		if i < len(alts)-1 {
			c.Impl.Write("},\n")
		} else {
			c.Impl.Write("}\n")
		}
	}
	c.Impl.Dedent()
	c.Impl.Write("};\n")
}
