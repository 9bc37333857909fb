package compile

import (
	"gopkg.in/yaml.v3"

	"github.com/mb0/schemac/diag"
	"github.com/mb0/schemac/schema"
)

// processObjectValue implements spec.md §4.8: `required` and `properties`
// only apply when `object` is a possible type, and share a single outer
// `is_object_type` guard that is omitted when object is the only permitted
// type (the type-discrimination check already covers that case) or when
// neither sub-property is present.
func processObjectValue(c *Context, node *yaml.Node, varName string, types schema.TypeSet) *diag.List {
	notes := &diag.List{}
	singleType := types.Count() == 1
	hasTags := hasAnyProperty(node, schema.ObjectProperties)
	if !singleType && hasTags {
		c.Impl.Write("if (%s(%s)) {\n", schema.TypeObject.Predicate(), varName)
		c.Impl.Indent()
	}

	if req := schema.Get(node, schema.PropRequired.String()); req != nil {
		if schema.KindOf(req) != schema.Sequence {
			notes.Error("'%s' value at line %d is not type %s.", schema.PropRequired, schema.Line(req), schema.TypeArray)
		} else {
			emitRequiredCheck(c, req, varName)
		}
	}

	if props := schema.Get(node, schema.PropProperties.String()); props != nil {
		if schema.KindOf(props) != schema.Map {
			notes.Error("'%s' value at line %d is not type %s.", schema.PropProperties, schema.Line(props), schema.TypeObject)
		} else {
			inner := c.varName()
			schema.Pairs(props, func(key, value *yaml.Node) bool {
				c.Impl.Write("if (%s[\"%s\"]) {\n", varName, schema.Text(key))
				c.Impl.Indent()
				c.Impl.Write("auto %s = %s[\"%s\"];\n", inner, varName, schema.Text(key))
				notes.Absorb(ValidateNode(c, value, inner))
				c.Impl.Dedent()
				c.Impl.Write("}\n")
				return true
			})
		}
	}

	if !singleType && hasTags {
		c.Impl.Dedent()
		c.Impl.Write("}\n")
	}
	return notes
}

// emitRequiredCheck implements the `required` loop of spec.md §4.8: report
// a missing-tag error on the first absent key and return false.
func emitRequiredCheck(c *Context, req *yaml.Node, varName string) {
	c.Impl.Write("// check for required tags\nfor (auto && tag : { ")
	for i, n := range schema.Items(req) {
		if i > 0 {
			c.Impl.Write(", ")
		}
		c.Impl.Write("\"%s\"", schema.Text(n))
	}
	c.Impl.Write(" }) {\n")
	c.Impl.Indent()
	c.Impl.Write("if (!%s[tag]) {\n", varName)
	c.Impl.Indent()
	c.Impl.Write("erratum.error(\"Required tag '{}' at line {} was not found.\", tag, %s.Mark().line);\nreturn false;\n", varName)
	c.Impl.Dedent()
	c.Impl.Write("}\n")
	c.Impl.Dedent()
	c.Impl.Write("}\n")
}

// hasAnyProperty reports whether node has at least one of the given
// sub-properties.
func hasAnyProperty(node *yaml.Node, props []schema.Property) bool {
	for _, p := range props {
		if schema.Get(node, p.String()) != nil {
			return true
		}
	}
	return false
}
