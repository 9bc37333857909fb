package compile

import (
	"gopkg.in/yaml.v3"

	"github.com/mb0/schemac/diag"
	"github.com/mb0/schemac/refpath"
	"github.com/mb0/schemac/schema"
)

// MaterializeDefinitions implements spec.md §4.4: a pass over the whole
// schema tree, ahead of emitting the root validator, that resolves every
// `$ref` into a standalone validator function. The binding is recorded in
// the definition table before the referenced body is recursed into, so a
// self- or mutually-referential definition terminates instead of looping.
func MaterializeDefinitions(c *Context, node *yaml.Node) *diag.List {
	notes := &diag.List{}
	switch schema.KindOf(node) {
	case schema.Map:
		if ref := schema.Get(node, schema.RefKey); ref != nil {
			notes.Absorb(materializeRef(c, ref))
			return notes
		}
		schema.Pairs(node, func(_, value *yaml.Node) bool {
			notes.Absorb(MaterializeDefinitions(c, value))
			return true
		})
	case schema.Sequence:
		for _, item := range schema.Items(node) {
			notes.Absorb(MaterializeDefinitions(c, item))
		}
	}
	return notes
}

// materializeRef resolves a single $ref node, binding and emitting its
// target exactly once.
func materializeRef(c *Context, ref *yaml.Node) *diag.List {
	notes := &diag.List{}
	refText := schema.Text(ref)
	if _, ok := c.lookupDef(refText); ok {
		return notes
	}
	target, err := refpath.Resolve(c.Root, refText)
	if err != nil {
		notes.Error("Invalid '$ref' at line %d - %s.", schema.Line(ref), err)
		return notes
	}
	fn := c.bindDef(refText)
	notes.Absorb(MaterializeDefinitions(c, target))
	emitDefinition(c, fn, target, notes)
	return notes
}

// emitDefinition writes the forward declaration into the header sink's
// nested Definitions struct and the full function body into the
// implementation sink, binding the resolved body to the local name `node`
// (spec.md §4.4, §6). The function is static: Definitions is a nested
// type, which has no implicit access to an enclosing class instance, but
// every definition function is self-contained in its arguments, so no
// instance is needed - siblings and operator() call them as
// Definitions::<name>.
func emitDefinition(c *Context, fn string, body *yaml.Node, notes *diag.List) {
	c.Hdr.Write("static bool %s(swoc::Errata &erratum, YAML::Node const& node, std::string_view name);\n", fn)

	c.Impl.Write("bool\n%s::Definitions::%s(swoc::Errata &erratum, YAML::Node const& node, std::string_view name)\n{\n",
		c.ClassName, fn)
	c.Impl.Indent()
	sub := ValidateNode(c, body, "node")
	notes.Absorb(sub)
	c.Impl.Write("return true;\n")
	c.Impl.Dedent()
	c.Impl.Write("}\n\n")
}
