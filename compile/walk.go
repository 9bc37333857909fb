package compile

import (
	"gopkg.in/yaml.v3"

	"github.com/mb0/schemac/diag"
	"github.com/mb0/schemac/schema"
)

// ValidateNode emits into c.Impl the sequence of checks that will validate
// a runtime value bound to var against node, and returns the diagnostics
// produced while doing so. It is the walker's overall contract
// (spec.md §4.5):
//
//   - node must be a MAP; otherwise a single ERROR is recorded and nothing
//     is emitted.
//   - emitted code uses early-return-on-first-failure. The compile keeps
//     going within a construct (every property, alternative and item is
//     processed), but once one construct of node (type, object, array,
//     anyOf, oneOf, enum) reports an ERROR, the constructs after it are
//     not processed.
func ValidateNode(c *Context, node *yaml.Node, varName string) *diag.List {
	notes := &diag.List{}
	if schema.KindOf(node) != schema.Map {
		notes.Error("Value at line %d must be a %s.", schema.Line(node), schema.TypeObject)
		return notes
	}

	if ref := schema.Get(node, schema.RefKey); ref != nil {
		if schema.Len(node) > 1 {
			notes.Warn("Ignoring tags in value at line %d - use of '$ref' tag at line %d requires ignoring all other tags.",
				schema.Line(node), schema.Line(ref))
		}
		fn, ok := c.lookupDef(schema.Text(ref))
		if !ok {
			notes.Error("Invalid '$ref' at line %d in value at line %d - '%s' not found.",
				schema.Line(ref), schema.Line(node), schema.Text(ref))
			return notes
		}
		c.Impl.Write("if (! Definitions::%s(erratum, %s, name)) return false;\n", fn, varName)
		return notes
	}

	var types schema.TypeSet
	if tv := schema.Get(node, schema.PropType.String()); tv != nil {
		sub := processTypeValue(tv)
		notes.Absorb(sub.notes)
		types = sub.types
		if sub.notes.MaxSeverity() >= diag.Error {
			notes.Context(diag.Error, nil, "Unable to process value at line %d for '%s' at line %d",
				schema.Line(tv), schema.PropType, schema.Line(node))
			return notes
		}
		emitTypeCheck(c, types, sub.order, varName)
	} else {
		types = schema.Full
	}

	if types.Has(schema.TypeObject) {
		sub := processObjectValue(c, node, varName, types)
		notes.Absorb(sub)
		if sub.MaxSeverity() >= diag.Error {
			notes.Context(diag.Error, nil, "Unable to process value at line %d as %s", schema.Line(node), schema.TypeObject)
			return notes
		}
	}

	if types.Has(schema.TypeArray) {
		sub := processArrayValue(c, node, varName, types)
		notes.Absorb(sub)
		if sub.MaxSeverity() >= diag.Error {
			notes.Context(diag.Error, nil, "Unable to process value at line %d", schema.Line(node))
			return notes
		}
	}

	if n := schema.Get(node, schema.PropAnyOf.String()); n != nil {
		sub := processAnyOf(c, n, varName)
		notes.Absorb(sub)
		if sub.MaxSeverity() >= diag.Error {
			return notes
		}
	}

	if n := schema.Get(node, schema.PropOneOf.String()); n != nil {
		sub := processOneOf(c, n, varName)
		notes.Absorb(sub)
		if sub.MaxSeverity() >= diag.Error {
			return notes
		}
	}

	if n := schema.Get(node, schema.PropEnum.String()); n != nil {
		sub := processEnum(c, n, varName)
		notes.Absorb(sub)
		if sub.MaxSeverity() >= diag.Error {
			return notes
		}
	}

	return notes
}

type typeResult struct {
	types schema.TypeSet
	order []schema.Type // members of types, in the order the value lists them
	notes *diag.List
}

// processTypeValue implements spec.md §4.6: `type` is a single type name
// or a sequence of type names, each looked up in the closed enumeration.
func processTypeValue(value *yaml.Node) typeResult {
	notes := &diag.List{}
	var types schema.TypeSet
	var order []schema.Type
	check := func(n *yaml.Node) {
		name := schema.Text(n)
		t := schema.ParseType(name)
		if t == schema.TypeInvalid {
			notes.Error("Type value '%s' at line %d is not a valid type. It must be one of %s.",
				name, schema.Line(n), schema.AllTypeNames())
		} else if types.Has(t) {
			notes.Warn("Type value '%s' at line %d has already been specified.", name, schema.Line(n))
		} else {
			types.Add(t)
			order = append(order, t)
		}
	}
	switch schema.KindOf(value) {
	case schema.Scalar, schema.Bool, schema.Null:
		check(value)
	case schema.Sequence:
		for _, n := range schema.Items(value) {
			check(n)
		}
	default:
		notes.Error("Type value at line %d must be a string or array of strings but is not.", schema.Line(value))
	}
	return typeResult{types, order, notes}
}

// emitTypeCheck implements spec.md §4.7. A full set's check is effectively
// trivial and is omitted; a singleton set emits one predicate call; a
// multi-element set emits a disjunction naming every permitted type on
// failure, both in the order the `type` value lists them (order).
func emitTypeCheck(c *Context, types schema.TypeSet, order []schema.Type, varName string) {
	if types == schema.Full {
		return
	}
	c.Impl.Write("// validate value type\n")
	if types.Count() == 1 {
		t := types.Single()
		c.Impl.Write("if (! %s(%s)) { erratum.error(\"'{}' value at line {} was not %s\", name, %s.Mark().line); return false; }\n",
			t.Predicate(), varName, t, varName)
		return
	}
	c.Impl.Write("if (! (")
	for i, t := range order {
		if i > 0 {
			c.Impl.Write(" || ")
		}
		c.Impl.Write("%s(%s)", t.Predicate(), varName)
	}
	c.Impl.Write(")) {\n")
	c.Impl.Indent()
	c.Impl.Write("erratum.error(\"value at line {} was not one of the required types ")
	for i, t := range order {
		if i > 0 {
			c.Impl.Write(", ")
		}
		c.Impl.Write("'%s'", t)
	}
	c.Impl.Write("\", %s.Mark().line);\nreturn false;\n", varName)
	c.Impl.Dedent()
	c.Impl.Write("}\n")
}
