package compile

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mb0/schemac/diag"
	"github.com/mb0/schemac/schema"
)

// processArrayValue implements spec.md §4.9. `minItems`, `maxItems` and
// `items` only apply when `array` is a possible type, sharing the same
// outer-guard rule as processObjectValue. Unlike the original reference
// implementation, the outer guard is always balanced even when the
// cross-consistency check below fails early — spec.md §3 pins indent
// balance as an invariant, not merely a best effort. `minItems` and
// `maxItems` are parsed and cross-checked before either size check is
// written to the sink, so an inconsistent pair emits no size checks at
// all rather than emitting both and then reporting the error (§4.9).
func processArrayValue(c *Context, node *yaml.Node, varName string, types schema.TypeSet) *diag.List {
	notes := &diag.List{}
	singleType := types.Count() == 1
	hasTags := hasAnyProperty(node, schema.ArrayProperties)
	if !singleType && hasTags {
		c.Impl.Write("if (%s(%s)) {\n", schema.TypeArray.Predicate(), varName)
		c.Impl.Indent()
	}
	closeGuard := func() {
		if !singleType && hasTags {
			c.Impl.Dedent()
			c.Impl.Write("}\n")
		}
	}

	minItems, maxItems := 0, math.MaxInt32
	haveMin, haveMax := false, false
	minNode := schema.Get(node, schema.PropMinItems.String())
	maxNode := schema.Get(node, schema.PropMaxItems.String())

	if minNode != nil {
		n, err := parseNonNegativeInt(minNode)
		if err != nil {
			notes.Error("%s value '%s' at line %d for type %s at line %d is invalid - it must be a non-negative integer.",
				schema.PropMinItems, schema.Text(minNode), schema.Line(minNode), schema.TypeArray, schema.Line(node))
			closeGuard()
			return notes
		}
		minItems = n
		haveMin = true
	}
	if maxNode != nil {
		n, err := parseNonNegativeInt(maxNode)
		if err != nil {
			notes.Error("%s value '%s' at line %d for type %s at line %d is invalid - it must be a non-negative integer.",
				schema.PropMaxItems, schema.Text(maxNode), schema.Line(maxNode), schema.TypeArray, schema.Line(node))
			closeGuard()
			return notes
		}
		maxItems = n
		haveMax = true
	}

	if minItems > maxItems {
		notes.Error("For '%s' value at line %d, the '%s' value at line %d is larger than the '%s' value at line %d.",
			schema.TypeArray, schema.Line(node), schema.PropMinItems, schema.Line(minNode), schema.PropMaxItems, schema.Line(maxNode))
		closeGuard()
		return notes
	}

	if haveMin {
		emitMinItemsCheck(c, varName, minItems)
	}
	if haveMax {
		emitMaxItemsCheck(c, varName, maxItems)
	}

	if items := schema.Get(node, schema.PropItems.String()); items != nil {
		switch schema.KindOf(items) {
		case schema.Map:
			inner := c.varName()
			c.Impl.Write("for (auto && %s : %s) {\n", inner, varName)
			c.Impl.Indent()
			sub := ValidateNode(c, items, inner)
			notes.Absorb(sub)
			c.Impl.Dedent()
			c.Impl.Write("}\n")
			if sub.MaxSeverity() >= diag.Error {
				notes.Context(diag.Error, nil, "Failed processing '%s' value for '%s' at line %d", schema.TypeObject, schema.PropType, schema.Line(node))
				closeGuard()
				return notes
			}
		case schema.Sequence:
			if errs := processTupleItems(c, items, varName, minItems, maxItems, maxNode); errs != nil {
				notes.Absorb(errs)
			}
		default:
			notes.Error("Invalid value for '%s' at line %d: must be a %s or %s.",
				schema.PropItems, schema.Line(items), schema.TypeArray, schema.TypeObject)
		}
	}

	closeGuard()
	if notes.Len() > 0 {
		notes.Context(notes.MaxSeverity(), nil, "Problems processing '%s' at line %d", schema.PropType, schema.Line(node))
	}
	return notes
}

// processTupleItems implements the tuple-shaped `items` dispatch of
// spec.md §4.9: positional validation, capped to maxItems with a WARN if
// the tuple has more schemas than that, unconditional validation when the
// tuple is fully covered by minItems, and otherwise a fall-through switch
// on the runtime array size.
func processTupleItems(c *Context, items *yaml.Node, varName string, minItems, maxItems int, maxNode *yaml.Node) *diag.List {
	notes := &diag.List{}
	elems := schema.Items(items)
	limit := len(elems)
	if limit >= maxItems {
		notes.Warn("'%s' at line %d has schemas for %d items at line %d but was specified to have at most %d items by line %d. Extra schemas ignored.",
			schema.TypeArray, 0, limit, schema.Line(items), maxItems, schema.Line(maxNode))
		limit = maxItems
	}

	inner := c.varName()
	if limit <= minItems {
		for idx := 0; idx < limit; idx++ {
			c.Impl.Write("auto %s = %s[%d];\n", inner, varName, idx)
			sub := ValidateNode(c, elems[idx], inner)
			notes.Absorb(sub)
			if sub.MaxSeverity() >= diag.Error {
				notes.Context(diag.Error, nil, "Failed to process item %d in '%s' at line %d", idx, schema.TypeArray, schema.Line(items))
				return notes
			}
		}
		return notes
	}

	c.Impl.Write("switch (%s.size()) {\n", varName)
	c.Impl.Indent()
	for idx := 0; idx < limit; idx++ {
		c.Impl.Write("case %d: {\n", idx)
		c.Impl.Indent()
		c.Impl.Write("auto %s = %s[%d];\n", inner, varName, idx)
		sub := ValidateNode(c, elems[idx], inner)
		notes.Absorb(sub)
		c.Impl.Dedent()
		c.Impl.Write("}\n")
		if sub.MaxSeverity() >= diag.Error {
			notes.Context(diag.Error, nil, "Failed to process value %d at line %d for '%s'", idx, schema.Line(elems[idx]), schema.PropType)
			c.Impl.Dedent()
			c.Impl.Write("}\n")
			return notes
		}
	}
	c.Impl.Dedent()
	c.Impl.Write("}\n")
	return notes
}

func emitMinItemsCheck(c *Context, varName string, limit int) {
	c.Impl.Write("if (%s.size() < %d) { erratum.error(\"Array at line {} has only {} items instead of the required %d items\", %s.Mark().line, %s.size()); return false; }\n",
		varName, limit, limit, varName, varName)
}

func emitMaxItemsCheck(c *Context, varName string, limit int) {
	c.Impl.Write("if (%s.size() > %d) { erratum.error(\"Array at line {} has {} items instead of the maximum %d items\", %s.Mark().line, %s.size()); return false; }\n",
		varName, limit, limit, varName, varName)
}

func parseNonNegativeInt(n *yaml.Node) (int, error) {
	text := strings.TrimSpace(schema.Text(n))
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 {
		if err == nil {
			return 0, strconv.ErrRange
		}
		return 0, err
	}
	return v, nil
}
