// Package compile implements the schema compiler: the recursive descent
// over a parsed YAML schema document that resolves `$ref`s into callable
// validator functions, lowers each schema construct into the equivalent
// C++ validation logic, and emits that logic into a header/implementation
// sink pair.
package compile

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mb0/schemac/diag"
	"github.com/mb0/schemac/emit"
)

// Context is the single-instance state carried through one compilation: the
// root schema node, the header and implementation sinks, the class name
// being generated, the identifier allocator, the definition table, and the
// diagnostics list. A Context is owned exclusively by one Driver run; it is
// not reentrant and is never reused across runs (spec.md §3, §5).
type Context struct {
	Root      *yaml.Node
	Hdr       *emit.Sink
	Impl      *emit.Sink
	ClassName string

	varCount int
	defs     map[string]string // original $ref string -> generated function name
	Notes    diag.List
}

// NewContext builds a fresh run context rooted at root, writing into hdr
// and impl, generating a class named className.
func NewContext(root *yaml.Node, hdr, impl *emit.Sink, className string) *Context {
	return &Context{
		Root:      root,
		Hdr:       hdr,
		Impl:      impl,
		ClassName: className,
		defs:      map[string]string{},
	}
}

// varName allocates a fresh, collision-free local name: node_1, node_2, ...
// The counter is flat across the whole compilation and is never reset
// between definitions (spec.md §4.2).
func (c *Context) varName() string {
	c.varCount++
	return "node_" + strconv.Itoa(c.varCount)
}

// lookupDef reports the generated function name already bound to ref, if
// any.
func (c *Context) lookupDef(ref string) (string, bool) {
	name, ok := c.defs[ref]
	return name, ok
}

// bindDef derives and records the generated function name for ref. The
// caller must record the binding before recursing into the referenced
// body, so a self-referential definition terminates (spec.md §4.4).
func (c *Context) bindDef(ref string) string {
	name := defName(ref)
	c.defs[ref] = name
	return name
}

// defCount reports how many distinct $ref targets have been materialized
// so far. Used by tests to check P2/P3 (definition coverage, cycle
// termination) without depending on map iteration order for anything that
// affects emitted output.
func (c *Context) defCount() int { return len(c.defs) }

// defName derives the generated function identifier from a reference
// string: strip a leading "#/" (it is part of the reference, not the
// sanitized name), then replace every non-alphanumeric character with '_',
// then prefix "v_" to avoid keyword collisions (spec.md §3).
func defName(ref string) string {
	trimmed := strings.TrimPrefix(ref, "#/")
	var b strings.Builder
	b.WriteString("v_")
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
