// Package schema wraps a parsed YAML document with the tag-kind, type-set
// and property lexicon that the schema compiler dispatches on.
package schema

import "gopkg.in/yaml.v3"

// Kind is the tag kind of a schema node, mirroring the closed set spec'd for
// the document model: NULL, BOOL, SCALAR, SEQUENCE, MAP, plus UNDEFINED for
// a missing lookup.
type Kind int

const (
	Undefined Kind = iota
	Null
	Bool
	Scalar
	Sequence
	Map
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	case Map:
		return "map"
	default:
		return "undefined"
	}
}

// unwrap strips DocumentNode and AliasNode wrappers so every other helper
// in this file can index .Content directly. A bare root from
// yaml.Unmarshal is always a DocumentNode; without this, Get/Pairs/Items/
// Len would silently find nothing on it.
func unwrap(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return node
}

// KindOf returns the tag kind of node. A nil node is Undefined.
func KindOf(node *yaml.Node) Kind {
	node = unwrap(node)
	if node == nil {
		return Undefined
	}
	switch node.Kind {
	case yaml.MappingNode:
		return Map
	case yaml.SequenceNode:
		return Sequence
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			return Null
		case "!!bool":
			return Bool
		default:
			return Scalar
		}
	}
	return Undefined
}

// Line returns the node's source-location mark, or 0 if node is nil.
func Line(node *yaml.Node) int {
	node = unwrap(node)
	if node == nil {
		return 0
	}
	return node.Line
}

// Text returns the scalar text of node, or "" if node is not a scalar.
func Text(node *yaml.Node) string {
	node = unwrap(node)
	if node == nil || KindOf(node) == Map || KindOf(node) == Sequence {
		return ""
	}
	return node.Value
}

// Get looks up key in a MAP node and returns the matching value, or nil if
// node is not a MAP or has no such key.
func Get(node *yaml.Node, key string) *yaml.Node {
	node = unwrap(node)
	if KindOf(node) != Map {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// Pairs iterates the key/value pairs of a MAP node in document order. It is
// a no-op for any other kind.
func Pairs(node *yaml.Node, fn func(key, value *yaml.Node) bool) {
	node = unwrap(node)
	if KindOf(node) != Map {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if !fn(node.Content[i], node.Content[i+1]) {
			return
		}
	}
}

// Items returns the elements of a SEQUENCE node, or nil for any other kind.
func Items(node *yaml.Node) []*yaml.Node {
	node = unwrap(node)
	if KindOf(node) != Sequence {
		return nil
	}
	return node.Content
}

// Len returns the number of keys in a MAP or elements in a SEQUENCE.
func Len(node *yaml.Node) int {
	node = unwrap(node)
	switch KindOf(node) {
	case Map:
		return len(node.Content) / 2
	case Sequence:
		return len(node.Content)
	}
	return 0
}

// Equal is a Go counterpart of the equal() predicate that the runtime
// prelude emits for `enum` checks: node kind and content must match, and
// map key order is ignored. The compiler itself does not call it.
func Equal(a, b *yaml.Node) bool {
	ak, bk := KindOf(a), KindOf(b)
	if ak != bk {
		return false
	}
	switch ak {
	case Sequence:
		items1, items2 := Items(a), Items(b)
		if len(items1) != len(items2) {
			return false
		}
		for i := range items1 {
			if !Equal(items1[i], items2[i]) {
				return false
			}
		}
		return true
	case Map:
		if Len(a) != Len(b) {
			return false
		}
		match := true
		Pairs(a, func(k, v *yaml.Node) bool {
			bv := Get(b, k.Value)
			if bv == nil || !Equal(v, bv) {
				match = false
				return false
			}
			return true
		})
		return match
	default:
		return Text(a) == Text(b)
	}
}
