package schema

import "strings"

// Type is one of the seven schema types the compiler recognizes, plus the
// Invalid sentinel for a type name that isn't one of them.
type Type int

const (
	TypeNull Type = iota
	TypeBoolean
	TypeObject
	TypeArray
	TypeNumber
	TypeInteger
	TypeString
	TypeInvalid
)

// typeNames is the lexicon mapping a Type to the string that appears in a
// schema document. It is a process-wide constant, set up once and never
// mutated.
var typeNames = [...]string{
	TypeNull:    "null",
	TypeBoolean: "boolean",
	TypeObject:  "object",
	TypeArray:   "array",
	TypeNumber:  "number",
	TypeInteger: "integer",
	TypeString:  "string",
}

// typePredicates names the hand-written runtime predicate that checks a
// value against each type, matching the prelude in prelude.go.
var typePredicates = [...]string{
	TypeNull:    "is_null_type",
	TypeBoolean: "is_bool_type",
	TypeObject:  "is_object_type",
	TypeArray:   "is_array_type",
	TypeNumber:  "is_number_type",
	TypeInteger: "is_integer_type",
	TypeString:  "is_string_type",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "INVALID"
	}
	return typeNames[t]
}

// Predicate returns the name of the runtime type-check function for t.
func (t Type) Predicate() string {
	if t < 0 || int(t) >= len(typePredicates) {
		return ""
	}
	return typePredicates[t]
}

func (t Type) IsValid() bool { return t >= TypeNull && t <= TypeString }

// ParseType looks up name in the type lexicon. It returns TypeInvalid for
// any name that isn't one of the seven recognized types.
func ParseType(name string) Type {
	for i, n := range typeNames {
		if n == name {
			return Type(i)
		}
	}
	return TypeInvalid
}

// AllTypeNames joins every valid type name, quoted, for use in "must be one
// of ..." diagnostics.
func AllTypeNames() string {
	var b strings.Builder
	for i, n := range typeNames {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(n)
		b.WriteByte('\'')
	}
	return b.String()
}

// TypeSet is a bitset over the seven real schema types. The zero value is
// the empty set; Full is the implicit default for a schema node with no
// `type` property.
type TypeSet uint8

// Full is the bitset with every real type bit set.
const Full TypeSet = 1<<TypeNull | 1<<TypeBoolean | 1<<TypeObject | 1<<TypeArray |
	1<<TypeNumber | 1<<TypeInteger | 1<<TypeString

func (s TypeSet) Has(t Type) bool { return s&(1<<t) != 0 }
func (s *TypeSet) Add(t Type)     { *s |= 1 << t }

// Count returns the number of member types.
func (s TypeSet) Count() int {
	n := 0
	for t := TypeNull; t <= TypeString; t++ {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Each calls fn for every member type in ascending order.
func (s TypeSet) Each(fn func(Type)) {
	for t := TypeNull; t <= TypeString; t++ {
		if s.Has(t) {
			fn(t)
		}
	}
}

// Single returns the sole member of a one-element set. Only valid when
// Count() == 1.
func (s TypeSet) Single() Type {
	for t := TypeNull; t <= TypeString; t++ {
		if s.Has(t) {
			return t
		}
	}
	return TypeInvalid
}
