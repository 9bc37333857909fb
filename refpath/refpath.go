// Package refpath resolves JSON-pointer-like fragment paths ("#/definitions/Foo/bar")
// against a parsed schema document, the way the compiler's definition table
// looks up `$ref` targets.
package refpath

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mb0/schemac/schema"
)

// Error names the segment that failed to resolve and the sub-path walked
// up to that point.
type Error struct {
	Segment string
	Path    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%q is not in the map at %q", e.Segment, e.Path)
}

// Resolve walks ref against root and returns the addressed node. A leading
// '#' or an empty segment resets the cursor to the document root. Each
// subsequent segment selects a key into the current node, which must be a
// MAP. No escaping convention applies to segments: a segment containing
// '/' cannot be represented, matching spec.md §4.3.
func Resolve(root *yaml.Node, ref string) (*yaml.Node, error) {
	node := root
	var walked []string
	for _, seg := range strings.Split(ref, "/") {
		if seg == "" || seg == "#" {
			node = root
			walked = walked[:0]
			continue
		}
		if schema.KindOf(node) != schema.Map {
			return nil, &Error{Segment: seg, Path: strings.Join(walked, "/")}
		}
		next := schema.Get(node, seg)
		if next == nil {
			return nil, &Error{Segment: seg, Path: strings.Join(walked, "/")}
		}
		node = next
		walked = append(walked, seg)
	}
	return node, nil
}
