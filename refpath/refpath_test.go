package refpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mb0/schemac/schema"
)

func parse(t *testing.T, text string) *yaml.Node {
	t.Helper()
	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(text), &root))
	return &root
}

const doc = `
definitions:
  Tree:
    type: object
    properties:
      child:
        $ref: "#/definitions/Tree"
  Leaf:
    type: string
`

func TestResolveNested(t *testing.T) {
	root := parse(t, doc)
	node, err := Resolve(root, "#/definitions/Leaf")
	require.NoError(t, err)
	require.NotNil(t, node)
}

func TestResolveRootReset(t *testing.T) {
	root := parse(t, doc)
	a, err := Resolve(root, "#/definitions/Tree/type")
	require.NoError(t, err)
	assert.Equal(t, "object", a.Value)

	b, err := Resolve(root, "definitions/Tree/properties/#/definitions/Leaf/type")
	require.NoError(t, err)
	assert.Equal(t, "string", b.Value)
}

func TestResolveMissingKey(t *testing.T) {
	root := parse(t, doc)
	_, err := Resolve(root, "#/definitions/Missing")
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "Missing", rerr.Segment)
	assert.Equal(t, "definitions", rerr.Path)
}

func TestResolveNonMapTraversal(t *testing.T) {
	root := parse(t, doc)
	_, err := Resolve(root, "#/definitions/Leaf/type/nope")
	require.Error(t, err)
}

func TestResolveEmptyRef(t *testing.T) {
	root := parse(t, doc)
	node, err := Resolve(root, "#")
	require.NoError(t, err)
	assert.Equal(t, schema.Map, schema.KindOf(node))
}
