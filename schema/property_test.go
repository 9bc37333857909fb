package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyString(t *testing.T) {
	assert.Equal(t, "type", PropType.String())
	assert.Equal(t, "minItems", PropMinItems.String())
	assert.Equal(t, "anyOf", PropAnyOf.String())
}

func TestPropertyLexicons(t *testing.T) {
	assert.ElementsMatch(t, []Property{PropProperties, PropRequired}, ObjectProperties)
	assert.ElementsMatch(t, []Property{PropItems, PropMinItems, PropMaxItems}, ArrayProperties)
}
