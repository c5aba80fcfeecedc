package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/internal/object"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", object.Number{Value: 42})

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, object.Number{Value: 42}, v)
}

func TestEnvironment_GetFallsBackToEnclosing(t *testing.T) {
	outer := New(nil)
	outer.Define("x", object.Number{Value: 1})
	inner := New(outer)

	v, ok := inner.Get("x")
	require.True(t, ok)
	assert.Equal(t, object.Number{Value: 1}, v)
}

func TestEnvironment_GetUndefinedFailsAtOutermost(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_AssignUpdatesOwningFrame(t *testing.T) {
	outer := New(nil)
	outer.Define("x", object.Number{Value: 1})
	inner := New(outer)

	ok := inner.Assign("x", object.Number{Value: 2})
	require.True(t, ok)

	v, _ := outer.Get("x")
	assert.Equal(t, object.Number{Value: 2}, v)

	_, definedLocally := inner.values["x"]
	assert.False(t, definedLocally, "assign must not shadow into the inner frame")
}

func TestEnvironment_AssignUndefinedFails(t *testing.T) {
	env := New(nil)
	ok := env.Assign("nope", object.Number{Value: 1})
	assert.False(t, ok)
}

func TestEnvironment_GetAtAssignAt(t *testing.T) {
	global := New(nil)
	block1 := New(global)
	block2 := New(block1)
	block2.Define("x", object.Number{Value: 10})

	assert.Equal(t, object.Number{Value: 10}, block2.GetAt(0, "x"))

	block2.AssignAt(0, "x", object.Number{Value: 20})
	v, _ := block2.Get("x")
	assert.Equal(t, object.Number{Value: 20}, v)
}

func TestEnvironment_BlockScopingNotVisibleOutside(t *testing.T) {
	outer := New(nil)
	outer.Define("a", object.Number{Value: 1})
	inner := New(outer)
	inner.Define("a", object.Number{Value: 2})

	innerVal, _ := inner.Get("a")
	outerVal, _ := outer.Get("a")
	assert.Equal(t, object.Number{Value: 2}, innerVal)
	assert.Equal(t, object.Number{Value: 1}, outerVal)
}
