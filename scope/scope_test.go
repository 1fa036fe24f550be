/*
File    : step/scope/scope_test.go
Project : Step interpreter
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/step-lang/step/objects"
)

// TestScope_LookUpChain verifies that lookup walks from the current frame
// to the global frame
func TestScope_LookUpChain(t *testing.T) {
	globals := NewScope(nil)
	globals.Bind("g", &objects.Integer{Value: 1})

	frame := NewScope(globals)
	frame.Bind("l", &objects.Integer{Value: 2})

	obj, ok := frame.LookUp("l")
	assert.True(t, ok)
	assert.Equal(t, int64(2), obj.(*objects.Integer).Value)

	obj, ok = frame.LookUp("g")
	assert.True(t, ok)
	assert.Equal(t, int64(1), obj.(*objects.Integer).Value)

	_, ok = frame.LookUp("missing")
	assert.False(t, ok)

	// The global frame cannot see call-frame bindings
	_, ok = globals.LookUp("l")
	assert.False(t, ok)
}

// TestScope_BindWritesCurrentFrame verifies that assignment binds locally
// and never clobbers an outer binding of the same name
func TestScope_BindWritesCurrentFrame(t *testing.T) {
	globals := NewScope(nil)
	globals.Bind("x", &objects.Integer{Value: 1})

	frame := NewScope(globals)
	frame.Bind("x", &objects.Integer{Value: 99})

	obj, _ := frame.LookUp("x")
	assert.Equal(t, int64(99), obj.(*objects.Integer).Value, "frame sees its own binding")

	obj, _ = globals.LookUp("x")
	assert.Equal(t, int64(1), obj.(*objects.Integer).Value, "global binding untouched")
}

// TestScope_RebindReplaces verifies that rebinding replaces the binding
// rather than mutating through it
func TestScope_RebindReplaces(t *testing.T) {
	s := NewScope(nil)
	s.Bind("v", &objects.Integer{Value: 1})
	s.Bind("v", &objects.Str{Value: "now a string"})

	obj, ok := s.LookUp("v")
	assert.True(t, ok)
	assert.Equal(t, objects.StringType, obj.GetType())
}
