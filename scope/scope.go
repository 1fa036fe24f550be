/*
File    : step/scope/scope.go
Project : Step interpreter
*/
package scope

import "github.com/step-lang/step/objects"

// Scope defines a variable frame for the Step environment.
//
// There is exactly one global scope, seeded with the builtin callables at
// startup. Each function call pushes a fresh frame whose parent is the
// function's declaring scope. Name lookup walks from the current frame to
// the global frame; assignment always binds in the current frame, so a
// function-local assignment never clobbers a global of the same name.
type Scope struct {
	// Variables maps variable names to their current values in this frame
	Variables map[string]objects.StepObject

	// Parent points to the enclosing frame, forming a lookup chain.
	// nil indicates this is the global (root) frame.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent.
//
//   - parent == nil: creates the global (root) frame
//   - parent != nil: creates a call frame that can read parent variables
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.StepObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this frame and all parent
// frames. The nearest binding wins, so call-frame parameters shadow globals
// of the same name.
//
// Returns the bound value and true, or nil and false when the name is
// unbound everywhere in the chain.
func (s *Scope) LookUp(varName string) (objects.StepObject, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		return s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates or replaces a variable binding in the current frame only.
// Rebinding replaces the binding; it never mutates through it. Parent
// frames are unaffected, which is what gives function calls their local
// assignment semantics.
func (s *Scope) Bind(varName string, obj objects.StepObject) {
	s.Variables[varName] = obj
}
