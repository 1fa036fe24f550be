/*
File    : step/std/builtins.go
Project : Step interpreter
*/

// Package std - builtins.go
// This file defines the registry for the builtin functions available in the
// Step language: print, assert, len, int, str, sqrt, and append. Each
// builtin validates its own arity and argument types and reports failures
// as error values, which the evaluator stamps with the call-site position.
package std

import (
	"fmt"
	"io"

	"github.com/step-lang/step/objects"
)

// CallbackFunc is the function signature for builtin functions.
// It takes an io.Writer for program output (the evaluator's sink) and a
// variadic list of already-evaluated arguments, returning a StepObject
// result (or an error object if something goes wrong).
type CallbackFunc func(writer io.Writer, args ...objects.StepObject) objects.StepObject

// Builtin represents a builtin function with a name and its implementation
// callback. Builtins are first-class Step values: the global environment is
// seeded with one binding per registered builtin, and two builtin values
// are equal iff they are the same *Builtin.
type Builtin struct {
	Name     string       // The name of the builtin function (e.g., "print")
	Callback CallbackFunc // The function that implements the builtin behavior
}

// GetType returns the type of the Builtin object
func (b *Builtin) GetType() objects.StepType {
	return objects.BuiltinType
}

// ToString returns a simple rendering, e.g. "builtin(print)"
func (b *Builtin) ToString() string {
	return fmt.Sprintf("builtin(%s)", b.Name)
}

// ToObject returns a detailed rendering, e.g. "<builtin(print)>"
func (b *Builtin) ToObject() string {
	return fmt.Sprintf("<builtin(%s)>", b.Name)
}

// Builtins is a global slice of pointers to Builtin structs.
// It holds all the builtin functions available in the Step language.
// Functions are added to this slice during package initialization.
var Builtins = make([]*Builtin, 0)

// createError is a local helper to create Step runtime error objects.
// Position information is attached by the evaluator at the call site.
func createError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{
		Kind:    objects.RuntimeErrorKind,
		Message: fmt.Sprintf(format, a...),
	}
}
