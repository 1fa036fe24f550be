/*
File    : step/std/list.go
Project : Step interpreter
*/
package std

// This file implements the list builtins.

import (
	"io"

	"github.com/step-lang/step/objects"
)

var listMethods = []*Builtin{
	{Name: "append", Callback: appendFunc}, // Appends an element to a list in place
}

// init registers the list methods as global builtins.
func init() {
	Builtins = append(Builtins, listMethods...)
}

// appendFunc mutates the shared list body, adding the second argument at
// the end. The change is visible through every handle to the list.
// Returns None.
//
// Syntax: append(a, v)
func appendFunc(writer io.Writer, args ...objects.StepObject) objects.StepObject {
	if len(args) != 2 {
		return createError("append expects 2 arguments, got %d", len(args))
	}
	list, ok := args[0].(*objects.List)
	if !ok {
		return createError("first argument to `append` must be a list, got (%s)", args[0].GetType())
	}
	list.Append(args[1])
	return &objects.None{}
}
