/*
File    : step/std/math.go
Project : Step interpreter
*/
package std

// This file implements the numeric builtins.

import (
	"io"
	"math"

	"github.com/step-lang/step/objects"
)

var mathMethods = []*Builtin{
	{Name: "sqrt", Callback: sqrtFunc}, // Square root of a number, always a float
}

// init registers the math methods as global builtins.
func init() {
	Builtins = append(Builtins, mathMethods...)
}

// sqrtFunc returns the float square root of a number. A negative argument
// is an error.
//
// Syntax: sqrt(x)
func sqrtFunc(writer io.Writer, args ...objects.StepObject) objects.StepObject {
	if len(args) != 1 {
		return createError("sqrt expects 1 argument, got %d", len(args))
	}

	var value float64
	switch arg := args[0].(type) {
	case *objects.Integer:
		value = float64(arg.Value)
	case *objects.Float:
		value = arg.Value
	default:
		return createError("sqrt expects a number, got (%s)", arg.GetType())
	}

	if value < 0 {
		return createError("sqrt of a negative number")
	}
	return &objects.Float{Value: math.Sqrt(value)}
}
