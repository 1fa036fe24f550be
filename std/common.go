/*
File    : step/std/common.go
Project : Step interpreter
*/
package std

// This file implements the core builtins: print, assert, len, int, and str.

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/step-lang/step/objects"
)

// commonMethods is the slice of core builtin functions.
var commonMethods = []*Builtin{
	{Name: "print", Callback: printFunc},   // Prints arguments separated by spaces, with a newline
	{Name: "assert", Callback: assertFunc}, // Fails the program when its argument is falsy
	{Name: "len", Callback: lenFunc},       // Returns the length of a string or list
	{Name: "int", Callback: intFunc},       // Converts a number or string to an integer
	{Name: "str", Callback: strFunc},       // Returns the canonical string rendering
}

// init registers the core methods as global builtins.
func init() {
	Builtins = append(Builtins, commonMethods...)
}

// printFunc writes each argument's canonical string, separated by a single
// space and terminated by a newline, to the output sink. Returns None.
//
// Syntax: print(a, b, ...)  (zero or more arguments)
func printFunc(writer io.Writer, args ...objects.StepObject) objects.StepObject {
	parts := make([]string, len(args))
	for i, arg := range args {
		s, err := objects.Render(arg)
		if err != nil {
			return err
		}
		parts[i] = s
	}
	fmt.Fprintln(writer, strings.Join(parts, " "))
	return &objects.None{}
}

// assertFunc checks that its first argument is truthy. On failure the
// optional second argument is rendered to the output sink and the program
// fails with an assertion error.
//
// Syntax: assert(cond) or assert(cond, message)
func assertFunc(writer io.Writer, args ...objects.StepObject) objects.StepObject {
	if len(args) != 1 && len(args) != 2 {
		return createError("assert expects 1 or 2 arguments, got %d", len(args))
	}
	if objects.IsTruthy(args[0]) {
		return &objects.None{}
	}
	if len(args) == 2 {
		s, err := objects.Render(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(writer, s)
	}
	return createError("assertion failed")
}

// lenFunc returns the byte length of a string or the element count of a
// list.
//
// Syntax: len(s) or len(a)
func lenFunc(writer io.Writer, args ...objects.StepObject) objects.StepObject {
	if len(args) != 1 {
		return createError("len expects 1 argument, got %d", len(args))
	}
	switch arg := args[0].(type) {
	case *objects.Str:
		return &objects.Integer{Value: int64(len(arg.Value))}
	case *objects.List:
		return &objects.Integer{Value: int64(arg.Length())}
	default:
		return createError("len expects a string or list, got (%s)", arg.GetType())
	}
}

// intFunc converts a number (truncating toward zero) or a decimal string
// to an integer.
//
// Syntax: int(x)
func intFunc(writer io.Writer, args ...objects.StepObject) objects.StepObject {
	if len(args) != 1 {
		return createError("int expects 1 argument, got %d", len(args))
	}
	switch arg := args[0].(type) {
	case *objects.Integer:
		return &objects.Integer{Value: arg.Value}
	case *objects.Float:
		v := arg.Value
		if math.IsNaN(v) || math.IsInf(v, 0) || v >= math.MaxInt64 || v <= math.MinInt64 {
			return createError("cannot convert %s to an integer", arg.ToString())
		}
		return &objects.Integer{Value: int64(math.Trunc(v))}
	case *objects.Str:
		value, err := strconv.ParseInt(arg.Value, 10, 64)
		if err != nil {
			return createError("cannot parse %q as an integer", arg.Value)
		}
		return &objects.Integer{Value: value}
	default:
		return createError("int expects a number or string, got (%s)", arg.GetType())
	}
}

// strFunc returns the canonical string rendering of any value.
//
// Syntax: str(x)
func strFunc(writer io.Writer, args ...objects.StepObject) objects.StepObject {
	if len(args) != 1 {
		return createError("str expects 1 argument, got %d", len(args))
	}
	s, err := objects.Render(args[0])
	if err != nil {
		return err
	}
	return &objects.Str{Value: s}
}
