/*
File    : step/function/function.go
Project : Step interpreter
*/
package function

import (
	"fmt"

	"github.com/step-lang/step/objects"
	"github.com/step-lang/step/parser"
	"github.com/step-lang/step/scope"
)

// Function represents a user-defined function object in Step.
// It captures the function's name, parameter list, body, and the scope in
// which it was defined; each call gets a fresh frame whose parent is that
// declaring scope. Two function values are equal iff they are the same
// *Function.
type Function struct {
	Name   string                             // Name of the function
	Params []*parser.IdentifierExpressionNode // Function parameter names
	Body   *parser.BlockStatementNode         // Function body (statements to execute)
	Scp    *scope.Scope                       // Declaring scope (the global frame)
}

// GetType returns the type identifier for this Function object.
func (f *Function) GetType() objects.StepType {
	return objects.FunctionType
}

// ToString returns a simple rendering of the function, e.g. "func(add)".
func (f *Function) ToString() string {
	return fmt.Sprintf("func(%s)", f.Name)
}

// ToObject returns a detailed rendering including the parameter names,
// e.g. "<func[add(a, b)]>".
func (f *Function) ToObject() string {
	args := ""
	for i, param := range f.Params {
		if i > 0 {
			args += ", "
		}
		args += param.Name
	}
	return fmt.Sprintf("<func[%s(%s)]>", f.Name, args)
}
