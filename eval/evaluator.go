/*
File    : step/eval/evaluator.go
Project : Step interpreter
*/
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/step-lang/step/function"
	"github.com/step-lang/step/lexer"
	"github.com/step-lang/step/objects"
	"github.com/step-lang/step/parser"
	"github.com/step-lang/step/scope"
	"github.com/step-lang/step/std"
)

// Evaluator holds the state for evaluating Step AST nodes: the current
// scope frame, the global frame seeded with the builtins, and the output
// writer used by print and assert.
//
// Evaluation is strictly single-threaded; the only shared mutable state is
// the list bodies reachable through the scope frames.
type Evaluator struct {
	Scp     *scope.Scope // Current frame for variable bindings
	Globals *scope.Scope // The global (root) frame, where `def` binds
	Writer  io.Writer    // Output sink for print and assert (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator instance.
// The global scope is created and seeded with one binding per registered
// builtin, so `print`, `assert`, `len`, `int`, `str`, `sqrt`, and `append`
// are ordinary (rebindable) names.
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	for _, builtin := range std.Builtins {
		globals.Bind(builtin.Name, builtin)
	}
	return &Evaluator{
		Scp:     globals,
		Globals: globals,
		Writer:  os.Stdout, // Default to stdout
	}
}

// SetWriter configures the output destination for print and assert.
// Tests and the REPL redirect output here instead of stdout.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// RegisterFunction creates a function object for a `def` statement and
// binds it by name in the global frame. Rebinding an existing name
// replaces the old binding.
func (e *Evaluator) RegisterFunction(n *parser.FunctionStatementNode) objects.StepObject {
	fn := &function.Function{
		Name:   n.FuncName.Name,
		Params: n.FuncParams,
		Body:   &n.FuncBody,
		Scp:    e.Globals,
	}
	e.Globals.Bind(n.FuncName.Name, fn)
	return fn
}

// CallFunction invokes a callable value with already-evaluated arguments.
// For builtins the callback runs directly; position-less errors it returns
// gain the call-site position. For user functions a fresh frame is pushed
// with the parameters bound, the body is executed, and the return signal
// (or falling off the end, which yields None) produces the call's value.
func (e *Evaluator) CallFunction(callee objects.StepObject, args []objects.StepObject, tok lexer.Token) objects.StepObject {
	switch callee := callee.(type) {
	case *std.Builtin:
		result := callee.Callback(e.Writer, args...)
		if err, isErr := result.(*objects.Error); isErr && err.Line == 0 {
			err.Line = tok.Line
			err.Column = tok.Column
		}
		return result

	case *function.Function:
		if len(args) != len(callee.Params) {
			return e.createError(tok, "wrong number of arguments for %s: expected %d, got %d",
				callee.Name, len(callee.Params), len(args))
		}

		frame := scope.NewScope(callee.Scp)
		for i, param := range callee.Params {
			frame.Bind(param.Name, args[i])
		}

		oldScope := e.Scp
		e.Scp = frame
		result := e.Eval(callee.Body)
		e.Scp = oldScope

		switch result := result.(type) {
		case *objects.Error:
			return result
		case *objects.ReturnValue:
			return result.Value
		case *objects.Break:
			return e.createErrorAt(result.Line, result.Column, "'break' outside of a loop")
		case *objects.Continue:
			return e.createErrorAt(result.Line, result.Column, "'continue' outside of a loop")
		default:
			// The body fell off the end without returning
			return &objects.None{}
		}

	default:
		return e.createError(tok, "object is not callable: (%s)", callee.GetType())
	}
}

// IsError checks whether a value is a runtime error object, which
// short-circuits evaluation wherever it appears.
func IsError(obj objects.StepObject) bool {
	_, ok := obj.(*objects.Error)
	return ok
}

// createError creates a runtime error positioned at the given token.
func (e *Evaluator) createError(tok lexer.Token, format string, a ...interface{}) *objects.Error {
	return e.createErrorAt(tok.Line, tok.Column, format, a...)
}

// createErrorAt creates a runtime error at an explicit source position.
func (e *Evaluator) createErrorAt(line, column int, format string, a ...interface{}) *objects.Error {
	return &objects.Error{
		Kind:    objects.RuntimeErrorKind,
		Message: fmt.Sprintf(format, a...),
		Line:    line,
		Column:  column,
	}
}
