/*
File    : step/eval/eval_statements.go
Project : Step interpreter
*/
package eval

import (
	"github.com/step-lang/step/objects"
	"github.com/step-lang/step/parser"
)

// evalProgram evaluates the top-level statements of a program. Control
// signals that escape to this level are runtime errors: `break` and
// `continue` belong inside a loop, `return` inside a function call.
func (e *Evaluator) evalProgram(root *parser.RootNode) objects.StepObject {
	result := e.evalStatements(root.Statements)

	switch result := result.(type) {
	case *objects.Break:
		return e.createErrorAt(result.Line, result.Column, "'break' outside of a loop")
	case *objects.Continue:
		return e.createErrorAt(result.Line, result.Column, "'continue' outside of a loop")
	case *objects.ReturnValue:
		return e.createErrorAt(result.Line, result.Column, "'return' outside of a function")
	default:
		return result
	}
}

// evalStatements evaluates a sequence of statements in order with early
// termination: an error stops evaluation immediately, and a control signal
// (break, continue, return) is propagated to the enclosing construct.
// The result of the last statement is returned, or None for an empty list.
func (e *Evaluator) evalStatements(stmts []parser.StatementNode) objects.StepObject {
	var result objects.StepObject = &objects.None{}
	for _, stmt := range stmts {
		result = e.Eval(stmt)

		if IsError(result) {
			return result
		}
		switch result.(type) {
		case *objects.ReturnValue, *objects.Break, *objects.Continue:
			return result
		}
	}
	return result
}

// evalIfStatement evaluates the condition's truthiness and descends into
// the selected block. Control signals from the block propagate upward.
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) objects.StepObject {
	condition := e.Eval(n.Condition)
	if IsError(condition) {
		return condition
	}

	if objects.IsTruthy(condition) {
		return e.evalStatements(n.ThenBlock.Statements)
	}
	return e.evalStatements(n.ElseBlock.Statements)
}

// evalWhileStatement repeatedly evaluates the condition's truthiness and
// runs the body. `break` ends the loop normally, `continue` begins the
// next iteration, and `return` (or an error) propagates upward.
func (e *Evaluator) evalWhileStatement(n *parser.WhileStatementNode) objects.StepObject {
	for {
		condition := e.Eval(n.Condition)
		if IsError(condition) {
			return condition
		}
		if !objects.IsTruthy(condition) {
			break
		}

		result := e.evalStatements(n.Body.Statements)

		if IsError(result) {
			return result
		}
		if _, isReturn := result.(*objects.ReturnValue); isReturn {
			return result
		}
		if _, isBreak := result.(*objects.Break); isBreak {
			break
		}
		// A Continue signal simply falls through to the next iteration
	}
	return &objects.None{}
}

// evalReturnStatement evaluates the optional expression (None when absent)
// and wraps it in a return signal for the enclosing call to unwrap.
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.StepObject {
	var value objects.StepObject = &objects.None{}
	if n.Expr != nil {
		value = e.Eval(n.Expr)
		if IsError(value) {
			return value
		}
	}
	return &objects.ReturnValue{
		Value:  value,
		Line:   n.ReturnToken.Line,
		Column: n.ReturnToken.Column,
	}
}
