/*
File    : step/eval/eval_expressions.go
Project : Step interpreter
*/
package eval

import (
	"math"
	"strings"

	"github.com/step-lang/step/lexer"
	"github.com/step-lang/step/objects"
	"github.com/step-lang/step/parser"
)

// Eval is the main evaluation dispatcher that converts AST nodes into
// runtime objects. It implements a type switch routing each node type to
// its handler. Evaluation is recursive: complex expressions break down
// into sub-expressions that are evaluated in turn, and any error object
// short-circuits the walk.
func (e *Evaluator) Eval(n parser.Node) objects.StepObject {
	switch n := n.(type) {
	case *parser.RootNode:
		return e.evalProgram(n)
	case *parser.IntegerLiteralExpressionNode:
		return &objects.Integer{Value: n.Value}
	case *parser.FloatLiteralExpressionNode:
		return &objects.Float{Value: n.Value}
	case *parser.StringLiteralExpressionNode:
		return &objects.Str{Value: n.Value}
	case *parser.NoneLiteralExpressionNode:
		return &objects.None{}
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(n)
	case *parser.ListLiteralExpressionNode:
		return e.evalListLiteral(n)
	case *parser.ParenthesizedExpressionNode:
		return e.Eval(n.Expr)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.BooleanExpressionNode:
		return e.evalBooleanExpression(n)
	case *parser.ComparisonExpressionNode:
		return e.evalComparisonExpression(n)
	case *parser.AssignmentExpressionNode:
		return e.evalAssignmentExpression(n)
	case *parser.IndexExpressionNode:
		return e.evalIndexExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	case *parser.EmptyStatementNode:
		return &objects.None{}
	case *parser.BlockStatementNode:
		return e.evalStatements(n.Statements)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.WhileStatementNode:
		return e.evalWhileStatement(n)
	case *parser.BreakStatementNode:
		return &objects.Break{Line: n.Token.Line, Column: n.Token.Column}
	case *parser.ContinueStatementNode:
		return &objects.Continue{Line: n.Token.Line, Column: n.Token.Column}
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)
	case *parser.FunctionStatementNode:
		e.RegisterFunction(n)
		return &objects.None{}
	default:
		return e.createErrorAt(0, 0, "unhandled AST node: %T", n)
	}
}

// evalIdentifierExpression looks up a name through the frame chain.
// An unbound name is a runtime error.
func (e *Evaluator) evalIdentifierExpression(n *parser.IdentifierExpressionNode) objects.StepObject {
	obj, ok := e.Scp.LookUp(n.Name)
	if !ok {
		return e.createError(n.Token, "unbound identifier: (%s)", n.Name)
	}
	return obj
}

// evalListLiteral evaluates the elements left-to-right and mints a fresh
// list body holding them.
func (e *Evaluator) evalListLiteral(n *parser.ListLiteralExpressionNode) objects.StepObject {
	elements := make([]objects.StepObject, 0, len(n.Elements))
	for _, elem := range n.Elements {
		value := e.Eval(elem)
		if IsError(value) {
			return value
		}
		elements = append(elements, value)
	}
	return objects.NewList(elements)
}

// evalUnaryExpression evaluates prefix negation. The operand must be
// numeric; the result preserves int-ness.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.StepObject {
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}
	switch right := right.(type) {
	case *objects.Integer:
		return &objects.Integer{Value: -right.Value}
	case *objects.Float:
		return &objects.Float{Value: -right.Value}
	default:
		return e.createError(n.Operation, "unsupported operand type for unary -: (%s)", right.GetType())
	}
}

// evalBinaryExpression evaluates the arithmetic operators + - * / %.
// Both operands evaluate first (left before right); the operator then
// dispatches on the runtime operand types.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.StepObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operation.Type {
	case lexer.PLUS_OP:
		return e.evalAdd(left, right, n.Operation)
	case lexer.MINUS_OP:
		return e.evalSub(left, right, n.Operation)
	case lexer.MUL_OP:
		return e.evalMul(left, right, n.Operation)
	case lexer.DIV_OP:
		return e.evalDiv(left, right, n.Operation)
	case lexer.MOD_OP:
		return e.evalMod(left, right, n.Operation)
	default:
		return e.createError(n.Operation, "unknown binary operator: %s", n.Operation.Literal)
	}
}

// evalAdd implements `+`: numeric addition with int/float promotion,
// string concatenation, and list concatenation (a fresh body).
func (e *Evaluator) evalAdd(left, right objects.StepObject, op lexer.Token) objects.StepObject {
	switch l := left.(type) {
	case *objects.Integer:
		switch r := right.(type) {
		case *objects.Integer:
			return &objects.Integer{Value: l.Value + r.Value}
		case *objects.Float:
			return &objects.Float{Value: float64(l.Value) + r.Value}
		}
	case *objects.Float:
		switch r := right.(type) {
		case *objects.Integer:
			return &objects.Float{Value: l.Value + float64(r.Value)}
		case *objects.Float:
			return &objects.Float{Value: l.Value + r.Value}
		}
	case *objects.Str:
		if r, ok := right.(*objects.Str); ok {
			return &objects.Str{Value: l.Value + r.Value}
		}
	case *objects.List:
		if r, ok := right.(*objects.List); ok {
			return l.Concat(r)
		}
	}
	return e.createError(op, "unsupported operand types for +: (%s) and (%s)", left.GetType(), right.GetType())
}

// evalSub implements `-`: numbers only, with int/float promotion.
func (e *Evaluator) evalSub(left, right objects.StepObject, op lexer.Token) objects.StepObject {
	if l, r, ok := bothIntegers(left, right); ok {
		return &objects.Integer{Value: l - r}
	}
	if l, r, ok := bothNumeric(left, right); ok {
		return &objects.Float{Value: l - r}
	}
	return e.createError(op, "unsupported operand types for -: (%s) and (%s)", left.GetType(), right.GetType())
}

// evalMul implements `*`: numeric multiplication with promotion, string
// replication (str*int or int*str), and list replication (list*int or
// int*list, a fresh body with shared element handles).
func (e *Evaluator) evalMul(left, right objects.StepObject, op lexer.Token) objects.StepObject {
	if l, r, ok := bothIntegers(left, right); ok {
		return &objects.Integer{Value: l * r}
	}
	if l, r, ok := bothNumeric(left, right); ok {
		return &objects.Float{Value: l * r}
	}

	// str * int and int * str
	if s, count, ok := stringAndCount(left, right); ok {
		if count <= 0 {
			return &objects.Str{Value: ""}
		}
		return &objects.Str{Value: strings.Repeat(s, int(count))}
	}

	// list * int and int * list
	if list, count, ok := listAndCount(left, right); ok {
		return list.Repeat(count)
	}

	return e.createError(op, "unsupported operand types for *: (%s) and (%s)", left.GetType(), right.GetType())
}

// evalDiv implements `/`: numbers only. Division of two integers whose
// exact mathematical quotient is integral stays an integer; everything
// else is a float. Division by zero is an error.
func (e *Evaluator) evalDiv(left, right objects.StepObject, op lexer.Token) objects.StepObject {
	if l, r, ok := bothIntegers(left, right); ok {
		if r == 0 {
			return e.createError(op, "division by zero")
		}
		if l%r == 0 {
			return &objects.Integer{Value: l / r}
		}
		return &objects.Float{Value: float64(l) / float64(r)}
	}
	if l, r, ok := bothNumeric(left, right); ok {
		if r == 0 {
			return e.createError(op, "division by zero")
		}
		return &objects.Float{Value: l / r}
	}
	return e.createError(op, "unsupported operand types for /: (%s) and (%s)", left.GetType(), right.GetType())
}

// evalMod implements `%` with floor-modulo semantics: the result carries
// the sign of the divisor, so -6 % 4 == 2. Modulo by zero is an error.
func (e *Evaluator) evalMod(left, right objects.StepObject, op lexer.Token) objects.StepObject {
	if l, r, ok := bothIntegers(left, right); ok {
		if r == 0 {
			return e.createError(op, "modulo by zero")
		}
		rem := l % r
		if rem != 0 && (rem < 0) != (r < 0) {
			rem += r
		}
		return &objects.Integer{Value: rem}
	}
	if l, r, ok := bothNumeric(left, right); ok {
		if r == 0 {
			return e.createError(op, "modulo by zero")
		}
		rem := math.Mod(l, r)
		if rem != 0 && (rem < 0) != (r < 0) {
			rem += r
		}
		return &objects.Float{Value: rem}
	}
	return e.createError(op, "unsupported operand types for %%: (%s) and (%s)", left.GetType(), right.GetType())
}

// evalBooleanExpression evaluates `and`/`or`. Both sides are always
// evaluated (no short-circuit); the result is the integer 1 or 0 computed
// from the truthiness of each side.
func (e *Evaluator) evalBooleanExpression(n *parser.BooleanExpressionNode) objects.StepObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	l, r := objects.IsTruthy(left), objects.IsTruthy(right)
	if n.Operation.Type == lexer.AND_KEY {
		return objects.BoolToInteger(l && r)
	}
	return objects.BoolToInteger(l || r)
}

// evalComparisonExpression evaluates a single comparison, yielding the
// integer 1 or 0. The ordering operators require numeric operands;
// equality is defined across all types.
func (e *Evaluator) evalComparisonExpression(n *parser.ComparisonExpressionNode) objects.StepObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operation.Type {
	case lexer.EQ_OP, lexer.NE_OP:
		eq, err := objects.Equals(left, right)
		if err != nil {
			err.Line = n.Operation.Line
			err.Column = n.Operation.Column
			return err
		}
		if n.Operation.Type == lexer.NE_OP {
			eq = !eq
		}
		return objects.BoolToInteger(eq)
	}

	l, r, ok := bothNumeric(left, right)
	if !ok {
		return e.createError(n.Operation, "unsupported operand types for %s: (%s) and (%s)",
			n.Operation.Literal, left.GetType(), right.GetType())
	}

	switch n.Operation.Type {
	case lexer.LT_OP:
		return objects.BoolToInteger(l < r)
	case lexer.GT_OP:
		return objects.BoolToInteger(l > r)
	case lexer.LE_OP:
		return objects.BoolToInteger(l <= r)
	case lexer.GE_OP:
		return objects.BoolToInteger(l >= r)
	default:
		return e.createError(n.Operation, "unknown comparison operator: %s", n.Operation.Literal)
	}
}

// evalAssignmentExpression evaluates `id = e` and `a[i] = e`. The value of
// the whole expression is the assigned value. Identifier assignment binds
// in the current frame; subscript assignment mutates the shared list body.
func (e *Evaluator) evalAssignmentExpression(n *parser.AssignmentExpressionNode) objects.StepObject {
	switch target := n.Left.(type) {
	case *parser.IdentifierExpressionNode:
		value := e.Eval(n.Right)
		if IsError(value) {
			return value
		}
		e.Scp.Bind(target.Name, value)
		return value

	case *parser.IndexExpressionNode:
		container := e.Eval(target.Left)
		if IsError(container) {
			return container
		}
		list, isList := container.(*objects.List)
		if !isList {
			return e.createError(target.Token, "(%s) does not support item assignment", container.GetType())
		}
		index := e.Eval(target.Index)
		if IsError(index) {
			return index
		}
		i, ok := indexValue(index)
		if !ok {
			return e.createError(target.Token, "list index must be an integer, got (%s)", index.GetType())
		}
		value := e.Eval(n.Right)
		if IsError(value) {
			return value
		}
		if i < 0 || i >= int64(list.Length()) {
			return e.createError(target.Token, "list index out of range: %d", i)
		}
		list.Set(int(i), value)
		return value

	default:
		return e.createError(n.Operation, "invalid assignment target")
	}
}

// evalIndexExpression evaluates a subscript read on a list or a string.
// Indices are 0-based; a string subscript yields a one-character string.
func (e *Evaluator) evalIndexExpression(n *parser.IndexExpressionNode) objects.StepObject {
	container := e.Eval(n.Left)
	if IsError(container) {
		return container
	}
	index := e.Eval(n.Index)
	if IsError(index) {
		return index
	}

	i, ok := indexValue(index)

	switch container := container.(type) {
	case *objects.List:
		if !ok {
			return e.createError(n.Token, "list index must be an integer, got (%s)", index.GetType())
		}
		if i < 0 || i >= int64(container.Length()) {
			return e.createError(n.Token, "list index out of range: %d", i)
		}
		return container.Get(int(i))

	case *objects.Str:
		if !ok {
			return e.createError(n.Token, "string index must be an integer, got (%s)", index.GetType())
		}
		if i < 0 || i >= int64(len(container.Value)) {
			return e.createError(n.Token, "string index out of range: %d", i)
		}
		return &objects.Str{Value: string(container.Value[i])}

	default:
		return e.createError(n.Token, "(%s) is not subscriptable", container.GetType())
	}
}

// evalCallExpression evaluates the callee and the arguments left-to-right,
// then invokes the callable.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.StepObject {
	callee := e.Eval(n.Callee)
	if IsError(callee) {
		return callee
	}

	args := make([]objects.StepObject, len(n.Arguments))
	for i, arg := range n.Arguments {
		args[i] = e.Eval(arg)
		if IsError(args[i]) {
			return args[i]
		}
	}

	return e.CallFunction(callee, args, n.Token)
}

// bothIntegers extracts the int64 values when both operands are integers.
func bothIntegers(left, right objects.StepObject) (int64, int64, bool) {
	l, lok := left.(*objects.Integer)
	r, rok := right.(*objects.Integer)
	if lok && rok {
		return l.Value, r.Value, true
	}
	return 0, 0, false
}

// bothNumeric extracts float64 magnitudes when both operands are numbers
// (any mix of int and float).
func bothNumeric(left, right objects.StepObject) (float64, float64, bool) {
	l, lok := floatValue(left)
	r, rok := floatValue(right)
	if lok && rok {
		return l, r, true
	}
	return 0, 0, false
}

func floatValue(obj objects.StepObject) (float64, bool) {
	switch obj := obj.(type) {
	case *objects.Integer:
		return float64(obj.Value), true
	case *objects.Float:
		return obj.Value, true
	default:
		return 0, false
	}
}

// stringAndCount matches the str*int and int*str operand shapes.
func stringAndCount(left, right objects.StepObject) (string, int64, bool) {
	if s, ok := left.(*objects.Str); ok {
		if n, ok := right.(*objects.Integer); ok {
			return s.Value, n.Value, true
		}
	}
	if n, ok := left.(*objects.Integer); ok {
		if s, ok := right.(*objects.Str); ok {
			return s.Value, n.Value, true
		}
	}
	return "", 0, false
}

// listAndCount matches the list*int and int*list operand shapes.
func listAndCount(left, right objects.StepObject) (*objects.List, int64, bool) {
	if l, ok := left.(*objects.List); ok {
		if n, ok := right.(*objects.Integer); ok {
			return l, n.Value, true
		}
	}
	if n, ok := left.(*objects.Integer); ok {
		if l, ok := right.(*objects.List); ok {
			return l, n.Value, true
		}
	}
	return nil, 0, false
}

// indexValue extracts an index from an integer or an integer-valued float.
// A non-integral float is not a valid index.
func indexValue(obj objects.StepObject) (int64, bool) {
	switch obj := obj.(type) {
	case *objects.Integer:
		return obj.Value, true
	case *objects.Float:
		if math.Trunc(obj.Value) == obj.Value && !math.IsInf(obj.Value, 0) {
			return int64(obj.Value), true
		}
		return 0, false
	default:
		return 0, false
	}
}
