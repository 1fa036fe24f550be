/*
File    : step/parser/parser_statements.go
Project : Step interpreter
*/
package parser

import "github.com/step-lang/step/lexer"

// parseStatement dispatches on the current token to the statement parsers.
// On return the current token is the last token of the statement (the
// terminating ';' or the closing '}'); the caller advances past it.
//
// Statement forms:
//
//	;                       empty statement
//	expr ;                  expression statement
//	if (e) { ... }          with optional else { ... }
//	while (e) { ... }
//	break ;  continue ;
//	return ;  return e ;
//	def name(p1, p2) { ... }
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.SEMICOLON_DELIM:
		return &EmptyStatementNode{Token: par.CurrToken}
	case lexer.IF_KEY:
		return par.parseIfStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.BREAK_KEY:
		return par.parseBreakStatement()
	case lexer.CONTINUE_KEY:
		return par.parseContinueStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case lexer.DEF_KEY:
		return par.parseFunctionStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseExpressionStatement parses an expression followed by its mandatory
// terminating semicolon.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return expr
}

// parseBlockStatement parses { stmt* }. The current token is the opening
// brace; on return it is the closing brace.
func (par *Parser) parseBlockStatement() (BlockStatementNode, bool) {
	block := BlockStatementNode{Statements: make([]StatementNode, 0)}

	for par.NextToken.Type != lexer.RIGHT_BRACE {
		if par.NextToken.Type == lexer.EOF_TYPE {
			par.addErrorAt(par.NextToken, "unterminated block, expected %q", "}")
			return block, false
		}
		par.advance()
		stmt := par.parseStatement()
		if stmt == nil {
			return block, false
		}
		block.Statements = append(block.Statements, stmt)
	}

	par.advance() // onto '}'
	return block, true
}

// parseIfStatement parses if (cond) { ... } with an optional else { ... }.
func (par *Parser) parseIfStatement() StatementNode {
	node := &IfStatementNode{IfToken: par.CurrToken, ElseBlock: *EMPTY_BLOCK}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	node.Condition = par.parseExpression(MINIMUM_PRIORITY)
	if node.Condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	thenBlock, ok := par.parseBlockStatement()
	if !ok {
		return nil
	}
	node.ThenBlock = thenBlock

	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance()
		if !par.expectAdvance(lexer.LEFT_BRACE) {
			return nil
		}
		elseBlock, ok := par.parseBlockStatement()
		if !ok {
			return nil
		}
		node.ElseBlock = elseBlock
	}

	return node
}

// parseWhileStatement parses while (cond) { ... }.
func (par *Parser) parseWhileStatement() StatementNode {
	node := &WhileStatementNode{WhileToken: par.CurrToken}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance()
	node.Condition = par.parseExpression(MINIMUM_PRIORITY)
	if node.Condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	body, ok := par.parseBlockStatement()
	if !ok {
		return nil
	}
	node.Body = body

	return node
}

// parseBreakStatement parses break;
func (par *Parser) parseBreakStatement() StatementNode {
	node := &BreakStatementNode{Token: par.CurrToken}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return node
}

// parseContinueStatement parses continue;
func (par *Parser) parseContinueStatement() StatementNode {
	node := &ContinueStatementNode{Token: par.CurrToken}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return node
}

// parseReturnStatement parses return; or return expr;
func (par *Parser) parseReturnStatement() StatementNode {
	node := &ReturnStatementNode{ReturnToken: par.CurrToken}

	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
		return node
	}

	par.advance()
	node.Expr = par.parseExpression(MINIMUM_PRIORITY)
	if node.Expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return node
}

// parseFunctionStatement parses def name(p1, p2, ...) { ... }.
// Parameters are bare identifiers; duplicates are a parse error.
func (par *Parser) parseFunctionStatement() StatementNode {
	node := &FunctionStatementNode{
		DefToken:   par.CurrToken,
		FuncParams: make([]*IdentifierExpressionNode, 0),
	}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	node.FuncName = IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	seen := make(map[string]bool)
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
	} else {
		for {
			if !par.expectAdvance(lexer.IDENTIFIER_ID) {
				return nil
			}
			param := &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
			if seen[param.Name] {
				par.addErrorAt(par.CurrToken, "duplicate parameter name: (%s)", param.Name)
				return nil
			}
			seen[param.Name] = true
			node.FuncParams = append(node.FuncParams, param)

			if par.NextToken.Type == lexer.COMMA_DELIM {
				par.advance()
				continue
			}
			break
		}
		if !par.expectAdvance(lexer.RIGHT_PAREN) {
			return nil
		}
	}

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	body, ok := par.parseBlockStatement()
	if !ok {
		return nil
	}
	node.FuncBody = body

	return node
}
