package parser

import (
	"github.com/loxw-lang/loxw/internal/ast"
	"github.com/loxw-lang/loxw/internal/config"
	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/token"
)

// declaration → classDecl | funDecl | varDecl | statement
func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	var ok bool = true

	switch {
	case p.match(token.CLASS):
		stmt, ok = p.classDeclaration()
	case p.match(token.FUN):
		stmt, ok = p.function("function")
	case p.match(token.VAR):
		stmt, ok = p.varDeclaration()
	default:
		stmt = p.statement()
		ok = stmt != nil
	}

	if !ok {
		p.synchronize()
		return nil
	}
	return stmt
}

// classDecl → "class" IDENT ("<" IDENT)? "{" function* "}"
func (p *Parser) classDeclaration() (ast.Stmt, bool) {
	name, ok := p.consume(token.IDENT, "class name")
	if !ok {
		return nil, false
	}

	var superclass *ast.Variable
	if p.match(token.LESS) {
		superName, ok := p.consume(token.IDENT, "superclass name")
		if !ok {
			return nil, false
		}
		superclass = ast.NewVariable(superName)
	}

	if _, ok := p.consume(token.LBRACE, "'{' before class body"); !ok {
		return nil, false
	}

	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		method, ok := p.function("method")
		if !ok {
			return nil, false
		}
		methods = append(methods, method.(*ast.FunctionStmt))
	}

	if _, ok := p.consume(token.RBRACE, "'}' after class body"); !ok {
		return nil, false
	}

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}, true
}

// funDecl/function → IDENT "(" params? ")" block
func (p *Parser) function(kind string) (ast.Stmt, bool) {
	name, ok := p.consume(token.IDENT, kind+" name")
	if !ok {
		return nil, false
	}

	if _, ok := p.consume(token.LPAREN, "'(' after "+kind+" name"); !ok {
		return nil, false
	}
	var params []ast.Parameter
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= config.MaxParams {
				p.addError(p.peek(), diagnostics.ErrP004)
			}
			pname, ok := p.consume(token.IDENT, "parameter name")
			if !ok {
				return nil, false
			}
			params = append(params, ast.Parameter{Name: pname})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, ok := p.consume(token.RPAREN, "')' after parameters"); !ok {
		return nil, false
	}

	if _, ok := p.consume(token.LBRACE, "'{' before "+kind+" body"); !ok {
		return nil, false
	}
	body, ok := p.block()
	if !ok {
		return nil, false
	}

	return &ast.FunctionStmt{Name: name, Parameters: params, Body: body}, true
}

// varDecl → "var" IDENT ("=" expression)? ";"
func (p *Parser) varDeclaration() (ast.Stmt, bool) {
	name, ok := p.consume(token.IDENT, "variable name")
	if !ok {
		return nil, false
	}

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}

	if _, ok := p.consume(token.SEMICOLON, "';' after variable declaration"); !ok {
		return nil, false
	}
	return &ast.VarStmt{Name: name, Initializer: init}, true
}

// statement → exprStmt | forStmt | ifStmt | printStmt | returnStmt
//           | whileStmt | block
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LBRACE):
		stmts, ok := p.block()
		if !ok {
			return nil
		}
		return &ast.BlockStmt{Statements: stmts}
	default:
		return p.expressionStatement()
	}
}

// block → "{" declaration* "}" ; the leading "{" is already consumed.
func (p *Parser) block() ([]ast.Stmt, bool) {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	if _, ok := p.consume(token.RBRACE, "'}' after block"); !ok {
		return nil, false
	}
	return stmts, true
}

// ifStmt → "if" "(" expression ")" statement ("else" statement)?
func (p *Parser) ifStatement() ast.Stmt {
	if _, ok := p.consume(token.LPAREN, "'(' after 'if'"); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.consume(token.RPAREN, "')' after if condition"); !ok {
		return nil
	}
	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: cond, Then: then, Else: elseBranch}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	if _, ok := p.consume(token.LPAREN, "'(' after 'while'"); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.consume(token.RPAREN, "')' after condition"); !ok {
		return nil
	}
	body := p.statement()
	return &ast.WhileStmt{Condition: cond, Body: body}
}

// forStmt → "for" "(" (varDecl | exprStmt | ";") expression? ";"
//                     expression? ")" statement
//
// Desugars to { init; while (cond) { body; inc; } } at parse time: the
// evaluator never sees a for-loop node.
func (p *Parser) forStatement() ast.Stmt {
	if _, ok := p.consume(token.LPAREN, "'(' after 'for'"); !ok {
		return nil
	}

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.VAR):
		init, _ = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	if _, ok := p.consume(token.SEMICOLON, "';' after loop condition"); !ok {
		return nil
	}

	var increment ast.Expr
	if !p.check(token.RPAREN) {
		increment = p.expression()
	}
	if _, ok := p.consume(token.RPAREN, "')' after for clauses"); !ok {
		return nil
	}

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}

	if cond == nil {
		cond = ast.NewLiteral(token.Token{Type: token.TRUE, Lexeme: "true"}, true)
	}
	body = &ast.WhileStmt{Condition: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{init, body}}
	}
	return body
}

// printStmt → "print" expression ";"
func (p *Parser) printStatement() ast.Stmt {
	tok := p.previous()
	value := p.expression()
	if _, ok := p.consume(token.SEMICOLON, "';' after value"); !ok {
		return nil
	}
	return &ast.PrintStmt{Token: tok, Expression: value}
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	if _, ok := p.consume(token.SEMICOLON, "';' after return value"); !ok {
		return nil
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// exprStmt → expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	if _, ok := p.consume(token.SEMICOLON, "';' after expression"); !ok {
		return nil
	}
	return &ast.ExpressionStmt{Expression: expr}
}
