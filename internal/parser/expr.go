package parser

import (
	"github.com/loxw-lang/loxw/internal/ast"
	"github.com/loxw-lang/loxw/internal/config"
	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/token"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → (call ".")? IDENT "=" assignment | logic_or
//
// The left-hand side is parsed as an ordinary expression first; only once
// an "=" follows do we check that it was a valid assignment target. This
// lets `a.b.c = 1` and `a = 1` share a parse path without backtracking.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value)
		default:
			p.addError(equals, diagnostics.ErrP002)
			return value
		}
	}

	return expr
}

// logic_or → logic_and ("or" logic_and)*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

// logic_and → equality ("and" equality)*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

// equality → comparison (("!="|"==") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// comparison → term ((">"|">="|"<"|"<=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// term → factor (("-"|"+") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// factor → unary (("/"|"*") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// unary → ("!"|"-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(op, right)
	}
	return p.call()
}

// call → primary ( "(" args? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name, ok := p.consume(token.IDENT, "property name after '.'")
			if !ok {
				return expr
			}
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= config.MaxParams {
				p.addError(p.peek(), diagnostics.ErrP003)
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, _ := p.consume(token.RPAREN, "')' after arguments")
	return ast.NewCall(callee, paren, args)
}

// primary → literal | "this" | "super" "." IDENT | IDENT
//         | "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(p.previous(), false)
	case p.match(token.TRUE):
		return ast.NewLiteral(p.previous(), true)
	case p.match(token.NIL):
		return ast.NewLiteral(p.previous(), nil)
	case p.match(token.NUMBER, token.STRING):
		tok := p.previous()
		return ast.NewLiteral(tok, tok.Literal)
	case p.match(token.SUPER):
		keyword := p.previous()
		if _, ok := p.consume(token.DOT, "'.' after 'super'"); !ok {
			return ast.NewLiteral(keyword, nil)
		}
		method, ok := p.consume(token.IDENT, "superclass method name")
		if !ok {
			return ast.NewLiteral(keyword, nil)
		}
		return ast.NewSuper(keyword, method)
	case p.match(token.THIS):
		return ast.NewThis(p.previous())
	case p.match(token.IDENT):
		return ast.NewVariable(p.previous())
	case p.match(token.LPAREN):
		tok := p.previous()
		expr := p.expression()
		if _, ok := p.consume(token.RPAREN, "')' after expression"); !ok {
			return ast.NewGrouping(tok, expr)
		}
		return ast.NewGrouping(tok, expr)
	default:
		tok := p.peek()
		p.addError(tok, diagnostics.ErrP001, "Expect expression.")
		p.advance()
		return ast.NewLiteral(tok, nil)
	}
}
