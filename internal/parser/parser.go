// Package parser is a hand-written recursive-descent parser with a
// precedence ladder over binary operators, error recovery via
// synchronization, and assignment-target disambiguation.
package parser

import (
	"github.com/loxw-lang/loxw/internal/ast"
	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/token"
	"golang.org/x/exp/slices"
)

// syncKinds are the token types synchronize() treats as likely statement
// boundaries — the start of a new declaration.
var syncKinds = []token.Type{
	token.CLASS, token.FUN, token.VAR, token.FOR,
	token.IF, token.WHILE, token.PRINT, token.RETURN,
}

type Parser struct {
	tokens []token.Token
	pos    int
	errors []*diagnostics.SourceError
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs program → declaration* EOF, returning every statement parsed
// and every parse error recorded. A single malformed declaration does not
// abort the run: the parser synchronizes and keeps going so a run can
// surface more than one error.
func (p *Parser) Parse() ([]ast.Stmt, []*diagnostics.SourceError) {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts, p.errors
}

// --- token stream helpers ---

func (p *Parser) peek() token.Token     { return p.tokens[p.pos] }
func (p *Parser) previous() token.Token { return p.tokens[p.pos-1] }
func (p *Parser) atEnd() bool           { return p.peek().Type == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) check(t token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type or records a parse error
// anchored at the offending token.
func (p *Parser) consume(t token.Type, expect string) (token.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	tok := p.peek()
	p.addError(tok, diagnostics.ErrP001, "Expect "+expect+".")
	return tok, false
}

func (p *Parser) addError(tok token.Token, code diagnostics.Code, args ...interface{}) {
	p.errors = append(p.errors, diagnostics.New(diagnostics.PhaseParser, code, tok.Line, tok.Where(), args...))
}

// synchronize discards tokens until the token after a ';' or until the
// next token starts a new declaration/statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		if slices.Contains(syncKinds, p.peek().Type) {
			return
		}
		p.advance()
	}
}
