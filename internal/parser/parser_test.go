package parser

import (
	"testing"

	"github.com/loxw-lang/loxw/internal/ast"
	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/scanner"
)

func parse(t *testing.T, source string) ([]ast.Stmt, []*diagnostics.SourceError) {
	t.Helper()
	tokens, errs := scanner.New(source).Scan()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	return New(tokens).Parse()
}

func TestParseVarDeclaration(t *testing.T) {
	stmts, errs := parse(t, `var a = 1;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	v, ok := stmts[0].(*ast.VarStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.VarStmt", stmts[0])
	}
	if v.Name.Lexeme != "a" {
		t.Errorf("got name %q, want %q", v.Name.Lexeme, "a")
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, errs := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	outer, ok := stmts[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.BlockStmt", stmts[0])
	}
	if len(outer.Statements) != 2 {
		t.Fatalf("got %d statements in desugared block, want 2", len(outer.Statements))
	}
	if _, ok := outer.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("first statement is %T, want *ast.VarStmt", outer.Statements[0])
	}
	while, ok := outer.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement is %T, want *ast.WhileStmt", outer.Statements[1])
	}
	body, ok := while.Body.(*ast.BlockStmt)
	if !ok || len(body.Statements) != 2 {
		t.Fatalf("while body not desugared with trailing increment: %#v", while.Body)
	}
}

func TestParseInvalidAssignmentTargetRecovers(t *testing.T) {
	stmts, errs := parse(t, `1 = 2; print 3;`)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Code != diagnostics.ErrP002 {
		t.Errorf("got code %s, want %s", errs[0].Code, diagnostics.ErrP002)
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2 (parser should keep going)", len(stmts))
	}
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts, errs := parse(t, `class B < A { greet() { print "hi"; } }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	cls, ok := stmts[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassStmt", stmts[0])
	}
	if cls.Superclass == nil || cls.Superclass.Name.Lexeme != "A" {
		t.Errorf("got superclass %v, want A", cls.Superclass)
	}
	if len(cls.Methods) != 1 || cls.Methods[0].Name.Lexeme != "greet" {
		t.Errorf("got methods %v, want [greet]", cls.Methods)
	}
}

func TestParseSynchronizeSkipsToNextStatement(t *testing.T) {
	// `var 1 = 2;` is malformed (no identifier); synchronize should
	// discard tokens up through the next ';' and resume cleanly at the
	// second declaration.
	stmts, errs := parse(t, `var 1 = 2; var a = 3;`)
	if len(errs) == 0 {
		t.Fatalf("expected at least one error")
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1 (the malformed declaration is dropped): %#v", len(stmts), stmts)
	}
	v, ok := stmts[0].(*ast.VarStmt)
	if !ok || v.Name.Lexeme != "a" {
		t.Errorf("expected recovery to reach `var a = 3;`, got: %#v", stmts[0])
	}
}
