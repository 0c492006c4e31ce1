package scanner

import (
	"testing"

	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/token"
)

func typesOf(tokens []token.Token) []token.Type {
	var types []token.Type
	for _, t := range tokens {
		types = append(types, t.Type)
	}
	return types
}

func TestScanPunctuation(t *testing.T) {
	tokens, errs := New("(){},.-+;*/").Scan()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.SLASH, token.EOF,
	}
	got := typesOf(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v tokens, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanTwoCharOperators(t *testing.T) {
	tokens, errs := New("!= == <= >= ! = < >").Scan()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []token.Type{
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.BANG, token.EQUAL, token.LESS, token.GREATER, token.EOF,
	}
	got := typesOf(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanLineComment(t *testing.T) {
	tokens, errs := New("1 // ignored\n2").Scan()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	got := typesOf(tokens)
	want := []token.Type{token.NUMBER, token.NUMBER, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if tokens[1].Line != 2 {
		t.Errorf("expected second number on line 2, got line %d", tokens[1].Line)
	}
}

func TestScanString(t *testing.T) {
	tokens, errs := New(`"hello world"`).Scan()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Type != token.STRING {
		t.Fatalf("got %s, want STRING", tokens[0].Type)
	}
	if tokens[0].Literal != "hello world" {
		t.Errorf("got literal %q, want %q", tokens[0].Literal, "hello world")
	}
}

func TestScanUnterminatedString(t *testing.T) {
	_, errs := New(`"unterminated`).Scan()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Code != diagnostics.ErrS002 {
		t.Errorf("got code %s, want %s", errs[0].Code, diagnostics.ErrS002)
	}
}

func TestScanNumber(t *testing.T) {
	tokens, _ := New("3.14").Scan()
	n, ok := tokens[0].Literal.(float64)
	if !ok || n != 3.14 {
		t.Errorf("got literal %v, want 3.14", tokens[0].Literal)
	}
}

func TestScanKeywordsVsIdentifiers(t *testing.T) {
	tokens, _ := New("class fun counter").Scan()
	want := []token.Type{token.CLASS, token.FUN, token.IDENT, token.EOF}
	got := typesOf(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, errs := New("@").Scan()
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrS001 {
		t.Fatalf("got %v, want one ErrS001", errs)
	}
}
