package resolver

import (
	"testing"

	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/parser"
	"github.com/loxw-lang/loxw/internal/scanner"
)

func resolveSource(t *testing.T, source string) (map[int]int, []*diagnostics.SourceError) {
	t.Helper()
	tokens, scanErrs := scanner.New(source).Scan()
	if len(scanErrs) != 0 {
		t.Fatalf("unexpected scan errors: %v", scanErrs)
	}
	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	return Resolve(stmts)
}

func TestResolveLocalVariableDistance(t *testing.T) {
	locals, errs := resolveSource(t, `
		var a = "global";
		{
			var b = "outer";
			{
				print b;
			}
		}
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	// `b` is declared one block out from the print statement referencing it.
	found := false
	for _, distance := range locals {
		if distance == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a resolved local at distance 1, got %v", locals)
	}
}

func TestResolveSelfReferentialInitializerIsError(t *testing.T) {
	_, errs := resolveSource(t, `var a = a;`)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrR002 {
		t.Fatalf("got %v, want one ErrR002", errs)
	}
}

func TestResolveReturnOutsideFunctionIsError(t *testing.T) {
	_, errs := resolveSource(t, `return 1;`)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrR003 {
		t.Fatalf("got %v, want one ErrR003", errs)
	}
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	_, errs := resolveSource(t, `class Foo { init() { return 1; } }`)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrR004 {
		t.Fatalf("got %v, want one ErrR004", errs)
	}
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	_, errs := resolveSource(t, `print this;`)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrR005 {
		t.Fatalf("got %v, want one ErrR005", errs)
	}
}

func TestResolveSuperWithoutSuperclassIsError(t *testing.T) {
	_, errs := resolveSource(t, `class A { foo() { super.foo(); } }`)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrR007 {
		t.Fatalf("got %v, want one ErrR007", errs)
	}
}

func TestResolveClassInheritingFromItselfIsError(t *testing.T) {
	_, errs := resolveSource(t, `class A < A {}`)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrR008 {
		t.Fatalf("got %v, want one ErrR008", errs)
	}
}

func TestResolveRedeclarationInSameScopeIsError(t *testing.T) {
	_, errs := resolveSource(t, `{ var a = 1; var a = 2; }`)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrR001 {
		t.Fatalf("got %v, want one ErrR001", errs)
	}
}

func TestResolveGlobalRedeclarationIsAllowed(t *testing.T) {
	_, errs := resolveSource(t, `var a = 1; var a = 2;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors for global redeclaration: %v", errs)
	}
}

func TestResolveValidSubclassMethodBody(t *testing.T) {
	_, errs := resolveSource(t, `
		class A { greet() { print "a"; } }
		class B < A { greet() { super.greet(); } }
	`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestResolveVariableDeclaredButInitializerShadowsOuter(t *testing.T) {
	locals, errs := resolveSource(t, `
		var a = "outer";
		fun f() {
			var a = a;
		}
	`)
	if len(errs) != 1 || errs[0].Code != diagnostics.ErrR002 {
		t.Fatalf("got %v, want one ErrR002 (inner `a` refers to its own, still-undefined binding)", errs)
	}
	_ = locals
}
