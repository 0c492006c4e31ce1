package resolver

import (
	"github.com/loxw-lang/loxw/internal/ast"
	"github.com/loxw-lang/loxw/internal/diagnostics"
)

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case nil:
	case *ast.Literal:
		// nothing to resolve
	case *ast.Grouping:
		r.resolveExpr(e.Inner)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if sc := r.peekScope(); sc != nil {
			if defined, ok := sc[e.Name.Lexeme]; ok && !defined {
				r.addError(e.Name, diagnostics.ErrR002)
			}
		}
		r.resolveLocal(e.ID(), e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID(), e.Name)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.currentClass == classNone {
			r.addError(e.Keyword, diagnostics.ErrR005)
			return
		}
		r.resolveLocal(e.ID(), e.Keyword)
	case *ast.Super:
		if r.currentClass == classNone {
			r.addError(e.Keyword, diagnostics.ErrR006)
			return
		}
		if r.currentClass != classSubclass {
			r.addError(e.Keyword, diagnostics.ErrR007)
			return
		}
		r.resolveLocal(e.ID(), e.Keyword)
	default:
		panic("resolver: unhandled expression type")
	}
}
