package resolver

import (
	"github.com/loxw-lang/loxw/internal/ast"
	"github.com/loxw-lang/loxw/internal/diagnostics"
)

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case nil:
		// tolerate nil statements left by parse errors mid-recovery
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.VarStmt:
		global := r.peekScope() == nil
		r.declare(s.Name)
		if s.Initializer != nil {
			if global {
				// Globals are not tracked, but a global initializer still
				// may not read the variable it declares: resolve it inside
				// a throwaway scope holding that name as "not yet defined".
				r.beginScope()
				r.peekScope()[s.Name.Lexeme] = false
			}
			r.resolveExpr(s.Initializer)
			if global {
				r.endScope()
			}
		}
		r.define(s.Name)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, funcFunction)
	case *ast.ReturnStmt:
		if r.currentFunction == funcNone {
			r.addError(s.Keyword, diagnostics.ErrR003)
		}
		if s.Value != nil {
			if r.currentFunction == funcInitializer {
				r.addError(s.Keyword, diagnostics.ErrR004)
			}
			r.resolveExpr(s.Value)
		}
	case *ast.ClassStmt:
		r.resolveClass(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, p := range fn.Parameters {
		r.declare(p.Name)
		r.define(p.Name)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveClass(c *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.addError(c.Superclass.Name, diagnostics.ErrR008)
		} else {
			r.resolveExpr(c.Superclass)
		}
		r.currentClass = classSubclass

		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range c.Methods {
		declType := funcMethod
		if method.Name.Lexeme == "init" {
			declType = funcInitializer
		}
		r.resolveFunction(method, declType)
	}

	r.endScope()

	if c.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}
