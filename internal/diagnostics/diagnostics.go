// Package diagnostics defines the single error type every pipeline stage
// reports through: a phase-tagged, code-tagged SourceError, rather than
// bare fmt.Errorf strings.
package diagnostics

import "fmt"

// Phase identifies which pipeline stage raised an error.
type Phase string

const (
	PhaseScanner  Phase = "scanner"
	PhaseParser   Phase = "parser"
	PhaseResolver Phase = "resolver"
	PhaseRuntime  Phase = "runtime"
)

// Code is a stable identifier for a specific kind of error, independent of
// its rendered message.
type Code string

const (
	// Scanner
	ErrS001 Code = "S001" // unexpected character
	ErrS002 Code = "S002" // unterminated string

	// Parser
	ErrP001 Code = "P001" // expected token
	ErrP002 Code = "P002" // invalid assignment target
	ErrP003 Code = "P003" // too many arguments
	ErrP004 Code = "P004" // too many parameters

	// Resolver
	ErrR001 Code = "R001" // redeclaration in the same scope
	ErrR002 Code = "R002" // self-referential initializer
	ErrR003 Code = "R003" // return outside a function
	ErrR004 Code = "R004" // value returned from an initializer
	ErrR005 Code = "R005" // this outside a class
	ErrR006 Code = "R006" // super outside a class
	ErrR007 Code = "R007" // super in a class with no superclass
	ErrR008 Code = "R008" // class inherits from itself

	// Runtime
	ErrX001 Code = "X001" // undefined variable
	ErrX002 Code = "X002" // undefined property
	ErrX003 Code = "X003" // operands must be numbers
	ErrX004 Code = "X004" // only instances have properties (get)
	ErrX005 Code = "X005" // can only call functions and classes
	ErrX006 Code = "X006" // wrong argument count
	ErrX007 Code = "X007" // superclass must be a class
	ErrX008 Code = "X008" // only instances have fields (set)
)

var templates = map[Code]string{
	ErrS001: "Unexpected character.",
	ErrS002: "Unterminated string.",

	ErrP001: "%s",
	ErrP002: "Invalid assignment target.",
	ErrP003: "Can't have more than 255 arguments.",
	ErrP004: "Can't have more than 255 parameters.",

	ErrR001: "Already a variable with this name in this scope.",
	ErrR002: "Can't read local variable in its own initializer.",
	ErrR003: "Can't return from top-level code.",
	ErrR004: "Can't return a value from an initializer.",
	ErrR005: "Can't use 'this' outside of a class.",
	ErrR006: "Can't use 'super' outside of a class.",
	ErrR007: "Can't use 'super' in a class with no superclass.",
	ErrR008: "A class can't inherit from itself.",

	ErrX001: "Undefined variable %s.",
	ErrX002: "Undefined property %s.",
	ErrX003: "Operands must be numbers.",
	ErrX004: "Only instances have properties.",
	ErrX005: "Can only call functions and classes.",
	ErrX006: "Expected %d arguments but got %d.",
	ErrX007: "Superclass must be a class.",
	ErrX008: "Only instances have fields.",
}

// SourceError is the error type every stage of the pipeline reports
// through. Line and Where locate it for the reporter sink; Phase and Code
// classify it for tests and for the driver's exit-code decision.
type SourceError struct {
	Phase Phase
	Code  Code
	Line  int
	Where string // lexeme or "end" for EOF, empty when not token-anchored
	Args  []interface{}
}

func New(phase Phase, code Code, line int, where string, args ...interface{}) *SourceError {
	return &SourceError{Phase: phase, Code: code, Line: line, Where: where, Args: args}
}

func (e *SourceError) Message() string {
	tmpl, ok := templates[e.Code]
	if !ok {
		return string(e.Code)
	}
	if len(e.Args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, e.Args...)
}

func (e *SourceError) Error() string {
	if e.Where != "" {
		return fmt.Sprintf("[line %d] Error at %s: %s", e.Line, e.Where, e.Message())
	}
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message())
}

// IsStatic reports whether the error was raised before evaluation began
// (scanner, parser or resolver), as opposed to during tree-walking.
func (e *SourceError) IsStatic() bool {
	return e.Phase != PhaseRuntime
}
