package interp

import (
	"time"

	"github.com/loxw-lang/loxw/internal/diagnostics"
)

// NativeFunction is a callable provided by the interpreter rather than
// written in the language.
type NativeFunction struct {
	Name string
	Args int
	Fn   func(in *Interpreter, args []Value) (Value, *diagnostics.SourceError)
}

func (n *NativeFunction) Type() ValueType { return NativeType }
func (n *NativeFunction) Inspect() string { return "<native fn>" }
func (n *NativeFunction) Arity() int      { return n.Args }

func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, *diagnostics.SourceError) {
	return n.Fn(in, args)
}

// defineGlobals installs the interpreter's only built-in: clock(), which
// returns the current wall-clock time in whole milliseconds.
func defineGlobals(globals *Environment) {
	globals.Define("clock", &NativeFunction{
		Name: "clock",
		Args: 0,
		Fn: func(in *Interpreter, args []Value) (Value, *diagnostics.SourceError) {
			return &Number{Value: float64(time.Now().UnixMilli())}, nil
		},
	})
}
