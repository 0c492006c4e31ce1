package interp

import (
	"github.com/dolthub/swiss"
	"github.com/google/uuid"
	"github.com/loxw-lang/loxw/internal/diagnostics"
	"github.com/loxw-lang/loxw/internal/token"
)

// Instance is a class instance. Instances are shared objects: multiple
// variables, closures, or fields may reference the same one, and
// mutations through any reference are visible through all of them — this
// is an ordinary Go pointer, so that sharing (and any cycles it forms
// with other instances or with closures that capture it) falls out for
// free.
//
// ID exists only for diagnostics: it gives a reference-cycle-tolerant,
// address-independent label to use when logging or debug-printing a
// graph of instances, without the evaluator ever needing to branch on it.
type Instance struct {
	Class  *Class
	Fields *swiss.Map[string, Value]
	ID     uuid.UUID
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: swiss.NewMap[string, Value](4), ID: uuid.New()}
}

func (i *Instance) Type() ValueType { return InstanceType }
func (i *Instance) Inspect() string { return i.Class.Name + " instance" }

// Get reads a field first, then a bound method; either miss is a runtime
// error.
func (i *Instance) Get(name token.Token) (Value, *diagnostics.SourceError) {
	if v, ok := i.Fields.Get(name.Lexeme); ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, diagnostics.New(diagnostics.PhaseRuntime, diagnostics.ErrX002, name.Line, name.Where(), name.Lexeme)
}

func (i *Instance) Set(name token.Token, value Value) {
	i.Fields.Put(name.Lexeme, value)
}
