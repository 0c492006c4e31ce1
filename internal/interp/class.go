package interp

import (
	"github.com/dolthub/swiss"
	"github.com/loxw-lang/loxw/internal/diagnostics"
)

// Class is a runtime class value: a name, an optional superclass, and its
// own methods (inherited methods are reached by walking Superclass, not
// copied in).
type Class struct {
	Name       string
	Superclass *Class
	Methods    *swiss.Map[string, *Function]
}

func NewClass(name string, superclass *Class) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: swiss.NewMap[string, *Function](4)}
}

func (c *Class) Type() ValueType { return ClassType }
func (c *Class) Inspect() string { return c.Name }

// FindMethod searches c's own methods, then its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods.Get(name); ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is init's arity, or 0 if the class declares no initializer.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance and, if the class declares an init
// method, binds and invokes it with the supplied arguments before
// returning the instance.
func (c *Class) Call(in *Interpreter, args []Value) (Value, *diagnostics.SourceError) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
