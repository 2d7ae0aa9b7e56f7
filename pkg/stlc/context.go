package stlc

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Binding associates an identifier with its type.
type Binding struct {
	Name string
	Type Type
}

// Context is an immutable sequence of bindings, most recent first.
//
// The nil *Context is the empty context. Push returns a new context that
// shares its tail with the receiver, so extending a context while checking a
// function body never affects the caller's view of it.
type Context struct {
	binding Binding
	next    *Context
	size    int
}

// NewContext builds a context from bindings listed most recent first.
func NewContext(bindings ...Binding) *Context {
	var ctx *Context
	for i := len(bindings) - 1; i >= 0; i-- {
		ctx = ctx.Push(bindings[i].Name, bindings[i].Type)
	}
	return ctx
}

// Push returns c extended with name bound to ty. The new binding shadows any
// earlier binding of the same name.
func (c *Context) Push(name string, ty Type) *Context {
	return &Context{binding: Binding{Name: name, Type: ty}, next: c, size: c.Len() + 1}
}

// Lookup returns the type of the most recent binding of name.
func (c *Context) Lookup(name string) (Type, bool) {
	for n := c; n != nil; n = n.next {
		if n.binding.Name == name {
			return n.binding.Type, true
		}
	}
	return nil, false
}

// Len is the number of bindings, shadowed ones included.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

// Bindings lists all bindings, most recent first.
func (c *Context) Bindings() []Binding {
	res := make([]Binding, 0, c.Len())
	for n := c; n != nil; n = n.next {
		res = append(res, n.binding)
	}
	return res
}

// Visible lists the bindings that are not shadowed, most recent first.
func (c *Context) Visible() []Binding {
	var res []Binding
	for _, b := range c.Bindings() {
		if !slices.ContainsFunc(res, func(v Binding) bool { return v.Name == b.Name }) {
			res = append(res, b)
		}
	}
	return res
}

func (c *Context) String() string {
	parts := make([]string, 0, c.Len())
	for _, b := range c.Bindings() {
		parts = append(parts, b.Name+" : "+PrintType(b.Type))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
