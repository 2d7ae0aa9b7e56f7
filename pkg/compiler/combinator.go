package compiler

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/vic/gostlc/pkg/lambda"
)

// Comb is a term of combinatory logic: a primitive combinator, a free
// reference, or an application.
type Comb interface {
	String() string
}

// Prim is a primitive combinator.
type Prim string

const (
	S Prim = "S" // S f g x = f x (g x)
	K Prim = "K" // K x y   = x
	I Prim = "I" // I x     = x
	B Prim = "B" // B f g x = f (g x)
	C Prim = "C" // C f g x = f x g
)

// Arity is the number of arguments p needs before it can fire.
func (p Prim) Arity() int {
	switch p {
	case I:
		return 1
	case K:
		return 2
	case S, B, C:
		return 3
	}
	panic(fmt.Sprintf("compiler: unknown combinator %q", string(p)))
}

func (p Prim) String() string {
	return string(p)
}

// Ref is a free variable of the compiled term.
type Ref struct {
	Name string
}

func (r Ref) String() string {
	return r.Name
}

// CApp represents an application.
type CApp struct {
	Fun Comb
	Arg Comb
}

func (a CApp) String() string {
	var b strings.Builder
	writeComb(&b, a, false)
	return b.String()
}

func writeComb(b *strings.Builder, c Comb, arg bool) {
	app, ok := c.(CApp)
	if !ok {
		b.WriteString(c.String())
		return
	}
	if arg {
		b.WriteByte('(')
	}
	writeComb(b, app.Fun, false)
	b.WriteByte(' ')
	writeComb(b, app.Arg, true)
	if arg {
		b.WriteByte(')')
	}
}

// Apply builds the left-nested application c a0 a1 ... an.
func Apply(c Comb, args ...Comb) Comb {
	for _, a := range args {
		c = CApp{Fun: c, Arg: a}
	}
	return c
}

func occurs(x string, c Comb) bool {
	switch c := c.(type) {
	case Ref:
		return c.Name == x
	case CApp:
		return occurs(x, c.Fun) || occurs(x, c.Arg)
	default:
		return false
	}
}

// Refs returns the free references of c.
func Refs(c Comb) *set.Set[string] {
	refs := set.New[string](0)
	var walk func(Comb)
	walk = func(c Comb) {
		switch c := c.(type) {
		case Ref:
			refs.Insert(c.Name)
		case CApp:
			walk(c.Fun)
			walk(c.Arg)
		}
	}
	walk(c)
	return refs
}

// Translate compiles an untyped lambda term to combinators by bracket
// abstraction. Inner abstractions are compiled first, so abstracting a
// variable only ever sees references and applications.
func Translate(term lambda.Term) Comb {
	switch t := term.(type) {
	case lambda.Var:
		return Ref{Name: t.Name}
	case lambda.App:
		return CApp{Fun: Translate(t.Fun), Arg: Translate(t.Arg)}
	case lambda.Abs:
		return abstract(t.Arg, Translate(t.Body))
	default:
		panic(fmt.Sprintf("compiler: unknown lambda term %T", term))
	}
}

// abstract computes [x]c, a combinator term that applied to a yields c
// with a for x.
func abstract(x string, c Comb) Comb {
	if !occurs(x, c) {
		return CApp{Fun: K, Arg: c}
	}
	switch c := c.(type) {
	case Ref:
		return I
	case CApp:
		// [x](M x) = M
		if r, ok := c.Arg.(Ref); ok && r.Name == x && !occurs(x, c.Fun) {
			return c.Fun
		}
		switch {
		case !occurs(x, c.Fun):
			return Apply(B, c.Fun, abstract(x, c.Arg))
		case !occurs(x, c.Arg):
			return Apply(C, abstract(x, c.Fun), c.Arg)
		default:
			return Apply(S, abstract(x, c.Fun), abstract(x, c.Arg))
		}
	}
	panic(fmt.Sprintf("compiler: cannot abstract %s over %T", x, c))
}
