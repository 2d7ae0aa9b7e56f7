package stlc

import "fmt"

// Term represents a simply-typed lambda calculus term.
type Term interface {
	isTerm()
	String() string
}

// Unit is the unit literal.
type Unit struct{}

// True is the boolean literal true.
type True struct{}

// False is the boolean literal false.
type False struct{}

// Var represents a variable usage.
type Var struct {
	Name string
}

// Fun represents a single-argument function whose parameter Param,
// of type Type, is bound in Body.
type Fun struct {
	Param string
	Type  Type
	Body  Term
}

// If represents a conditional.
type If struct {
	Cond Term
	Then Term
	Else Term
}

// App represents an application.
type App struct {
	Fn  Term
	Arg Term
}

func (Unit) isTerm()  {}
func (True) isTerm()  {}
func (False) isTerm() {}
func (Var) isTerm()   {}
func (Fun) isTerm()   {}
func (If) isTerm()    {}
func (App) isTerm()   {}

func (t Unit) String() string  { return Print(t, false) }
func (t True) String() string  { return Print(t, false) }
func (t False) String() string { return Print(t, false) }
func (t Var) String() string   { return Print(t, false) }
func (t Fun) String() string   { return Print(t, false) }
func (t If) String() string    { return Print(t, false) }
func (t App) String() string   { return Print(t, false) }

// Equal reports whether two terms are structurally equal.
func Equal(a, b Term) bool {
	return a == b
}

// IsValue reports whether term is a value: a literal or a function.
func IsValue(term Term) bool {
	switch term.(type) {
	case Unit, True, False, Fun:
		return true
	default:
		return false
	}
}

// Size is the number of nodes in term.
func Size(term Term) int {
	switch t := term.(type) {
	case Unit, True, False, Var:
		return 1
	case Fun:
		return 1 + Size(t.Body)
	case If:
		return 1 + Size(t.Cond) + Size(t.Then) + Size(t.Else)
	case App:
		return 1 + Size(t.Fn) + Size(t.Arg)
	default:
		panic(fmt.Sprintf("stlc: unknown term %T", term))
	}
}

// Depth is the height of term's syntax tree; leaves have depth 1.
func Depth(term Term) int {
	switch t := term.(type) {
	case Unit, True, False, Var:
		return 1
	case Fun:
		return 1 + Depth(t.Body)
	case If:
		return 1 + max(Depth(t.Cond), Depth(t.Then), Depth(t.Else))
	case App:
		return 1 + max(Depth(t.Fn), Depth(t.Arg))
	default:
		panic(fmt.Sprintf("stlc: unknown term %T", term))
	}
}
