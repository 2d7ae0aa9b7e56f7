package lambda

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
)

// Term represents an untyped lambda calculus term.
type Term interface {
	String() string
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (v Var) String() string {
	return v.Name
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Arg  string
	Body Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(%s: %s)", a.Arg, a.Body)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// FreeVars returns the names occurring unbound in term.
func FreeVars(term Term) *set.Set[string] {
	switch t := term.(type) {
	case Var:
		return set.From([]string{t.Name})
	case Abs:
		free := FreeVars(t.Body)
		free.Remove(t.Arg)
		return free
	case App:
		free := FreeVars(t.Fun)
		free.InsertSet(FreeVars(t.Arg))
		return free
	default:
		panic(fmt.Sprintf("lambda: unknown term %T", term))
	}
}

// Normalize renames bound variables to x0, x1, ... in binding order and
// free variables to "<free>", so alpha-equivalent terms normalize to the
// same term.
func Normalize(term Term) Term {
	bindings := make(map[string]string)
	var idx int
	var walk func(Term) Term
	walk = func(tt Term) Term {
		switch v := tt.(type) {
		case Var:
			if name, ok := bindings[v.Name]; ok {
				return Var{Name: name}
			}
			return Var{Name: "<free>"}
		case Abs:
			canon := fmt.Sprintf("x%d", idx)
			idx++
			// shadowing: save old if any
			old, had := bindings[v.Arg]
			bindings[v.Arg] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Arg] = old
			} else {
				delete(bindings, v.Arg)
			}
			return Abs{Arg: canon, Body: body}
		case App:
			return App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			return tt
		}
	}
	return walk(term)
}
