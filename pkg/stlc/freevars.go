package stlc

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
	"golang.org/x/exp/slices"
)

// FreeVars returns the identifiers occurring unbound in term.
func FreeVars(term Term) *set.Set[string] {
	switch t := term.(type) {
	case Unit, True, False:
		return set.New[string](0)
	case Var:
		return set.From([]string{t.Name})
	case Fun:
		free := FreeVars(t.Body)
		free.Remove(t.Param)
		return free
	case If:
		free := FreeVars(t.Cond)
		free.InsertSet(FreeVars(t.Then))
		free.InsertSet(FreeVars(t.Else))
		return free
	case App:
		free := FreeVars(t.Fn)
		free.InsertSet(FreeVars(t.Arg))
		return free
	default:
		panic(fmt.Sprintf("stlc: unknown term %T", term))
	}
}

// SortedFreeVars lists FreeVars(term) in lexical order.
func SortedFreeVars(term Term) []string {
	names := FreeVars(term).Slice()
	slices.Sort(names)
	return names
}

// IsClosed reports whether term has no free variables.
func IsClosed(term Term) bool {
	return FreeVars(term).Empty()
}

// Names returns every identifier in term, binders included.
func Names(term Term) *set.Set[string] {
	names := set.New[string](0)
	collectNames(term, names)
	return names
}

func collectNames(term Term, names *set.Set[string]) {
	switch t := term.(type) {
	case Unit, True, False:
	case Var:
		names.Insert(t.Name)
	case Fun:
		names.Insert(t.Param)
		collectNames(t.Body, names)
	case If:
		collectNames(t.Cond, names)
		collectNames(t.Then, names)
		collectNames(t.Else, names)
	case App:
		collectNames(t.Fn, names)
		collectNames(t.Arg, names)
	default:
		panic(fmt.Sprintf("stlc: unknown term %T", term))
	}
}

// Rename replaces every occurrence of from with to, binders included. It does
// not stop at a binder that shadows from: the binder and its body are renamed
// as well. Substitution relies on exactly this when it alpha-converts a whole
// function to a fresh parameter name.
func Rename(from, to string, term Term) Term {
	switch t := term.(type) {
	case Unit, True, False:
		return term
	case Var:
		if t.Name == from {
			return Var{Name: to}
		}
		return term
	case Fun:
		param := t.Param
		if param == from {
			param = to
		}
		return Fun{Param: param, Type: t.Type, Body: Rename(from, to, t.Body)}
	case If:
		return If{
			Cond: Rename(from, to, t.Cond),
			Then: Rename(from, to, t.Then),
			Else: Rename(from, to, t.Else),
		}
	case App:
		return App{Fn: Rename(from, to, t.Fn), Arg: Rename(from, to, t.Arg)}
	default:
		panic(fmt.Sprintf("stlc: unknown term %T", term))
	}
}
