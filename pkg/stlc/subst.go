package stlc

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"
)

// Substitute replaces the free occurrences of x in term with s, renaming
// binders of term where they would capture a free variable of s.
func Substitute(x string, s, term Term) Term {
	var m machine
	return m.subst(x, s, FreeVars(s), term)
}

// subst is Substitute on an explicit machine; free is FreeVars(s).
func (m *machine) subst(x string, s Term, free *set.Set[string], term Term) Term {
	switch t := term.(type) {
	case Unit, True, False:
		return term
	case Var:
		if t.Name == x {
			return s
		}
		return term
	case Fun:
		if t.Param == x {
			return term
		}
		if free.Contains(t.Param) {
			avoid := Names(t)
			avoid.InsertSet(free)
			avoid.Insert(x)
			z := m.fresh(avoid)
			renamed := Rename(t.Param, z, t).(Fun)
			return Fun{Param: renamed.Param, Type: renamed.Type, Body: m.subst(x, s, free, renamed.Body)}
		}
		return Fun{Param: t.Param, Type: t.Type, Body: m.subst(x, s, free, t.Body)}
	case If:
		cond := m.subst(x, s, free, t.Cond)
		then := m.subst(x, s, free, t.Then)
		els := m.subst(x, s, free, t.Else)
		return If{Cond: cond, Then: then, Else: els}
	case App:
		fn := m.subst(x, s, free, t.Fn)
		arg := m.subst(x, s, free, t.Arg)
		return App{Fn: fn, Arg: arg}
	default:
		panic(fmt.Sprintf("stlc: unknown term %T", term))
	}
}
