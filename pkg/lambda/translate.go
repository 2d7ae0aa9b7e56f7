package lambda

import (
	"fmt"
	"os"

	"github.com/vic/gostlc/pkg/stlc"
)

var eraseDebug = os.Getenv("STLC_DEBUG") != ""

// Binder names used by the Church encodings. '%' never appears in an stlc
// identifier, fresh or user chosen, and every encoding is closed.
const (
	unitArg  = "%u"
	trueArg  = "%t"
	falseArg = "%f"
)

// Church encodings of the stlc literals.
var (
	ChurchUnit  Term = Abs{Arg: unitArg, Body: Var{Name: unitArg}}
	ChurchTrue  Term = Abs{Arg: trueArg, Body: Abs{Arg: falseArg, Body: Var{Name: trueArg}}}
	ChurchFalse Term = Abs{Arg: trueArg, Body: Abs{Arg: falseArg, Body: Var{Name: falseArg}}}
)

// Erase translates an stlc term to an untyped one. Parameter annotations
// are dropped, literals become their Church encodings and a conditional
// becomes the application of its guard to both branches:
//
//	ite c t e  ->  c t e
//
// The erased form of a closed, well-typed term of type Bool or () reduces
// to the encoding of its stlc value under any reduction order.
func Erase(term stlc.Term) Term {
	res := erase(term)
	if eraseDebug {
		fmt.Fprintf(os.Stderr, "Erase: %s => %s\n", term, res)
	}
	return res
}

func erase(term stlc.Term) Term {
	switch t := term.(type) {
	case stlc.Unit:
		return ChurchUnit
	case stlc.True:
		return ChurchTrue
	case stlc.False:
		return ChurchFalse
	case stlc.Var:
		return Var{Name: t.Name}
	case stlc.Fun:
		return Abs{Arg: t.Param, Body: erase(t.Body)}
	case stlc.If:
		return App{Fun: App{Fun: erase(t.Cond), Arg: erase(t.Then)}, Arg: erase(t.Else)}
	case stlc.App:
		return App{Fun: erase(t.Fn), Arg: erase(t.Arg)}
	default:
		panic(fmt.Sprintf("lambda: unknown stlc term %T", term))
	}
}
