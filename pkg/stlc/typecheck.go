package stlc

import "fmt"

// Typecheck computes the type of term under ctx. It walks the term depth
// first, left to right, and returns the first TypeError it meets.
func Typecheck(term Term, ctx *Context) (Type, error) {
	switch t := term.(type) {
	case Unit:
		return TyUnit{}, nil
	case True, False:
		return TyBool{}, nil
	case Var:
		if ty, ok := ctx.Lookup(t.Name); ok {
			return ty, nil
		}
		return nil, NewUnboundVariableError(t.Name)
	case Fun:
		body, err := Typecheck(t.Body, ctx.Push(t.Param, t.Type))
		if err != nil {
			return nil, err
		}
		return TyFun{Dom: t.Type, Cod: body}, nil
	case If:
		cond, err := Typecheck(t.Cond, ctx)
		if err != nil {
			return nil, err
		}
		if cond != (TyBool{}) {
			return nil, NewBadGuardError(t.Cond, cond)
		}
		then, err := Typecheck(t.Then, ctx)
		if err != nil {
			return nil, err
		}
		els, err := Typecheck(t.Else, ctx)
		if err != nil {
			return nil, err
		}
		if then != els {
			return nil, NewBranchMismatchError(t.Then, t.Else, then, els)
		}
		return then, nil
	case App:
		fn, err := Typecheck(t.Fn, ctx)
		if err != nil {
			return nil, err
		}
		arg, err := Typecheck(t.Arg, ctx)
		if err != nil {
			return nil, err
		}
		arrow, ok := fn.(TyFun)
		if !ok {
			return nil, NewNotApplicableError(t.Fn, fn)
		}
		if arrow.Dom != arg {
			return nil, NewArgMismatchError(t.Fn, t.Arg, arrow.Dom, arg)
		}
		return arrow.Cod, nil
	default:
		panic(fmt.Sprintf("stlc: unknown term %T", term))
	}
}

// TypeOf checks a closed term.
func TypeOf(term Term) (Type, error) {
	return Typecheck(term, nil)
}
