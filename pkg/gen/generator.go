package gen

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/vic/gostlc/pkg/stlc"
)

// Strategy selects the type of the terms ClosedTerm produces.
type Strategy string

const (
	StrategyRandom   Strategy = "random"   // a random type for every term
	StrategyBool     Strategy = "bool"     // terms of type Bool
	StrategyUnit     Strategy = "unit"     // terms of type ()
	StrategyFunction Strategy = "function" // terms of some function type
)

// Strategies lists every known strategy.
var Strategies = []Strategy{StrategyRandom, StrategyBool, StrategyUnit, StrategyFunction}

// StrategyNames lists the strategies as strings, for flags and messages.
func StrategyNames() []string {
	return lo.Map(Strategies, func(s Strategy, _ int) string { return string(s) })
}

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	if lo.Contains(Strategies, Strategy(name)) {
		return Strategy(name), nil
	}
	return "", fmt.Errorf("unknown strategy %q (want one of %v)", name, StrategyNames())
}

const (
	MaxDepth     = 4
	MaxTypeDepth = 2
)

// Binder names. The pool is small so generated terms shadow names often.
var paramNames = []string{"x", "y", "z", "f", "g", "b"}

// Generator generates random closed well-typed terms.
type Generator struct {
	src          RandomSource
	MaxDepth     int // Nesting of eliminations (If, App)
	MaxTypeDepth int // Nesting of arrows in generated types
}

func New(src RandomSource) *Generator {
	return &Generator{src: src, MaxDepth: MaxDepth, MaxTypeDepth: MaxTypeDepth}
}

// Seeded is New(NewRandSource(seed)).
func Seeded(seed int64) *Generator {
	return New(NewRandSource(seed))
}

// Type returns a random type with at most MaxTypeDepth nested arrows.
func (g *Generator) Type() stlc.Type {
	return g.typ(g.MaxTypeDepth)
}

func (g *Generator) baseType() stlc.Type {
	if g.src.Intn(2) == 0 {
		return stlc.TyBool{}
	}
	return stlc.TyUnit{}
}

func (g *Generator) typ(depth int) stlc.Type {
	if depth <= 0 || g.src.Intn(3) < 2 {
		return g.baseType()
	}
	return stlc.TyFun{Dom: g.typ(depth - 1), Cod: g.typ(depth - 1)}
}

// FunctionType returns a random function type.
func (g *Generator) FunctionType() stlc.Type {
	depth := max(g.MaxTypeDepth-1, 0)
	return stlc.TyFun{Dom: g.typ(depth), Cod: g.typ(depth)}
}

// ClosedTerm returns a closed term following strategy, and its type.
func (g *Generator) ClosedTerm(strategy Strategy) (stlc.Term, stlc.Type) {
	var ty stlc.Type
	switch strategy {
	case StrategyBool:
		ty = stlc.TyBool{}
	case StrategyUnit:
		ty = stlc.TyUnit{}
	case StrategyFunction:
		ty = g.FunctionType()
	default:
		ty = g.Type()
	}
	return g.Term(ty, nil), ty
}

// Term returns a random term of type ty under ctx. Its free variables are
// all bound in ctx.
func (g *Generator) Term(ty stlc.Type, ctx *stlc.Context) stlc.Term {
	return g.term(ty, ctx, g.MaxDepth)
}

func (g *Generator) term(ty stlc.Type, ctx *stlc.Context, depth int) stlc.Term {
	vars := lo.Filter(ctx.Visible(), func(b stlc.Binding, _ int) bool {
		return stlc.TypeEqual(b.Type, ty)
	})

	choices := 1 // introduction form
	if len(vars) > 0 {
		choices++
	}
	if depth > 0 {
		choices += 2 // If, App
	}

	switch pick := g.src.Intn(choices); {
	case pick == 0:
		return g.intro(ty, ctx, depth)
	case pick == 1 && len(vars) > 0:
		return stlc.Var{Name: vars[g.src.Intn(len(vars))].Name}
	case pick == choices-2:
		return stlc.If{
			Cond: g.term(stlc.TyBool{}, ctx, depth-1),
			Then: g.term(ty, ctx, depth-1),
			Else: g.term(ty, ctx, depth-1),
		}
	default:
		arg := g.typ(1)
		return stlc.App{
			Fn:  g.term(stlc.TyFun{Dom: arg, Cod: ty}, ctx, depth-1),
			Arg: g.term(arg, ctx, depth-1),
		}
	}
}

// intro builds a term of ty by its introduction form. For a function type
// the body has a smaller type, so this always terminates even at depth 0.
func (g *Generator) intro(ty stlc.Type, ctx *stlc.Context, depth int) stlc.Term {
	switch t := ty.(type) {
	case stlc.TyUnit:
		return stlc.Unit{}
	case stlc.TyBool:
		if g.src.Intn(2) == 0 {
			return stlc.True{}
		}
		return stlc.False{}
	case stlc.TyFun:
		param := paramNames[g.src.Intn(len(paramNames))]
		return stlc.Fun{Param: param, Type: t.Dom, Body: g.term(t.Cod, ctx.Push(param, t.Dom), depth)}
	default:
		panic(fmt.Sprintf("gen: unknown type %T", ty))
	}
}
