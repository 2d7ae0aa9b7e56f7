package gen

import "github.com/vic/gostlc/pkg/stlc"

// EnumerateTypes lists every type with at most depth nested arrows, smaller
// types first. The list grows quickly: depth 2 already has 38 types.
func EnumerateTypes(depth int) []stlc.Type {
	types := []stlc.Type{stlc.TyUnit{}, stlc.TyBool{}}
	for d := 1; d <= depth; d++ {
		prev := types
		next := append([]stlc.Type(nil), prev...)
		for _, dom := range prev {
			for _, cod := range prev {
				fn := stlc.TyFun{Dom: dom, Cod: cod}
				if typeDepth(fn) == d {
					next = append(next, fn)
				}
			}
		}
		types = next
	}
	return types
}

func typeDepth(ty stlc.Type) int {
	if fn, ok := ty.(stlc.TyFun); ok {
		return 1 + max(typeDepth(fn.Dom), typeDepth(fn.Cod))
	}
	return 0
}
