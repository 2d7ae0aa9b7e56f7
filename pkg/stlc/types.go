package stlc

// Type is a simple type: unit, booleans, or a function between two types.
type Type interface {
	isType()
	String() string
}

// TyUnit is the type of the unit value.
type TyUnit struct{}

// TyBool is the type of True and False.
type TyBool struct{}

// TyFun is the type of functions from Dom to Cod.
type TyFun struct {
	Dom Type
	Cod Type
}

func (TyUnit) isType() {}
func (TyBool) isType() {}
func (TyFun) isType()  {}

func (t TyUnit) String() string { return PrintType(t) }
func (t TyBool) String() string { return PrintType(t) }
func (t TyFun) String() string  { return PrintType(t) }

// Arrow builds the right-nested function type t0 -> t1 -> ... -> tn.
// It panics when called without arguments.
func Arrow(types ...Type) Type {
	if len(types) == 0 {
		panic("stlc: Arrow needs at least one type")
	}
	res := types[len(types)-1]
	for i := len(types) - 2; i >= 0; i-- {
		res = TyFun{Dom: types[i], Cod: res}
	}
	return res
}

// TypeEqual reports whether two types are structurally equal.
// Every Type variant is comparable, so this is interface equality.
func TypeEqual(a, b Type) bool {
	return a == b
}
