package stlc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTypecheck(t *testing.T) {
	id := Fun{Param: "x", Type: TyBool{}, Body: Var{Name: "x"}}
	testCases := []struct {
		name string
		term Term
		ctx  *Context
		exp  Type
	}{
		{"unit", Unit{}, nil, TyUnit{}},
		{"true", True{}, nil, TyBool{}},
		{"false", False{}, nil, TyBool{}},
		{"identity", id, nil, TyFun{Dom: TyBool{}, Cod: TyBool{}}},
		{
			"shadowed context",
			Var{Name: "x"},
			NewContext(Binding{"x", TyBool{}}, Binding{"x", TyUnit{}}),
			TyBool{},
		},
		{
			"shadowing parameter",
			Fun{Param: "x", Type: TyUnit{}, Body: Var{Name: "x"}},
			NewContext(Binding{"x", TyBool{}}),
			TyFun{Dom: TyUnit{}, Cod: TyUnit{}},
		},
		{"application", App{Fn: id, Arg: True{}}, nil, TyBool{}},
		{"conditional", If{Cond: True{}, Then: Unit{}, Else: Unit{}}, nil, TyUnit{}},
		{
			"conditional of functions",
			If{Cond: Var{Name: "b"}, Then: id, Else: Fun{Param: "y", Type: TyBool{}, Body: False{}}},
			NewContext(Binding{"b", TyBool{}}),
			TyFun{Dom: TyBool{}, Cod: TyBool{}},
		},
		{
			"higher order",
			Fun{Param: "f", Type: Arrow(TyBool{}, TyUnit{}), Body: App{Fn: Var{Name: "f"}, Arg: True{}}},
			nil,
			Arrow(Arrow(TyBool{}, TyUnit{}), TyUnit{}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Typecheck(tc.term, tc.ctx)
			if err != nil {
				t.Fatalf("Typecheck(%s) failed: %v", tc.term, err)
			}
			if diff := cmp.Diff(tc.exp, res); diff != "" {
				t.Errorf("Typecheck(%s) mismatch (-want +got):\n%s", tc.term, diff)
			}
		})
	}
}

func TestTypecheckErrors(t *testing.T) {
	id := Fun{Param: "x", Type: TyBool{}, Body: Var{Name: "x"}}
	testCases := []struct {
		name string
		term Term
		exp  error
	}{
		{"unbound", Var{Name: "y"}, NewUnboundVariableError("y")},
		{"unbound under binder", Fun{Param: "x", Type: TyBool{}, Body: Var{Name: "y"}}, NewUnboundVariableError("y")},
		{"not applicable", App{Fn: True{}, Arg: False{}}, NewNotApplicableError(True{}, TyBool{})},
		{"argument mismatch", App{Fn: id, Arg: Unit{}}, NewArgMismatchError(id, Unit{}, TyBool{}, TyUnit{})},
		{"bad guard", If{Cond: Unit{}, Then: True{}, Else: False{}}, NewBadGuardError(Unit{}, TyUnit{})},
		{"bad guard function", If{Cond: id, Then: True{}, Else: False{}}, NewBadGuardError(id, TyFun{Dom: TyBool{}, Cod: TyBool{}})},
		{"branch mismatch", If{Cond: True{}, Then: Unit{}, Else: False{}}, NewBranchMismatchError(Unit{}, False{}, TyUnit{}, TyBool{})},
		{
			// The guard is checked before the branches.
			"first error wins",
			If{Cond: Var{Name: "a"}, Then: Var{Name: "b"}, Else: Unit{}},
			NewUnboundVariableError("a"),
		},
		{
			// The function is checked before its argument.
			"left to right",
			App{Fn: Var{Name: "f"}, Arg: Var{Name: "a"}},
			NewUnboundVariableError("f"),
		},
		{
			// Subterm errors surface before the application's own check.
			"argument error before shape",
			App{Fn: True{}, Arg: Var{Name: "a"}},
			NewUnboundVariableError("a"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := TypeOf(tc.term)
			if err == nil {
				t.Fatalf("TypeOf(%s) = %s, want error %v", tc.term, res, tc.exp)
			}
			if res != nil {
				t.Errorf("TypeOf(%s) returned type %s alongside error", tc.term, res)
			}
			if diff := cmp.Diff(tc.exp, err); diff != "" {
				t.Errorf("TypeOf(%s) error mismatch (-want +got):\n%s", tc.term, diff)
			}
			var typeErr TypeError
			if !errors.As(err, &typeErr) {
				t.Errorf("error %v does not implement TypeError", err)
			}
		})
	}
}

func TestTypecheckDoesNotExtendCallerContext(t *testing.T) {
	ctx := NewContext(Binding{"b", TyBool{}})
	term := App{
		Fn:  Fun{Param: "x", Type: TyUnit{}, Body: Var{Name: "b"}},
		Arg: Unit{},
	}
	if _, err := Typecheck(term, ctx); err != nil {
		t.Fatalf("Typecheck failed: %v", err)
	}
	if ctx.Len() != 1 {
		t.Errorf("context grew to %d bindings", ctx.Len())
	}
	if _, ok := ctx.Lookup("x"); ok {
		t.Errorf("parameter x leaked into the caller's context")
	}
}

func TestTypeErrorMessages(t *testing.T) {
	err := NewArgMismatchError(Var{Name: "f"}, Unit{}, TyBool{}, TyUnit{})
	want := "parameter type mismatch: f expects Bool, but () has type ()"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if got := NewUnboundVariableError("y").Error(); got != "unbound variable: y" {
		t.Errorf("Error() = %q", got)
	}
}
