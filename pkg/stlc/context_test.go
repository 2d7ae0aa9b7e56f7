package stlc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContextLookupMostRecentFirst(t *testing.T) {
	ctx := NewContext(Binding{"x", TyBool{}}, Binding{"x", TyUnit{}}, Binding{"y", TyUnit{}})

	if ty, ok := ctx.Lookup("x"); !ok || ty != (TyBool{}) {
		t.Errorf("Lookup(x) = %v, %v; want Bool", ty, ok)
	}
	if ty, ok := ctx.Lookup("y"); !ok || ty != (TyUnit{}) {
		t.Errorf("Lookup(y) = %v, %v; want ()", ty, ok)
	}
	if _, ok := ctx.Lookup("z"); ok {
		t.Errorf("Lookup(z) found a binding in %s", ctx)
	}
}

func TestContextPushIsPersistent(t *testing.T) {
	base := NewContext(Binding{"x", TyUnit{}})
	inner := base.Push("x", TyBool{})

	if ty, _ := inner.Lookup("x"); ty != (TyBool{}) {
		t.Errorf("inner Lookup(x) = %v, want Bool", ty)
	}
	if ty, _ := base.Lookup("x"); ty != (TyUnit{}) {
		t.Errorf("base Lookup(x) = %v after Push, want ()", ty)
	}
	if base.Len() != 1 || inner.Len() != 2 {
		t.Errorf("Len: base=%d inner=%d", base.Len(), inner.Len())
	}

	want := []Binding{{"x", TyBool{}}, {"x", TyUnit{}}}
	if diff := cmp.Diff(want, inner.Bindings()); diff != "" {
		t.Errorf("Bindings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Binding{{"x", TyBool{}}}, inner.Visible()); diff != "" {
		t.Errorf("Visible mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyContext(t *testing.T) {
	var ctx *Context
	if ctx.Len() != 0 {
		t.Errorf("nil context has length %d", ctx.Len())
	}
	if _, ok := ctx.Lookup("x"); ok {
		t.Errorf("nil context found x")
	}
	if got := ctx.String(); got != "[]" {
		t.Errorf("String() = %q", got)
	}
	if got := NewContext().Push("f", Arrow(TyBool{}, TyUnit{})).String(); got != "[f : Bool -> ()]" {
		t.Errorf("String() = %q", got)
	}
}
