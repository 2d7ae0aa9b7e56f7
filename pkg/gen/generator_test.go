package gen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vic/gostlc/pkg/stlc"
)

func TestParseStrategy(t *testing.T) {
	for _, name := range StrategyNames() {
		s, err := ParseStrategy(name)
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", name, err)
		}
		if string(s) != name {
			t.Errorf("ParseStrategy(%q) = %q", name, s)
		}
	}
	if _, err := ParseStrategy("pair"); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestByteSourceExhausted(t *testing.T) {
	g := New(NewByteSource(nil))
	term, ty := g.ClosedTerm(StrategyRandom)
	if diff := cmp.Diff(stlc.Type(stlc.TyBool{}), ty); diff != "" {
		t.Errorf("type mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(stlc.Term(stlc.True{}), term); diff != "" {
		t.Errorf("term mismatch (-want +got):\n%s", diff)
	}
}

func TestByteSourceFunction(t *testing.T) {
	g := New(NewByteSource(nil))
	term, ty := g.ClosedTerm(StrategyFunction)
	want := stlc.Fun{Param: "x", Type: stlc.TyBool{}, Body: stlc.True{}}
	if diff := cmp.Diff(stlc.Term(want), term); diff != "" {
		t.Errorf("term mismatch (-want +got):\n%s", diff)
	}
	if !stlc.TypeEqual(ty, stlc.Arrow(stlc.TyBool{}, stlc.TyBool{})) {
		t.Errorf("type = %v", ty)
	}
}

func TestDeterministic(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		a, aty := Seeded(seed).ClosedTerm(StrategyRandom)
		b, bty := Seeded(seed).ClosedTerm(StrategyRandom)
		if !stlc.Equal(a, b) || !stlc.TypeEqual(aty, bty) {
			t.Fatalf("seed %d: %v : %v differs from %v : %v", seed, a, aty, b, bty)
		}
	}
}

func TestTermUsesContext(t *testing.T) {
	ctx := stlc.NewContext(stlc.Binding{Name: "u", Type: stlc.TyUnit{}})
	g := Seeded(7)
	for i := 0; i < 50; i++ {
		term := g.Term(stlc.TyUnit{}, ctx)
		ty, err := stlc.Typecheck(term, ctx)
		if err != nil {
			t.Fatalf("%v: %v", term, err)
		}
		if !stlc.TypeEqual(ty, stlc.TyUnit{}) {
			t.Fatalf("%v : %v", term, ty)
		}
		for _, name := range stlc.SortedFreeVars(term) {
			if name != "u" {
				t.Fatalf("%v has unexpected free variable %s", term, name)
			}
		}
	}
}

func TestMaxDepthZero(t *testing.T) {
	g := Seeded(3)
	g.MaxDepth = 0
	for i := 0; i < 50; i++ {
		term, _ := g.ClosedTerm(StrategyBool)
		switch term.(type) {
		case stlc.True, stlc.False:
		default:
			t.Fatalf("depth 0 Bool term is not a literal: %v", term)
		}
	}
}

func TestEnumerateTypes(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{0, 2},
		{1, 6},
		{2, 38},
	}
	for _, tt := range tests {
		got := EnumerateTypes(tt.depth)
		if len(got) != tt.want {
			t.Errorf("EnumerateTypes(%d) has %d types, want %d", tt.depth, len(got), tt.want)
		}
		for i, a := range got {
			if d := typeDepth(a); d > tt.depth {
				t.Errorf("%v has depth %d", a, d)
			}
			for _, b := range got[i+1:] {
				if stlc.TypeEqual(a, b) {
					t.Errorf("EnumerateTypes(%d) repeats %v", tt.depth, a)
				}
			}
		}
	}
}
