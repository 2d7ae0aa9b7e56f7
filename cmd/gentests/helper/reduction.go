package helper

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vic/gostlc/pkg/compiler"
	"github.com/vic/gostlc/pkg/stlc"
)

// Normalize renames every binder of term to a canonical sequence x0, x1,
// ... so that alpha-equivalent terms print the same. Free variables keep
// their names.
func Normalize(term stlc.Term) stlc.Term {
	bindings := make(map[string]string)
	var idx int
	var walk func(stlc.Term) stlc.Term
	walk = func(tt stlc.Term) stlc.Term {
		switch v := tt.(type) {
		case stlc.Var:
			if name, ok := bindings[v.Name]; ok {
				return stlc.Var{Name: name}
			}
			return v
		case stlc.Fun:
			canon := fmt.Sprintf("x%d", idx)
			idx++
			// shadowing: save old if any
			old, had := bindings[v.Param]
			bindings[v.Param] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Param] = old
			} else {
				delete(bindings, v.Param)
			}
			return stlc.Fun{Param: canon, Type: v.Type, Body: body}
		case stlc.If:
			return stlc.If{Cond: walk(v.Cond), Then: walk(v.Then), Else: walk(v.Else)}
		case stlc.App:
			return stlc.App{Fn: walk(v.Fn), Arg: walk(v.Arg)}
		default:
			return tt
		}
	}
	return walk(term)
}

// CheckEvaluation decodes the input document, type checks it when it
// declares a type, evaluates it and compares the value, up to renaming of
// binders, and the step count with the expectations. Boolean programs are
// also compiled to combinators, which must select the same branch.
func CheckEvaluation(t *testing.T, testName string, inputStr string, outputStr string, steps int) {
	t.Helper()

	doc, err := stlc.ReadDocument([]byte(inputStr))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	expected, err := stlc.UnmarshalTerm([]byte(strings.TrimSpace(outputStr)))
	if err != nil {
		t.Fatalf("Decode error for expected output: %v", err)
	}

	if doc.Type != nil {
		ty, err := stlc.TypeOf(doc.Term)
		if err != nil {
			t.Fatalf("Type error: %v", err)
		}
		if !stlc.TypeEqual(ty, doc.Type) {
			t.Fatalf("Type mismatch in %s: declared %s, inferred %s", testName, doc.Type, ty)
		}
	}

	start := time.Now()
	value, n := stlc.Evaluate(doc.Term)
	elapsed := time.Since(start)

	normExpected := stlc.Print(Normalize(expected), true)
	normActual := stlc.Print(Normalize(value), true)
	if normActual != normExpected {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s", testName, doc.Term, normExpected, normActual)
	}
	if n != steps {
		t.Errorf("Step count in %s: expected %d, actual %d", testName, steps, n)
	}

	if stlc.TypeEqual(doc.Type, stlc.TyBool{}) {
		checkCompiled(t, testName, doc.Term, value)
	}

	t.Logf("%s: %d steps in %v", testName, n, elapsed)
}

func checkCompiled(t *testing.T, testName string, term, value stlc.Term) {
	t.Helper()

	comb, err := compiler.CompileTerm(term)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	a, b := compiler.Ref{Name: "a"}, compiler.Ref{Name: "b"}
	res, n, err := compiler.Reduce(compiler.Apply(comb, a, b), 0)
	if err != nil {
		t.Fatalf("Reduce error: %v", err)
	}

	var want compiler.Comb = b
	if _, ok := value.(stlc.True); ok {
		want = a
	}
	if res != want {
		t.Errorf("Combinators in %s: %s a b reduced to %s, expected %s", testName, comb, res, want)
	}
	t.Logf("%s: %d combinator steps", testName, n)
}
