package gentests

import (
	_ "embed"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vic/gostlc/cmd/gentests/helper"
	"github.com/vic/gostlc/pkg/stlc"
)

//go:embed input.json
var input string

//go:embed output.json
var output string

// Test_101_trace_order checks the order in which call-by-name evaluation
// fires its rules on (\f -> f (f True)) not. The argument is never
// evaluated before it is substituted, and the steps that reduce a guard are
// reported before the step that rewrites the conditional around it.
func Test_101_trace_order(t *testing.T) {
	doc, err := stlc.ReadDocument([]byte(input))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	var rules []stlc.Rule
	value, steps := stlc.EvaluateTrace(doc.Term, func(step int, rule stlc.Rule, redex stlc.Term) {
		rules = append(rules, rule)
		t.Logf("%d %s %s", step, rule, redex)
	})

	want := []stlc.Rule{
		stlc.RuleBeta,    // (\f -> f (f True)) not
		stlc.RuleBeta,    // not (not True)
		stlc.RuleBeta,    // not True, inside the guard
		stlc.RuleIfTrue,  // ite True False True
		stlc.RuleIfCond,  // the guard became False
		stlc.RuleIfFalse, // ite False False True
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Errorf("Rule order mismatch (-want +got):\n%s", diff)
	}
	if steps != len(want) {
		t.Errorf("Expected %d steps, got %d", len(want), steps)
	}
	if _, ok := value.(stlc.True); !ok {
		t.Errorf("Expected True, got %s", value)
	}

	// Also run the standard check
	helper.CheckEvaluation(t, "101_trace_order", input, output, len(want))
}
