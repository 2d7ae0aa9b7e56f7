package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/gostlc/pkg/stlc"
)

type TestCase struct {
	Name   string
	Input  stlc.Term
	Type   stlc.Type // nil for open or ill-typed inputs, which are evaluated unchecked
	Output stlc.Term
	Steps  int
}

const testTemplate = `
package gentests
import _ "embed"
import "testing"
import "github.com/vic/gostlc/cmd/gentests/helper"
//go:embed input.json
var input string
//go:embed output.json
var output string
func Test_%s_Evaluation(t *testing.T) {
	helper.CheckEvaluation(t, "%s", input, output, %d)
}
`

var (
	tyUnit = stlc.TyUnit{}
	tyBool = stlc.TyBool{}
)

func fun(param string, ty stlc.Type, body stlc.Term) stlc.Term {
	return stlc.Fun{Param: param, Type: ty, Body: body}
}

func app(fn stlc.Term, args ...stlc.Term) stlc.Term {
	for _, a := range args {
		fn = stlc.App{Fn: fn, Arg: a}
	}
	return fn
}

func ite(c, t, e stlc.Term) stlc.Term {
	return stlc.If{Cond: c, Then: t, Else: e}
}

func v(name string) stlc.Term {
	return stlc.Var{Name: name}
}

var (
	tt   = stlc.True{}
	ff   = stlc.False{}
	unit = stlc.Unit{}
	not  = fun("b", tyBool, ite(v("b"), ff, tt))
)

func main() {
	tests := []TestCase{
		// Values
		{"001_unit", unit, tyUnit, unit, 0},
		{"002_id_bool", app(fun("x", tyBool, v("x")), tt), tyBool, tt, 1},

		// Conditionals
		{"003_not_true", app(not, tt), tyBool, ff, 2},
		{"004_not_false", app(not, ff), tyBool, tt, 2},
		{"005_ite_nested", ite(ite(tt, ff, tt), unit, unit), tyUnit, unit, 3},

		// Application
		{"006_const", app(fun("x", tyBool, fun("y", tyUnit, v("x"))), tt, unit), tyBool, tt, 3},
		{"007_call_by_name", app(fun("x", tyBool, tt), ite(tt, ff, tt)), tyBool, tt, 1},
		{"008_higher_order", app(fun("f", stlc.Arrow(tyBool, tyBool), app(v("f"), app(v("f"), tt))), not), tyBool, tt, 6},
		{"009_shadow", app(fun("x", tyBool, fun("x", tyUnit, v("x"))), tt, unit), tyUnit, unit, 3},
		{"010_function_value", app(fun("f", stlc.Arrow(tyBool, tyBool), v("f")), fun("x", tyBool, v("x"))), stlc.Arrow(tyBool, tyBool), fun("x", tyBool, v("x")), 1},
		{"011_unit_arg", app(fun("u", tyUnit, ite(tt, v("u"), unit)), unit), tyUnit, unit, 2},

		// Open terms
		{"012_capture", app(fun("x", tyBool, fun("y", tyBool, v("x"))), v("y")), nil, fun("z", tyBool, v("y")), 1},
		{"013_stuck_var", app(v("f"), tt), nil, app(v("f"), tt), 0},
		{"014_stuck_guard", ite(unit, tt, ff), nil, ite(unit, tt, ff), 0},
	}

	baseDir := "cmd/gentests/generated"
	os.MkdirAll(baseDir, 0755)

	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)
		os.MkdirAll(dir, 0755)

		input, err := json.Marshal(stlc.Document{Version: stlc.EncodingVersion, Term: tc.Input, Type: tc.Type})
		if err != nil {
			fmt.Printf("Error encoding input for %s: %v\n", tc.Name, err)
			continue
		}

		output, err := stlc.MarshalTerm(tc.Output)
		if err != nil {
			fmt.Printf("Error encoding output for %s: %v\n", tc.Name, err)
			continue
		}

		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name, tc.Steps)

		os.WriteFile(filepath.Join(dir, "input.json"), append(input, '\n'), 0644)
		os.WriteFile(filepath.Join(dir, "output.json"), append(output, '\n'), 0644)
		os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
	}

	fmt.Printf("Generated %d tests\n", len(tests))
}
