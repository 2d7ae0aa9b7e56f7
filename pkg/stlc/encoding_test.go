package stlc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var sampleTerms = []Term{
	Unit{},
	True{},
	False{},
	Var{Name: "x"},
	Var{Name: "#3"},
	Fun{Param: "x", Type: TyBool{}, Body: Var{Name: "x"}},
	Fun{Param: "f", Type: Arrow(TyBool{}, TyUnit{}), Body: App{Fn: Var{Name: "f"}, Arg: True{}}},
	If{Cond: True{}, Then: Unit{}, Else: Unit{}},
	App{Fn: App{Fn: Var{Name: "f"}, Arg: False{}}, Arg: If{Cond: Var{Name: "b"}, Then: True{}, Else: False{}}},
}

func TestTermRoundTrip(t *testing.T) {
	for _, term := range sampleTerms {
		data, err := MarshalTerm(term)
		if err != nil {
			t.Fatalf("MarshalTerm(%s): %v", term, err)
		}
		res, err := UnmarshalTerm(data)
		if err != nil {
			t.Fatalf("UnmarshalTerm(%s): %v", data, err)
		}
		if diff := cmp.Diff(term, res); diff != "" {
			t.Errorf("round trip of %s mismatch (-want +got):\n%s", data, diff)
		}
	}
}

func TestTypeRoundTrip(t *testing.T) {
	for _, ty := range []Type{TyUnit{}, TyBool{}, Arrow(Arrow(TyBool{}, TyBool{}), TyUnit{}, TyBool{})} {
		data, err := MarshalType(ty)
		if err != nil {
			t.Fatalf("MarshalType(%s): %v", ty, err)
		}
		res, err := UnmarshalType(data)
		if err != nil {
			t.Fatalf("UnmarshalType(%s): %v", data, err)
		}
		if !TypeEqual(ty, res) {
			t.Errorf("round trip of %s gave %s", ty, res)
		}
	}
}

func TestMarshalTermShape(t *testing.T) {
	testCases := []struct {
		term Term
		exp  string
	}{
		{Unit{}, `{"tag":"Unit"}`},
		{Var{Name: "x"}, `{"tag":"Var","contents":["x"]}`},
		{
			Fun{Param: "x", Type: TyBool{}, Body: Var{Name: "x"}},
			`{"tag":"Fun","contents":["x",{"tag":"TyBool"},{"tag":"Var","contents":["x"]}]}`,
		},
		{
			App{Fn: True{}, Arg: False{}},
			`{"tag":"App","contents":[{"tag":"True"},{"tag":"False"}]}`,
		},
	}
	for _, tc := range testCases {
		data, err := MarshalTerm(tc.term)
		if err != nil {
			t.Fatalf("MarshalTerm(%s): %v", tc.term, err)
		}
		if string(data) != tc.exp {
			t.Errorf("MarshalTerm(%s) = %s, want %s", tc.term, data, tc.exp)
		}
	}
}

func TestUnmarshalTermErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		path  string
	}{
		{"unknown tag", `{"tag":"Lam"}`, "$"},
		{"not an object", `[1,2]`, "$"},
		{"arity", `{"tag":"App","contents":[{"tag":"True"}]}`, "$"},
		{"nullary with contents", `{"tag":"True","contents":[{"tag":"True"}]}`, "$"},
		{"bad name", `{"tag":"Var","contents":[1]}`, "$.contents[0]"},
		{"bad type", `{"tag":"Fun","contents":["x",{"tag":"TyFun","contents":[{"tag":"TyBool"}]},{"tag":"Unit"}]}`, "$.contents[1]"},
		{"nested", `{"tag":"If","contents":[{"tag":"True"},{"tag":"Unit"},{"tag":"Nope"}]}`, "$.contents[2]"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := UnmarshalTerm([]byte(tc.input))
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("UnmarshalTerm(%s) error = %v, want *DecodeError", tc.input, err)
			}
			if decErr.Path != tc.path {
				t.Errorf("error path = %q, want %q (%v)", decErr.Path, tc.path, err)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	term := Fun{Param: "x", Type: TyBool{}, Body: Var{Name: "x"}}
	doc := Document{Term: term, Type: Arrow(TyBool{}, TyBool{})}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	res, err := ReadDocument(data)
	if err != nil {
		t.Fatalf("ReadDocument(%s): %v", data, err)
	}
	exp := Document{Version: EncodingVersion, Term: doc.Term, Type: doc.Type}
	if diff := cmp.Diff(exp, res); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	bare, err := ReadDocument([]byte(`{"tag":"True"}`))
	if err != nil {
		t.Fatalf("ReadDocument(bare): %v", err)
	}
	if bare.Term != (True{}) || bare.Type != nil {
		t.Errorf("bare document = %+v", bare)
	}

	if _, err := ReadDocument([]byte(`{"version":7,"term":{"tag":"Unit"}}`)); err == nil {
		t.Errorf("ReadDocument accepted version 7")
	}
}
