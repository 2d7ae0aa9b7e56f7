package stlc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodingVersion is the version of the tagged record format written by
// MarshalTerm and MarshalType.
//
// Every value is a record {"tag": <variant>, "contents": [<fields>]} with the
// variant's fields in declaration order. Nullary variants omit contents.
//
//	Var{"x"}                 {"tag":"Var","contents":["x"]}
//	Fun{"x", TyBool{}, ...}  {"tag":"Fun","contents":["x",{"tag":"TyBool"},...]}
const EncodingVersion = 1

// Variant tags.
const (
	TagUnit   = "Unit"
	TagTrue   = "True"
	TagFalse  = "False"
	TagVar    = "Var"
	TagFun    = "Fun"
	TagIf     = "If"
	TagApp    = "App"
	TagTyUnit = "TyUnit"
	TagTyBool = "TyBool"
	TagTyFun  = "TyFun"
)

type node struct {
	Tag      string `json:"tag"`
	Contents []any  `json:"contents,omitempty"`
}

type rawNode struct {
	Tag      string            `json:"tag"`
	Contents []json.RawMessage `json:"contents"`
}

// DecodeError reports a malformed record at the JSON path Path.
type DecodeError struct {
	Path string
	Msg  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Path, e.Msg)
}

func encodeType(ty Type) node {
	switch t := ty.(type) {
	case TyUnit:
		return node{Tag: TagTyUnit}
	case TyBool:
		return node{Tag: TagTyBool}
	case TyFun:
		return node{Tag: TagTyFun, Contents: []any{encodeType(t.Dom), encodeType(t.Cod)}}
	default:
		panic(fmt.Sprintf("stlc: unknown type %T", ty))
	}
}

func encodeTerm(term Term) node {
	switch t := term.(type) {
	case Unit:
		return node{Tag: TagUnit}
	case True:
		return node{Tag: TagTrue}
	case False:
		return node{Tag: TagFalse}
	case Var:
		return node{Tag: TagVar, Contents: []any{t.Name}}
	case Fun:
		return node{Tag: TagFun, Contents: []any{t.Param, encodeType(t.Type), encodeTerm(t.Body)}}
	case If:
		return node{Tag: TagIf, Contents: []any{encodeTerm(t.Cond), encodeTerm(t.Then), encodeTerm(t.Else)}}
	case App:
		return node{Tag: TagApp, Contents: []any{encodeTerm(t.Fn), encodeTerm(t.Arg)}}
	default:
		panic(fmt.Sprintf("stlc: unknown term %T", term))
	}
}

// MarshalTerm encodes term as a tagged record.
func MarshalTerm(term Term) ([]byte, error) {
	if term == nil {
		return nil, fmt.Errorf("stlc: cannot encode nil term")
	}
	return json.Marshal(encodeTerm(term))
}

// MarshalType encodes ty as a tagged record.
func MarshalType(ty Type) ([]byte, error) {
	if ty == nil {
		return nil, fmt.Errorf("stlc: cannot encode nil type")
	}
	return json.Marshal(encodeType(ty))
}

// UnmarshalTerm decodes a record written by MarshalTerm.
func UnmarshalTerm(data []byte) (Term, error) {
	return decodeTerm(data, "$")
}

// UnmarshalType decodes a record written by MarshalType.
func UnmarshalType(data []byte) (Type, error) {
	return decodeType(data, "$")
}

func decodeNode(data []byte, path string, arity map[string]int) (rawNode, error) {
	var n rawNode
	if err := json.Unmarshal(data, &n); err != nil {
		return n, &DecodeError{Path: path, Msg: err.Error()}
	}
	want, ok := arity[n.Tag]
	if !ok {
		return n, &DecodeError{Path: path, Msg: fmt.Sprintf("unknown tag %q", n.Tag)}
	}
	if len(n.Contents) != want {
		return n, &DecodeError{Path: path, Msg: fmt.Sprintf("%s expects %d fields, got %d", n.Tag, want, len(n.Contents))}
	}
	return n, nil
}

func fieldPath(path string, i int) string {
	return fmt.Sprintf("%s.contents[%d]", path, i)
}

var typeArity = map[string]int{TagTyUnit: 0, TagTyBool: 0, TagTyFun: 2}

func decodeType(data []byte, path string) (Type, error) {
	n, err := decodeNode(data, path, typeArity)
	if err != nil {
		return nil, err
	}
	switch n.Tag {
	case TagTyUnit:
		return TyUnit{}, nil
	case TagTyBool:
		return TyBool{}, nil
	}
	dom, err := decodeType(n.Contents[0], fieldPath(path, 0))
	if err != nil {
		return nil, err
	}
	cod, err := decodeType(n.Contents[1], fieldPath(path, 1))
	if err != nil {
		return nil, err
	}
	return TyFun{Dom: dom, Cod: cod}, nil
}

var termArity = map[string]int{
	TagUnit: 0, TagTrue: 0, TagFalse: 0,
	TagVar: 1, TagFun: 3, TagIf: 3, TagApp: 2,
}

func decodeName(data []byte, path string) (string, error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return "", &DecodeError{Path: path, Msg: "expected identifier string"}
	}
	return name, nil
}

func decodeTerms(n rawNode, path string) ([]Term, error) {
	terms := make([]Term, len(n.Contents))
	for i, raw := range n.Contents {
		t, err := decodeTerm(raw, fieldPath(path, i))
		if err != nil {
			return nil, err
		}
		terms[i] = t
	}
	return terms, nil
}

func decodeTerm(data []byte, path string) (Term, error) {
	n, err := decodeNode(data, path, termArity)
	if err != nil {
		return nil, err
	}
	switch n.Tag {
	case TagUnit:
		return Unit{}, nil
	case TagTrue:
		return True{}, nil
	case TagFalse:
		return False{}, nil
	case TagVar:
		name, err := decodeName(n.Contents[0], fieldPath(path, 0))
		if err != nil {
			return nil, err
		}
		return Var{Name: name}, nil
	case TagFun:
		param, err := decodeName(n.Contents[0], fieldPath(path, 0))
		if err != nil {
			return nil, err
		}
		ty, err := decodeType(n.Contents[1], fieldPath(path, 1))
		if err != nil {
			return nil, err
		}
		body, err := decodeTerm(n.Contents[2], fieldPath(path, 2))
		if err != nil {
			return nil, err
		}
		return Fun{Param: param, Type: ty, Body: body}, nil
	case TagIf:
		ts, err := decodeTerms(n, path)
		if err != nil {
			return nil, err
		}
		return If{Cond: ts[0], Then: ts[1], Else: ts[2]}, nil
	default:
		ts, err := decodeTerms(n, path)
		if err != nil {
			return nil, err
		}
		return App{Fn: ts[0], Arg: ts[1]}, nil
	}
}

// Document is the file format for a single term: the term, optionally its
// type, and the encoding version.
type Document struct {
	Version int
	Term    Term
	Type    Type
}

type document struct {
	Version int             `json:"version"`
	Term    json.RawMessage `json:"term"`
	Type    json.RawMessage `json:"type,omitempty"`
}

func (d Document) MarshalJSON() ([]byte, error) {
	term, err := MarshalTerm(d.Term)
	if err != nil {
		return nil, err
	}
	doc := document{Version: EncodingVersion, Term: term}
	if d.Type != nil {
		if doc.Type, err = MarshalType(d.Type); err != nil {
			return nil, err
		}
	}
	return json.Marshal(doc)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return &DecodeError{Path: "$", Msg: err.Error()}
	}
	if doc.Version != EncodingVersion {
		return &DecodeError{Path: "$.version", Msg: fmt.Sprintf("unsupported version %d", doc.Version)}
	}
	if len(doc.Term) == 0 {
		return &DecodeError{Path: "$.term", Msg: "missing term"}
	}
	term, err := decodeTerm(doc.Term, "$.term")
	if err != nil {
		return err
	}
	var ty Type
	if len(doc.Type) > 0 {
		if ty, err = decodeType(doc.Type, "$.type"); err != nil {
			return err
		}
	}
	*d = Document{Version: doc.Version, Term: term, Type: ty}
	return nil
}

// ReadDocument decodes either a Document or a bare term record.
func ReadDocument(data []byte) (Document, error) {
	var probe struct {
		Tag *string `json:"tag"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Document{}, &DecodeError{Path: "$", Msg: err.Error()}
	}
	if probe.Tag != nil {
		term, err := UnmarshalTerm(bytes.TrimSpace(data))
		if err != nil {
			return Document{}, err
		}
		return Document{Version: EncodingVersion, Term: term}, nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
