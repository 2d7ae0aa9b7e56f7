// Package dataset generates reproducible corpora of well-typed terms
// together with their types and values.
package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/vic/gostlc/pkg/compiler"
	"github.com/vic/gostlc/pkg/config"
	"github.com/vic/gostlc/pkg/gen"
	"github.com/vic/gostlc/pkg/lambda"
	"github.com/vic/gostlc/pkg/stlc"
)

// Namespace is the UUID namespace of record identifiers.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/vic/gostlc/records"))

// TermID identifies a term by its encoding, so equal terms share an ID
// however they were generated.
func TermID(term stlc.Term) (uuid.UUID, error) {
	data, err := stlc.MarshalTerm(term)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.NewSHA1(Namespace, data), nil
}

// Record is one generated term with everything known about it.
type Record struct {
	ID    uuid.UUID
	Index int
	Seed  int64
	Term  stlc.Term
	Type  stlc.Type
	Value stlc.Term
	Steps int

	// Source is the pretty-printed term.
	Source string

	// Erased and Combinator are only filled in when compiling.
	Erased     string
	Combinator string
}

type recordJSON struct {
	ID         uuid.UUID       `json:"id"`
	Index      int             `json:"index"`
	Seed       int64           `json:"seed"`
	Term       json.RawMessage `json:"term"`
	Type       json.RawMessage `json:"type"`
	Value      json.RawMessage `json:"value"`
	Steps      int             `json:"steps"`
	Source     string          `json:"source"`
	Erased     string          `json:"erased,omitempty"`
	Combinator string          `json:"combinator,omitempty"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	term, err := stlc.MarshalTerm(r.Term)
	if err != nil {
		return nil, err
	}
	ty, err := stlc.MarshalType(r.Type)
	if err != nil {
		return nil, err
	}
	value, err := stlc.MarshalTerm(r.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(recordJSON{
		ID:         r.ID,
		Index:      r.Index,
		Seed:       r.Seed,
		Term:       term,
		Type:       ty,
		Value:      value,
		Steps:      r.Steps,
		Source:     r.Source,
		Erased:     r.Erased,
		Combinator: r.Combinator,
	})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	term, err := stlc.UnmarshalTerm(raw.Term)
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	ty, err := stlc.UnmarshalType(raw.Type)
	if err != nil {
		return fmt.Errorf("type: %w", err)
	}
	value, err := stlc.UnmarshalTerm(raw.Value)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	*r = Record{
		ID:         raw.ID,
		Index:      raw.Index,
		Seed:       raw.Seed,
		Term:       term,
		Type:       ty,
		Value:      value,
		Steps:      raw.Steps,
		Source:     raw.Source,
		Erased:     raw.Erased,
		Combinator: raw.Combinator,
	}
	return nil
}

// Options control generation.
type Options struct {
	Seed         int64
	Count        int
	Workers      int
	MaxDepth     int
	MaxTypeDepth int
	Strategy     gen.Strategy
	Annotate     bool
	Compile      bool
}

// FromConfig converts a loaded configuration.
func FromConfig(cfg *config.Config) (Options, error) {
	strategy, err := gen.ParseStrategy(cfg.Strategy)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Seed:         cfg.Seed,
		Count:        cfg.Count,
		Workers:      cfg.Workers,
		MaxDepth:     cfg.MaxDepth,
		MaxTypeDepth: cfg.MaxTypeDepth,
		Strategy:     strategy,
		Annotate:     cfg.Annotate,
		Compile:      cfg.Compile,
	}, nil
}

// MakeRecord generates record index. The record depends only on the
// options and the index.
func MakeRecord(opts Options, index int) (Record, error) {
	seed := opts.Seed + int64(index)
	g := gen.Seeded(seed)
	g.MaxDepth = opts.MaxDepth
	g.MaxTypeDepth = opts.MaxTypeDepth

	term, ty := g.ClosedTerm(opts.Strategy)
	value, steps := stlc.Evaluate(term)

	// Generated terms are well typed and evaluation preserves types, so
	// a failure here is a bug in the generator or the evaluator.
	if vty, err := stlc.TypeOf(value); err != nil || !stlc.TypeEqual(vty, ty) {
		return Record{}, fmt.Errorf("record %d: %s : %s evaluated to ill-typed %s", index, term, ty, value)
	}

	id, err := TermID(term)
	if err != nil {
		return Record{}, fmt.Errorf("record %d: %w", index, err)
	}
	rec := Record{
		ID:     id,
		Index:  index,
		Seed:   seed,
		Term:   term,
		Type:   ty,
		Value:  value,
		Steps:  steps,
		Source: stlc.Print(term, opts.Annotate),
	}
	if opts.Compile {
		comb, err := compiler.CompileTerm(term)
		if err != nil {
			return Record{}, fmt.Errorf("record %d: %w", index, err)
		}
		rec.Erased = lambda.Erase(term).String()
		rec.Combinator = comb.String()
	}
	return rec, nil
}
