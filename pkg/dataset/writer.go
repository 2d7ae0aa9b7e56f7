package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Writer stores records.
type Writer interface {
	Write(ctx context.Context, rec Record) error
	Close() error
}

// JSONLWriter writes one JSON record per line.
type JSONLWriter struct {
	enc    *json.Encoder
	closer io.Closer
	count  int
}

// NewJSONLWriter writes records to w. Close does not close w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{enc: json.NewEncoder(w)}
}

// CreateJSONL creates (or truncates) the file at path.
func CreateJSONL(path string) (*JSONLWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	w := NewJSONLWriter(f)
	w.closer = f
	return w, nil
}

func (w *JSONLWriter) Write(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("record %d: %w", rec.Index, err)
	}
	w.count++
	return nil
}

// Count is the number of records written so far.
func (w *JSONLWriter) Count() int {
	return w.count
}

func (w *JSONLWriter) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// ReadJSONL decodes records written by a JSONLWriter.
func ReadJSONL(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	var recs []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err == io.EOF {
			return recs, nil
		} else if err != nil {
			return recs, fmt.Errorf("line %d: %w", len(recs)+1, err)
		}
		recs = append(recs, rec)
	}
}
