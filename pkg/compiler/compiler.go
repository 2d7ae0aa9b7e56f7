package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vic/gostlc/pkg/lambda"
	"github.com/vic/gostlc/pkg/stlc"
)

// OutputExt is appended to the source name when no output name is given.
const OutputExt = ".ski"

// Compiler translates a JSON term document to a combinator program.
type Compiler struct {
	SourceFile string
	OutputName string
	Untyped    bool // Skip the type check, compile ill-typed or open terms as they are
}

// CompileTerm type checks a closed term and compiles it to combinators.
func CompileTerm(term stlc.Term) (Comb, error) {
	if _, err := stlc.TypeOf(term); err != nil {
		return nil, fmt.Errorf("type error: %w", err)
	}
	return Translate(lambda.Erase(term)), nil
}

// Compile reads and compiles the source and writes the combinator program
// next to it. Returns the output path on success.
func (c *Compiler) Compile() (string, error) {
	source, err := os.ReadFile(c.SourceFile)
	if err != nil {
		return "", fmt.Errorf("failed to read source: %w", err)
	}

	doc, err := stlc.ReadDocument(source)
	if err != nil {
		return "", fmt.Errorf("decode error: %w", err)
	}

	var comb Comb
	if c.Untyped {
		comb = Translate(lambda.Erase(doc.Term))
	} else {
		if doc.Type != nil {
			ty, err := stlc.TypeOf(doc.Term)
			if err == nil && !stlc.TypeEqual(ty, doc.Type) {
				return "", fmt.Errorf("type error: term has type %s, document declares %s", ty, doc.Type)
			}
		}
		if comb, err = CompileTerm(doc.Term); err != nil {
			return "", err
		}
	}

	outputName := c.OutputName
	if outputName == "" {
		// Default: replace the source extension
		outputName = strings.TrimSuffix(c.SourceFile, filepath.Ext(c.SourceFile)) + OutputExt
	}

	// Write to a temporary file in the output directory, then rename, so a
	// failed write never leaves a truncated program behind.
	outputDir := filepath.Dir(outputName)
	tmpFile, err := os.CreateTemp(outputDir, "gostlc-*"+OutputExt)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(comb.String() + "\n"); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write program: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write program: %w", err)
	}
	if err := os.Rename(tmpPath, outputName); err != nil {
		return "", fmt.Errorf("failed to write program: %w", err)
	}

	if !filepath.IsAbs(outputName) {
		if abs, err := filepath.Abs(outputName); err == nil {
			outputName = abs
		}
	}
	return outputName, nil
}
