// Command stlc type checks, evaluates, prints and compiles simply-typed
// lambda calculus terms stored as JSON documents, and generates datasets
// of random well-typed terms.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/vic/gostlc/pkg/stlc"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stlc: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stlc",
		Short:         "Simply-typed lambda calculus toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newCheckCmd(),
		newEvalCmd(),
		newPrintCmd(),
		newCompileCmd(),
		newGenCmd(),
	)
	return root
}

// readDocument reads a term document from the file named by args, or from
// stdin when there is none or it is "-".
func readDocument(cmd *cobra.Command, args []string) (stlc.Document, error) {
	var input []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		input, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return stlc.Document{}, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		input, err = os.ReadFile(args[0])
		if err != nil {
			return stlc.Document{}, fmt.Errorf("reading file: %w", err)
		}
	}
	doc, err := stlc.ReadDocument(input)
	if err != nil {
		return stlc.Document{}, fmt.Errorf("decode error: %w", err)
	}
	return doc, nil
}

// checkDocument type checks the document's term against its declared type,
// if any.
func checkDocument(doc stlc.Document) (stlc.Type, error) {
	ty, err := stlc.TypeOf(doc.Term)
	if err != nil {
		return nil, fmt.Errorf("type error: %w", err)
	}
	if doc.Type != nil && !stlc.TypeEqual(ty, doc.Type) {
		return nil, fmt.Errorf("type error: term has type %s, document declares %s", ty, doc.Type)
	}
	return ty, nil
}
