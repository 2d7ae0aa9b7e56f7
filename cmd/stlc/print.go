package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vic/gostlc/pkg/stlc"
)

func newPrintCmd() *cobra.Command {
	var annotate, asJSON bool
	cmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Pretty-print a term",
		Long:  "Pretty-print a term. With --json the document is re-encoded in canonical form instead.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.Marshal(doc)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintln(out, stlc.Print(doc.Term, annotate))
			if doc.Type != nil {
				fmt.Fprintf(out, "  : %s\n", doc.Type)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&annotate, "annotate", "a", false, "print binder types")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the canonical JSON document")
	return cmd
}
