package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vic/gostlc/pkg/stlc"
)

func newCheckCmd() *cobra.Command {
	var annotate bool
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Type check a term and print its type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			ty, err := checkDocument(doc)
			if err != nil {
				return err
			}
			if annotate {
				fmt.Fprintf(cmd.OutOrStdout(), "%s : %s\n", stlc.Print(doc.Term, true), ty)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ty)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&annotate, "annotate", "a", false, "print the annotated term along with its type")
	return cmd
}
