package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vic/gostlc/pkg/compiler"
)

func newCompileCmd() *cobra.Command {
	var output string
	var untyped bool
	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a term to SKI combinators",
		Long:  "Compile a term to SKI combinators. The program is written next to the source with a .ski extension unless -o is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := compiler.Compiler{
				SourceFile: args[0],
				OutputName: output,
				Untyped:    untyped,
			}
			path, err := c.Compile()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&untyped, "untyped", false, "compile without type checking")
	return cmd
}
