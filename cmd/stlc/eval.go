package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vic/gostlc/pkg/compiler"
	"github.com/vic/gostlc/pkg/lambda"
	"github.com/vic/gostlc/pkg/stlc"
)

// ruleOrder is the order rules are listed in the stats breakdown.
var ruleOrder = []stlc.Rule{stlc.RuleBeta, stlc.RuleIfTrue, stlc.RuleIfFalse, stlc.RuleAppFn, stlc.RuleIfCond}

func newEvalCmd() *cobra.Command {
	var (
		trace, stats, untyped, ski bool
		limit                      int
	)
	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate a term to a value in call-by-name order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			if !untyped {
				if _, err := checkDocument(doc); err != nil {
					return err
				}
			}
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

			if ski {
				return evalCombinators(out, errOut, doc.Term, limit, untyped)
			}

			counts := make(map[stlc.Rule]int)
			start := time.Now()
			value, steps := stlc.EvaluateTrace(doc.Term, func(step int, rule stlc.Rule, redex stlc.Term) {
				counts[rule]++
				if trace {
					fmt.Fprintf(errOut, "%4d %-8s %s\n", step, rule, redex)
				}
			})
			elapsed := time.Since(start)

			fmt.Fprintln(out, value)
			if stats {
				printStats(errOut, elapsed, steps, counts)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print every reduction step to stderr")
	cmd.Flags().BoolVarP(&stats, "stats", "s", false, "print step statistics to stderr")
	cmd.Flags().BoolVar(&untyped, "untyped", false, "evaluate without type checking")
	cmd.Flags().BoolVar(&ski, "ski", false, "compile to combinators and reduce those instead")
	cmd.Flags().IntVar(&limit, "limit", compiler.DefaultStepLimit, "step limit for --ski")
	return cmd
}

func evalCombinators(out, errOut io.Writer, term stlc.Term, limit int, untyped bool) error {
	var comb compiler.Comb
	var err error
	if untyped {
		comb = compiler.Translate(lambda.Erase(term))
	} else if comb, err = compiler.CompileTerm(term); err != nil {
		return err
	}
	res, steps, err := compiler.Reduce(comb, limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res)
	fmt.Fprintf(errOut, "Combinator steps: %d\n", steps)
	return nil
}

func printStats(w io.Writer, elapsed time.Duration, steps int, counts map[stlc.Rule]int) {
	seconds := elapsed.Seconds()

	fmt.Fprintf(w, "\nStats:\n")
	fmt.Fprintf(w, "Time: %v\n", elapsed)
	fmt.Fprintf(w, "Total Steps: %d", steps)
	if seconds > 0 {
		fmt.Fprintf(w, " (%.2f ops/sec)", float64(steps)/seconds)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "\nBreakdown:\n")
	for _, rule := range ruleOrder {
		if counts[rule] == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-8s %6d\n", rule.String()+":", counts[rule])
	}
}
