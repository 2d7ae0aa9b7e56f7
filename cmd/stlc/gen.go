package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/vic/gostlc/pkg/config"
	"github.com/vic/gostlc/pkg/dataset"
	"github.com/vic/gostlc/pkg/gen"
)

func newGenCmd() *cobra.Command {
	var (
		configPath string
		flags      config.Config
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a dataset of random well-typed terms",
		Long: "Generate a dataset of random well-typed terms with their types and values.\n" +
			"Settings come from --config, or from the nearest stlc.yaml, and are overridden by flags.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadGenConfig(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, &flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts, err := dataset.FromConfig(cfg)
			if err != nil {
				return err
			}
			return runGen(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "configuration file (default: nearest stlc.yaml)")
	f.Int64Var(&flags.Seed, "seed", 0, "base seed; record i uses seed+i")
	f.IntVarP(&flags.Count, "count", "n", config.DefaultCount, "number of records")
	f.IntVarP(&flags.Workers, "workers", "j", 0, "concurrent generators (default: number of CPUs)")
	f.IntVar(&flags.MaxDepth, "max-depth", gen.MaxDepth, "maximum nesting of conditionals and applications")
	f.IntVar(&flags.MaxTypeDepth, "max-type-depth", gen.MaxTypeDepth, "maximum nesting of arrows in types")
	f.StringVar(&flags.Strategy, "strategy", string(gen.StrategyRandom), fmt.Sprintf("one of %v", gen.StrategyNames()))
	f.BoolVarP(&flags.Annotate, "annotate", "a", false, "print binder types in the source column")
	f.BoolVar(&flags.Compile, "compile", false, "add erased and combinator columns")
	f.StringVarP(&flags.Output.Path, "out", "o", "", "output file (default: stdout)")
	f.StringVarP(&flags.Output.Format, "format", "f", config.FormatJSONL, "output format: jsonl or sqlite")
	return cmd
}

func loadGenConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.FindConfig(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			return config.Default(), nil
		}
		path = found
	}
	return config.LoadConfig(path)
}

// applyFlags copies the flags given on the command line over cfg.
func applyFlags(cmd *cobra.Command, cfg, flags *config.Config) {
	set := cmd.Flags().Changed
	if set("seed") {
		cfg.Seed = flags.Seed
	}
	if set("count") {
		cfg.Count = flags.Count
	}
	if set("workers") {
		cfg.Workers = flags.Workers
	}
	if set("max-depth") {
		cfg.MaxDepth = flags.MaxDepth
	}
	if set("max-type-depth") {
		cfg.MaxTypeDepth = flags.MaxTypeDepth
	}
	if set("strategy") {
		cfg.Strategy = flags.Strategy
	}
	if set("annotate") {
		cfg.Annotate = flags.Annotate
	}
	if set("compile") {
		cfg.Compile = flags.Compile
	}
	if set("out") {
		cfg.Output.Path = flags.Output.Path
	}
	if set("format") {
		cfg.Output.Format = flags.Output.Format
	}
}

func openWriter(ctx context.Context, stdout io.Writer, out config.Output) (dataset.Writer, error) {
	switch {
	case out.Format == config.FormatSQLite:
		return dataset.OpenSQLite(ctx, out.Path)
	case out.Path != "":
		return dataset.CreateJSONL(out.Path)
	default:
		return dataset.NewJSONLWriter(stdout), nil
	}
}

func runGen(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config, opts dataset.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	w, err := openWriter(ctx, stdout, cfg.Output)
	if err != nil {
		return err
	}

	// Progress only makes sense on a terminal, and never when records
	// themselves go to the terminal.
	progress := cfg.Output.Path != "" && isTerminal(stderr)

	start := time.Now()
	var written int
	err = dataset.Build(ctx, opts, func(rec dataset.Record) error {
		if err := w.Write(ctx, rec); err != nil {
			return err
		}
		written++
		if progress && (written%100 == 0 || written == opts.Count) {
			fmt.Fprintf(stderr, "\r%d/%d records", written, opts.Count)
		}
		return nil
	})
	if progress {
		fmt.Fprintln(stderr)
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if cfg.Output.Path != "" {
		msg := fmt.Sprintf("wrote %d records to %s in %v", written, cfg.Output.Path, time.Since(start).Round(time.Millisecond))
		if store, ok := w.(*dataset.SQLiteStore); ok && store.Duplicates() > 0 {
			msg += fmt.Sprintf(" (%d duplicate terms skipped)", store.Duplicates())
		}
		log.Print(msg)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
