package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vdobler/custody/report"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Render all charts and print summary statistics",
		Long: `Analyze the data set: bin race and age, cross tabulate race, age and gender
against manner of death and custody status, render one grouped bar chart per
table plus the fixed, fair and ratio charts of the focus category, and print
mean, median and mode for the full and a reduced data set.

All files are written to <out>/DeathInCustody/<timestamp>, created fresh for
every run.

Examples:
  # Analyze with defaults from config.yaml
  custody analyze --input data/DeathInCustody.csv

  # Fail on categories outside the known enumerations
  custody analyze --input data.csv --mode strict

  # Reduce to a third with another seed, write SVG
  custody analyze --input data.csv --fraction 0.33 --seed 7 --format svg`,
		RunE: runAnalyze,
	}

	cmd.Flags().String("out", "", "Output root directory")
	cmd.Flags().String("format", "", "Image format (png, svg, pdf)")
	cmd.Flags().Float64("fraction", 0, "Fraction of records kept in the reduced data set")
	cmd.Flags().Int64("seed", 0, "Seed of the reduction")
	cmd.Flags().String("focus", "", "Outcome category of the summary statistics")
	cmd.Flags().Bool("no-progress", false, "Do not show a progress bar")

	bindFlags(cmd.Flags(), map[string]string{
		"out":             "out",
		"format":          "format",
		"reduce.fraction": "fraction",
		"reduce.seed":     "seed",
		"stats.focus":     "focus",
	})
	return cmd
}

// bindFlags binds viper keys to flags of fs. Every key may be bound
// only once, by one command.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		_ = viper.BindPFlag(key, fs.Lookup(flag))
	}
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := runConfig(time.Now())
	if err != nil {
		return err
	}
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	p := &report.Pipeline{
		Config: cfg,
		Log:    slog.Default(),
		Out:    cmd.OutOrStdout(),
	}
	if !noProgress {
		p.Progress = &barProgress{w: cmd.ErrOrStderr()}
	}

	res, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d charts written to %s\n", len(res.Files), res.OutDir)
	return err
}

// barProgress shows chart rendering on a progress bar.
type barProgress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (b *barProgress) Begin(total int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Rendering charts"),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *barProgress) Done(path string) {
	if b.bar == nil {
		return
	}
	b.bar.Describe(filepath.Base(path))
	if err := b.bar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}
