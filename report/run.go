// Package report runs the complete analysis: it loads the data set,
// builds all cross tabulations, renders the charts and prints summary
// statistics for the full and the reduced data set.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/vdobler/custody"
	"github.com/vdobler/custody/geom"
	"github.com/vdobler/custody/stat"
)

// Key identifies one cross tabulation.
type Key struct {
	Dimension string
	Outcome   string
}

func (k Key) String() string { return k.Dimension + "_hist_" + k.Outcome }

// CrossTabs builds one table per (dimension, outcome) pair. The tables
// are independent reductions over the same immutable data set and are
// computed concurrently.
func CrossTabs(ctx context.Context, ds *custody.Dataset, dims []custody.Dimension, outcomes []custody.Outcome, mode custody.Mode) (map[Key]*custody.Table, error) {
	type job struct {
		key  Key
		spec custody.TabSpec
	}
	var jobs []job
	for _, d := range dims {
		for _, o := range outcomes {
			jobs = append(jobs, job{Key{d.Name, o.Name}, d.Spec(o, mode)})
		}
	}

	results := make([]*custody.Table, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		i, j := i, j // per-iteration copies; go directive is below 1.22
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := custody.CrossTab(ds, j.spec)
			if err != nil {
				return fmt.Errorf("cross tabulating %s: %w", j.key, err)
			}
			results[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tables := make(map[Key]*custody.Table, len(jobs))
	for i, j := range jobs {
		tables[j.key] = results[i]
	}
	return tables, nil
}

// Analysis is the outcome of analysing one data set.
type Analysis struct {
	Dataset *custody.Dataset
	Tables  map[Key]*custody.Table

	Ranking []string  // bins in rank order
	Focus   []float64 // focus category counts aligned to Ranking
	Ratios  []float64 // Focus divided by all records per bin
	Summary stat.Summary
}

// Result describes a finished run.
type Result struct {
	OutDir  string
	Files   []string
	Full    *Analysis
	Reduced *Analysis
}

// Progress is told about chart rendering.
type Progress interface {
	Begin(total int)
	Done(path string)
}

// Pipeline executes a RunConfig.
type Pipeline struct {
	Config   RunConfig
	Log      *slog.Logger
	Out      io.Writer // console summary, nil to discard
	Progress Progress  // optional
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Log == nil {
		return slog.Default()
	}
	return p.Log
}

// Run performs the complete analysis. Any error aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	cfg := p.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := p.logger().With("run", cfg.ID.String())

	ds, err := custody.ReadFile(cfg.Input, cfg.Delimiter)
	if err != nil {
		return nil, err
	}
	if err := ds.Process(); err != nil {
		return nil, err
	}
	log.Info("loaded data set", "name", ds.Name, "records", ds.N, "features", len(ds.Features()))

	outDir := cfg.OutDir()
	if err := os.MkdirAll(filepath.Dir(outDir), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.Mkdir(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	full, err := p.analyze(ctx, log, ds, custody.Dimensions())
	if err != nil {
		return nil, err
	}

	reducedDS, err := ds.Reduce(cfg.Reduce.Fraction, cfg.Reduce.Seed)
	if err != nil {
		return nil, err
	}
	log.Info("reduced data set", "records", reducedDS.N, "fraction", cfg.Reduce.Fraction, "seed", cfg.Reduce.Seed)
	statsDim, err := cfg.Stats.dimension()
	if err != nil {
		return nil, err
	}
	reduced, err := p.analyze(ctx, log, reducedDS, []custody.Dimension{statsDim})
	if err != nil {
		return nil, err
	}

	charts, err := p.plan(full, "")
	if err != nil {
		return nil, err
	}
	rc, err := p.plan(reduced, "reduced_")
	if err != nil {
		return nil, err
	}
	charts = append(charts, rc...)

	files, err := p.render(ctx, log, outDir, charts)
	if err != nil {
		return nil, err
	}

	if p.Out != nil {
		if err := PrintSummary(p.Out, "Full data set", full); err != nil {
			return nil, err
		}
		if err := PrintSummary(p.Out, "Reduced data set", reduced); err != nil {
			return nil, err
		}
	}
	log.Info("run complete", "dir", outDir, "charts", len(files))

	return &Result{OutDir: outDir, Files: files, Full: full, Reduced: reduced}, nil
}

// analyze builds the cross tabulations of ds for dims and the summary
// statistics.
func (p *Pipeline) analyze(ctx context.Context, log *slog.Logger, ds *custody.Dataset, dims []custody.Dimension) (*Analysis, error) {
	cfg := p.Config
	outcomes := custody.Outcomes()
	tables, err := CrossTabs(ctx, ds, dims, outcomes, cfg.Mode)
	if err != nil {
		return nil, err
	}
	for _, d := range dims {
		for _, o := range outcomes {
			t := tables[Key{d.Name, o.Name}]
			if bins, cats := t.Extra(d.Bins, o.Categories); len(bins)+len(cats) > 0 {
				log.Warn("values outside enumeration", "table", t.Name, "bins", bins, "categories", cats)
			}
			log.Debug("cross tabulated", "table", t.Name, "total", t.Total())
		}
	}

	statsDim, err := cfg.Stats.dimension()
	if err != nil {
		return nil, err
	}
	t, ok := tables[Key{statsDim.Name, cfg.Stats.Outcome}]
	if !ok {
		return nil, fmt.Errorf("no table for %s by %s", cfg.Stats.Outcome, statsDim.Name)
	}

	a := &Analysis{Dataset: ds, Tables: tables, Ranking: cfg.Stats.ranking(statsDim)}
	a.Focus = stat.FromTable(t, cfg.Stats.Focus, a.Ranking)

	counts, err := ds.ValueCounts(statsDim.Field)
	if err != nil {
		return nil, err
	}
	totals := make([]float64, len(a.Ranking))
	for i, bin := range a.Ranking {
		totals[i] = float64(counts[bin])
	}
	if a.Ratios, err = stat.Ratios(a.Focus, totals); err != nil {
		return nil, err
	}

	a.Summary, err = stat.Summarize(a.Focus, a.Ranking)
	switch {
	case errors.Is(err, stat.ErrEmpty):
		log.Warn("no observations of focus category", "focus", cfg.Stats.Focus, "data", ds.Name)
	case err != nil:
		return nil, err
	}
	return a, nil
}

type chart struct {
	name string
	plot *custody.Plot
}

// plan lists the charts of a: one grouped bar chart per table plus the
// fixed, fair and ratio charts of the focus category.
func (p *Pipeline) plan(a *Analysis, prefix string) ([]chart, error) {
	var charts []chart
	for _, d := range custody.Dimensions() {
		for _, o := range custody.Outcomes() {
			k := Key{d.Name, o.Name}
			t, ok := a.Tables[k]
			if !ok {
				continue
			}
			charts = append(charts, chart{prefix + k.String(), custody.NewCrossTabPlot(t, d, o)})
		}
	}

	sc := p.Config.Stats
	d, err := sc.dimension()
	if err != nil {
		return nil, err
	}
	o, err := custody.LookupOutcome(sc.Outcome)
	if err != nil {
		return nil, err
	}
	focus := o.Label(sc.Focus)
	xlabel := d.Label

	charts = append(charts, chart{prefix + "stats_fixed_graph", custody.NewColumnPlot(
		fmt.Sprintf("Number of Deaths: %s", focus), xlabel, "Number of Deaths",
		a.Ranking, a.Focus)})

	fairBins, fairValues := stat.Without(a.Ranking, a.Focus, sc.ExcludeFair)
	if len(fairBins) > 0 {
		charts = append(charts, chart{prefix + "stats_fair_graph", custody.NewColumnPlot(
			fmt.Sprintf("Number of Deaths: %s", focus), xlabel, "Number of Deaths",
			fairBins, fairValues)})
	}

	charts = append(charts, chart{prefix + "stats_real_graph", custody.NewColumnPlot(
		fmt.Sprintf("Ratio of %s vs Total Deaths", focus), xlabel, "Ratio of Total Deaths",
		a.Ranking, a.Ratios)})
	return charts, nil
}

func (p *Pipeline) render(ctx context.Context, log *slog.Logger, dir string, charts []chart) ([]string, error) {
	bars := geom.Bars{Theme: p.Config.Theme}
	if p.Progress != nil {
		p.Progress.Begin(len(charts))
	}
	files := make([]string, 0, len(charts))
	for _, c := range charts {
		if err := ctx.Err(); err != nil {
			return files, err
		}
		path := filepath.Join(dir, c.name+"."+p.Config.Format)
		if err := bars.Save(c.plot, path); err != nil {
			return files, err
		}
		log.Debug("wrote chart", "path", path)
		files = append(files, path)
		if p.Progress != nil {
			p.Progress.Done(path)
		}
	}
	return files, nil
}
