package main

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/vdobler/custody"
	"github.com/vdobler/custody/report"
)

func setDefaults() {
	def := report.DefaultRunConfig()
	viper.SetDefault("input", "data/DeathInCustody_2005-2020_20210603.csv")
	viper.SetDefault("out", def.OutRoot)
	viper.SetDefault("delimiter", string(def.Delimiter))
	viper.SetDefault("format", def.Format)
	viper.SetDefault("mode", def.Mode.String())
	viper.SetDefault("reduce.fraction", def.Reduce.Fraction)
	viper.SetDefault("reduce.seed", def.Reduce.Seed)
	viper.SetDefault("stats.dimension", def.Stats.Dimension)
	viper.SetDefault("stats.outcome", def.Stats.Outcome)
	viper.SetDefault("stats.focus", def.Stats.Focus)
	viper.SetDefault("stats.ranking", []string{})
	viper.SetDefault("stats.exclude_fair", def.Stats.ExcludeFair)
	viper.SetDefault("chart.width", def.Theme.Width)
	viper.SetDefault("chart.height", def.Theme.Height)
	viper.SetDefault("chart.bar_width", def.Theme.BarWidth)
	viper.SetDefault("chart.palette", []string{})
}

// delimiter reads the single-character field delimiter.
func delimiter() (rune, error) {
	s := viper.GetString("delimiter")
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// mode reads how values outside the fixed enumerations are handled.
func mode() (custody.Mode, error) {
	return custody.ParseMode(viper.GetString("mode"))
}

// runConfig copies the viper settings into a report.RunConfig. Nothing
// below cmd reads viper.
func runConfig(now time.Time) (report.RunConfig, error) {
	delim, err := delimiter()
	if err != nil {
		return report.RunConfig{}, err
	}
	m, err := mode()
	if err != nil {
		return report.RunConfig{}, err
	}
	cfg := report.RunConfig{
		ID:        uuid.New(),
		Timestamp: now,
		Input:     viper.GetString("input"),
		Delimiter: delim,
		OutRoot:   viper.GetString("out"),
		Format:    viper.GetString("format"),
		Mode:      m,
		Reduce: report.ReduceConfig{
			Fraction: viper.GetFloat64("reduce.fraction"),
			Seed:     viper.GetInt64("reduce.seed"),
		},
		Stats: report.StatsConfig{
			Dimension:   viper.GetString("stats.dimension"),
			Outcome:     viper.GetString("stats.outcome"),
			Focus:       viper.GetString("stats.focus"),
			Ranking:     viper.GetStringSlice("stats.ranking"),
			ExcludeFair: viper.GetStringSlice("stats.exclude_fair"),
		},
		Theme: custody.Theme{
			Width:     viper.GetFloat64("chart.width"),
			Height:    viper.GetFloat64("chart.height"),
			BarWidth:  viper.GetFloat64("chart.bar_width"),
			Palette:   viper.GetStringSlice("chart.palette"),
			LegendTop: true,
		},
	}
	return cfg, cfg.Validate()
}

// loadDataset reads and processes the configured input.
func loadDataset() (*custody.Dataset, error) {
	delim, err := delimiter()
	if err != nil {
		return nil, err
	}
	ds, err := custody.ReadFile(viper.GetString("input"), delim)
	if err != nil {
		return nil, err
	}
	if err := ds.Process(); err != nil {
		return nil, err
	}
	return ds, nil
}
