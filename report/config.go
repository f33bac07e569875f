package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vdobler/custody"
)

// TimestampLayout names the per-run output directory.
const TimestampLayout = "20060102_150405"

// RunConfig carries everything a pipeline run needs. It replaces any
// process-wide state: the output directory derives from OutRoot and
// Timestamp only.
type RunConfig struct {
	ID        uuid.UUID
	Timestamp time.Time

	Input     string
	Delimiter rune
	OutRoot   string
	Format    string // image format: png, svg or pdf
	Mode      custody.Mode

	Reduce ReduceConfig
	Stats  StatsConfig
	Theme  custody.Theme
}

// ReduceConfig controls the reduced data set.
type ReduceConfig struct {
	Fraction float64
	Seed     int64
}

// StatsConfig selects the count vector the summary statistics and the
// fixed, fair and ratio charts are computed from: the counts of one
// Focus category of Outcome for the bins of Dimension.
type StatsConfig struct {
	Dimension string
	Outcome   string
	Focus     string

	// Ranking orders the bins for mean and median. Empty means the
	// bin order of Dimension.
	Ranking []string

	// ExcludeFair lists bins left out of the fair chart.
	ExcludeFair []string
}

// DefaultRunConfig returns a configuration with a fresh ID and the
// current time.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		ID:        uuid.New(),
		Timestamp: time.Now(),
		Delimiter: ',',
		OutRoot:   "out",
		Format:    "png",
		Mode:      custody.Permissive,
		Reduce:    ReduceConfig{Fraction: 0.5, Seed: 1},
		Stats: StatsConfig{
			Dimension:   "race",
			Outcome:     "manner",
			Focus:       "Homicide Justified (Law Enforcement Staff)",
			ExcludeFair: []string{"Hispanic"},
		},
		Theme: custody.DefaultTheme,
	}
}

// OutDir is the directory all files of this run are written to.
func (c RunConfig) OutDir() string {
	return filepath.Join(c.OutRoot, "DeathInCustody", c.Timestamp.Format(TimestampLayout))
}

// Validate checks c for consistency.
func (c RunConfig) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("no input file"))
	}
	if c.OutRoot == "" {
		errs = append(errs, errors.New("no output directory"))
	}
	switch c.Format {
	case "png", "svg", "pdf":
	default:
		errs = append(errs, fmt.Errorf("unsupported image format %q", c.Format))
	}
	if !(c.Reduce.Fraction > 0 && c.Reduce.Fraction <= 1) {
		errs = append(errs, fmt.Errorf("reduce fraction %g: %w", c.Reduce.Fraction, custody.ErrBadFraction))
	}
	if c.Timestamp.IsZero() {
		errs = append(errs, errors.New("no run timestamp"))
	}
	if _, err := c.Stats.dimension(); err != nil {
		errs = append(errs, err)
	}
	if _, err := custody.LookupOutcome(c.Stats.Outcome); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Theme.Colors(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid run configuration: %w", errors.Join(errs...))
	}
	return nil
}

func (s StatsConfig) dimension() (custody.Dimension, error) {
	return custody.LookupDimension(s.Dimension)
}

// ranking returns the effective ranking for dimension d.
func (s StatsConfig) ranking(d custody.Dimension) []string {
	if len(s.Ranking) > 0 {
		return s.Ranking
	}
	return d.Bins
}
