// Package stat computes summary statistics over binned counts.
package stat

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/vdobler/custody"
)

// ErrEmpty is returned for count vectors without any observation.
var ErrEmpty = errors.New("no observations")

// Summary holds location statistics of a count vector over ranked bins.
type Summary struct {
	N      int     // number of observations
	Mean   float64 // count weighted mean rank, ranks start at 1
	Median string  // bin of the middle observation in rank order
	Mode   string  // bin with the highest count
}

// Summarize computes the summary of counts, where counts[i] belongs to
// the bin ranking[i]. The ranking is an ordering supplied by the caller
// and not derived from the data.
//
// The median is the bin holding observation ⌊N/2⌋ (0-based) when all N
// observations are lined up in rank order. Ties for the mode resolve to
// the lower rank. Counts must be non-negative whole numbers.
func Summarize(counts []float64, ranking []string) (Summary, error) {
	if len(counts) != len(ranking) {
		return Summary{}, fmt.Errorf("%d counts for %d ranked bins", len(counts), len(ranking))
	}

	var sample stats.Sample
	n := 0
	mode := -1
	for i, c := range counts {
		if c < 0 || math.IsInf(c, 0) || c != math.Trunc(c) {
			return Summary{}, fmt.Errorf("count %g for %s is not a whole number of observations", c, ranking[i])
		}
		if c == 0 {
			// A zero weight leading the sample makes its mean 0/0.
			continue
		}
		sample.Xs = append(sample.Xs, float64(i+1))
		sample.Weights = append(sample.Weights, c)
		n += int(c)
		if mode == -1 || c > counts[mode] {
			mode = i
		}
	}
	if n == 0 {
		return Summary{}, ErrEmpty
	}

	s := Summary{
		N:    n,
		Mean: sample.Mean(),
		Mode: ranking[mode],
	}
	middle := n / 2
	seen := 0
	for i, c := range counts {
		seen += int(c)
		if seen > middle {
			s.Median = ranking[i]
			break
		}
	}
	return s, nil
}

// FromTable extracts the counts of category for each bin of ranking.
func FromTable(t *custody.Table, category string, ranking []string) []float64 {
	return t.Series(category, ranking)
}

// Ratios divides counts by totals element-wise; a zero total gives a
// zero ratio.
func Ratios(counts, totals []float64) ([]float64, error) {
	if len(counts) != len(totals) {
		return nil, fmt.Errorf("%d counts for %d totals", len(counts), len(totals))
	}
	r := make([]float64, len(counts))
	for i := range counts {
		if totals[i] != 0 {
			r[i] = counts[i] / totals[i]
		}
	}
	return r, nil
}

// Without removes the entries of bins listed in exclude from bins and
// the aligned values.
func Without(bins []string, values []float64, exclude []string) ([]string, []float64) {
	skip := custody.NewStringSetFrom(exclude)
	var b []string
	var v []float64
	for i, bin := range bins {
		if skip.Contains(bin) {
			continue
		}
		b = append(b, bin)
		v = append(v, values[i])
	}
	return b, v
}
