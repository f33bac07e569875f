package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/custody"
	"github.com/vdobler/custody/stat"
)

func TestFormatSummary(t *testing.T) {
	a := &Analysis{
		Ranking: []string{"White", "Black"},
		Summary: stat.Summary{N: 3, Mean: 1.5, Median: "Black", Mode: "White"},
	}
	s := FormatSummary("Full data set", a)
	for _, want := range []string{"Full data set", "Observations: 3", "Mean:   1.5", "Median: Black", "Mode:   White", "White < Black"} {
		assert.Contains(t, s, want)
	}

	a.Summary = stat.Summary{}
	assert.Contains(t, FormatSummary("Reduced", a), "no observations")
}

func TestPrintTable(t *testing.T) {
	tab := custody.NewTable("manner_of_death by gender", custody.GenderBins, []string{"Natural", "Suicide"})
	tab.Inc("Male", "Natural")
	tab.Inc("Male", "Natural")
	tab.Inc("Female", "Suicide")
	tab.Inc("Male", "Escaped")

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, tab, custody.GenderBins, []string{"Natural", "Suicide"}))
	out := buf.String()
	assert.Contains(t, out, "manner_of_death by gender")
	assert.Contains(t, out, "Escaped")
	assert.Contains(t, out, "total: 4")
}
