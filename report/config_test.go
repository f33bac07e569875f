package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/custody"
)

func TestOutDir(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.OutRoot = "/tmp/results"
	cfg.Timestamp = time.Date(2021, 6, 3, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, filepath.Join("/tmp/results", "DeathInCustody", "20210603_090507"), cfg.OutDir())
}

func TestValidate(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Input = "deaths.csv"
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Input = ""
	bad.Format = "gif"
	bad.Reduce.Fraction = 0
	bad.Stats.Dimension = "county"
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, custody.ErrBadFraction)
	for _, want := range []string{"no input file", `"gif"`, `"county"`} {
		assert.Contains(t, err.Error(), want)
	}

	bad = cfg
	bad.Theme.Palette = []string{"mauve-ish"}
	assert.Error(t, bad.Validate())
}

func TestStatsRanking(t *testing.T) {
	race, err := custody.LookupDimension("race")
	require.NoError(t, err)

	s := StatsConfig{}
	assert.Equal(t, custody.RaceBins, s.ranking(race))

	s.Ranking = []string{"Black", "White"}
	assert.Equal(t, []string{"Black", "White"}, s.ranking(race))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "age_hist_custody", Key{"age", "custody"}.String())
}
