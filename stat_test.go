package custody

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const justified = "Homicide Justified (Law Enforcement Staff)"

func TestCrossTab(t *testing.T) {
	ds := sample(t)
	race, _ := LookupDimension("race")
	manner, _ := LookupOutcome("manner")

	tab, err := CrossTab(ds, race.Spec(manner, Permissive))
	require.NoError(t, err)

	// The record without race is skipped.
	assert.Equal(t, 6, tab.Total())
	assert.Equal(t, 2, tab.Count("Hispanic", justified))
	assert.Equal(t, 1, tab.Count("Black", justified))
	assert.Equal(t, 1, tab.Count(AsianOceanic, "Natural"))
	assert.Equal(t, 1, tab.Count(AsianOceanic, "Suicide"))
	assert.Equal(t, 0, tab.Count("Other", "Natural"))
	assert.Equal(t, 0, tab.Count("Martian", "Natural"))

	// All fixed bins and categories are present, in order.
	assert.Equal(t, RaceBins, tab.Bins())
	assert.Equal(t, MannerCategories, tab.Categories())

	assert.Equal(t, []float64{0, 2, 1, 0, 0, 0}, tab.Series(justified, RaceBins))
	assert.Equal(t, 2, tab.RowTotal(AsianOceanic))
	assert.Equal(t, 3, tab.ColumnTotal(justified))
}

func TestCrossTabTotals(t *testing.T) {
	ds := sample(t)
	for _, d := range Dimensions() {
		for _, o := range Outcomes() {
			tab, err := CrossTab(ds, d.Spec(o, Permissive))
			require.NoError(t, err)

			group, _ := ds.Field(d.Field)
			outcome, _ := ds.Field(o.Field)
			complete := 0
			for i := 0; i < ds.N; i++ {
				if group.Value(i) != "" && outcome.Value(i) != "" {
					complete++
				}
			}
			assert.Equal(t, complete, tab.Total(), tab.Name)

			rows, cols := 0, 0
			for _, b := range tab.Bins() {
				rows += tab.RowTotal(b)
			}
			for _, c := range tab.Categories() {
				cols += tab.ColumnTotal(c)
			}
			assert.Equal(t, tab.Total(), rows, tab.Name)
			assert.Equal(t, tab.Total(), cols, tab.Name)
		}
	}
}

func TestCrossTabUnknownValues(t *testing.T) {
	records := []Record{
		{Race: "White", Age: "30", Gender: "Male", Manner: "Natural", Custody: "Sentenced"},
		{Race: "Martian", Age: "30", Gender: "Male", Manner: "Natural", Custody: "Sentenced"},
		{Race: "White", Age: "30", Gender: "Male", Manner: "Abducted", Custody: "Sentenced"},
	}
	ds := NewDataset("odd", RequiredFields, records)
	require.NoError(t, ds.Process())
	race, _ := LookupDimension("race")
	manner, _ := LookupOutcome("manner")

	tab, err := CrossTab(ds, race.Spec(manner, Permissive))
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Total())
	assert.Equal(t, 1, tab.Count("Martian", "Natural"))
	assert.Equal(t, 1, tab.Count("White", "Abducted"))
	bins, cats := tab.Extra(RaceBins, MannerCategories)
	assert.Equal(t, []string{"Martian"}, bins)
	assert.Equal(t, []string{"Abducted"}, cats)

	_, err = CrossTab(ds, race.Spec(manner, Strict))
	var dve *DataValidationError
	require.True(t, errors.As(err, &dve), "got %v", err)
	assert.Equal(t, FieldRace, dve.Field)
	assert.Equal(t, 1, dve.Index)
	assert.Equal(t, "Martian", dve.Value)
}

func TestCrossTabNotProcessed(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(sampleCSV), "raw", ',')
	require.NoError(t, err)
	race, _ := LookupDimension("race")
	manner, _ := LookupOutcome("manner")
	_, err = CrossTab(ds, race.Spec(manner, Permissive))
	assert.ErrorIs(t, err, ErrNotProcessed)

	// Gender needs no derived field.
	gender, _ := LookupDimension("gender")
	tab, err := CrossTab(ds, gender.Spec(manner, Permissive))
	require.NoError(t, err)
	assert.Equal(t, 7, tab.Total())
}

func TestTableEqual(t *testing.T) {
	a := NewTable("a", []string{"x", "y"}, []string{"p", "q"})
	b := NewTable("b", []string{"y", "x"}, []string{"q", "p"})
	assert.True(t, a.Equal(b))

	a.Inc("x", "p")
	assert.False(t, a.Equal(b))
	b.Inc("x", "p")
	assert.True(t, a.Equal(b))

	b.Inc("z", "p")
	assert.False(t, a.Equal(b))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"race", "age", "gender"} {
		d, err := LookupDimension(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.Name)
	}
	_, err := LookupDimension("county")
	assert.Error(t, err)

	o, err := LookupOutcome("manner")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", o.Label("Cannot be Determined"))
	assert.Equal(t, "Natural", o.Label("Natural"))
	_, err = LookupOutcome("weather")
	assert.Error(t, err)
}

func TestMode(t *testing.T) {
	for _, m := range []Mode{Permissive, Strict} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("lenient")
	assert.Error(t, err)
}

func TestCrossTabCollapsedRace(t *testing.T) {
	race, _ := LookupDimension("race")
	manner, _ := LookupOutcome("manner")
	for _, tc := range []struct {
		manners []string
		want    map[string]int
	}{
		{[]string{"Natural", "Suicide"}, map[string]int{"Natural": 1, "Suicide": 1}},
		{[]string{"Natural", "Natural"}, map[string]int{"Natural": 2}},
	} {
		ds := NewDataset("pair", RequiredFields, []Record{
			{Race: "Chinese", Age: "40", Gender: "Male", Manner: tc.manners[0]},
			{Race: "Hawaiian", Age: "50", Gender: "Male", Manner: tc.manners[1]},
		})
		require.NoError(t, ds.Process())
		tab, err := CrossTab(ds, race.Spec(manner, Strict))
		require.NoError(t, err)

		assert.Equal(t, 2, tab.RowTotal(AsianOceanic))
		for cat, n := range tc.want {
			assert.Equal(t, n, tab.Count(AsianOceanic, cat), cat)
		}
		assert.Equal(t, 2, tab.Total())
	}
}

func TestCrossTabIdempotent(t *testing.T) {
	ds := sample(t)
	for _, d := range Dimensions() {
		for _, o := range Outcomes() {
			a, err := CrossTab(ds, d.Spec(o, Permissive))
			require.NoError(t, err)
			b, err := CrossTab(ds, d.Spec(o, Permissive))
			require.NoError(t, err)
			assert.True(t, a.Equal(b), a.Name)
		}
	}
}
