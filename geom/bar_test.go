package geom

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/custody"
)

func grouped() *custody.Plot {
	tab := custody.NewTable("t", custody.GenderBins, []string{"Natural", "Suicide", "Accidental"})
	tab.Inc("Male", "Natural")
	tab.Inc("Male", "Natural")
	tab.Inc("Female", "Suicide")
	tab.Inc("Male", "Accidental")
	gender, _ := custody.LookupDimension("gender")
	o := custody.Outcome{Name: "manner", Title: "Manner of Death", Categories: []string{"Natural", "Suicide", "Accidental"}}
	return custody.NewCrossTabPlot(tab, gender, o)
}

func TestRender(t *testing.T) {
	gp, err := Bars{Theme: custody.DefaultTheme}.Render(grouped())
	require.NoError(t, err)
	assert.Equal(t, "Number of Deaths by Gender by Manner of Death", gp.Title.Text)
	assert.Equal(t, "Gender Labels", gp.X.Label.Text)
	assert.Equal(t, 0.0, gp.Y.Min)
}

func TestRenderErrors(t *testing.T) {
	_, err := Bars{Theme: custody.DefaultTheme}.Render(&custody.Plot{Title: "empty"})
	assert.Error(t, err)

	th := custody.DefaultTheme
	th.Palette = []string{"not-a-color"}
	_, err = Bars{Theme: th}.Render(grouped())
	assert.Error(t, err)
}

func TestSavePalette(t *testing.T) {
	dir := t.TempDir()
	th := custody.DefaultTheme
	th.Palette = []string{"#1b9e77", "#d95f02", "#7570b3"}
	path := filepath.Join(dir, "palette.png")
	require.NoError(t, Bars{Theme: th}.Save(grouped(), path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	// All-zero ratios still give a chart.
	p := custody.NewColumnPlot("Ratio", "x", "ratio", []string{"a", "b"}, []float64{0, 0})
	path = filepath.Join(dir, "zero.svg")
	require.NoError(t, Bars{}.Save(p, path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{"png", "svg", "pdf"} {
		path := filepath.Join(dir, "chart."+ext)
		require.NoError(t, Bars{Theme: custody.DefaultTheme}.Save(grouped(), path))
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, fi.Size(), ext)
	}

	err := Bars{}.Save(grouped(), filepath.Join(dir, "missing", "chart.png"))
	assert.Error(t, err)
}
