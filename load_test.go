package custody

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(sampleCSV), "sample", 0)
	require.NoError(t, err)
	assert.Equal(t, 7, ds.N)
	assert.Equal(t, []string{"race", "age", "gender", "manner_of_death", "custody_status", "county"}, ds.Columns)

	r := ds.Records[3]
	assert.Equal(t, "Black", r.Race)
	assert.Equal(t, "71", r.Age)
	assert.Equal(t, "Homicide Justified (Law Enforcement Staff)", r.Manner)
	assert.Equal(t, map[string]string{"county": "Alameda"}, r.Extra)

	// Null markers become missing values.
	assert.Equal(t, "", ds.Records[5].Race)
	assert.Equal(t, "", ds.Records[5].Extra["county"])
	assert.Equal(t, "", ds.Records[6].Custody)
}

func TestReadCSVDelimiter(t *testing.T) {
	in := strings.ReplaceAll(sampleCSV, ",", ";")
	ds, err := ReadCSV(strings.NewReader(in), "semicolon", ';')
	require.NoError(t, err)
	assert.Equal(t, 7, ds.N)
	assert.Equal(t, "Korean", ds.Records[1].Race)
}

func TestReadCSVMissingColumns(t *testing.T) {
	in := "race,age,gender,manner_of_death\nWhite,20,Male,Natural\n"
	_, err := ReadCSV(strings.NewReader(in), "short", ',')
	var se *SchemaError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, []string{FieldCustody}, se.Missing)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deaths.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	ds, err := ReadFile(path, ',')
	require.NoError(t, err)
	assert.Equal(t, "deaths.csv", ds.Name)
	assert.Equal(t, 7, ds.N)

	_, err = ReadFile(filepath.Join(t.TempDir(), "nope.csv"), ',')
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("race,age,gender,manner_of_death,custody_status,county\n"), "empty", ',')
	require.NoError(t, err)
	assert.Zero(t, ds.N)
	assert.Empty(t, ds.Records)
	assert.Equal(t, []string{"race", "age", "gender", "manner_of_death", "custody_status", "county"}, ds.Columns)

	require.NoError(t, ds.Process())
	race, _ := LookupDimension("race")
	manner, _ := LookupOutcome("manner")
	tab, err := CrossTab(ds, race.Spec(manner, Strict))
	require.NoError(t, err)
	assert.Zero(t, tab.Total())

	_, err = ReadCSV(strings.NewReader("race;age\n"), "short", ';')
	var se *SchemaError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, []string{FieldGender, FieldManner, FieldCustody}, se.Missing)

	_, err = ReadCSV(strings.NewReader(""), "nothing", ',')
	assert.Error(t, err)
}
