package custody

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// nullValues are cell contents treated as missing.
var nullValues = []string{"", "NA", "NaN", "N/A"}

// ReadCSV reads a delimited table with header line from r. All columns
// are read as strings; cells listed in nullValues become missing values.
// The required columns are checked before any record is built.
func ReadCSV(r io.Reader, name string, delimiter rune) (*Dataset, error) {
	if delimiter == 0 {
		delimiter = ','
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(delimiter),
		dataframe.NaNValues(nullValues),
	)
	if df.Err != nil {
		// gota refuses frames without rows; a bare header is an empty
		// data set.
		if header, ok := headerOnly(data, delimiter); ok {
			return emptyDataset(name, header)
		}
		return nil, fmt.Errorf("reading %s: %w", name, df.Err)
	}
	return fromDataFrame(df, name)
}

// headerOnly returns the header of data if data holds no record line.
func headerOnly(data []byte, delimiter rune) ([]string, bool) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delimiter
	rows, err := cr.ReadAll()
	if err != nil || len(rows) != 1 {
		return nil, false
	}
	return rows[0], true
}

func emptyDataset(name string, header []string) (*Dataset, error) {
	if missing := NewStringSetFrom(header).Missing(RequiredFields); len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	return NewDataset(name, header, nil), nil
}

// ReadFile reads the delimited file at path, see ReadCSV.
func ReadFile(path string, delimiter rune) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data set: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, filepath.Base(path), delimiter)
}

func fromDataFrame(df dataframe.DataFrame, name string) (*Dataset, error) {
	columns := df.Names()
	if missing := NewStringSetFrom(columns).Missing(RequiredFields); len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	n := df.Nrow()
	values := make(map[string][]string, len(columns))
	for _, c := range columns {
		col := df.Col(c)
		vals := col.Records()
		for i, isNaN := range col.IsNaN() {
			if isNaN || isNull(vals[i]) {
				vals[i] = ""
			}
		}
		values[c] = vals
	}

	required := NewStringSetFrom(RequiredFields)
	records := make([]Record, n)
	for i := range records {
		r := &records[i]
		r.Race = values[FieldRace][i]
		r.Age = values[FieldAge][i]
		r.Gender = values[FieldGender][i]
		r.Manner = values[FieldManner][i]
		r.Custody = values[FieldCustody][i]
		for _, c := range columns {
			if required.Contains(c) {
				continue
			}
			if r.Extra == nil {
				r.Extra = make(map[string]string, len(columns)-len(RequiredFields))
			}
			r.Extra[c] = values[c][i]
		}
	}
	return NewDataset(name, columns, records), nil
}

func isNull(s string) bool {
	s = strings.TrimSpace(s)
	for _, null := range nullValues {
		if s == null {
			return true
		}
	}
	return false
}
