package custody

import (
	"errors"
	"fmt"
)

// Column names known to the analysis.
const (
	FieldRace    = "race"
	FieldAge     = "age"
	FieldGender  = "gender"
	FieldManner  = "manner_of_death"
	FieldCustody = "custody_status"
)

// RequiredFields must be present in every input.
var RequiredFields = []string{FieldRace, FieldAge, FieldGender, FieldManner, FieldCustody}

// Record is one row of input. An empty string denotes a missing value.
type Record struct {
	Race    string
	Age     string
	Gender  string
	Manner  string
	Custody string

	// Extra holds all other columns by name.
	Extra map[string]string
}

// raw returns the source value of the named column.
func (r *Record) raw(name string) (string, bool) {
	switch name {
	case FieldRace:
		return r.Race, true
	case FieldAge:
		return r.Age, true
	case FieldGender:
		return r.Gender, true
	case FieldManner:
		return r.Manner, true
	case FieldCustody:
		return r.Custody, true
	}
	v, ok := r.Extra[name]
	return v, ok
}

// Dataset is an ordered collection of records. Derived fields (binned
// race and age) are computed by Process and kept next to the source
// values which are never modified.
type Dataset struct {
	Name    string
	Columns []string // all column names in input order
	Records []Record
	N       int

	race, age []string // derived, valid after Process
	processed bool
}

// NewDataset constructs an unprocessed data set. The records are
// not copied.
func NewDataset(name string, columns []string, records []Record) *Dataset {
	return &Dataset{
		Name:    name,
		Columns: columns,
		Records: records,
		N:       len(records),
	}
}

// Process computes the derived fields. A malformed age aborts
// processing with a *ParseError.
func (ds *Dataset) Process() error {
	race := make([]string, ds.N)
	age := make([]string, ds.N)
	for i := range ds.Records {
		r := &ds.Records[i]
		if r.Race != "" {
			race[i] = BinRace(r.Race)
		}
		if r.Age == "" {
			continue
		}
		bin, err := BinAge(r.Age)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Index = i
			}
			return fmt.Errorf("processing %s: %w", ds.Name, err)
		}
		age[i] = bin
	}
	ds.race, ds.age = race, age
	ds.processed = true
	return nil
}

// Processed reports whether the derived fields are available.
func (ds *Dataset) Processed() bool { return ds.processed }

// Field gives access to one column of a data set.
type Field struct {
	// Name of the column.
	Name string

	// Value returns the value of the field for the i'th record in
	// the data set. The empty string is a missing value.
	Value func(i int) string
}

// Field returns the named field. Race and age yield their binned values
// and need a processed data set; every other column yields the raw value.
func (ds *Dataset) Field(name string) (Field, error) {
	switch name {
	case FieldRace, FieldAge:
		if !ds.processed {
			return Field{}, fmt.Errorf("field %s: %w", name, ErrNotProcessed)
		}
		derived := ds.race
		if name == FieldAge {
			derived = ds.age
		}
		return Field{Name: name, Value: func(i int) string { return derived[i] }}, nil
	}
	return ds.Raw(name)
}

// Raw returns the named column with its source values.
func (ds *Dataset) Raw(name string) (Field, error) {
	if !ds.Has(name) {
		return Field{}, fmt.Errorf("no such field %q in %s", name, ds.Name)
	}
	return Field{
		Name: name,
		Value: func(i int) string {
			v, _ := ds.Records[i].raw(name)
			return v
		},
	}, nil
}

// Has reports whether the data set contains the named column.
func (ds *Dataset) Has(name string) bool {
	for _, c := range ds.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Features returns the names of all columns except the two outcome
// columns manner_of_death and custody_status.
func (ds *Dataset) Features() []string {
	var features []string
	for _, c := range ds.Columns {
		if c == FieldManner || c == FieldCustody {
			continue
		}
		features = append(features, c)
	}
	return features
}

// Filter extracts all records where field==value. Race and age compare
// their bins, as Field does, so "Korean" matches nothing while
// "Asian/Oceanic" matches all Korean records. The result shares records
// with ds and is processed if ds was.
func (ds *Dataset) Filter(field, value string) (*Dataset, error) {
	f, err := ds.Field(field)
	if err != nil {
		return nil, err
	}
	var idx []int
	for i := 0; i < ds.N; i++ {
		if f.Value(i) == value {
			idx = append(idx, i)
		}
	}
	return ds.subset(fmt.Sprintf("%s where %s=%s", ds.Name, field, value), idx), nil
}

// subset builds a data set from the records at idx, carrying over
// derived fields.
func (ds *Dataset) subset(name string, idx []int) *Dataset {
	records := make([]Record, len(idx))
	for j, i := range idx {
		records[j] = ds.Records[i]
	}
	sub := NewDataset(name, ds.Columns, records)
	if ds.processed {
		sub.race = make([]string, len(idx))
		sub.age = make([]string, len(idx))
		for j, i := range idx {
			sub.race[j], sub.age[j] = ds.race[i], ds.age[i]
		}
		sub.processed = true
	}
	return sub
}

// Levels returns the distinct non-missing values of field.
func (ds *Dataset) Levels(field string) (StringSet, error) {
	f, err := ds.Field(field)
	if err != nil {
		return nil, err
	}
	levels := NewStringSet()
	for i := 0; i < ds.N; i++ {
		if v := f.Value(i); v != "" {
			levels.Add(v)
		}
	}
	return levels, nil
}

// ValueCounts counts the non-missing values of field.
func (ds *Dataset) ValueCounts(field string) (map[string]int, error) {
	f, err := ds.Field(field)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for i := 0; i < ds.N; i++ {
		if v := f.Value(i); v != "" {
			counts[v]++
		}
	}
	return counts, nil
}
