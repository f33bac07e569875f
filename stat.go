package custody

import (
	"fmt"
)

// Mode controls how CrossTab treats values outside the fixed
// enumerations of a TabSpec.
type Mode int

const (
	// Permissive adds unseen bins and categories to the table.
	Permissive Mode = iota
	// Strict fails with a *DataValidationError.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "permissive"
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "permissive", "":
		return Permissive, nil
	case "strict":
		return Strict, nil
	}
	return Permissive, fmt.Errorf("unknown mode %q", s)
}

// -------------------------------------------------------------------------
// Dimensions and Outcomes

// Dimension describes a grouping of records into bins.
type Dimension struct {
	Name  string   // short name, used in file names
	Field string   // the field providing the bin
	Bins  []string // fixed bins in chart order
	Label string   // x axis label
	Per   string   // phrase used in chart titles
}

// Outcome describes an outcome variable with its fixed categories.
type Outcome struct {
	Name       string // short name, used in file names
	Field      string
	Title      string
	Categories []string
	Labels     map[string]string // legend label per category, if different
}

// Label returns the legend label of category.
func (o Outcome) Label(category string) string {
	if l, ok := o.Labels[category]; ok {
		return l
	}
	return category
}

// MannerCategories are the manners of death.
var MannerCategories = []string{
	"Natural", "Accidental", "Suicide", "Cannot be Determined",
	"Homicide Willful (Other Inmate)", "Homicide Justified (Law Enforcement Staff)",
	"Other", "Homicide Willful (Law Enforcement Staff)", "Execution",
	"Pending Investigation", "Homicide Justified (Other Inmate)",
}

// CustodyCategories are the custody statuses.
var CustodyCategories = []string{
	"Sentenced", "Process of Arrest", "Booked - Awaiting Trial",
	"Booked - No Charges Filed", "Awaiting Booking", "Other", "In Transit",
	"Out to Court",
}

// Dimensions returns race, age and gender.
func Dimensions() []Dimension {
	return []Dimension{
		{Name: "race", Field: FieldRace, Bins: RaceBins, Label: "Racial Labels", Per: "per Racial Label"},
		{Name: "age", Field: FieldAge, Bins: AgeBins, Label: "Age Labels", Per: "per Age Group"},
		{Name: "gender", Field: FieldGender, Bins: GenderBins, Label: "Gender Labels", Per: "by Gender"},
	}
}

// Outcomes returns manner of death and custody status.
func Outcomes() []Outcome {
	return []Outcome{
		{
			Name: "manner", Field: FieldManner, Title: "Manner of Death",
			Categories: MannerCategories,
			Labels: map[string]string{
				"Cannot be Determined":                       "Unknown",
				"Homicide Willful (Other Inmate)":            "Homicide Willful: Inmate",
				"Homicide Justified (Law Enforcement Staff)": "Homicide Justified: Law Enforcement",
				"Homicide Willful (Law Enforcement Staff)":   "Homicide Willful: Law Enforcement",
				"Homicide Justified (Other Inmate)":          "Homicide Justified: Inmate",
			},
		},
		{
			Name: "custody", Field: FieldCustody, Title: "Custody Status",
			Categories: CustodyCategories,
		},
	}
}

// LookupDimension finds a dimension by name.
func LookupDimension(name string) (Dimension, error) {
	for _, d := range Dimensions() {
		if d.Name == name {
			return d, nil
		}
	}
	return Dimension{}, fmt.Errorf("unknown dimension %q", name)
}

// LookupOutcome finds an outcome by name.
func LookupOutcome(name string) (Outcome, error) {
	for _, o := range Outcomes() {
		if o.Name == name {
			return o, nil
		}
	}
	return Outcome{}, fmt.Errorf("unknown outcome %q", name)
}

// -------------------------------------------------------------------------
// Cross Tabulation

// TabSpec parameterizes CrossTab.
type TabSpec struct {
	Group      string   // grouping field
	Outcome    string   // outcome field
	Bins       []string // bins seeded with zero counts
	Categories []string // outcome categories seeded with zero counts
	Mode       Mode
}

// Spec returns the TabSpec crossing d with o.
func (d Dimension) Spec(o Outcome, mode Mode) TabSpec {
	return TabSpec{
		Group:      d.Field,
		Outcome:    o.Field,
		Bins:       d.Bins,
		Categories: o.Categories,
		Mode:       mode,
	}
}

// CrossTab counts the records of ds per (bin, outcome category).
// Records missing the group or the outcome value are skipped, so the
// table total equals the number of records having both.
func CrossTab(ds *Dataset, spec TabSpec) (*Table, error) {
	group, err := ds.Field(spec.Group)
	if err != nil {
		return nil, err
	}
	outcome, err := ds.Field(spec.Outcome)
	if err != nil {
		return nil, err
	}

	t := NewTable(fmt.Sprintf("%s by %s", spec.Outcome, spec.Group), spec.Bins, spec.Categories)
	for i := 0; i < ds.N; i++ {
		bin, cat := group.Value(i), outcome.Value(i)
		if bin == "" || cat == "" {
			continue
		}
		if spec.Mode == Strict {
			if t.bins.Find(bin) == -1 {
				return nil, &DataValidationError{Field: spec.Group, Index: i, Value: bin}
			}
			if t.cats.Find(cat) == -1 {
				return nil, &DataValidationError{Field: spec.Outcome, Index: i, Value: cat}
			}
		}
		t.Inc(bin, cat)
	}
	return t, nil
}

// Table holds counts indexed by (bin, category). Bins and categories
// keep their seeding order; values added later are appended.
type Table struct {
	Name string

	bins, cats *stringPool
	counts     [][]int // counts[bin][category]
}

// NewTable returns a zero-filled table.
func NewTable(name string, bins, categories []string) *Table {
	t := &Table{
		Name: name,
		bins: newStringPool(len(bins)),
		cats: newStringPool(len(categories)),
	}
	for _, c := range categories {
		t.addCategory(c)
	}
	for _, b := range bins {
		t.addBin(b)
	}
	return t
}

func (t *Table) addBin(bin string) int {
	i, added := t.bins.Add(bin)
	if added {
		t.counts = append(t.counts, make([]int, t.cats.Len()))
	}
	return i
}

func (t *Table) addCategory(cat string) int {
	j, added := t.cats.Add(cat)
	if added {
		for i := range t.counts {
			t.counts[i] = append(t.counts[i], 0)
		}
	}
	return j
}

// Inc increments the cell (bin, cat), adding bin or cat if needed.
func (t *Table) Inc(bin, cat string) {
	i, j := t.addBin(bin), t.addCategory(cat)
	t.counts[i][j]++
}

// Count returns the count of cell (bin, cat); 0 for unknown cells.
func (t *Table) Count(bin, cat string) int {
	i, j := t.bins.Find(bin), t.cats.Find(cat)
	if i == -1 || j == -1 {
		return 0
	}
	return t.counts[i][j]
}

// Bins returns all bins of t.
func (t *Table) Bins() []string { return t.bins.Strings() }

// Categories returns all categories of t.
func (t *Table) Categories() []string { return t.cats.Strings() }

// Series returns the counts of cat for each of bins.
func (t *Table) Series(cat string, bins []string) []float64 {
	s := make([]float64, len(bins))
	for i, b := range bins {
		s[i] = float64(t.Count(b, cat))
	}
	return s
}

// RowTotal sums the counts of bin over all categories.
func (t *Table) RowTotal(bin string) int {
	i := t.bins.Find(bin)
	if i == -1 {
		return 0
	}
	sum := 0
	for _, c := range t.counts[i] {
		sum += c
	}
	return sum
}

// ColumnTotal sums the counts of cat over all bins.
func (t *Table) ColumnTotal(cat string) int {
	j := t.cats.Find(cat)
	if j == -1 {
		return 0
	}
	sum := 0
	for i := range t.counts {
		sum += t.counts[i][j]
	}
	return sum
}

// Total sums all cells.
func (t *Table) Total() int {
	sum := 0
	for _, row := range t.counts {
		for _, c := range row {
			sum += c
		}
	}
	return sum
}

// Extra returns the bins and categories of t not contained in the given
// enumerations.
func (t *Table) Extra(bins, categories []string) (extraBins, extraCats []string) {
	return NewStringSetFrom(bins).Missing(t.bins.Strings()),
		NewStringSetFrom(categories).Missing(t.cats.Strings())
}

// Equal reports whether t and u hold the same counts for the same
// bins and categories.
func (t *Table) Equal(u *Table) bool {
	if t.bins.Len() != u.bins.Len() || t.cats.Len() != u.cats.Len() {
		return false
	}
	for i := 0; i < t.bins.Len(); i++ {
		b := t.bins.Get(i)
		if u.bins.Find(b) == -1 {
			return false
		}
		for j := 0; j < t.cats.Len(); j++ {
			c := t.cats.Get(j)
			if u.cats.Find(c) == -1 || t.counts[i][j] != u.Count(b, c) {
				return false
			}
		}
	}
	return true
}
