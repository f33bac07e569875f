package custody

import (
	"fmt"
	"strconv"
	"strings"
)

// Canonical bins.
const (
	AsianOceanic = "Asian/Oceanic"
	UnknownAge   = "Unknown"

	// AgeSentinel marks an unknown age in the raw data.
	AgeSentinel = "Unk"
)

// RaceBins lists the race bins in chart order.
var RaceBins = []string{"White", "Hispanic", "Black", AsianOceanic, "Other", "American Indian"}

// AgeBins lists the age bins in chart order.
var AgeBins = []string{"0-29", "30-39", "40-49", "50-59", "60-69", "70+", UnknownAge}

// GenderBins lists the gender bins in chart order.
var GenderBins = []string{"Male", "Female"}

// asianOceanic are the sub-ethnicity labels collapsed into AsianOceanic.
var asianOceanic = NewStringSetFrom([]string{
	"Other Asian", "Filipino", "Vietnamese", "Asian Indian",
	"Pacific Islander", "Korean", "Chinese", "Laotian", "Samoan",
	"Cambodian", "Japanese", "Hawaiian", "Guamanian",
})

// AsianOceanicLabels returns the raw race labels which BinRace maps to
// AsianOceanic.
func AsianOceanicLabels() []string {
	return asianOceanic.Elements()
}

// BinRace maps a raw race label to its bin. Unrecognized labels pass
// through unchanged.
func BinRace(raw string) string {
	if asianOceanic.Contains(raw) {
		return AsianOceanic
	}
	return raw
}

// ageLadder holds the inclusive upper bounds of the decade bins.
var ageLadder = []struct {
	max int
	bin string
}{
	{29, "0-29"},
	{39, "30-39"},
	{49, "40-49"},
	{59, "50-59"},
	{69, "60-69"},
}

// BinAgeInt maps a numeric age to its decade bin.
func BinAgeInt(age int) string {
	for _, step := range ageLadder {
		if age <= step.max {
			return step.bin
		}
	}
	return "70+"
}

// BinAge maps a raw age value to its bin. The sentinel "Unk" maps to
// UnknownAge; everything else must be an integer.
func BinAge(raw string) (string, error) {
	if raw == AgeSentinel {
		return UnknownAge, nil
	}
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("binning age: %w", &ParseError{Field: FieldAge, Index: -1, Value: raw, Err: err})
	}
	return BinAgeInt(age), nil
}
