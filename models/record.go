package models

// Column names expected in the source CSV. The dataset covers cancer
// mortality in the USA from 2007 to 2013, one row per state.
const (
	ColState      = "State"
	ColDeaths     = "Total.Number"
	ColPopulation = "Total.Population"
)

// AgeColumns holds the four age-bracket rate columns, in display order.
var AgeColumns = []string{
	"Rates.Age.< 18",
	"Rates.Age.18-45",
	"Rates.Age.45-64",
	"Rates.Age.> 64",
}

// TypeColumns holds the cancer-type total columns, in display order.
var TypeColumns = []string{
	"Types.Breast.Total",
	"Types.Colorectal.Total",
	"Types.Lung.Total",
}

// TypeNames maps the cancer-type columns to friendly legend labels.
var TypeNames = map[string]string{
	"Types.Breast.Total":     "Breast Cancer",
	"Types.Colorectal.Total": "Colorectal Cancer",
	"Types.Lung.Total":       "Lung Cancer",
}

// Races and Genders define the cross-tabulation axes. Iteration is
// race-major, gender-minor.
var (
	Races   = []string{"White", "Hispanic", "Asian", "Black", "Indigenous"}
	Genders = []string{"Female", "Male"}
)

// RaceSexColumn returns the CSV column holding the mortality rate for a
// (gender, race) pair.
func RaceSexColumn(gender, race string) string {
	return "Rates.Race and Sex." + gender + "." + race
}

// StateRecord is one row of the dataset. Records are immutable after load.
type StateRecord struct {
	State           string
	TotalDeaths     float64
	TotalPopulation float64

	// AgeRates is keyed by the AgeColumns names, TypeTotals by the
	// TypeColumns names, RaceSexRates by RaceSexColumn values.
	AgeRates     map[string]float64
	TypeTotals   map[string]float64
	RaceSexRates map[string]float64
}
