package geo

// StateStats is the per-state slice of the dataset that gets copied onto a
// boundary feature: the totals plus the age-bracket rates keyed by their
// column names.
type StateStats struct {
	Deaths     float64
	Population float64
	AgeRates   map[string]float64
}

// Property names written onto feature properties during enrichment. They
// match the dataset's column names so tooltips can address them directly.
const (
	PropDeaths     = "Total.Number"
	PropPopulation = "Total.Population"
)

// Enrich joins per-state statistics onto boundary features by exact name
// match. Features with no matching state get all fields zeroed, so the map
// renderer never sees a missing property. ageColumns fixes the property set
// written for unmatched features. Enrich runs once after load; it is
// idempotent, so re-running it cannot corrupt the properties.
func Enrich(fc *FeatureCollection, stats map[string]StateStats, ageColumns []string) {
	for _, feature := range fc.Features {
		if feature.Properties == nil {
			feature.Properties = make(map[string]interface{})
		}

		st, ok := stats[feature.Name()]
		if !ok {
			feature.Properties[PropDeaths] = 0.0
			feature.Properties[PropPopulation] = 0.0
			for _, col := range ageColumns {
				feature.Properties[col] = 0.0
			}
			continue
		}

		feature.Properties[PropDeaths] = st.Deaths
		feature.Properties[PropPopulation] = st.Population
		for _, col := range ageColumns {
			feature.Properties[col] = st.AgeRates[col]
		}
	}
}
