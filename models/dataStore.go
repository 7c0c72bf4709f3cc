package models

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/ritujane78/web-mapping-assignment2/data"
	"github.com/ritujane78/web-mapping-assignment2/geo"
)

// DataStore holds everything the dashboard serves: the loaded table, the
// enriched boundary features, the geocoded locations, and the selection
// controller. Populated once at startup.
type DataStore struct {
	Table      *Table
	Boundaries *geo.FeatureCollection
	Locations  map[string]geo.Location
	Controller *Controller
}

var Store = DataStore{}

// PopulateDataStore loads the dataset, geocodes every distinct state,
// fetches and enriches the boundary data, and initializes the selection
// controller. Load and fetch failures are fatal to the caller; individual
// geocoding failures are not.
func PopulateDataStore(cfg Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	table, err := loadDataset(cfg.CSVPath)
	if err != nil {
		return err
	}

	geocoder := geo.NewGeocoder(cfg.GeocoderURL, cfg.DataDir)
	for _, state := range table.States() {
		geocoder.Geocode(state)
	}
	if err := geocoder.SaveCache(); err != nil {
		log.Printf("Failed to save geocode cache: %v", err)
	}

	boundaries, err := geo.FetchBoundaries(cfg.BoundariesURL)
	if err != nil {
		return err
	}
	geo.Enrich(boundaries, table.stateStats(), AgeColumns)

	Store = DataStore{
		Table:      table,
		Boundaries: boundaries,
		Locations:  geocoder.Locations(),
		Controller: NewController(table),
	}
	return nil
}

func loadDataset(path string) (*Table, error) {
	if path == "" {
		log.Println("CANCER_CSV not set, using the embedded sample dataset")
		return LoadTable(bytes.NewReader(data.Sample()))
	}
	return LoadTableFile(path)
}

// stateStats projects the table into the per-state fields enrichment copies
// onto boundary features.
func (t *Table) stateStats() map[string]geo.StateStats {
	stats := make(map[string]geo.StateStats, len(t.Rows))
	for _, row := range t.Rows {
		stats[row.State] = geo.StateStats{
			Deaths:     row.TotalDeaths,
			Population: row.TotalPopulation,
			AgeRates:   row.AgeRates,
		}
	}
	return stats
}

// ViewData is one complete recomputation for a selection: the three
// aggregations plus the map frame when a single state is selected.
type ViewData struct {
	Selection  Selection
	Categories []CategorySlice
	Bars       []CrossTabBar
	Points     []MapPoint

	// Frame is the padded bounding box of the selected state's boundary
	// feature, nil under AllStates or when the state has no feature.
	Frame *geo.BBox
}

// Views recomputes every aggregation for a selection. One call produces one
// complete, consistent result; nothing is cached between selections.
func (s *DataStore) Views(sel Selection) ViewData {
	filtered := Filter(s.Table, sel)

	view := ViewData{
		Selection:  sel,
		Categories: AggregateCategories(filtered),
		Bars:       AggregateRaceSex(filtered),
		Points:     AggregateMap(s.Table, s.Locations),
	}

	if sel != AllStates {
		if feature := s.Boundaries.FindFeature(string(sel)); feature != nil {
			bbox, err := geo.FeatureBounds(feature)
			if err != nil {
				log.Printf("Failed to frame %s: %v", sel, err)
			} else {
				padded := bbox.Pad(1.5)
				view.Frame = &padded
			}
		}
	}
	return view
}
