package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ritujane78/web-mapping-assignment2/data"
	"github.com/ritujane78/web-mapping-assignment2/geo"
)

func TestEmbeddedSampleLoads(t *testing.T) {
	table, err := LoadTable(bytes.NewReader(data.Sample()))
	if err != nil {
		t.Fatalf("Embedded sample failed to load: %v", err)
	}
	if len(table.Rows) == 0 {
		t.Fatal("Embedded sample has no rows")
	}
	if _, ok := table.Lookup("California"); !ok {
		t.Error("Embedded sample missing California")
	}
}

func TestViews(t *testing.T) {
	table := twoStateTable(t)
	store := DataStore{
		Table: table,
		Boundaries: &geo.FeatureCollection{
			Features: []*geo.Feature{{
				Type:       "Feature",
				Properties: map[string]interface{}{"name": "Alpha"},
				Geometry: geo.Geometry{
					Type:        "Polygon",
					Coordinates: json.RawMessage(`[[[-100, 40], [-95, 40], [-95, 45], [-100, 45], [-100, 40]]]`),
				},
			}},
		},
		Locations:  map[string]geo.Location{"Alpha": {Lat: 42, Lon: -97, Known: true}},
		Controller: NewController(table),
	}

	view := store.Views(AllStates)
	if view.Frame != nil {
		t.Error("AllStates view must not frame a state")
	}
	if len(view.Categories) != 3 || len(view.Bars) != 10 || len(view.Points) != 2 {
		t.Errorf("View sizes = %d/%d/%d, want 3/10/2",
			len(view.Categories), len(view.Bars), len(view.Points))
	}

	view = store.Views(Selection("Alpha"))
	if view.Frame == nil {
		t.Fatal("Selecting Alpha must frame its boundary feature")
	}
	if view.Frame.MinLon >= -100 || view.Frame.MaxLon <= -95 {
		t.Errorf("Frame = %+v, want a padded box around -100..-95", view.Frame)
	}

	// Beta has no boundary feature; the view still computes, unframed.
	view = store.Views(Selection("Beta"))
	if view.Frame != nil {
		t.Error("A state without a boundary feature must not be framed")
	}
}
