// Package geo handles boundary data, geocoding, and the geographic join of
// per-state statistics onto boundary features.
package geo

import "encoding/json"

// FeatureCollection is a GeoJSON document of named boundary features.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// Feature is one boundary polygon. Its Properties bag carries the feature
// name and, after enrichment, the per-state statistics.
type Feature struct {
	Type       string                 `json:"type"`
	ID         string                 `json:"id,omitempty"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

// Geometry keeps coordinates raw: Polygon and MultiPolygon nest differently,
// so they are decoded on demand by Bounds.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Name returns the feature's name property, or "" if absent.
func (f *Feature) Name() string {
	name, _ := f.Properties["name"].(string)
	return name
}

// FindFeature returns the first feature whose name matches exactly.
func (fc *FeatureCollection) FindFeature(name string) *Feature {
	for _, f := range fc.Features {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
