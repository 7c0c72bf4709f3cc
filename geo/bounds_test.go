package geo

import (
	"encoding/json"
	"testing"
)

func polygonFeature(name string, coordinates string) *Feature {
	return &Feature{
		Type:       "Feature",
		Properties: map[string]interface{}{"name": name},
		Geometry: Geometry{
			Type:        "Polygon",
			Coordinates: json.RawMessage(coordinates),
		},
	}
}

func TestFeatureBoundsPolygon(t *testing.T) {
	f := polygonFeature("Alpha", `[[[-100, 40], [-95, 40], [-95, 45], [-100, 45], [-100, 40]]]`)

	bbox, err := FeatureBounds(f)
	if err != nil {
		t.Fatalf("FeatureBounds failed: %v", err)
	}
	if bbox.MinLon != -100 || bbox.MaxLon != -95 || bbox.MinLat != 40 || bbox.MaxLat != 45 {
		t.Errorf("BBox = %+v, want -100..-95 / 40..45", bbox)
	}
}

func TestFeatureBoundsMultiPolygon(t *testing.T) {
	// Two islands; the box must cover both.
	f := &Feature{
		Type:       "Feature",
		Properties: map[string]interface{}{"name": "Hawaii"},
		Geometry: Geometry{
			Type: "MultiPolygon",
			Coordinates: json.RawMessage(`[
				[[[-156, 19], [-155, 19], [-155, 20], [-156, 19]]],
				[[[-160, 21], [-159, 21], [-159, 22], [-160, 21]]]
			]`),
		},
	}

	bbox, err := FeatureBounds(f)
	if err != nil {
		t.Fatalf("FeatureBounds failed: %v", err)
	}
	if bbox.MinLon != -160 || bbox.MaxLon != -155 || bbox.MinLat != 19 || bbox.MaxLat != 22 {
		t.Errorf("BBox = %+v, want -160..-155 / 19..22", bbox)
	}
}

func TestFeatureBoundsUnsupportedGeometry(t *testing.T) {
	f := &Feature{
		Properties: map[string]interface{}{"name": "Point"},
		Geometry:   Geometry{Type: "Point", Coordinates: json.RawMessage(`[-100, 40]`)},
	}
	if _, err := FeatureBounds(f); err == nil {
		t.Error("Expected an error for Point geometry")
	}
}

func TestBBoxPad(t *testing.T) {
	b := BBox{MinLon: -100, MinLat: 40, MaxLon: -95, MaxLat: 45}
	padded := b.Pad(1.5)
	if padded.MinLon != -101.5 || padded.MaxLon != -93.5 || padded.MinLat != 38.5 || padded.MaxLat != 46.5 {
		t.Errorf("Pad = %+v", padded)
	}
}
