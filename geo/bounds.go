package geo

import (
	"encoding/json"
	"fmt"

	"github.com/twpayne/go-geom"
)

// BBox is a lon/lat bounding box, used to frame the map on a selected state.
type BBox struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// Pad grows the box by a margin on every side so a framed feature does not
// touch the chart edges.
func (b BBox) Pad(margin float64) BBox {
	return BBox{
		MinLon: b.MinLon - margin,
		MinLat: b.MinLat - margin,
		MaxLon: b.MaxLon + margin,
		MaxLat: b.MaxLat + margin,
	}
}

// FeatureBounds computes the bounding box of a feature's Polygon or
// MultiPolygon geometry, covering every ring.
func FeatureBounds(f *Feature) (BBox, error) {
	g, err := decodeGeometry(f.Geometry)
	if err != nil {
		return BBox{}, fmt.Errorf("feature %q: %w", f.Name(), err)
	}

	bounds := geom.NewBounds(geom.XY)
	bounds.Extend(g)
	return BBox{
		MinLon: bounds.Min(0),
		MinLat: bounds.Min(1),
		MaxLon: bounds.Max(0),
		MaxLat: bounds.Max(1),
	}, nil
}

func decodeGeometry(g Geometry) (geom.T, error) {
	switch g.Type {
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return nil, fmt.Errorf("bad Polygon coordinates: %w", err)
		}
		return buildPolygon(rings)

	case "MultiPolygon":
		var polys [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &polys); err != nil {
			return nil, fmt.Errorf("bad MultiPolygon coordinates: %w", err)
		}
		coords := make([][][]geom.Coord, len(polys))
		for i, rings := range polys {
			coords[i] = ringCoords(rings)
		}
		mp := geom.NewMultiPolygon(geom.XY)
		if _, err := mp.SetCoords(coords); err != nil {
			return nil, fmt.Errorf("error creating multipolygon: %w", err)
		}
		return mp, nil

	default:
		return nil, fmt.Errorf("unsupported geometry type: %s", g.Type)
	}
}

func buildPolygon(rings [][][]float64) (geom.T, error) {
	polygon := geom.NewPolygon(geom.XY)
	if _, err := polygon.SetCoords(ringCoords(rings)); err != nil {
		return nil, fmt.Errorf("error creating polygon: %w", err)
	}
	return polygon, nil
}

func ringCoords(rings [][][]float64) [][]geom.Coord {
	coords := make([][]geom.Coord, len(rings))
	for i, ring := range rings {
		coords[i] = make([]geom.Coord, len(ring))
		for j, pt := range ring {
			coords[i][j] = geom.Coord{pt[0], pt[1]}
		}
	}
	return coords
}
