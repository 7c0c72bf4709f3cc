package models

import (
	"math"

	"github.com/ritujane78/web-mapping-assignment2/geo"
)

// CategorySlice is one pie wedge: a cancer type, its count for the current
// selection, the wedge angle in radians, and a palette color.
type CategorySlice struct {
	Label string
	Count float64
	Angle float64
	Color string
}

// AggregateCategories sums the three cancer-type totals over the filtered
// rows. Under AllStates the sums become per-state averages (floating point;
// integer truncation would discard remainder mass across the slices).
// Angles are proportional shares of 2π; a zero grand total short-circuits to
// all-zero angles instead of dividing by zero.
func AggregateCategories(f FilterResult) []CategorySlice {
	slices := make([]CategorySlice, 0, len(TypeColumns))
	var total float64
	for i, col := range TypeColumns {
		var count float64
		for _, row := range f.Rows {
			count += row.TypeTotals[col]
		}
		if f.All && f.DistinctStates > 0 {
			count /= float64(f.DistinctStates)
		}
		total += count
		slices = append(slices, CategorySlice{
			Label: TypeNames[col],
			Count: count,
			Color: TypePalette[i],
		})
	}

	if total == 0 {
		return slices
	}
	for i := range slices {
		slices[i].Angle = slices[i].Count / total * 2 * math.Pi
	}
	return slices
}

// CrossTabBar is one bar of the grouped chart: a (gender, race) pair, its
// rate for the current selection, and the gendered palette color.
type CrossTabBar struct {
	Gender string
	Race   string
	Count  float64
	Color  string
}

// AggregateRaceSex sums the ten (gender, race) rate columns over the
// filtered rows, race-major, applying the same AllStates averaging rule as
// AggregateCategories. Always returns exactly len(Races)*len(Genders) bars.
func AggregateRaceSex(f FilterResult) []CrossTabBar {
	bars := make([]CrossTabBar, 0, len(Races)*len(Genders))
	for _, race := range Races {
		for _, gender := range Genders {
			col := RaceSexColumn(gender, race)
			var count float64
			for _, row := range f.Rows {
				count += row.RaceSexRates[col]
			}
			if f.All && f.DistinctStates > 0 {
				count /= float64(f.DistinctStates)
			}
			bars = append(bars, CrossTabBar{
				Gender: gender,
				Race:   race,
				Count:  count,
				Color:  BarColor(gender, race),
			})
		}
	}
	return bars
}

// MapPoint is one state on the map overview: its geocoded location plus the
// totals shown in the tooltip. The age-bracket rates feed the richer
// tooltip the renderer gives the selected state. Location.Known is false
// when geocoding failed for the state; such points are skipped by the
// renderer.
type MapPoint struct {
	State      string
	Location   geo.Location
	Deaths     float64
	Population float64
	AgeRates   map[string]float64
}

// AggregateMap produces one point per table row from the geocoded
// locations, in table order.
func AggregateMap(table *Table, locations map[string]geo.Location) []MapPoint {
	points := make([]MapPoint, 0, len(table.Rows))
	for _, row := range table.Rows {
		points = append(points, MapPoint{
			State:      row.State,
			Location:   locations[row.State],
			Deaths:     row.TotalDeaths,
			Population: row.TotalPopulation,
			AgeRates:   row.AgeRates,
		})
	}
	return points
}
