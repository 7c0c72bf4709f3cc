package server

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ritujane78/web-mapping-assignment2/geo"
	"github.com/ritujane78/web-mapping-assignment2/models"
)

func testView(selection models.Selection) models.ViewData {
	return models.ViewData{
		Selection: selection,
		Categories: []models.CategorySlice{
			{Label: "Breast Cancer", Count: 15, Angle: math.Pi, Color: "#FAD5A5"},
			{Label: "Colorectal Cancer", Count: 5, Angle: math.Pi / 3, Color: "#7E0202"},
			{Label: "Lung Cancer", Count: 5, Angle: math.Pi / 3, Color: "#A36A00"},
		},
		Bars: []models.CrossTabBar{
			{Gender: "Female", Race: "White", Count: 55, Color: "#7E0202"},
			{Gender: "Male", Race: "White", Count: 56, Color: "#754C00"},
		},
		Points: []models.MapPoint{
			{
				State:      "Alaska",
				Location:   geo.Location{Lat: 64.4, Lon: -152.2, Known: true},
				Deaths:     6441,
				Population: 5028497,
				AgeRates: map[string]float64{
					"Rates.Age.< 18":  2.3,
					"Rates.Age.18-45": 9.8,
					"Rates.Age.45-64": 166.7,
					"Rates.Age.> 64":  949.0,
				},
			},
			{State: "Nowhere", Location: geo.Unknown, Deaths: 10, Population: 100},
		},
	}
}

func renderToString(t *testing.T, view models.ViewData, kind string) string {
	t.Helper()

	var buf bytes.Buffer
	var err error
	switch kind {
	case "pie":
		err = generatePieChart(view).Render(&buf)
	case "bar":
		err = generateBarChart(view).Render(&buf)
	case "map":
		err = generateMapChart(view).Render(&buf)
	}
	if err != nil {
		t.Fatalf("Render %s failed: %v", kind, err)
	}
	return buf.String()
}

func TestGeneratePieChart(t *testing.T) {
	html := renderToString(t, testView(models.AllStates), "pie")
	for _, label := range []string{"Breast Cancer", "Colorectal Cancer", "Lung Cancer", "Type for All States"} {
		if !strings.Contains(html, label) {
			t.Errorf("Pie chart missing %q", label)
		}
	}
}

func TestGenerateBarChart(t *testing.T) {
	html := renderToString(t, testView(models.Selection("Alaska")), "bar")
	for _, label := range []string{"Female", "Male", "Race and Gender in Alaska"} {
		if !strings.Contains(html, label) {
			t.Errorf("Bar chart missing %q", label)
		}
	}
}

func TestGenerateMapChartSkipsUnknownLocations(t *testing.T) {
	html := renderToString(t, testView(models.AllStates), "map")
	if !strings.Contains(html, "Alaska") {
		t.Error("Map chart missing the located state")
	}
	if strings.Contains(html, "Nowhere") {
		t.Error("Map chart must skip states with unknown locations")
	}
}

func TestGenerateMapChartHighlightsSelection(t *testing.T) {
	html := renderToString(t, testView(models.Selection("Alaska")), "map")
	if !strings.Contains(html, "Selected") {
		t.Error("Map chart missing the selected-state series")
	}
}

func TestGenerateMapChartSelectedTooltipAgeRates(t *testing.T) {
	html := renderToString(t, testView(models.Selection("Alaska")), "map")
	for _, want := range []string{
		"rate under 18: 2.3",
		"rate 18-45: 9.8",
		"rate 45-64: 166.7",
		"rate over 64: 949.0",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Selected-state tooltip missing %q", want)
		}
	}

	// Unselected views keep the shorter tooltip.
	html = renderToString(t, testView(models.AllStates), "map")
	if strings.Contains(html, "rate under 18") {
		t.Error("Unselected map tooltip should not carry age-bracket rates")
	}
}

func TestSymbolSizeClamped(t *testing.T) {
	if symbolSize(0) != 6 {
		t.Errorf("symbolSize(0) = %d, want 6", symbolSize(0))
	}
	if symbolSize(1e9) != 36 {
		t.Errorf("symbolSize(1e9) = %d, want 36", symbolSize(1e9))
	}
}
