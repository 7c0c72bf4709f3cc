package server

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/ritujane78/web-mapping-assignment2/models"
)

// Continental-view extent used when no state is selected.
var defaultFrame = struct {
	minLon, maxLon float64
	minLat, maxLat float64
}{-170, -60, 15, 72}

func generatePieChart(view models.ViewData) *charts.Pie {
	pie := charts.NewPie()

	title := "Type for All States"
	if view.Selection != models.AllStates {
		title = fmt.Sprintf("Type in %s", view.Selection)
	}

	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Rate(per 100,000)",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}: {c}",
		}),
		charts.WithLegendOpts(opts.Legend{
			Bottom: "bottom",
			Show:   opts.Bool(true),
		}),
	)

	items := make([]opts.PieData, 0, len(view.Categories))
	for _, slice := range view.Categories {
		items = append(items, opts.PieData{
			Name:      slice.Label,
			Value:     math.Round(slice.Count),
			ItemStyle: &opts.ItemStyle{Color: slice.Color},
		})
	}

	pie.AddSeries("Cancer Types", items).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}",
			}),
			charts.WithPieChartOpts(opts.PieChart{
				Radius: []string{"30%", "70%"},
			}),
		)

	return pie
}

func generateBarChart(view models.ViewData) *charts.Bar {
	bar := charts.NewBar()

	title := "Race and Gender for All States"
	if view.Selection != models.AllStates {
		title = fmt.Sprintf("Race and Gender in %s", view.Selection)
	}

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Rate(per 100,000)",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "shadow",
			},
		}),
		charts.WithLegendOpts(opts.Legend{
			Bottom: "bottom",
			Show:   opts.Bool(true),
		}),
	)

	bar.SetXAxis(models.Races)

	// One series per gender; the flat cross-tab is race-major so each
	// gender's values line up with the race axis in order.
	for _, gender := range models.Genders {
		seriesData := make([]opts.BarData, 0, len(models.Races))
		for _, b := range view.Bars {
			if b.Gender != gender {
				continue
			}
			seriesData = append(seriesData, opts.BarData{
				Value:     math.Round(b.Count*10) / 10,
				ItemStyle: &opts.ItemStyle{Color: b.Color},
			})
		}
		bar.AddSeries(gender, seriesData)
	}

	return bar
}

func generateMapChart(view models.ViewData) *charts.Scatter {
	scatter := charts.NewScatter()

	minLon, maxLon := defaultFrame.minLon, defaultFrame.maxLon
	minLat, maxLat := defaultFrame.minLat, defaultFrame.maxLat
	if view.Frame != nil {
		minLon, maxLon = view.Frame.MinLon, view.Frame.MaxLon
		minLat, maxLat = view.Frame.MinLat, view.Frame.MaxLat
	}

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cancer Deaths in the USA (2007-2013)",
			Subtitle: "Marker size follows total deaths",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Longitude",
			Min:  minLon,
			Max:  maxLon,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Latitude",
			Min:  minLat,
			Max:  maxLat,
		}),
	)

	var states, selected []opts.ScatterData
	for _, p := range view.Points {
		if !p.Location.Known {
			continue
		}
		item := opts.ScatterData{
			Name:       fmt.Sprintf("%s: %.0f deaths, population %.0f", p.State, p.Deaths, p.Population),
			Value:      []interface{}{p.Location.Lon, p.Location.Lat},
			SymbolSize: symbolSize(p.Deaths),
		}
		if view.Selection != models.AllStates && p.State == string(view.Selection) {
			// The selected state's tooltip additionally carries the
			// four age-bracket rates.
			item.Name += ageRateText(p.AgeRates)
			selected = append(selected, item)
			continue
		}
		states = append(states, item)
	}

	scatter.AddSeries("States", states).
		SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{
			Color:   "#7E0202",
			Opacity: 0.75,
		}))
	if len(selected) > 0 {
		scatter.AddSeries("Selected", selected).
			SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{
				Color:       "red",
				BorderColor: "#7E0202",
				Opacity:     0.95,
			}))
	}

	return scatter
}

// ageLabels maps the age-bracket columns to tooltip labels.
var ageLabels = map[string]string{
	"Rates.Age.< 18":  "rate under 18",
	"Rates.Age.18-45": "rate 18-45",
	"Rates.Age.45-64": "rate 45-64",
	"Rates.Age.> 64":  "rate over 64",
}

// ageRateText renders the age-bracket rates (per 100,000) in AgeColumns
// order for the selected state's tooltip.
func ageRateText(rates map[string]float64) string {
	var b strings.Builder
	for _, col := range models.AgeColumns {
		fmt.Fprintf(&b, ", %s: %.1f", ageLabels[col], rates[col])
	}
	return b.String()
}

// symbolSize maps a death count to a marker radius, square-root scaled so
// large states do not swallow the map.
func symbolSize(deaths float64) int {
	size := int(math.Sqrt(deaths) / 20)
	if size < 6 {
		size = 6
	}
	if size > 36 {
		size = 36
	}
	return size
}
