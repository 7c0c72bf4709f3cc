package server

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/ritujane78/web-mapping-assignment2/models"
	"github.com/ritujane78/web-mapping-assignment2/templates"
)

// chartRenderer is the slice of the go-echarts chart API the handlers need.
type chartRenderer interface {
	Render(w io.Writer) error
}

// resolveSelection applies the optional ?state= override to the controller
// and returns the active selection. An unknown state leaves the selection
// unchanged and is reported to the caller.
func resolveSelection(r *http.Request) (models.Selection, error) {
	controller := models.Store.Controller
	if name := r.URL.Query().Get("state"); name != "" {
		return controller.Select(name)
	}
	return controller.Current(), nil
}

func renderChart(c chartRenderer) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// renderViews runs one complete recomputation for the selection and renders
// all three charts.
func renderViews(sel models.Selection) (mapChart, pieChart, barChart template.HTML, err error) {
	view := models.Store.Views(sel)

	if mapChart, err = renderChart(generateMapChart(view)); err != nil {
		return
	}
	if pieChart, err = renderChart(generatePieChart(view)); err != nil {
		return
	}
	barChart, err = renderChart(generateBarChart(view))
	return
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := resolveSelection(r)
	if err != nil {
		log.Println("Selection rejected:", err)
		component := templates.Error(err.Error())
		templ.Handler(component, templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
		return
	}

	mapChart, pieChart, barChart, err := renderViews(sel)
	if err != nil {
		http.Error(w, "Failed to render charts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	component := templates.Dashboard(models.Store.Controller.Options(), string(sel), mapChart, pieChart, barChart)
	templ.Handler(component).ServeHTTP(w, r)
}

// chartsHandler serves the chart region alone, re-rendered for the
// requested selection.
func chartsHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := resolveSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	mapChart, pieChart, barChart, err := renderViews(sel)
	if err != nil {
		http.Error(w, "Failed to render charts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	component := templates.Charts(mapChart, pieChart, barChart)
	templ.Handler(component).ServeHTTP(w, r)
}
