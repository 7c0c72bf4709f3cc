// Package templates renders the dashboard pages as templ components.
package templates

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 1em 2em; }
h1 { font-size: 20pt; margin: 10px 0 20px 0; }
select { width: 100%%; padding: 6px; font-size: 12pt; margin-bottom: 1em; }
.charts-row { display: flex; flex-wrap: wrap; gap: 1em; }
.charts-row > div { flex: 1 1 45%%; }
</style>
</head>
<body>
`, template.HTMLEscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// Dashboard is the composed view: heading, state dropdown, and the three
// charts. Changing the dropdown reloads the page with the new selection.
func Dashboard(options []string, selected string, mapChart, pieChart, barChart template.HTML) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>Cancer Deaths in the USA (2007-2013)</h1>\n"); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<select name="state" onchange="window.location='/?state='+encodeURIComponent(this.value)">`+"\n"); err != nil {
			return err
		}
		for _, option := range options {
			escaped := template.HTMLEscapeString(option)
			marker := ""
			if option == selected {
				marker = " selected"
			}
			if _, err := fmt.Fprintf(w, "<option value=\"%s\"%s>%s</option>\n", escaped, marker, escaped); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</select>\n"); err != nil {
			return err
		}

		return Charts(mapChart, pieChart, barChart).Render(ctx, w)
	})
	return page("Cancer Deaths in the USA", body)
}

// Charts is the chart region alone: the map above, pie and bars side by
// side below.
func Charts(mapChart, pieChart, barChart template.HTML) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="charts">
<div>%s</div>
<div class="charts-row">
<div>%s</div>
<div>%s</div>
</div>
</div>
`, mapChart, pieChart, barChart)
		return err
	})
}

// Error is a minimal error page.
func Error(message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>Something went wrong</h1>\n<p>%s</p>\n<p><a href=\"/\">Back to the dashboard</a></p>\n",
			template.HTMLEscapeString(message))
		return err
	})
	return page("Error", body)
}
