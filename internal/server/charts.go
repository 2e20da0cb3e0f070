package server

import (
	"html/template"
	"io"

	"github.com/admpub/finchart/internal/board"
	"github.com/admpub/finchart/pkg/chartutil"
	"github.com/admpub/finchart/pkg/dataset"
	"github.com/admpub/finchart/pkg/series"
	"github.com/coscms/tables"
)

type pageData struct {
	Title    string
	Assets   []string
	Sections []board.Section
	Table    template.HTML
}

// WritePage renders the whole board: every chart under its heading followed
// by the table of all series by month.
func WritePage(w io.Writer, b *board.Board) error {
	data := pageData{
		Title:    b.Config().Title,
		Assets:   b.Assets(),
		Sections: b.Sections(),
	}
	if ds, err := b.Dataset(); err == nil {
		data.Table = seriesTable(ds)
	}
	return pageTpl.Execute(w, data)
}

// WriteChart renders a page holding a single chart.
func WriteChart(w io.Writer, b *board.Board, id string) error {
	section, err := b.Section(id)
	if err != nil {
		return err
	}
	return pageTpl.Execute(w, pageData{
		Title:    section.Title,
		Assets:   b.Assets(),
		Sections: []board.Section{section},
	})
}

func seriesTable(ds *dataset.Dataset) template.HTML {
	names := ds.Names()
	sets := make([][]series.Record, len(names))
	for i, name := range names {
		sets[i] = ds.Series[name]
	}
	months := series.Union(sets...)

	table := tables.New()
	table.SetCaptionContent(`月度数据`)
	head := new(tables.Row).AddCell(tables.NewCell(`月份`))
	for _, name := range names {
		head.AddCell(tables.NewCell(name))
	}
	table.Head.AddRow(head)

	values := make([][]float64, len(sets))
	missing := make([][]bool, len(sets))
	for i, records := range sets {
		values[i], missing[i] = series.Align(months, records)
	}
	for row, month := range months {
		r := new(tables.Row).AddCell(tables.NewCell(month))
		for i := range sets {
			text := `-`
			if !missing[i][row] {
				text = chartutil.FormatValue(values[i][row], 2)
			}
			r.AddCell(tables.NewCell(text))
		}
		table.Body.AddRow(r)
	}
	return template.HTML(string(table.Render()))
}

var pageTpl = template.Must(template.New(`page`).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- range .Assets}}
<script src="{{.}}"></script>
{{- end}}
<style>
body {margin: 0;font-family: sans-serif;background: #fafafa;}
.app-main-title {text-align: center;}
.app-container {max-width: 1200px;margin: 20px auto;padding: 0 16px;}
.app-title {font-size: 20px;color: #333;}
.charts-wrapper {display: flex;justify-content: center;}
.chart-item {background: #fff;box-shadow: 1px 1px 5px rgba(0,0,0,0.1);padding: 12px;}
table {border-collapse: collapse;background-color: #f2f2f2;width: 100%;margin: auto;box-shadow: 1px 1px 5px rgba(0,0,0,0.3);}
table caption{color: #516b91; font-weight: bold}
th, td {border: 1px solid #ccc;text-align: left;padding: 8px;}
th {background-color: #516b91;color: white;}
tr:nth-child(odd) {background-color: #f2f2f2;}
</style>
</head>
<body>
{{- with .Title}}
<h1 class="app-main-title"><span>{{.}}</span></h1>
{{- end}}
{{- range .Sections}}
<div class="app-container" data-chart="{{.ID}}">
	{{- with .Heading}}
	<h1 class="app-title">{{.}}</h1>
	{{- end}}
	<div class="charts-wrapper"><div class="chart-item">{{.HTML}}</div></div>
</div>
{{- end}}
{{- with .Table}}
<div class="app-container">{{.}}</div>
{{- end}}
</body>
</html>
`))
