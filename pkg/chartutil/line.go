package chartutil

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	SymbolEmptyCircle = `emptyCircle`
	SymbolNone        = `none`
	labelFontSize     = 15
)

func NewLine(w io.Writer, options []charts.GlobalOpts, headTitles []string, addSeries func(*charts.Line)) *charts.Line {
	// create a new line instance
	line := charts.NewLine()
	// set some global options like Title/Legend/ToolTip or anything else
	line.SetGlobalOptions(options...)

	// Put data into instance
	line.SetXAxis(headTitles)

	if addSeries != nil {
		addSeries(line)
	}

	if w != nil {
		line.Render(w)
	}
	return line
}

// LineDatas turns values into line points whose names carry the formatted
// label, so the series label template "{b}" shows it. Points flagged in
// gaps become empty ("-") and draw nothing.
func LineDatas(values []float64, decimals int, gaps []bool) []opts.LineData {
	datas := make([]opts.LineData, len(values))
	for i, v := range values {
		if i < len(gaps) && gaps[i] {
			datas[i] = opts.LineData{Value: `-`}
			continue
		}
		datas[i] = opts.LineData{
			Name:  FormatValue(v, decimals),
			Value: v,
		}
	}
	return datas
}

// LineStyle is the fully resolved look of one line series.
type LineStyle struct {
	Color      string
	LabelColor string
	LineWidth  float32
	SymbolSize int
	ShowLabel  bool
	ShowSymbol bool

	// BreakAtGaps leaves "-" points unconnected.
	BreakAtGaps bool
}

func LineSeriesOpts(style LineStyle) []charts.SeriesOpts {
	symbol := SymbolEmptyCircle
	if !style.ShowSymbol {
		symbol = SymbolNone
	}
	labelColor := style.LabelColor
	if len(labelColor) == 0 {
		labelColor = style.Color
	}
	return []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			Symbol:       symbol,
			SymbolSize:   style.SymbolSize,
			ConnectNulls: opts.Bool(!style.BreakAtGaps),
			Smooth:       opts.Bool(true),
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: style.Color}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: style.Color, Width: style.LineWidth}),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(style.ShowLabel),
			Position:  `top`,
			Formatter: `{b}`,
			FontSize:  labelFontSize,
			Color:     labelColor,
		}),
		charts.WithEmphasisOpts(opts.Emphasis{Focus: `series`}),
	}
}

// MarkLine is a horizontal threshold line.
type MarkLine struct {
	Value float64
	Label string
	Color string
	Type  string
	Width float32
}

func MarkLineOpts(m MarkLine) []charts.SeriesOpts {
	return []charts.SeriesOpts{
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  m.Label,
			YAxis: m.Value,
		}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol:     []string{`circle`, `arrow`},
			SymbolSize: 10,
			Label: &opts.Label{
				Show:      opts.Bool(true),
				Position:  `end`,
				Formatter: `{b}`,
			},
			LineStyle: &opts.LineStyle{
				Color: m.Color,
				Type:  m.Type,
				Width: m.Width,
			},
		}),
	}
}
