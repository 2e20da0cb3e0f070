package linechart

import "github.com/admpub/finchart/pkg/chartutil"

const (
	DefaultTitle         = `折线图`
	DefaultSeriesName    = `数据`
	DefaultColor         = `rgba(29, 169, 160, 1)`
	DefaultDecimalPlaces = 2
	DefaultLineWidth     = 2.5
	DefaultSymbolSize    = 8

	DefaultMarkLineColor = `#1DA9A0`
	DefaultMarkLineType  = `dashed`
	DefaultMarkLineWidth = 1
)

// Style is the look of one series. Zero values fall back to the defaults
// above; the label color falls back to Color and DecimalPlaces to the
// chart-wide precision.
type Style struct {
	Color         string  `json:"color,omitempty"`
	LabelColor    string  `json:"labelColor,omitempty"`
	DecimalPlaces *int    `json:"decimalPlaces,omitempty"`
	LineWidth     float32 `json:"lineWidth,omitempty"`
	SymbolSize    int     `json:"symbolSize,omitempty"`
	ShowLabel     *bool   `json:"showLabel,omitempty"`
	ShowSymbol    *bool   `json:"showSymbol,omitempty"`
}

func (s Style) resolve(decimals int) (chartutil.LineStyle, int) {
	style := chartutil.LineStyle{
		Color:      s.Color,
		LabelColor: s.LabelColor,
		LineWidth:  s.LineWidth,
		SymbolSize: s.SymbolSize,
		ShowLabel:  true,
		ShowSymbol: true,
	}
	if len(style.Color) == 0 {
		style.Color = DefaultColor
	}
	if style.LineWidth <= 0 {
		style.LineWidth = DefaultLineWidth
	}
	if style.SymbolSize <= 0 {
		style.SymbolSize = DefaultSymbolSize
	}
	if s.ShowLabel != nil {
		style.ShowLabel = *s.ShowLabel
	}
	if s.ShowSymbol != nil {
		style.ShowSymbol = *s.ShowSymbol
	}
	if s.DecimalPlaces != nil {
		decimals = *s.DecimalPlaces
	}
	return style, decimals
}

// Series is one named line of a multi series chart.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	// Gaps marks points without data. A series with a Gaps mask, even an
	// all false one, is not connected across those points.
	Gaps  []bool `json:"gaps,omitempty"`
	Style Style  `json:"style"`
}

// MarkLine is a fixed threshold drawn across the chart.
type MarkLine struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Color string  `json:"color,omitempty"`
	Type  string  `json:"type,omitempty"`
	Width float32 `json:"width,omitempty"`
}

func (m MarkLine) resolve() chartutil.MarkLine {
	r := chartutil.MarkLine{
		Value: m.Value,
		Label: m.Label,
		Color: m.Color,
		Type:  m.Type,
		Width: m.Width,
	}
	if len(r.Color) == 0 {
		r.Color = DefaultMarkLineColor
	}
	if len(r.Type) == 0 {
		r.Type = DefaultMarkLineType
	}
	if r.Width <= 0 {
		r.Width = DefaultMarkLineWidth
	}
	return r
}

// Props are the inputs of a chart adapter. Setting MultiSeries switches the
// chart into multi series mode and the single series fields are ignored.
type Props struct {
	Title      string   `json:"title,omitempty"`
	Categories []string `json:"categories"`

	SeriesName string    `json:"seriesName,omitempty"`
	Values     []float64 `json:"values,omitempty"`
	Gaps       []bool    `json:"gaps,omitempty"`
	Style      Style     `json:"style"`

	MultiSeries []Series `json:"multiSeries,omitempty"`

	DecimalPlaces *int      `json:"decimalPlaces,omitempty"`
	MarkLine      *MarkLine `json:"markLine,omitempty"`
}

func (p Props) IsMulti() bool {
	return p.MultiSeries != nil
}

func (p Props) title() string {
	if len(p.Title) == 0 {
		return DefaultTitle
	}
	return p.Title
}

func (p Props) seriesName() string {
	if len(p.SeriesName) == 0 {
		return DefaultSeriesName
	}
	return p.SeriesName
}

func (p Props) decimals() int {
	if p.DecimalPlaces == nil {
		return DefaultDecimalPlaces
	}
	return *p.DecimalPlaces
}

// Int returns a pointer to v for the optional integer fields.
func Int(v int) *int { return &v }

// Bool returns a pointer to v for the optional flag fields.
func Bool(v bool) *bool { return &v }
