package linechart

import (
	"github.com/admpub/finchart/pkg/chartutil"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Build creates the full chart configuration for props on surface.
func Build(p Props, surface Surface) *charts.Line {
	decimals := p.decimals()
	var chartID string
	initOpts := []func(*opts.Initialization){}
	if surface != nil {
		chartID = surface.ID()
		width, height := surface.Size()
		initOpts = append(initOpts, func(o *opts.Initialization) {
			if len(width) > 0 {
				o.Width = width
			}
			if len(height) > 0 {
				o.Height = height
			}
		})
	}
	options := []charts.GlobalOpts{
		chartutil.Initialization(chartID, initOpts...),
		chartutil.Title(p.title(), ``),
		chartutil.Tooltip(),
		chartutil.Legend(p.IsMulti()),
		chartutil.Grid(p.IsMulti()),
		chartutil.CategoryAxis(),
		chartutil.ValueAxis(decimals),
	}
	line := chartutil.NewLine(nil, options, p.Categories, func(line *charts.Line) {
		if !p.IsMulti() {
			style, places := p.Style.resolve(decimals)
			style.BreakAtGaps = p.Gaps != nil
			seriesOpts := chartutil.LineSeriesOpts(style)
			if p.MarkLine != nil {
				seriesOpts = append(seriesOpts, chartutil.MarkLineOpts(p.MarkLine.resolve())...)
			}
			line.AddSeries(p.seriesName(), chartutil.LineDatas(p.Values, places, p.Gaps), seriesOpts...)
			return
		}
		for i, s := range p.MultiSeries {
			style, places := s.Style.resolve(decimals)
			style.BreakAtGaps = s.Gaps != nil
			seriesOpts := chartutil.LineSeriesOpts(style)
			if i == 0 && p.MarkLine != nil {
				seriesOpts = append(seriesOpts, chartutil.MarkLineOpts(p.MarkLine.resolve())...)
			}
			line.AddSeries(s.Name, chartutil.LineDatas(s.Values, places, s.Gaps), seriesOpts...)
		}
	})
	line.AddJSFuncStrs(chartutil.AxisPointerStyle(), chartutil.ResizeListener())
	line.Validate()
	return line
}

// patch rewrites only the axis categories, the series data and names and the
// title of an applied configuration. When props carry fewer series than the
// configuration, the trailing series are left untouched.
func patch(line *charts.Line, p Props) {
	decimals := p.decimals()
	line.SetXAxis(p.Categories)
	if len(line.XAxisList) > 0 {
		line.XAxisList[0].Data = p.Categories
	}
	if p.IsMulti() {
		for i, s := range p.MultiSeries {
			if i >= len(line.MultiSeries) {
				break
			}
			_, places := s.Style.resolve(decimals)
			line.MultiSeries[i].Data = chartutil.LineDatas(s.Values, places, s.Gaps)
			line.MultiSeries[i].Name = s.Name
		}
	} else if len(line.MultiSeries) > 0 {
		_, places := p.Style.resolve(decimals)
		line.MultiSeries[0].Data = chartutil.LineDatas(p.Values, places, p.Gaps)
		line.MultiSeries[0].Name = p.seriesName()
	}
	line.Title.Title = p.title()
}
