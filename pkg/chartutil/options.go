package chartutil

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// https://github.com/go-echarts/examples

const (
	AxisLineColor    = `#515E5F`
	SplitLineColor   = `#E0E0E0`
	AxisPointerColor = `#ccc`
)

func Title(title, subtitle string, options ...func(*opts.Title)) charts.GlobalOpts {
	option := opts.Title{
		Title:      title,
		Subtitle:   subtitle,
		Left:       `center`,
		TitleStyle: &opts.TextStyle{FontSize: 16},
	}
	for _, o := range options {
		o(&option)
	}
	return charts.WithTitleOpts(option)
}

func Initialization(chartID string, options ...func(*opts.Initialization)) charts.GlobalOpts {
	option := opts.Initialization{ChartID: chartID}
	for _, o := range options {
		o(&option)
	}
	return charts.WithInitializationOpts(option)
}

// Tooltip triggers on the category axis with a line pointer.
func Tooltip() charts.GlobalOpts {
	return charts.WithTooltipOpts(opts.Tooltip{
		Trigger:     `axis`,
		AxisPointer: &opts.AxisPointer{Type: `line`},
	})
}

// Legend is only shown for charts with several series.
func Legend(show bool) charts.GlobalOpts {
	return charts.WithLegendOpts(opts.Legend{
		Show:   opts.Bool(show),
		Bottom: `0`,
	})
}

func Grid(multi bool) charts.GlobalOpts {
	bottom := `3%`
	if multi {
		bottom = `10%`
	}
	return charts.WithGridOpts(opts.Grid{
		Left:         `3%`,
		Right:        `4%`,
		Bottom:       bottom,
		ContainLabel: opts.Bool(true),
	})
}

func CategoryAxis() charts.GlobalOpts {
	return charts.WithXAxisOpts(opts.XAxis{
		Type:        `category`,
		BoundaryGap: opts.Bool(false),
		AxisLine: &opts.AxisLine{
			LineStyle: &opts.LineStyle{Color: AxisLineColor},
		},
		AxisTick: &opts.AxisTick{Show: opts.Bool(false)},
	})
}

// ValueAxis formats ticks with the 万 rule at the given precision.
func ValueAxis(decimals int) charts.GlobalOpts {
	return charts.WithYAxisOpts(opts.YAxis{
		Type:     `value`,
		AxisLine: &opts.AxisLine{Show: opts.Bool(false)},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Color: SplitLineColor, Type: `dashed`},
		},
		AxisLabel: &opts.AxisLabel{Formatter: AxisLabelFormatter(decimals)},
	})
}

// AxisPointerStyle sets the tooltip pointer line style, which opts.AxisPointer
// has no field for.
func AxisPointerStyle() types.FuncStr {
	return types.FuncStr(fmt.Sprintf(`%%MY_ECHARTS%%.setOption({tooltip: {axisPointer: {lineStyle: {color: '%s', width: 1}}}});`, AxisPointerColor))
}

// ResizeListener resizes the browser chart with its window.
func ResizeListener() types.FuncStr {
	return types.FuncStr(`window.addEventListener('resize', function () { %MY_ECHARTS%.resize(); });`)
}
