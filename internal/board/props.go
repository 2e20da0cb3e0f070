package board

import (
	"fmt"

	"github.com/admpub/finchart/pkg/config"
	"github.com/admpub/finchart/pkg/dataset"
	"github.com/admpub/finchart/pkg/linechart"
	"github.com/admpub/finchart/pkg/series"
)

// Props builds the adapter inputs of chart from data.
// A single series chart plots that series over its own months. Multi series
// charts plot every series over the union of their months; two series charts
// are exactly the combined view of the pair.
func Props(chart config.Chart, data *dataset.Dataset) (linechart.Props, error) {
	p := linechart.Props{
		Title:         chart.Title,
		DecimalPlaces: chart.DecimalPlaces,
		MarkLine:      chart.MarkLine,
	}
	sets := make([][]series.Record, len(chart.Series))
	for i, ref := range chart.Series {
		records, err := data.Lookup(ref.Source)
		if err != nil {
			return p, fmt.Errorf(`chart %s: %w`, chart.ID, err)
		}
		sets[i] = records
	}
	if !chart.IsMulti() {
		ref := chart.Series[0]
		p.Categories = series.Months(sets[0])
		p.SeriesName = seriesName(ref)
		p.Values = series.Values(sets[0])
		p.Style = ref.Style
		return p, nil
	}

	var (
		values [][]float64
		gaps   [][]bool
	)
	if len(sets) == 2 {
		c := series.Combine(sets[0], sets[1])
		p.Categories = c.Months
		values = [][]float64{c.AMatched, c.BMatched}
		gaps = [][]bool{c.AMissing, c.BMissing}
	} else {
		p.Categories = series.Union(sets...)
		for _, records := range sets {
			v, missing := series.Align(p.Categories, records)
			values = append(values, v)
			gaps = append(gaps, missing)
		}
	}
	p.MultiSeries = make([]linechart.Series, len(chart.Series))
	for i, ref := range chart.Series {
		s := linechart.Series{
			Name:   seriesName(ref),
			Values: values[i],
			Style:  ref.Style,
		}
		if chart.Missing == config.MissingGap {
			s.Gaps = gaps[i]
		}
		p.MultiSeries[i] = s
	}
	return p, nil
}

func seriesName(ref config.SeriesRef) string {
	if len(ref.Name) > 0 {
		return ref.Name
	}
	return ref.Source
}
