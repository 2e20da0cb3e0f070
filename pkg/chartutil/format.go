package chartutil

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/shopspring/decimal"
)

// WanThreshold is the value from which labels switch to the 万 unit.
const WanThreshold = 10000

// WanUnit is the ten-thousand unit marker.
const WanUnit = `万`

var wan = decimal.NewFromInt(WanThreshold)

// FormatValue renders a data label.
// Values from WanThreshold up are divided by 10,000 and rounded half up to
// decimals places (the way JavaScript's toFixed does), then suffixed with 万.
// Smaller values keep their digits and get a comma every 3 integer digits.
// NaN and infinities are returned as plain text.
func FormatValue(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	if value >= WanThreshold {
		if decimals < 0 {
			decimals = 0
		}
		// exact binary value of the quotient, so ties round like toFixed
		quotient := new(big.Float).SetFloat64(value / WanThreshold).Text('f', 64)
		d, err := decimal.NewFromString(quotient)
		if err != nil {
			d = decimal.NewFromFloat(value).Div(wan)
		}
		return d.StringFixed(int32(decimals)) + WanUnit
	}
	return humanize.Commaf(value)
}

// AxisLabelFormatter is the browser side rule for value axis ticks.
func AxisLabelFormatter(decimals int) types.FuncStr {
	return opts.FuncOpts(fmt.Sprintf(`function (value) {
	if (value >= %d) {
		return (value / %d).toFixed(%d) + '%s';
	}
	return value;
}`, WanThreshold, WanThreshold, decimals, WanUnit))
}
