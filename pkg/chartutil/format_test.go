package chartutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		value    float64
		decimals int
		want     string
	}{
		{9999, 1, `9,999`},
		{250, 1, `250`},
		{0, 1, `0`},
		{1234.5, 1, `1,234.5`},
		{10000, 1, `1.0万`},
		{60000, 1, `6.0万`},
		{60000, 0, `6万`},
		{12500, 1, `1.3万`},
		{123456, 2, `12.35万`},
		{10000, 2, `1.00万`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatValue(c.value, c.decimals), `%v/%d`, c.value, c.decimals)
	}
}

func TestFormatValueNonFinite(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, `+Inf`, FormatValue(math.Inf(1), 1))
		assert.Equal(t, `-Inf`, FormatValue(math.Inf(-1), 1))
		assert.Equal(t, `NaN`, FormatValue(math.NaN(), 2))
	})
}

func TestAxisLabelFormatter(t *testing.T) {
	f := string(AxisLabelFormatter(2))
	assert.Contains(t, f, `toFixed(2)`)
	assert.Contains(t, f, `value >= 10000`)
	assert.Contains(t, f, WanUnit)
}
