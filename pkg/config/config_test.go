package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, `挂图`, cfg.Title)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultDataset, cfg.Dataset)
	require.Len(t, cfg.Charts, 4)

	compare := cfg.Charts[0]
	assert.Equal(t, `compare`, compare.ID)
	assert.True(t, compare.IsMulti())
	assert.Equal(t, MissingZero, compare.Missing)
	require.Len(t, compare.Series, 2)
	assert.Equal(t, `expense`, compare.Series[1].Source)
	require.NotNil(t, compare.Series[1].Style.ShowLabel)
	assert.False(t, *compare.Series[1].Style.ShowLabel)
	require.NotNil(t, compare.Series[1].Style.DecimalPlaces)
	assert.Equal(t, 1, *compare.Series[1].Style.DecimalPlaces)

	income, ok := cfg.Chart(`income`)
	require.True(t, ok)
	assert.False(t, income.IsMulti())
	require.NotNil(t, income.MarkLine)
	assert.Equal(t, float64(60000), income.MarkLine.Value)
	assert.Equal(t, `6万`, income.MarkLine.Label)

	debt, ok := cfg.Chart(`debt`)
	require.True(t, ok)
	assert.Nil(t, debt.MarkLine)
	assert.Equal(t, 2, *debt.DecimalPlaces)

	_, ok = cfg.Chart(`nope`)
	assert.False(t, ok)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), `board.json5`)
	require.NoError(t, os.WriteFile(path, []byte(`{
	addr: ":9000",
	width: 640,
	charts: [
		{series: [{source: "income"}]},
		{series: [{source: "income"}, {source: "expense"}], missing: "gap", height: 300},
	],
}`), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, `:9000`, cfg.Addr)
	assert.Equal(t, `chart1`, cfg.Charts[0].ID)
	assert.Equal(t, `chart2`, cfg.Charts[1].ID)
	assert.Equal(t, 640, cfg.Charts[0].Width)
	assert.Equal(t, 300, cfg.Charts[1].Height)
	assert.Equal(t, MissingGap, cfg.Charts[1].Missing)

	cfg, err = LoadConfig(``)
	require.NoError(t, err)
	assert.Len(t, cfg.Charts, 4)
}

func TestValidate(t *testing.T) {
	_, err := Parse([]byte(`{charts: []}`))
	assert.ErrorIs(t, err, ErrNoCharts)

	_, err = Parse([]byte(`{charts: [{id: "a"}]}`))
	assert.ErrorIs(t, err, ErrNoSeries)

	_, err = Parse([]byte(`{charts: [{id: "a", series: [{source: "x"}]}, {id: "a", series: [{source: "x"}]}]}`))
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = Parse([]byte(`{charts: [{id: "a", series: [{source: "x"}], missing: "null"}]}`))
	assert.ErrorContains(t, err, `invalid missing policy`)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(`FINCHART_ADDR`, `:7000`)
	t.Setenv(`FINCHART_DATASET`, `file://./data.json5`)
	t.Setenv(`FINCHART_WIDTH`, `1200`)

	cfg, err := Default()
	require.NoError(t, err)
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, `:7000`, cfg.Addr)
	assert.Equal(t, `file://./data.json5`, cfg.Dataset)
	assert.Equal(t, `挂图`, cfg.Title)
	assert.Equal(t, 1200, cfg.Width)
	for _, chart := range cfg.Charts {
		assert.Equal(t, 1200, chart.Width)
	}
}
