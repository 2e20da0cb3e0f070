package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/admpub/finchart/pkg/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemory(t *testing.T) {
	src, err := Open(`memory://`)
	require.NoError(t, err)
	defer src.Close()

	data, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{`debt`, `expense`, `income`}, data.Names())

	income, err := data.Lookup(`income`)
	require.NoError(t, err)
	assert.Len(t, income, 13)
	assert.Equal(t, series.Record{Month: `2024.03`, Value: 25322}, income[0])

	c := series.Combine(income, data.Series[`expense`])
	assert.Len(t, c.Months, 15)
	assert.Equal(t, float64(0), c.AMatched[0])
	assert.True(t, c.AMissing[0])
}

func TestSampleIsACopy(t *testing.T) {
	a := Sample()
	a.Series[`income`][0].Value = 1
	assert.Equal(t, float64(25322), Sample().Series[`income`][0].Value)
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open(`ftp://example.com/data.json5`)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestLookupHint(t *testing.T) {
	data := Sample()
	_, err := data.Lookup(`incom`)
	require.ErrorIs(t, err, ErrUnknownSeries)
	assert.Contains(t, err.Error(), `did you mean "income"?`)

	_, err = data.Lookup(`zzzzzzzzzzzz`)
	require.ErrorIs(t, err, ErrUnknownSeries)
	assert.NotContains(t, err.Error(), `did you mean`)
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `data.json5`)
	content := `{
	// monthly figures
	series: {
		income: [
			{month: "2024-01", value: 100},
			{month: "2024.02", value: 200,},
		],
	},
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	for _, raw := range []string{path, `file://` + path} {
		src, err := Open(raw)
		require.NoError(t, err, raw)
		fs, ok := src.(FileSource)
		require.True(t, ok)
		assert.Equal(t, path, fs.Path())

		data, err := src.Load()
		require.NoError(t, err, raw)
		assert.Equal(t, []series.Record{{Month: `2024.01`, Value: 100}, {Month: `2024.02`, Value: 200}}, data.Series[`income`])
		src.Close()
	}
}

func TestOpenFileErrors(t *testing.T) {
	dir := t.TempDir()

	src, err := Open(filepath.Join(dir, `missing.json5`))
	require.NoError(t, err)
	_, err = src.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, `bad.json5`)
	require.NoError(t, os.WriteFile(bad, []byte(`{series: {income: [{month: "soon", value: 1}]}}`), 0o644))
	src, err = Open(bad)
	require.NoError(t, err)
	_, err = src.Load()
	assert.ErrorContains(t, err, `series income`)

	inf := filepath.Join(dir, `inf.json5`)
	require.NoError(t, os.WriteFile(inf, []byte(`{series: {income: [{month: "2024.01", value: Infinity}]}}`), 0o644))
	src, err = Open(inf)
	require.NoError(t, err)
	_, err = src.Load()
	assert.ErrorIs(t, err, series.ErrNonFinite)
}
