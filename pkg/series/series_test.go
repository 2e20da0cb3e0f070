package series

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	a := []Record{{Month: `2024.01`, Value: 100}}
	b := []Record{{Month: `2024.02`, Value: 200}}
	c := Combine(a, b)
	assert.Equal(t, []string{`2024.01`, `2024.02`}, c.Months)
	assert.Equal(t, []float64{100, 0}, c.AMatched)
	assert.Equal(t, []float64{0, 200}, c.BMatched)
	assert.Equal(t, []bool{false, true}, c.AMissing)
	assert.Equal(t, []bool{true, false}, c.BMissing)
}

func TestCombineUnion(t *testing.T) {
	cases := []struct {
		name string
		a, b []Record
	}{
		{
			name: `disjoint`,
			a:    []Record{{`2024.03`, 1}, {`2024.01`, 2}},
			b:    []Record{{`2024.02`, 3}, {`2025.01`, 4}},
		},
		{
			name: `overlapping`,
			a:    []Record{{`2024.05`, 1}, {`2024.04`, 2}, {`2024.03`, 3}},
			b:    []Record{{`2024.04`, 4}, {`2024.06`, 5}},
		},
		{
			name: `identical`,
			a:    []Record{{`2024.01`, 1}, {`2024.02`, 2}},
			b:    []Record{{`2024.02`, 3}, {`2024.01`, 4}},
		},
		{
			name: `one empty`,
			a:    nil,
			b:    []Record{{`2024.02`, 3}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Combine(tc.a, tc.b)

			seen := map[string]bool{}
			var want []string
			for _, r := range append(append([]Record{}, tc.a...), tc.b...) {
				if !seen[r.Month] {
					seen[r.Month] = true
					want = append(want, r.Month)
				}
			}
			sort.Strings(want)
			assert.Equal(t, want, c.Months)
			require.Len(t, c.AMatched, len(c.Months))
			require.Len(t, c.BMatched, len(c.Months))

			inA := map[string]float64{}
			for _, r := range tc.a {
				inA[r.Month] = r.Value
			}
			for i, m := range c.Months {
				if v, ok := inA[m]; ok {
					assert.Equal(t, v, c.AMatched[i])
					assert.False(t, c.AMissing[i])
				} else {
					assert.Equal(t, float64(0), c.AMatched[i])
					assert.True(t, c.AMissing[i])
				}
			}
		})
	}
}

func TestCombineKeepsZeroDistinctFromMissing(t *testing.T) {
	c := Combine([]Record{{`2024.01`, 0}}, []Record{{`2024.02`, 5}})
	assert.Equal(t, []float64{0, 0}, c.AMatched)
	assert.Equal(t, []bool{false, true}, c.AMissing)
}

func TestUnionManySets(t *testing.T) {
	months := Union(
		[]Record{{`2024.02`, 1}},
		[]Record{{`2024.01`, 1}, {`2024.02`, 1}},
		[]Record{{`2023.12`, 1}},
	)
	assert.Equal(t, []string{`2023.12`, `2024.01`, `2024.02`}, months)
}

func TestProjections(t *testing.T) {
	records := []Record{{`2024.02`, 2}, {`2024.01`, 1}}
	assert.Equal(t, []string{`2024.02`, `2024.01`}, Months(records))
	assert.Equal(t, []float64{2, 1}, Values(records))
}

func TestNormalizeMonth(t *testing.T) {
	for input, want := range map[string]string{
		`2024.01`:    `2024.01`,
		` 2025.03 `:  `2025.03`,
		`2024-04`:    `2024.04`,
		`2014/3/31`:  `2014.03`,
		`2024-11-05`: `2024.11`,
	} {
		got, err := NormalizeMonth(input)
		if assert.NoError(t, err, input) {
			assert.Equal(t, want, got, input)
		}
	}
	_, err := NormalizeMonth(`not a month`)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	records, err := Normalize([]Record{{`2024-01`, 10}, {`2024.02`, 20}})
	require.NoError(t, err)
	assert.Equal(t, []Record{{`2024.01`, 10}, {`2024.02`, 20}}, records)
}

func TestNormalizeNonFinite(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := Normalize([]Record{{`2024.01`, 1}, {`2024.02`, v}})
		assert.ErrorIs(t, err, ErrNonFinite)
		assert.ErrorContains(t, err, `2024.02`)
	}
}
