package series

import (
	"sort"

	"github.com/adrg/strutil"
)

// Record is one month of a financial series.
type Record struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// Combined is the month-aligned view of two series.
// AMissing/BMissing are true where the month had no record and the
// matching value was filled with 0.
type Combined struct {
	Months   []string  `json:"months"`
	AMatched []float64 `json:"aMatched"`
	BMatched []float64 `json:"bMatched"`
	AMissing []bool    `json:"aMissing"`
	BMissing []bool    `json:"bMissing"`
}

// Combine merges two series on their month key. Months are the lexically
// sorted union of both key sets, which orders "YYYY.MM" labels correctly.
func Combine(a, b []Record) Combined {
	months := Union(a, b)
	c := Combined{Months: months}
	c.AMatched, c.AMissing = Align(months, a)
	c.BMatched, c.BMissing = Align(months, b)
	return c
}

// Union returns the sorted, de-duplicated month labels of all sets.
func Union(sets ...[]Record) []string {
	var months []string
	for _, records := range sets {
		months = append(months, Months(records)...)
	}
	months = strutil.UniqueSlice(months)
	sort.Strings(months)
	return months
}

// Align returns the values of records at each of months, 0 where absent.
func Align(months []string, records []Record) (values []float64, missing []bool) {
	index := make(map[string]float64, len(records))
	for _, r := range records {
		index[r.Month] = r.Value
	}
	values = make([]float64, len(months))
	missing = make([]bool, len(months))
	for i, month := range months {
		v, ok := index[month]
		if !ok {
			missing[i] = true
			continue
		}
		values[i] = v
	}
	return
}

// Months projects the month labels in source order.
func Months(records []Record) []string {
	months := make([]string, len(records))
	for i, r := range records {
		months[i] = r.Month
	}
	return months
}

// Values projects the values in source order.
func Values(records []Record) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value
	}
	return values
}
