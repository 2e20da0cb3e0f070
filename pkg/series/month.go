package series

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/araddon/dateparse"
)

// MonthLayout is the label format used as join key across series.
const MonthLayout = `2006.01`

var monthLabel = regexp.MustCompile(`^\d{4}\.\d{2}$`)

// NormalizeMonth turns any recognizable date into a "YYYY.MM" label.
func NormalizeMonth(label string) (string, error) {
	label = strings.TrimSpace(label)
	if monthLabel.MatchString(label) {
		return label, nil
	}
	t, err := dateparse.ParseAny(label)
	if err != nil {
		return ``, fmt.Errorf(`invalid month label %q: %w`, label, err)
	}
	return t.Format(MonthLayout), nil
}

var ErrNonFinite = errors.New(`value is not a finite number`)

// Normalize returns a copy of records with normalized month labels.
// NaN and infinite values are rejected.
func Normalize(records []Record) ([]Record, error) {
	out := make([]Record, len(records))
	for i, r := range records {
		month, err := NormalizeMonth(r.Month)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			return nil, fmt.Errorf(`%w: %s: %v`, ErrNonFinite, month, r.Value)
		}
		out[i] = Record{Month: month, Value: r.Value}
	}
	return out, nil
}
