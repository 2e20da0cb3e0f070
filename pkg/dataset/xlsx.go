package dataset

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/admpub/finchart/pkg/series"
	"github.com/admpub/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func init() {
	Register(`xlsx`, func(u *url.URL) (Source, error) {
		path := u.Opaque
		if len(path) == 0 {
			path = u.Host + u.Path
		}
		if len(path) == 0 {
			return nil, fmt.Errorf(`workbook path is empty: %s`, u.String())
		}
		return &sourceXLSX{path: path, sheet: u.Query().Get(`sheet`)}, nil
	})
}

// sourceXLSX reads one worksheet laid out as
//
//	month   | income | expense
//	2024.01 | 100    | 200
//
// Empty cells are months without a record.
type sourceXLSX struct {
	path  string
	sheet string
}

func (s *sourceXLSX) Path() string {
	return s.path
}

func (s *sourceXLSX) Load() (*Dataset, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := s.sheet
	if len(sheet) == 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf(`%s: workbook has no sheets`, s.path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, s.path, err)
	}
	data := &Dataset{Series: map[string][]series.Record{}}
	if len(rows) == 0 {
		return data, nil
	}
	header := rows[0]
	for _, row := range rows[1:] {
		if len(row) == 0 || len(strings.TrimSpace(row[0])) == 0 {
			continue
		}
		month, err := series.NormalizeMonth(row[0])
		if err != nil {
			return nil, fmt.Errorf(`%s: sheet %s: %w`, s.path, sheet, err)
		}
		for col := 1; col < len(row) && col < len(header); col++ {
			name := strings.TrimSpace(header[col])
			cell := strings.TrimSpace(row[col])
			if len(name) == 0 || len(cell) == 0 {
				continue
			}
			value, err := decimal.NewFromString(strings.ReplaceAll(cell, `,`, ``))
			if err != nil {
				return nil, fmt.Errorf(`%s: sheet %s: %s %s: %w`, s.path, sheet, name, month, err)
			}
			data.Series[name] = append(data.Series[name], series.Record{Month: month, Value: value.InexactFloat64()})
		}
	}
	log.Debugf(`[dataset] loaded %d series from %s (%s)`, len(data.Series), s.path, sheet)
	return data, nil
}

func (s *sourceXLSX) Close() {
}
