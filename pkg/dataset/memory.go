package dataset

import (
	"net/url"

	"github.com/admpub/finchart/pkg/series"
)

func init() {
	Register(`memory`, func(_ *url.URL) (Source, error) { return &sourceMemory{}, nil })
}

// sourceMemory serves the built-in sample series.
type sourceMemory struct{}

func (s *sourceMemory) Load() (*Dataset, error) {
	return Sample(), nil
}

func (s *sourceMemory) Close() {
}

// Sample returns a fresh copy of the built-in series.
func Sample() *Dataset {
	return &Dataset{Series: map[string][]series.Record{
		`income`: {
			{Month: `2024.03`, Value: 25322},
			{Month: `2024.04`, Value: 27581},
			{Month: `2024.05`, Value: 30131},
			{Month: `2024.06`, Value: 36517},
			{Month: `2024.07`, Value: 30230},
			{Month: `2024.08`, Value: 32056},
			{Month: `2024.09`, Value: 50131},
			{Month: `2024.10`, Value: 30132},
			{Month: `2024.11`, Value: 30096},
			{Month: `2024.12`, Value: 30132},
			{Month: `2025.01`, Value: 31076},
			{Month: `2025.02`, Value: 30982},
			{Month: `2025.03`, Value: 39946},
		},
		`expense`: {
			{Month: `2024.01`, Value: 17589},
			{Month: `2024.02`, Value: 17391},
			{Month: `2024.03`, Value: 16319},
			{Month: `2024.04`, Value: 21981},
			{Month: `2024.05`, Value: 35709},
			{Month: `2024.06`, Value: 57168},
			{Month: `2024.07`, Value: 39991},
			{Month: `2024.08`, Value: 46323},
			{Month: `2024.09`, Value: 20117},
			{Month: `2024.10`, Value: 4400},
			{Month: `2024.11`, Value: 8253},
			{Month: `2024.12`, Value: 31426},
			{Month: `2025.01`, Value: 37397},
			{Month: `2025.02`, Value: 14040},
			{Month: `2025.03`, Value: 43905},
		},
		`debt`: {
			{Month: `2024.01`, Value: 267874},
			{Month: `2024.02`, Value: 267874},
			{Month: `2024.03`, Value: 263691},
			{Month: `2024.04`, Value: 268939},
			{Month: `2024.05`, Value: 279221},
			{Month: `2024.06`, Value: 280457},
			{Month: `2024.07`, Value: 298660},
			{Month: `2024.08`, Value: 315716},
			{Month: `2024.09`, Value: 287586},
			{Month: `2024.10`, Value: 268114},
			{Month: `2024.11`, Value: 248227},
			{Month: `2024.12`, Value: 251551},
			{Month: `2025.01`, Value: 261555},
			{Month: `2025.02`, Value: 243390},
			{Month: `2025.03`, Value: 232417},
		},
	}}
}
