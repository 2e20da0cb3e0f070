package dataset

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/admpub/finchart/pkg/series"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Dataset is a set of named monthly series.
type Dataset struct {
	Series map[string][]series.Record `json:"series"`
}

func (d *Dataset) Names() []string {
	names := make([]string, 0, len(d.Series))
	for name := range d.Series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var ErrUnknownSeries = errors.New(`unknown series`)

// minHintSimilarity is the lowest similarity for which a closest name is suggested.
const minHintSimilarity = 0.5

func (d *Dataset) Lookup(name string) ([]series.Record, error) {
	if records, ok := d.Series[name]; ok {
		return records, nil
	}
	if hint := d.closest(name); len(hint) > 0 {
		return nil, fmt.Errorf(`%w: %s (did you mean %q?)`, ErrUnknownSeries, name, hint)
	}
	return nil, fmt.Errorf(`%w: %s`, ErrUnknownSeries, name)
}

func (d *Dataset) closest(name string) string {
	metric := metrics.NewLevenshtein()
	var (
		best  string
		score float64
	)
	for _, known := range d.Names() {
		if s := strutil.Similarity(name, known, metric); s > score {
			best, score = known, s
		}
	}
	if score < minHintSimilarity {
		return ``
	}
	return best
}

type Source interface {
	Load() (*Dataset, error)
	Close()
}

// FileSource is a Source backed by a file on disk.
type FileSource interface {
	Source
	Path() string
}

type Constructor func(*url.URL) (Source, error)

var sources = map[string]Constructor{}

func Register(scheme string, function Constructor) {
	sources[scheme] = function
}

var ErrUnsupported = errors.New(`unsupported dataset source`)

// Open creates the source for rawURL. A URL without scheme is a file path;
// files ending in .xlsx are read as workbooks.
func Open(rawURL string) (Source, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	scheme := u.Scheme
	if len(scheme) == 0 {
		scheme = `file`
		u.Scheme = scheme
	}
	if scheme == `file` && strings.EqualFold(path.Ext(u.Path), `.xlsx`) {
		scheme = `xlsx`
	}
	fn, ok := sources[scheme]
	if !ok {
		return nil, fmt.Errorf(`%w: %s`, ErrUnsupported, scheme)
	}
	return fn(u)
}
