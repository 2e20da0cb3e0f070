package dataset

import (
	"fmt"
	"net/url"
	"os"

	"github.com/admpub/finchart/pkg/series"
	"github.com/admpub/json5"
	"github.com/admpub/log"
)

func init() {
	Register(`file`, func(u *url.URL) (Source, error) {
		path := u.Opaque
		if len(path) == 0 {
			path = u.Host + u.Path
		}
		if len(path) == 0 {
			return nil, fmt.Errorf(`dataset file path is empty: %s`, u.String())
		}
		return &sourceFile{path: path}, nil
	})
}

// sourceFile reads a JSON5 document of the form
//
//	{series: {income: [{month: "2024.03", value: 25322}, ...]}}
type sourceFile struct {
	path string
}

func (s *sourceFile) Path() string {
	return s.path
}

func (s *sourceFile) Load() (*Dataset, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	data := &Dataset{}
	if err = json5.Unmarshal(b, data); err != nil {
		return nil, fmt.Errorf(`%s: %w`, s.path, err)
	}
	for name, records := range data.Series {
		normalized, err := series.Normalize(records)
		if err != nil {
			return nil, fmt.Errorf(`%s: series %s: %w`, s.path, name, err)
		}
		data.Series[name] = normalized
	}
	log.Debugf(`[dataset] loaded %d series from %s`, len(data.Series), s.path)
	return data, nil
}

func (s *sourceFile) Close() {
}
