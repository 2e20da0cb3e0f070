package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/admpub/finchart/pkg/linechart"
	"github.com/admpub/json5"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

//go:embed default.json5
var defaultBoard []byte

const (
	DefaultAddr    = `:8080`
	DefaultDataset = `memory://`
	DefaultOutput  = `./dist/index.html`
)

const (
	MissingZero = `zero`
	MissingGap  = `gap`
)

// SeriesRef binds a dataset series to a chart line.
type SeriesRef struct {
	// Source is the dataset series name.
	Source string          `json:"source"`
	Name   string          `json:"name"`
	Style  linechart.Style `json:"style"`
}

type Chart struct {
	ID            string              `json:"id"`
	Heading       string              `json:"heading"`
	Title         string              `json:"title"`
	DecimalPlaces *int                `json:"decimalPlaces,omitempty"`
	Series        []SeriesRef         `json:"series"`
	Multi         bool                `json:"multi,omitempty"`
	MarkLine      *linechart.MarkLine `json:"markLine,omitempty"`
	// Missing is how months absent from a series are drawn in multi series
	// charts: "zero" (default) or "gap".
	Missing string `json:"missing,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

func (c Chart) IsMulti() bool {
	return c.Multi || len(c.Series) > 1
}

type Config struct {
	Title   string  `json:"title"`
	Addr    string  `json:"addr"`
	Dataset string  `json:"dataset"`
	Output  string  `json:"output"`
	Width   int     `json:"width,omitempty"`
	Height  int     `json:"height,omitempty"`
	Charts  []Chart `json:"charts"`
}

// Env holds the settings that can be overridden from the environment.
type Env struct {
	// Environment variable: FINCHART_TITLE
	Title string `koanf:"FINCHART_TITLE"`
	// Environment variable: FINCHART_ADDR
	Addr string `koanf:"FINCHART_ADDR"`
	// Environment variable: FINCHART_DATASET
	Dataset string `koanf:"FINCHART_DATASET"`
	// Environment variable: FINCHART_OUTPUT
	Output string `koanf:"FINCHART_OUTPUT"`
	Width  int    `koanf:"FINCHART_WIDTH"`
	Height int    `koanf:"FINCHART_HEIGHT"`
}

var (
	ErrNoCharts    = errors.New(`no charts configured`)
	ErrNoSeries    = errors.New(`chart has no series`)
	ErrDuplicateID = errors.New(`duplicate chart id`)
)

// Default returns the built-in board.
func Default() (*Config, error) {
	return Parse(defaultBoard)
}

func LoadConfig(path string) (*Config, error) {
	if len(path) == 0 {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf(`%s: %w`, path, err)
	}
	return cfg, nil
}

func Parse(b []byte) (*Config, error) {
	cfg := &Config{}
	if err := json5.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) SetDefaults() {
	if len(c.Addr) == 0 {
		c.Addr = DefaultAddr
	}
	if len(c.Dataset) == 0 {
		c.Dataset = DefaultDataset
	}
	if len(c.Output) == 0 {
		c.Output = DefaultOutput
	}
	for i := range c.Charts {
		chart := &c.Charts[i]
		if len(chart.ID) == 0 {
			chart.ID = fmt.Sprintf(`chart%d`, i+1)
		}
		if len(chart.Missing) == 0 {
			chart.Missing = MissingZero
		}
		if chart.Width <= 0 {
			chart.Width = c.Width
		}
		if chart.Height <= 0 {
			chart.Height = c.Height
		}
	}
}

func (c *Config) Validate() error {
	if len(c.Charts) == 0 {
		return ErrNoCharts
	}
	seen := map[string]struct{}{}
	for _, chart := range c.Charts {
		if _, ok := seen[chart.ID]; ok {
			return fmt.Errorf(`%w: %s`, ErrDuplicateID, chart.ID)
		}
		seen[chart.ID] = struct{}{}
		if len(chart.Series) == 0 {
			return fmt.Errorf(`%w: %s`, ErrNoSeries, chart.ID)
		}
		switch chart.Missing {
		case MissingZero, MissingGap:
		default:
			return fmt.Errorf(`chart %s: invalid missing policy %q`, chart.ID, chart.Missing)
		}
	}
	return nil
}

// Chart returns the chart with the given id.
func (c *Config) Chart(id string) (Chart, bool) {
	for _, chart := range c.Charts {
		if chart.ID == id {
			return chart, true
		}
	}
	return Chart{}, false
}

// ApplyEnv overrides settings from FINCHART_* environment variables.
func (c *Config) ApplyEnv() error {
	k := koanf.New(`.`)
	if err := k.Load(env.Provider(`FINCHART_`, `.`, nil), nil); err != nil {
		return err
	}
	var e Env
	if err := k.UnmarshalWithConf(``, &e, koanf.UnmarshalConf{Tag: `koanf`, FlatPaths: true}); err != nil {
		return err
	}
	if v := strings.TrimSpace(e.Title); len(v) > 0 {
		c.Title = v
	}
	if len(e.Addr) > 0 {
		c.Addr = e.Addr
	}
	if len(e.Dataset) > 0 {
		c.Dataset = e.Dataset
	}
	if len(e.Output) > 0 {
		c.Output = e.Output
	}
	if e.Width > 0 {
		c.Width = e.Width
	}
	if e.Height > 0 {
		c.Height = e.Height
	}
	if e.Width > 0 || e.Height > 0 {
		for i := range c.Charts {
			if e.Width > 0 {
				c.Charts[i].Width = e.Width
			}
			if e.Height > 0 {
				c.Charts[i].Height = e.Height
			}
		}
	}
	return nil
}
