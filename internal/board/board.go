package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"sync"

	"github.com/admpub/finchart/pkg/canvas"
	"github.com/admpub/finchart/pkg/config"
	"github.com/admpub/finchart/pkg/dataset"
	"github.com/admpub/finchart/pkg/linechart"
	"github.com/admpub/finchart/pkg/series"
	"github.com/admpub/log"
	"github.com/adrg/strutil"
)

var (
	ErrUnknownChart = errors.New(`unknown chart`)
	ErrNotMounted   = errors.New(`board is not mounted`)
	ErrClosed       = errors.New(`board is closed`)
)

type panel struct {
	chart   config.Chart
	slot    *canvas.Slot
	adapter *linechart.Adapter
}

// Board composes one chart adapter per configured chart and routes mount,
// data change and resize events to them, one event at a time.
type Board struct {
	mu     sync.Mutex
	cfg    *config.Config
	source dataset.Source
	engine linechart.Engine
	data   *dataset.Dataset
	panels []*panel
	closed bool
}

func New(cfg *config.Config, source dataset.Source, engine linechart.Engine) *Board {
	return &Board{cfg: cfg, source: source, engine: engine}
}

func (b *Board) Config() *config.Config {
	return b.cfg
}

// Mount loads the dataset and mounts an adapter for every chart.
func (b *Board) Mount() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	data, err := b.source.Load()
	if err != nil {
		return err
	}
	for _, p := range b.panels {
		p.adapter.Unmount()
	}
	b.panels = nil
	panels := make([]*panel, 0, len(b.cfg.Charts))
	unmount := func() {
		for _, p := range panels {
			p.adapter.Unmount()
		}
	}
	for _, chart := range b.cfg.Charts {
		props, err := Props(chart, data)
		if err != nil {
			unmount()
			return err
		}
		p := &panel{
			chart:   chart,
			slot:    canvas.NewSlot(chart.ID, chart.Width, chart.Height),
			adapter: linechart.New(b.engine, props),
		}
		if err = p.adapter.Mount(p.slot); err != nil {
			unmount()
			return fmt.Errorf(`chart %s: %w`, chart.ID, err)
		}
		panels = append(panels, p)
	}
	b.data = data
	b.panels = panels
	log.Debugf(`[board] mounted %d charts`, len(panels))
	return nil
}

// Reload re-reads the dataset and patches every chart.
func (b *Board) Reload() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	if b.panels == nil {
		return ErrNotMounted
	}
	data, err := b.source.Load()
	if err != nil {
		return err
	}
	// every chart must accept the new data before any of them is patched
	updates := make([]linechart.Props, len(b.panels))
	for i, p := range b.panels {
		props, err := Props(p.chart, data)
		if err != nil {
			return fmt.Errorf(`chart %s: %w`, p.chart.ID, err)
		}
		updates[i] = props
	}
	b.data = data
	for i, p := range b.panels {
		if err = p.adapter.Update(updates[i]); err != nil {
			return fmt.Errorf(`chart %s: %w`, p.chart.ID, err)
		}
	}
	log.Debugf(`[board] reloaded %d charts`, len(b.panels))
	return nil
}

// Resize changes the size of a chart surface.
func (b *Board) Resize(id string, width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, err := b.panel(id)
	if err != nil {
		return err
	}
	p.slot.Resize(width, height)
	return nil
}

func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for _, p := range b.panels {
		p.adapter.Unmount()
	}
	b.closed = true
	b.source.Close()
}

func (b *Board) panel(id string) (*panel, error) {
	for _, p := range b.panels {
		if p.chart.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf(`%w: %s`, ErrUnknownChart, id)
}

// Section is the rendered state of one chart.
type Section struct {
	ID       string        `json:"id"`
	Heading  string        `json:"heading"`
	Title    string        `json:"title"`
	State    string        `json:"state"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Revision uint64        `json:"revision"`
	HTML     template.HTML `json:"-"`
}

func (b *Board) Sections() []Section {
	b.mu.Lock()
	defer b.mu.Unlock()
	sections := make([]Section, len(b.panels))
	for i, p := range b.panels {
		sections[i] = sectionOf(p)
	}
	return sections
}

func (b *Board) Section(id string) (Section, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, err := b.panel(id)
	if err != nil {
		return Section{}, err
	}
	return sectionOf(p), nil
}

func sectionOf(p *panel) Section {
	width, height := p.slot.Dimensions()
	return Section{
		ID:       p.chart.ID,
		Heading:  p.chart.Heading,
		Title:    p.adapter.Props().Title,
		State:    p.adapter.State().String(),
		Width:    width,
		Height:   height,
		Revision: p.slot.Revision(),
		HTML:     p.slot.HTML(),
	}
}

// Option returns the applied chart configuration as JSON.
func (b *Board) Option(id string) (json.RawMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, err := b.panel(id)
	if err != nil {
		return nil, err
	}
	instance := p.adapter.Instance()
	if instance == nil {
		return nil, fmt.Errorf(`chart %s: %w`, id, ErrNotMounted)
	}
	cfg := instance.CurrentConfiguration()
	if cfg == nil {
		return nil, fmt.Errorf(`chart %s: %w`, id, ErrNotMounted)
	}
	return json.Marshal(cfg.JSON())
}

// Dataset returns the last loaded dataset.
func (b *Board) Dataset() (*dataset.Dataset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, ErrNotMounted
	}
	return b.data, nil
}

// Combine returns the month-aligned view of two dataset series.
func (b *Board) Combine(a, c string) (series.Combined, error) {
	data, err := b.Dataset()
	if err != nil {
		return series.Combined{}, err
	}
	ra, err := data.Lookup(a)
	if err != nil {
		return series.Combined{}, err
	}
	rc, err := data.Lookup(c)
	if err != nil {
		return series.Combined{}, err
	}
	return series.Combine(ra, rc), nil
}

// Assets returns the script URLs the mounted charts depend on.
func (b *Board) Assets() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var assets []string
	for _, p := range b.panels {
		instance := p.adapter.Instance()
		if instance == nil {
			continue
		}
		if cfg := instance.CurrentConfiguration(); cfg != nil {
			assets = append(assets, cfg.JSAssets.Values...)
		}
	}
	return strutil.UniqueSlice(assets)
}
