package canvas

import (
	"errors"
	"fmt"
	"sync"

	"github.com/admpub/finchart/pkg/linechart"
	"github.com/admpub/log"
	"github.com/go-echarts/go-echarts/v2/charts"
)

var (
	ErrReleased        = errors.New(`chart instance is released`)
	ErrUnsupported     = errors.New(`unsupported surface`)
	ErrNoConfiguration = errors.New(`no chart configuration`)
)

// Engine renders go-echarts line configurations into slots.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Create(surface linechart.Surface) (linechart.Instance, error) {
	slot, ok := surface.(*Slot)
	if !ok {
		return nil, fmt.Errorf(`%w: %T`, ErrUnsupported, surface)
	}
	log.Debugf(`[canvas] create instance on slot %s`, slot.ID())
	return &instance{slot: slot}, nil
}

type instance struct {
	mu       sync.Mutex
	slot     *Slot
	cfg      *charts.Line
	released bool
}

func (i *instance) Apply(cfg *charts.Line) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.released {
		return ErrReleased
	}
	if cfg == nil {
		return ErrNoConfiguration
	}
	i.cfg = cfg
	i.render()
	return nil
}

func (i *instance) Relayout() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.released {
		return ErrReleased
	}
	if i.cfg == nil {
		return nil
	}
	i.render()
	return nil
}

func (i *instance) render() {
	i.cfg.Initialization.ChartID = i.slot.ID()
	i.cfg.Initialization.Width, i.cfg.Initialization.Height = i.slot.Size()
	snippet := i.cfg.RenderSnippet()
	i.slot.write(snippet.Element, snippet.Script)
}

func (i *instance) Release() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.released {
		return
	}
	i.released = true
	i.cfg = nil
	i.slot.clear()
	log.Debugf(`[canvas] released instance on slot %s`, i.slot.ID())
}

func (i *instance) CurrentConfiguration() *charts.Line {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.cfg
}
