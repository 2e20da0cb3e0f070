package linechart

import (
	"errors"

	"github.com/admpub/log"
	"github.com/go-echarts/go-echarts/v2/charts"
)

var ErrDisposed = errors.New(`chart adapter is disposed`)

// Surface is the display region a chart instance is bound to.
type Surface interface {
	ID() string
	Size() (width, height string)
}

// ResizeNotifier is implemented by surfaces that report size changes.
type ResizeNotifier interface {
	OnResize(fn func()) (cancel func())
}

// Engine creates rendering instances bound to a surface.
type Engine interface {
	Create(surface Surface) (Instance, error)
}

type Instance interface {
	Apply(cfg *charts.Line) error
	Relayout() error
	Release()
	CurrentConfiguration() *charts.Line
}

type State int

const (
	Unmounted State = iota
	Mounted
	Attached
	Disposed
)

func (s State) String() string {
	switch s {
	case Unmounted:
		return `unmounted`
	case Mounted:
		return `mounted`
	case Attached:
		return `attached`
	case Disposed:
		return `disposed`
	default:
		return `unknown`
	}
}

// Adapter keeps one rendering instance in sync with its props.
// It is not safe for concurrent use; callers serialize events.
type Adapter struct {
	engine   Engine
	props    Props
	surface  Surface
	instance Instance
	state    State
	unlisten func()
}

func New(engine Engine, props Props) *Adapter {
	return &Adapter{engine: engine, props: props}
}

func (a *Adapter) State() State {
	return a.state
}

func (a *Adapter) Props() Props {
	return a.props
}

func (a *Adapter) Surface() Surface {
	return a.surface
}

// Instance returns the live rendering instance or nil.
func (a *Adapter) Instance() Instance {
	return a.instance
}

// Mount binds the adapter to surface and initializes it. A nil surface
// leaves the adapter mounted without an instance until the next Mount.
// Mounting again on the same surface patches the live instance.
func (a *Adapter) Mount(surface Surface) error {
	if a.state == Disposed {
		return ErrDisposed
	}
	if a.surface != nil && surface == a.surface && a.instance != nil {
		return a.Patch()
	}
	if a.surface != nil && surface != a.surface {
		a.detach()
	}
	a.surface = surface
	a.state = Mounted
	if notifier, ok := surface.(ResizeNotifier); ok && a.unlisten == nil {
		a.unlisten = notifier.OnResize(a.onResize)
	}
	return a.Initialize()
}

// Initialize builds the full configuration and applies it to a new instance.
// Any previous instance is released first.
func (a *Adapter) Initialize() error {
	if a.state == Disposed {
		return ErrDisposed
	}
	if a.surface == nil {
		log.Debugf(`[linechart] %q: no surface yet, initialization deferred`, a.props.title())
		return nil
	}
	a.release()
	instance, err := a.engine.Create(a.surface)
	if err != nil {
		return err
	}
	if err = instance.Apply(Build(a.props, a.surface)); err != nil {
		instance.Release()
		return err
	}
	a.instance = instance
	a.state = Attached
	return nil
}

// Update stores props and patches the live instance, if any.
func (a *Adapter) Update(props Props) error {
	if a.state == Disposed {
		return ErrDisposed
	}
	a.props = props
	return a.Patch()
}

// Patch rewrites the changed fields of the applied configuration and
// re-applies it on the same instance. Without an instance it does nothing.
func (a *Adapter) Patch() error {
	if a.instance == nil {
		return nil
	}
	cfg := a.instance.CurrentConfiguration()
	if cfg == nil {
		return nil
	}
	patch(cfg, a.props)
	return a.instance.Apply(cfg)
}

// Resize asks the live instance to lay itself out again.
func (a *Adapter) Resize() error {
	if a.instance == nil {
		return nil
	}
	return a.instance.Relayout()
}

func (a *Adapter) onResize() {
	if err := a.Resize(); err != nil {
		log.Warnf(`[linechart] %q: relayout failed: %v`, a.props.title(), err)
	}
}

// Unmount releases the instance and the resize listener. The adapter cannot
// be mounted again afterwards.
func (a *Adapter) Unmount() {
	if a.state == Disposed {
		return
	}
	a.detach()
	a.state = Disposed
}

func (a *Adapter) release() {
	if a.instance != nil {
		a.instance.Release()
		a.instance = nil
	}
}

func (a *Adapter) detach() {
	a.release()
	if a.unlisten != nil {
		a.unlisten()
		a.unlisten = nil
	}
	a.surface = nil
}
