package canvas

import (
	"fmt"
	"html/template"
	"sync"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 500
)

// Slot is a display surface holding the rendered markup of one chart.
type Slot struct {
	mu        sync.RWMutex
	id        string
	width     int
	height    int
	element   string
	script    string
	revision  uint64
	listeners map[uint64]func()
	nextID    uint64
}

func NewSlot(id string, width, height int) *Slot {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Slot{
		id:        id,
		width:     width,
		height:    height,
		listeners: map[uint64]func(){},
	}
}

func (s *Slot) ID() string {
	return s.id
}

// Size returns the CSS size of the slot.
func (s *Slot) Size() (width, height string) {
	w, h := s.Dimensions()
	return fmt.Sprintf(`%dpx`, w), fmt.Sprintf(`%dpx`, h)
}

func (s *Slot) Dimensions() (width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height
}

// Resize changes the slot size and notifies the listeners.
func (s *Slot) Resize(width, height int) {
	s.mu.Lock()
	if width > 0 {
		s.width = width
	}
	if height > 0 {
		s.height = height
	}
	listeners := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (s *Slot) OnResize(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Listeners returns the number of registered resize listeners.
func (s *Slot) Listeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// Revision counts the renders written into the slot.
func (s *Slot) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Slot) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.element) == 0
}

// Content returns the chart container element and its script.
func (s *Slot) Content() (element, script string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.element, s.script
}

func (s *Slot) HTML() template.HTML {
	element, script := s.Content()
	if len(element) == 0 {
		return ``
	}
	return template.HTML(element + "\n" + script)
}

func (s *Slot) write(element, script string) {
	s.mu.Lock()
	s.element = element
	s.script = script
	s.revision++
	s.mu.Unlock()
}

func (s *Slot) clear() {
	s.mu.Lock()
	s.element = ``
	s.script = ``
	s.mu.Unlock()
}
