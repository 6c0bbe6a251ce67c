// Package render draws compiled slides on a tcell screen. Shapes become
// bordered rectangles with centered labels, connectors become routed
// lines, and opacity dims the drawing color. Rotation has no cell-grid
// representation and is not drawn. Redraw is driven entirely by the
// scheduler's flush callback; nothing here watches targets.
package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/morph/core"
	"github.com/lixenwraith/morph/deck"
	"github.com/lixenwraith/morph/engine/status"
)

// Key is a decoded presenter key action
type Key int

const (
	KeyNone Key = iota
	KeyAdvance
	KeyBack
	KeyNextPage
	KeyPrevPage
	KeyDebug
	KeyQuit
	KeyResize
)

// Overlay carries the presenter state shown in the status bar
type Overlay struct {
	Title     string
	Page      int
	PageCount int
	Step      int
	Steps     int
	Animating bool
	Debug     bool
	Metrics   *status.Registry
}

// Renderer owns a tcell screen for the lifetime of the presentation
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// New wraps an initialized screen. Tests pass a simulation screen.
func New(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	core.SetResetHook(screen.Fini)
	return r
}

// NewTerminal creates and initializes a real terminal screen
func NewTerminal() (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("render: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("render: init screen: %w", err)
	}
	screen.HideCursor()
	return New(screen), nil
}

// Fini restores the terminal
func (r *Renderer) Fini() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screen.Fini()
}

// Size returns the drawable area in cells
func (r *Renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.screen.Size()
}

// PollKey blocks for the next decoded key action. Resize events sync the
// screen before reporting, so the caller just redraws.
func (r *Renderer) PollKey() Key {
	for {
		ev := r.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			r.screen.Sync()
			return KeyResize
		case *tcell.EventKey:
			if k := decodeKey(e); k != KeyNone {
				return k
			}
		case nil:
			// Screen finalized
			return KeyQuit
		}
	}
}

func decodeKey(e *tcell.EventKey) Key {
	switch e.Key() {
	case tcell.KeyRight, tcell.KeyDown, tcell.KeyPgDn, tcell.KeyEnter:
		return KeyAdvance
	case tcell.KeyLeft, tcell.KeyUp, tcell.KeyPgUp, tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBack
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		switch e.Rune() {
		case ' ':
			return KeyAdvance
		case 'n':
			return KeyNextPage
		case 'p':
			return KeyPrevPage
		case 'd':
			return KeyDebug
		case 'q':
			return KeyQuit
		}
	}
	return KeyNone
}

// DrawSlide renders a full frame: connectors under shapes, shapes in
// declaration order, status bar last
func (r *Renderer) DrawSlide(cs *deck.CompiledSlide, ov Overlay) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Clear()
	for _, c := range cs.Conns {
		drawConnector(r.screen, c)
	}
	for _, name := range cs.Order {
		drawShape(r.screen, cs.Targets[name], cs.Labels[name])
	}
	drawOverlay(r.screen, ov)
	r.screen.Show()
}
