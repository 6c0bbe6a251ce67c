// morph-present plays a YAML deck in the terminal. Arrow keys and space
// advance through each slide's steps, n/p switch slides, d toggles the
// telemetry overlay, q quits. Without a deck argument it plays a built-in
// demo.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/morph/audio"
	"github.com/lixenwraith/morph/deck"
	"github.com/lixenwraith/morph/engine"
	"github.com/lixenwraith/morph/engine/status"
	"github.com/lixenwraith/morph/events"
	"github.com/lixenwraith/morph/navigation"
	"github.com/lixenwraith/morph/render"
)

var (
	deckFlag = flag.String("deck", "", "Path to a deck YAML file (default: built-in demo)")
	muteFlag = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nmorph-present crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	var (
		d   *deck.Deck
		err error
	)
	if *deckFlag != "" {
		d, err = deck.Load(*deckFlag)
	} else {
		d, err = deck.Parse([]byte(demoDeck))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	renderer, err := render.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer renderer.Fini()

	cues := audio.NewCues()
	if !*muteFlag {
		if err := cues.Initialize(); err != nil {
			// Continue silent; audio is feedback, not function
			cues = audio.NewCues()
		}
		defer cues.Cleanup()
	}

	p, err := newPresenter(d, renderer, cues)
	if err != nil {
		renderer.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer p.stop()

	p.run()
}

// pageRig is everything one slide needs to play
type pageRig struct {
	slide  *deck.CompiledSlide
	sched  *engine.Scheduler
	drv    *engine.Driver
	nav    *navigation.Adapter[*presenter]
	settle settleLatch
}

// settleLatch detects the transition out of animation, so the settle cue
// plays once per completed tween and stays quiet on snaps and resets
type settleLatch struct {
	animating atomic.Bool
}

func (l *settleLatch) observe(animating bool) bool {
	was := l.animating.Swap(animating)
	return was && !animating
}

type presenter struct {
	pages    []*pageRig
	page     atomic.Int32
	debug    atomic.Bool
	clicks   int
	renderer *render.Renderer
	cues     *audio.Cues
	queue    *events.Queue
	router   *events.Router[*presenter]
	metrics  *status.Registry
}

func newPresenter(d *deck.Deck, renderer *render.Renderer, cues *audio.Cues) (*presenter, error) {
	p := &presenter{
		renderer: renderer,
		cues:     cues,
		queue:    events.NewQueue(),
		metrics:  status.NewRegistry(),
	}
	p.router = events.NewRouter[*presenter](p.queue)
	p.router.Register(p)

	for i := range d.Slides {
		cs, err := d.Compile(i)
		if err != nil {
			return nil, err
		}

		page := i
		sched := engine.NewScheduler(cs.Sequence, engine.Options{
			Status:  p.metrics,
			OnFlush: func() { p.flushed(page) },
		})
		rig := &pageRig{
			slide: cs,
			sched: sched,
			drv:   engine.NewDriver(sched),
			nav:   navigation.NewAdapter[*presenter](sched),
		}
		rig.drv.Start()
		p.pages = append(p.pages, rig)
	}
	return p, nil
}

func (p *presenter) stop() {
	for _, rig := range p.pages {
		rig.drv.Stop()
	}
}

// HandleSignal forwards queued navigation signals to the active page.
// Page signals reset the page being left before the switch.
func (p *presenter) HandleSignal(ctx *presenter, s events.Signal) {
	switch s.Type {
	case events.SignalPage:
		p.activeRig().nav.PageChanged(s.Value)
		p.page.Store(int32(s.Value))
	case events.SignalClicks:
		p.activeRig().nav.HandleSignal(ctx, s)
	}
}

// SignalTypes declares the presenter as the router's sole consumer
func (p *presenter) SignalTypes() []events.SignalType {
	return []events.SignalType{events.SignalClicks, events.SignalPage}
}

func (p *presenter) activeRig() *pageRig {
	return p.pages[p.page.Load()]
}

func (p *presenter) run() {
	p.redraw()
	for {
		switch p.renderer.PollKey() {
		case render.KeyAdvance:
			p.advance()
		case render.KeyBack:
			p.back()
		case render.KeyNextPage:
			p.gotoPage(int(p.page.Load()) + 1)
		case render.KeyPrevPage:
			p.gotoPage(int(p.page.Load()) - 1)
		case render.KeyDebug:
			p.debug.Store(!p.debug.Load())
			p.redraw()
		case render.KeyResize:
			p.redraw()
		case render.KeyQuit:
			return
		}
	}
}

func (p *presenter) advance() {
	if p.clicks >= p.activeRig().nav.TotalSteps() {
		p.gotoPage(int(p.page.Load()) + 1)
		return
	}
	p.clicks++
	p.cues.Advance()
	p.push(events.SignalClicks, p.clicks)
}

func (p *presenter) back() {
	if p.clicks == 0 {
		p.gotoPage(int(p.page.Load()) - 1)
		return
	}
	p.clicks--
	p.cues.Back()
	p.push(events.SignalClicks, p.clicks)
}

func (p *presenter) gotoPage(page int) {
	if page < 0 || page >= len(p.pages) {
		return
	}
	p.clicks = 0
	p.cues.PageTurn()
	p.push(events.SignalPage, page)
}

func (p *presenter) push(t events.SignalType, v int) {
	p.queue.Push(events.Signal{Type: t, Value: v, At: time.Now()})
	p.router.DispatchAll(p)
	p.redraw()
}

// flushed runs on the driver goroutine after each committed frame
func (p *presenter) flushed(page int) {
	if page != int(p.page.Load()) {
		return
	}
	rig := p.pages[page]
	if rig.settle.observe(rig.sched.IsAnimating()) {
		p.cues.Settle()
	}
	p.redraw()
}

func (p *presenter) redraw() {
	rig := p.activeRig()
	p.renderer.DrawSlide(rig.slide, render.Overlay{
		Title:     rig.slide.Title,
		Page:      int(p.page.Load()),
		PageCount: len(p.pages),
		Step:      rig.nav.CurrentStep(),
		Steps:     rig.nav.TotalSteps(),
		Animating: rig.nav.IsAnimating(),
		Debug:     p.debug.Load(),
		Metrics:   p.metrics,
	})
}
