// Package preview coalesces bursts of render requests so rapid
// parameter or time changes produce at most one render per debounce
// window.
package preview

import (
	"image"
	"sync"
	"time"
)

// DebounceWindow is how long a request waits for follow-up requests
// before rendering.
const DebounceWindow = 200 * time.Millisecond

// RenderFunc renders a single frame at time t. A nil result means the
// render failed; the previewer then re-delivers the last good frame.
type RenderFunc func(t float64) *image.NRGBA

// Previewer debounces preview requests. The latest requested
// timestamp wins; earlier requests within the window are dropped.
type Previewer struct {
	render  RenderFunc
	deliver func(*image.NRGBA)
	window  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending float64
	last    *image.NRGBA
	closed  bool
}

func New(render RenderFunc, deliver func(*image.NRGBA)) *Previewer {
	return &Previewer{
		render:  render,
		deliver: deliver,
		window:  DebounceWindow,
	}
}

// Request schedules a render at time t, replacing any not-yet-rendered
// request.
func (p *Previewer) Request(t float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.pending = t
	if p.timer == nil {
		p.timer = time.AfterFunc(p.window, p.fire)
	} else {
		p.timer.Reset(p.window)
	}
}

// Flush renders any pending request immediately instead of waiting
// out the debounce window.
func (p *Previewer) Flush() {
	p.mu.Lock()
	if p.closed || p.timer == nil || !p.timer.Stop() {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	p.fire()
}

// Close drops any pending request. No deliveries happen after Close
// returns, barring a render already in flight.
func (p *Previewer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
	}
}

func (p *Previewer) fire() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	t := p.pending
	p.mu.Unlock()

	frame := p.safeRender(t)

	p.mu.Lock()
	if frame == nil {
		// degrade to the previous frame rather than breaking the
		// preview loop
		frame = p.last
	} else {
		p.last = frame
	}
	closed := p.closed
	p.mu.Unlock()

	if frame != nil && !closed {
		p.deliver(frame)
	}
}

func (p *Previewer) safeRender(t float64) (frame *image.NRGBA) {
	defer func() {
		if r := recover(); r != nil {
			frame = nil
		}
	}()
	return p.render(t)
}
