package display

import "time"

// DefaultInterval is the minimum spacing of rate-limited redraws.
const DefaultInterval = 100 * time.Millisecond

// Display holds the text a screen shows. Show always records the latest
// text; the visible frame only changes while the display has focus, and
// rate-limited requests arriving within Interval of the previous redraw
// are dropped.
type Display struct {
	interval time.Duration
	now      func() time.Time

	focused  bool
	content  string
	frame    string
	lastDraw time.Time
	drawn    bool
	redraws  int
}

// New creates an unfocused Display.
func New(interval time.Duration) *Display {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Display{interval: interval, now: time.Now}
}

// Show replaces the content and redraws if allowed. It reports whether the
// frame was redrawn.
func (d *Display) Show(text string, rateLimited bool) bool {
	d.content = text
	if !d.focused {
		return false
	}
	now := d.now()
	if rateLimited && d.drawn && now.Sub(d.lastDraw) < d.interval {
		return false
	}
	d.draw(now)
	return true
}

// Focus gives the display input focus and draws the latest content.
func (d *Display) Focus() {
	d.focused = true
	d.draw(d.now())
}

// Blur removes input focus. The current frame stays as it is.
func (d *Display) Blur() {
	d.focused = false
}

// Focused reports whether the display has input focus.
func (d *Display) Focused() bool { return d.focused }

// Frame returns the last drawn text.
func (d *Display) Frame() string { return d.frame }

// Content returns the latest text passed to Show, drawn or not.
func (d *Display) Content() string { return d.content }

// Redraws counts frames drawn so far.
func (d *Display) Redraws() int { return d.redraws }

func (d *Display) draw(now time.Time) {
	d.frame = d.content
	d.lastDraw = now
	d.drawn = true
	d.redraws++
}
