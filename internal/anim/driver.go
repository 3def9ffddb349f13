package anim

import (
	"math"
	"time"
)

// Surface is the scroll offset the driver animates
type Surface interface {
	ScrollOffset() float64
	SetScrollOffset(offset float64)
}

// FrameScheduler delivers one frame callback per request.
// The scheduler must eventually call Driver.Frame with the same token.
type FrameScheduler interface {
	RequestFrame(token uint64)
}

// Driver runs at most one scroll animation at a time.
//
// It is not safe for concurrent use: Start, Frame and Cancel must all be
// called from the event loop that owns the surface.
type Driver struct {
	surface Surface
	frames  FrameScheduler
	now     func() time.Time

	gen    uint64 // bumped on every start/cancel so stale frames are ignored
	active *animation
}

type animation struct {
	token      uint64
	from, to   float64
	start      time.Time
	duration   time.Duration
	easing     Easing
	onComplete func()
}

// Option configures a Driver
type Option func(*Driver)

// WithClock replaces the wall clock used to stamp animation start
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		d.now = now
	}
}

// NewDriver creates a driver writing to surface and pacing itself with frames
func NewDriver(surface Surface, frames FrameScheduler, opts ...Option) *Driver {
	d := &Driver{
		surface: surface,
		frames:  frames,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start animates the surface from one offset to another.
// A distance under one unit completes synchronously without scheduling a frame.
// Any animation already running is cancelled without completing.
func (d *Driver) Start(from, to float64, duration time.Duration, easing Easing, onComplete func()) {
	d.Cancel()

	if math.Abs(to-from) < 1 {
		if onComplete != nil {
			onComplete()
		}
		return
	}

	if easing == nil {
		easing = EaseInOutCubic
	}

	d.gen++
	d.active = &animation{
		token:      d.gen,
		from:       from,
		to:         to,
		start:      d.now(),
		duration:   duration,
		easing:     easing,
		onComplete: onComplete,
	}
	d.frames.RequestFrame(d.gen)
}

// Frame advances the running animation. Frames carrying a stale token are ignored.
func (d *Driver) Frame(token uint64, now time.Time) {
	a := d.active
	if a == nil || a.token != token {
		return
	}

	progress := 1.0
	if a.duration > 0 {
		progress = float64(now.Sub(a.start)) / float64(a.duration)
		progress = math.Max(0, math.Min(progress, 1))
	}

	d.surface.SetScrollOffset(a.from + (a.to-a.from)*a.easing(progress))

	if progress < 1 {
		d.frames.RequestFrame(token)
		return
	}

	d.active = nil
	if a.onComplete != nil {
		a.onComplete()
	}
}

// Cancel stops the running animation without invoking its completion
func (d *Driver) Cancel() {
	if d.active == nil {
		return
	}
	d.active = nil
	d.gen++
}

// Running reports whether an animation is in flight
func (d *Driver) Running() bool {
	return d.active != nil
}

// Target returns the offset the running animation is heading to
func (d *Driver) Target() (float64, bool) {
	if d.active == nil {
		return 0, false
	}
	return d.active.to, true
}
