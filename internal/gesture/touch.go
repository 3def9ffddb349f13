package gesture

import (
	"math"
	"time"
)

const (
	DefaultTouchThreshold = 50.0
	touchLockSlack        = 100 * time.Millisecond
)

// Touch turns a press-drag-release sequence into one Next or Previous intent.
//
// Dragging towards larger coordinates (down the screen) asks for the next
// section. A release is ignored while the previous transition is still inside
// its cooldown, while an earlier release holds the touch lock, when the drag
// never moved far enough, or when the section is already at the boundary.
type Touch struct {
	state     State
	enabled   bool
	threshold float64
	cooldown  time.Duration
	lockFor   time.Duration

	active      bool
	startY      float64
	moved       bool
	lockedUntil time.Time
}

// NewTouch creates a touch interpreter. scrollingSpeed is the transition
// duration and sets both the cooldown and the touch lock.
func NewTouch(state State, threshold float64, scrollingSpeed time.Duration) *Touch {
	if threshold <= 0 {
		threshold = DefaultTouchThreshold
	}
	return &Touch{
		state:     state,
		enabled:   true,
		threshold: threshold,
		cooldown:  scrollingSpeed,
		lockFor:   scrollingSpeed + touchLockSlack,
	}
}

// SetEnabled turns the interpreter on or off
func (t *Touch) SetEnabled(enabled bool) {
	t.enabled = enabled
	t.active = false
	t.moved = false
}

// Enabled reports whether touch paging is on
func (t *Touch) Enabled() bool {
	return t.enabled
}

// Start records where a touch began
func (t *Touch) Start(y float64, at time.Time) Result {
	if !t.enabled || locked(t.state) {
		return Result{}
	}
	t.active = true
	t.startY = y
	t.moved = false
	return Result{}
}

// Move tracks displacement and keeps the host from scrolling
func (t *Touch) Move(y float64, at time.Time) Result {
	if !t.enabled || !t.active {
		return Result{}
	}
	if !locked(t.state) {
		t.track(y)
	}
	return Result{PreventDefault: true}
}

// End decides whether the finished touch produces an intent.
// The release position counts as the final move sample.
func (t *Touch) End(y float64, at time.Time) Result {
	if !t.enabled || !t.active {
		return Result{}
	}
	t.active = false

	if locked(t.state) {
		return Result{}
	}
	t.track(y)

	if last := t.state.LastTransitionStart(); !last.IsZero() && at.Sub(last) < t.cooldown {
		return Result{}
	}
	if at.Before(t.lockedUntil) {
		return Result{}
	}
	if !t.moved {
		return Result{}
	}

	diff := y - t.startY
	if math.Abs(diff) < t.threshold {
		return Result{}
	}

	var intent Intent
	switch {
	case diff > 0 && t.state.ActiveIndex() < t.state.SectionCount()-1:
		intent = NextIntent()
	case diff < 0 && t.state.ActiveIndex() > 0:
		intent = PreviousIntent()
	default:
		return Result{}
	}

	t.lockedUntil = at.Add(t.lockFor)
	return emit(intent)
}

// Cancel abandons the touch in progress
func (t *Touch) Cancel() {
	t.active = false
	t.moved = false
}

func (t *Touch) track(y float64) {
	if math.Abs(y-t.startY) >= t.threshold {
		t.moved = true
	}
}
