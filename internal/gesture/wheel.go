package gesture

import (
	"math"
	"time"
)

const (
	DefaultWheelThreshold   = 50.0
	DefaultWheelContinueGap = 200 * time.Millisecond
	DefaultWheelEndGap      = 300 * time.Millisecond
)

// Wheel collapses a burst of wheel deltas into one Next or Previous intent.
//
// Deltas arriving less than ContinueGap apart are summed; a longer gap starts
// the sum again from the new delta. Once the sum reaches the threshold the
// gesture fires and stays consumed until no event arrives for EndGap.
type Wheel struct {
	state       State
	enabled     bool
	threshold   float64
	continueGap time.Duration
	endGap      time.Duration

	accumulated float64
	lastEvent   time.Time
	fired       bool
}

// NewWheel creates a wheel interpreter. A non-positive threshold uses the default.
func NewWheel(state State, threshold float64) *Wheel {
	if threshold <= 0 {
		threshold = DefaultWheelThreshold
	}
	return &Wheel{
		state:       state,
		enabled:     true,
		threshold:   threshold,
		continueGap: DefaultWheelContinueGap,
		endGap:      DefaultWheelEndGap,
	}
}

// SetEnabled turns the interpreter on or off. A disabled wheel lets events fall through.
func (w *Wheel) SetEnabled(enabled bool) {
	w.enabled = enabled
	w.Reset()
}

// Enabled reports whether wheel paging is on
func (w *Wheel) Enabled() bool {
	return w.enabled
}

// Reset clears the gesture accumulator
func (w *Wheel) Reset() {
	w.accumulated = 0
	w.lastEvent = time.Time{}
	w.fired = false
}

// Handle interprets one wheel event. Positive deltas scroll towards later sections.
func (w *Wheel) Handle(delta float64, at time.Time) Result {
	if !w.enabled {
		return Result{}
	}

	// Wheel events never reach the host while paging is active, even when locked.
	res := Result{PreventDefault: true}
	if locked(w.state) {
		return res
	}

	if w.lastEvent.IsZero() {
		w.accumulated = delta
	} else {
		gap := at.Sub(w.lastEvent)
		if gap >= w.endGap {
			w.fired = false
		}
		if gap < w.continueGap {
			w.accumulated += delta
		} else {
			w.accumulated = delta
		}
	}
	w.lastEvent = at

	if w.fired || math.Abs(w.accumulated) < w.threshold {
		return res
	}

	w.fired = true
	intent := NextIntent()
	if w.accumulated < 0 {
		intent = PreviousIntent()
	}
	w.accumulated = 0
	return emit(intent)
}
