package gesture

// Key names a navigation key
type Key string

const (
	KeyUp         Key = "up"
	KeyDown       Key = "down"
	KeyPageUp     Key = "pgup"
	KeyPageDown   Key = "pgdown"
	KeySpace      Key = "space"
	KeyShiftSpace Key = "shift+space"
	KeyHome       Key = "home"
	KeyEnd        Key = "end"
)

// Keyboard maps navigation keys to intents, one intent per key press
type Keyboard struct {
	state   State
	enabled bool
}

// NewKeyboard creates a keyboard interpreter
func NewKeyboard(state State) *Keyboard {
	return &Keyboard{state: state, enabled: true}
}

// SetEnabled turns keyboard paging on or off
func (k *Keyboard) SetEnabled(enabled bool) {
	k.enabled = enabled
}

// Enabled reports whether keyboard paging is on
func (k *Keyboard) Enabled() bool {
	return k.enabled
}

// Handles reports whether key is one of the navigation keys
func Handles(key Key) bool {
	switch key {
	case KeyUp, KeyDown, KeyPageUp, KeyPageDown, KeySpace, KeyShiftSpace, KeyHome, KeyEnd:
		return true
	}
	return false
}

// Handle interprets one key press
func (k *Keyboard) Handle(key Key) Result {
	if !k.enabled || !Handles(key) || locked(k.state) {
		return Result{}
	}

	active := k.state.ActiveIndex()
	last := k.state.SectionCount() - 1
	res := Result{PreventDefault: true}

	switch key {
	case KeyUp, KeyPageUp, KeyShiftSpace:
		if active > 0 {
			return emit(PreviousIntent())
		}
	case KeyDown, KeyPageDown, KeySpace:
		if active < last {
			return emit(NextIntent())
		}
	case KeyHome:
		return emit(GoToIndex(0))
	case KeyEnd:
		if last >= 0 {
			return emit(GoToIndex(last))
		}
	}
	return res
}
