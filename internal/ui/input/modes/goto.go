package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"onepage/internal/ui/input/types"
)

// GotoMode reads an anchor name and jumps to its section
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", "Go to #", ti),
	}
}
