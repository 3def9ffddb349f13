package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"onepage/internal/gesture"
	"onepage/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter() []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit() []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return navigate(gesture.KeyUp)

	case tea.KeyDown:
		return navigate(gesture.KeyDown)

	case tea.KeyPgUp:
		return navigate(gesture.KeyPageUp)

	case tea.KeyPgDown:
		return navigate(gesture.KeyPageDown)

	case tea.KeyHome:
		return navigate(gesture.KeyHome)

	case tea.KeyEnd:
		return navigate(gesture.KeyEnd)

	case tea.KeySpace:
		return navigate(gesture.KeySpace)
	}

	// Handle string keys
	switch s := msg.String(); s {
	case "j":
		return navigate(gesture.KeyDown)

	case "k":
		return navigate(gesture.KeyUp)

	case "shift+space", "b":
		return navigate(gesture.KeyShiftSpace)

	case "g":
		return navigate(gesture.KeyHome)

	case "G":
		return navigate(gesture.KeyEnd)

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return []types.Action{types.JumpAction{Index: int(s[0] - '1')}}, true

	case ":", "#":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "o":
		return []types.Action{types.OpenPagerAction{}}, true

	case "y":
		return []types.Action{types.CopyLinkAction{}}, true

	case "s":
		return []types.Action{types.ToggleScrollingAction{}}, true

	case "m":
		return []types.Action{types.ToggleMenuAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}

func navigate(key gesture.Key) ([]types.Action, bool) {
	return []types.Action{types.NavigateAction{Key: key}}, true
}
