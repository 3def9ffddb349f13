package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"onepage/internal/document"
	"onepage/internal/menu"
	"onepage/internal/ui/state"
	"onepage/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	doc    *document.Document
	menu   *menu.Region
	help   help.Model
	keys   help.KeyMap
	offset float64

	inputPrompt string
	inputText   string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, doc *document.Document, sidebar *menu.Region) *ViewModel {
	return &ViewModel{
		state: appState,
		doc:   doc,
		menu:  sidebar,
	}
}

// SetHelp sets the help model and the bindings it shows
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetOffset sets the current scroll offset
func (vm *ViewModel) SetOffset(offset float64) {
	vm.offset = offset
}

// SetInput shows a prompt and its text; an empty prompt hides the input
func (vm *ViewModel) SetInput(prompt, text string) {
	vm.inputPrompt = prompt
	vm.inputText = text
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	pages := make([]views.Page, 0, vm.doc.Len())
	for _, s := range vm.doc.Sections {
		pages = append(pages, views.Page{Title: s.Title, Lines: s.Lines})
	}

	return views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		PageHeight:    vm.state.PageHeight,
		ContentWidth:  vm.state.ContentWidth,
		MenuWidth:     vm.state.Width - vm.state.ContentWidth,
		Offset:        vm.offset,
		Pages:         pages,
		Path:          vm.doc.Path,
		Menu:          vm.menu,
		ShowMenu:      vm.state.ShowMenu,
		ShowStatus:    vm.state.ShowStatus,
		StatusMessage: vm.state.StatusMessage,
		InputPrompt:   vm.inputPrompt,
		TextInput:     vm.inputText,
		HelpModel:     vm.help,
		KeyMap:        vm.keys,
	}
}
