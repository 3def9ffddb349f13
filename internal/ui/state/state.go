package state

// AppState contains the UI state that is not owned by the transition controller
type AppState struct {
	// Terminal geometry
	Width        int
	Height       int
	PageHeight   int // rows available to one section
	ContentWidth int // columns left of the menu sidebar

	// Lifecycle
	Mounted      bool // controller mounted after the first resize
	Active       bool // paging mode on; cleared on quit
	InPagerMode  bool // terminal handed to the pager
	NeedsRealign bool // a resize arrived during a transition

	StatusMessage string // status bar message
	ShowMenu      bool
	ShowStatus    bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		PageHeight: 20, // Default until the first WindowSizeMsg
		ShowMenu:   true,
		ShowStatus: true,
	}
}

// SetStatus replaces the status bar message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
}

// ClearStatus removes the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
}

// Resize records the terminal size and derives the page geometry.
// chromeRows are reserved below the page, menuWidth left of it.
func (s *AppState) Resize(width, height, chromeRows, menuWidth int) {
	s.Width = width
	s.Height = height

	s.PageHeight = height - chromeRows
	if s.PageHeight < 1 {
		s.PageHeight = 1
	}
	s.ContentWidth = width - menuWidth
	if s.ContentWidth < 1 {
		s.ContentWidth = 1
	}
}
