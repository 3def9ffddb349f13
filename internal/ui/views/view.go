package views

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"onepage/internal/domain"
	"onepage/internal/menu"
	"onepage/internal/transition"
)

// Page is the text of one section
type Page struct {
	Title string
	Lines []string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	PageHeight   int
	ContentWidth int
	MenuWidth    int
	Offset       float64 // scroll offset in rows
	Pages        []Page

	Path          string
	Menu          *menu.Region
	ShowMenu      bool
	ShowStatus    bool
	StatusMessage string
	InputPrompt   string // non-empty while a text mode is active
	TextInput     string
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	menuStyles menu.Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles:     NewStyles(),
		menuStyles: menu.DefaultStyles(),
	}
}

// ChromeRows is how many rows the status bar and footer take
func ChromeRows(showStatus bool) int {
	if showStatus {
		return 2
	}
	return 0
}

// MenuWidth is the sidebar width for a terminal width; zero when too narrow
func MenuWidth(width int, show bool) int {
	if !show || width < 48 {
		return 0
	}
	w := width / 4
	if w < 16 {
		w = 16
	}
	if w > 32 {
		w = 32
	}
	return w
}

// Render produces the complete view. ctx must carry the transition controller.
func (r *Renderer) Render(ctx context.Context, state ViewState) string {
	ctl := transition.MustFromContext(ctx)

	page := r.renderPages(state)
	body := page
	if state.ShowMenu && state.Menu != nil && state.MenuWidth > 0 {
		sidebar := state.Menu.View(r.menuStyles, state.MenuWidth-1, state.PageHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, page)
	}

	if !state.ShowStatus {
		return body
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(r.renderStatusLine(ctl.State(), state))
	b.WriteString("\n")
	b.WriteString(r.renderFooter(state))
	return b.String()
}

// renderPages cuts the page-height window starting at the scroll offset out
// of the stacked sections
func (r *Renderer) renderPages(state ViewState) string {
	height := state.PageHeight
	if height < 1 {
		height = 1
	}
	width := state.ContentWidth
	if width < 1 {
		width = 1
	}

	if len(state.Pages) == 0 {
		return lipgloss.NewStyle().Width(width).Height(height).Render(r.styles.Dim.Render("This document has no sections."))
	}

	top := int(math.Round(state.Offset))
	rows := make([]string, 0, height)
	for row := top; row < top+height; row++ {
		rows = append(rows, r.renderRow(state.Pages, row, height, width))
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(rows, "\n"))
}

func (r *Renderer) renderRow(pages []Page, row, height, width int) string {
	if row < 0 {
		return ""
	}
	idx, line := row/height, row%height
	if idx >= len(pages) || line >= len(pages[idx].Lines) {
		return ""
	}

	text := pages[idx].Lines[line]
	style := r.styles.Body
	switch trimmed := strings.TrimSpace(text); {
	case strings.HasPrefix(trimmed, "# "):
		style = r.styles.Heading
	case strings.HasPrefix(trimmed, "##"):
		style = r.styles.SubHeading
	}
	return style.MaxWidth(width).Render(text)
}

func (r *Renderer) renderStatusLine(st transition.State, state ViewState) string {
	parts := []string{r.styles.StatusKey.Render("onepage")}
	if state.Path != "" {
		parts = append(parts, r.styles.Status.Render(filepath.Base(state.Path)))
	}

	if st.ActiveIndex < len(st.Anchors) && st.Anchors[st.ActiveIndex] != "" {
		parts = append(parts, r.styles.Anchor.Render("#"+st.Anchors[st.ActiveIndex]))
	}

	total := st.TotalSections
	pos := 0
	if total > 0 {
		pos = st.ActiveIndex + 1
	}
	parts = append(parts, r.styles.Position.Render(fmt.Sprintf("%d/%d", pos, total)))

	switch {
	case st.InTransition && st.Direction == domain.DirectionDown:
		parts = append(parts, r.styles.Moving.Render("↓"))
	case st.InTransition && st.Direction == domain.DirectionUp:
		parts = append(parts, r.styles.Moving.Render("↑"))
	}
	if !st.ScrollingEnabled {
		parts = append(parts, r.styles.Paused.Render("scrolling paused"))
	}

	left := strings.Join(parts, "  ")
	if state.StatusMessage == "" {
		return left
	}

	msg := r.styles.Status.Render(state.StatusMessage)
	padding := state.Width - lipgloss.Width(left) - lipgloss.Width(msg)
	if padding < 2 {
		padding = 2
	}
	return lipgloss.NewStyle().MaxWidth(state.Width).Render(left + strings.Repeat(" ", padding) + msg)
}

func (r *Renderer) renderFooter(state ViewState) string {
	if state.InputPrompt != "" {
		return r.styles.Prompt.Render(state.InputPrompt) + state.TextInput
	}
	if state.KeyMap == nil {
		return r.styles.Help.Render("Press ? for help")
	}
	return state.HelpModel.View(state.KeyMap)
}
