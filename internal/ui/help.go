package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"onepage/internal/document"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(anchors []string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	entry := func(key, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-14s", key)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("onepage Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Sections"))
	help.WriteString("\n")
	help.WriteString(entry("↓, PgDn, Space", "Next section"))
	help.WriteString(entry("↑, PgUp, b", "Previous section"))
	help.WriteString(entry("j/k", "Next/previous section"))
	help.WriteString(entry("Home/End, g/G", "First/last section"))
	help.WriteString(entry("1-9", "Jump to section by number"))
	help.WriteString(entry(": or #", "Go to a section by anchor"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(entry("Wheel", "One section per scroll gesture"))
	help.WriteString(entry("Drag", "Drag down for next, up for previous"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(entry("s", "Pause/resume scrolling"))
	help.WriteString(entry("m", "Toggle the section menu"))
	help.WriteString(entry("y", "Copy a link to this section"))
	help.WriteString(entry("o", "Open the whole document in the pager"))
	help.WriteString(entry("?", "Show this help"))
	help.WriteString(entry("q", "Quit"))

	if len(anchors) > 0 {
		help.WriteString("\n")
		help.WriteString(sectionStyle.Render("Anchors"))
		help.WriteString("\n")
		for i, a := range anchors {
			if a == "" {
				continue
			}
			help.WriteString(entry(fmt.Sprintf("%d", i+1), "#"+a))
		}
	}

	return help.String()
}

// RenderDocument joins every section for reading in the pager
func RenderDocument(doc *document.Document) string {
	rule := lipgloss.NewStyle().Faint(true).Render(strings.Repeat("─", 40))
	var b strings.Builder
	for i, s := range doc.Sections {
		if i > 0 {
			b.WriteString("\n" + rule + "\n\n")
		}
		b.WriteString(strings.Join(s.Lines, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

// PagerOps hands the terminal to the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using the ov pager
func (p *PagerOps) ShowInPager(content string) error {
	return p.runPager(strings.NewReader(content))
}

func (p *PagerOps) runPager(r io.Reader) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
