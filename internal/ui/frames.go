package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickScheduler turns frame requests made during Update into tea.Tick
// commands. Requests are collected and handed to bubbletea when Update returns.
type tickScheduler struct {
	interval time.Duration
	pending  []uint64
}

func newTickScheduler(interval time.Duration) *tickScheduler {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &tickScheduler{interval: interval}
}

// RequestFrame schedules one frame for token
func (s *tickScheduler) RequestFrame(token uint64) {
	s.pending = append(s.pending, token)
}

// Flush returns the command delivering every pending frame, or nil
func (s *tickScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.pending))
	for _, token := range s.pending {
		token := token
		cmds = append(cmds, tea.Tick(s.interval, func(t time.Time) tea.Msg {
			return frameMsg{token: token, at: t}
		}))
	}
	s.pending = s.pending[:0]
	return tea.Batch(cmds...)
}

// scrollSurface is the viewport's scroll offset in rows
type scrollSurface struct {
	offset float64
}

func (s *scrollSurface) ScrollOffset() float64 { return s.offset }

func (s *scrollSurface) SetScrollOffset(offset float64) { s.offset = offset }
