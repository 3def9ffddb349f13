package ui

import (
	"time"

	"onepage/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg is one animation frame requested by the driver
type frameMsg struct {
	token uint64
	at    time.Time
}

// LocationChangedMsg reports a fragment changed outside the program
type LocationChangedMsg struct {
	Fragment string
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// documentPagerMsg contains the result of a document pager command
type documentPagerMsg struct {
	err error
}

// clipboardMsg contains the result of copying a section link
type clipboardMsg struct {
	link string
	err  error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
