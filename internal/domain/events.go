package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTransitionStarted   EventType = "TransitionStarted"
	EventTransitionCompleted EventType = "TransitionCompleted"
	EventSectionChanged      EventType = "SectionChanged"
	EventSectionsChanged     EventType = "SectionsChanged"
	EventLocationChanged     EventType = "LocationChanged"
	EventScrollingToggled    EventType = "ScrollingToggled"
	EventError               EventType = "Error"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TransitionStartedEvent is emitted right after a transition takes the lock
type TransitionStartedEvent struct {
	Record TransitionRecord
}

func (e TransitionStartedEvent) Type() EventType { return EventTransitionStarted }

// TransitionCompletedEvent is emitted after the destination has been committed
type TransitionCompletedEvent struct {
	Record TransitionRecord
}

func (e TransitionCompletedEvent) Type() EventType { return EventTransitionCompleted }

// SectionChangedEvent mirrors the onSectionChange hook
type SectionChangedEvent struct {
	PreviousIndex int
	NewIndex      int
	Anchor        string
}

func (e SectionChangedEvent) Type() EventType { return EventSectionChanged }

// SectionsChangedEvent is emitted when sections register or unregister
type SectionsChangedEvent struct {
	Count int
}

func (e SectionsChangedEvent) Type() EventType { return EventSectionsChanged }

// LocationChangedEvent is emitted when the stored fragment was changed outside the program
type LocationChangedEvent struct {
	Fragment string
}

func (e LocationChangedEvent) Type() EventType { return EventLocationChanged }

// ScrollingToggledEvent is emitted when the scrolling kill-switch changes
type ScrollingToggledEvent struct {
	Enabled bool
}

func (e ScrollingToggledEvent) Type() EventType { return EventScrollingToggled }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
