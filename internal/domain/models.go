package domain

// Direction is the vertical direction of a running transition
type Direction string

const (
	DirectionNone Direction = ""
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// SectionInfo is a read-only snapshot of a section taken when a transition starts.
// Element is the registered surface; it must not be retained past the callback.
type SectionInfo struct {
	Index   int
	Anchor  string // "" when the section has no anchor
	Element interface{}
}

// HasAnchor reports whether the section carries an anchor label
func (s SectionInfo) HasAnchor() bool {
	return s.Anchor != ""
}

// TransitionRecord describes one committed transition
type TransitionRecord struct {
	ID          string
	Origin      SectionInfo
	Destination SectionInfo
	Direction   Direction
}
