// Package gesture turns raw wheel, touch and key input into navigation intents.
//
// Every interpreter guarantees at most one intent per physical gesture. The
// interpreters only read navigation state through State; they never start a
// transition themselves, the caller dispatches the returned intent.
package gesture

import (
	"fmt"
	"time"
)

// Kind identifies what an intent asks for
type Kind int

const (
	KindNone Kind = iota
	KindNext
	KindPrevious
	KindGoToIndex
	KindGoToAnchor
)

// String returns a readable kind name
func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindPrevious:
		return "previous"
	case KindGoToIndex:
		return "go-to-index"
	case KindGoToAnchor:
		return "go-to-anchor"
	default:
		return "none"
	}
}

// Intent is a normalized navigation request
type Intent struct {
	Kind   Kind
	Index  int
	Anchor string
}

// NextIntent asks for the following section
func NextIntent() Intent { return Intent{Kind: KindNext} }

// PreviousIntent asks for the preceding section
func PreviousIntent() Intent { return Intent{Kind: KindPrevious} }

// GoToIndex asks for the section at a position
func GoToIndex(i int) Intent { return Intent{Kind: KindGoToIndex, Index: i} }

// GoToAnchor asks for the section carrying an anchor
func GoToAnchor(anchor string) Intent { return Intent{Kind: KindGoToAnchor, Anchor: anchor} }

func (i Intent) String() string {
	switch i.Kind {
	case KindGoToIndex:
		return fmt.Sprintf("%s(%d)", i.Kind, i.Index)
	case KindGoToAnchor:
		return fmt.Sprintf("%s(%q)", i.Kind, i.Anchor)
	default:
		return i.Kind.String()
	}
}

// State is the navigation state interpreters consult at event time
type State interface {
	InTransition() bool
	ScrollingEnabled() bool
	ActiveIndex() int
	SectionCount() int
	LastTransitionStart() time.Time
}

// Result is what an interpreter decided for one raw event
type Result struct {
	Intent  Intent
	Emitted bool
	// PreventDefault reports that the event must not fall through to the
	// host's own scrolling.
	PreventDefault bool
}

func emit(intent Intent) Result {
	return Result{Intent: intent, Emitted: true, PreventDefault: true}
}

func locked(s State) bool {
	return s.InTransition() || !s.ScrollingEnabled()
}
