package transition

import "fmt"

// Target is a navigation destination, either a position or an anchor
type Target struct {
	index    int
	anchor   string
	byAnchor bool
}

// Index targets the section at position i
func Index(i int) Target {
	return Target{index: i}
}

// Anchor targets the section labelled anchor
func Anchor(anchor string) Target {
	return Target{anchor: anchor, byAnchor: true}
}

func (t Target) String() string {
	if t.byAnchor {
		return "#" + t.anchor
	}
	return fmt.Sprintf("%d", t.index)
}
