// Package transition owns the paging state machine: the active section, the
// transition lock and the scrolling kill-switch.
//
// A Controller is driven from a single event loop. Every method must be called
// from that loop; none of them block. MoveTo takes the transition lock before
// it does anything else, so an intent processed right after it can never see
// the controller idle, and the new index is committed only when the animation
// reports completion.
package transition

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"onepage/internal/anim"
	"onepage/internal/domain"
	"onepage/internal/gesture"
	"onepage/internal/section"
)

const DefaultScrollingSpeed = 1000 * time.Millisecond

// Sections is the ordered section list the controller pages through
type Sections interface {
	Len() int
	At(i int) (section.Surface, bool)
}

// Animator moves the scroll offset and reports completion
type Animator interface {
	Start(from, to float64, duration time.Duration, easing anim.Easing, onComplete func())
}

// Location is the durable "current section" fragment, the terminal's URL hash
type Location interface {
	Fragment() string
	PushFragment(fragment string) error
}

// Menus highlights the item for a section in the menu addressed by selector
type Menus interface {
	Highlight(selector string, index int)
}

// Publisher receives lifecycle events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Options are the construction-time settings
type Options struct {
	ScrollingSpeed time.Duration
	Anchors        []string
	Menu           string
	LockAnchors    bool
	Easing         anim.Easing

	BeforeScroll    func(origin, destination domain.SectionInfo)
	AfterScroll     func(origin, destination domain.SectionInfo)
	OnSectionChange func(previous, next int)
}

// Option wires an optional collaborator
type Option func(*Controller)

// WithLocation syncs the active anchor to a fragment store
func WithLocation(l Location) Option {
	return func(c *Controller) { c.location = l }
}

// WithMenus highlights the active section in external menus
func WithMenus(m Menus) Option {
	return func(c *Controller) { c.menus = m }
}

// WithPublisher publishes lifecycle events
func WithPublisher(p Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithClock replaces the clock used to stamp transition starts
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// State is a snapshot of the controller
type State struct {
	ActiveIndex      int
	InTransition     bool
	Direction        domain.Direction
	ScrollingEnabled bool
	TotalSections    int
	Anchors          []string
}

// Controller turns intents into committed section transitions
type Controller struct {
	sections Sections
	animator Animator
	surface  anim.Surface
	opts     Options

	location  Location
	menus     Menus
	publisher Publisher
	now       func() time.Time

	currentIndex     int
	inTransition     bool
	direction        domain.Direction
	scrollingEnabled bool
	lastStart        time.Time
	pending          *domain.TransitionRecord
}

// New creates a controller positioned on the first section
func New(sections Sections, animator Animator, surface anim.Surface, opts Options, options ...Option) *Controller {
	if opts.ScrollingSpeed <= 0 {
		opts.ScrollingSpeed = DefaultScrollingSpeed
	}
	if opts.Easing == nil {
		opts.Easing = anim.EaseInOutCubic
	}
	opts.Anchors = append([]string(nil), opts.Anchors...)

	c := &Controller{
		sections:         sections,
		animator:         animator,
		surface:          surface,
		opts:             opts,
		now:              time.Now,
		scrollingEnabled: true,
	}
	for _, o := range options {
		o(c)
	}
	return c
}

// MoveTo starts a transition to target. It returns false, with no side
// effects, when the target is unknown, out of range or already active, when a
// transition is running, or when scrolling is disabled.
func (c *Controller) MoveTo(target Target) bool {
	if c.inTransition || !c.scrollingEnabled {
		return false
	}

	idx, ok := c.resolve(target)
	if !ok || idx < 0 || idx >= c.sections.Len() || idx == c.currentIndex {
		return false
	}

	c.inTransition = true
	if idx > c.currentIndex {
		c.direction = domain.DirectionDown
	} else {
		c.direction = domain.DirectionUp
	}
	c.lastStart = c.now()

	rec := domain.TransitionRecord{
		ID:          uuid.NewString(),
		Origin:      c.info(c.currentIndex),
		Destination: c.info(idx),
		Direction:   c.direction,
	}
	c.pending = &rec

	if c.opts.BeforeScroll != nil {
		c.opts.BeforeScroll(rec.Origin, rec.Destination)
	}
	c.publish(domain.TransitionStartedEvent{Record: rec})
	log.Printf("transition %s: %d -> %d (%s)", rec.ID, rec.Origin.Index, idx, rec.Direction)

	targetOffset := 0.0
	if s, ok := c.sections.At(idx); ok {
		targetOffset = s.OffsetTop()
	}

	c.animator.Start(c.surface.ScrollOffset(), targetOffset, c.opts.ScrollingSpeed, c.opts.Easing, func() {
		c.complete(rec, targetOffset)
	})
	return true
}

// complete commits the destination, then runs every notification
func (c *Controller) complete(rec domain.TransitionRecord, targetOffset float64) {
	if c.pending == nil || c.pending.ID != rec.ID {
		return
	}

	c.surface.SetScrollOffset(targetOffset)

	previous := c.currentIndex
	c.currentIndex = rec.Destination.Index
	c.inTransition = false
	c.direction = domain.DirectionNone
	c.pending = nil

	if anchor := rec.Destination.Anchor; anchor != "" && !c.opts.LockAnchors && c.location != nil {
		if err := c.location.PushFragment(anchor); err != nil {
			log.Printf("transition %s: failed to store fragment %q: %v", rec.ID, anchor, err)
		}
	}

	c.highlightMenu()

	if c.opts.AfterScroll != nil {
		c.opts.AfterScroll(rec.Origin, rec.Destination)
	}
	if c.opts.OnSectionChange != nil {
		c.opts.OnSectionChange(previous, c.currentIndex)
	}

	c.publish(domain.TransitionCompletedEvent{Record: rec})
	c.publish(domain.SectionChangedEvent{
		PreviousIndex: previous,
		NewIndex:      c.currentIndex,
		Anchor:        rec.Destination.Anchor,
	})
}

// MoveNext moves one section down; a no-op on the last section
func (c *Controller) MoveNext() bool {
	if c.currentIndex >= c.sections.Len()-1 {
		return false
	}
	return c.MoveTo(Index(c.currentIndex + 1))
}

// MovePrevious moves one section up; a no-op on the first section
func (c *Controller) MovePrevious() bool {
	if c.currentIndex <= 0 {
		return false
	}
	return c.MoveTo(Index(c.currentIndex - 1))
}

// Dispatch executes an interpreter intent
func (c *Controller) Dispatch(intent gesture.Intent) bool {
	switch intent.Kind {
	case gesture.KindNext:
		return c.MoveNext()
	case gesture.KindPrevious:
		return c.MovePrevious()
	case gesture.KindGoToIndex:
		return c.MoveTo(Index(intent.Index))
	case gesture.KindGoToAnchor:
		return c.MoveTo(Anchor(intent.Anchor))
	}
	return false
}

// SetScrollingEnabled is the external kill-switch. Disabling does not stop a
// running transition.
func (c *Controller) SetScrollingEnabled(enabled bool) {
	if c.scrollingEnabled == enabled {
		return
	}
	c.scrollingEnabled = enabled
	c.publish(domain.ScrollingToggledEvent{Enabled: enabled})
}

// Mount highlights the menu and follows the stored fragment, if any
func (c *Controller) Mount() {
	c.highlightMenu()
	if c.location != nil {
		c.follow(c.location.Fragment())
	}
}

// LocationChanged follows a fragment changed outside the controller and
// publishes LocationChangedEvent when it starts a transition. Unknown or
// empty fragments are ignored.
func (c *Controller) LocationChanged(fragment string) bool {
	if !c.follow(fragment) {
		return false
	}
	c.publish(domain.LocationChangedEvent{Fragment: strings.TrimPrefix(fragment, "#")})
	return true
}

func (c *Controller) follow(fragment string) bool {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return false
	}
	idx := c.anchorIndex(fragment)
	if idx < 0 || idx == c.currentIndex {
		return false
	}
	return c.MoveTo(Index(idx))
}

// Realign snaps the scroll offset back onto the active section, e.g. after
// section offsets changed. Ignored while a transition runs.
func (c *Controller) Realign() {
	if c.inTransition {
		return
	}
	if s, ok := c.sections.At(c.currentIndex); ok {
		c.surface.SetScrollOffset(s.OffsetTop())
	}
}

// ActiveSection returns a snapshot of the active section
func (c *Controller) ActiveSection() domain.SectionInfo {
	return c.info(c.currentIndex)
}

// State returns a snapshot of the controller
func (c *Controller) State() State {
	return State{
		ActiveIndex:      c.currentIndex,
		InTransition:     c.inTransition,
		Direction:        c.direction,
		ScrollingEnabled: c.scrollingEnabled,
		TotalSections:    c.sections.Len(),
		Anchors:          append([]string(nil), c.opts.Anchors...),
	}
}

// Anchors returns the configured anchors in section order
func (c *Controller) Anchors() []string {
	return append([]string(nil), c.opts.Anchors...)
}

// Options returns the settings the controller runs with
func (c *Controller) Options() Options {
	return c.opts
}

// InTransition reports whether a transition holds the lock
func (c *Controller) InTransition() bool { return c.inTransition }

// ScrollingEnabled reports the kill-switch state
func (c *Controller) ScrollingEnabled() bool { return c.scrollingEnabled }

// ActiveIndex is the committed section index
func (c *Controller) ActiveIndex() int { return c.currentIndex }

// SectionCount is the number of registered sections
func (c *Controller) SectionCount() int { return c.sections.Len() }

// Direction is the direction of the running transition
func (c *Controller) Direction() domain.Direction { return c.direction }

// LastTransitionStart is when the latest accepted transition started
func (c *Controller) LastTransitionStart() time.Time { return c.lastStart }

func (c *Controller) resolve(t Target) (int, bool) {
	if !t.byAnchor {
		return t.index, true
	}
	idx := c.anchorIndex(t.anchor)
	return idx, idx >= 0
}

func (c *Controller) anchorIndex(anchor string) int {
	for i, a := range c.opts.Anchors {
		if a == anchor {
			return i
		}
	}
	return -1
}

func (c *Controller) anchorAt(i int) string {
	if i >= 0 && i < len(c.opts.Anchors) {
		return c.opts.Anchors[i]
	}
	return ""
}

func (c *Controller) info(i int) domain.SectionInfo {
	info := domain.SectionInfo{Index: i, Anchor: c.anchorAt(i)}
	if s, ok := c.sections.At(i); ok {
		info.Element = s
	}
	return info
}

func (c *Controller) highlightMenu() {
	if c.opts.Menu != "" && c.menus != nil {
		c.menus.Highlight(c.opts.Menu, c.currentIndex)
	}
}

func (c *Controller) publish(e domain.DomainEvent) {
	if c.publisher != nil {
		c.publisher.Publish(e)
	}
}
