package transition

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onepage/internal/anim"
	"onepage/internal/domain"
	"onepage/internal/gesture"
	"onepage/internal/section"
)

type page struct {
	pos int
	top float64
}

func (p *page) DocumentPosition() int { return p.pos }
func (p *page) OffsetTop() float64    { return p.top }

type fakeSurface struct{ offset float64 }

func (s *fakeSurface) ScrollOffset() float64     { return s.offset }
func (s *fakeSurface) SetScrollOffset(v float64) { s.offset = v }

// manualAnimator holds completions until the test releases them
type manualAnimator struct {
	starts   []float64
	complete []func()
}

func (a *manualAnimator) Start(from, to float64, d time.Duration, e anim.Easing, onComplete func()) {
	a.starts = append(a.starts, to)
	a.complete = append(a.complete, onComplete)
}

func (a *manualAnimator) finish() {
	fn := a.complete[len(a.complete)-1]
	fn()
}

type fakeLocation struct {
	fragment string
	pushes   []string
	err      error
}

func (l *fakeLocation) Fragment() string { return l.fragment }

func (l *fakeLocation) PushFragment(f string) error {
	if l.err != nil {
		return l.err
	}
	l.fragment = f
	l.pushes = append(l.pushes, f)
	return nil
}

type fakeMenus struct {
	calls []string
	index []int
}

func (m *fakeMenus) Highlight(selector string, i int) {
	m.calls = append(m.calls, selector)
	m.index = append(m.index, i)
}

type recorder struct {
	events []domain.DomainEvent
}

func (r *recorder) Publish(e domain.DomainEvent) { r.events = append(r.events, e) }

type fixture struct {
	c        *Controller
	anim     *manualAnimator
	surface  *fakeSurface
	location *fakeLocation
	menus    *fakeMenus
	log      []string
}

func newFixture(t *testing.T, n int, opts Options) *fixture {
	t.Helper()
	reg := section.NewRegistry()
	for i := 0; i < n; i++ {
		reg.Register(&page{pos: i, top: float64(i * 40)})
	}

	f := &fixture{
		anim:     &manualAnimator{},
		surface:  &fakeSurface{},
		location: &fakeLocation{},
		menus:    &fakeMenus{},
	}
	opts.BeforeScroll = func(o, d domain.SectionInfo) { f.log = append(f.log, "before") }
	opts.AfterScroll = func(o, d domain.SectionInfo) { f.log = append(f.log, "after") }
	opts.OnSectionChange = func(p, n int) { f.log = append(f.log, "change") }

	f.c = New(reg, f.anim, f.surface, opts, WithLocation(f.location), WithMenus(f.menus))
	return f
}

func TestMoveToCommitsOnCompletion(t *testing.T) {
	f := newFixture(t, 3, Options{})

	require.True(t, f.c.MoveTo(Index(2)))
	assert.True(t, f.c.InTransition())
	assert.Equal(t, domain.DirectionDown, f.c.Direction())
	assert.Equal(t, 0, f.c.ActiveIndex(), "index changes only at completion")
	assert.Equal(t, []string{"before"}, f.log)
	assert.Equal(t, []float64{80}, f.anim.starts)

	f.anim.finish()

	assert.False(t, f.c.InTransition())
	assert.Equal(t, domain.DirectionNone, f.c.Direction())
	assert.Equal(t, 2, f.c.ActiveIndex())
	assert.Equal(t, 80.0, f.surface.offset)
	assert.Equal(t, []string{"before", "after", "change"}, f.log)
}

func TestSecondMoveDuringTransitionIsDropped(t *testing.T) {
	f := newFixture(t, 4, Options{})

	require.True(t, f.c.MoveTo(Index(1)))
	assert.False(t, f.c.MoveTo(Index(3)))
	assert.False(t, f.c.MoveNext())
	assert.False(t, f.c.Dispatch(gesture.GoToIndex(2)))
	assert.Len(t, f.anim.starts, 1)

	f.anim.finish()
	assert.Equal(t, 1, f.c.ActiveIndex())
	assert.Equal(t, []string{"before", "after", "change"}, f.log)

	// Once released, the next intent is accepted.
	assert.True(t, f.c.MoveNext())
}

func TestNoOpTargets(t *testing.T) {
	tests := []struct {
		name   string
		target Target
	}{
		{"current", Index(0)},
		{"negative", Index(-1)},
		{"past end", Index(3)},
		{"unknown anchor", Anchor("nope")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 3, Options{Anchors: []string{"a", "b", "c"}})
			before := f.c.State()

			assert.False(t, f.c.MoveTo(tt.target))
			assert.Equal(t, before, f.c.State())
			assert.Empty(t, f.log)
			assert.Empty(t, f.anim.starts)
		})
	}
}

func TestOnSectionChangeSeesCommittedState(t *testing.T) {
	f := newFixture(t, 3, Options{})
	var seen State
	var afterSaw bool
	f.c.opts.AfterScroll = func(o, d domain.SectionInfo) {
		afterSaw = !f.c.InTransition() && f.c.ActiveIndex() == d.Index
	}
	f.c.opts.OnSectionChange = func(prev, next int) {
		seen = f.c.State()
		assert.Equal(t, 0, prev)
		assert.Equal(t, 1, next)
	}

	f.c.MoveNext()
	f.anim.finish()

	assert.True(t, afterSaw)
	assert.Equal(t, 1, seen.ActiveIndex)
	assert.False(t, seen.InTransition)
}

func TestBoundaries(t *testing.T) {
	f := newFixture(t, 2, Options{})

	assert.False(t, f.c.MovePrevious())
	require.True(t, f.c.MoveNext())
	f.anim.finish()

	assert.False(t, f.c.MoveNext())
	require.True(t, f.c.MovePrevious())
	assert.Equal(t, domain.DirectionUp, f.c.Direction())
	f.anim.finish()
	assert.Equal(t, 0, f.c.ActiveIndex())
}

func TestFragmentWrittenOnCompletion(t *testing.T) {
	f := newFixture(t, 3, Options{Anchors: []string{"a", "b", "c"}})

	f.c.MoveTo(Index(1))
	assert.Empty(t, f.location.pushes, "fragment is written at completion")
	f.anim.finish()

	assert.Equal(t, []string{"b"}, f.location.pushes)
	assert.Equal(t, "b", f.c.ActiveSection().Anchor)
}

func TestLockAnchorsLeavesFragment(t *testing.T) {
	f := newFixture(t, 3, Options{Anchors: []string{"a", "b", "c"}, LockAnchors: true})
	f.location.fragment = "a"

	f.c.MoveTo(Anchor("b"))
	f.anim.finish()

	assert.Empty(t, f.location.pushes)
	assert.Equal(t, "a", f.location.fragment)
	assert.Equal(t, 1, f.c.ActiveIndex())
}

func TestSectionWithoutAnchorSkipsFragment(t *testing.T) {
	f := newFixture(t, 3, Options{Anchors: []string{"a"}})

	f.c.MoveTo(Index(2))
	f.anim.finish()
	assert.Empty(t, f.location.pushes)
}

func TestFragmentErrorDoesNotBreakCompletion(t *testing.T) {
	f := newFixture(t, 3, Options{Anchors: []string{"a", "b", "c"}})
	f.location.err = errors.New("disk full")

	f.c.MoveTo(Index(1))
	f.anim.finish()
	assert.Equal(t, 1, f.c.ActiveIndex())
	assert.Equal(t, []string{"before", "after", "change"}, f.log)
}

func TestMountFollowsFragment(t *testing.T) {
	f := newFixture(t, 3, Options{Anchors: []string{"a", "b", "c"}, Menu: "sidebar"})
	f.location.fragment = "#c"

	f.c.Mount()
	require.True(t, f.c.InTransition())
	f.anim.finish()

	assert.Equal(t, 2, f.c.ActiveIndex())
	assert.Equal(t, []int{0, 2}, f.menus.index)
	assert.Equal(t, []string{"sidebar", "sidebar"}, f.menus.calls)
}

func TestLocationChangedIgnoresUnknownAndCurrent(t *testing.T) {
	f := newFixture(t, 3, Options{Anchors: []string{"a", "b", "c"}})

	assert.False(t, f.c.LocationChanged(""))
	assert.False(t, f.c.LocationChanged("#zzz"))
	assert.False(t, f.c.LocationChanged("a"))
	assert.True(t, f.c.LocationChanged("b"))
}

func TestLocationChangedPublishesFollowedFragment(t *testing.T) {
	reg := section.NewRegistry()
	for i := 0; i < 3; i++ {
		reg.Register(&page{pos: i, top: float64(i * 40)})
	}
	rec := &recorder{}
	a := &manualAnimator{}
	c := New(reg, a, &fakeSurface{}, Options{Anchors: []string{"a", "b", "c"}}, WithPublisher(rec))

	// Ignored fragments publish nothing
	c.LocationChanged("#zzz")
	c.LocationChanged("a")
	assert.Empty(t, rec.events)

	require.True(t, c.LocationChanged("#c"))
	require.Len(t, rec.events, 2)
	assert.IsType(t, domain.TransitionStartedEvent{}, rec.events[0])
	assert.Equal(t, domain.LocationChangedEvent{Fragment: "c"}, rec.events[1])

	// Rejected while the transition holds the lock
	assert.False(t, c.LocationChanged("b"))
	assert.Len(t, rec.events, 2)
	a.finish()
}

func TestMountDoesNotPublishLocationChange(t *testing.T) {
	reg := section.NewRegistry()
	reg.Register(&page{pos: 0})
	reg.Register(&page{pos: 1, top: 40})
	rec := &recorder{}
	loc := &fakeLocation{fragment: "y"}
	c := New(reg, &manualAnimator{}, &fakeSurface{}, Options{Anchors: []string{"x", "y"}},
		WithPublisher(rec), WithLocation(loc))

	c.Mount()
	require.True(t, c.InTransition())
	for _, e := range rec.events {
		assert.NotEqual(t, domain.EventLocationChanged, e.Type())
	}
}

func TestMenuHighlightRequiresSelector(t *testing.T) {
	f := newFixture(t, 3, Options{})

	f.c.Mount()
	f.c.MoveNext()
	f.anim.finish()
	assert.Empty(t, f.menus.calls)
}

func TestScrollingDisabledRejectsButKeepsRunningTransition(t *testing.T) {
	f := newFixture(t, 3, Options{})

	require.True(t, f.c.MoveNext())
	f.c.SetScrollingEnabled(false)
	f.anim.finish()
	assert.Equal(t, 1, f.c.ActiveIndex())

	assert.False(t, f.c.MoveNext())
	assert.False(t, f.c.LocationChanged("b"))

	f.c.SetScrollingEnabled(true)
	assert.True(t, f.c.MoveNext())
}

func TestDispatchIntents(t *testing.T) {
	f := newFixture(t, 4, Options{Anchors: []string{"a", "b", "c", "d"}})

	require.True(t, f.c.Dispatch(gesture.GoToAnchor("d")))
	f.anim.finish()
	assert.Equal(t, 3, f.c.ActiveIndex())

	require.True(t, f.c.Dispatch(gesture.PreviousIntent()))
	f.anim.finish()
	require.True(t, f.c.Dispatch(gesture.GoToIndex(0)))
	f.anim.finish()
	require.True(t, f.c.Dispatch(gesture.NextIntent()))
	f.anim.finish()
	assert.Equal(t, 1, f.c.ActiveIndex())

	assert.False(t, f.c.Dispatch(gesture.Intent{}))
}

func TestZeroDistanceTransitionCompletesInline(t *testing.T) {
	reg := section.NewRegistry()
	reg.Register(&page{pos: 0, top: 0})
	reg.Register(&page{pos: 1, top: 0.5})
	surface := &fakeSurface{}
	frames := &countingFrames{}
	c := New(reg, anim.NewDriver(surface, frames), surface, Options{})

	require.True(t, c.MoveNext())
	assert.False(t, c.InTransition())
	assert.Equal(t, 1, c.ActiveIndex())
	assert.Equal(t, 0.5, surface.offset)
	assert.Zero(t, frames.n)
}

type countingFrames struct {
	n     int
	token uint64
}

func (f *countingFrames) RequestFrame(token uint64) {
	f.n++
	f.token = token
}

func TestDriverCompletionSnapsToTarget(t *testing.T) {
	reg := section.NewRegistry()
	reg.Register(&page{pos: 0, top: 0})
	reg.Register(&page{pos: 1, top: 37})
	surface := &fakeSurface{}
	frames := &countingFrames{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	driver := anim.NewDriver(surface, frames, anim.WithClock(func() time.Time { return start }))
	c := New(reg, driver, surface, Options{ScrollingSpeed: 300 * time.Millisecond})

	require.True(t, c.MoveNext())
	for _, step := range []int{16, 35, 170, 299} {
		driver.Frame(frames.token, start.Add(time.Duration(step)*time.Millisecond))
		assert.True(t, c.InTransition())
		assert.Less(t, surface.offset, 37.0)
	}
	driver.Frame(frames.token, start.Add(317*time.Millisecond))

	assert.False(t, c.InTransition())
	assert.Equal(t, 37.0, surface.offset)
	assert.Equal(t, 1, c.ActiveIndex())
}

func TestLastTransitionStartUsesClock(t *testing.T) {
	at := time.Date(2024, 5, 5, 5, 5, 5, 0, time.UTC)
	reg := section.NewRegistry()
	reg.Register(&page{pos: 0})
	reg.Register(&page{pos: 1, top: 40})
	c := New(reg, &manualAnimator{}, &fakeSurface{}, Options{}, WithClock(func() time.Time { return at }))

	assert.True(t, c.LastTransitionStart().IsZero())
	c.MoveNext()
	assert.Equal(t, at, c.LastTransitionStart())
}

func TestPublishesLifecycleEvents(t *testing.T) {
	reg := section.NewRegistry()
	reg.Register(&page{pos: 0})
	reg.Register(&page{pos: 1, top: 40})
	rec := &recorder{}
	a := &manualAnimator{}
	c := New(reg, a, &fakeSurface{}, Options{Anchors: []string{"x", "y"}}, WithPublisher(rec))

	c.MoveNext()
	a.finish()
	c.SetScrollingEnabled(false)

	require.Len(t, rec.events, 4)
	started := rec.events[0].(domain.TransitionStartedEvent)
	completed := rec.events[1].(domain.TransitionCompletedEvent)
	assert.NotEmpty(t, started.Record.ID)
	assert.Equal(t, started.Record.ID, completed.Record.ID)
	assert.Equal(t, domain.SectionChangedEvent{PreviousIndex: 0, NewIndex: 1, Anchor: "y"}, rec.events[2])
	assert.Equal(t, domain.ScrollingToggledEvent{Enabled: false}, rec.events[3])
}

func TestSnapshotsCarryElements(t *testing.T) {
	reg := section.NewRegistry()
	first := &page{pos: 0}
	second := &page{pos: 1, top: 40}
	reg.Register(first)
	reg.Register(second)
	a := &manualAnimator{}

	var origin, dest domain.SectionInfo
	c := New(reg, a, &fakeSurface{}, Options{
		BeforeScroll: func(o, d domain.SectionInfo) { origin, dest = o, d },
	})
	c.MoveNext()

	assert.Same(t, first, origin.Element)
	assert.Same(t, second, dest.Element)
	assert.False(t, dest.HasAnchor())
}

func TestRealign(t *testing.T) {
	f := newFixture(t, 3, Options{})
	f.surface.offset = 13

	f.c.Realign()
	assert.Equal(t, 0.0, f.surface.offset)

	f.c.MoveNext()
	f.surface.offset = 5
	f.c.Realign()
	assert.Equal(t, 5.0, f.surface.offset, "ignored during a transition")
}

func TestContextProvider(t *testing.T) {
	f := newFixture(t, 1, Options{})
	ctx := NewContext(context.Background(), f.c)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, f.c, got)
	assert.Same(t, f.c, MustFromContext(ctx))

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
	assert.Panics(t, func() { MustFromContext(context.Background()) })
}

func TestDefaults(t *testing.T) {
	f := newFixture(t, 1, Options{})
	assert.Equal(t, DefaultScrollingSpeed, f.c.Options().ScrollingSpeed)
	assert.NotNil(t, f.c.Options().Easing)
	assert.True(t, f.c.ScrollingEnabled())
	assert.Equal(t, 1, f.c.SectionCount())
	assert.Equal(t, "#a", Anchor("a").String())
	assert.Equal(t, "2", Index(2).String())
}
