package gesture

import "time"

type fakeState struct {
	inTransition bool
	disabled     bool
	active       int
	count        int
	lastStart    time.Time
}

func (s *fakeState) InTransition() bool             { return s.inTransition }
func (s *fakeState) ScrollingEnabled() bool         { return !s.disabled }
func (s *fakeState) ActiveIndex() int               { return s.active }
func (s *fakeState) SectionCount() int              { return s.count }
func (s *fakeState) LastTransitionStart() time.Time { return s.lastStart }

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Millisecond)
}
