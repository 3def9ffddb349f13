package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickSchedulerFlush(t *testing.T) {
	s := newTickScheduler(time.Millisecond)
	assert.Nil(t, s.Flush())

	s.RequestFrame(7)
	frames := collectFrames(s.Flush())
	if assert.Len(t, frames, 1) {
		assert.Equal(t, uint64(7), frames[0].token)
		assert.False(t, frames[0].at.IsZero())
	}

	assert.Nil(t, s.Flush(), "requests are handed out once")
}

func TestTickSchedulerDefaultInterval(t *testing.T) {
	assert.Equal(t, 16*time.Millisecond, newTickScheduler(0).interval)
}

func TestHelpContentListsAnchors(t *testing.T) {
	content := NewHelpRenderer().RenderHelpContent([]string{"intro", "", "faq"})
	assert.Contains(t, content, "onepage Help")
	assert.Contains(t, content, "#intro")
	assert.Contains(t, content, "#faq")
}
