package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEaseInOutCubicEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutCubic(0))
	assert.Equal(t, 1.0, EaseInOutCubic(1))
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-12)
}

func TestEasingsStayInUnitRange(t *testing.T) {
	for _, name := range EasingNames() {
		e, ok := EasingByName(name)
		if !assert.True(t, ok, name) {
			continue
		}
		assert.InDelta(t, 0.0, e(0), 1e-12, name)
		assert.InDelta(t, 1.0, e(1), 1e-12, name)
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := e(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev-1e-12, "%s must be monotonic", name)
			assert.LessOrEqual(t, v, 1.0+1e-12, name)
			prev = v
		}
	}
}

func TestEasingValues(t *testing.T) {
	assert.InDelta(t, 0.25, Linear(0.25), 1e-12)
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-12)
	assert.InDelta(t, 0.125, EaseInOutQuad(0.25), 1e-12)
	assert.InDelta(t, 0.0625, EaseInOutCubic(0.25), 1e-12)
}

func TestEasingByNameUnknown(t *testing.T) {
	_, ok := EasingByName("bounce")
	assert.False(t, ok)
}
