package anim

import "math"

// Easing maps linear progress in [0,1] to eased progress in [0,1]
type Easing func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 {
	return t
}

// EaseOutCubic decelerates towards the end
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutQuad accelerates then decelerates
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseInOutCubic is the default section transition curve
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

var easings = map[string]Easing{
	"linear":            Linear,
	"ease-out-cubic":    EaseOutCubic,
	"ease-in-out-quad":  EaseInOutQuad,
	"ease-in-out-cubic": EaseInOutCubic,
}

// EasingNames lists the names accepted by EasingByName
func EasingNames() []string {
	return []string{"linear", "ease-out-cubic", "ease-in-out-quad", "ease-in-out-cubic"}
}

// EasingByName looks up an easing function by its configuration name
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}
