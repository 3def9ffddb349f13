package transition

import "context"

type ctxKey struct{}

// NewContext returns a context carrying the controller for UI components
func NewContext(ctx context.Context, c *Controller) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the controller carried by ctx
func FromContext(ctx context.Context) (*Controller, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Controller)
	return c, ok && c != nil
}

// MustFromContext returns the controller carried by ctx. Using navigation
// outside a controller scope is a programming error, so it panics.
func MustFromContext(ctx context.Context) *Controller {
	c, ok := FromContext(ctx)
	if !ok {
		panic("transition: no controller in context; navigation must run inside a transition.NewContext scope")
	}
	return c
}
