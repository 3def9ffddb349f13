// Package section keeps the ordered set of surfaces that take part in paging.
package section

import (
	"sort"
	"sync"
)

// Surface is a display region that can be paged to.
// Surfaces are compared by identity, so implementations should be pointers.
type Surface interface {
	// DocumentPosition orders surfaces in document order
	DocumentPosition() int
	// OffsetTop is the scroll offset that brings the surface to the top of the viewport
	OffsetTop() float64
}

type entry struct {
	surface Surface
	seq     uint64 // registration order, breaks position ties
}

// Registry owns the ordered section list. Positions are the indexes 0..N-1.
type Registry struct {
	mu        sync.RWMutex
	entries   []entry
	seq       uint64
	observers []func(count int)
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a surface and re-sorts the set by document position.
// Registering the same surface twice is a no-op. The returned function
// removes the surface and may be called more than once.
func (r *Registry) Register(s Surface) func() {
	r.mu.Lock()
	if r.indexOfLocked(s) < 0 {
		r.seq++
		r.entries = append(r.entries, entry{surface: s, seq: r.seq})
		r.sortLocked()
		r.mu.Unlock()
		r.notify()
	} else {
		r.mu.Unlock()
	}

	var once sync.Once
	return func() {
		once.Do(func() { r.Unregister(s) })
	}
}

// Unregister removes a surface by identity
func (r *Registry) Unregister(s Surface) {
	r.mu.Lock()
	i := r.indexOfLocked(s)
	if i < 0 {
		r.mu.Unlock()
		return
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	r.mu.Unlock()
	r.notify()
}

// Resort recomputes positions, e.g. after surfaces moved in the document
func (r *Registry) Resort() {
	r.mu.Lock()
	r.sortLocked()
	r.mu.Unlock()
}

// Len returns the number of registered sections
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// At returns the surface at a position
func (r *Registry) At(i int) (Surface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.entries) {
		return nil, false
	}
	return r.entries[i].surface, true
}

// IndexOf returns the position of a surface, or -1
func (r *Registry) IndexOf(s Surface) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOfLocked(s)
}

// Surfaces returns a copy of the ordered list
func (r *Registry) Surfaces() []Surface {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Surface, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.surface
	}
	return out
}

// OnChange registers an observer called with the new count after every add or remove
func (r *Registry) OnChange(fn func(count int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

func (r *Registry) indexOfLocked(s Surface) int {
	for i, e := range r.entries {
		if e.surface == s {
			return i
		}
	}
	return -1
}

func (r *Registry) sortLocked() {
	sort.SliceStable(r.entries, func(i, j int) bool {
		pi, pj := r.entries[i].surface.DocumentPosition(), r.entries[j].surface.DocumentPosition()
		if pi != pj {
			return pi < pj
		}
		return r.entries[i].seq < r.entries[j].seq
	})
}

func (r *Registry) notify() {
	r.mu.RLock()
	count := len(r.entries)
	observers := make([]func(int), len(r.observers))
	copy(observers, r.observers)
	r.mu.RUnlock()

	for _, fn := range observers {
		fn(count)
	}
}
