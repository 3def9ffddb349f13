// Package menu keeps navigation menus whose items follow the active section.
package menu

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ActiveClass marks the item of the active section
const ActiveClass = "active"

// Item is one menu entry. Only items with a MenuAnchor take part in
// highlighting; their order among themselves matches section order.
type Item struct {
	Label      string
	MenuAnchor string
}

type item struct {
	Item
	classes map[string]bool
}

// Region is a named menu
type Region struct {
	mu    sync.RWMutex
	name  string
	items []*item
}

// NewRegion creates a menu region addressable by name
func NewRegion(name string, items ...Item) *Region {
	r := &Region{name: name}
	r.SetItems(items)
	return r
}

// Name returns the region's selector name
func (r *Region) Name() string {
	return r.name
}

// SetItems replaces the menu entries; highlight state is dropped
func (r *Region) SetItems(items []Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make([]*item, len(items))
	for i, it := range items {
		r.items[i] = &item{Item: it, classes: make(map[string]bool)}
	}
}

// Highlight adds the active class to the index-th anchored item and removes it from all others
func (r *Region) Highlight(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, it := range r.items {
		if it.MenuAnchor == "" {
			continue
		}
		if n == index {
			it.classes[ActiveClass] = true
		} else {
			delete(it.classes, ActiveClass)
		}
		n++
	}
}

// Active returns the index of the highlighted anchored item, or -1
func (r *Region) Active() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, it := range r.items {
		if it.MenuAnchor == "" {
			continue
		}
		if it.classes[ActiveClass] {
			return n
		}
		n++
	}
	return -1
}

// Classes returns the sorted classes of the i-th item (anchored or not)
func (r *Region) Classes(i int) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.items) {
		return nil
	}
	var out []string
	for c := range r.items[i].classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Styles renders a region
type Styles struct {
	Box    lipgloss.Style
	Item   lipgloss.Style
	Active lipgloss.Style
	Plain  lipgloss.Style
}

// DefaultStyles returns the sidebar look
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("241")).
			PaddingRight(1),
		Item:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Active: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Plain:  lipgloss.NewStyle().Faint(true),
	}
}

// View renders the region as a vertical list at most height rows tall
func (r *Region) View(styles Styles, width, height int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]string, 0, len(r.items))
	for _, it := range r.items {
		label := truncate(it.Label, width-2)
		switch {
		case it.MenuAnchor == "":
			lines = append(lines, styles.Plain.Render("  "+label))
		case it.classes[ActiveClass]:
			lines = append(lines, styles.Active.Render("▸ "+label))
		default:
			lines = append(lines, styles.Item.Render("  "+label))
		}
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return styles.Box.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// Registry finds menu regions by selector
type Registry struct {
	mu      sync.RWMutex
	regions map[string]*Region
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{regions: make(map[string]*Region)}
}

// Add makes a region addressable by its name, which may itself be a selector
func (g *Registry) Add(r *Region) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.regions[normalize(r.name)] = r
}

// Remove drops a region
func (g *Registry) Remove(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.regions, normalize(name))
}

// Lookup resolves a selector such as "sidebar" or "#sidebar"
func (g *Registry) Lookup(selector string) (*Region, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.regions[normalize(selector)]
	return r, ok
}

// Highlight marks index active in the region named by selector.
// An unknown selector is ignored.
func (g *Registry) Highlight(selector string, index int) {
	if r, ok := g.Lookup(selector); ok {
		r.Highlight(index)
	}
}

func normalize(selector string) string {
	return strings.TrimLeft(strings.TrimSpace(selector), "#.")
}
