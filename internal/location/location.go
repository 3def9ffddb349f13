// Package location stores the fragment naming the current section, the
// terminal counterpart of a URL hash.
package location

import (
	"strings"
	"sync"
)

// ParseTarget splits "path#fragment" into its parts. The fragment is "" when absent.
func ParseTarget(target string) (path, fragment string) {
	i := strings.LastIndex(target, "#")
	if i < 0 {
		return target, ""
	}
	return target[:i], target[i+1:]
}

// Link joins a path and a fragment
func Link(path, fragment string) string {
	if fragment == "" {
		return path
	}
	return path + "#" + fragment
}

// Memory keeps the fragment in process with a push history
type Memory struct {
	mu       sync.Mutex
	fragment string
	history  []string
}

// NewMemory creates a memory location starting at fragment
func NewMemory(fragment string) *Memory {
	return &Memory{fragment: strings.TrimPrefix(fragment, "#")}
}

// Fragment returns the current fragment without '#'
func (m *Memory) Fragment() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fragment
}

// PushFragment records a new fragment
func (m *Memory) PushFragment(fragment string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fragment = strings.TrimPrefix(fragment, "#")
	m.history = append(m.history, m.fragment)
	return nil
}

// History returns every pushed fragment in order
func (m *Memory) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.history...)
}
