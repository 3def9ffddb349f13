package location

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

// stateFile is the on-disk layout, one entry per document
type stateFile struct {
	Locations map[string]entry `toml:"locations"`
}

type entry struct {
	Fragment  string    `toml:"fragment"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// FileStore persists the fragment of one document in a shared TOML state file
// so it survives restarts and can be changed by other processes.
type FileStore struct {
	mu       sync.Mutex
	path     string
	document string
	fragment string
}

// DefaultStatePath returns the state file under the user's state directory
func DefaultStatePath() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "onepage", "locations.toml")
}

// NewFileStore opens the state file at path for document. A missing file is
// not an error; it is created on the first push.
func NewFileStore(path, document string) (*FileStore, error) {
	abs, err := filepath.Abs(document)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document path: %w", err)
	}
	s := &FileStore{path: path, document: abs}

	state, err := s.read()
	if err != nil {
		return nil, err
	}
	s.fragment = state.Locations[s.document].Fragment
	return s, nil
}

// Path returns the state file location
func (s *FileStore) Path() string {
	return s.path
}

// Fragment returns the last known fragment for the document
func (s *FileStore) Fragment() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fragment
}

// PushFragment stores a new fragment for the document
func (s *FileStore) PushFragment(fragment string) error {
	fragment = strings.TrimPrefix(fragment, "#")

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}
	state.Locations[s.document] = entry{Fragment: fragment, UpdatedAt: time.Now().UTC()}
	if err := s.write(state); err != nil {
		return err
	}
	s.fragment = fragment
	return nil
}

// Watch reports fragment changes made to the state file by other writers.
// It blocks until ctx is done.
func (s *FileStore) Watch(ctx context.Context, onChange func(fragment string)) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: writers replace the file by rename.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if fragment, changed := s.reload(); changed {
				onChange(fragment)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("location: watch error: %v", err)
		}
	}
}

// reload re-reads the file and reports whether the fragment moved
func (s *FileStore) reload() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		log.Printf("location: failed to reload %s: %v", s.path, err)
		return "", false
	}
	fragment := state.Locations[s.document].Fragment
	if fragment == s.fragment {
		return fragment, false
	}
	s.fragment = fragment
	return fragment, true
}

func (s *FileStore) read() (*stateFile, error) {
	state := &stateFile{Locations: make(map[string]entry)}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	if err := toml.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if state.Locations == nil {
		state.Locations = make(map[string]entry)
	}
	return state, nil
}

func (s *FileStore) write(state *stateFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".locations-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
