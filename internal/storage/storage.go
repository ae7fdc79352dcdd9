package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/taskpulse/taskpulse/internal/config"
	"github.com/taskpulse/taskpulse/internal/models"
)

// Storage handles all task persistence operations
type Storage struct {
	path  string
	mu    sync.RWMutex
	tasks []models.Task
	dirty bool
}

var globalStorage *Storage

// Init initializes the global storage instance and loads existing tasks.
func Init() error {
	store, err := Open(config.Get().TasksFile)
	if err != nil {
		return err
	}
	globalStorage = store
	return nil
}

// Get returns the global storage instance
func Get() *Storage {
	if globalStorage == nil {
		if err := Init(); err != nil {
			panic(err)
		}
	}
	return globalStorage
}

// Open loads the task file at path. A missing file yields an empty store.
func Open(path string) (*Storage, error) {
	store := &Storage{path: path, tasks: make([]models.Task, 0)}

	if err := readJSONFile(path, &store.tasks); err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to load tasks from %s: %w", path, err)
	}
	return store, nil
}

// readJSONFile reads and unmarshals a JSON file
func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

// writeJSONFile marshals and writes a JSON file atomically
func writeJSONFile(path string, v interface{}) error {
	// Marshal with indentation for readability
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return err
	}

	// Atomic rename
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Cleanup on failure
		return err
	}

	return nil
}

// Flush writes pending changes to disk.
func (s *Storage) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	if err := writeJSONFile(s.path, s.tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	s.dirty = false
	return nil
}

// Snapshot returns an independent copy of all tasks. Analytics consumers get
// a stable view even if the store mutates afterwards.
func (s *Storage) Snapshot() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Count returns the number of stored tasks.
func (s *Storage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
