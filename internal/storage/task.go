package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskpulse/taskpulse/internal/models"
)

// NewTaskID generates a unique task identifier.
func NewTaskID() string {
	return uuid.NewString()
}

// AddTask stores a new task, filling in ID, timestamps, and defaults.
func (s *Storage) AddTask(task models.Task) (models.Task, error) {
	if task.Title == "" {
		return models.Task{}, fmt.Errorf("task title must not be empty")
	}
	if task.ID == "" {
		task.ID = NewTaskID()
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if !task.Priority.Valid() {
		return models.Task{}, fmt.Errorf("unknown priority '%s'", task.Priority)
	}
	if task.IsRecurring && !task.RecurrenceType.Valid() {
		return models.Task{}, fmt.Errorf("unknown recurrence type '%s'", task.RecurrenceType)
	}
	if task.Tags == nil {
		task.Tags = make([]string, 0)
	}

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	s.dirty = true
	return task, nil
}

// FindTask returns a copy of the task with the given ID.
func (s *Storage) FindTask(taskID string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			return s.tasks[i], nil
		}
	}
	return models.Task{}, fmt.Errorf("task '%s' not found", taskID)
}

// UpdateTask applies updater to the task with the given ID and bumps its
// UpdatedAt timestamp.
func (s *Storage) UpdateTask(taskID string, updater func(*models.Task) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			if err := updater(&s.tasks[i]); err != nil {
				return err
			}
			s.tasks[i].UpdatedAt = time.Now().UTC()
			s.dirty = true
			return nil
		}
	}
	return fmt.Errorf("task '%s' not found", taskID)
}

// CompleteTask marks a task as completed. Completing an occurrence of a
// recurring pattern spawns the next occurrence from the pattern.
func (s *Storage) CompleteTask(taskID string) error {
	task, err := s.FindTask(taskID)
	if err != nil {
		return err
	}
	if task.IsPattern {
		return fmt.Errorf("task '%s' is a recurring pattern; complete one of its occurrences", taskID)
	}

	if err := s.UpdateTask(taskID, func(t *models.Task) error {
		if t.Completed {
			return fmt.Errorf("task '%s' is already completed", taskID)
		}
		t.Completed = true
		return nil
	}); err != nil {
		return err
	}

	if task.IsOccurrence() && task.PatternID != "" {
		if _, err := s.SpawnOccurrence(task.PatternID); err != nil {
			return fmt.Errorf("failed to spawn next occurrence: %w", err)
		}
	}
	return nil
}

// RemoveTask removes a task by ID.
func (s *Storage) RemoveTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.dirty = true
			return nil
		}
	}
	return fmt.Errorf("task '%s' not found", taskID)
}

// SpawnOccurrence generates the next occurrence instance for a recurring
// pattern and increments the pattern's occurrence count.
func (s *Storage) SpawnOccurrence(patternID string) (models.Task, error) {
	pattern, err := s.FindTask(patternID)
	if err != nil {
		return models.Task{}, err
	}
	if !pattern.IsPattern {
		return models.Task{}, fmt.Errorf("task '%s' is not a recurring pattern", patternID)
	}

	now := time.Now().UTC()
	due := pattern.RecurrenceType.NextDue(now, pattern.RecurrenceInterval)

	occurrence := models.Task{
		ID:                 NewTaskID(),
		Title:              pattern.Title,
		Priority:           pattern.Priority,
		DueDate:            &due,
		Tags:               append([]string(nil), pattern.Tags...),
		IsRecurring:        true,
		PatternID:          pattern.ID,
		RecurrenceType:     pattern.RecurrenceType,
		RecurrenceInterval: pattern.RecurrenceInterval,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, occurrence)
	s.dirty = true
	s.mu.Unlock()

	if err := s.UpdateTask(patternID, func(t *models.Task) error {
		t.OccurrenceCount++
		return nil
	}); err != nil {
		return models.Task{}, err
	}
	return occurrence, nil
}

// PendingTasks returns copies of all incomplete, non-pattern tasks.
func (s *Storage) PendingTasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]models.Task, 0)
	for i := range s.tasks {
		if !s.tasks[i].Completed && !s.tasks[i].IsPattern {
			pending = append(pending, s.tasks[i])
		}
	}
	return pending
}
