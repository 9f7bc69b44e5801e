package cli

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("task title cannot be empty")
)

// TaskService stores tasks in a map keyed by ID. The menu loop is the only
// caller and dispatches commands sequentially, so no locking is needed.
// IDs grow monotonically and are never reused after a delete.
type TaskService struct {
	tasks  map[int]*Task
	nextID int
}

func NewTaskService() *TaskService {
	return &TaskService{tasks: make(map[int]*Task), nextID: 1}
}

func (s *TaskService) Get(id int) (*Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// List returns all tasks ordered by ID.
func (s *TaskService) List() []*Task {
	ids := make([]int, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	tasks := make([]*Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, s.tasks[id])
	}
	return tasks
}

// Add creates a task and returns its assigned ID.
func (s *TaskService) Add(title string, description string) (int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, ErrEmptyTitle
	}

	id := s.nextID
	s.nextID++
	s.tasks[id] = &Task{ID: id, Title: title, Description: description}
	return id, nil
}

// Update replaces the title and/or description. A nil field keeps the
// current value.
func (s *TaskService) Update(id int, title *string, description *string) error {
	task, ok := s.tasks[id]
	if !ok {
		return ErrTaskNotFound
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return ErrEmptyTitle
		}
		task.Title = trimmed
	}
	if description != nil {
		task.Description = *description
	}
	return nil
}

func (s *TaskService) Delete(id int) error {
	if _, ok := s.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// Toggle flips the completion flag and returns the new value.
func (s *TaskService) Toggle(id int) (bool, error) {
	task, ok := s.tasks[id]
	if !ok {
		return false, ErrTaskNotFound
	}
	task.Completed = !task.Completed
	return task.Completed, nil
}
