package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests. Ownership
// filtering follows the same rule as the Postgres implementation: the owner
// check happens in the same lookup that locates the task.
type InMemoryRepository struct {
	mu    sync.Mutex
	byID  map[string]*models.Task
	order []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]*models.Task)}
}

// locate returns the stored task only when it exists and is owned by
// userID. Callers must hold the mutex.
func (r *InMemoryRepository) locate(userID string, taskID string) *models.Task {
	task, ok := r.byID[taskID]
	if !ok || task.UserID != userID {
		return nil
	}
	return task
}

func (r *InMemoryRepository) List(ctx context.Context, userID string) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*models.Task
	for _, id := range r.order {
		task, ok := r.byID[id]
		if !ok || task.UserID != userID {
			continue
		}
		copied := *task
		result = append(result, &copied)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, userID string, taskID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := r.locate(userID, taskID)
	if task == nil {
		return nil, common.ErrorNotFound
	}
	result := *task
	return &result, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *task
	stored.ID = uuid.NewString()
	now := time.Now().UTC()
	stored.IsCompleted = false
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, userID string, taskID string, title *string, description *string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := r.locate(userID, taskID)
	if task == nil {
		return nil, common.ErrorNotFound
	}

	if title != nil {
		task.Title = *title
	}
	if description != nil {
		value := *description
		task.Description = &value
	}
	task.UpdatedAt = time.Now().UTC()

	result := *task
	return &result, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID string, taskID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := r.locate(userID, taskID)
	if task == nil {
		return false, nil
	}

	delete(r.byID, taskID)
	for i, id := range r.order {
		if id == taskID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *InMemoryRepository) Toggle(ctx context.Context, userID string, taskID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := r.locate(userID, taskID)
	if task == nil {
		return nil, common.ErrorNotFound
	}

	task.IsCompleted = !task.IsCompleted
	task.UpdatedAt = time.Now().UTC()

	result := *task
	return &result, nil
}
