package tasks

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

// Service validates task input and delegates storage to the repository.
// The owner identifier always comes from the authenticated caller, never
// from request payloads.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("title must not be empty: %w", common.ErrorValidation)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", fmt.Errorf("title must be at most %d characters: %w", maxTitleLength, common.ErrorValidation)
	}
	return title, nil
}

func validateDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLength {
		return fmt.Errorf("description must be at most %d characters: %w", maxDescriptionLength, common.ErrorValidation)
	}
	return nil
}

// List returns all tasks owned by userID, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Task, error) {
	return s.repo.List(ctx, userID)
}

// Get returns a single task owned by userID.
func (s *Service) Get(ctx context.Context, userID string, taskID string) (*models.Task, error) {
	return s.repo.Get(ctx, userID, taskID)
}

// Create validates and stores a new incomplete task owned by userID.
func (s *Service) Create(ctx context.Context, userID string, title string, description *string) (*models.Task, error) {

	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	return s.repo.Create(ctx, task)
}

// Update changes the supplied fields of a task owned by userID. A call
// with both fields nil still succeeds and refreshes the updated timestamp.
func (s *Service) Update(ctx context.Context, userID string, taskID string, title *string, description *string) (*models.Task, error) {

	if title != nil {
		trimmed, err := validateTitle(*title)
		if err != nil {
			return nil, err
		}
		title = &trimmed
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, userID, taskID, title, description)
}

// Delete permanently removes a task owned by userID.
func (s *Service) Delete(ctx context.Context, userID string, taskID string) (bool, error) {
	return s.repo.Delete(ctx, userID, taskID)
}

// Toggle flips the completion flag of a task owned by userID.
func (s *Service) Toggle(ctx context.Context, userID string, taskID string) (*models.Task, error) {
	return s.repo.Toggle(ctx, userID, taskID)
}
