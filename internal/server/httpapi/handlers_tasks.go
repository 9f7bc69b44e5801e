package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// writeTaskError maps service outcomes to transport errors. Ownership
// mismatches arrive here as common.ErrorNotFound and stay 404.
func (s *HTTPServer) writeTaskError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, CodeValidationError, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, "Task not found")
	default:
		s.logger.Error(r.Context(), "task operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
	}
}

func (s *HTTPServer) handleListTasks(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	list, err := s.tasks.List(r.Context(), user.ID)
	if err != nil {
		s.writeTaskError(w, r, err)
		return
	}

	if list == nil {
		list = []*models.Task{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "invalid request body")
		return
	}

	task, err := s.tasks.Create(r.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		s.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (s *HTTPServer) handleGetTask(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	task, err := s.tasks.Get(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		s.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (s *HTTPServer) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "invalid request body")
		return
	}

	task, err := s.tasks.Update(r.Context(), user.ID, r.PathValue("id"), req.Title, req.Description)
	if err != nil {
		s.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (s *HTTPServer) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	deleted, err := s.tasks.Delete(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		s.writeTaskError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, CodeNotFound, "Task not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	task, err := s.tasks.Toggle(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		s.writeTaskError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}
