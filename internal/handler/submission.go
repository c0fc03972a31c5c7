package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/caseline/caseline/internal/ctxkeys"
	"github.com/caseline/caseline/internal/model"
	"github.com/caseline/caseline/internal/repository"
	"github.com/caseline/caseline/internal/service"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
	draftService      *service.DraftService
}

func NewSubmissionHandler(submissionService *service.SubmissionService, draftService *service.DraftService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		draftService:      draftService,
	}
}

// Get returns the caller's submission with the merged timeline in display
// order.
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	sub, entries, err := h.submissionService.View(r.Context(), user.ID)
	if errors.Is(err, repository.ErrSubmissionNotFound) {
		http.Error(w, "Submission not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to get submission", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load submission", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"submission": sub,
		"timeline":   entries,
	})
}

// Save upserts the caller's submission. A save with status "submitted"
// finalizes the form and clears the autosaved draft.
func (h *SubmissionHandler) Save(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var sub model.TimelineSubmission
	err := json.NewDecoder(r.Body).Decode(&sub)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := h.submissionService.Save(r.Context(), user, &sub)
	if errors.Is(err, service.ErrInvalidStatus) {
		http.Error(w, "Status must be draft or submitted", http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("failed to save submission", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to save submission", http.StatusInternalServerError)
		return
	}

	if saved.Status == model.SubmissionStatusSubmitted {
		err = h.draftService.Clear(r.Context(), user.ID)
		if err != nil {
			slog.Error("failed to clear draft after submission", "error", err, "user_id", user.ID)
		}
	}

	respondJSON(w, http.StatusOK, saved)
}

// UpdateStatus transitions a submitted timeline to reviewed.
func (h *SubmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var body struct {
		Status string `json:"status"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.Status != model.SubmissionStatusReviewed {
		http.Error(w, "Status must be reviewed", http.StatusBadRequest)
		return
	}

	err = h.submissionService.MarkReviewed(r.Context(), user.ID)
	if errors.Is(err, repository.ErrSubmissionNotFound) {
		http.Error(w, "Submission not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, service.ErrInvalidTransition) {
		http.Error(w, "Only submitted timelines can be reviewed", http.StatusConflict)
		return
	}
	if err != nil {
		slog.Error("failed to update submission status", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to update status", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": model.SubmissionStatusReviewed})
}

func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.submissionService.Delete(r.Context(), user.ID)
	if errors.Is(err, repository.ErrSubmissionNotFound) {
		http.Error(w, "Submission not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to delete submission", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to delete submission", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
