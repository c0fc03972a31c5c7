package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caseline/caseline/internal/model"
	"github.com/caseline/caseline/internal/service"
	"github.com/caseline/caseline/internal/timeline"
)

type TimelineHandler struct {
	submissionService *service.SubmissionService
}

func NewTimelineHandler(submissionService *service.SubmissionService) *TimelineHandler {
	return &TimelineHandler{
		submissionService: submissionService,
	}
}

// Preview arranges in-progress form state without persisting: the form posts
// its current events, complaints and view mode, and gets back the merged
// timeline in display order.
func (h *TimelineHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Events      []model.TimelineEvent `json:"events"`
		Complaints  []model.Complaint     `json:"complaints"`
		ViewMode    timeline.Mode         `json:"viewMode"`
		CustomOrder []string              `json:"customOrder"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.ViewMode == "" {
		body.ViewMode = timeline.ModeChronological
	}
	if body.ViewMode != timeline.ModeChronological && body.ViewMode != timeline.ModeCustom {
		http.Error(w, "View mode must be chronological or custom", http.StatusBadRequest)
		return
	}

	entries := h.submissionService.Preview(body.Events, body.Complaints, body.ViewMode, body.CustomOrder)

	respondJSON(w, http.StatusOK, map[string]any{
		"timeline": entries,
	})
}

// Reorder applies one drag operation to a custom event order.
func (h *TimelineHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Order       []string `json:"order"`
		DraggedID   string   `json:"draggedId"`
		TargetIndex int      `json:"targetIndex"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.submissionService.ReorderEvents(body.Order, body.DraggedID, body.TargetIndex)
	if errors.Is(err, timeline.ErrSyntheticEntry) {
		http.Error(w, "Complaint and response entries cannot be reordered", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Failed to reorder", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"order": order,
	})
}
