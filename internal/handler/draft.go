package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/caseline/caseline/internal/cache"
	"github.com/caseline/caseline/internal/ctxkeys"
	"github.com/caseline/caseline/internal/service"
)

const maxDraftBytes = 1 << 20 // 1MB per section

type DraftHandler struct {
	draftService *service.DraftService
}

func NewDraftHandler(draftService *service.DraftService) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
	}
}

func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	section := r.PathValue("section")

	data, err := h.draftService.Get(r.Context(), user.ID, section)
	if errors.Is(err, cache.ErrUnknownSection) {
		http.Error(w, "Unknown draft section", http.StatusBadRequest)
		return
	}
	if errors.Is(err, cache.ErrDraftNotFound) {
		http.Error(w, "Draft not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to get draft", "error", err, "user_id", user.ID, "section", section)
		http.Error(w, "Failed to load draft", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"section": section,
		"data":    data,
	})
}

func (h *DraftHandler) Put(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	section := r.PathValue("section")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDraftBytes+1))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) > maxDraftBytes {
		http.Error(w, "Draft section too large", http.StatusRequestEntityTooLarge)
		return
	}
	if !json.Valid(body) {
		http.Error(w, "Draft must be valid JSON", http.StatusBadRequest)
		return
	}

	err = h.draftService.Save(r.Context(), user.ID, section, body)
	if errors.Is(err, cache.ErrUnknownSection) {
		http.Error(w, "Unknown draft section", http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("failed to save draft", "error", err, "user_id", user.ID, "section", section)
		http.Error(w, "Failed to save draft", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	section := r.PathValue("section")

	err := h.draftService.Delete(r.Context(), user.ID, section)
	if errors.Is(err, cache.ErrUnknownSection) {
		http.Error(w, "Unknown draft section", http.StatusBadRequest)
		return
	}
	if err != nil {
		slog.Error("failed to delete draft", "error", err, "user_id", user.ID, "section", section)
		http.Error(w, "Failed to delete draft", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
