package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caseline/caseline/internal/ctxkeys"
	"github.com/caseline/caseline/internal/repository"
	"github.com/caseline/caseline/internal/service"
)

const maxUploadBytes = 25 << 20 // 25MB per evidence file

type AttachmentHandler struct {
	attachmentService *service.AttachmentService
}

func NewAttachmentHandler(attachmentService *service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
	}
}

// Upload stores one evidence file for an event. The returned attachment
// metadata is what the form embeds into the event before saving.
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	eventID := r.PathValue("id")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			slog.Error("failed to close file", "error", closeErr)
		}
	}()

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	attachment, err := h.attachmentService.Upload(user, eventID, header.Filename, mimeType, header.Size, file)
	if err != nil {
		slog.Error("failed to upload attachment", "error", err, "user_id", user.ID, "event_id", eventID)
		http.Error(w, "Failed to upload attachment", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, attachment)
}

// List returns the bookkeeping rows for one event's evidence.
func (h *AttachmentHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	eventID := r.PathValue("id")

	uploads, err := h.attachmentService.EventUploads(user.ID, eventID)
	if err != nil {
		slog.Error("failed to list uploads", "error", err, "user_id", user.ID, "event_id", eventID)
		http.Error(w, "Failed to list uploads", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"uploads": uploads,
	})
}

// Delete removes one evidence file and its bookkeeping row.
func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	uploadID := r.PathValue("id")

	err := h.attachmentService.DeleteUpload(user.ID, uploadID)
	if errors.Is(err, repository.ErrUploadNotFound) {
		http.Error(w, "Upload not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to delete upload", "error", err, "user_id", user.ID, "upload_id", uploadID)
		http.Error(w, "Failed to delete upload", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
