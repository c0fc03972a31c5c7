package service

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/caseline/caseline/internal/model"
	"github.com/caseline/caseline/internal/repository"
	"github.com/caseline/caseline/internal/storage"
)

type AttachmentService struct {
	storage storage.Storage
	uploads repository.UploadRepository
}

func NewAttachmentService(storage storage.Storage, uploads repository.UploadRepository) *AttachmentService {
	return &AttachmentService{
		storage: storage,
		uploads: uploads,
	}
}

// Upload stores one evidence file for an event and returns the attachment
// metadata to embed in the submission. A storage failure degrades rather than
// fails: the attachment comes back without a URL so the event itself is never
// blocked on evidence.
func (s *AttachmentService) Upload(user *model.User, eventID, originalName, mimeType string, size int64, file io.Reader) (*model.Attachment, error) {
	attachment := &model.Attachment{
		ID:   uuid.New().String(),
		Name: originalName,
		Type: mimeType,
		Size: size,
	}

	filename := uuid.New().String() + filepath.Ext(originalName)
	path := fmt.Sprintf("evidence/%s/%s/%s", user.ID, eventID, filename)

	err := s.storage.Save(path, file)
	if err != nil {
		slog.Error("failed to store attachment, keeping metadata without URL",
			"error", err,
			"user_id", user.ID,
			"event_id", eventID,
			"name", originalName,
		)
		return attachment, nil
	}

	attachment.URL = s.storage.URL(path)

	upload := &model.Upload{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		EventID:      eventID,
		AttachmentID: attachment.ID,
		Filename:     filename,
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         size,
		StoragePath:  path,
		CreatedAt:    time.Now(),
	}
	err = s.uploads.Create(upload)
	if err != nil {
		// The blob is stored and the URL is usable; losing the audit row is
		// recoverable, so log and carry on.
		slog.Error("failed to record upload", "error", err, "path", path)
	}

	return attachment, nil
}

// EventUploads lists the bookkeeping rows for one event's evidence.
func (s *AttachmentService) EventUploads(userID, eventID string) ([]*model.Upload, error) {
	return s.uploads.ByEvent(userID, eventID)
}

// DeleteUpload removes an evidence blob and its bookkeeping row.
func (s *AttachmentService) DeleteUpload(userID, uploadID string) error {
	upload, err := s.uploads.ByID(uploadID)
	if err != nil {
		return err
	}
	if upload.UserID != userID {
		return repository.ErrUploadNotFound
	}

	err = s.storage.Delete(upload.StoragePath)
	if err != nil {
		slog.Error("failed to delete attachment blob", "error", err, "path", upload.StoragePath)
	}

	return s.uploads.Delete(uploadID)
}
