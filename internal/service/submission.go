package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/caseline/caseline/internal/model"
	"github.com/caseline/caseline/internal/repository"
	"github.com/caseline/caseline/internal/timeline"
)

var (
	ErrInvalidStatus     = errors.New("invalid submission status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Notifier sends the staff notification once a submission comes in.
// Satisfied by EmailService; tests swap in a fake.
type Notifier interface {
	SendSubmissionNotification(sub *model.TimelineSubmission) error
}

type SubmissionService struct {
	repo     repository.SubmissionRepository
	notifier Notifier
}

func NewSubmissionService(repo repository.SubmissionRepository, notifier Notifier) *SubmissionService {
	return &SubmissionService{
		repo:     repo,
		notifier: notifier,
	}
}

// Save normalizes and persists the caller's submission. Events are sorted
// chronologically before persisting so the stored document reads as a
// timeline. The first save with status "submitted" stamps submittedAt and
// notifies staff; notification failures are logged, never fatal.
func (s *SubmissionService) Save(ctx context.Context, user *model.User, sub *model.TimelineSubmission) (*model.TimelineSubmission, error) {
	if sub.Status != model.SubmissionStatusDraft && sub.Status != model.SubmissionStatusSubmitted {
		return nil, ErrInvalidStatus
	}

	sub.UserID = user.ID
	s.normalize(user, sub)

	existing, err := s.repo.ByUser(ctx, user.ID)
	if err != nil && !errors.Is(err, repository.ErrSubmissionNotFound) {
		return nil, err
	}

	now := time.Now()
	sub.UpdatedAt = now
	if existing != nil {
		sub.ID = existing.ID
		sub.SubmittedAt = existing.SubmittedAt
	}
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}

	firstSubmit := sub.Status == model.SubmissionStatusSubmitted &&
		(existing == nil || existing.Status == model.SubmissionStatusDraft)
	if firstSubmit && sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = now
	}

	err = s.repo.Save(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	if firstSubmit {
		err = s.notifier.SendSubmissionNotification(sub)
		if err != nil {
			slog.Error("failed to send submission notification", "error", err, "user_id", user.ID)
		}
	}

	return sub, nil
}

// normalize fills in server-owned fields the form may omit: ids, complaint
// ownership and lifecycle defaults, and chronological event order.
func (s *SubmissionService) normalize(user *model.User, sub *model.TimelineSubmission) {
	for i := range sub.Events {
		if sub.Events[i].ID == "" {
			sub.Events[i].ID = uuid.New().String()
		}
		for j := range sub.Events[i].Attachments {
			if sub.Events[i].Attachments[j].ID == "" {
				sub.Events[i].Attachments[j].ID = uuid.New().String()
			}
		}
	}

	now := time.Now()
	for i := range sub.Complaints {
		c := &sub.Complaints[i]
		c.UserID = user.ID
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		if c.Status == "" {
			c.Status = model.ComplaintStatusPending
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		c.UpdatedAt = now
	}

	sub.Events = timeline.SortEventsChronological(sub.Events)
}

func (s *SubmissionService) ByUser(ctx context.Context, userID string) (*model.TimelineSubmission, error) {
	return s.repo.ByUser(ctx, userID)
}

// View returns the caller's submission together with the merged timeline in
// display order. The read-only view uses the lenient sort, which pins exact
// dates ahead of approximate text.
func (s *SubmissionService) View(ctx context.Context, userID string) (*model.TimelineSubmission, []timeline.Entry, error) {
	sub, err := s.repo.ByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	entries := timeline.SortLenient(timeline.Merge(sub.Events, sub.Complaints))
	return sub, entries, nil
}

// MarkReviewed transitions a submitted timeline to reviewed.
func (s *SubmissionService) MarkReviewed(ctx context.Context, userID string) error {
	sub, err := s.repo.ByUser(ctx, userID)
	if err != nil {
		return err
	}

	if sub.Status != model.SubmissionStatusSubmitted {
		return ErrInvalidTransition
	}

	return s.repo.UpdateStatus(ctx, userID, model.SubmissionStatusReviewed)
}

func (s *SubmissionService) Delete(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}

// Preview arranges in-progress form state without persisting anything: the
// merged entries in chronological order, or with the caller's custom event
// order applied.
func (s *SubmissionService) Preview(events []model.TimelineEvent, complaints []model.Complaint, mode timeline.Mode, customOrder []string) []timeline.Entry {
	arranger := timeline.NewArranger()
	arranger.Restore(mode, customOrder)
	return arranger.Arrange(events, complaints)
}

// ReorderEvents applies one drag operation to a custom order. Synthetic
// entries are rejected; the target index is clamped by the reorderer.
func (s *SubmissionService) ReorderEvents(order []string, draggedID string, targetIndex int) ([]string, error) {
	if timeline.IsSyntheticID(draggedID) {
		return nil, timeline.ErrSyntheticEntry
	}
	return timeline.Reorder(order, draggedID, targetIndex), nil
}
