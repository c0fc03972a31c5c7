package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseline/caseline/internal/model"
	"github.com/caseline/caseline/internal/repository"
	"github.com/caseline/caseline/internal/timeline"
)

type fakeSubmissionRepo struct {
	subs     map[string]model.TimelineSubmission
	statuses map[string]string
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{
		subs:     make(map[string]model.TimelineSubmission),
		statuses: make(map[string]string),
	}
}

func (f *fakeSubmissionRepo) ByUser(_ context.Context, userID string) (*model.TimelineSubmission, error) {
	sub, ok := f.subs[userID]
	if !ok {
		return nil, repository.ErrSubmissionNotFound
	}
	out := sub
	return &out, nil
}

func (f *fakeSubmissionRepo) Save(_ context.Context, sub *model.TimelineSubmission) error {
	f.subs[sub.UserID] = *sub
	return nil
}

func (f *fakeSubmissionRepo) UpdateStatus(_ context.Context, userID, status string) error {
	sub, ok := f.subs[userID]
	if !ok {
		return repository.ErrSubmissionNotFound
	}
	sub.Status = status
	f.subs[userID] = sub
	f.statuses[userID] = status
	return nil
}

func (f *fakeSubmissionRepo) Delete(_ context.Context, userID string) error {
	if _, ok := f.subs[userID]; !ok {
		return repository.ErrSubmissionNotFound
	}
	delete(f.subs, userID)
	return nil
}

type fakeNotifier struct {
	sent []*model.TimelineSubmission
	err  error
}

func (f *fakeNotifier) SendSubmissionNotification(sub *model.TimelineSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sub)
	return nil
}

func testUser() *model.User {
	return &model.User{ID: "user-1", Email: "jo@example.com", Name: "Jo"}
}

func TestSaveDraftDoesNotNotify(t *testing.T) {
	repo := newFakeSubmissionRepo()
	notifier := &fakeNotifier{}
	svc := NewSubmissionService(repo, notifier)

	saved, err := svc.Save(context.Background(), testUser(), &model.TimelineSubmission{
		Status: model.SubmissionStatusDraft,
	})
	require.NoError(t, err)

	assert.Empty(t, notifier.sent)
	assert.True(t, saved.SubmittedAt.IsZero())
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "user-1", saved.UserID)
}

func TestSaveFirstSubmitStampsAndNotifies(t *testing.T) {
	repo := newFakeSubmissionRepo()
	notifier := &fakeNotifier{}
	svc := NewSubmissionService(repo, notifier)
	user := testUser()

	_, err := svc.Save(context.Background(), user, &model.TimelineSubmission{
		Status: model.SubmissionStatusDraft,
	})
	require.NoError(t, err)

	saved, err := svc.Save(context.Background(), user, &model.TimelineSubmission{
		Status: model.SubmissionStatusSubmitted,
	})
	require.NoError(t, err)

	assert.False(t, saved.SubmittedAt.IsZero())
	require.Len(t, notifier.sent, 1)
}

func TestSaveResubmitKeepsOriginalTimestamp(t *testing.T) {
	repo := newFakeSubmissionRepo()
	notifier := &fakeNotifier{}
	svc := NewSubmissionService(repo, notifier)
	user := testUser()

	first, err := svc.Save(context.Background(), user, &model.TimelineSubmission{
		Status: model.SubmissionStatusSubmitted,
	})
	require.NoError(t, err)

	second, err := svc.Save(context.Background(), user, &model.TimelineSubmission{
		Status: model.SubmissionStatusSubmitted,
	})
	require.NoError(t, err)

	assert.Equal(t, first.SubmittedAt, second.SubmittedAt)
	assert.Equal(t, first.ID, second.ID)
	// Only the draft-to-submitted transition notifies
	assert.Len(t, notifier.sent, 1)
}

func TestSaveNotificationFailureIsNotFatal(t *testing.T) {
	repo := newFakeSubmissionRepo()
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewSubmissionService(repo, notifier)

	saved, err := svc.Save(context.Background(), testUser(), &model.TimelineSubmission{
		Status: model.SubmissionStatusSubmitted,
	})
	require.NoError(t, err)
	assert.False(t, saved.SubmittedAt.IsZero())

	stored, err := repo.ByUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusSubmitted, stored.Status)
}

func TestSaveRejectsUnknownStatus(t *testing.T) {
	svc := NewSubmissionService(newFakeSubmissionRepo(), &fakeNotifier{})

	_, err := svc.Save(context.Background(), testUser(), &model.TimelineSubmission{
		Status: "reviewed",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSaveNormalizesEventsAndComplaints(t *testing.T) {
	repo := newFakeSubmissionRepo()
	svc := NewSubmissionService(repo, &fakeNotifier{})

	saved, err := svc.Save(context.Background(), testUser(), &model.TimelineSubmission{
		Status: model.SubmissionStatusDraft,
		Events: []model.TimelineEvent{
			{ID: "late", Title: "Late", ApproximateDate: "2024-03-01"},
			{Title: "Early", ApproximateDate: "Summer 2023"},
		},
		Complaints: []model.Complaint{
			{ComplaintTo: "HR"},
		},
	})
	require.NoError(t, err)

	// Events come back in chronological order with ids filled in
	require.Len(t, saved.Events, 2)
	assert.Equal(t, "Early", saved.Events[0].Title)
	assert.NotEmpty(t, saved.Events[0].ID)
	assert.Equal(t, "late", saved.Events[1].ID)

	require.Len(t, saved.Complaints, 1)
	assert.NotEmpty(t, saved.Complaints[0].ID)
	assert.Equal(t, "user-1", saved.Complaints[0].UserID)
	assert.Equal(t, model.ComplaintStatusPending, saved.Complaints[0].Status)
	assert.False(t, saved.Complaints[0].CreatedAt.IsZero())
}

func TestMarkReviewedRequiresSubmitted(t *testing.T) {
	repo := newFakeSubmissionRepo()
	svc := NewSubmissionService(repo, &fakeNotifier{})
	user := testUser()

	_, err := svc.Save(context.Background(), user, &model.TimelineSubmission{
		Status: model.SubmissionStatusDraft,
	})
	require.NoError(t, err)

	err = svc.MarkReviewed(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Save(context.Background(), user, &model.TimelineSubmission{
		Status: model.SubmissionStatusSubmitted,
	})
	require.NoError(t, err)

	err = svc.MarkReviewed(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusReviewed, repo.statuses[user.ID])
}

func TestMarkReviewedMissingSubmission(t *testing.T) {
	svc := NewSubmissionService(newFakeSubmissionRepo(), &fakeNotifier{})

	err := svc.MarkReviewed(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrSubmissionNotFound)
}

func TestViewMergesComplaints(t *testing.T) {
	repo := newFakeSubmissionRepo()
	svc := NewSubmissionService(repo, &fakeNotifier{})
	user := testUser()

	_, err := svc.Save(context.Background(), user, &model.TimelineSubmission{
		Status: model.SubmissionStatusDraft,
		Events: []model.TimelineEvent{
			{ID: "ev-1", Title: "Incident", ApproximateDate: "2024-01-10"},
		},
		Complaints: []model.Complaint{
			{ID: "c-1", ComplaintTo: "HR", ComplaintDate: "2024-02-01"},
		},
	})
	require.NoError(t, err)

	sub, entries, err := svc.View(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, sub.UserID)

	require.Len(t, entries, 2)
	assert.Equal(t, timeline.KindEvent, entries[0].Kind)
	assert.Equal(t, timeline.KindComplaint, entries[1].Kind)
}

func TestPreviewCustomOrder(t *testing.T) {
	svc := NewSubmissionService(newFakeSubmissionRepo(), &fakeNotifier{})

	events := []model.TimelineEvent{
		{ID: "a", ApproximateDate: "2024-01-01"},
		{ID: "b", ApproximateDate: "2024-02-01"},
	}

	entries := svc.Preview(events, nil, timeline.ModeCustom, []string{"b", "a"})

	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
}

func TestReorderEventsRejectsSynthetic(t *testing.T) {
	svc := NewSubmissionService(newFakeSubmissionRepo(), &fakeNotifier{})

	_, err := svc.ReorderEvents([]string{"a", "b"}, "complaint_c1", 0)
	assert.ErrorIs(t, err, timeline.ErrSyntheticEntry)

	order, err := svc.ReorderEvents([]string{"a", "b"}, "b", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, order)
}
