package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseline/caseline/internal/model"
)

func testEvents() []model.TimelineEvent {
	return []model.TimelineEvent{
		{
			ID:              "ev1",
			Type:            model.EventTypeHarassment,
			Title:           "Verbal abuse in meeting",
			Description:     "Manager shouted at me in front of the team",
			ApproximateDate: "2024-01-10",
		},
		{
			ID:                     "ev2",
			Type:                   model.EventTypeRetaliation,
			Title:                  "Shift cut after complaint",
			Description:            "Hours reduced the week after I spoke up",
			ApproximateDate:        "Summer 2023",
			CompanyDidRespond:      true,
			CompanyResponseDate:    "2023-08-01",
			CompanyResponseDetails: "HR scheduled a meeting",
		},
	}
}

func testComplaints() []model.Complaint {
	return []model.Complaint{
		{
			ID:              "c1",
			UserID:          "user1",
			Title:           "Complaint to HR",
			Description:     "Reported the meeting incident",
			ApproximateDate: "2024-01-10",
			ComplaintTo:     "HR",
			ComplaintDate:   "2024-01-20",
			Status:          model.ComplaintStatusPending,
			RelatedEventIDs: []string{"ev1"},
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		},
	}
}

func findEntry(t *testing.T, entries []Entry, id string) Entry {
	t.Helper()
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("entry %q not found", id)
	return Entry{}
}

func TestMerge_ProjectsComplaints(t *testing.T) {
	entries := Merge(testEvents(), testComplaints())

	c := findEntry(t, entries, "complaint_c1")
	assert.Equal(t, KindComplaint, c.Kind)
	assert.True(t, c.Synthetic())

	// Complaints sort by when they were lodged, not when the incident
	// occurred; the incident date moves into the details.
	assert.Equal(t, "2024-01-20", c.ApproximateDate)
	assert.Equal(t, "2024-01-10", c.Details["incidentDate"])
	assert.Equal(t, "HR", c.Details["complaintTo"])
	assert.Equal(t, []string{"ev1"}, c.Details["relatedEventIds"])
	assert.Empty(t, c.Attachments)
}

func TestMerge_ProjectsCompanyResponses(t *testing.T) {
	entries := Merge(testEvents(), nil)

	r := findEntry(t, entries, "company_response_ev2")
	assert.Equal(t, KindCompanyResponse, r.Kind)
	assert.Equal(t, "2023-08-01", r.ApproximateDate)
	assert.Equal(t, "Company Response to Shift cut after complaint", r.Title)
	assert.Equal(t, "ev2", r.Details["originalEventId"])
	assert.Equal(t, "Shift cut after complaint", r.Details["originalEventTitle"])
	assert.Equal(t, "HR scheduled a meeting", r.Details["responseDetails"])

	// ev1 has no response, so exactly one synthetic response entry exists.
	assert.Len(t, entries, 3)
}

func TestMerge_SkipsResponsesWithoutDate(t *testing.T) {
	events := []model.TimelineEvent{
		{ID: "ev1", Title: "No date", ApproximateDate: "2024-01-01", CompanyDidRespond: true},
		{ID: "ev2", Title: "No response", ApproximateDate: "2024-01-02", CompanyResponseDate: "2024-02-01"},
	}

	entries := Merge(events, nil)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, KindEvent, e.Kind)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	events := testEvents()
	complaints := testComplaints()

	_ = Merge(events, complaints)

	assert.Equal(t, testEvents(), events)
	assert.Equal(t, "ev1", complaints[0].RelatedEventIDs[0])
	assert.Len(t, events, 2)
	assert.Len(t, complaints, 1)
}

func TestMerge_IdempotentStructure(t *testing.T) {
	events := testEvents()
	complaints := testComplaints()

	first := Merge(events, complaints)
	second := Merge(events, complaints)

	require.Equal(t, len(first), len(second))
	for _, e := range first {
		again := findEntry(t, second, e.ID)
		assert.Equal(t, e.ApproximateDate, again.ApproximateDate)
		assert.Equal(t, e.Details, again.Details)
		assert.Equal(t, e.Kind, again.Kind)
	}
}

func TestMerge_TolerantOfPendingUploads(t *testing.T) {
	events := testEvents()
	events[0].Attachments = []model.Attachment{
		{ID: "att1", Name: "photo.jpg", Type: "image/jpeg", Size: 1024}, // no URL yet
	}

	entries := Merge(events, nil)
	e := findEntry(t, entries, "ev1")
	require.Len(t, e.Attachments, 1)
	assert.Empty(t, e.Attachments[0].URL)
}

func TestIsSyntheticID(t *testing.T) {
	assert.True(t, IsSyntheticID("complaint_c1"))
	assert.True(t, IsSyntheticID("company_response_ev2"))
	assert.False(t, IsSyntheticID("ev1"))
	assert.False(t, IsSyntheticID(""))
}
