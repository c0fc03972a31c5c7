package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseline/caseline/internal/model"
)

func TestSubmissionNotificationTemplate(t *testing.T) {
	sub := &model.TimelineSubmission{
		ContactInfo: model.ContactInfo{
			FirstName: "Jo",
			LastName:  "Smith",
			Email:     "jo@example.com",
			Phone:     "555-0100",
		},
		EmployerInfo: model.EmployerInfo{
			CompanyName: "Acme Corp",
			Location:    "Springfield",
			JobTitle:    "Technician",
			StartDate:   "2022-01-01",
		},
		Events: []model.TimelineEvent{
			{
				ID:              "ev-2",
				Title:           "Written warning",
				ApproximateDate: "2024-02-01",
			},
			{
				ID:              "ev-1",
				Title:           "First incident",
				Description:     "Supervisor shouted at me",
				ApproximateDate: "Summer 2023",
				Attachments: []model.Attachment{
					{Name: "photo.jpg", Size: 2300000},
				},
			},
		},
		Complaints: []model.Complaint{
			{ID: "c-1", Title: "HR complaint", ComplaintTo: "HR", ComplaintDate: "2023-09-01"},
		},
	}

	subject, body := submissionNotificationTemplate(sub, "Caseline")

	assert.Equal(t, "New timeline submission from Jo Smith", subject)
	assert.Contains(t, body, "Claimant: Jo Smith")
	assert.Contains(t, body, "Employer: Acme Corp (Springfield)")
	assert.Contains(t, body, "2022-01-01 to present")
	assert.Contains(t, body, "Timeline (3 entries):")
	assert.Contains(t, body, "Complaint filed: 2023-09-01")
	assert.Contains(t, body, "Evidence: photo.jpg (2.3 MB)")

	// Entries appear in chronological order regardless of input order
	first := strings.Index(body, "First incident")
	complaint := strings.Index(body, "HR complaint")
	warning := strings.Index(body, "Written warning")
	require.True(t, first >= 0 && complaint >= 0 && warning >= 0)
	assert.Less(t, first, complaint)
	assert.Less(t, complaint, warning)
}

func TestEmploymentPeriodWithEndDate(t *testing.T) {
	period := employmentPeriod(model.EmployerInfo{StartDate: "2022-01-01", EndDate: "2024-05-01"})
	assert.Equal(t, "2022-01-01 to 2024-05-01", period)
}
