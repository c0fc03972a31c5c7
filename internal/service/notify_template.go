package service

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/caseline/caseline/internal/model"
	"github.com/caseline/caseline/internal/timeline"
)

func submissionNotificationTemplate(sub *model.TimelineSubmission, appName string) (string, string) {
	subject := fmt.Sprintf("New timeline submission from %s", sub.DisplayName())

	var b strings.Builder
	fmt.Fprintf(&b, "A new timeline was submitted on %s.\n\n", appName)

	fmt.Fprintf(&b, "Claimant: %s\n", sub.DisplayName())
	fmt.Fprintf(&b, "Email: %s\n", sub.ContactInfo.Email)
	if sub.ContactInfo.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.ContactInfo.Phone)
	}
	fmt.Fprintf(&b, "Employer: %s (%s)\n", sub.EmployerInfo.CompanyName, sub.EmployerInfo.Location)
	fmt.Fprintf(&b, "Position: %s, %s\n", sub.EmployerInfo.JobTitle, employmentPeriod(sub.EmployerInfo))

	entries := timeline.SortChronological(timeline.Merge(sub.Events, sub.Complaints))
	fmt.Fprintf(&b, "\nTimeline (%d entries):\n", len(entries))

	for i, entry := range entries {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, entry.Title)
		fmt.Fprintf(&b, "   %s: %s\n", dateLabel(entry.Kind), entry.ApproximateDate)
		if entry.Description != "" {
			fmt.Fprintf(&b, "   %s\n", entry.Description)
		}
		for _, a := range entry.Attachments {
			fmt.Fprintf(&b, "   Evidence: %s (%s)\n", a.Name, humanize.Bytes(uint64(a.Size)))
		}
	}

	b.WriteString(fmt.Sprintf("\nBest,\nThe %s Team", appName))

	return subject, b.String()
}

func employmentPeriod(info model.EmployerInfo) string {
	if info.EndDate == "" {
		return fmt.Sprintf("%s to present", info.StartDate)
	}
	return fmt.Sprintf("%s to %s", info.StartDate, info.EndDate)
}

func dateLabel(kind timeline.Kind) string {
	switch kind {
	case timeline.KindComplaint:
		return "Complaint filed"
	case timeline.KindCompanyResponse:
		return "Company responded"
	default:
		return "Date"
	}
}
