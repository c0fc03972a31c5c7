package timeline

import (
	"github.com/caseline/caseline/internal/model"
)

// Merge projects events and complaints into one flat sequence of entries.
// Each complaint yields a synthetic entry dated by when the complaint was
// lodged (not when the incident occurred), and each event the company
// responded to yields a second synthetic entry dated by the response.
//
// Merge is a pure projection: it never mutates its inputs, and it makes no
// ordering promise. Sorting is the caller's concern.
func Merge(events []model.TimelineEvent, complaints []model.Complaint) []Entry {
	entries := make([]Entry, 0, len(events)+len(complaints))

	for _, ev := range events {
		entries = append(entries, Entry{
			ID:              ev.ID,
			Kind:            KindEvent,
			Type:            ev.Type,
			Title:           ev.Title,
			Description:     ev.Description,
			ApproximateDate: ev.ApproximateDate,
			Details:         ev.Details,
			Attachments:     ev.Attachments,
		})
	}

	for _, c := range complaints {
		entries = append(entries, Entry{
			ID:              complaintIDPrefix + c.ID,
			Kind:            KindComplaint,
			Type:            "complaint",
			Title:           c.Title,
			Description:     c.Description,
			ApproximateDate: c.ComplaintDate,
			Details: map[string]any{
				"complaintTo":     c.ComplaintTo,
				"incidentDate":    c.ApproximateDate,
				"relatedEventIds": append([]string(nil), c.RelatedEventIDs...),
			},
			Attachments: []model.Attachment{},
		})
	}

	for _, ev := range events {
		if !ev.CompanyDidRespond || ev.CompanyResponseDate == "" {
			continue
		}
		description := ev.CompanyResponseDetails
		if description == "" {
			description = "Company responded to the complaint"
		}
		entries = append(entries, Entry{
			ID:              responseIDPrefix + ev.ID,
			Kind:            KindCompanyResponse,
			Type:            "company-response",
			Title:           "Company Response to " + ev.Title,
			Description:     description,
			ApproximateDate: ev.CompanyResponseDate,
			Details: map[string]any{
				"originalEventId":    ev.ID,
				"originalEventTitle": ev.Title,
				"responseDetails":    ev.CompanyResponseDetails,
			},
			Attachments: []model.Attachment{},
		})
	}

	return entries
}
