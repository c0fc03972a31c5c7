package timeline

import (
	"strings"

	"github.com/caseline/caseline/internal/model"
)

// Kind discriminates real events from the synthetic projections of complaints
// and company responses. Resolved once at merge time; callers switch on it
// instead of inspecting entry shapes.
type Kind string

const (
	KindEvent           Kind = "event"
	KindComplaint       Kind = "complaint"
	KindCompanyResponse Kind = "companyResponse"
)

const (
	complaintIDPrefix = "complaint_"
	responseIDPrefix  = "company_response_"
)

// Entry is one row of the unified timeline: either a real event or a
// synthetic entry derived from a complaint or a company response. Synthetic
// entries are recomputed on every merge pass, never persisted, and never
// edited or dragged.
type Entry struct {
	ID              string             `json:"id"`
	Kind            Kind               `json:"kind"`
	Type            string             `json:"type"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	ApproximateDate string             `json:"approximateDate"`
	Details         map[string]any     `json:"details,omitempty"`
	Attachments     []model.Attachment `json:"attachments"`
}

// Synthetic reports whether the entry is a derived projection rather than a
// real event.
func (e Entry) Synthetic() bool {
	return e.Kind != KindEvent
}

// IsSyntheticID reports whether id names a synthetic entry. Synthetic ids are
// namespaced by construction so they can never collide with client-generated
// event ids.
func IsSyntheticID(id string) bool {
	return strings.HasPrefix(id, complaintIDPrefix) || strings.HasPrefix(id, responseIDPrefix)
}
