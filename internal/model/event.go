package model

const (
	EventTypeHarassment          = "harassment"
	EventTypeWrongfulTermination = "wrongful-termination"
	EventTypeWageViolation       = "wage-violation"
	EventTypeSafetyViolation     = "safety-violation"
	EventTypeRetaliation         = "retaliation"
	EventTypePolicyViolation     = "policy-violation"
	EventTypeOther               = "other"
)

// Attachment is evidence uploaded for an event. URL is populated once the blob
// upload completes; it may legitimately be empty if the upload failed or is
// still pending, and that must never block the event itself.
type Attachment struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Type string `bson:"type" json:"type"`
	Size int64  `bson:"size" json:"size"`
	URL  string `bson:"url,omitempty" json:"url,omitempty"`
}

// TimelineEvent is a workplace incident in the claimant's timeline. The ID is
// generated client-side and stays stable across edits. ApproximateDate is the
// raw user-entered string ("2024-03-15" or "Summer 2023"); it is parsed for
// ordering but always displayed verbatim.
type TimelineEvent struct {
	ID              string         `bson:"id" json:"id"`
	Type            string         `bson:"type" json:"type"`
	Title           string         `bson:"title" json:"title"`
	Description     string         `bson:"description" json:"description"`
	ApproximateDate string         `bson:"approximate_date" json:"approximateDate"`
	Details         map[string]any `bson:"details,omitempty" json:"details,omitempty"`
	Attachments     []Attachment   `bson:"attachments,omitempty" json:"attachments,omitempty"`

	// Complaint back-reference. An event points at no more than one complaint;
	// the complaint side holds the full relation (RelatedEventIDs).
	ComplaintID   string `bson:"complaint_id,omitempty" json:"complaintId,omitempty"`
	DidComplain   bool   `bson:"did_complain,omitempty" json:"didComplain,omitempty"`
	ComplaintTo   string `bson:"complaint_to,omitempty" json:"complaintTo,omitempty"`
	ComplaintDate string `bson:"complaint_date,omitempty" json:"complaintDate,omitempty"`

	CompanyDidRespond      bool   `bson:"company_did_respond,omitempty" json:"companyDidRespond,omitempty"`
	CompanyResponseDate    string `bson:"company_response_date,omitempty" json:"companyResponseDate,omitempty"`
	CompanyResponseDetails string `bson:"company_response_details,omitempty" json:"companyResponseDetails,omitempty"`
}
