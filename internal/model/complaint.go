package model

import (
	"time"
)

const (
	ComplaintStatusPending   = "pending"
	ComplaintStatusSubmitted = "submitted"
	ComplaintStatusResolved  = "resolved"
)

// Complaint records that the claimant complained about one or more incidents.
// ApproximateDate is when the underlying incident happened; ComplaintDate is
// when the complaint was lodged, and that is the date the timeline sorts by.
type Complaint struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"user_id" json:"userId"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	ApproximateDate string    `bson:"approximate_date" json:"approximateDate"`
	ComplaintTo     string    `bson:"complaint_to" json:"complaintTo"`
	ComplaintDate   string    `bson:"complaint_date" json:"complaintDate"`
	Status          string    `bson:"status" json:"status"`
	RelatedEventIDs []string  `bson:"related_event_ids,omitempty" json:"relatedEventIds,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
