package model

import (
	"time"
)

const (
	SubmissionStatusDraft     = "draft"
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusReviewed  = "reviewed"
)

type ContactInfo struct {
	FirstName             string `bson:"first_name" json:"firstName"`
	LastName              string `bson:"last_name" json:"lastName"`
	Email                 string `bson:"email" json:"email"`
	Phone                 string `bson:"phone" json:"phone"`
	Birthday              string `bson:"birthday,omitempty" json:"birthday,omitempty"`
	Address               string `bson:"address" json:"address"`
	EmergencyContactName  string `bson:"emergency_contact_name,omitempty" json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `bson:"emergency_contact_phone,omitempty" json:"emergencyContactPhone,omitempty"`
}

type EmployerInfo struct {
	CompanyName    string `bson:"company_name" json:"companyName"`
	Location       string `bson:"location" json:"location"`
	JobTitle       string `bson:"job_title" json:"jobTitle"`
	StartDate      string `bson:"start_date" json:"startDate"`
	EndDate        string `bson:"end_date,omitempty" json:"endDate,omitempty"` // empty = current
	PayRate        string `bson:"pay_rate,omitempty" json:"payRate,omitempty"`
	EmploymentType string `bson:"employment_type" json:"employmentType"`
}

// TimelineSubmission is the aggregate root persisted to the document store.
// There is at most one submission per user.
type TimelineSubmission struct {
	ID           string          `bson:"_id,omitempty" json:"id"`
	UserID       string          `bson:"user_id" json:"userId"`
	ContactInfo  ContactInfo     `bson:"contact_info" json:"contactInfo"`
	EmployerInfo EmployerInfo    `bson:"employer_info" json:"employerInfo"`
	Events       []TimelineEvent `bson:"events" json:"events"`
	Complaints   []Complaint     `bson:"complaints" json:"complaints"`
	Status       string          `bson:"status" json:"status"`
	SubmittedAt  time.Time       `bson:"submitted_at" json:"submittedAt"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"updatedAt"`
}

func (s *TimelineSubmission) DisplayName() string {
	name := s.ContactInfo.FirstName
	if s.ContactInfo.LastName != "" {
		if name != "" {
			name += " "
		}
		name += s.ContactInfo.LastName
	}
	if name == "" {
		return s.ContactInfo.Email
	}
	return name
}
