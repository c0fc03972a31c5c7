package model

// User is the identity asserted by the external identity provider's bearer
// token. Nothing about users is persisted here; the id keys submissions,
// drafts and uploads.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
