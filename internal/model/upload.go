package model

import (
	"time"
)

// Upload is the relational bookkeeping row for a blob stored in object
// storage. The attachment metadata inside the submission document is what the
// form reads; this row is what lets staff audit and clean up storage.
type Upload struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	EventID      string    `db:"event_id"`
	AttachmentID string    `db:"attachment_id"`
	Filename     string    `db:"filename"`
	OriginalName string    `db:"original_name"`
	MimeType     string    `db:"mime_type"`
	Size         int64     `db:"size"`
	StoragePath  string    `db:"storage_path"`
	CreatedAt    time.Time `db:"created_at"`
}
