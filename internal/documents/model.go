package documents

import "time"

// Document represents an uploaded resume file owned by a user.
type Document struct {
	ID            string
	UserID        string
	FileName      string
	MimeType      string
	SizeBytes     int64
	StorageKey    string
	ExtractedText string
	CreatedAt     time.Time
}
