package model

import "time"

// Enquiry represents a submitted enquiry form with an optional file attachment.
// The attachment's bytes live in object storage under StoragePath; only
// metadata is kept on the record, so listings never carry file content.
// FileName, StoragePath and FileType are either all set or all empty.
type Enquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Country     string    `json:"country"`
	Message     string    `json:"message"`
	FileName    string    `json:"fileName,omitempty"`
	FileType    string    `json:"fileType,omitempty"`
	FileSize    int64     `json:"fileSize,omitempty"`
	StoragePath string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasFile reports whether an attachment was stored with the enquiry.
func (e *Enquiry) HasFile() bool {
	return e.StoragePath != ""
}
