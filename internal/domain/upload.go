package domain

import "time"

type UploadSource string

const (
	SourceHTTP  UploadSource = "http"
	SourceInbox UploadSource = "inbox"
)

// Upload is one entry of the ingestion history.
type Upload struct {
	ID           int64        `db:"id"            json:"id"`
	Filename     string       `db:"filename"      json:"filename"`
	Username     string       `db:"username"      json:"username"`
	Source       UploadSource `db:"source"        json:"source"`
	Status       Status       `db:"status"        json:"status"`
	Parsed       int          `db:"parsed"        json:"parsed"`
	RecordsAdded int          `db:"records_added" json:"records_added"`
	ErrorMessage string       `db:"error_message" json:"error_message,omitempty"`
	ProcessedAt  *time.Time   `db:"processed_at"  json:"processed_at"`
}
