package domain

import "time"

// InboxFile tracks a CSV dropped into the inbox directory.
type InboxFile struct {
	Name         string     `db:"name"`
	Status       Status     `db:"status"`
	RecordsAdded int        `db:"records_added"`
	ErrorMessage string     `db:"error_message"`
	ProcessedAt  *time.Time `db:"processed_at"`
}
