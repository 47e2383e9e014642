package domain

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusNoChanges  Status = "no_changes"
	StatusError      Status = "error"
)
