package domain

import "fmt"

type IngestResult struct {
	Filename     string `json:"filename"`
	Parsed       int    `json:"parsed"`
	Duplicates   int    `json:"duplicates"`
	RecordsAdded int    `json:"records_added"`
}

func (r *IngestResult) Status() Status {
	if r.RecordsAdded == 0 {
		return StatusNoChanges
	}
	return StatusDone
}

func (r *IngestResult) Message() string {
	if r.RecordsAdded == 0 {
		return "No new data to add. All records already exist."
	}
	return fmt.Sprintf("Successfully added %d new records", r.RecordsAdded)
}
