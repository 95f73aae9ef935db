package dto

// DeletionResult aggregates one deletion-pipeline run.
// Processed = Deleted + Errors always holds.
type DeletionResult struct {
	Processed int `json:"processed"`
	Deleted   int `json:"deleted"`
	Errors    int `json:"errors"`
}

// WarningResult aggregates one warning-pipeline run. Sent counts individual
// emails, so it can exceed Processed for church-wide warnings.
type WarningResult struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Errors    int `json:"errors"`
}
