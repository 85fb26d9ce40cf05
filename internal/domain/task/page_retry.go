package task

// PageRetryTask re-fetches a page whose fetch or processing failed.
type PageRetryTask struct {
	SyncID     string `json:"sync_id"`
	PageNumber int    `json:"page_number"` // Failed page number
	PageURI    string `json:"page_uri"`    // URI to fetch again
	RetryCount int    `json:"retry_count"` // Attempts made so far
	Error      string `json:"error"`       // Error message from the last failure
}

func (t *PageRetryTask) TaskType() string {
	return TypePageRetry
}

func (t *PageRetryTask) TaskValue() ([]byte, error) {
	return DefaultTaskValue(t)
}
