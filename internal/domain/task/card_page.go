package task

import "scryfall/client/internal/domain"

// CardPageTask carries one fetched page of search results to the workers.
type CardPageTask struct {
	SyncID     string        `json:"sync_id"`     // Search the page belongs to
	PageNumber int           `json:"page_number"` // 1-based page index within the search
	PageURI    string        `json:"page_uri"`    // URI the page was fetched from
	Cards      []domain.Card `json:"cards"`       // Cards on this page
}

func (t *CardPageTask) TaskType() string {
	return TypeCardPage
}

func (t *CardPageTask) TaskValue() ([]byte, error) {
	return DefaultTaskValue(t)
}
