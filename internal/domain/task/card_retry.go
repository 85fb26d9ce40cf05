package task

import "github.com/google/uuid"

// CardRetryTask re-fetches and stores a single card that could not be saved.
type CardRetryTask struct {
	CardID       uuid.UUID `json:"card_id"`
	CardURI      string    `json:"card_uri"`      // API URI of the card
	RetryCount   int       `json:"retry_count"`   // Number of times this card has been retried
	Error        string    `json:"error"`         // Error message from the original failure
	FailureStage string    `json:"failure_stage"` // "fetch" or "save"
}

func (t *CardRetryTask) TaskType() string {
	return TypeCardRetry
}

func (t *CardRetryTask) TaskValue() ([]byte, error) {
	return DefaultTaskValue(t)
}
