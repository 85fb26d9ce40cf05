package domain

import "github.com/google/uuid"

type Ruling struct {
	OracleID    uuid.UUID `json:"oracle_id"`
	Source      string    `json:"source"` // "wotc" or "scryfall"
	PublishedAt Date      `json:"published_at"`
	Comment     string    `json:"comment"`
}
