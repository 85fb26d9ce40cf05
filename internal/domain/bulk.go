package domain

import (
	"time"

	"github.com/google/uuid"
)

type BulkType string

func (b BulkType) String() string {
	return string(b)
}

const (
	BulkOracleCards   BulkType = "oracle_cards"   // one card object per oracle id
	BulkUniqueArtwork BulkType = "unique_artwork" // one card object per illustration
	BulkDefaultCards  BulkType = "default_cards"  // every card in English or the printed language
	BulkAllCards      BulkType = "all_cards"      // every card in every language
	BulkRulings       BulkType = "rulings"        // all rulings
)

var BulkTypes = []BulkType{
	BulkOracleCards,
	BulkUniqueArtwork,
	BulkDefaultCards,
	BulkAllCards,
	BulkRulings,
}

// IsCards reports whether the file holds card objects (as opposed to rulings).
func (b BulkType) IsCards() bool {
	return b != BulkRulings
}

// BulkDataFile describes one downloadable bulk export.
type BulkDataFile struct {
	ID              uuid.UUID `json:"id"`
	URI             string    `json:"uri"`
	Type            BulkType  `json:"type"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DownloadURI     string    `json:"download_uri"`
	UpdatedAt       time.Time `json:"updated_at"`
	Size            int64     `json:"size"`
	ContentType     string    `json:"content_type"`
	ContentEncoding string    `json:"content_encoding"`
}
