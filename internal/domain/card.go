package domain

import (
	"github.com/google/uuid"
	"github.com/samber/mo"
)

// Card is a single printing of a card. Only the fields this module works with are mapped.
type Card struct {
	ID              uuid.UUID            `json:"id"`
	OracleID        uuid.UUID            `json:"oracle_id"`
	Lang            string               `json:"lang"`
	ArenaID         mo.Option[int]       `json:"arena_id"`
	MtgoID          mo.Option[int]       `json:"mtgo_id"`
	MultiverseIDs   []int                `json:"multiverse_ids,omitempty"`
	TcgplayerID     mo.Option[int]       `json:"tcgplayer_id"`
	Name            string               `json:"name"`
	Layout          string               `json:"layout"`
	ManaCost        string               `json:"mana_cost,omitempty"`
	Cmc             float64              `json:"cmc"`
	TypeLine        string               `json:"type_line"`
	OracleText      string               `json:"oracle_text,omitempty"`
	Power           string               `json:"power,omitempty"`
	Toughness       string               `json:"toughness,omitempty"`
	Loyalty         string               `json:"loyalty,omitempty"`
	Colors          []Color              `json:"colors,omitempty"`
	ColorIdentity   []Color              `json:"color_identity"`
	ColorIndicator  []Color              `json:"color_indicator,omitempty"`
	Keywords        []string             `json:"keywords,omitempty"`
	Legalities      map[Format]Legality  `json:"legalities"`
	Reserved        bool                 `json:"reserved"`
	EdhrecRank      mo.Option[int]       `json:"edhrec_rank"`
	CardFaces       []CardFace           `json:"card_faces,omitempty"`
	Set             SetCode              `json:"set"`
	SetName         string               `json:"set_name"`
	SetType         SetType              `json:"set_type"`
	CollectorNumber string               `json:"collector_number"`
	Rarity          Rarity               `json:"rarity"`
	Artist          string               `json:"artist,omitempty"`
	IllustrationID  mo.Option[uuid.UUID] `json:"illustration_id"`
	FlavorText      string               `json:"flavor_text,omitempty"`
	BorderColor     BorderColor          `json:"border_color"`
	Frame           Frame                `json:"frame"`
	FrameEffects    []FrameEffect        `json:"frame_effects,omitempty"`
	Watermark       string               `json:"watermark,omitempty"`
	Games           []Game               `json:"games"`
	Finishes        []Finish             `json:"finishes"`
	Digital         bool                 `json:"digital"`
	Promo           bool                 `json:"promo"`
	Reprint         bool                 `json:"reprint"`
	FullArt         bool                 `json:"full_art"`
	ReleasedAt      Date                 `json:"released_at"`
	Prices          Prices               `json:"prices"`
	ImageURIs       map[string]string    `json:"image_uris,omitempty"`
	PurchaseURIs    map[string]string    `json:"purchase_uris,omitempty"`
	RelatedURIs     map[string]string    `json:"related_uris,omitempty"`
	URI             string               `json:"uri"`
	ScryfallURI     string               `json:"scryfall_uri"`
	RulingsURI      string               `json:"rulings_uri"`
	PrintsSearchURI string               `json:"prints_search_uri"`
	SetSearchURI    string               `json:"set_search_uri"`
}

// CardFace is one face of a multi-faced card.
type CardFace struct {
	Name           string            `json:"name"`
	ManaCost       string            `json:"mana_cost"`
	TypeLine       string            `json:"type_line,omitempty"`
	OracleText     string            `json:"oracle_text,omitempty"`
	Power          string            `json:"power,omitempty"`
	Toughness      string            `json:"toughness,omitempty"`
	Loyalty        string            `json:"loyalty,omitempty"`
	Colors         []Color           `json:"colors,omitempty"`
	ColorIndicator []Color           `json:"color_indicator,omitempty"`
	FlavorText     string            `json:"flavor_text,omitempty"`
	Artist         string            `json:"artist,omitempty"`
	ImageURIs      map[string]string `json:"image_uris,omitempty"`
}

// Prices are decimal strings; a missing price is None.
type Prices struct {
	USD       mo.Option[string] `json:"usd"`
	USDFoil   mo.Option[string] `json:"usd_foil"`
	USDEtched mo.Option[string] `json:"usd_etched"`
	EUR       mo.Option[string] `json:"eur"`
	EURFoil   mo.Option[string] `json:"eur_foil"`
	Tix       mo.Option[string] `json:"tix"`
}

// ColorSet returns the card's colors as a set.
func (c *Card) ColorSet() Colors {
	return ColorsOf(c.Colors...)
}

// IsLegal reports whether the card is legal in the given format.
func (c *Card) IsLegal(format Format) bool {
	return c.Legalities[format] == Legal
}
