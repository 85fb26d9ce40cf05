package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/samber/mo"
)

// SetCode is the three to five letter code of a set.
type SetCode string

func (s SetCode) String() string {
	return strings.ToLower(string(s))
}

type SetType string

func (s SetType) String() string {
	return string(s)
}

const (
	SetTypeCore            SetType = "core"
	SetTypeExpansion       SetType = "expansion"
	SetTypeMasters         SetType = "masters"
	SetTypeAlchemy         SetType = "alchemy"
	SetTypeMasterpiece     SetType = "masterpiece"
	SetTypeArsenal         SetType = "arsenal"
	SetTypeFromTheVault    SetType = "from_the_vault"
	SetTypeSpellbook       SetType = "spellbook"
	SetTypePremiumDeck     SetType = "premium_deck"
	SetTypeDuelDeck        SetType = "duel_deck"
	SetTypeDraftInnovation SetType = "draft_innovation"
	SetTypeTreasureChest   SetType = "treasure_chest"
	SetTypeCommander       SetType = "commander"
	SetTypePlanechase      SetType = "planechase"
	SetTypeArchenemy       SetType = "archenemy"
	SetTypeVanguard        SetType = "vanguard"
	SetTypeFunny           SetType = "funny"
	SetTypeStarter         SetType = "starter"
	SetTypeBox             SetType = "box"
	SetTypePromo           SetType = "promo"
	SetTypeToken           SetType = "token"
	SetTypeMemorabilia     SetType = "memorabilia"
	SetTypeMinigame        SetType = "minigame"
)

type Set struct {
	ID            uuid.UUID      `json:"id"`
	Code          SetCode        `json:"code"`
	MtgoCode      string         `json:"mtgo_code,omitempty"`
	ArenaCode     string         `json:"arena_code,omitempty"`
	TcgplayerID   mo.Option[int] `json:"tcgplayer_id"`
	Name          string         `json:"name"`
	SetType       SetType        `json:"set_type"`
	ReleasedAt    Date           `json:"released_at"`
	BlockCode     string         `json:"block_code,omitempty"`
	Block         string         `json:"block,omitempty"`
	ParentSetCode string         `json:"parent_set_code,omitempty"`
	CardCount     int            `json:"card_count"`
	PrintedSize   mo.Option[int] `json:"printed_size"`
	Digital       bool           `json:"digital"`
	FoilOnly      bool           `json:"foil_only"`
	NonfoilOnly   bool           `json:"nonfoil_only"`
	ScryfallURI   string         `json:"scryfall_uri"`
	URI           string         `json:"uri"`
	IconSvgURI    string         `json:"icon_svg_uri"`
	SearchURI     string         `json:"search_uri"` // first page of this set's cards
}
