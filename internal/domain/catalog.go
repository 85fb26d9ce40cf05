package domain

// Catalog is a flat list of strings, such as all card names or all creature types.
type Catalog struct {
	URI         string   `json:"uri"`
	TotalValues int      `json:"total_values"`
	Data        []string `json:"data"`
}

// CatalogKind names one of the catalog endpoints.
type CatalogKind string

func (c CatalogKind) String() string {
	return string(c)
}

const (
	CatalogCardNames         CatalogKind = "card-names"
	CatalogArtistNames       CatalogKind = "artist-names"
	CatalogWordBank          CatalogKind = "word-bank"
	CatalogCreatureTypes     CatalogKind = "creature-types"
	CatalogPlaneswalkerTypes CatalogKind = "planeswalker-types"
	CatalogLandTypes         CatalogKind = "land-types"
	CatalogArtifactTypes     CatalogKind = "artifact-types"
	CatalogEnchantmentTypes  CatalogKind = "enchantment-types"
	CatalogSpellTypes        CatalogKind = "spell-types"
	CatalogPowers            CatalogKind = "powers"
	CatalogToughnesses       CatalogKind = "toughnesses"
	CatalogLoyalties         CatalogKind = "loyalties"
	CatalogWatermarks        CatalogKind = "watermarks"
	CatalogKeywordAbilities  CatalogKind = "keyword-abilities"
	CatalogKeywordActions    CatalogKind = "keyword-actions"
	CatalogAbilityWords      CatalogKind = "ability-words"
)

var CatalogKinds = []CatalogKind{
	CatalogCardNames,
	CatalogArtistNames,
	CatalogWordBank,
	CatalogCreatureTypes,
	CatalogPlaneswalkerTypes,
	CatalogLandTypes,
	CatalogArtifactTypes,
	CatalogEnchantmentTypes,
	CatalogSpellTypes,
	CatalogPowers,
	CatalogToughnesses,
	CatalogLoyalties,
	CatalogWatermarks,
	CatalogKeywordAbilities,
	CatalogKeywordActions,
	CatalogAbilityWords,
}
