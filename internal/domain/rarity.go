package domain

type Rarity string

func (r Rarity) String() string {
	return string(r)
}

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RaritySpecial  Rarity = "special"
	RarityMythic   Rarity = "mythic"
	RarityBonus    Rarity = "bonus"
)

var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RaritySpecial,
	RarityMythic,
	RarityBonus,
}
