package search

// Property is a boolean flag a card or printing either has or lacks.
// CardIs and PrintingIs are the two families of properties.
type Property interface {
	String() string
	property()
}

type flag struct {
	prefix string
	name   string
}

func (f flag) String() string {
	return f.prefix + ":" + f.name
}

// CardIs is a property of the card itself, shared by all its printings.
type CardIs int

const (
	CardColorIndicator CardIs = iota
	CardEvenCmc
	CardOddCmc
	CardPhyrexian
	CardHybrid
	CardSplit
	CardFlip
	CardTransform
	CardMeld
	CardLeveler
	CardSpell
	CardPermanent
	CardHistoric
	CardParty
	CardModal
	CardVanilla
	CardFrenchVanilla
	CardFunny
	CardCommander
	CardBrawler
	CardCompanion
	CardReserved
	CardUnique
	CardBicycleLand
	CardTricycleLand
	CardBounceLand
	CardCanopyLand
	CardCheckLand
	CardDualLand
	CardFastLand
	CardFetchLand
	CardFilterLand
	CardGainLand
	CardPainLand
	CardScryLand
	CardShadowLand
	CardShockLand
	CardStorageLand
	CardCreatureLand
	CardTriLand
	CardBattleLand
)

var cardFlags = [...]flag{
	CardColorIndicator: {"has", "indicator"},
	CardEvenCmc:        {"cmc", "even"},
	CardOddCmc:         {"cmc", "odd"},
	CardPhyrexian:      {"is", "phyrexian"},
	CardHybrid:         {"is", "hybrid"},
	CardSplit:          {"is", "split"},
	CardFlip:           {"is", "flip"},
	CardTransform:      {"is", "transform"},
	CardMeld:           {"is", "meld"},
	CardLeveler:        {"is", "leveler"},
	CardSpell:          {"is", "spell"},
	CardPermanent:      {"is", "permanent"},
	CardHistoric:       {"is", "historic"},
	CardParty:          {"is", "party"},
	CardModal:          {"is", "modal"},
	CardVanilla:        {"is", "vanilla"},
	CardFrenchVanilla:  {"is", "french_vanilla"},
	CardFunny:          {"is", "funny"},
	CardCommander:      {"is", "commander"},
	CardBrawler:        {"is", "brawler"},
	CardCompanion:      {"is", "companion"},
	CardReserved:       {"is", "reserved"},
	CardUnique:         {"is", "unique"},
	CardBicycleLand:    {"is", "bicycle_land"},
	CardTricycleLand:   {"is", "tricycle_land"},
	CardBounceLand:     {"is", "bounce_land"},
	CardCanopyLand:     {"is", "canopy_land"},
	CardCheckLand:      {"is", "check_land"},
	CardDualLand:       {"is", "dual"},
	CardFastLand:       {"is", "fast_land"},
	CardFetchLand:      {"is", "fetch_land"},
	CardFilterLand:     {"is", "filter_land"},
	CardGainLand:       {"is", "gain_land"},
	CardPainLand:       {"is", "pain_land"},
	CardScryLand:       {"is", "scry_land"},
	CardShadowLand:     {"is", "shadow_land"},
	CardShockLand:      {"is", "shock_land"},
	CardStorageLand:    {"is", "storage_land"},
	CardCreatureLand:   {"is", "creature_land"},
	CardTriLand:        {"is", "tri_land"},
	CardBattleLand:     {"is", "battle_land"},
}

func (c CardIs) String() string {
	return cardFlags[c].String()
}

func (CardIs) property() {}

// PrintingIs is a property of one printing of a card.
type PrintingIs int

const (
	PrintingWatermark PrintingIs = iota
	PrintingNewCard
	PrintingNewRarity
	PrintingNewArt
	PrintingNewArtist
	PrintingNewFlavor
	PrintingNewFrame
	PrintingNewLanguage
	PrintingFullArt
	PrintingFoil
	PrintingNonfoil
	PrintingHiRes
	PrintingDigital
	PrintingPromo
	PrintingSpotlight
	PrintingMasterpiece
	PrintingFirstPrint
	PrintingReprint
	PrintingBooster
	PrintingPlaneswalkerDeck
	PrintingLeague
	PrintingBuyABox
	PrintingGiftBox
	PrintingIntroPack
	PrintingGameDay
	PrintingPrerelease
	PrintingRelease
)

var printingFlags = [...]flag{
	PrintingWatermark:        {"has", "watermark"},
	PrintingNewCard:          {"new", "card"},
	PrintingNewRarity:        {"new", "rarity"},
	PrintingNewArt:           {"new", "art"},
	PrintingNewArtist:        {"new", "artist"},
	PrintingNewFlavor:        {"new", "flavor"},
	PrintingNewFrame:         {"new", "frame"},
	PrintingNewLanguage:      {"new", "language"},
	PrintingFullArt:          {"is", "full"},
	PrintingFoil:             {"is", "foil"},
	PrintingNonfoil:          {"is", "nonfoil"},
	PrintingHiRes:            {"is", "hires"},
	PrintingDigital:          {"is", "digital"},
	PrintingPromo:            {"is", "promo"},
	PrintingSpotlight:        {"is", "spotlight"},
	PrintingMasterpiece:      {"is", "masterpiece"},
	PrintingFirstPrint:       {"is", "first_print"},
	PrintingReprint:          {"is", "reprint"},
	PrintingBooster:          {"is", "booster"},
	PrintingPlaneswalkerDeck: {"is", "planeswalker_deck"},
	PrintingLeague:           {"is", "league"},
	PrintingBuyABox:          {"is", "buyabox"},
	PrintingGiftBox:          {"is", "giftbox"},
	PrintingIntroPack:        {"is", "intro_pack"},
	PrintingGameDay:          {"is", "gameday"},
	PrintingPrerelease:       {"is", "prerelease"},
	PrintingRelease:          {"is", "release"},
}

func (p PrintingIs) String() string {
	return printingFlags[p].String()
}

func (PrintingIs) property() {}

// Criterion matches cards with the property, or without it when positive is false.
func Criterion(p Property, positive bool) Query {
	q := Query{kind: KindParam, param: propertyParam(p)}
	if !positive {
		return Not(q)
	}
	return q
}

// Is matches cards that have the property.
func Is(p Property) Query {
	return Criterion(p, true)
}
