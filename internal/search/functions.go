package search

func value(field Field, v any) Query {
	return paramQuery(valueParam(field, v))
}

// Color matches the card's color, based on indicator or cost.
func Color[V ColorValue](v V) Query { return value(FieldColor, v) }

// ColorCount matches the number of colors of the card.
func ColorCount[V Numeric](n V) Query { return value(FieldColor, n) }

// ColorIdentity matches the color identity used by Commander-like formats.
func ColorIdentity[V ColorValue](v V) Query { return value(FieldIdentity, v) }

func ColorIdentityCount[V Numeric](n V) Query { return value(FieldIdentity, n) }

func TypeLine[V TextOrRegex](v V) Query { return value(FieldType, v) }

// OracleText matches the current oracle text, without reminder text.
func OracleText[V TextOrRegex](v V) Query { return value(FieldOracle, v) }

// FullOracleText matches the oracle text including reminder text.
func FullOracleText[V TextOrRegex](v V) Query { return value(FieldFullOracle, v) }

func Keyword(keyword string) Query { return value(FieldKeyword, keyword) }

// Mana matches the mana cost.
func Mana[V ColorValue](v V) Query { return value(FieldMana, v) }

// Devotion matches the devotion a permanent grants. See MonoDevotion and HybridDevotion.
func Devotion[V DevotionValue](v V) Query { return value(FieldDevotion, v) }

// Produces matches the colors of mana the card can produce.
func Produces[V ColorValue](v V) Query { return value(FieldProduces, v) }

func Rarity[V RarityValue](v V) Query { return value(FieldRarity, v) }

// InRarity matches cards that were ever printed at the rarity.
func InRarity[V RarityValue](v V) Query { return value(FieldInRarity, v) }

func Set[V SetValue](v V) Query { return value(FieldSet, v) }

// InSet matches cards that were ever printed in the set.
func InSet[V SetValue](v V) Query { return value(FieldInSet, v) }

func CollectorNumber[V Numeric](n V) Query { return value(FieldNumber, n) }

// Block matches any set in the same block as the given set.
func Block[V SetValue](v V) Query { return value(FieldBlock, v) }

func SetType[V SetTypeValue](v V) Query { return value(FieldSetType, v) }

func InSetType[V SetTypeValue](v V) Query { return value(FieldInSetType, v) }

// Cube matches cards in the named MTGO cube.
func Cube(cube string) Query { return value(FieldCube, cube) }

// Format matches cards legal in the format.
func Format[V FormatValue](v V) Query { return value(FieldFormat, v) }

func Banned[V FormatValue](v V) Query { return value(FieldBanned, v) }

func Restricted[V FormatValue](v V) Query { return value(FieldRestricted, v) }

// Cheapest returns the cheapest printing in the currency ("usd", "eur" or "tix").
func Cheapest(currency string) Query { return value(FieldCheapest, currency) }

func Artist(artist string) Query { return value(FieldArtist, artist) }

func Flavor[V TextOrRegex](v V) Query { return value(FieldFlavor, v) }

func Watermark(watermark string) Query { return value(FieldWatermark, watermark) }

func BorderColor[V BorderColorValue](v V) Query { return value(FieldBorder, v) }

// Frame matches a frame edition or a frame effect.
func Frame[V FrameValue](v V) Query { return value(FieldFrame, v) }

// Date matches the release date of the printing.
func Date[V DateValue](v V) Query { return value(FieldDate, v) }

func Game[V GameValue](v V) Query { return value(FieldGame, v) }

func InGame[V GameValue](v V) Query { return value(FieldInGame, v) }

func Language(lang string) Query { return value(FieldLanguage, lang) }

func InLanguage(lang string) Query { return value(FieldInLanguage, lang) }

// Name matches the card name. Plain text is a fuzzy match; use Exact for an exact one.
func Name[V TextOrRegex](v V) Query { return value(FieldName, v) }

// Power counts '*' and 'X' as 0.
func Power[V NumericComparable](v V) Query { return value(FieldPower, v) }

func Toughness[V NumericComparable](v V) Query { return value(FieldToughness, v) }

// PowTou is power plus toughness.
func PowTou[V NumericComparable](v V) Query { return value(FieldPowTou, v) }

func Loyalty[V NumericComparable](v V) Query { return value(FieldLoyalty, v) }

func Cmc[V NumericComparable](v V) Query { return value(FieldCmc, v) }

func ArtistCount[V NumericComparable](v V) Query { return value(FieldArtistCount, v) }

func Usd[V NumericComparable](v V) Query { return value(FieldUsd, v) }

func UsdFoil[V NumericComparable](v V) Query { return value(FieldUsdFoil, v) }

func Eur[V NumericComparable](v V) Query { return value(FieldEur, v) }

func Tix[V NumericComparable](v V) Query { return value(FieldTix, v) }

func IllustrationCount[V NumericComparable](v V) Query { return value(FieldIllustrationCount, v) }

func PrintCount[V NumericComparable](v V) Query { return value(FieldPrintCount, v) }

func SetCount[V NumericComparable](v V) Query { return value(FieldSetCount, v) }

func PaperPrintCount[V NumericComparable](v V) Query { return value(FieldPaperPrintCount, v) }

func PaperSetCount[V NumericComparable](v V) Query { return value(FieldPaperSetCount, v) }

func Year[V NumericComparable](v V) Query { return value(FieldYear, v) }
