package search

// Field identifies the search field a value is matched against.
type Field int

const (
	FieldColor Field = iota
	FieldIdentity
	FieldType
	FieldOracle
	FieldFullOracle
	FieldKeyword
	FieldMana
	FieldDevotion
	FieldProduces
	FieldRarity
	FieldInRarity
	FieldSet
	FieldInSet
	FieldNumber
	FieldBlock
	FieldSetType
	FieldInSetType
	FieldCube
	FieldFormat
	FieldBanned
	FieldRestricted
	FieldCheapest
	FieldArtist
	FieldFlavor
	FieldWatermark
	FieldBorder
	FieldFrame
	FieldDate
	FieldGame
	FieldInGame
	FieldLanguage
	FieldInLanguage
	FieldName
	FieldExact

	// numeric fields, in NumProperty order
	FieldPower
	FieldToughness
	FieldPowTou
	FieldLoyalty
	FieldCmc
	FieldArtistCount
	FieldUsd
	FieldUsdFoil
	FieldEur
	FieldTix
	FieldIllustrationCount
	FieldPrintCount
	FieldSetCount
	FieldPaperPrintCount
	FieldPaperSetCount
	FieldYear
)

var fieldNames = [...]string{
	FieldColor:             "color",
	FieldIdentity:          "identity",
	FieldType:              "type",
	FieldOracle:            "oracle",
	FieldFullOracle:        "fulloracle",
	FieldKeyword:           "keyword",
	FieldMana:              "mana",
	FieldDevotion:          "devotion",
	FieldProduces:          "produces",
	FieldRarity:            "rarity",
	FieldInRarity:          "in",
	FieldSet:               "set",
	FieldInSet:             "in",
	FieldNumber:            "number",
	FieldBlock:             "block",
	FieldSetType:           "settype",
	FieldInSetType:         "in",
	FieldCube:              "cube",
	FieldFormat:            "format",
	FieldBanned:            "banned",
	FieldRestricted:        "restricted",
	FieldCheapest:          "cheapest",
	FieldArtist:            "artist",
	FieldFlavor:            "flavor",
	FieldWatermark:         "watermark",
	FieldBorder:            "border",
	FieldFrame:             "frame",
	FieldDate:              "date",
	FieldGame:              "game",
	FieldInGame:            "in",
	FieldLanguage:          "language",
	FieldInLanguage:        "in",
	FieldName:              "name",
	FieldExact:             "exact",
	FieldPower:             "power",
	FieldToughness:         "toughness",
	FieldPowTou:            "powtou",
	FieldLoyalty:           "loyalty",
	FieldCmc:               "cmc",
	FieldArtistCount:       "artists",
	FieldUsd:               "usd",
	FieldUsdFoil:           "usdfoil",
	FieldEur:               "eur",
	FieldTix:               "tix",
	FieldIllustrationCount: "illustrations",
	FieldPrintCount:        "prints",
	FieldSetCount:          "sets",
	FieldPaperPrintCount:   "paperprints",
	FieldPaperSetCount:     "papersets",
	FieldYear:              "year",
}

// String returns the keyword used in query text. All "in" fields share the keyword "in".
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// NumProperty is a numeric card property. It can be used as a value so that
// two properties are compared with each other, as in Power(Gt(PropToughness)).
type NumProperty int

const (
	PropPower NumProperty = iota
	PropToughness
	PropPowTou
	PropLoyalty
	PropCmc
	PropArtistCount
	PropUsd
	PropUsdFoil
	PropEur
	PropTix
	PropIllustrationCount
	PropPrintCount
	PropSetCount
	PropPaperPrintCount
	PropPaperSetCount
	PropYear
)

func (p NumProperty) Field() Field {
	return FieldPower + Field(p)
}

func (p NumProperty) String() string {
	return p.Field().String()
}
