package domain

// Format is a play format as used by legality maps and the format/banned/restricted search fields.
type Format string

func (f Format) String() string {
	return string(f)
}

const (
	FormatStandard  Format = "standard"
	FormatFuture    Format = "future"
	FormatHistoric  Format = "historic"
	FormatTimeless  Format = "timeless"
	FormatGladiator Format = "gladiator"
	FormatPioneer   Format = "pioneer"
	FormatExplorer  Format = "explorer"
	FormatModern    Format = "modern"
	FormatLegacy    Format = "legacy"
	FormatPauper    Format = "pauper"
	FormatVintage   Format = "vintage"
	FormatPenny     Format = "penny"
	FormatCommander Format = "commander"
	FormatOathbreak Format = "oathbreaker"
	FormatBrawl     Format = "brawl"
	FormatAlchemy   Format = "alchemy"
	FormatDuel      Format = "duel"
	FormatOldschool Format = "oldschool"
	FormatPremodern Format = "premodern"
	FormatPredh     Format = "predh"
)

// Legality of a card in one format.
type Legality string

const (
	Legal      Legality = "legal"
	NotLegal   Legality = "not_legal"
	Restricted Legality = "restricted"
	Banned     Legality = "banned"
)
