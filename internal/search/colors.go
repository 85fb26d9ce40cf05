package search

import "scryfall/client/internal/domain"

// Guild is a two-color combination. Guilds, shards, wedges and four-color
// names render as their lowercase name and are accepted by every color field.
type Guild int

const (
	Azorius Guild = iota
	Boros
	Dimir
	Golgari
	Gruul
	Izzet
	Orzhov
	Rakdos
	Selesnya
	Simic
)

var guilds = [...]struct {
	name   string
	colors []domain.Color
}{
	Azorius:  {"azorius", []domain.Color{domain.White, domain.Blue}},
	Boros:    {"boros", []domain.Color{domain.Red, domain.White}},
	Dimir:    {"dimir", []domain.Color{domain.Blue, domain.Black}},
	Golgari:  {"golgari", []domain.Color{domain.Black, domain.Green}},
	Gruul:    {"gruul", []domain.Color{domain.Red, domain.Green}},
	Izzet:    {"izzet", []domain.Color{domain.Blue, domain.Red}},
	Orzhov:   {"orzhov", []domain.Color{domain.White, domain.Black}},
	Rakdos:   {"rakdos", []domain.Color{domain.Black, domain.Red}},
	Selesnya: {"selesnya", []domain.Color{domain.Green, domain.White}},
	Simic:    {"simic", []domain.Color{domain.Green, domain.Blue}},
}

func (g Guild) String() string {
	return guilds[g].name
}

func (g Guild) Colors() domain.Colors {
	return domain.ColorsOf(guilds[g].colors...)
}

// Shard is an allied three-color combination.
type Shard int

const (
	Bant Shard = iota
	Esper
	Grixis
	Jund
	Naya
)

var shards = [...]struct {
	name   string
	colors []domain.Color
}{
	Bant:   {"bant", []domain.Color{domain.Green, domain.White, domain.Blue}},
	Esper:  {"esper", []domain.Color{domain.White, domain.Blue, domain.Black}},
	Grixis: {"grixis", []domain.Color{domain.Blue, domain.Black, domain.Red}},
	Jund:   {"jund", []domain.Color{domain.Black, domain.Red, domain.Green}},
	Naya:   {"naya", []domain.Color{domain.Red, domain.Green, domain.White}},
}

func (s Shard) String() string {
	return shards[s].name
}

func (s Shard) Colors() domain.Colors {
	return domain.ColorsOf(shards[s].colors...)
}

// Wedge is an enemy three-color combination.
type Wedge int

const (
	Abzan Wedge = iota
	Jeskai
	Mardu
	Sultai
	Temur
)

var wedges = [...]struct {
	name   string
	colors []domain.Color
}{
	Abzan:  {"abzan", []domain.Color{domain.White, domain.Black, domain.Green}},
	Jeskai: {"jeskai", []domain.Color{domain.Blue, domain.Red, domain.White}},
	Mardu:  {"mardu", []domain.Color{domain.Red, domain.White, domain.Black}},
	Sultai: {"sultai", []domain.Color{domain.Black, domain.Green, domain.Blue}},
	Temur:  {"temur", []domain.Color{domain.Green, domain.Blue, domain.Red}},
}

func (w Wedge) String() string {
	return wedges[w].name
}

func (w Wedge) Colors() domain.Colors {
	return domain.ColorsOf(wedges[w].colors...)
}

// FourColor names a four-color combination by the color it lacks.
type FourColor int

const (
	Aggression FourColor = iota // no blue
	Altruism                    // no black
	Artifice                    // no green
	Chaos                       // no white
	Growth                      // no red
)

var fourColors = [...]struct {
	name   string
	colors []domain.Color
}{
	Aggression: {"aggression", []domain.Color{domain.Black, domain.Red, domain.Green, domain.White}},
	Altruism:   {"altruism", []domain.Color{domain.Red, domain.Green, domain.White, domain.Blue}},
	Artifice:   {"artifice", []domain.Color{domain.White, domain.Blue, domain.Black, domain.Red}},
	Chaos:      {"chaos", []domain.Color{domain.Blue, domain.Black, domain.Red, domain.Green}},
	Growth:     {"growth", []domain.Color{domain.Green, domain.White, domain.Blue, domain.Black}},
}

func (f FourColor) String() string {
	return fourColors[f].name
}

func (f FourColor) Colors() domain.Colors {
	return domain.ColorsOf(fourColors[f].colors...)
}
