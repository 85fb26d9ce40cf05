package domain

import "strings"

// Color is one of the five colors of magic, encoded the way the API does ("W", "U", ...).
type Color string

const (
	White Color = "W"
	Blue  Color = "U"
	Black Color = "B"
	Red   Color = "R"
	Green Color = "G"
)

// AllColors in WUBRG order.
var AllColors = []Color{White, Blue, Black, Red, Green}

func (c Color) String() string {
	return strings.ToLower(string(c))
}

// Symbol returns the upper-case mana symbol letter.
func (c Color) Symbol() string {
	return strings.ToUpper(string(c))
}

func (c Color) bit() Colors {
	switch c {
	case White:
		return 1 << 0
	case Blue:
		return 1 << 1
	case Black:
		return 1 << 2
	case Red:
		return 1 << 3
	case Green:
		return 1 << 4
	default:
		return 0
	}
}

// Colors is a set of colors. The zero value is colorless.
type Colors uint8

const (
	Colorless    Colors = 0
	Multicolored Colors = 1 << 7 // any two or more colors, without naming them
)

// ColorsOf builds a color set.
func ColorsOf(colors ...Color) Colors {
	var set Colors
	for _, c := range colors {
		set |= c.bit()
	}
	return set
}

func (c Colors) Has(color Color) bool {
	return c&color.bit() != 0
}

func (c Colors) IsMulticolored() bool {
	return c&Multicolored != 0
}

func (c Colors) IsColorless() bool {
	return c == Colorless
}

// String renders the set the way search expects it: "m", "c" or the letters in wubrg order.
func (c Colors) String() string {
	switch {
	case c.IsMulticolored():
		return "m"
	case c.IsColorless():
		return "c"
	}

	var sb strings.Builder
	for _, color := range AllColors {
		if c.Has(color) {
			sb.WriteString(color.String())
		}
	}
	return sb.String()
}
