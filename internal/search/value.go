package search

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"scryfall/client/internal/domain"
)

// Regex marks a text value as a regular expression. It renders between slashes.
type Regex string

func (r Regex) String() string {
	return "/" + strings.ReplaceAll(string(r), "/", `\/`) + "/"
}

// DevotionCount is a devotion value: a mana symbol (mono or hybrid) and a count.
type DevotionCount struct {
	color  domain.Color
	hybrid domain.Color
	count  int
}

// MonoDevotion is devotion to a single color, such as {R}{R}{R}.
func MonoDevotion(color domain.Color, count int) DevotionCount {
	return DevotionCount{color: color, count: count}
}

// HybridDevotion is devotion counted with a hybrid symbol, such as {R/G}{R/G}.
func HybridDevotion(a, b domain.Color, count int) DevotionCount {
	return DevotionCount{color: a, hybrid: b, count: count}
}

func (d DevotionCount) Count() int {
	return d.count
}

// String renders the symbol count times; a zero count renders "0".
func (d DevotionCount) String() string {
	if d.count == 0 {
		return "0"
	}

	symbol := "{" + d.color.Symbol() + "}"
	if d.hybrid != "" {
		symbol = "{" + d.color.Symbol() + "/" + d.hybrid.Symbol() + "}"
	}
	return strings.Repeat(symbol, d.count)
}

// Numeric is a plain number. Numbers never render quoted.
type Numeric interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// NumericComparable is a number or numeric property, optionally under a comparison.
type NumericComparable interface {
	Numeric | NumProperty |
		Compare[int] | Compare[int8] | Compare[int16] | Compare[int32] | Compare[int64] |
		Compare[uint] | Compare[uint8] | Compare[uint16] | Compare[uint32] | Compare[uint64] |
		Compare[float32] | Compare[float64] | Compare[NumProperty]
}

// TextOrRegex is quoted text or a Regex.
type TextOrRegex interface {
	string | Regex
}

// ColorValue is anything naming a set of colors.
type ColorValue interface {
	string | domain.Color | domain.Colors | Guild | Shard | Wedge | FourColor |
		Compare[string] | Compare[domain.Color] | Compare[domain.Colors] |
		Compare[Guild] | Compare[Shard] | Compare[Wedge] | Compare[FourColor]
}

type DevotionValue interface {
	DevotionCount | Compare[DevotionCount]
}

type RarityValue interface {
	string | domain.Rarity | Compare[string] | Compare[domain.Rarity]
}

type SetValue interface {
	string | domain.SetCode
}

type SetTypeValue interface {
	string | domain.SetType
}

type FormatValue interface {
	string | domain.Format
}

type BorderColorValue interface {
	string | domain.BorderColor
}

type FrameValue interface {
	string | domain.Frame | domain.FrameEffect
}

// DateValue is a date, or a set whose release date is used.
type DateValue interface {
	SetValue | time.Time | domain.Date |
		Compare[string] | Compare[domain.SetCode] | Compare[time.Time] | Compare[domain.Date]
}

type GameValue interface {
	string | domain.Game
}

// render splits a value into its operator and its text form.
func render(v any) (CompareOp, string) {
	if c, ok := v.(comparison); ok {
		return c.compareOp(), renderValue(c.operand())
	}
	return opNone, renderValue(v)
}

func renderValue(v any) string {
	switch x := v.(type) {
	case string:
		return `"` + x + `"`
	case time.Time:
		return x.Format(domain.DateLayout)
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
