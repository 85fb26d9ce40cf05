package search

import (
	"net/url"
	"strconv"
)

// UniqueStrategy controls how duplicate results are collapsed.
type UniqueStrategy int

const (
	UniqueCards  UniqueStrategy = iota // one result per card (default)
	UniqueArt                          // one result per illustration
	UniquePrints                       // every printing
)

func (u UniqueStrategy) String() string {
	switch u {
	case UniqueArt:
		return "art"
	case UniquePrints:
		return "prints"
	default:
		return "cards"
	}
}

// SortOrder is the field results are sorted by.
type SortOrder int

const (
	OrderName SortOrder = iota
	OrderSet
	OrderReleased
	OrderRarity
	OrderColor
	OrderUsd
	OrderTix
	OrderEur
	OrderCmc
	OrderPower
	OrderToughness
	OrderEdhrec
	OrderArtist
)

var sortOrderNames = [...]string{
	OrderName:      "name",
	OrderSet:       "set",
	OrderReleased:  "released",
	OrderRarity:    "rarity",
	OrderColor:     "color",
	OrderUsd:       "usd",
	OrderTix:       "tix",
	OrderEur:       "eur",
	OrderCmc:       "cmc",
	OrderPower:     "power",
	OrderToughness: "toughness",
	OrderEdhrec:    "edhrec",
	OrderArtist:    "artist",
}

func (o SortOrder) String() string {
	if o < 0 || int(o) >= len(sortOrderNames) {
		return sortOrderNames[OrderName]
	}
	return sortOrderNames[o]
}

// ParseSortOrder parses a sort order name, falling back to OrderName.
func ParseSortOrder(s string) SortOrder {
	for i, name := range sortOrderNames {
		if name == s {
			return SortOrder(i)
		}
	}
	return OrderName
}

type SortDirection int

const (
	DirAuto SortDirection = iota
	DirAscending
	DirDescending
)

func (d SortDirection) String() string {
	switch d {
	case DirAscending:
		return "asc"
	case DirDescending:
		return "desc"
	default:
		return "auto"
	}
}

// ParseSortDirection parses "asc" or "desc", anything else is DirAuto.
func ParseSortDirection(s string) SortDirection {
	switch s {
	case "asc":
		return DirAscending
	case "desc":
		return DirDescending
	default:
		return DirAuto
	}
}

// ParseUniqueStrategy parses "art" or "prints", anything else is UniqueCards.
func ParseUniqueStrategy(s string) UniqueStrategy {
	switch s {
	case "art":
		return UniqueArt
	case "prints":
		return UniquePrints
	default:
		return UniqueCards
	}
}

// SearchOptions is a query plus the paging, sorting and inclusion settings
// of an advanced search. Setters overwrite the previous value and return the
// options for chaining.
type SearchOptions struct {
	query        Query
	unique       UniqueStrategy
	order        SortOrder
	dir          SortDirection
	page         int
	extras       bool
	multilingual bool
	variations   bool
}

// NewSearchOptions returns options for the first page of an empty query.
func NewSearchOptions() *SearchOptions {
	return &SearchOptions{page: 1}
}

// WithQuery returns default options searching for q.
func WithQuery(q Query) *SearchOptions {
	return NewSearchOptions().Query(q)
}

// Query replaces the whole query. Combine fragments with And/Or first.
func (o *SearchOptions) Query(q Query) *SearchOptions {
	o.query = q
	return o
}

// Page sets the 1-based page number. Page 0 is the same as page 1 on the server.
func (o *SearchOptions) Page(page int) *SearchOptions {
	o.page = page
	return o
}

func (o *SearchOptions) Unique(u UniqueStrategy) *SearchOptions {
	o.unique = u
	return o
}

// Sort sets both the order and the direction.
func (o *SearchOptions) Sort(order SortOrder, dir SortDirection) *SearchOptions {
	return o.Order(order).Direction(dir)
}

func (o *SearchOptions) Order(order SortOrder) *SearchOptions {
	o.order = order
	return o
}

func (o *SearchOptions) Direction(dir SortDirection) *SearchOptions {
	o.dir = dir
	return o
}

// Extras includes tokens, planes and other extra cards.
func (o *SearchOptions) Extras(include bool) *SearchOptions {
	o.extras = include
	return o
}

// Multilingual includes printings in every language.
func (o *SearchOptions) Multilingual(include bool) *SearchOptions {
	o.multilingual = include
	return o
}

// Variations includes rare printing variations.
func (o *SearchOptions) Variations(include bool) *SearchOptions {
	o.variations = include
	return o
}

// GetQuery returns the query being searched.
func (o *SearchOptions) GetQuery() Query {
	return o.query
}

// Values encodes the options. Only settings that differ from their zero
// value are included; q is always present.
func (o *SearchOptions) Values() url.Values {
	values := url.Values{}
	values.Set("q", o.query.String())

	if o.unique != UniqueCards {
		values.Set("unique", o.unique.String())
	}
	if o.order != OrderName {
		values.Set("order", o.order.String())
	}
	if o.dir != DirAuto {
		values.Set("dir", o.dir.String())
	}
	if o.page != 0 {
		values.Set("page", strconv.Itoa(o.page))
	}
	if o.extras {
		values.Set("include_extras", "true")
	}
	if o.multilingual {
		values.Set("include_multilingual", "true")
	}
	if o.variations {
		values.Set("include_variations", "true")
	}

	return values
}
