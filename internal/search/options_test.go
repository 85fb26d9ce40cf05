package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchOptions_Defaults(t *testing.T) {
	values := NewSearchOptions().Values()

	assert.Equal(t, url.Values{"q": {""}, "page": {"1"}}, values)
}

func TestSearchOptions_Sparse(t *testing.T) {
	tests := []struct {
		name string
		opts *SearchOptions
		want url.Values
	}{
		{
			name: "query only",
			opts: WithQuery(Cmc(3)),
			want: url.Values{"q": {"cmc:3"}, "page": {"1"}},
		},
		{
			name: "page zero is omitted",
			opts: WithQuery(Cmc(3)).Page(0),
			want: url.Values{"q": {"cmc:3"}},
		},
		{
			name: "defaults set explicitly stay omitted",
			opts: WithQuery(Cmc(3)).Unique(UniqueCards).Sort(OrderName, DirAuto).Extras(false),
			want: url.Values{"q": {"cmc:3"}, "page": {"1"}},
		},
		{
			name: "everything",
			opts: NewSearchOptions().
				Query(Name("goblin")).
				Page(3).
				Unique(UniquePrints).
				Sort(OrderReleased, DirDescending).
				Extras(true).
				Multilingual(true).
				Variations(true),
			want: url.Values{
				"q":                    {`name:"goblin"`},
				"page":                 {"3"},
				"unique":               {"prints"},
				"order":                {"released"},
				"dir":                  {"desc"},
				"include_extras":       {"true"},
				"include_multilingual": {"true"},
				"include_variations":   {"true"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Values())
		})
	}
}

func TestSearchOptions_Overwrite(t *testing.T) {
	opts := WithQuery(Cmc(1)).
		Query(Cmc(2)).
		Order(OrderUsd).
		Order(OrderEdhrec).
		Direction(DirAscending).
		Unique(UniqueArt)

	values := opts.Values()
	assert.Equal(t, "cmc:2", values.Get("q"))
	assert.Equal(t, "edhrec", values.Get("order"))
	assert.Equal(t, "asc", values.Get("dir"))
	assert.Equal(t, "art", values.Get("unique"))
	assert.Equal(t, Cmc(2), opts.GetQuery())
}

func TestParseEnums(t *testing.T) {
	assert.Equal(t, OrderArtist, ParseSortOrder("artist"))
	assert.Equal(t, OrderName, ParseSortOrder("nope"))
	assert.Equal(t, DirDescending, ParseSortDirection("desc"))
	assert.Equal(t, DirAuto, ParseSortDirection(""))
	assert.Equal(t, UniqueArt, ParseUniqueStrategy("art"))
	assert.Equal(t, UniqueCards, ParseUniqueStrategy("cards"))

	for o := OrderName; o <= OrderArtist; o++ {
		assert.Equal(t, o, ParseSortOrder(o.String()))
	}
}

func TestRaw(t *testing.T) {
	assert.Equal(t, "t:goblin", Raw("t:goblin").Values().Get("q"))
}
