package client

import (
	"context"
	"net/url"
	"strconv"

	"scryfall/client/internal/domain"
	"scryfall/client/internal/search"

	"github.com/google/uuid"
)

// SearchURI returns the link to the first page of results for s.
func (c *scryfallClient) SearchURI(s search.Search) URI[List[domain.Card]] {
	return URI[List[domain.Card]]{url: c.endpoint(s.Values(), "cards", "search")}
}

func (c *scryfallClient) Search(ctx context.Context, s search.Search) (*ListIter[domain.Card], error) {
	it, err := FetchIter(ctx, c.fetcher, c.SearchURI(s))
	return it, wrap(err, "card search")
}

func (c *scryfallClient) SearchPages(ctx context.Context, s search.Search) (*PageIter[domain.Card], error) {
	first, err := c.SearchURI(s).Fetch(ctx, c.fetcher)
	if err != nil {
		return nil, wrap(err, "card search")
	}
	if err := first.Validate(); err != nil {
		return nil, err
	}
	return NewPageIter(c.fetcher, first), nil
}

func (c *scryfallClient) SearchAll(ctx context.Context, s search.Search) ([]domain.Card, error) {
	cards, err := FetchAll(ctx, c.fetcher, c.SearchURI(s))
	return cards, wrap(err, "card search")
}

func (c *scryfallClient) Named(ctx context.Context, name string) (domain.Card, error) {
	card, err := fetchOne[domain.Card](ctx, c, url.Values{"exact": {name}}, "cards", "named")
	return card, wrap(err, "card named "+strconv.Quote(name))
}

func (c *scryfallClient) NamedInSet(ctx context.Context, name string, set domain.SetCode) (domain.Card, error) {
	query := url.Values{"exact": {name}, "set": {set.String()}}
	card, err := fetchOne[domain.Card](ctx, c, query, "cards", "named")
	return card, wrap(err, "card named "+strconv.Quote(name)+" in "+set.String())
}

func (c *scryfallClient) NamedFuzzy(ctx context.Context, name string) (domain.Card, error) {
	card, err := fetchOne[domain.Card](ctx, c, url.Values{"fuzzy": {name}}, "cards", "named")
	return card, wrap(err, "card fuzzy named "+strconv.Quote(name))
}

// Random returns a random card matching q, or any card when q is empty.
func (c *scryfallClient) Random(ctx context.Context, q search.Query) (domain.Card, error) {
	var query url.Values
	if !q.IsEmpty() {
		query = url.Values{"q": {q.String()}}
	}
	card, err := fetchOne[domain.Card](ctx, c, query, "cards", "random")
	return card, wrap(err, "random card")
}

func (c *scryfallClient) Card(ctx context.Context, id uuid.UUID) (domain.Card, error) {
	card, err := fetchOne[domain.Card](ctx, c, nil, "cards", id.String())
	return card, wrap(err, "card "+id.String())
}

func (c *scryfallClient) CardBySetNumber(ctx context.Context, set domain.SetCode, number string) (domain.Card, error) {
	card, err := fetchOne[domain.Card](ctx, c, nil, "cards", set.String(), number)
	return card, wrap(err, describe("card", set.String(), number))
}

func (c *scryfallClient) cardByExternalID(ctx context.Context, kind string, id int) (domain.Card, error) {
	card, err := fetchOne[domain.Card](ctx, c, nil, "cards", kind, strconv.Itoa(id))
	return card, wrap(err, describe("card", kind, strconv.Itoa(id)))
}

func (c *scryfallClient) CardByMultiverseID(ctx context.Context, id int) (domain.Card, error) {
	return c.cardByExternalID(ctx, "multiverse", id)
}

func (c *scryfallClient) CardByMtgoID(ctx context.Context, id int) (domain.Card, error) {
	return c.cardByExternalID(ctx, "mtgo", id)
}

func (c *scryfallClient) CardByArenaID(ctx context.Context, id int) (domain.Card, error) {
	return c.cardByExternalID(ctx, "arena", id)
}

func (c *scryfallClient) CardByTcgplayerID(ctx context.Context, id int) (domain.Card, error) {
	return c.cardByExternalID(ctx, "tcgplayer", id)
}

// Autocomplete returns up to 20 card names starting with prefix.
func (c *scryfallClient) Autocomplete(ctx context.Context, prefix string) (domain.Catalog, error) {
	catalog, err := fetchOne[domain.Catalog](ctx, c, url.Values{"q": {prefix}}, "cards", "autocomplete")
	return catalog, wrap(err, "autocomplete")
}
