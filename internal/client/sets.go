package client

import (
	"context"
	"fmt"
	"strconv"

	"scryfall/client/internal/domain"

	"github.com/google/uuid"
)

func (c *scryfallClient) Sets(ctx context.Context) (*ListIter[domain.Set], error) {
	it, err := fetchList[domain.Set](ctx, c, nil, "sets")
	return it, wrap(err, "sets")
}

func (c *scryfallClient) Set(ctx context.Context, code domain.SetCode) (domain.Set, error) {
	set, err := fetchOne[domain.Set](ctx, c, nil, "sets", code.String())
	return set, wrap(err, "set "+code.String())
}

func (c *scryfallClient) SetByTcgplayerID(ctx context.Context, id int) (domain.Set, error) {
	set, err := fetchOne[domain.Set](ctx, c, nil, "sets", "tcgplayer", strconv.Itoa(id))
	return set, wrap(err, describe("set", "tcgplayer", strconv.Itoa(id)))
}

func (c *scryfallClient) SetByID(ctx context.Context, id uuid.UUID) (domain.Set, error) {
	set, err := fetchOne[domain.Set](ctx, c, nil, "sets", id.String())
	return set, wrap(err, "set "+id.String())
}

// SetCards iterates the cards of set through its search_uri.
func (c *scryfallClient) SetCards(ctx context.Context, set domain.Set) (*ListIter[domain.Card], error) {
	uri, err := NewURI[List[domain.Card]](set.SearchURI)
	if err != nil {
		return nil, &DecodeError{URL: set.URI, Err: fmt.Errorf("bad search_uri: %w", err)}
	}
	it, err := FetchIter(ctx, c.fetcher, uri)
	return it, wrap(err, "cards of set "+set.Code.String())
}

func (c *scryfallClient) rulings(ctx context.Context, segments ...string) (*ListIter[domain.Ruling], error) {
	segments = append(segments, "rulings")
	it, err := fetchList[domain.Ruling](ctx, c, nil, segments...)
	return it, wrap(err, describe(segments...))
}

func (c *scryfallClient) RulingsByCardID(ctx context.Context, id uuid.UUID) (*ListIter[domain.Ruling], error) {
	return c.rulings(ctx, "cards", id.String())
}

func (c *scryfallClient) RulingsByMultiverseID(ctx context.Context, id int) (*ListIter[domain.Ruling], error) {
	return c.rulings(ctx, "cards", "multiverse", strconv.Itoa(id))
}

func (c *scryfallClient) RulingsByMtgoID(ctx context.Context, id int) (*ListIter[domain.Ruling], error) {
	return c.rulings(ctx, "cards", "mtgo", strconv.Itoa(id))
}

func (c *scryfallClient) RulingsByArenaID(ctx context.Context, id int) (*ListIter[domain.Ruling], error) {
	return c.rulings(ctx, "cards", "arena", strconv.Itoa(id))
}

func (c *scryfallClient) RulingsBySetNumber(ctx context.Context, set domain.SetCode, number string) (*ListIter[domain.Ruling], error) {
	return c.rulings(ctx, "cards", set.String(), number)
}

func (c *scryfallClient) Catalog(ctx context.Context, kind domain.CatalogKind) (domain.Catalog, error) {
	catalog, err := fetchOne[domain.Catalog](ctx, c, nil, "catalog", kind.String())
	return catalog, wrap(err, "catalog "+kind.String())
}
