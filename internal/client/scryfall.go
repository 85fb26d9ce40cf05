package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"scryfall/client/internal/config"
	"scryfall/client/internal/domain"
	"scryfall/client/internal/search"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// ScryfallClient exposes the Scryfall REST endpoints.
type ScryfallClient interface {
	// Fetcher is the transport used by every call, for following URIs
	// found in responses.
	Fetcher() Fetcher

	SearchURI(s search.Search) URI[List[domain.Card]]
	Search(ctx context.Context, s search.Search) (*ListIter[domain.Card], error)
	SearchPages(ctx context.Context, s search.Search) (*PageIter[domain.Card], error)
	SearchAll(ctx context.Context, s search.Search) ([]domain.Card, error)
	Named(ctx context.Context, name string) (domain.Card, error)
	NamedInSet(ctx context.Context, name string, set domain.SetCode) (domain.Card, error)
	NamedFuzzy(ctx context.Context, name string) (domain.Card, error)
	Random(ctx context.Context, q search.Query) (domain.Card, error)
	Card(ctx context.Context, id uuid.UUID) (domain.Card, error)
	CardBySetNumber(ctx context.Context, set domain.SetCode, number string) (domain.Card, error)
	CardByMultiverseID(ctx context.Context, id int) (domain.Card, error)
	CardByMtgoID(ctx context.Context, id int) (domain.Card, error)
	CardByArenaID(ctx context.Context, id int) (domain.Card, error)
	CardByTcgplayerID(ctx context.Context, id int) (domain.Card, error)
	Autocomplete(ctx context.Context, prefix string) (domain.Catalog, error)

	Sets(ctx context.Context) (*ListIter[domain.Set], error)
	Set(ctx context.Context, code domain.SetCode) (domain.Set, error)
	SetByTcgplayerID(ctx context.Context, id int) (domain.Set, error)
	SetByID(ctx context.Context, id uuid.UUID) (domain.Set, error)
	SetCards(ctx context.Context, set domain.Set) (*ListIter[domain.Card], error)

	RulingsByCardID(ctx context.Context, id uuid.UUID) (*ListIter[domain.Ruling], error)
	RulingsByMultiverseID(ctx context.Context, id int) (*ListIter[domain.Ruling], error)
	RulingsByMtgoID(ctx context.Context, id int) (*ListIter[domain.Ruling], error)
	RulingsByArenaID(ctx context.Context, id int) (*ListIter[domain.Ruling], error)
	RulingsBySetNumber(ctx context.Context, set domain.SetCode, number string) (*ListIter[domain.Ruling], error)

	Catalog(ctx context.Context, kind domain.CatalogKind) (domain.Catalog, error)

	BulkFiles(ctx context.Context) ([]domain.BulkDataFile, error)
	BulkFile(ctx context.Context, kind domain.BulkType) (domain.BulkDataFile, error)
	BulkFileByID(ctx context.Context, id uuid.UUID) (domain.BulkDataFile, error)
	DownloadBulk(ctx context.Context, file domain.BulkDataFile, fs afero.Fs, path string) (int64, error)
}

type scryfallClient struct {
	fetcher Fetcher
	baseURL string
}

func NewScryfallClient(cfg config.ScryfallConfig) ScryfallClient {
	return NewScryfallClientWithFetcher(cfg.BaseURL, NewFetcher(cfg))
}

func NewScryfallClientWithFetcher(baseURL string, f Fetcher) ScryfallClient {
	return &scryfallClient{
		fetcher: f,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *scryfallClient) Fetcher() Fetcher {
	return c.fetcher
}

// endpoint joins path segments onto the base URL, escaping each one.
func (c *scryfallClient) endpoint(query url.Values, segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}
	return b.String()
}

func fetchOne[T any](ctx context.Context, c *scryfallClient, query url.Values, segments ...string) (T, error) {
	var out T
	endpoint := c.endpoint(query, segments...)
	if err := c.fetcher.FetchJSON(ctx, endpoint, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func fetchList[T any](ctx context.Context, c *scryfallClient, query url.Values, segments ...string) (*ListIter[T], error) {
	first, err := fetchOne[List[T]](ctx, c, query, segments...)
	if err != nil {
		return nil, err
	}
	return NewListIter(c.fetcher, first)
}

func describe(segments ...string) string {
	return strings.Join(segments, "/")
}

func wrap(err error, what string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to fetch %s: %w", what, err)
}
