package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"scryfall/client/internal/config"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// Fetcher performs GET requests against the API.
type Fetcher interface {
	// FetchJSON decodes a 2xx body into dest.
	FetchJSON(ctx context.Context, url string, dest any) error
	// FetchRaw returns the 2xx body unread. The caller closes it.
	FetchRaw(ctx context.Context, url string) (io.ReadCloser, error)
}

type httpFetcher struct {
	rl         ratelimit.Limiter
	httpClient *resty.Client
	// rawClient streams bulk bodies and has no overall timeout.
	rawClient *resty.Client
}

func NewFetcher(cfg config.ScryfallConfig) Fetcher {
	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &httpFetcher{
		rl:         rl,
		httpClient: newRestyClient(cfg).SetTimeout(time.Duration(cfg.Timeout) * time.Second),
		rawClient:  newRestyClient(cfg),
	}
}

func newRestyClient(cfg config.ScryfallConfig) *resty.Client {
	return resty.New().
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json;q=0.9,*/*;q=0.8")
}

func (f *httpFetcher) FetchJSON(ctx context.Context, url string, dest any) error {
	f.rl.Take()

	resp, err := f.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return transportError(ctx, url, err)
	}

	if resp.IsError() {
		return newProviderError(resp.StatusCode(), resp.Bytes())
	}

	if err := json.Unmarshal(resp.Bytes(), dest); err != nil {
		return &DecodeError{URL: url, Err: err}
	}

	log.Debugf("Fetched %s (%d bytes in %v)", url, resp.Size(), resp.Duration())
	return nil
}

func (f *httpFetcher) FetchRaw(ctx context.Context, url string) (io.ReadCloser, error) {
	f.rl.Take()

	resp, err := f.rawClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, transportError(ctx, url, err)
	}

	if resp.IsError() {
		defer resp.Body.Close()
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, &TransportError{URL: url, Err: fmt.Errorf("failed to read error body: %w", readErr)}
		}
		return nil, newProviderError(resp.StatusCode(), body)
	}

	return resp.Body, nil
}

func transportError(ctx context.Context, url string, err error) error {
	if ctx.Err() != nil {
		return &TransportError{URL: url, Err: fmt.Errorf("request cancelled: %w", ctx.Err())}
	}
	return &TransportError{URL: url, Err: err}
}
