package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
)

// URI is a link returned by the API (or built by this package) that resolves
// to a T when fetched. It marshals as a plain JSON string.
type URI[T any] struct {
	url string
}

// NewURI validates raw as an absolute URL.
func NewURI[T any](raw string) (URI[T], error) {
	u, err := url.Parse(raw)
	if err != nil {
		return URI[T]{}, fmt.Errorf("failed to parse uri %q: %w", raw, err)
	}
	if !u.IsAbs() {
		return URI[T]{}, fmt.Errorf("uri %q is not absolute", raw)
	}
	return URI[T]{url: u.String()}, nil
}

func (u URI[T]) String() string {
	return u.url
}

func (u URI[T]) IsZero() bool {
	return u.url == ""
}

func (u URI[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.url)
}

func (u *URI[T]) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewURI[T](raw)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Fetch requests the resource and decodes it.
func (u URI[T]) Fetch(ctx context.Context, f Fetcher) (T, error) {
	var out T
	if err := f.FetchJSON(ctx, u.url, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// FetchRaw requests the resource and returns the body unread.
func (u URI[T]) FetchRaw(ctx context.Context, f Fetcher) (io.ReadCloser, error) {
	return f.FetchRaw(ctx, u.url)
}

// FetchIter fetches the first page of a list and returns an iterator that
// requests the following pages as it goes.
func FetchIter[T any](ctx context.Context, f Fetcher, u URI[List[T]]) (*ListIter[T], error) {
	first, err := u.Fetch(ctx, f)
	if err != nil {
		return nil, err
	}
	return NewListIter(f, first)
}

// FetchAll collects every item of every page. Unlike iteration it fails on
// the first page that cannot be fetched.
func FetchAll[T any](ctx context.Context, f Fetcher, u URI[List[T]]) ([]T, error) {
	var items []T

	next := &u
	for page := 1; next != nil; page++ {
		list, err := next.Fetch(ctx, f)
		if err != nil {
			return items, fmt.Errorf("failed to fetch page %d: %w", page, err)
		}
		if err := list.Validate(); err != nil {
			return items, fmt.Errorf("page %d: %w", page, err)
		}
		items = append(items, list.Data...)
		next = list.NextPage
	}

	return items, nil
}
