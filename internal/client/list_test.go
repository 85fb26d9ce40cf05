package client

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	page1 = "https://api.test/list?page=1"
	page2 = "https://api.test/list?page=2"
	page3 = "https://api.test/list?page=3"
)

func threePages() *fakeFetcher {
	return newFakeFetcher().
		serve(page1, page([]int{1, 2}, page2, 5)).
		serve(page2, page([]int{3, 4}, page3, 5)).
		serve(page3, page([]int{5}, "", 5))
}

func mustURI[T any](t *testing.T, raw string) URI[T] {
	t.Helper()
	u, err := NewURI[T](raw)
	require.NoError(t, err)
	return u
}

func TestURI_JSON(t *testing.T) {
	u := mustURI[List[int]](t, page1)

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, `"https://api.test/list?page=1"`, string(data))

	var back URI[List[int]]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, u, back)

	assert.Error(t, json.Unmarshal([]byte(`"/relative"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`42`), &back))
}

func TestList_Validate(t *testing.T) {
	next := mustURI[List[int]](t, page2)

	tests := []struct {
		name    string
		list    List[int]
		wantErr bool
	}{
		{name: "last page", list: List[int]{HasMore: false}},
		{name: "more pages", list: List[int]{HasMore: true, NextPage: &next}},
		{name: "has_more without link", list: List[int]{HasMore: true}, wantErr: true},
		{name: "link without has_more", list: List[int]{NextPage: &next}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.list.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvariant)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestListIter_FollowsPages(t *testing.T) {
	ctx := context.Background()
	f := threePages()

	it, err := FetchIter(ctx, f, mustURI[List[int]](t, page1))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, it.Collect(ctx))
	assert.NoError(t, it.Err())
	assert.Equal(t, 3, it.Page())

	_, ok := it.Next(ctx)
	assert.False(t, ok)
	assert.Equal(t, 3, f.callCount())
}

func TestListIter_FetchesLazily(t *testing.T) {
	ctx := context.Background()
	f := threePages()

	it, err := FetchIter(ctx, f, mustURI[List[int]](t, page1))
	require.NoError(t, err)

	for range 2 {
		_, ok := it.Next(ctx)
		require.True(t, ok)
	}
	assert.Equal(t, 1, f.callCount())

	item, ok := it.Next(ctx)
	require.True(t, ok)
	assert.Equal(t, 3, item)
	assert.Equal(t, 2, f.callCount())
}

func TestListIter_InvariantOnFirstPage(t *testing.T) {
	f := newFakeFetcher().serve(page1, `{"data":[1],"has_more":true}`)

	_, err := FetchIter(context.Background(), f, mustURI[List[int]](t, page1))
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestListIter_TruncatesOnFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	f := threePages().fail(page2, &TransportError{URL: page2, Err: boom})

	it, err := FetchIter(ctx, f, mustURI[List[int]](t, page1))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, it.Collect(ctx))
	require.Error(t, it.Err())
	assert.ErrorIs(t, it.Err(), ErrTransport)
	assert.ErrorIs(t, it.Err(), boom)

	// terminal: no retry
	_, ok := it.Next(ctx)
	assert.False(t, ok)
	assert.Equal(t, 2, f.callCount())

	lower, upper := it.SizeHint()
	assert.Equal(t, 0, lower)
	assert.Equal(t, mo.Some(0), upper)
}

func TestListIter_InvariantOnLaterPage(t *testing.T) {
	ctx := context.Background()
	f := threePages().serve(page2, `{"data":[3],"has_more":false,"next_page":"https://api.test/list?page=3"}`)

	it, err := FetchIter(ctx, f, mustURI[List[int]](t, page1))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, it.Collect(ctx))
	assert.ErrorIs(t, it.Err(), ErrInvariant)
}

func TestListIter_SizeHint(t *testing.T) {
	ctx := context.Background()

	t.Run("with total", func(t *testing.T) {
		it, err := FetchIter(ctx, threePages(), mustURI[List[int]](t, page1))
		require.NoError(t, err)

		lower, upper := it.SizeHint()
		assert.Equal(t, 5, lower)
		assert.True(t, upper.IsAbsent())

		it.Collect(ctx)
		lower, upper = it.SizeHint()
		assert.Equal(t, 0, lower)
		assert.Equal(t, mo.Some(0), upper)
	})

	t.Run("without total", func(t *testing.T) {
		f := newFakeFetcher().
			serve(page1, page([]int{1, 2, 3}, page2, 0)).
			serve(page2, page([]int{4}, "", 0))

		it, err := FetchIter(ctx, f, mustURI[List[int]](t, page1))
		require.NoError(t, err)

		lower, upper := it.SizeHint()
		assert.Equal(t, 3, lower)
		assert.True(t, upper.IsAbsent())

		for range 4 {
			_, ok := it.Next(ctx)
			require.True(t, ok)
		}
		lower, upper = it.SizeHint()
		assert.Equal(t, 0, lower)
		assert.Equal(t, mo.Some(0), upper)
	})

	t.Run("last page buffered", func(t *testing.T) {
		f := newFakeFetcher().serve(page1, page([]int{1, 2}, "", 0))

		it, err := FetchIter(ctx, f, mustURI[List[int]](t, page1))
		require.NoError(t, err)

		_, upper := it.SizeHint()
		assert.Equal(t, mo.Some(2), upper)
	})
}

func TestListIter_All(t *testing.T) {
	ctx := context.Background()
	it, err := FetchIter(ctx, threePages(), mustURI[List[int]](t, page1))
	require.NoError(t, err)

	var got []int
	for item := range it.All(ctx) {
		got = append(got, item)
		if item == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	next, ok := it.Next(ctx)
	require.True(t, ok)
	assert.Equal(t, 4, next)
}

func drainResults(ch <-chan mo.Result[int]) ([]int, error) {
	var out []int
	for res := range ch {
		item, err := res.Get()
		if err != nil {
			return out, err
		}
		out = append(out, item)
	}
	return out, nil
}

func TestListIter_Stream(t *testing.T) {
	ctx := context.Background()

	t.Run("all pages", func(t *testing.T) {
		it, err := FetchIter(ctx, threePages(), mustURI[List[int]](t, page1))
		require.NoError(t, err)

		got, err := drainResults(it.Stream(ctx))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	})

	t.Run("failure is the last element", func(t *testing.T) {
		f := threePages().fail(page3, &ProviderError{Status: 500, Details: "down"})
		it, err := FetchIter(ctx, f, mustURI[List[int]](t, page1))
		require.NoError(t, err)

		got, err := drainResults(it.Stream(ctx))
		assert.Equal(t, []int{1, 2, 3, 4}, got)
		assert.ErrorIs(t, err, ErrProvider)
	})
}

func TestListIter_StreamBuffered(t *testing.T) {
	ctx := context.Background()

	for _, pages := range []int{0, 1, 2, 5} {
		it, err := FetchIter(ctx, threePages(), mustURI[List[int]](t, page1))
		require.NoError(t, err)

		got, err := drainResults(it.StreamBuffered(ctx, pages))
		require.NoError(t, err, "pages=%d", pages)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got, "pages=%d", pages)
	}

	f := threePages().fail(page2, errors.New("boom"))
	it, err := FetchIter(ctx, f, mustURI[List[int]](t, page1))
	require.NoError(t, err)

	got, err := drainResults(it.StreamBuffered(ctx, 2))
	assert.Equal(t, []int{1, 2}, got)
	assert.EqualError(t, err, "failed to fetch page 2: boom")
}

func TestListIter_StreamAbandoned(t *testing.T) {
	streams := map[string]func(context.Context, *ListIter[int]) <-chan mo.Result[int]{
		"stream":   func(ctx context.Context, it *ListIter[int]) <-chan mo.Result[int] { return it.Stream(ctx) },
		"buffered": func(ctx context.Context, it *ListIter[int]) <-chan mo.Result[int] { return it.StreamBuffered(ctx, 1) },
	}

	for name, stream := range streams {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			it, err := FetchIter(ctx, threePages(), mustURI[List[int]](t, page1))
			require.NoError(t, err)

			ch := stream(ctx, it)
			assert.Equal(t, 1, (<-ch).MustGet())

			// the consumer walks away; cancelling releases the goroutines
			cancel()
			require.Eventually(t, func() bool {
				_, ok := <-ch
				return !ok
			}, time.Second, time.Millisecond)
		})
	}
}

func TestPageIter(t *testing.T) {
	ctx := context.Background()
	f := threePages()

	first, err := mustURI[List[int]](t, page1).Fetch(ctx, f)
	require.NoError(t, err)

	pages := NewPageIter(f, first)
	var sizes []int
	for {
		p, ok := pages.Next(ctx)
		if !ok {
			break
		}
		sizes = append(sizes, len(p.Data))
	}

	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Equal(t, 3, pages.Page())
	assert.NoError(t, pages.Err())
}

func TestPageIter_StopsOnFailure(t *testing.T) {
	ctx := context.Background()
	f := threePages().fail(page2, errors.New("boom"))

	first, err := mustURI[List[int]](t, page1).Fetch(ctx, f)
	require.NoError(t, err)

	pages := NewPageIter(f, first)
	p, ok := pages.Next(ctx)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, p.Data)

	_, ok = pages.Next(ctx)
	assert.False(t, ok)
	assert.ErrorContains(t, pages.Err(), "boom")
}

func TestFetchAll(t *testing.T) {
	ctx := context.Background()

	items, err := FetchAll(ctx, threePages(), mustURI[List[int]](t, page1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, items)

	f := threePages().fail(page3, errors.New("boom"))
	items, err = FetchAll(ctx, f, mustURI[List[int]](t, page1))
	assert.ErrorContains(t, err, "failed to fetch page 3")
	assert.Equal(t, []int{1, 2, 3, 4}, items)
}
