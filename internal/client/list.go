package client

import (
	"context"
	"fmt"
	"iter"

	"github.com/samber/mo"
	log "github.com/sirupsen/logrus"
)

// List is one page of a paginated result.
type List[T any] struct {
	Data       []T            `json:"data"`
	HasMore    bool           `json:"has_more"`
	NextPage   *URI[List[T]]  `json:"next_page,omitempty"`
	TotalCards mo.Option[int] `json:"total_cards"`
	Warnings   []string       `json:"warnings,omitempty"`
}

// Validate checks that has_more agrees with the presence of next_page.
func (l *List[T]) Validate() error {
	if l.HasMore != (l.NextPage != nil) {
		return &InvariantError{
			Reason: fmt.Sprintf("list has_more=%t but next_page present=%t", l.HasMore, l.NextPage != nil),
		}
	}
	return nil
}

// ListIter walks the items of a paginated list, fetching the next page when
// the current one runs out.
//
// A page that fails to load ends the iteration: the error is logged and kept
// in Err, and no further pages are requested. Stream reports the same failure
// as its last element instead.
type ListIter[T any] struct {
	fetcher   Fetcher
	items     []T
	pos       int
	next      *URI[List[T]]
	page      int
	remaining mo.Option[int]
	err       error
}

// NewListIter starts iterating at list, which counts as page 1.
func NewListIter[T any](f Fetcher, list List[T]) (*ListIter[T], error) {
	if err := list.Validate(); err != nil {
		return nil, err
	}
	return &ListIter[T]{
		fetcher:   f,
		items:     list.Data,
		next:      list.NextPage,
		page:      1,
		remaining: list.TotalCards,
	}, nil
}

// Next returns the next item, or false once the list is exhausted.
func (it *ListIter[T]) Next(ctx context.Context) (T, bool) {
	res, ok := it.advance(ctx)
	if !ok {
		var zero T
		return zero, false
	}
	item, err := res.Get()
	if err != nil {
		log.Warnf("⚠️ Stopped listing after page %d: %v", it.page, err)
		var zero T
		return zero, false
	}
	return item, true
}

// advance yields the next buffered item or loads the next page. A fetch
// failure is returned once, after which the iterator is exhausted.
func (it *ListIter[T]) advance(ctx context.Context) (mo.Result[T], bool) {
	for {
		if it.pos < len(it.items) {
			item := it.items[it.pos]
			it.pos++
			it.remaining = it.remaining.Map(func(r int) (int, bool) { return max(r-1, 0), true })
			return mo.Ok(item), true
		}

		if it.next == nil {
			return mo.Result[T]{}, false
		}

		if err := it.loadNext(ctx); err != nil {
			it.err = err
			it.next = nil
			it.remaining = mo.Some(0)
			return mo.Err[T](err), true
		}
	}
}

func (it *ListIter[T]) loadNext(ctx context.Context) error {
	list, err := it.next.Fetch(ctx, it.fetcher)
	if err != nil {
		return fmt.Errorf("failed to fetch page %d: %w", it.page+1, err)
	}
	if err := list.Validate(); err != nil {
		return fmt.Errorf("page %d: %w", it.page+1, err)
	}

	skipped := len(it.items) - it.pos
	it.items = list.Data
	it.pos = 0
	it.next = list.NextPage
	it.page++
	it.remaining = it.remaining.Map(func(r int) (int, bool) { return max(r-skipped, 0), true })
	if it.remaining.IsAbsent() {
		it.remaining = list.TotalCards
	}

	log.Debugf("Loaded page %d with %d items", it.page, len(list.Data))
	return nil
}

// Err returns the error that ended the iteration early, if any.
func (it *ListIter[T]) Err() error {
	return it.err
}

// Page is the number of the page currently buffered, starting at 1.
func (it *ListIter[T]) Page() int {
	return it.page
}

// SizeHint returns a lower bound on the items left and, once the last page
// is buffered, the exact count.
func (it *ListIter[T]) SizeHint() (int, mo.Option[int]) {
	buffered := len(it.items) - it.pos

	lower := buffered
	if total, ok := it.remaining.Get(); ok {
		lower = max(total, buffered)
	}

	if it.next != nil {
		return lower, mo.None[int]()
	}
	return buffered, mo.Some(buffered)
}

// All ranges over the remaining items with the same truncation rules as Next.
func (it *ListIter[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := it.Next(ctx)
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice.
func (it *ListIter[T]) Collect(ctx context.Context) []T {
	var out []T
	for item := range it.All(ctx) {
		out = append(out, item)
	}
	return out
}

// Stream drains the iterator on a new goroutine. A page fetch failure is sent
// as the final element. The channel is closed when the iterator is exhausted
// or ctx is cancelled; the iterator must not be used directly afterwards.
//
// A consumer that stops reading before the channel is closed must cancel
// ctx. Until then the goroutine stays blocked on its next send.
func (it *ListIter[T]) Stream(ctx context.Context) <-chan mo.Result[T] {
	out := make(chan mo.Result[T])

	go func() {
		defer close(out)
		for {
			res, ok := it.advance(ctx)
			if !ok {
				return
			}
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
			if res.IsError() {
				return
			}
		}
	}()

	return out
}

// StreamBuffered is Stream with up to pages pages fetched ahead of the
// consumer. Items keep their order. As with Stream, abandoning the channel
// early requires cancelling ctx to release the goroutines.
func (it *ListIter[T]) StreamBuffered(ctx context.Context, pages int) <-chan mo.Result[T] {
	if pages < 1 {
		return it.Stream(ctx)
	}

	type page struct {
		items []T
		err   error
	}

	fetched := make(chan page, pages)
	go func() {
		defer close(fetched)

		current := page{items: it.items[it.pos:]}
		for {
			select {
			case fetched <- current:
			case <-ctx.Done():
				return
			}
			if current.err != nil || it.next == nil {
				return
			}
			if err := it.loadNext(ctx); err != nil {
				it.err = err
				it.next = nil
				current = page{err: err}
				continue
			}
			current = page{items: it.items}
		}
	}()

	out := make(chan mo.Result[T])
	go func() {
		defer close(out)
		for p := range fetched {
			results := make([]mo.Result[T], 0, len(p.items)+1)
			for _, item := range p.items {
				results = append(results, mo.Ok(item))
			}
			if p.err != nil {
				results = append(results, mo.Err[T](p.err))
			}
			for _, res := range results {
				select {
				case out <- res:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// PageIter walks whole pages. The page after the current one is requested as
// soon as the current one is handed out.
type PageIter[T any] struct {
	fetcher Fetcher
	current mo.Option[List[T]]
	page    int
	err     error
}

func NewPageIter[T any](f Fetcher, first List[T]) *PageIter[T] {
	return &PageIter[T]{fetcher: f, current: mo.Some(first)}
}

// Next returns the next page, or false when there are none left or the next
// page could not be fetched (see Err).
func (p *PageIter[T]) Next(ctx context.Context) (List[T], bool) {
	list, ok := p.current.Get()
	if !ok {
		return List[T]{}, false
	}
	p.page++
	p.current = mo.None[List[T]]()

	if list.NextPage != nil {
		nextList, err := list.NextPage.Fetch(ctx, p.fetcher)
		if err == nil {
			err = nextList.Validate()
		}
		if err != nil {
			p.err = fmt.Errorf("failed to fetch page %d: %w", p.page+1, err)
			log.Warnf("⚠️ %v", p.err)
		} else {
			p.current = mo.Some(nextList)
		}
	}

	return list, true
}

// Page is the number of the page last returned by Next.
func (p *PageIter[T]) Page() int {
	return p.page
}

func (p *PageIter[T]) Err() error {
	return p.err
}
