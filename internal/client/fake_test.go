package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
)

// fakeFetcher serves canned JSON bodies by URL.
type fakeFetcher struct {
	mu     sync.Mutex
	bodies map[string]string
	errs   map[string]error
	calls  []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{bodies: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeFetcher) serve(url, body string) *fakeFetcher {
	f.bodies[url] = body
	return f
}

func (f *fakeFetcher) fail(url string, err error) *fakeFetcher {
	f.errs[url] = err
	return f
}

func (f *fakeFetcher) lookup(url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, url)
	if err, ok := f.errs[url]; ok {
		return "", err
	}
	body, ok := f.bodies[url]
	if !ok {
		return "", &ProviderError{Status: 404, Code: "not_found", Details: "no fake for " + url}
	}
	return body, nil
}

func (f *fakeFetcher) FetchJSON(_ context.Context, url string, dest any) error {
	body, err := f.lookup(url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), dest); err != nil {
		return &DecodeError{URL: url, Err: err}
	}
	return nil
}

func (f *fakeFetcher) FetchRaw(_ context.Context, url string) (io.ReadCloser, error) {
	body, err := f.lookup(url)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// page renders a list page of integers.
func page(data []int, next string, total int) string {
	items := make([]string, len(data))
	for i, d := range data {
		items[i] = fmt.Sprint(d)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `{"object":"list","data":[%s],"has_more":%t`, strings.Join(items, ","), next != "")
	if next != "" {
		fmt.Fprintf(&b, `,"next_page":%q`, next)
	}
	if total > 0 {
		fmt.Fprintf(&b, `,"total_cards":%d`, total)
	}
	b.WriteString("}")
	return b.String()
}
