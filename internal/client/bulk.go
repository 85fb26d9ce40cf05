package client

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"scryfall/client/internal/domain"
	"scryfall/client/internal/jsonstream"

	"github.com/google/uuid"
	"github.com/samber/mo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func (c *scryfallClient) BulkFiles(ctx context.Context) ([]domain.BulkDataFile, error) {
	it, err := fetchList[domain.BulkDataFile](ctx, c, nil, "bulk-data")
	if err != nil {
		return nil, wrap(err, "bulk data files")
	}
	files := it.Collect(ctx)
	return files, wrap(it.Err(), "bulk data files")
}

func (c *scryfallClient) BulkFile(ctx context.Context, kind domain.BulkType) (domain.BulkDataFile, error) {
	file, err := fetchOne[domain.BulkDataFile](ctx, c, nil, "bulk-data", kind.String())
	return file, wrap(err, "bulk data "+kind.String())
}

func (c *scryfallClient) BulkFileByID(ctx context.Context, id uuid.UUID) (domain.BulkDataFile, error) {
	file, err := fetchOne[domain.BulkDataFile](ctx, c, nil, "bulk-data", id.String())
	return file, wrap(err, "bulk data "+id.String())
}

// DownloadBulk writes the file's contents to path on fs and returns the
// number of bytes written. The data lands in path+".part" first and is
// renamed once complete.
func (c *scryfallClient) DownloadBulk(ctx context.Context, file domain.BulkDataFile, fs afero.Fs, path string) (int64, error) {
	body, err := c.fetcher.FetchRaw(ctx, file.DownloadURI)
	if err != nil {
		return 0, wrap(err, "bulk file "+file.Type.String())
	}
	defer body.Close()

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	partial := path + ".part"
	out, err := fs.Create(partial)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", partial, err)
	}

	written, err := io.Copy(out, body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = fs.Remove(partial)
		return written, fmt.Errorf("failed to write %s: %w", partial, err)
	}

	if err := fs.Rename(partial, path); err != nil {
		return written, fmt.Errorf("failed to move %s into place: %w", path, err)
	}

	log.Infof("💾 Downloaded %s (%d bytes) to %s", file.Type, written, path)
	return written, nil
}

// BulkReader decodes a bulk file one element at a time.
type BulkReader[T any] struct {
	*jsonstream.Decoder[T]
	body io.ReadCloser
}

// Close stops decoding and releases the response body.
func (b *BulkReader[T]) Close() error {
	b.Decoder.Close()
	return b.body.Close()
}

// OpenBulk starts downloading the file and decodes elements as they arrive.
func OpenBulk[T any](ctx context.Context, f Fetcher, file domain.BulkDataFile) (*BulkReader[T], error) {
	body, err := f.FetchRaw(ctx, file.DownloadURI)
	if err != nil {
		return nil, wrap(err, "bulk file "+file.Type.String())
	}
	return &BulkReader[T]{
		Decoder: jsonstream.NewDecoder[T](body),
		body:    body,
	}, nil
}

// LoadBulk reads the whole file into memory.
func LoadBulk[T any](ctx context.Context, f Fetcher, file domain.BulkDataFile) ([]T, error) {
	r, err := OpenBulk[T](ctx, f, file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var items []T
	for item, err := range r.All() {
		if err != nil {
			return items, &DecodeError{URL: file.DownloadURI, Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}

// StreamBulk decodes the file on a background goroutine. Decoded elements
// queue up without limit if the consumer falls behind. A decode error is the
// last element; the response body is closed once the channel is closed.
// Stopping before the end requires cancelling ctx, which also closes the body.
func StreamBulk[T any](ctx context.Context, f Fetcher, file domain.BulkDataFile) (<-chan mo.Result[T], error) {
	body, err := f.FetchRaw(ctx, file.DownloadURI)
	if err != nil {
		return nil, wrap(err, "bulk file "+file.Type.String())
	}

	in := jsonstream.Stream[T](ctx, body)
	out := make(chan mo.Result[T])

	go func() {
		defer close(out)
		defer body.Close()

		for res := range in {
			if res.IsError() {
				res = mo.Err[T](&DecodeError{URL: file.DownloadURI, Err: res.Error()})
			}
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
