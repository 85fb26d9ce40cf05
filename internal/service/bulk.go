package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync/atomic"

	"scryfall/client/internal/client"
	"scryfall/client/internal/domain"
	"scryfall/client/internal/domain/task"
	"scryfall/client/internal/jsonstream"

	"github.com/samber/lo"
	"github.com/samber/mo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ImportStats summarizes a bulk import.
type ImportStats struct {
	Kind    domain.BulkType
	Items   int64
	Batches int64
	Failed  int64
	Skipped bool
}

// ImportBulk streams the current bulk file of kind straight into the
// database. An import is skipped when the file has not changed since the
// last complete import, unless force is set.
func (s *Service) ImportBulk(ctx context.Context, kind domain.BulkType, force bool) (ImportStats, error) {
	stats := ImportStats{Kind: kind}

	file, err := s.client.BulkFile(ctx, kind)
	if err != nil {
		return stats, err
	}

	last, err := s.stateManager.GetLastBulkImport(ctx, kind)
	if err != nil {
		return stats, err
	}
	if !force && !last.IsZero() && !file.UpdatedAt.After(last) {
		log.Infof("⏭️ Bulk %s unchanged since %s, skipping", kind, last.Format("2006-01-02 15:04"))
		stats.Skipped = true
		return stats, nil
	}

	log.Infof("📦 Importing bulk %s (%d bytes, updated %s)", kind, file.Size, file.UpdatedAt.Format("2006-01-02 15:04"))

	if kind.IsCards() {
		items, err := client.StreamBulk[domain.Card](ctx, s.client.Fetcher(), file)
		if err != nil {
			return stats, err
		}
		err = importBatches(ctx, s, items, s.saveCardBatch, &stats)
		if err != nil {
			return stats, err
		}
	} else {
		items, err := client.StreamBulk[domain.Ruling](ctx, s.client.Fetcher(), file)
		if err != nil {
			return stats, err
		}
		err = importBatches(ctx, s, items, s.saveRulingBatch, &stats)
		if err != nil {
			return stats, err
		}
	}

	if err := s.stateManager.SetLastBulkImport(ctx, kind, file.UpdatedAt); err != nil {
		log.Warnf("⚠️ Failed to record import of %s: %v", kind, err)
	}

	log.Infof("✅ Imported bulk %s: %d items in %d batches, %d failed", kind, stats.Items, stats.Batches, stats.Failed)
	return stats, nil
}

// ImportFile imports a previously downloaded bulk file from the service's
// filesystem.
func (s *Service) ImportFile(ctx context.Context, kind domain.BulkType, path string) (ImportStats, error) {
	stats := ImportStats{Kind: kind}

	f, err := s.fs.Open(path)
	if err != nil {
		return stats, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if kind.IsCards() {
		err = importBatches(ctx, s, decodeFile[domain.Card](ctx, f), s.saveCardBatch, &stats)
	} else {
		err = importBatches(ctx, s, decodeFile[domain.Ruling](ctx, f), s.saveRulingBatch, &stats)
	}
	if err != nil {
		return stats, fmt.Errorf("failed to import %s: %w", path, err)
	}

	log.Infof("✅ Imported %s from %s: %d items, %d failed", kind, path, stats.Items, stats.Failed)
	return stats, nil
}

// decodeFile adapts a sequence decoder to the channel shape importBatches reads.
func decodeFile[T any](ctx context.Context, r io.Reader) <-chan mo.Result[T] {
	dec := jsonstream.NewSequenceDecoder[T](r)
	out := make(chan mo.Result[T])

	go func() {
		defer close(out)
		defer dec.Close()

		for item, err := range dec.All() {
			res := mo.Ok(item)
			if err != nil {
				res = mo.Err[T](err)
			}
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// importBatches groups items into batches and saves them with at most
// MaxWorkers batches in flight. A decode error stops the import; a failed
// batch is counted and handed to the save function's own recovery.
func importBatches[T any](
	ctx context.Context,
	s *Service,
	items <-chan mo.Result[T],
	save func(ctx context.Context, batch []T) error,
	stats *ImportStats,
) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, s.opts.MaxWorkers))

	var items64, batches, failed atomic.Int64

	flush := func(batch []T) {
		g.Go(func() error {
			if err := save(gctx, batch); err != nil {
				failed.Add(int64(len(batch)))
				log.Errorf("❌ Failed to save batch of %d: %v", len(batch), err)
			}
			n := batches.Add(1)
			if n%100 == 0 {
				log.Infof("💾 Saved %d batches (%d items)", n, items64.Load())
			}
			return nil
		})
	}

	batch := make([]T, 0, s.opts.BatchSize)
	var decodeErr error
	for res := range items {
		item, err := res.Get()
		if err != nil {
			decodeErr = err
			break
		}
		items64.Add(1)
		batch = append(batch, item)
		if len(batch) == s.opts.BatchSize {
			flush(batch)
			batch = make([]T, 0, s.opts.BatchSize)
		}
	}
	if len(batch) > 0 && decodeErr == nil {
		flush(batch)
	}

	waitErr := g.Wait()

	stats.Items = items64.Load()
	stats.Batches = batches.Load()
	stats.Failed = failed.Load()

	return errors.Join(decodeErr, waitErr, ctx.Err())
}

// saveCardBatch saves a batch of cards. When the batch cannot be saved every
// card is queued for an individual retry.
func (s *Service) saveCardBatch(ctx context.Context, cards []domain.Card) error {
	err := s.repository.SaveCards(ctx, cards)
	if err == nil {
		return nil
	}

	queued := lo.CountBy(cards, func(card domain.Card) bool {
		_, addErr := s.queue.AddTask(ctx, &task.CardRetryTask{
			CardID:       card.ID,
			CardURI:      card.URI,
			Error:        err.Error(),
			FailureStage: "save",
		})
		return addErr == nil
	})
	log.Warnf("🔄 Queued %d of %d cards for retry: %v", queued, len(cards), err)
	return err
}

func (s *Service) saveRulingBatch(ctx context.Context, rulings []domain.Ruling) error {
	return s.repository.SaveRulings(ctx, rulings)
}

// DownloadBulk stores the current bulk file of kind under the bulk directory
// and returns its path.
func (s *Service) DownloadBulk(ctx context.Context, kind domain.BulkType) (string, error) {
	file, err := s.client.BulkFile(ctx, kind)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.opts.BulkDir, kind.String()+".json")
	if _, err := s.client.DownloadBulk(ctx, file, s.fs, path); err != nil {
		return "", err
	}
	return path, nil
}
