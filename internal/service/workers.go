package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"scryfall/client/internal/domain/task"
	"scryfall/client/internal/queue"

	log "github.com/sirupsen/logrus"
)

// RunWorkers consumes queued tasks until ctx is cancelled. Card pages get
// numWorkers consumers; each retry stream gets half as many.
func (s *Service) RunWorkers(ctx context.Context, numWorkers int) error {
	var wg sync.WaitGroup

	for _, taskType := range task.Types {
		n := numWorkers
		if taskType != task.TypeCardPage {
			n = max(1, numWorkers/2)
		}
		s.startStream(ctx, &wg, queue.StreamName(taskType), taskType, n)
	}

	wg.Wait()
	log.Info("🛑 All workers stopped")
	return nil
}

// startStream starts n consumers of stream and one goroutine that
// periodically reclaims entries abandoned by dead consumers.
func (s *Service) startStream(ctx context.Context, wg *sync.WaitGroup, stream, taskType string, n int) {
	wg.Add(n + 1)

	go func() {
		defer wg.Done()
		ticker := time.NewTicker(s.opts.MinIdleTime)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.claimIdle(ctx, stream, taskType)
			}
		}
	}()

	for i := 1; i <= n; i++ {
		consumer := fmt.Sprintf("%s-%d", taskType, i)
		go func() {
			defer wg.Done()
			log.Debugf("Worker %s listening on %s", consumer, stream)
			for ctx.Err() == nil {
				s.consumeOne(ctx, consumer, stream)
			}
		}()
	}

	log.Infof("🚀 Started %d workers for %s", n, taskType)
}

func (s *Service) consumeOne(ctx context.Context, consumer, stream string) {
	msg, err := s.queue.GetTask(ctx, s.opts.GroupName, consumer, stream)
	if err != nil {
		if ctx.Err() == nil {
			log.Errorf("❌ %s: %v", consumer, err)
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
		}
		return
	}
	if msg == nil {
		return
	}

	if err := s.processMessage(ctx, msg); err != nil {
		log.Errorf("❌ %s failed on %s: %v", consumer, msg.ID, err)
	}
}

func (s *Service) claimIdle(ctx context.Context, stream, taskType string) {
	consumer := taskType + "-reclaim"
	claimed, err := s.queue.AutoClaim(ctx, s.opts.GroupName, consumer, stream, s.opts.MinIdleTime)
	if err != nil {
		log.Errorf("❌ %v", err)
		return
	}
	if len(claimed) == 0 {
		return
	}

	log.Infof("🔄 Reclaimed %d idle %s entries", len(claimed), taskType)
	for i := range claimed {
		if err := s.processMessage(ctx, &claimed[i]); err != nil {
			log.Errorf("❌ Failed to process reclaimed %s: %v", claimed[i].ID, err)
		}
	}
}

// Drain processes queued tasks until every stream is empty. It is used by
// one-shot syncs that do not keep workers running.
func (s *Service) Drain(ctx context.Context) error {
	for _, taskType := range task.Types {
		streamName := queue.StreamName(taskType)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			msg, err := s.queue.GetTask(ctx, s.opts.GroupName, "drain", streamName)
			if err != nil {
				return err
			}
			if msg == nil {
				break
			}
			if err := s.processMessage(ctx, msg); err != nil {
				log.Errorf("❌ Failed to process message %s: %v", msg.ID, err)
			}
		}

		pending, err := s.queue.Pending(ctx, streamName)
		if err != nil {
			return err
		}
		if pending > 0 {
			log.Warnf("⚠️ %d messages in %s were not acknowledged", pending, streamName)
		}
	}
	return nil
}
