package service

import (
	"context"
	"fmt"
	"time"

	"scryfall/client/internal/client"
	"scryfall/client/internal/domain"
	"scryfall/client/internal/domain/task"
	"scryfall/client/internal/queue"
	"scryfall/client/internal/repository"
	"scryfall/client/internal/search"
	"scryfall/client/internal/state"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// maxPageRetries bounds how often a page that fails to load or save is
// queued again before it is dropped.
const maxPageRetries = 10

type Options struct {
	GroupName   string
	MinIdleTime time.Duration
	BatchSize   int
	MaxWorkers  int
	BulkDir     string
}

type Service struct {
	repository   repository.CardRepository
	client       client.ScryfallClient
	queue        queue.Queue
	stateManager state.StateManager
	fs           afero.Fs
	opts         Options
}

func NewService(
	repository repository.CardRepository,
	client client.ScryfallClient,
	queue queue.Queue,
	stateManager state.StateManager,
	fs afero.Fs,
	opts Options,
) *Service {
	return &Service{
		repository:   repository,
		client:       client,
		queue:        queue,
		stateManager: stateManager,
		fs:           fs,
		opts:         opts,
	}
}

// SyncID names a search for checkpointing. Equal searches share an id.
func SyncID(s search.Search) string {
	values := s.Values()
	values.Del("page")
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(values.Encode())).String()
}

// SyncSearch queues every page of the search for the workers. Progress is
// checkpointed after each page, so a sync that stops midway continues from
// the first page that was not queued.
func (s *Service) SyncSearch(ctx context.Context, query search.Search) error {
	syncID := SyncID(query)

	saved, err := s.stateManager.GetCursor(ctx, syncID)
	if err != nil {
		return err
	}

	cursor := state.Cursor{PageNumber: 1}
	uri := s.client.SearchURI(query)
	if c, ok := saved.Get(); ok {
		log.Infof("🔄 Continue sync %s from page %d", syncID, c.PageNumber)
		cursor = c
		if uri, err = client.NewURI[client.List[domain.Card]](c.NextPage); err != nil {
			return fmt.Errorf("failed to resume sync %s: %w", syncID, err)
		}
	} else {
		log.Infof("🔄 Starting sync %s", syncID)
	}

	first, err := uri.Fetch(ctx, s.client.Fetcher())
	if err == nil {
		err = first.Validate()
	}
	if err != nil {
		return fmt.Errorf("failed to fetch page %d of sync %s: %w", cursor.PageNumber, syncID, err)
	}
	pages := client.NewPageIter(s.client.Fetcher(), first)

	pageURI := uri.String()
	for {
		list, ok := pages.Next(ctx)
		if !ok {
			break
		}

		if total, ok := list.TotalCards.Get(); ok {
			cursor.TotalCards = total
		}

		_, err := s.queue.AddTask(ctx, &task.CardPageTask{
			SyncID:     syncID,
			PageNumber: cursor.PageNumber,
			PageURI:    pageURI,
			Cards:      list.Data,
		})
		if err != nil {
			log.Errorf("❌ Failed to add task for page %d: %v", cursor.PageNumber, err)
			return err
		}

		cursor.Cards += len(list.Data)
		cursor.PageNumber++

		if list.NextPage == nil {
			break
		}
		pageURI = list.NextPage.String()
		cursor.NextPage = pageURI

		if err := s.stateManager.SetCursor(ctx, syncID, cursor); err != nil {
			log.Warnf("⚠️ Failed to checkpoint sync %s: %v", syncID, err)
		}
	}

	if err := pages.Err(); err != nil {
		log.Errorf("❌ Sync %s stopped at page %d: %v", syncID, cursor.PageNumber, err)
		return err
	}

	if err := s.stateManager.ClearCursor(ctx, syncID); err != nil {
		log.Warnf("⚠️ Failed to clear cursor for sync %s: %v", syncID, err)
	}

	log.Infof("✅ Completed sync %s: %d pages, %d cards", syncID, cursor.PageNumber-1, cursor.Cards)
	return nil
}

func (s *Service) processMessage(ctx context.Context, msg *redis.XMessage) error {
	taskType, ok := msg.Values[queue.FieldType].(string)
	if !ok {
		return fmt.Errorf("invalid task type in message %s", msg.ID)
	}

	taskData, ok := msg.Values[queue.FieldData].(string)
	if !ok {
		return fmt.Errorf("invalid task data in message %s", msg.ID)
	}

	switch taskType {
	case task.TypeCardPage:
		pageTask, err := task.UnmarshalTask[*task.CardPageTask]([]byte(taskData))
		if err != nil {
			return fmt.Errorf("failed to unmarshal card page task data: %w", err)
		}
		s.savePage(ctx, pageTask)

	case task.TypePageRetry:
		retryTask, err := task.UnmarshalTask[*task.PageRetryTask]([]byte(taskData))
		if err != nil {
			return fmt.Errorf("failed to unmarshal page retry task data: %w", err)
		}
		if err := s.retryPage(ctx, retryTask); err != nil {
			return fmt.Errorf("failed to retry page: %w", err)
		}

	case task.TypeCardRetry:
		retryTask, err := task.UnmarshalTask[*task.CardRetryTask]([]byte(taskData))
		if err != nil {
			return fmt.Errorf("failed to unmarshal card retry task data: %w", err)
		}
		if err := s.retryCard(ctx, retryTask); err != nil {
			return fmt.Errorf("failed to retry card: %w", err)
		}

	default:
		return fmt.Errorf("unknown task type: %s", taskType)
	}

	if err := s.queue.AckTask(ctx, queue.StreamName(taskType), s.opts.GroupName, msg.ID); err != nil {
		return fmt.Errorf("failed to ack message %s: %w", msg.ID, err)
	}

	return nil
}

func (s *Service) savePage(ctx context.Context, pageTask *task.CardPageTask) {
	err := s.repository.SaveCards(ctx, pageTask.Cards)
	if err == nil {
		log.Debugf("Saved page %d of sync %s (%d cards)", pageTask.PageNumber, pageTask.SyncID, len(pageTask.Cards))
		return
	}

	retryTask := &task.PageRetryTask{
		SyncID:     pageTask.SyncID,
		PageNumber: pageTask.PageNumber,
		PageURI:    pageTask.PageURI,
		Error:      err.Error(),
	}
	if _, addErr := s.queue.AddTask(ctx, retryTask); addErr != nil {
		log.Errorf("❌ Failed to add retry task for page %d: %v", pageTask.PageNumber, addErr)
	} else {
		log.Warnf("🔄 Added page %d to retry queue due to error: %v", pageTask.PageNumber, err)
	}
}

func (s *Service) retryPage(ctx context.Context, retryTask *task.PageRetryTask) error {
	retryTask.RetryCount++

	log.Infof("🔄 Retrying page %d of sync %s (attempt %d)",
		retryTask.PageNumber, retryTask.SyncID, retryTask.RetryCount)

	err := s.reloadPage(ctx, retryTask.PageURI)
	if err == nil {
		log.Infof("✅ Successfully recovered page %d of sync %s after %d attempts",
			retryTask.PageNumber, retryTask.SyncID, retryTask.RetryCount)
		return nil
	}

	if retryTask.RetryCount >= maxPageRetries {
		log.Errorf("❌ Giving up on page %d of sync %s after %d attempts: %v",
			retryTask.PageNumber, retryTask.SyncID, retryTask.RetryCount, err)
		return nil
	}

	retryTask.Error = err.Error()
	if _, addErr := s.queue.AddTask(ctx, retryTask); addErr != nil {
		log.Errorf("❌ Failed to re-add retry task for page %d: %v", retryTask.PageNumber, addErr)
		return addErr
	}

	log.Warnf("🔄 Page %d of sync %s failed again, will retry (attempt %d): %v",
		retryTask.PageNumber, retryTask.SyncID, retryTask.RetryCount, err)
	return nil
}

// reloadPage fetches a single search page again and stores its cards.
func (s *Service) reloadPage(ctx context.Context, pageURI string) error {
	uri, err := client.NewURI[client.List[domain.Card]](pageURI)
	if err != nil {
		return err
	}
	list, err := uri.Fetch(ctx, s.client.Fetcher())
	if err != nil {
		return err
	}
	return s.repository.SaveCards(ctx, list.Data)
}

func (s *Service) retryCard(ctx context.Context, retryTask *task.CardRetryTask) error {
	retryTask.RetryCount++

	card, err := s.client.Card(ctx, retryTask.CardID)
	stage := "fetch"
	if err == nil {
		stage = "save"
		err = s.repository.SaveCards(ctx, []domain.Card{card})
	}
	if err == nil {
		log.Debugf("Recovered card %s after %d attempts", retryTask.CardID, retryTask.RetryCount)
		return nil
	}

	if client.IsNotFound(err) || retryTask.RetryCount >= maxPageRetries {
		log.Errorf("❌ Giving up on card %s after %d attempts: %v", retryTask.CardID, retryTask.RetryCount, err)
		return nil
	}

	retryTask.Error = err.Error()
	retryTask.FailureStage = stage
	if _, addErr := s.queue.AddTask(ctx, retryTask); addErr != nil {
		return addErr
	}
	log.Warnf("🔄 Card %s failed at %s, will retry (attempt %d): %v", retryTask.CardID, stage, retryTask.RetryCount, err)
	return nil
}
