package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scryfall/client/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/samber/mo"
	log "github.com/sirupsen/logrus"
)

type StateManager interface {
	// GetCursor returns the saved position of a search sync, if any.
	GetCursor(ctx context.Context, syncID string) (mo.Option[Cursor], error)
	SetCursor(ctx context.Context, syncID string, cursor Cursor) error
	ClearCursor(ctx context.Context, syncID string) error

	// GetLastBulkImport returns the updated_at of the last fully imported
	// bulk file of kind, or the zero time.
	GetLastBulkImport(ctx context.Context, kind domain.BulkType) (time.Time, error)
	SetLastBulkImport(ctx context.Context, kind domain.BulkType, updatedAt time.Time) error
}

type redisStateManager struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewRedisStateManager(redisClient *redis.Client) StateManager {
	return &redisStateManager{
		redisClient: redisClient,
		keyPrefix:   "scryfall:progress:",
	}
}

func (s *redisStateManager) cursorKey(syncID string) string {
	return s.keyPrefix + "sync:" + syncID
}

func (s *redisStateManager) bulkKey(kind domain.BulkType) string {
	return s.keyPrefix + "bulk:" + kind.String()
}

func (s *redisStateManager) GetCursor(ctx context.Context, syncID string) (mo.Option[Cursor], error) {
	val, err := s.redisClient.Get(ctx, s.cursorKey(syncID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return mo.None[Cursor](), nil // No progress saved yet
		}
		return mo.None[Cursor](), fmt.Errorf("failed to get cursor for sync %s: %w", syncID, err)
	}

	cursor, err := DecodeCursor(val)
	if err != nil {
		log.Warnf("⚠️ Ignoring unreadable cursor for sync %s: %v", syncID, err)
		return mo.None[Cursor](), nil
	}

	return mo.Some(cursor), nil
}

func (s *redisStateManager) SetCursor(ctx context.Context, syncID string, cursor Cursor) error {
	encoded, err := EncodeCursor(cursor)
	if err != nil {
		return err
	}

	if err := s.redisClient.Set(ctx, s.cursorKey(syncID), encoded, 0).Err(); err != nil { // No expiration
		return fmt.Errorf("failed to set cursor for sync %s: %w", syncID, err)
	}
	return nil
}

func (s *redisStateManager) ClearCursor(ctx context.Context, syncID string) error {
	if err := s.redisClient.Del(ctx, s.cursorKey(syncID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cursor for sync %s: %w", syncID, err)
	}
	return nil
}

func (s *redisStateManager) GetLastBulkImport(ctx context.Context, kind domain.BulkType) (time.Time, error) {
	val, err := s.redisClient.Get(ctx, s.bulkKey(kind)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get last import of %s: %w", kind, err)
	}

	t, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse last import of %s: %w", kind, err)
	}
	return t, nil
}

func (s *redisStateManager) SetLastBulkImport(ctx context.Context, kind domain.BulkType, updatedAt time.Time) error {
	err := s.redisClient.Set(ctx, s.bulkKey(kind), updatedAt.UTC().Format(time.RFC3339Nano), 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set last import of %s: %w", kind, err)
	}
	return nil
}
