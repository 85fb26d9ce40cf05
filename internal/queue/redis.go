package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scryfall/client/internal/config"
	"scryfall/client/internal/domain/task"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// StreamPrefix is prepended to the task type to name its stream.
const StreamPrefix = "scryfall:stream:"

// Message fields written for every task.
const (
	FieldType = "task_type"
	FieldData = "task_data"
)

// readBlock is how long GetTask waits for a new entry before reporting an
// empty stream.
const readBlock = 2 * time.Second

// StreamName returns the stream that carries tasks of taskType.
func StreamName(taskType string) string {
	return StreamPrefix + taskType
}

// Queue moves tasks between the sync producer and the workers.
type Queue interface {
	AddTask(ctx context.Context, task task.Task) (string, error) // Returns message ID
	GetTask(ctx context.Context, group, consumer, stream string) (*redis.XMessage, error)
	AckTask(ctx context.Context, stream, group, msgID string) error
	CreateGroup(ctx context.Context, stream, group string) error
	AutoClaim(ctx context.Context, group, consumer, stream string, minIdleTime time.Duration) ([]redis.XMessage, error)
	EnsureStreamsExist(ctx context.Context) error
	Pending(ctx context.Context, stream string) (int64, error)
}

// RedisQueue keeps one Redis stream per task type, read through a single
// consumer group.
type RedisQueue struct {
	rdb   *redis.Client
	group string
}

func NewRedisQueue(ctx context.Context, rdb *redis.Client, cfg config.RedisConfig) (Queue, error) {
	q := &RedisQueue{rdb: rdb, group: cfg.ConsumerGroup}

	if err := q.EnsureStreamsExist(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare task streams: %w", err)
	}
	return q, nil
}

// CreateGroup creates group on stream, creating the stream too. An existing
// group is left alone.
func (q *RedisQueue) CreateGroup(ctx context.Context, stream, group string) error {
	err := q.rdb.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP") {
		log.Debugf("Group %s already exists on %s", group, stream)
		return nil
	}
	return err
}

func (q *RedisQueue) AddTask(ctx context.Context, t task.Task) (string, error) {
	taskType := t.TaskType()
	stream := StreamName(taskType)

	data, err := t.TaskValue()
	if err != nil {
		return "", fmt.Errorf("failed to serialize %s: %w", taskType, err)
	}

	id, err := q.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{FieldType: taskType, FieldData: string(data)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to add %s to %s: %w", taskType, stream, err)
	}

	log.Debugf("Queued %s as %s", taskType, id)
	return id, nil
}

// GetTask reads the next undelivered entry of stream for consumer. It
// returns nil without an error when the stream stays empty for readBlock.
func (q *RedisQueue) GetTask(ctx context.Context, group, consumer, stream string) (*redis.XMessage, error) {
	streams, err := q.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    1,
		Block:    readBlock,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", stream, err)
	}

	for _, s := range streams {
		if len(s.Messages) > 0 {
			return &s.Messages[0], nil
		}
	}
	return nil, nil
}

func (q *RedisQueue) AckTask(ctx context.Context, stream, group, msgID string) error {
	return q.rdb.XAck(ctx, stream, group, msgID).Err()
}

// AutoClaim takes over entries another consumer has held for longer than
// minIdleTime.
func (q *RedisQueue) AutoClaim(ctx context.Context, group, consumer, stream string, minIdleTime time.Duration) ([]redis.XMessage, error) {
	claimed, _, err := q.rdb.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   stream,
		Group:    group,
		Consumer: consumer,
		MinIdle:  minIdleTime,
		Start:    "0-0",
		Count:    10,
	}).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to claim idle entries of %s: %w", stream, err)
	}
	return claimed, nil
}

// Pending reports how many entries of stream are still waiting to be
// acknowledged by the consumer group.
func (q *RedisQueue) Pending(ctx context.Context, stream string) (int64, error) {
	pending, err := q.rdb.XPending(ctx, stream, q.group).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read pending count of %s: %w", stream, err)
	}
	return pending.Count, nil
}

// EnsureStreamsExist creates the stream and consumer group of every task type.
func (q *RedisQueue) EnsureStreamsExist(ctx context.Context) error {
	for _, taskType := range task.Types {
		stream := StreamName(taskType)
		if err := q.CreateGroup(ctx, stream, q.group); err != nil {
			return fmt.Errorf("failed to create group %s on %s: %w", q.group, stream, err)
		}
	}

	log.Infof("🔧 Task streams ready for group %s", q.group)
	return nil
}
