package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"scryfall/client/internal/domain"
	"scryfall/client/internal/domain/task"
	"scryfall/client/internal/queue"
	"scryfall/client/internal/state"

	"github.com/redis/go-redis/v9"
	"github.com/samber/mo"
)

type fakeQueue struct {
	mu      sync.Mutex
	streams map[string][]redis.XMessage
	acked   []string
	seq     int
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{streams: map[string][]redis.XMessage{}}
}

func (q *fakeQueue) AddTask(_ context.Context, t task.Task) (string, error) {
	data, err := t.TaskValue()
	if err != nil {
		return "", err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	id := fmt.Sprintf("%d-0", q.seq)
	stream := queue.StreamName(t.TaskType())
	q.streams[stream] = append(q.streams[stream], redis.XMessage{
		ID:     id,
		Values: map[string]interface{}{queue.FieldType: t.TaskType(), queue.FieldData: string(data)},
	})
	return id, nil
}

func (q *fakeQueue) GetTask(_ context.Context, _, _, stream string) (*redis.XMessage, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	msgs := q.streams[stream]
	if len(msgs) == 0 {
		return nil, nil
	}
	q.streams[stream] = msgs[1:]
	return &msgs[0], nil
}

func (q *fakeQueue) AckTask(_ context.Context, stream, _, msgID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.acked = append(q.acked, stream+"/"+msgID)
	return nil
}

func (q *fakeQueue) CreateGroup(context.Context, string, string) error { return nil }

func (q *fakeQueue) AutoClaim(context.Context, string, string, string, time.Duration) ([]redis.XMessage, error) {
	return nil, nil
}

func (q *fakeQueue) EnsureStreamsExist(context.Context) error { return nil }

func (q *fakeQueue) Pending(context.Context, string) (int64, error) { return 0, nil }

func (q *fakeQueue) messages(taskType string) []redis.XMessage {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]redis.XMessage(nil), q.streams[queue.StreamName(taskType)]...)
}

func decodeTasks[T task.Task](q *fakeQueue, taskType string) []T {
	var out []T
	for _, msg := range q.messages(taskType) {
		t, err := task.UnmarshalTask[T]([]byte(msg.Values[queue.FieldData].(string)))
		if err != nil {
			panic(err)
		}
		out = append(out, t)
	}
	return out
}

type fakeRepo struct {
	mu      sync.Mutex
	cards   []domain.Card
	rulings []domain.Ruling
	batches int
	failFor int // fail the next n SaveCards calls
}

func (r *fakeRepo) EnsureSchema(context.Context) error { return nil }

func (r *fakeRepo) SaveCards(_ context.Context, cards []domain.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFor > 0 {
		r.failFor--
		return errors.New("database unavailable")
	}
	r.batches++
	r.cards = append(r.cards, cards...)
	return nil
}

func (r *fakeRepo) SaveRulings(_ context.Context, rulings []domain.Ruling) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches++
	r.rulings = append(r.rulings, rulings...)
	return nil
}

func (r *fakeRepo) cardCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cards)
}

type fakeState struct {
	mu       sync.Mutex
	cursors  map[string]state.Cursor
	imports  map[domain.BulkType]time.Time
	setCalls int
}

func newFakeState() *fakeState {
	return &fakeState{cursors: map[string]state.Cursor{}, imports: map[domain.BulkType]time.Time{}}
}

func (s *fakeState) GetCursor(_ context.Context, syncID string) (mo.Option[state.Cursor], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cursors[syncID]
	if !ok {
		return mo.None[state.Cursor](), nil
	}
	return mo.Some(c), nil
}

func (s *fakeState) SetCursor(_ context.Context, syncID string, c state.Cursor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalls++
	s.cursors[syncID] = c
	return nil
}

func (s *fakeState) ClearCursor(_ context.Context, syncID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cursors, syncID)
	return nil
}

func (s *fakeState) GetLastBulkImport(_ context.Context, kind domain.BulkType) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imports[kind], nil
}

func (s *fakeState) SetLastBulkImport(_ context.Context, kind domain.BulkType, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imports[kind] = t
	return nil
}
