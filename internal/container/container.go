package container

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"scryfall/client/internal/client"
	"scryfall/client/internal/config"
	"scryfall/client/internal/queue"
	"scryfall/client/internal/repository"
	"scryfall/client/internal/search"
	"scryfall/client/internal/service"
	"scryfall/client/internal/state"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Container holds all initialized components
type Container struct {
	Config       *config.Config
	Client       client.ScryfallClient
	Repository   repository.CardRepository
	Queue        queue.Queue
	StateManager state.StateManager

	Service *service.Service

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
		Client: client.NewScryfallClient(cfg.Scryfall),
	}

	db, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	container.db = db

	cardRepo := repository.NewCardRepository(db)
	if err := cardRepo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	container.Repository = cardRepo

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})
	container.redis = rdb

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("✅ Connected to Redis successfully")

	redisQueue, err := queue.NewRedisQueue(ctx, rdb, cfg.Redis)
	if err != nil {
		_ = container.Close()
		return nil, err
	}
	container.Queue = redisQueue
	container.StateManager = state.NewRedisStateManager(rdb)

	container.Service = service.NewService(
		cardRepo,
		container.Client,
		redisQueue,
		container.StateManager,
		afero.NewOsFs(),
		service.Options{
			GroupName:   cfg.Redis.ConsumerGroup,
			MinIdleTime: time.Duration(cfg.Redis.MinIdleTime) * time.Second,
			BatchSize:   cfg.Bulk.BatchSize,
			MaxWorkers:  cfg.Scryfall.MaxWorkers,
			BulkDir:     cfg.Bulk.Directory,
		},
	)

	return container, nil
}

// Sync queues every page of the search and processes the queue until the
// search is exhausted and the queue is drained. When follow is set the
// workers keep consuming until ctx is cancelled.
func (c *Container) Sync(ctx context.Context, s search.Search, follow bool) error {
	if follow {
		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			return c.Service.SyncSearch(ctx, s)
		})

		g.Go(func() error {
			return c.Service.RunWorkers(ctx, c.Config.Scryfall.MaxWorkers)
		})

		return g.Wait()
	}

	if err := c.Service.SyncSearch(ctx, s); err != nil {
		return err
	}
	return c.Service.Drain(ctx)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.db != nil {
		c.db.Close()
	}
	var err error
	if c.redis != nil {
		err = c.redis.Close()
	}

	log.Info("Container shut down successfully")
	return err
}
