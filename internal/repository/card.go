package repository

import (
	"context"
	"fmt"

	"scryfall/client/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type CardRepository interface {
	EnsureSchema(ctx context.Context) error
	SaveCards(ctx context.Context, cards []domain.Card) error
	SaveRulings(ctx context.Context, rulings []domain.Ruling) error
}

type cardRepository struct {
	db DB
}

func NewCardRepository(db DB) CardRepository {
	return &cardRepository{
		db: db,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS cards (
	id               UUID PRIMARY KEY,
	oracle_id        UUID,
	name             TEXT NOT NULL,
	set_code         TEXT NOT NULL,
	collector_number TEXT NOT NULL,
	released_at      DATE,
	data             JSONB NOT NULL,
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS cards_oracle_id_idx ON cards (oracle_id);
CREATE TABLE IF NOT EXISTS rulings (
	oracle_id    UUID NOT NULL,
	source       TEXT NOT NULL,
	published_at DATE NOT NULL,
	comment      TEXT NOT NULL,
	PRIMARY KEY (oracle_id, published_at, comment)
);`

func (r *cardRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	log.Info("✅ Database schema ready")
	return nil
}

const upsertCard = `
	INSERT INTO cards (id, oracle_id, name, set_code, collector_number, released_at, data, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	ON CONFLICT (id)
	DO UPDATE SET oracle_id = $2, name = $3, set_code = $4, collector_number = $5,
		released_at = $6, data = $7, updated_at = now()`

// SaveCards upserts cards in one batch round trip.
func (r *cardRepository) SaveCards(ctx context.Context, cards []domain.Card) error {
	if len(cards) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range cards {
		card := &cards[i]
		batch.Queue(upsertCard,
			card.ID,
			nullableUUID(card),
			card.Name,
			card.Set.String(),
			card.CollectorNumber,
			nullableDate(card.ReleasedAt),
			card,
		)
	}

	if err := r.runBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to save %d cards: %w", len(cards), err)
	}
	return nil
}

const insertRuling = `
	INSERT INTO rulings (oracle_id, source, published_at, comment)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT DO NOTHING`

func (r *cardRepository) SaveRulings(ctx context.Context, rulings []domain.Ruling) error {
	if len(rulings) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, ruling := range rulings {
		batch.Queue(insertRuling, ruling.OracleID, ruling.Source, nullableDate(ruling.PublishedAt), ruling.Comment)
	}

	if err := r.runBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to save %d rulings: %w", len(rulings), err)
	}
	return nil
}

func (r *cardRepository) runBatch(ctx context.Context, batch *pgx.Batch) error {
	results := r.db.SendBatch(ctx, batch)

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}

	return results.Close()
}

func nullableUUID(card *domain.Card) any {
	if card.OracleID == uuid.Nil {
		return nil
	}
	return card.OracleID
}

func nullableDate(d domain.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.Time
}
