package outbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Repository курсор ретрансляции журнала в Kafka: последний отправленный sequence.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetCursor 0, если еще ничего не отправлено.
func (r *Repository) GetCursor(ctx context.Context) (int64, error) {
	query := `SELECT last_sequence FROM outbox_cursor WHERE id = 1`

	var last int64
	err := r.querier.QueryRow(ctx, query).Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("unexpected outbox repository get cursor error: %w", err)
	}

	return last, nil
}

// SaveCursor курсор только растет.
func (r *Repository) SaveCursor(ctx context.Context, lastSequence int64) error {
	query := `INSERT INTO outbox_cursor (id, last_sequence, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET last_sequence = GREATEST(outbox_cursor.last_sequence, EXCLUDED.last_sequence),
			updated_at = EXCLUDED.updated_at`

	_, err := r.querier.Exec(ctx, query, lastSequence, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("unexpected outbox repository save cursor error: %w", err)
	}

	return nil
}
