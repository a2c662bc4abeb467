package checkpoint

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"ledger/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context) (*entities.AuditCheckpoint, error) {
	query := `SELECT last_sequence, last_hash, updated_at FROM audit_checkpoint WHERE id = 1`

	var cp entities.AuditCheckpoint
	err := r.querier.QueryRow(ctx, query).Scan(&cp.LastSequence, &cp.LastHash, &cp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entities.AuditCheckpoint{}, nil
		}
		return nil, fmt.Errorf("unexpected checkpoint repository get error: %w", err)
	}
	cp.UpdatedAt = cp.UpdatedAt.UTC()

	return &cp, nil
}

func (r *Repository) Save(ctx context.Context, cp entities.AuditCheckpoint) error {
	query := `INSERT INTO audit_checkpoint (id, last_sequence, last_hash, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET last_sequence = EXCLUDED.last_sequence,
			last_hash = EXCLUDED.last_hash,
			updated_at = EXCLUDED.updated_at`

	_, err := r.querier.Exec(ctx, query, cp.LastSequence, cp.LastHash, cp.UpdatedAt)
	if err != nil {
		return fmt.Errorf("unexpected checkpoint repository save error: %w", err)
	}

	return nil
}
