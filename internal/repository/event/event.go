package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"ledger/internal/entities"
	"ledger/internal/repository"
)

const selectColumns = `sequence, id, type, shipment_id, actor, payload, recorded_at, prev_hash, hash`

var ErrSequenceTaken = errors.New("event sequence already taken")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Last(ctx context.Context) (*entities.Event, error) {
	query := `SELECT ` + selectColumns + `
		FROM ledger_events
		ORDER BY sequence DESC
		LIMIT 1`

	var eventModel EventDB
	err := scanEvent(r.querier.QueryRow(ctx, query), &eventModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected event repository last error: %w", err)
	}

	return ToDomain(&eventModel), nil
}

func (r *Repository) Append(ctx context.Context, e entities.Event) error {
	query := `INSERT INTO ledger_events (` + selectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.querier.Exec(
		ctx,
		query,
		e.Sequence,
		e.ID,
		e.Type.String(),
		e.ShipmentID,
		e.Actor.String(),
		[]byte(e.Payload),
		e.RecordedAt,
		e.PrevHash,
		e.Hash,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("%w: %d", ErrSequenceTaken, e.Sequence)
		}
		return fmt.Errorf("unexpected event repository append error: %w", err)
	}

	return nil
}

func (r *Repository) ListAfter(ctx context.Context, after int64, limit int) ([]entities.Event, error) {
	query := `SELECT ` + selectColumns + `
		FROM ledger_events
		WHERE sequence > $1
		ORDER BY sequence
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, after, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository list error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]EventDB, 0, limit)
	for rows.Next() {
		var eventModel EventDB
		if err := scanEvent(rows, &eventModel); err != nil {
			return nil, fmt.Errorf("unexpected event repository list error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository list error: %w", err)
	}

	return ToDomainList(eventModels), nil
}

func scanEvent(row pgx.Row, e *EventDB) error {
	return row.Scan(
		&e.Sequence,
		&e.ID,
		&e.Type,
		&e.ShipmentID,
		&e.Actor,
		&e.Payload,
		&e.RecordedAt,
		&e.PrevHash,
		&e.Hash,
	)
}
