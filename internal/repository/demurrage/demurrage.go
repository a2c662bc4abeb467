package demurrage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"ledger/internal/entities"
	"ledger/internal/repository"
	"ledger/internal/service/demurrage"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, record entities.DemurrageRecord) error {
	query := `INSERT INTO demurrage (shipment_id, amount, payee, recorded_by, is_paid, recorded_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)`

	_, err := r.querier.Exec(
		ctx,
		query,
		record.ShipmentID,
		record.Amount,
		record.Payee.String(),
		record.RecordedBy.String(),
		record.RecordedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return demurrage.ErrDemurrageAlreadyExists
		}
		return fmt.Errorf("unexpected demurrage repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByShipmentID(ctx context.Context, shipmentID int64) (*entities.DemurrageRecord, error) {
	query := `SELECT shipment_id, amount, payee, recorded_by, is_paid, recorded_at, paid_at
		FROM demurrage
		WHERE shipment_id = $1`

	var (
		record            entities.DemurrageRecord
		payee, recordedBy string
		paidAt            *time.Time
	)
	err := r.querier.QueryRow(ctx, query, shipmentID).
		Scan(
			&record.ShipmentID,
			&record.Amount,
			&payee,
			&recordedBy,
			&record.IsPaid,
			&record.RecordedAt,
			&paidAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, demurrage.ErrDemurrageNotRecorded
		}
		return nil, fmt.Errorf("unexpected demurrage repository get error: %w", err)
	}

	record.Payee = entities.Address(payee)
	record.RecordedBy = entities.Address(recordedBy)
	record.RecordedAt = record.RecordedAt.UTC()
	if paidAt != nil {
		record.PaidAt = paidAt.UTC()
	}

	return &record, nil
}

// MarkPaid отмечает оплату один раз, повторная отметка не проходит.
func (r *Repository) MarkPaid(ctx context.Context, shipmentID int64, paidAt time.Time) error {
	query := `UPDATE demurrage
		SET is_paid = TRUE, paid_at = $2
		WHERE shipment_id = $1 AND NOT is_paid`

	result, err := r.querier.Exec(ctx, query, shipmentID, paidAt)
	if err != nil {
		return fmt.Errorf("unexpected demurrage repository mark paid error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return demurrage.ErrAlreadyPaid
	}

	return nil
}
