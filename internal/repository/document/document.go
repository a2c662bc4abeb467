package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"ledger/internal/entities"
	"ledger/internal/repository"
	"ledger/internal/service/document"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет документ и начальный список доступа. Атомарность дает
// транзакция сервиса.
func (r *Repository) Create(ctx context.Context, doc entities.Document) error {
	query := `INSERT INTO documents (shipment_id, hash, location, added_by, added_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(
		ctx,
		query,
		doc.ShipmentID,
		doc.Hash,
		doc.Location,
		doc.AddedBy.String(),
		doc.AddedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return document.ErrBoLAlreadyAdded
		}
		return fmt.Errorf("unexpected document repository create error: %w", err)
	}

	for _, addr := range doc.AccessSet {
		_, err := r.insertAccess(ctx, doc.ShipmentID, addr, doc.AddedAt)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) GetByShipmentID(ctx context.Context, shipmentID int64) (*entities.Document, error) {
	query := `SELECT shipment_id, hash, location, added_by, added_at
		FROM documents
		WHERE shipment_id = $1`

	var (
		doc     entities.Document
		addedBy string
	)
	err := r.querier.QueryRow(ctx, query, shipmentID).
		Scan(
			&doc.ShipmentID,
			&doc.Hash,
			&doc.Location,
			&addedBy,
			&doc.AddedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, document.ErrBoLNotAdded
		}
		return nil, fmt.Errorf("unexpected document repository get error: %w", err)
	}
	doc.AddedBy = entities.Address(addedBy)
	doc.AddedAt = doc.AddedAt.UTC()

	doc.AccessSet, err = r.accessSet(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

func (r *Repository) AddAccess(ctx context.Context, shipmentID int64, identity entities.Address) (bool, error) {
	return r.insertAccess(ctx, shipmentID, identity, time.Now().UTC().Truncate(time.Microsecond))
}

func (r *Repository) insertAccess(ctx context.Context, shipmentID int64, identity entities.Address, at time.Time) (bool, error) {
	query := `INSERT INTO document_access (shipment_id, address, granted_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (shipment_id, address) DO NOTHING`

	result, err := r.querier.Exec(ctx, query, shipmentID, identity.String(), at)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return false, document.ErrBoLNotAdded
		}
		return false, fmt.Errorf("unexpected document repository add access error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) accessSet(ctx context.Context, shipmentID int64) ([]entities.Address, error) {
	query := `SELECT address
		FROM document_access
		WHERE shipment_id = $1
		ORDER BY granted_at, address`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected document repository access set error: %w", err)
	}
	defer rows.Close()

	access := make([]entities.Address, 0, 3)
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("unexpected document repository access set error: %w", err)
		}
		access = append(access, entities.Address(addr))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected document repository access set error: %w", err)
	}

	return access, nil
}
