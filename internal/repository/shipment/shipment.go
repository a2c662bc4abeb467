package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"ledger/internal/entities"
	"ledger/internal/repository"
	"ledger/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `s.id, s.shipper, s.carrier, s.consignee, s.status, s.container_type, s.weight_kg,
	EXISTS (SELECT 1 FROM documents d WHERE d.shipment_id = s.id),
	s.created_at, s.picked_up_at, s.delivered_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create id считается как MAX+1, поэтому вызывается только под блокировкой записи.
func (r *Repository) Create(ctx context.Context, s entities.Shipment) (int64, error) {
	query := `INSERT INTO shipments (id, shipper, carrier, consignee, status, created_at)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5 FROM shipments
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		s.Shipper.String(),
		s.Carrier.String(),
		s.Consignee.String(),
		s.Status.String(),
		s.CreatedAt,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, fmt.Errorf("shipment id taken concurrently: %w", err)
		}
		return 0, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + selectColumns + `
		FROM shipments s
		WHERE s.id = $1`

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&shipmentModel.ID,
			&shipmentModel.Shipper,
			&shipmentModel.Carrier,
			&shipmentModel.Consignee,
			&shipmentModel.Status,
			&shipmentModel.ContainerType,
			&shipmentModel.WeightKg,
			&shipmentModel.BoLAdded,
			&shipmentModel.CreatedAt,
			&shipmentModel.PickedUpAt,
			&shipmentModel.DeliveredAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

// UpdateDetails пишет детали только если их еще нет.
func (r *Repository) UpdateDetails(ctx context.Context, id int64, details entities.CargoDetails) error {
	query := `UPDATE shipments
		SET container_type = $2, weight_kg = $3
		WHERE id = $1 AND container_type IS NULL`

	result, err := r.querier.Exec(ctx, query, id, details.ContainerType.String(), details.WeightKg)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update details error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return r.missingOr(ctx, id, shipment.ErrDetailsAlreadyAdded)
	}

	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.ShipmentStatus, at time.Time) error {
	builder := qb.
		Update("shipments").
		Set("status", status.String())

	// временная метка ставится один раз на соответствующем переходе
	switch status {
	case entities.StatusPickedUp:
		builder = builder.Set("picked_up_at", at)
	case entities.StatusDelivered:
		builder = builder.Set("delivered_at", at)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update status error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shipment.ErrShipmentNotFound
	}

	return nil
}

func (r *Repository) NextID(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(MAX(id), 0) + 1 FROM shipments`

	var id int64
	err := r.querier.QueryRow(ctx, query).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository nextid error: %w", err)
	}

	return id, nil
}

func (r *Repository) missingOr(ctx context.Context, id int64, otherwise error) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shipments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository exists error: %w", err)
	}
	if !exists {
		return shipment.ErrShipmentNotFound
	}
	return otherwise
}
