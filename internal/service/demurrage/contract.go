//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=demurrage_test
package demurrage

import (
	"context"
	"time"

	"ledger/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, record entities.DemurrageRecord) error
	// GetByShipmentID возвращает ErrDemurrageNotRecorded, если записи нет.
	GetByShipmentID(ctx context.Context, shipmentID int64) (*entities.DemurrageRecord, error)
	MarkPaid(ctx context.Context, shipmentID int64, paidAt time.Time) error
}

type ShipmentReader interface {
	GetShipment(ctx context.Context, id int64) (*entities.Shipment, error)
}

type ActorRegistry interface {
	GetActorRole(ctx context.Context, identity entities.Address) (entities.Role, error)
}

type Journal interface {
	Record(ctx context.Context, draft entities.EventDraft) (*entities.Event, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
