//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"ledger/internal/entities"
)

type Repository interface {
	// Create выдает следующий плотный id, вызывать только под блокировкой записи.
	Create(ctx context.Context, shipment entities.Shipment) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	UpdateDetails(ctx context.Context, id int64, details entities.CargoDetails) error
	UpdateStatus(ctx context.Context, id int64, status entities.ShipmentStatus, at time.Time) error
	NextID(ctx context.Context) (int64, error)
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
