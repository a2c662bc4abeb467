//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=document_test
package document

import (
	"context"

	"ledger/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, document entities.Document) error
	GetByShipmentID(ctx context.Context, shipmentID int64) (*entities.Document, error)
	// AddAccess true, если identity добавлен впервые.
	AddAccess(ctx context.Context, shipmentID int64, identity entities.Address) (bool, error)
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
