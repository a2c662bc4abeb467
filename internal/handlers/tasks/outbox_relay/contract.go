//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_relay_test
package outbox_relay

import (
	"context"

	"ledger/internal/entities"
)

type Journal interface {
	List(ctx context.Context, after int64, limit int) ([]entities.Event, error)
}

type CursorRepository interface {
	GetCursor(ctx context.Context) (int64, error)
	SaveCursor(ctx context.Context, lastSequence int64) error
}

type Publisher interface {
	Publish(ctx context.Context, events []entities.Event) error
}
