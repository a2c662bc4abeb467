//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=journal_test
package journal

import (
	"context"

	"ledger/internal/entities"
)

type Repository interface {
	// Last nil, если журнал пуст.
	Last(ctx context.Context) (*entities.Event, error)
	Append(ctx context.Context, event entities.Event) error
	ListAfter(ctx context.Context, after int64, limit int) ([]entities.Event, error)
}
