//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=audit_test
package audit

import (
	"context"

	"ledger/internal/entities"
)

type CheckpointRepository interface {
	// Get нулевой checkpoint, если аудит еще ничего не проверял.
	Get(ctx context.Context) (*entities.AuditCheckpoint, error)
	Save(ctx context.Context, checkpoint entities.AuditCheckpoint) error
}

type CheckFn func(event *entities.Event) error

type PayloadCheckerFactory interface {
	GetChecker(eventType entities.EventType) (CheckFn, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
