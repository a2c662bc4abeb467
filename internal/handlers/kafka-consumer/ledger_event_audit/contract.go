//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ledger_event_audit_test
package ledger_event_audit

import (
	"context"

	"ledger/internal/entities"
	"ledger/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessEvent(ctx context.Context, event entities.Event) (*entities.AuditCheckpoint, error)
}
