//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=demurrage_paid_post_test
package demurrage_paid_post

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
	MarkDemurragePaid(ctx context.Context, caller entities.Address, id int64) error
}
