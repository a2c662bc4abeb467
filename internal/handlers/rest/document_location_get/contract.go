//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=document_location_get_test
package document_location_get

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
	GetDocumentLocation(ctx context.Context, caller entities.Address, id int64) (string, error)
}
