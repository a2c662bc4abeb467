//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=document_hash_get_test
package document_hash_get

import (
	"context"

	"ledger/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetDocumentHash(ctx context.Context, id int64) (string, error)
}
