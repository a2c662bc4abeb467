//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=document_post_test
package document_post

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
	AddBillOfLading(ctx context.Context, caller entities.Address, id int64, hash, location string) error
}
