//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_next_id_get_test
package shipment_next_id_get

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
	NextShipmentID(ctx context.Context) (int64, error)
}
