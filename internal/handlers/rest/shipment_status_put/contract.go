//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_put_test
package shipment_status_put

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
	UpdateShipmentStatus(ctx context.Context, caller entities.Address, id int64, target entities.ShipmentStatus) error
}
