//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_details_post_test
package shipment_details_post

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
	AddShipmentDetails(ctx context.Context, caller entities.Address, id int64, containerType entities.ContainerType, weightKg int64) error
}
