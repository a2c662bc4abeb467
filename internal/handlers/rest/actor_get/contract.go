//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=actor_get_test
package actor_get

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
	GetActorRole(ctx context.Context, identity entities.Address) (entities.Role, error)
}
