//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=actor_post_test
package actor_post

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
	RegisterActor(ctx context.Context, caller, identity entities.Address, role entities.Role) error
}
