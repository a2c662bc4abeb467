//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=actor_test
package actor

import (
	"context"

	"ledger/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, actor entities.Actor) error
	// GetRole возвращает RoleNone для незарегистрированных.
	GetRole(ctx context.Context, address entities.Address) (entities.Role, error)
}

type Journal interface {
	Record(ctx context.Context, draft entities.EventDraft) (*entities.Event, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
