package actor

import (
	"context"
	"fmt"
	"time"

	"ledger/internal/entities"
)

// Actor реестр участников. Роль выдается один раз и навсегда,
// выдавать может только registrar.
type Actor struct {
	repository Repository
	journal    Journal
	txManager  TxManager
	registrar  entities.Address
}

func New(repository Repository, journal Journal, txManager TxManager, registrar entities.Address) *Actor {
	return &Actor{
		repository: repository,
		journal:    journal,
		txManager:  txManager,
		registrar:  registrar,
	}
}

func (s *Actor) RegisterActor(ctx context.Context, caller, identity entities.Address, role entities.Role) error {
	if caller.IsNull() || caller != s.registrar {
		return ErrNotRegistrar
	}
	if identity.IsNull() {
		return ErrNullIdentity
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetRole(ctx, identity)
		if err != nil {
			return fmt.Errorf("get actor role: %w", err)
		}
		if current != entities.RoleNone {
			return ErrActorAlreadyExists
		}
		if !role.Assignable() {
			return ErrRoleNotAssignable
		}

		err = s.repository.Create(ctx, entities.Actor{
			Address:      identity,
			Role:         role,
			RegisteredBy: caller,
			RegisteredAt: time.Now().UTC().Truncate(time.Microsecond),
		})
		if err != nil {
			return fmt.Errorf("create actor: %w", err)
		}

		_, err = s.journal.Record(ctx, entities.EventDraft{
			Type:    entities.EventActorRegistered,
			Actor:   caller,
			Payload: entities.ActorRegisteredPayload{Identity: identity, Role: role},
		})
		if err != nil {
			return fmt.Errorf("record actor registered: %w", err)
		}
		return nil
	})
}

func (s *Actor) GetActorRole(ctx context.Context, identity entities.Address) (entities.Role, error) {
	if identity.IsNull() {
		return entities.RoleNone, nil
	}

	role, err := s.repository.GetRole(ctx, identity)
	if err != nil {
		return entities.RoleNone, fmt.Errorf("get actor role: %w", err)
	}
	return role, nil
}

func (s *Actor) IsActorRegistered(ctx context.Context, identity entities.Address) (bool, error) {
	role, err := s.GetActorRole(ctx, identity)
	if err != nil {
		return false, err
	}
	return role != entities.RoleNone, nil
}

func (s *Actor) Registrar() entities.Address {
	return s.registrar
}
