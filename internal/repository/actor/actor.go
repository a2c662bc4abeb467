package actor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"ledger/internal/entities"
	"ledger/internal/repository"
	"ledger/internal/service/actor"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, a entities.Actor) error {
	query := `INSERT INTO actors (address, role, registered_by, registered_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(
		ctx,
		query,
		a.Address.String(),
		a.Role.String(),
		a.RegisteredBy.String(),
		a.RegisteredAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return actor.ErrActorAlreadyExists
		}
		return fmt.Errorf("unexpected actor repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetRole(ctx context.Context, address entities.Address) (entities.Role, error) {
	if address.IsNull() {
		return entities.RoleNone, nil
	}

	query := `SELECT role FROM actors WHERE address = $1`

	var role string
	err := r.querier.QueryRow(ctx, query, address.String()).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.RoleNone, nil
		}
		return entities.RoleNone, fmt.Errorf("unexpected actor repository getrole error: %w", err)
	}

	return entities.Role(role), nil
}
