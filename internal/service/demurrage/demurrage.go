package demurrage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ledger/internal/entities"
	"ledger/internal/policy"
)

// Demurrage не больше одной записи на отправку, запись только дополняется
// отметкой об оплате.
type Demurrage struct {
	repository Repository
	shipments  ShipmentReader
	actors     ActorRegistry
	journal    Journal
	txManager  TxManager
}

func New(
	repository Repository,
	shipments ShipmentReader,
	actors ActorRegistry,
	journal Journal,
	txManager TxManager,
) *Demurrage {
	return &Demurrage{
		repository: repository,
		shipments:  shipments,
		actors:     actors,
		journal:    journal,
		txManager:  txManager,
	}
}

// RecordDemurrage право на операцию определяется ролью, а не участием
// в отправке, поэтому роль проверяется раньше существования отправки.
func (s *Demurrage) RecordDemurrage(
	ctx context.Context,
	caller entities.Address,
	id int64,
	amount int64,
	payee entities.Address,
) error {
	rule, err := policy.Lookup(policy.RecordDemurrage)
	if err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		role, err := s.actors.GetActorRole(ctx, caller)
		if err != nil {
			return fmt.Errorf("resolve caller role: %w", err)
		}
		if err := rule.Authorize(caller, role, nil); err != nil {
			return err
		}

		shipment, err := s.shipments.GetShipment(ctx, id)
		if err != nil {
			return fmt.Errorf("record demurrage: %w", err)
		}
		if err := rule.CheckState(shipment); err != nil {
			return err
		}
		if payee.IsNull() {
			return ErrNullPayee
		}
		if amount < 0 {
			return ErrNegativeAmount
		}

		_, err = s.repository.GetByShipmentID(ctx, id)
		switch {
		case err == nil:
			return ErrDemurrageAlreadyExists
		case !errors.Is(err, ErrDemurrageNotRecorded):
			return fmt.Errorf("get demurrage: %w", err)
		}

		err = s.repository.Create(ctx, entities.DemurrageRecord{
			ShipmentID: id,
			Amount:     amount,
			Payee:      payee,
			RecordedBy: caller,
			RecordedAt: time.Now().UTC().Truncate(time.Microsecond),
		})
		if err != nil {
			return fmt.Errorf("create demurrage: %w", err)
		}

		_, err = s.journal.Record(ctx, entities.EventDraft{
			Type:       entities.EventDemurrageRecorded,
			ShipmentID: id,
			Actor:      caller,
			Payload: entities.DemurrageRecordedPayload{
				ID:         id,
				Amount:     amount,
				Payee:      payee,
				RecordedBy: caller,
			},
		})
		if err != nil {
			return fmt.Errorf("record demurrage recorded: %w", err)
		}
		return nil
	})
}

// GetDemurrageDetails для существующей отправки без демерреджа возвращает
// запись по умолчанию, для несуществующей NotFound.
func (s *Demurrage) GetDemurrageDetails(ctx context.Context, id int64) (*entities.DemurrageRecord, error) {
	_, err := s.shipments.GetShipment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get demurrage details: %w", err)
	}

	record, err := s.repository.GetByShipmentID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrDemurrageNotRecorded) {
			return &entities.DemurrageRecord{ShipmentID: id}, nil
		}
		return nil, fmt.Errorf("get demurrage details: %w", err)
	}
	return record, nil
}

func (s *Demurrage) MarkDemurragePaid(ctx context.Context, caller entities.Address, id int64) error {
	if caller.IsNull() {
		return ErrNotPayee
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.shipments.GetShipment(ctx, id)
		if err != nil {
			return fmt.Errorf("mark demurrage paid: %w", err)
		}

		record, err := s.repository.GetByShipmentID(ctx, id)
		if err != nil {
			return fmt.Errorf("mark demurrage paid: %w", err)
		}
		if record.Payee != caller {
			return ErrNotPayee
		}
		if record.IsPaid {
			return ErrAlreadyPaid
		}

		err = s.repository.MarkPaid(ctx, id, time.Now().UTC().Truncate(time.Microsecond))
		if err != nil {
			return fmt.Errorf("mark demurrage paid: %w", err)
		}

		_, err = s.journal.Record(ctx, entities.EventDraft{
			Type:       entities.EventDemurragePaid,
			ShipmentID: id,
			Actor:      caller,
			Payload: entities.DemurragePaidPayload{
				ID:     id,
				Amount: record.Amount,
				Payee:  record.Payee,
			},
		})
		if err != nil {
			return fmt.Errorf("record demurrage paid: %w", err)
		}
		return nil
	})
}
