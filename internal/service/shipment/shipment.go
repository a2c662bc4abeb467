package shipment

import (
	"context"
	"fmt"
	"time"

	"ledger/internal/entities"
	"ledger/internal/policy"
)

type Shipment struct {
	repository Repository
	actors     ActorRegistry
	journal    Journal
	txManager  TxManager
}

func New(repository Repository, actors ActorRegistry, journal Journal, txManager TxManager) *Shipment {
	return &Shipment{
		repository: repository,
		actors:     actors,
		journal:    journal,
		txManager:  txManager,
	}
}

func (s *Shipment) CreateShipment(ctx context.Context, caller, carrier, consignee entities.Address) (int64, error) {
	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		role, err := s.actors.GetActorRole(ctx, caller)
		if err != nil {
			return fmt.Errorf("resolve caller role: %w", err)
		}
		if err := policy.Evaluate(policy.CreateShipment, caller, role, nil); err != nil {
			return err
		}
		if carrier.IsNull() || consignee.IsNull() {
			return ErrNullParty
		}

		now := time.Now().UTC().Truncate(time.Microsecond)
		id, err = s.repository.Create(ctx, entities.Shipment{
			Shipper:   caller,
			Carrier:   carrier,
			Consignee: consignee,
			Status:    entities.StatusCreated,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}

		_, err = s.journal.Record(ctx, entities.EventDraft{
			Type:       entities.EventShipmentCreated,
			ShipmentID: id,
			Actor:      caller,
			Payload: entities.ShipmentCreatedPayload{
				ID:            id,
				Shipper:       caller,
				Carrier:       carrier,
				Consignee:     consignee,
				ContainerType: entities.DefaultContainerType,
				WeightKg:      0,
			},
		})
		if err != nil {
			return fmt.Errorf("record shipment created: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Shipment) AddShipmentDetails(
	ctx context.Context,
	caller entities.Address,
	id int64,
	containerType entities.ContainerType,
	weightKg int64,
) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		role, err := s.actors.GetActorRole(ctx, caller)
		if err != nil {
			return fmt.Errorf("resolve caller role: %w", err)
		}
		if err := policy.Evaluate(policy.AddShipmentDetails, caller, role, shipment); err != nil {
			return err
		}
		if shipment.DetailsAdded() {
			return ErrDetailsAlreadyAdded
		}
		if !containerType.Known() {
			return ErrUnknownContainerType
		}
		if weightKg < 0 {
			return ErrNegativeWeight
		}

		details := entities.CargoDetails{ContainerType: containerType, WeightKg: weightKg}
		err = s.repository.UpdateDetails(ctx, id, details)
		if err != nil {
			return fmt.Errorf("update shipment details: %w", err)
		}

		_, err = s.journal.Record(ctx, entities.EventDraft{
			Type:       entities.EventShipmentDetailsAdded,
			ShipmentID: id,
			Actor:      caller,
			Payload: entities.ShipmentDetailsAddedPayload{
				ID:            id,
				ContainerType: containerType,
				WeightKg:      weightKg,
			},
		})
		if err != nil {
			return fmt.Errorf("record shipment details added: %w", err)
		}
		return nil
	})
}

// UpdateShipmentStatus порядок проверок: существование, известная цель,
// права (роль и сторона), исходный статус.
func (s *Shipment) UpdateShipmentStatus(
	ctx context.Context,
	caller entities.Address,
	id int64,
	target entities.ShipmentStatus,
) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		rule, err := policy.ForTarget(target)
		if err != nil {
			return err
		}

		role, err := s.actors.GetActorRole(ctx, caller)
		if err != nil {
			return fmt.Errorf("resolve caller role: %w", err)
		}
		if err := rule.Authorize(caller, role, shipment); err != nil {
			return err
		}
		if err := rule.CheckState(shipment); err != nil {
			return err
		}

		now := time.Now().UTC().Truncate(time.Microsecond)
		err = s.repository.UpdateStatus(ctx, id, target, now)
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		_, err = s.journal.Record(ctx, entities.EventDraft{
			Type:       entities.EventShipmentStatusUpdated,
			ShipmentID: id,
			Actor:      caller,
			Payload: entities.ShipmentStatusUpdatedPayload{
				ID:        id,
				Status:    target,
				UpdatedBy: caller,
			},
		})
		if err != nil {
			return fmt.Errorf("record shipment status updated: %w", err)
		}
		return nil
	})
}

func (s *Shipment) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	return s.load(ctx, id)
}

func (s *Shipment) NextShipmentID(ctx context.Context) (int64, error) {
	id, err := s.repository.NextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("next shipment id: %w", err)
	}
	return id, nil
}

func (s *Shipment) load(ctx context.Context, id int64) (*entities.Shipment, error) {
	if id <= 0 {
		return nil, ErrShipmentNotFound
	}

	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment %d: %w", id, err)
	}
	return shipment, nil
}
