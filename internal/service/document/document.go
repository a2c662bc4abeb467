package document

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"ledger/internal/entities"
	"ledger/internal/policy"
)

type Document struct {
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
) *Document {
	return &Document{
		repository: repository,
		shipments:  shipments,
		actors:     actors,
		journal:    journal,
		txManager:  txManager,
	}
}

func (s *Document) AddBillOfLading(ctx context.Context, caller entities.Address, id int64, hash, location string) error {
	hash = strings.TrimSpace(hash)
	location = strings.TrimSpace(location)

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.shipments.GetShipment(ctx, id)
		if err != nil {
			return fmt.Errorf("add bill of lading: %w", err)
		}

		role, err := s.actors.GetActorRole(ctx, caller)
		if err != nil {
			return fmt.Errorf("resolve caller role: %w", err)
		}
		if err := policy.Evaluate(policy.AddBillOfLading, caller, role, shipment); err != nil {
			return err
		}
		if shipment.BoLAdded {
			return ErrBoLAlreadyAdded
		}
		if hash == "" {
			return ErrEmptyHash
		}
		if location == "" {
			return ErrEmptyLocation
		}

		err = s.repository.Create(ctx, entities.Document{
			ShipmentID: id,
			Hash:       hash,
			Location:   location,
			AccessSet:  seedAccessSet(shipment),
			AddedBy:    caller,
			AddedAt:    time.Now().UTC().Truncate(time.Microsecond),
		})
		if err != nil {
			return fmt.Errorf("create document: %w", err)
		}

		_, err = s.journal.Record(ctx, entities.EventDraft{
			Type:       entities.EventDocumentAdded,
			ShipmentID: id,
			Actor:      caller,
			Payload: entities.DocumentAddedPayload{
				ID:       id,
				Hash:     hash,
				Location: location,
				AddedBy:  caller,
			},
		})
		if err != nil {
			return fmt.Errorf("record document added: %w", err)
		}
		return nil
	})
}

// GrantDocumentAccess повторная выдача успешна и ничего не пишет в журнал.
func (s *Document) GrantDocumentAccess(ctx context.Context, caller entities.Address, id int64, identity entities.Address) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.shipments.GetShipment(ctx, id)
		if err != nil {
			return fmt.Errorf("grant document access: %w", err)
		}

		role, err := s.actors.GetActorRole(ctx, caller)
		if err != nil {
			return fmt.Errorf("resolve caller role: %w", err)
		}
		if err := policy.Evaluate(policy.GrantDocumentAccess, caller, role, shipment); err != nil {
			return err
		}

		doc, err := s.repository.GetByShipmentID(ctx, id)
		if err != nil {
			return fmt.Errorf("grant document access: %w", err)
		}
		if identity.IsNull() {
			return ErrNullGrantee
		}

		added, err := s.repository.AddAccess(ctx, id, identity)
		if err != nil {
			return fmt.Errorf("add document access: %w", err)
		}
		if !added {
			return nil
		}

		_, err = s.journal.Record(ctx, entities.EventDraft{
			Type:       entities.EventDocumentAccessGranted,
			ShipmentID: id,
			Actor:      caller,
			Payload: entities.DocumentAccessGrantedPayload{
				ID:      id,
				Hash:    doc.Hash,
				Grantee: identity,
				Grantor: caller,
			},
		})
		if err != nil {
			return fmt.Errorf("record document access granted: %w", err)
		}
		return nil
	})
}

func (s *Document) GetDocumentLocation(ctx context.Context, caller entities.Address, id int64) (string, error) {
	doc, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	if !doc.HasAccess(caller) {
		return "", ErrNoDocumentAccess
	}
	return doc.Location, nil
}

// GetDocumentHash публичный: хеш нужен любому для проверки целостности.
func (s *Document) GetDocumentHash(ctx context.Context, id int64) (string, error) {
	doc, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	return doc.Hash, nil
}

// HasDocumentAccess false, пока коносамент не приложен.
func (s *Document) HasDocumentAccess(ctx context.Context, id int64, identity entities.Address) (bool, error) {
	doc, err := s.load(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrBoLNotAdded) {
			return false, nil
		}
		return false, err
	}
	return doc.HasAccess(identity), nil
}

func (s *Document) load(ctx context.Context, id int64) (*entities.Document, error) {
	_, err := s.shipments.GetShipment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := s.repository.GetByShipmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return doc, nil
}

func seedAccessSet(s *entities.Shipment) []entities.Address {
	set := make([]entities.Address, 0, 3)
	for _, addr := range []entities.Address{s.Shipper, s.Carrier, s.Consignee} {
		if !slices.Contains(set, addr) {
			set = append(set, addr)
		}
	}
	return set
}
