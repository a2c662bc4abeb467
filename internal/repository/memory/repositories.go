package memory

import (
	"context"
	"slices"
	"time"

	"ledger/internal/entities"
	"ledger/internal/service/actor"
	"ledger/internal/service/demurrage"
	"ledger/internal/service/document"
	"ledger/internal/service/shipment"
)

type Actors struct {
	store *Store
}

func (r *Actors) Create(ctx context.Context, a entities.Actor) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.actors[a.Address]; ok {
			return actor.ErrActorAlreadyExists
		}
		st.actors[a.Address] = a
		return nil
	})
}

func (r *Actors) GetRole(ctx context.Context, address entities.Address) (entities.Role, error) {
	a, ok := r.store.read(ctx).actors[address]
	if !ok {
		return entities.RoleNone, nil
	}
	return a.Role, nil
}

type Shipments struct {
	store *Store
}

func (r *Shipments) Create(ctx context.Context, s entities.Shipment) (int64, error) {
	var id int64
	err := r.store.write(ctx, func(st *state) error {
		id = int64(len(st.shipments)) + 1
		s.ID = id
		s.Details = nil
		s.BoLAdded = false
		st.shipments[id] = s
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Shipments) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	st := r.store.read(ctx)
	s, ok := st.shipments[id]
	if !ok {
		return nil, shipment.ErrShipmentNotFound
	}
	if s.Details != nil {
		details := *s.Details
		s.Details = &details
	}
	_, s.BoLAdded = st.documents[id]
	return &s, nil
}

func (r *Shipments) UpdateDetails(ctx context.Context, id int64, details entities.CargoDetails) error {
	return r.store.write(ctx, func(st *state) error {
		s, ok := st.shipments[id]
		if !ok {
			return shipment.ErrShipmentNotFound
		}
		if s.Details != nil {
			return shipment.ErrDetailsAlreadyAdded
		}
		s.Details = &details
		st.shipments[id] = s
		return nil
	})
}

func (r *Shipments) UpdateStatus(ctx context.Context, id int64, status entities.ShipmentStatus, at time.Time) error {
	return r.store.write(ctx, func(st *state) error {
		s, ok := st.shipments[id]
		if !ok {
			return shipment.ErrShipmentNotFound
		}
		s.Status = status
		switch status {
		case entities.StatusPickedUp:
			s.PickedUpAt = at
		case entities.StatusDelivered:
			s.DeliveredAt = at
		}
		st.shipments[id] = s
		return nil
	})
}

func (r *Shipments) NextID(ctx context.Context) (int64, error) {
	return int64(len(r.store.read(ctx).shipments)) + 1, nil
}

type Documents struct {
	store *Store
}

func (r *Documents) Create(ctx context.Context, doc entities.Document) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.shipments[doc.ShipmentID]; !ok {
			return shipment.ErrShipmentNotFound
		}
		if _, ok := st.documents[doc.ShipmentID]; ok {
			return document.ErrBoLAlreadyAdded
		}
		doc.AccessSet = slices.Clone(doc.AccessSet)
		st.documents[doc.ShipmentID] = doc
		return nil
	})
}

func (r *Documents) GetByShipmentID(ctx context.Context, shipmentID int64) (*entities.Document, error) {
	doc, ok := r.store.read(ctx).documents[shipmentID]
	if !ok {
		return nil, document.ErrBoLNotAdded
	}
	doc.AccessSet = slices.Clone(doc.AccessSet)
	return &doc, nil
}

// AddAccess новый срез на каждую выдачу: зафиксированное состояние не меняется.
func (r *Documents) AddAccess(ctx context.Context, shipmentID int64, identity entities.Address) (bool, error) {
	var added bool
	err := r.store.write(ctx, func(st *state) error {
		doc, ok := st.documents[shipmentID]
		if !ok {
			return document.ErrBoLNotAdded
		}
		if slices.Contains(doc.AccessSet, identity) {
			return nil
		}
		access := make([]entities.Address, 0, len(doc.AccessSet)+1)
		doc.AccessSet = append(append(access, doc.AccessSet...), identity)
		st.documents[shipmentID] = doc
		added = true
		return nil
	})
	return added, err
}

type Demurrage struct {
	store *Store
}

func (r *Demurrage) Create(ctx context.Context, record entities.DemurrageRecord) error {
	return r.store.write(ctx, func(st *state) error {
		if _, ok := st.shipments[record.ShipmentID]; !ok {
			return shipment.ErrShipmentNotFound
		}
		if _, ok := st.demurrage[record.ShipmentID]; ok {
			return demurrage.ErrDemurrageAlreadyExists
		}
		record.IsPaid = false
		record.PaidAt = time.Time{}
		st.demurrage[record.ShipmentID] = record
		return nil
	})
}

func (r *Demurrage) GetByShipmentID(ctx context.Context, shipmentID int64) (*entities.DemurrageRecord, error) {
	record, ok := r.store.read(ctx).demurrage[shipmentID]
	if !ok {
		return nil, demurrage.ErrDemurrageNotRecorded
	}
	return &record, nil
}

func (r *Demurrage) MarkPaid(ctx context.Context, shipmentID int64, paidAt time.Time) error {
	return r.store.write(ctx, func(st *state) error {
		record, ok := st.demurrage[shipmentID]
		if !ok {
			return demurrage.ErrDemurrageNotRecorded
		}
		if record.IsPaid {
			return demurrage.ErrAlreadyPaid
		}
		record.IsPaid = true
		record.PaidAt = paidAt
		st.demurrage[shipmentID] = record
		return nil
	})
}
