package shipment

import (
	"ledger/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	shipment := &entities.Shipment{
		ID:        s.ID,
		Shipper:   entities.Address(s.Shipper),
		Carrier:   entities.Address(s.Carrier),
		Consignee: entities.Address(s.Consignee),
		Status:    entities.ShipmentStatus(s.Status),
		BoLAdded:  s.BoLAdded,
		CreatedAt: s.CreatedAt.UTC(),
	}
	if s.ContainerType != nil && s.WeightKg != nil {
		shipment.Details = &entities.CargoDetails{
			ContainerType: entities.ContainerType(*s.ContainerType),
			WeightKg:      *s.WeightKg,
		}
	}
	if s.PickedUpAt != nil {
		shipment.PickedUpAt = s.PickedUpAt.UTC()
	}
	if s.DeliveredAt != nil {
		shipment.DeliveredAt = s.DeliveredAt.UTC()
	}

	return shipment
}
