package common

import (
	"time"

	"github.com/AlekSi/pointer"
	"ledger/internal/entities"
	"ledger/internal/generated/dto"
)

func ShipmentToDTO(s *entities.Shipment) dto.Shipment {
	cargo := s.Cargo()
	return dto.Shipment{
		Id:            s.ID,
		Shipper:       s.Shipper.String(),
		Carrier:       s.Carrier.String(),
		Consignee:     s.Consignee.String(),
		Status:        dto.ShipmentStatus(s.Status),
		ContainerType: dto.ContainerType(cargo.ContainerType),
		WeightKg:      cargo.WeightKg,
		DetailsAdded:  s.DetailsAdded(),
		BolAdded:      s.BoLAdded,
		CreatedAt:     s.CreatedAt.UTC(),
		PickedUpAt:    optionalTime(s.PickedUpAt),
		DeliveredAt:   optionalTime(s.DeliveredAt),
	}
}

func DemurrageToDTO(d *entities.DemurrageRecord) dto.Demurrage {
	return dto.Demurrage{
		ShipmentId: d.ShipmentID,
		Amount:     d.Amount,
		Payee:      d.Payee.String(),
		RecordedBy: d.RecordedBy.String(),
		Recorded:   d.Recorded(),
		IsPaid:     d.IsPaid,
		RecordedAt: optionalTime(d.RecordedAt),
		PaidAt:     optionalTime(d.PaidAt),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return pointer.To(t.UTC())
}
