package shipment

import "time"

type ShipmentDB struct {
	ID            int64
	Shipper       string
	Carrier       string
	Consignee     string
	Status        string
	ContainerType *string
	WeightKg      *int64
	BoLAdded      bool
	CreatedAt     time.Time
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
}
