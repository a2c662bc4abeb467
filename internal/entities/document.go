package entities

import (
	"slices"
	"time"
)

// Document коносамент (Bill of Lading). Хеш и location пишутся один раз,
// список доступа только растет.
type Document struct {
	ShipmentID int64
	Hash       string
	Location   string
	AccessSet  []Address
	AddedBy    Address
	AddedAt    time.Time
}

func (d *Document) HasAccess(addr Address) bool {
	if addr.IsNull() {
		return false
	}
	return slices.Contains(d.AccessSet, addr)
}

type DemurrageRecord struct {
	ShipmentID int64
	Amount     int64
	Payee      Address
	RecordedBy Address
	IsPaid     bool
	RecordedAt time.Time
	PaidAt     time.Time
}

// Recorded false для записи по умолчанию (демерредж еще не начислен).
func (d *DemurrageRecord) Recorded() bool {
	return !d.Payee.IsNull()
}
