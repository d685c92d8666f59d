// Package memory provides the in-process storage for the parking system:
// the bucket-hashed vehicle ledger and the bounded lot registry. Nothing is
// persisted; process restart resets all state.
package memory

import (
	"github.com/citypark/parking-system/internal/core/domain"
	"github.com/citypark/parking-system/internal/core/ports"
)

// DefaultBucketCount is the ledger bucket-array size used when the
// configuration does not override it.
const DefaultBucketCount = 128

// Hash coefficients for the plate hash. The multiplier evolves per character
// modulo bucketCount-1, so bucket counts below 2 are not supported.
const (
	hashSeedA = 31415
	hashSeedB = 27183
)

// VehicleLedger is a fixed-size bucket array keyed by a polynomial hash of
// the licence plate. Each bucket holds its events in append order, which the
// open-event scans and the per-lot/day views rely on.
type VehicleLedger struct {
	buckets [][]*domain.VehicleEvent
}

var _ ports.VehicleLedger = (*VehicleLedger)(nil)

// NewVehicleLedger creates a ledger with the given bucket count, falling
// back to DefaultBucketCount for counts below 2.
func NewVehicleLedger(bucketCount int) *VehicleLedger {
	if bucketCount < 2 {
		bucketCount = DefaultBucketCount
	}
	return &VehicleLedger{buckets: make([][]*domain.VehicleEvent, bucketCount)}
}

// bucketIndex folds the plate into a bucket using the evolving-coefficient
// polynomial hash. Deterministic for a given plate and bucket count.
func (l *VehicleLedger) bucketIndex(plate string) int {
	n := len(l.buckets)
	index := 0
	a := hashSeedA
	for i := 0; i < len(plate); i++ {
		index = (a*index + int(plate[i])) % n
		a = a * hashSeedB % (n - 1)
	}
	return index
}

// openEvent returns the open event for plate, optionally restricted to a
// lot (empty lot matches any).
func (l *VehicleLedger) openEvent(lot, plate string) *domain.VehicleEvent {
	for _, event := range l.buckets[l.bucketIndex(plate)] {
		if event.LicensePlate != plate || !event.Open() {
			continue
		}
		if lot == "" || event.LotName == lot {
			return event
		}
	}
	return nil
}

// IsParkedAnywhere reports whether plate has an open event in any lot.
func (l *VehicleLedger) IsParkedAnywhere(plate string) bool {
	return l.openEvent("", plate) != nil
}

// IsParkedHere reports whether plate has an open event in the given lot.
func (l *VehicleLedger) IsParkedHere(lot, plate string) bool {
	return l.openEvent(lot, plate) != nil
}

// RecordEntry appends a new open event at the tail of the plate's bucket.
func (l *VehicleLedger) RecordEntry(lot, plate string, entry domain.Timestamp) {
	index := l.bucketIndex(plate)
	l.buckets[index] = append(l.buckets[index], &domain.VehicleEvent{
		LicensePlate: plate,
		LotName:      lot,
		Entry:        entry,
	})
}

// RecordExit closes the open event for (plate, lot), caching the computed
// fee on the event.
func (l *VehicleLedger) RecordExit(lot, plate string, exit domain.Timestamp, tariff domain.Tariff) (*domain.VehicleEvent, error) {
	event := l.openEvent(lot, plate)
	if event == nil {
		return nil, domain.ErrNoOpenEvent
	}
	fee, err := tariff.FeeFor(event.Entry, exit)
	if err != nil {
		return nil, err
	}
	event.Exit = exit
	event.Fee = fee
	event.Departed = true
	return event, nil
}

// HistoryForPlate returns every event for plate in bucket order. Sorting is
// the caller's concern.
func (l *VehicleLedger) HistoryForPlate(plate string) []*domain.VehicleEvent {
	var events []*domain.VehicleEvent
	for _, event := range l.buckets[l.bucketIndex(plate)] {
		if event.LicensePlate == plate {
			events = append(events, event)
		}
	}
	return events
}

// DailyBillingsForLotAndDate scans all buckets for closed events of the lot
// whose exit date matches.
func (l *VehicleLedger) DailyBillingsForLotAndDate(lot string, date domain.Date) []ports.BillingRow {
	var rows []ports.BillingRow
	for _, bucket := range l.buckets {
		for _, event := range bucket {
			if event.Departed && event.LotName == lot && event.Exit.Date == date {
				rows = append(rows, ports.BillingRow{
					LicensePlate: event.LicensePlate,
					ExitClock:    event.Exit.Clock,
					Fee:          event.Fee,
				})
			}
		}
	}
	return rows
}

// RemoveAllForLot drops every event of the lot from every bucket, keeping
// the relative order of the survivors. It returns the number of dropped
// events that were still open.
func (l *VehicleLedger) RemoveAllForLot(lot string) int {
	open := 0
	for i, bucket := range l.buckets {
		kept := bucket[:0]
		for _, event := range bucket {
			if event.LotName != lot {
				kept = append(kept, event)
				continue
			}
			if event.Open() {
				open++
			}
		}
		for j := len(kept); j < len(bucket); j++ {
			bucket[j] = nil
		}
		l.buckets[i] = kept
	}
	return open
}
