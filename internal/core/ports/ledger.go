package ports

import "github.com/citypark/parking-system/internal/core/domain"

// BillingRow is one closed stay reported for a lot and exit date.
type BillingRow struct {
	LicensePlate string
	ExitClock    domain.Clock
	Fee          float64
}

// RevenueRow is one day of nonzero revenue for a lot.
type RevenueRow struct {
	Date  domain.Date
	Total float64
}

// VehicleLedger stores every entry/exit event in the system and owns the
// event records exclusively. Implementations keep per-plate lookups cheap;
// the daily views scan the whole store.
type VehicleLedger interface {
	// IsParkedAnywhere reports whether an open event exists for plate in any lot.
	IsParkedAnywhere(plate string) bool
	// IsParkedHere reports whether an open event exists for plate in the given lot.
	IsParkedHere(lot, plate string) bool
	// RecordEntry appends a new open event. The caller guarantees the plate
	// is not already parked and the lot exists with capacity to spare.
	RecordEntry(lot, plate string, entry domain.Timestamp)
	// RecordExit closes the open event for (plate, lot), computing and
	// caching the fee from the tariff. Returns domain.ErrNoOpenEvent when no
	// matching open event exists.
	RecordExit(lot, plate string, exit domain.Timestamp, tariff domain.Tariff) (*domain.VehicleEvent, error)
	// HistoryForPlate returns every event for the plate, open and closed, in
	// no particular order.
	HistoryForPlate(plate string) []*domain.VehicleEvent
	// DailyBillingsForLotAndDate returns a row per closed event of the lot
	// whose exit date matches, in store order.
	DailyBillingsForLotAndDate(lot string, date domain.Date) []BillingRow
	// RemoveAllForLot deletes every event belonging to the lot and returns
	// how many of them were still open.
	RemoveAllForLot(lot string) int
}
