package memory

import (
	"errors"
	"math"
	"testing"

	"github.com/citypark/parking-system/internal/core/domain"
)

var tariff = domain.Tariff{
	QuarterHourlyRate:               0.25,
	QuarterHourlyRateAfterFirstHour: 0.30,
	MaxDailyCost:                    12.00,
}

func at(day, hour, minute int) domain.Timestamp {
	return domain.Timestamp{
		Date:  domain.Date{Day: day, Month: 1, Year: 2025},
		Clock: domain.Clock{Hour: hour, Minute: minute},
	}
}

func TestBucketIndex_DeterministicAndInRange(t *testing.T) {
	ledger := NewVehicleLedger(DefaultBucketCount)
	plates := []string{"AA-00-BB", "ZZ-99-XX", "01-AB-23", "AA-00-BC"}
	for _, plate := range plates {
		first := ledger.bucketIndex(plate)
		if first < 0 || first >= DefaultBucketCount {
			t.Fatalf("bucket for %s out of range: %d", plate, first)
		}
		if second := ledger.bucketIndex(plate); second != first {
			t.Fatalf("hash for %s not deterministic: %d vs %d", plate, first, second)
		}
	}
}

func TestRecordEntry_MarksParked(t *testing.T) {
	ledger := NewVehicleLedger(0)
	if ledger.IsParkedAnywhere("AA-00-BB") {
		t.Fatal("empty ledger reports a parked vehicle")
	}
	ledger.RecordEntry("central", "AA-00-BB", at(1, 8, 0))
	if !ledger.IsParkedAnywhere("AA-00-BB") {
		t.Fatal("vehicle not reported parked after entry")
	}
	if !ledger.IsParkedHere("central", "AA-00-BB") {
		t.Fatal("vehicle not reported parked in its lot")
	}
	if ledger.IsParkedHere("riverside", "AA-00-BB") {
		t.Fatal("vehicle reported parked in the wrong lot")
	}
}

func TestRecordExit_ClosesEventAndCachesFee(t *testing.T) {
	ledger := NewVehicleLedger(0)
	ledger.RecordEntry("central", "AA-00-BB", at(1, 8, 0))

	event, err := ledger.RecordExit("central", "AA-00-BB", at(1, 9, 30), tariff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Open() {
		t.Fatal("event still open after exit")
	}
	if math.Abs(event.Fee-1.60) > 1e-9 {
		t.Fatalf("cached fee: got %v, want 1.60", event.Fee)
	}
	if ledger.IsParkedAnywhere("AA-00-BB") {
		t.Fatal("vehicle still reported parked after exit")
	}
}

func TestRecordExit_NoOpenEvent(t *testing.T) {
	ledger := NewVehicleLedger(0)
	if _, err := ledger.RecordExit("central", "AA-00-BB", at(1, 9, 0), tariff); !errors.Is(err, domain.ErrNoOpenEvent) {
		t.Fatalf("expected ErrNoOpenEvent, got %v", err)
	}

	// Parked in another lot: still no open event for this lot.
	ledger.RecordEntry("riverside", "AA-00-BB", at(1, 8, 0))
	if _, err := ledger.RecordExit("central", "AA-00-BB", at(1, 9, 0), tariff); !errors.Is(err, domain.ErrNoOpenEvent) {
		t.Fatalf("expected ErrNoOpenEvent for wrong lot, got %v", err)
	}
}

func TestRecordExit_ExitBeforeEntryLeavesEventOpen(t *testing.T) {
	ledger := NewVehicleLedger(0)
	ledger.RecordEntry("central", "AA-00-BB", at(2, 8, 0))
	if _, err := ledger.RecordExit("central", "AA-00-BB", at(1, 8, 0), tariff); !errors.Is(err, domain.ErrExitBeforeEntry) {
		t.Fatalf("expected ErrExitBeforeEntry, got %v", err)
	}
	if !ledger.IsParkedHere("central", "AA-00-BB") {
		t.Fatal("failed exit must leave the event open")
	}
}

func TestHistoryForPlate(t *testing.T) {
	ledger := NewVehicleLedger(0)
	ledger.RecordEntry("central", "AA-00-BB", at(1, 8, 0))
	if _, err := ledger.RecordExit("central", "AA-00-BB", at(1, 9, 0), tariff); err != nil {
		t.Fatalf("exit failed: %v", err)
	}
	ledger.RecordEntry("riverside", "AA-00-BB", at(2, 10, 0))
	ledger.RecordEntry("central", "CC-11-DD", at(2, 11, 0))

	events := ledger.HistoryForPlate("AA-00-BB")
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, event := range events {
		if event.LicensePlate != "AA-00-BB" {
			t.Fatalf("foreign event in history: %+v", event)
		}
	}
}

func TestDailyBillings_FiltersClosedByLotAndDate(t *testing.T) {
	ledger := NewVehicleLedger(0)
	ledger.RecordEntry("central", "AA-00-BB", at(1, 8, 0))
	ledger.RecordEntry("central", "CC-11-DD", at(1, 8, 30))
	ledger.RecordEntry("riverside", "EE-22-FF", at(1, 9, 0))
	mustExit(t, ledger, "central", "AA-00-BB", at(1, 9, 0))
	mustExit(t, ledger, "riverside", "EE-22-FF", at(1, 10, 0))
	// CC-11-DD stays open and must not appear.

	rows := ledger.DailyBillingsForLotAndDate("central", domain.Date{Day: 1, Month: 1, Year: 2025})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].LicensePlate != "AA-00-BB" {
		t.Fatalf("wrong row: %+v", rows[0])
	}
	if rows[0].ExitClock.String() != "09:00" {
		t.Fatalf("wrong exit clock: %v", rows[0].ExitClock)
	}

	if rows := ledger.DailyBillingsForLotAndDate("central", domain.Date{Day: 2, Month: 1, Year: 2025}); len(rows) != 0 {
		t.Fatalf("expected no rows for another day, got %d", len(rows))
	}
}

func TestRemoveAllForLot(t *testing.T) {
	ledger := NewVehicleLedger(0)
	ledger.RecordEntry("central", "AA-00-BB", at(1, 8, 0))
	mustExit(t, ledger, "central", "AA-00-BB", at(1, 9, 0))
	ledger.RecordEntry("central", "AA-00-BB", at(1, 10, 0))
	ledger.RecordEntry("riverside", "CC-11-DD", at(1, 11, 0))

	if open := ledger.RemoveAllForLot("central"); open != 1 {
		t.Fatalf("open events removed: got %d, want 1", open)
	}

	if got := ledger.HistoryForPlate("AA-00-BB"); len(got) != 0 {
		t.Fatalf("central events not removed: %d left", len(got))
	}
	if ledger.IsParkedAnywhere("AA-00-BB") {
		t.Fatal("vehicle of removed lot still reported parked")
	}
	if !ledger.IsParkedHere("riverside", "CC-11-DD") {
		t.Fatal("unrelated lot's events were removed")
	}
}

func mustExit(t *testing.T, ledger *VehicleLedger, lot, plate string, exit domain.Timestamp) {
	t.Helper()
	if _, err := ledger.RecordExit(lot, plate, exit, tariff); err != nil {
		t.Fatalf("exit %s/%s failed: %v", lot, plate, err)
	}
}
