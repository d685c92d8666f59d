package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/citypark/parking-system/internal/cli/metrics"
	"github.com/citypark/parking-system/internal/core/service"
	"github.com/citypark/parking-system/internal/infrastructure/memory"
)

func newTestDispatcher(maxParks int) (*Dispatcher, *bytes.Buffer) {
	registry := memory.NewLotRegistry(maxParks)
	ledger := memory.NewVehicleLedger(0)
	session := service.NewSession()
	plates := NewPlateValidator()
	log := zerolog.Nop()

	lots := service.NewLotService(registry, ledger, log)
	parking := service.NewParkingService(registry, ledger, plates, session, log)
	reports := service.NewReportService(registry, ledger, plates, session, log)

	out := &bytes.Buffer{}
	return NewDispatcher(lots, parking, reports, out, log), out
}

func run(t *testing.T, d *Dispatcher, script string) {
	t.Helper()
	if err := d.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestDispatcher_FullSession(t *testing.T) {
	d, out := newTestDispatcher(0)

	script := strings.Join([]string{
		`p central 10 0.25 0.30 12.00`,
		`p "city center" 5 0.25 0.30 12.00`,
		`p`,
		`e central AA-00-BB 01-03-2025 08:00`,
		`e central AA-00-BB 01-03-2025 08:30`,
		`e nowhere CC-11-DD 01-03-2025 08:30`,
		`e central A1-23-XY 01-03-2025 08:30`,
		`e central CC-11-DD 01-03-2025 07:00`,
		`s central AA-00-BB 01-03-2025 09:30`,
		`v AA-00-BB`,
		`f central 01-03-2025`,
		`f central`,
		`r central`,
		`f central`,
		`v CC-11-DD`,
		`q`,
	}, "\n")

	want := strings.Join([]string{
		`central 10 10`,
		`city center 5 5`,
		`central 9`,
		`AA-00-BB: invalid vehicle entry.`,
		`nowhere: no such parking.`,
		`A1-23-XY: invalid licence plate.`,
		`invalid date.`,
		`AA-00-BB 01-03-2025 08:00 01-03-2025 09:30 1.60`,
		`central 01-03-2025 08:00 01-03-2025 09:30`,
		`AA-00-BB 09:30 1.60`,
		`01-03-2025 1.60`,
		`city center`,
		`central: no such parking.`,
		`CC-11-DD: no entries found in any parking.`,
	}, "\n") + "\n"

	run(t, d, script)
	if got := out.String(); got != want {
		t.Errorf("session output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDispatcher_CreateLotRejections(t *testing.T) {
	d, out := newTestDispatcher(0)

	script := strings.Join([]string{
		`p central 10 0.25 0.30 12.00`,
		`p central 5 1 2 3`,
		`p other 0 1 2 3`,
		`p other 5 2.00 1.50 20.00`,
	}, "\n")

	want := strings.Join([]string{
		`central: parking already exists.`,
		`0: invalid capacity.`,
		`invalid cost.`,
	}, "\n") + "\n"

	run(t, d, script)
	if got := out.String(); got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDispatcher_TooManyParks(t *testing.T) {
	d, out := newTestDispatcher(1)
	run(t, d, "p central 10 0.25 0.30 12.00\np other 10 0.25 0.30 12.00\n")
	if got := out.String(); got != "too many parks.\n" {
		t.Errorf("output mismatch: %q", got)
	}
}

func TestDispatcher_MalformedCreateListsLots(t *testing.T) {
	d, out := newTestDispatcher(0)
	run(t, d, "p central 10 0.25 0.30 12.00\np central ten 0.25 0.30 12.00\n")
	if got := out.String(); got != "central 10 10\n" {
		t.Errorf("output mismatch: %q", got)
	}
}

func TestDispatcher_IgnoresNoise(t *testing.T) {
	d, out := newTestDispatcher(0)
	run(t, d, "\n   \nx whatever\ne central\nv\n")
	if got := out.String(); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestDispatcher_QuitStopsProcessing(t *testing.T) {
	d, out := newTestDispatcher(0)
	run(t, d, "q\np central 10 0.25 0.30 12.00\np\n")
	if got := out.String(); got != "" {
		t.Errorf("expected no output after quit, got %q", got)
	}
}

func TestDispatcher_RemoveUnknownLot(t *testing.T) {
	d, out := newTestDispatcher(0)
	run(t, d, "r nowhere\n")
	if got := out.String(); got != "nowhere: no such parking.\n" {
		t.Errorf("output mismatch: %q", got)
	}
}

// Removing a lot releases the vehicles still parked in it, so the parked
// gauge must come back to where it started once every stay is accounted for.
func TestDispatcher_RemoveLotReleasesParkedGauge(t *testing.T) {
	d, _ := newTestDispatcher(0)
	before := testutil.ToFloat64(metrics.VehiclesParked)

	script := strings.Join([]string{
		`p central 10 0.25 0.30 12.00`,
		`e central AA-00-BB 01-03-2025 08:00`,
		`e central CC-11-DD 01-03-2025 08:05`,
		`s central CC-11-DD 01-03-2025 08:20`,
		`r central`,
	}, "\n")
	run(t, d, script)

	if after := testutil.ToFloat64(metrics.VehiclesParked); after != before {
		t.Errorf("parked gauge drifted: before=%v after=%v", before, after)
	}
}
