package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/citypark/parking-system/internal/cli/metrics"
	"github.com/citypark/parking-system/internal/core/domain"
	"github.com/citypark/parking-system/internal/core/ports"
	"github.com/citypark/parking-system/internal/core/service"
)

// Dispatcher reads command lines and routes them to the core services,
// writing all command output to a single writer. It is the one actor that
// mutates system state, so no locking exists anywhere below it.
type Dispatcher struct {
	lots    *service.LotService
	parking *service.ParkingService
	reports *service.ReportService
	out     io.Writer
	logger  zerolog.Logger
}

func NewDispatcher(lots *service.LotService, parking *service.ParkingService, reports *service.ReportService, out io.Writer, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		lots:    lots,
		parking: parking,
		reports: reports,
		out:     out,
		logger:  logger,
	}
}

// Run processes commands from r until the quit command or EOF.
func (d *Dispatcher) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !d.Handle(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// Handle executes a single command line and reports whether the loop should
// continue. Blank lines, unknown verbs and malformed argument lists are
// ignored.
func (d *Dispatcher) Handle(line string) bool {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return true
	}
	verb, args := tokens[0], tokens[1:]
	metrics.CommandsTotal.WithLabelValues(verb).Inc()
	switch verb {
	case "p":
		d.handleLots(args)
	case "e":
		d.handleEntry(args)
	case "s":
		d.handleExit(args)
	case "v":
		d.handleHistory(args)
	case "f":
		d.handleBillings(args)
	case "r":
		d.handleRemove(args)
	case "q":
		return false
	default:
		d.logger.Debug().Str("verb", verb).Msg("unknown command")
	}
	return true
}

// handleLots creates a lot from five arguments, or lists the lots in
// creation order when the arguments don't amount to a creation request.
func (d *Dispatcher) handleLots(args []string) {
	if input, ok := parseCreateLot(args); ok {
		if _, err := d.lots.Create(input); err != nil {
			d.reject(err, rejectContext{lot: input.Name, capacity: input.Capacity})
		}
		return
	}
	for _, lot := range d.lots.List() {
		fmt.Fprintf(d.out, "%s %d %d\n", lot.Name, lot.Capacity, lot.AvailableSpaces)
	}
}

func parseCreateLot(args []string) (ports.CreateLotInput, bool) {
	if len(args) != 5 {
		return ports.CreateLotInput{}, false
	}
	capacity, err := strconv.Atoi(args[1])
	if err != nil {
		return ports.CreateLotInput{}, false
	}
	rate, err1 := strconv.ParseFloat(args[2], 64)
	rateAfter, err2 := strconv.ParseFloat(args[3], 64)
	maxDaily, err3 := strconv.ParseFloat(args[4], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return ports.CreateLotInput{}, false
	}
	return ports.CreateLotInput{
		Name:                            args[0],
		Capacity:                        capacity,
		QuarterHourlyRate:               rate,
		QuarterHourlyRateAfterFirstHour: rateAfter,
		MaxDailyCost:                    maxDaily,
	}, true
}

func (d *Dispatcher) handleEntry(args []string) {
	if len(args) != 4 {
		return
	}
	lot, plate := args[0], args[1]
	// An unparseable timestamp stays at the zero value, which the core
	// rejects as an invalid date after the earlier checks.
	entry, _ := parseTimestamp(args[2], args[3])
	result, err := d.parking.RegisterEntry(lot, plate, entry)
	if err != nil {
		d.reject(err, rejectContext{lot: lot, plate: plate})
		return
	}
	metrics.VehiclesParked.Inc()
	fmt.Fprintf(d.out, "%s %d\n", result.LotName, result.AvailableSpaces)
}

func (d *Dispatcher) handleExit(args []string) {
	if len(args) != 4 {
		return
	}
	lot, plate := args[0], args[1]
	exit, _ := parseTimestamp(args[2], args[3])
	result, err := d.parking.RegisterExit(lot, plate, exit)
	if err != nil {
		d.reject(err, rejectContext{lot: lot, plate: plate})
		return
	}
	metrics.VehiclesParked.Dec()
	metrics.RevenueTotal.Add(result.Fee)
	fmt.Fprintf(d.out, "%s %s %s %s %s %.2f\n",
		result.LicensePlate,
		result.Entry.Date, result.Entry.Clock,
		result.Exit.Date, result.Exit.Clock,
		result.Fee)
}

func (d *Dispatcher) handleHistory(args []string) {
	if len(args) != 1 {
		return
	}
	plate := args[0]
	events, err := d.reports.PlateHistory(plate)
	if err != nil {
		d.reject(err, rejectContext{plate: plate})
		return
	}
	for _, event := range events {
		if event.Open() {
			fmt.Fprintf(d.out, "%s %s %s\n", event.LotName, event.Entry.Date, event.Entry.Clock)
		} else {
			fmt.Fprintf(d.out, "%s %s %.5s %s %.5s\n", event.LotName,
				event.Entry.Date, event.Entry.Clock.String(),
				event.Exit.Date, event.Exit.Clock.String())
		}
	}
}

func (d *Dispatcher) handleBillings(args []string) {
	switch len(args) {
	case 1:
		rows, err := d.reports.RevenueSummary(args[0])
		if err != nil {
			d.reject(err, rejectContext{lot: args[0]})
			return
		}
		for _, row := range rows {
			fmt.Fprintf(d.out, "%s %.2f\n", row.Date, row.Total)
		}
	case 2:
		// An unparseable date stays at the zero value and simply matches no
		// closed event.
		date, _ := parseDate(args[1])
		rows, err := d.reports.DailyBillings(args[0], date)
		if err != nil {
			d.reject(err, rejectContext{lot: args[0]})
			return
		}
		for _, row := range rows {
			fmt.Fprintf(d.out, "%s %s %.2f\n", row.LicensePlate, row.ExitClock, row.Fee)
		}
	}
}

func (d *Dispatcher) handleRemove(args []string) {
	if len(args) != 1 {
		return
	}
	remaining, released, err := d.lots.Remove(args[0])
	if err != nil {
		d.reject(err, rejectContext{lot: args[0]})
		return
	}
	metrics.VehiclesParked.Sub(float64(released))
	for _, name := range remaining {
		fmt.Fprintf(d.out, "%s\n", name)
	}
}

// rejectContext carries the command arguments a rejection message may embed.
type rejectContext struct {
	lot      string
	plate    string
	capacity int
}

// reject writes the console message for a rejection and counts it. The
// messages and their argument prefixes match the command protocol exactly.
func (d *Dispatcher) reject(err error, ctx rejectContext) {
	metrics.RejectionsTotal.WithLabelValues(reasonLabel(err)).Inc()
	switch {
	case errors.Is(err, domain.ErrParkingNotFound):
		fmt.Fprintf(d.out, "%s: no such parking.\n", ctx.lot)
	case errors.Is(err, domain.ErrParkingFull):
		fmt.Fprintf(d.out, "%s: parking is full.\n", ctx.lot)
	case errors.Is(err, domain.ErrParkingExists):
		fmt.Fprintf(d.out, "%s: parking already exists.\n", ctx.lot)
	case errors.Is(err, domain.ErrTooManyParks):
		fmt.Fprintln(d.out, "too many parks.")
	case errors.Is(err, domain.ErrInvalidCapacity):
		fmt.Fprintf(d.out, "%d: invalid capacity.\n", ctx.capacity)
	case errors.Is(err, domain.ErrInvalidCost):
		fmt.Fprintln(d.out, "invalid cost.")
	case errors.Is(err, domain.ErrInvalidPlate):
		fmt.Fprintf(d.out, "%s: invalid licence plate.\n", ctx.plate)
	case errors.Is(err, domain.ErrVehicleParked):
		fmt.Fprintf(d.out, "%s: invalid vehicle entry.\n", ctx.plate)
	case errors.Is(err, domain.ErrVehicleNotParked):
		fmt.Fprintf(d.out, "%s: invalid vehicle exit.\n", ctx.plate)
	case errors.Is(err, domain.ErrInvalidDate):
		fmt.Fprintln(d.out, "invalid date.")
	case errors.Is(err, domain.ErrNoEntries):
		fmt.Fprintf(d.out, "%s: no entries found in any parking.\n", ctx.plate)
	default:
		d.logger.Error().Err(err).Msg("unhandled error")
	}
}

func reasonLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrParkingNotFound):
		return "no_such_parking"
	case errors.Is(err, domain.ErrParkingFull):
		return "parking_full"
	case errors.Is(err, domain.ErrParkingExists):
		return "parking_exists"
	case errors.Is(err, domain.ErrTooManyParks):
		return "too_many_parks"
	case errors.Is(err, domain.ErrInvalidCapacity):
		return "invalid_capacity"
	case errors.Is(err, domain.ErrInvalidCost):
		return "invalid_cost"
	case errors.Is(err, domain.ErrInvalidPlate):
		return "invalid_plate"
	case errors.Is(err, domain.ErrVehicleParked):
		return "already_parked"
	case errors.Is(err, domain.ErrVehicleNotParked):
		return "not_parked_here"
	case errors.Is(err, domain.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, domain.ErrNoEntries):
		return "no_entries"
	default:
		return "internal"
	}
}
