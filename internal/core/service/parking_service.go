package service

import (
	"github.com/rs/zerolog"

	"github.com/citypark/parking-system/internal/core/domain"
	"github.com/citypark/parking-system/internal/core/ports"
)

// EntryResult is what an accepted entry reports back: the lot and the spaces
// left after the vehicle took one.
type EntryResult struct {
	LotName         string
	AvailableSpaces int
}

// ExitResult is what an accepted exit reports back.
type ExitResult struct {
	LicensePlate string
	Entry        domain.Timestamp
	Exit         domain.Timestamp
	Fee          float64
}

// ParkingService registers vehicle entries and exits. It performs the full
// precondition checks itself rather than trusting the command layer, so a
// violated precondition surfaces as a typed error instead of corrupt state.
type ParkingService struct {
	registry ports.LotRegistry
	ledger   ports.VehicleLedger
	plates   ports.PlateValidator
	session  *Session
	logger   zerolog.Logger
}

func NewParkingService(registry ports.LotRegistry, ledger ports.VehicleLedger, plates ports.PlateValidator, session *Session, logger zerolog.Logger) *ParkingService {
	return &ParkingService{
		registry: registry,
		ledger:   ledger,
		plates:   plates,
		session:  session,
		logger:   logger,
	}
}

// RegisterEntry validates and records a vehicle entry. Rejections, in order:
// unknown lot, lot full, bad plate syntax, vehicle already parked anywhere,
// timestamp out of bounds or earlier than the latest accepted one.
func (s *ParkingService) RegisterEntry(lotName, plate string, entry domain.Timestamp) (*EntryResult, error) {
	lot, ok := s.registry.Find(lotName)
	if !ok {
		return nil, domain.ErrParkingNotFound
	}
	if lot.Full() {
		return nil, domain.ErrParkingFull
	}
	if !s.plates.Valid(plate) {
		return nil, domain.ErrInvalidPlate
	}
	if s.ledger.IsParkedAnywhere(plate) {
		return nil, domain.ErrVehicleParked
	}
	if !s.session.Accepts(entry) {
		return nil, domain.ErrInvalidDate
	}

	lot.AvailableSpaces--
	s.ledger.RecordEntry(lotName, plate, entry)
	s.session.ObserveEntry(entry)
	s.logger.Debug().Str("lot", lotName).Str("plate", plate).Stringer("date", entry.Date).Msg("vehicle entered")
	return &EntryResult{LotName: lotName, AvailableSpaces: lot.AvailableSpaces}, nil
}

// RegisterExit validates and records a vehicle exit, computing the fee for
// the stay. Rejections, in order: unknown lot, bad plate syntax, no open
// event for the vehicle in that lot, timestamp out of bounds or earlier than
// the latest accepted one.
func (s *ParkingService) RegisterExit(lotName, plate string, exit domain.Timestamp) (*ExitResult, error) {
	lot, ok := s.registry.Find(lotName)
	if !ok {
		return nil, domain.ErrParkingNotFound
	}
	if !s.plates.Valid(plate) {
		return nil, domain.ErrInvalidPlate
	}
	if !s.ledger.IsParkedHere(lotName, plate) {
		return nil, domain.ErrVehicleNotParked
	}
	if !s.session.Accepts(exit) {
		return nil, domain.ErrInvalidDate
	}

	event, err := s.ledger.RecordExit(lotName, plate, exit, lot.Tariff)
	if err != nil {
		return nil, err
	}
	lot.AvailableSpaces++
	s.session.ObserveExit(exit)
	s.logger.Debug().Str("lot", lotName).Str("plate", plate).Float64("fee", event.Fee).Msg("vehicle exited")
	return &ExitResult{
		LicensePlate: plate,
		Entry:        event.Entry,
		Exit:         event.Exit,
		Fee:          event.Fee,
	}, nil
}
