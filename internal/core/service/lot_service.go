package service

import (
	"errors"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/citypark/parking-system/internal/core/domain"
	"github.com/citypark/parking-system/internal/core/ports"
)

// LotService implements the parking-lot registry commands: create, list and
// remove. Removal also purges the lot's events from the ledger.
type LotService struct {
	registry ports.LotRegistry
	ledger   ports.VehicleLedger
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewLotService(registry ports.LotRegistry, ledger ports.VehicleLedger, logger zerolog.Logger) *LotService {
	return &LotService{
		registry: registry,
		ledger:   ledger,
		validate: validator.New(),
		logger:   logger,
	}
}

// Create registers a new lot. Rejections, in order: duplicate name, registry
// full, non-positive capacity, tariff rates not strictly increasing.
func (s *LotService) Create(input ports.CreateLotInput) (*domain.ParkingLot, error) {
	if _, ok := s.registry.Find(input.Name); ok {
		return nil, domain.ErrParkingExists
	}
	if s.registry.Full() {
		return nil, domain.ErrTooManyParks
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, mapInputError(err)
	}

	lot := &domain.ParkingLot{
		Name:     input.Name,
		Capacity: input.Capacity,
		Tariff: domain.Tariff{
			QuarterHourlyRate:               input.QuarterHourlyRate,
			QuarterHourlyRateAfterFirstHour: input.QuarterHourlyRateAfterFirstHour,
			MaxDailyCost:                    input.MaxDailyCost,
		},
		AvailableSpaces: input.Capacity,
	}
	s.registry.Add(lot)
	s.logger.Info().Str("lot", lot.Name).Int("capacity", lot.Capacity).Msg("parking lot created")
	return lot, nil
}

// mapInputError converts validator field errors to the domain rejection,
// keeping the capacity-before-cost reporting order (struct field order).
func mapInputError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return domain.ErrInvalidCost
	}
	if fieldErrors[0].Field() == "Capacity" {
		return domain.ErrInvalidCapacity
	}
	return domain.ErrInvalidCost
}

// List returns the lots in creation order.
func (s *LotService) List() []*domain.ParkingLot {
	return s.registry.All()
}

// Remove deletes the lot and every ledger event belonging to it. It returns
// the names of the remaining lots sorted ascending and the number of vehicles
// that were still parked in the removed lot.
func (s *LotService) Remove(name string) ([]string, int, error) {
	if !s.registry.Remove(name) {
		return nil, 0, domain.ErrParkingNotFound
	}
	released := s.ledger.RemoveAllForLot(name)
	s.logger.Info().Str("lot", name).Int("vehicles_released", released).Msg("parking lot removed")

	remaining := make([]string, 0, len(s.registry.All()))
	for _, lot := range s.registry.All() {
		remaining = append(remaining, lot.Name)
	}
	sort.Strings(remaining)
	return remaining, released, nil
}
