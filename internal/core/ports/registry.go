package ports

import "github.com/citypark/parking-system/internal/core/domain"

// CreateLotInput carries the parameters of a lot-creation command. The
// validate tags encode the tariff invariant: rates strictly increase tier to
// tier and stay positive.
type CreateLotInput struct {
	Name                            string  `validate:"required"`
	Capacity                        int     `validate:"gt=0"`
	QuarterHourlyRate               float64 `validate:"gt=0"`
	QuarterHourlyRateAfterFirstHour float64 `validate:"gtfield=QuarterHourlyRate"`
	MaxDailyCost                    float64 `validate:"gtfield=QuarterHourlyRateAfterFirstHour"`
}

// LotRegistry owns the parking-lot records. Lots keep their creation order
// for listing.
type LotRegistry interface {
	// Add appends a lot. The caller guarantees the name is unused and the
	// registry is not full.
	Add(lot *domain.ParkingLot)
	// Find returns the lot with the given name, or false.
	Find(name string) (*domain.ParkingLot, bool)
	// Remove deletes the lot with the given name, reporting whether it existed.
	Remove(name string) bool
	// All returns the lots in creation order.
	All() []*domain.ParkingLot
	// Full reports whether the registry reached its lot limit.
	Full() bool
}

// PlateValidator checks licence-plate syntax. The core consumes it as a
// collaborator; the implementation lives with the command layer.
type PlateValidator interface {
	Valid(plate string) bool
}
