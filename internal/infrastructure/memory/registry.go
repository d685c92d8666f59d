package memory

import (
	"github.com/citypark/parking-system/internal/core/domain"
	"github.com/citypark/parking-system/internal/core/ports"
)

// DefaultMaxParks bounds the registry when the configuration does not
// override it.
const DefaultMaxParks = 20

// LotRegistry is a bounded, creation-ordered collection of parking lots.
type LotRegistry struct {
	lots     []*domain.ParkingLot
	maxParks int
}

var _ ports.LotRegistry = (*LotRegistry)(nil)

// NewLotRegistry creates a registry holding at most maxParks lots, falling
// back to DefaultMaxParks for non-positive limits.
func NewLotRegistry(maxParks int) *LotRegistry {
	if maxParks <= 0 {
		maxParks = DefaultMaxParks
	}
	return &LotRegistry{maxParks: maxParks}
}

// Add appends a lot at the end of the creation order.
func (r *LotRegistry) Add(lot *domain.ParkingLot) {
	r.lots = append(r.lots, lot)
}

// Find returns the lot with the given name.
func (r *LotRegistry) Find(name string) (*domain.ParkingLot, bool) {
	for _, lot := range r.lots {
		if lot.Name == name {
			return lot, true
		}
	}
	return nil, false
}

// Remove deletes the named lot, shifting later lots down to preserve the
// creation order.
func (r *LotRegistry) Remove(name string) bool {
	for i, lot := range r.lots {
		if lot.Name == name {
			r.lots = append(r.lots[:i], r.lots[i+1:]...)
			return true
		}
	}
	return false
}

// All returns the lots in creation order. The slice is shared; callers must
// not mutate it.
func (r *LotRegistry) All() []*domain.ParkingLot {
	return r.lots
}

// Full reports whether the lot limit is reached.
func (r *LotRegistry) Full() bool {
	return len(r.lots) >= r.maxParks
}
