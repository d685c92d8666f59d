package domain

import "errors"

// Rejection errors surfaced to the command layer. None of them is fatal: the
// command loop reports the condition and keeps reading.
var (
	ErrParkingNotFound  = errors.New("no such parking")
	ErrParkingFull      = errors.New("parking is full")
	ErrParkingExists    = errors.New("parking already exists")
	ErrTooManyParks     = errors.New("too many parks")
	ErrInvalidCapacity  = errors.New("invalid capacity")
	ErrInvalidCost      = errors.New("invalid cost")
	ErrInvalidPlate     = errors.New("invalid licence plate")
	ErrVehicleParked    = errors.New("invalid vehicle entry")
	ErrVehicleNotParked = errors.New("invalid vehicle exit")
	ErrInvalidDate      = errors.New("invalid date")
	ErrNoEntries        = errors.New("no entries found in any parking")
	ErrNoOpenEvent      = errors.New("no open event for plate in lot")
	ErrExitBeforeEntry  = errors.New("exit precedes entry")
)
