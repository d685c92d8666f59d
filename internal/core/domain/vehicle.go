package domain

// VehicleEvent records a single stay of a vehicle in a lot. It is created
// open on entry and closed exactly once on the matching exit; it is never
// reopened, and it is only deleted when its whole lot is removed.
type VehicleEvent struct {
	LicensePlate string
	LotName      string
	Entry        Timestamp
	// Exit and Fee are meaningful only once Departed is true.
	Exit     Timestamp
	Fee      float64
	Departed bool
}

// Open reports whether the vehicle is still parked under this event.
func (e *VehicleEvent) Open() bool {
	return !e.Departed
}
