package domain

// Tariff holds the three-tier pricing schedule of a parking lot. Rates must
// be strictly increasing tier to tier (see Valid).
type Tariff struct {
	// QuarterHourlyRate is charged per 15-minute slot within the first hour
	// of a day's remainder.
	QuarterHourlyRate float64
	// QuarterHourlyRateAfterFirstHour is charged per 15-minute slot past the
	// first hour.
	QuarterHourlyRateAfterFirstHour float64
	// MaxDailyCost caps what a single day of parking can cost.
	MaxDailyCost float64
}

// Valid reports whether the schedule is positive and strictly increasing.
func (t Tariff) Valid() bool {
	return t.QuarterHourlyRate > 0 &&
		t.QuarterHourlyRateAfterFirstHour > t.QuarterHourlyRate &&
		t.MaxDailyCost > t.QuarterHourlyRateAfterFirstHour
}

// FeeFor computes the fee owed for a stay from entry to exit.
//
// Whole 24-hour periods are billed at MaxDailyCost each. The remainder is
// billed in 15-minute slots rounded up to the next boundary: the first four
// slots (one hour) at QuarterHourlyRate, anything past the hour at
// QuarterHourlyRateAfterFirstHour. The result is clamped to
// MaxDailyCost * (fullDays + 1).
//
// Returns ErrExitBeforeEntry when exit precedes entry.
func (t Tariff) FeeFor(entry, exit Timestamp) (float64, error) {
	totalMinutes := exit.AbsoluteMinutes() - entry.AbsoluteMinutes()
	if totalMinutes < 0 {
		return 0, ErrExitBeforeEntry
	}
	fullDays := totalMinutes / minutesPerDay
	remaining := totalMinutes % minutesPerDay

	fee := float64(fullDays) * t.MaxDailyCost
	// 16 minutes must count as two slots, so round up before dividing.
	slots := (remaining + 14) / 15
	if slots <= 4 {
		fee += float64(slots) * t.QuarterHourlyRate
	} else {
		fee += 4 * t.QuarterHourlyRate
		remaining -= 60
		fee += float64((remaining+14)/15) * t.QuarterHourlyRateAfterFirstHour
	}
	if limit := t.MaxDailyCost * float64(fullDays+1); fee > limit {
		fee = limit
	}
	return fee, nil
}

// ParkingLot is a named facility with a capacity and a pricing schedule.
// AvailableSpaces stays within 0..Capacity: it decreases on each accepted
// entry and increases on each accepted exit.
type ParkingLot struct {
	Name            string
	Capacity        int
	Tariff          Tariff
	AvailableSpaces int
}

// Full reports whether no spaces are left.
func (p *ParkingLot) Full() bool {
	return p.AvailableSpaces == 0
}
