package domain

import "fmt"

// monthLengths holds the fixed number of days per month. February is always
// 28: the billing calendar applies a coarse year/4 adjustment in
// AbsoluteMinutes instead of inserting leap days (see Timestamp.AbsoluteMinutes).
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

const minutesPerDay = 24 * 60

// Date is a naive calendar date. There is no timezone and no true Gregorian
// leap rule anywhere in the system.
type Date struct {
	Day   int
	Month int
	Year  int
}

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// Timestamp pairs a Date with a Clock. The zero Clock ("00:00") doubles as
// the sentinel used when only the date half is meaningful.
type Timestamp struct {
	Date  Date
	Clock Clock
}

// Valid reports whether d names an actual day of the fixed-length calendar.
// February is capped at 28 regardless of year.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= monthLengths[d.Month-1]
}

// Valid reports whether c is within 00:00..23:59.
func (c Clock) Valid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}

// Valid reports whether both halves of the timestamp are in bounds.
func (ts Timestamp) Valid() bool {
	return ts.Date.Valid() && ts.Clock.Valid()
}

// Next returns the following calendar day, rolling month and year over at
// the boundaries of the fixed month-length table.
func (d Date) Next() Date {
	d.Day++
	if d.Day > monthLengths[d.Month-1] {
		d.Day = 1
		d.Month++
		if d.Month > 12 {
			d.Month = 1
			d.Year++
		}
	}
	return d
}

// daysBeforeMonth returns the number of days in the months strictly before
// month (1-based) within a year of the fixed table.
func daysBeforeMonth(month int) int {
	days := 0
	for m := 1; m < month; m++ {
		days += monthLengths[m-1]
	}
	return days
}

// AbsoluteMinutes maps the timestamp onto a synthetic monotonic minute count
// since 01-01-0000 00:00. The year/4 term is a global adjustment, not a
// per-date leap correction; the value is only ever used for ordering and
// duration, never for display.
func (ts Timestamp) AbsoluteMinutes() int {
	return ts.Date.Year*365*minutesPerDay +
		(ts.Date.Year/4)*minutesPerDay +
		(daysBeforeMonth(ts.Date.Month)+ts.Date.Day-1)*minutesPerDay +
		ts.Clock.Hour*60 + ts.Clock.Minute
}

// Compare orders two timestamps component-wise (year, month, day, hour,
// minute) and returns -1, 0 or 1. Callers that only care about the date half
// pass a zero Clock, so the comparison must not go through AbsoluteMinutes.
func (ts Timestamp) Compare(other Timestamp) int {
	pairs := [5][2]int{
		{ts.Date.Year, other.Date.Year},
		{ts.Date.Month, other.Date.Month},
		{ts.Date.Day, other.Date.Day},
		{ts.Clock.Hour, other.Clock.Hour},
		{ts.Clock.Minute, other.Clock.Minute},
	}
	for _, p := range pairs {
		if p[0] != p[1] {
			if p[0] < p[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String renders the date as zero-padded DD-MM-YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

// String renders the clock as zero-padded HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
