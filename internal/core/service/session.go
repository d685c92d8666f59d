package service

import "github.com/citypark/parking-system/internal/core/domain"

// Session tracks the process-wide temporal state: the latest accepted event
// timestamp (new events may not precede it) and the earliest entry date
// (start boundary for revenue summaries). One Session is shared by the
// services for the lifetime of the process.
type Session struct {
	latest   domain.Timestamp
	first    domain.Date
	firstSet bool
}

// NewSession starts the clock at 01-01-0000 00:00, before any acceptable
// event timestamp.
func NewSession() *Session {
	epoch := domain.Date{Day: 1, Month: 1, Year: 0}
	return &Session{
		latest: domain.Timestamp{Date: epoch},
		first:  epoch,
	}
}

// Latest returns the maximum (date, time) of any accepted entry or exit.
func (s *Session) Latest() domain.Timestamp {
	return s.latest
}

// First returns the minimum entry date ever accepted, or the epoch while no
// entry has been accepted.
func (s *Session) First() domain.Date {
	return s.first
}

// Accepts reports whether ts may be recorded: timestamps must be
// non-decreasing in arrival order and name a real calendar day and clock.
func (s *Session) Accepts(ts domain.Timestamp) bool {
	return ts.Compare(s.latest) >= 0 && ts.Valid()
}

// ObserveEntry advances the clock for an accepted entry and lowers the first
// date if this entry precedes it.
func (s *Session) ObserveEntry(ts domain.Timestamp) {
	s.latest = ts
	entryDate := domain.Timestamp{Date: ts.Date}
	if !s.firstSet || entryDate.Compare(domain.Timestamp{Date: s.first}) < 0 {
		s.first = ts.Date
		s.firstSet = true
	}
}

// ObserveExit advances the clock for an accepted exit.
func (s *Session) ObserveExit(ts domain.Timestamp) {
	s.latest = ts
}
