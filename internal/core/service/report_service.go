package service

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/citypark/parking-system/internal/core/domain"
	"github.com/citypark/parking-system/internal/core/ports"
)

// ReportService derives the sorted read-only views over the ledger: per-plate
// history, per-lot/day billings and daily revenue summaries. Fees were cached
// on the events at exit time; nothing is recomputed here.
type ReportService struct {
	registry ports.LotRegistry
	ledger   ports.VehicleLedger
	plates   ports.PlateValidator
	session  *Session
	logger   zerolog.Logger
}

func NewReportService(registry ports.LotRegistry, ledger ports.VehicleLedger, plates ports.PlateValidator, session *Session, logger zerolog.Logger) *ReportService {
	return &ReportService{
		registry: registry,
		ledger:   ledger,
		plates:   plates,
		session:  session,
		logger:   logger,
	}
}

// PlateHistory returns every stay of the vehicle, sorted by lot name and
// then entry instant. Rejects bad plate syntax and plates with no events.
func (s *ReportService) PlateHistory(plate string) ([]*domain.VehicleEvent, error) {
	if !s.plates.Valid(plate) {
		return nil, domain.ErrInvalidPlate
	}
	events := s.ledger.HistoryForPlate(plate)
	if len(events) == 0 {
		return nil, domain.ErrNoEntries
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].LotName != events[j].LotName {
			return events[i].LotName < events[j].LotName
		}
		return events[i].Entry.Compare(events[j].Entry) < 0
	})
	return events, nil
}

// DailyBillings returns the closed stays of the lot for the given exit date,
// sorted by exit time. A requested date later than the latest recorded
// instant is rejected; the date's own calendar bounds are deliberately not
// checked, an impossible date just yields no rows.
func (s *ReportService) DailyBillings(lotName string, date domain.Date) ([]ports.BillingRow, error) {
	if _, ok := s.registry.Find(lotName); !ok {
		return nil, domain.ErrParkingNotFound
	}
	if s.session.Latest().Compare(domain.Timestamp{Date: date}) < 0 {
		return nil, domain.ErrInvalidDate
	}
	rows := s.ledger.DailyBillingsForLotAndDate(lotName, date)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ExitClock.String() < rows[j].ExitClock.String()
	})
	return rows, nil
}

// RevenueSummary walks every calendar day from the first accepted entry date
// through the latest accepted instant and reports the lot's revenue per day,
// suppressing days that sum to zero. A lot removed while iterating yields no
// further rows rather than an error.
func (s *ReportService) RevenueSummary(lotName string) ([]ports.RevenueRow, error) {
	if _, ok := s.registry.Find(lotName); !ok {
		return nil, domain.ErrParkingNotFound
	}
	var rows []ports.RevenueRow
	latest := s.session.Latest()
	for date := s.session.First(); (domain.Timestamp{Date: date}).Compare(latest) <= 0; date = date.Next() {
		if _, ok := s.registry.Find(lotName); !ok {
			continue
		}
		total := 0.0
		for _, row := range s.ledger.DailyBillingsForLotAndDate(lotName, date) {
			total += row.Fee
		}
		if total != 0 {
			rows = append(rows, ports.RevenueRow{Date: date, Total: total})
		}
	}
	return rows, nil
}
