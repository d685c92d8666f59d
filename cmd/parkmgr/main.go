// Command parkmgr runs the parking-management record keeper: a line-oriented
// command loop over stdin that maintains lots, vehicle entries/exits and
// billing history in memory for the lifetime of the process.
package main

import (
	"os"

	"github.com/citypark/parking-system/internal/cli"
	"github.com/citypark/parking-system/internal/core/service"
	"github.com/citypark/parking-system/internal/infrastructure/config"
	"github.com/citypark/parking-system/internal/infrastructure/memory"
	"github.com/citypark/parking-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	registry := memory.NewLotRegistry(cfg.Registry.MaxParks)
	ledger := memory.NewVehicleLedger(cfg.Ledger.Buckets)
	plates := cli.NewPlateValidator()
	session := service.NewSession()

	lots := service.NewLotService(registry, ledger, log)
	parking := service.NewParkingService(registry, ledger, plates, session, log)
	reports := service.NewReportService(registry, ledger, plates, session, log)

	dispatcher := cli.NewDispatcher(lots, parking, reports, os.Stdout, log)
	if err := dispatcher.Run(os.Stdin); err != nil {
		log.Error().Err(err).Msg("command loop failed")
		os.Exit(1)
	}
}
