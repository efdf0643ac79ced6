package probe

import (
	"fmt"
	"os"

	"github.com/fthomas67/ninjagamezone/pkg/logger"
)

// SetupLogging initializes the logger for the probe CLI.
func SetupLogging(format string, verbose bool) error {
	if err := logger.InitWith(os.Stdout, format); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the probe tool.
func ShowHelp() {
	os.Stdout.WriteString(`NinjaGameZone catalog probe
===========================

Walks every catalog page by page, looks up one game per catalog and sends
play events, then checks the recently played list.

Usage:
  go run ./cmd/catalog-probe [options]

Options:
  -url string        Base URL of the service (default "http://localhost:9080")
  -filters string    Comma separated filters to walk (default all four catalogs)
  -page-size int     page_size used while walking (default 10)
  -similar int       Most similar games a lookup may return (default 6)
  -plays int         Number of play events to submit (default 20)
  -workers int       Concurrent play submitters (default 4)
  -timeout duration  HTTP request timeout (default 10s)
  -settle duration   Time allowed for plays to reach /recent (default 500ms)
  -log-format string text or json (default "text")
  -verbose           Enable debug logging
  -help              Show this help message
`)
}
