package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/fthomas67/ninjagamezone/internal/probe"
)

const (
	defaultPlays       = 20
	defaultProbeTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:9080", "Base URL of the service")
		filters   = flag.String("filters", "", "Comma separated filters to walk")
		pageSize  = flag.Int("page-size", probe.DefaultPageSize, "page_size used while walking")
		similar   = flag.Int("similar", probe.DefaultSimilarLimit, "Most similar games a lookup may return")
		plays     = flag.Int("plays", defaultPlays, "Number of play events to submit")
		workers   = flag.Int("workers", probe.DefaultWorkers, "Concurrent play submitters")
		timeout   = flag.Duration("timeout", probe.DefaultTimeout, "HTTP request timeout")
		settle    = flag.Duration("settle", probe.DefaultSettle, "Time allowed for plays to reach /recent")
		logFormat = flag.String("log-format", "text", "Log format: text or json")
		verbose   = flag.Bool("verbose", false, "Enable debug logging")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp()
		return
	}
	if err := probe.SetupLogging(*logFormat, *verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultProbeTimeout)
	defer cancel()

	cfg := &probe.Config{
		BaseURL:      strings.TrimRight(*baseURL, "/"),
		PageSize:     *pageSize,
		SimilarLimit: *similar,
		Plays:        *plays,
		Workers:      *workers,
		Timeout:      *timeout,
		Settle:       *settle,
		Verbose:      *verbose,
	}
	for _, f := range strings.Split(*filters, ",") {
		if f = strings.TrimSpace(f); f != "" {
			cfg.Filters = append(cfg.Filters, f)
		}
	}

	if _, err := probe.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
