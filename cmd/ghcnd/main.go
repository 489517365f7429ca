// Command ghcnd fetches GHCN daily summaries for a weather station from the
// NCEI Access Data Service and prints them as JSON.
//
// Usage:
//
//	ghcnd -station USW00024233 -start 2020-06-01 -end 2020-06-30
//	ghcnd -station USW00024233 -last 30 -units metric
//	ghcnd -station USW00024233 -last 7 -raw
//
// Station IDs can be found at https://www.ncdc.noaa.gov/cdo-web/datatools/findstation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lorendsnow/ncei-ghcn-data/internal/adapter/ncei"
	"github.com/lorendsnow/ncei-ghcn-data/internal/config"
	"github.com/lorendsnow/ncei-ghcn-data/internal/domain"
	"github.com/lorendsnow/ncei-ghcn-data/internal/observability"
)

func main() {
	station := flag.String("station", "", "station ID, e.g. USW00024233 (required)")
	start := flag.String("start", "", "start date, YYYY-MM-DD")
	end := flag.String("end", "", "end date, YYYY-MM-DD")
	last := flag.Int("last", 0, "fetch the last N days instead of -start/-end")
	units := flag.String("units", "standard", `measurement units: "standard" or "metric"`)
	raw := flag.Bool("raw", false, "print the untransformed service rows")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(cfg)

	if *station == "" {
		fmt.Fprintln(os.Stderr, "-station is required")
		flag.Usage()
		os.Exit(2)
	}

	startDate, endDate := *start, *end
	if *last > 0 {
		startDate, endDate = domain.LastDays(*last)
	}

	metrics := observability.NewMetrics()
	client := ncei.NewClient(cfg.RequestTimeout, metrics, logger).WithBaseURL(cfg.BaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var result any
	if *raw {
		result, err = client.GetRawDailySummaries(ctx, *station, startDate, endDate, ncei.Units(*units))
	} else {
		result, err = client.GetDailySummaries(ctx, *station, startDate, endDate, ncei.Units(*units))
	}
	if err != nil {
		logger.Error("fetch failed", "station", *station, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encode output failed", "error", err)
		os.Exit(1)
	}
}
