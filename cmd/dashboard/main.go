// Command dashboard loads the order collections, drives the reactive
// model and renders its emissions to the terminal. Further mutations
// are read as commands from stdin:
//
//	filter <text>     debounced free-text filter
//	sort <key>        cycle ordering on a column
//	currency <code>   switch display currency
//	toggle <id>       expand/collapse an order's user details
//	quit
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/mmynk/orderdash/internal/config"
	"github.com/mmynk/orderdash/internal/datasource"
	"github.com/mmynk/orderdash/internal/eventbus"
	"github.com/mmynk/orderdash/internal/metrics"
	"github.com/mmynk/orderdash/internal/models"
	"github.com/mmynk/orderdash/internal/render"
	"github.com/mmynk/orderdash/internal/service"
	"github.com/mmynk/orderdash/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	source, rateSource, cleanup, err := buildSource(cfg)
	if err != nil {
		slog.Error("Failed to initialize data source", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	bus := eventbus.New()
	render.New(os.Stdout).Attach(bus)

	reg := metrics.NewRegistry()
	dash := service.NewDashboard(bus, reg)
	dash.SetDebounce(cfg.Debounce)

	ctx := context.Background()
	collections, err := source.Load(ctx)
	if err != nil {
		slog.Error("Failed to load collections", "error", err)
		os.Exit(1)
	}
	if err := dash.SetData(collections.Orders, collections.Users, collections.Companies); err != nil {
		slog.Error("Failed to set data", "error", err)
		os.Exit(1)
	}

	if rateSource != nil {
		if rates, err := rateSource.LoadRates(ctx); err != nil {
			slog.Warn("Exchange rates unavailable, staying on default currency", "error", err)
		} else {
			dash.SetExchangeRates(rates)
		}
	}

	applyInitialState(dash, cfg)

	if cfg.MetricsAddr != "" {
		go func() {
			slog.Info("Serving metrics", "addr", cfg.MetricsAddr)
			mux := http.NewServeMux()
			mux.Handle("/metrics", reg.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				slog.Error("Metrics listener failed", "error", err)
			}
		}()
	}

	runCommandLoop(dash, os.Stdin)
}

// buildSource picks the configured backend. For file and http sources
// the same object also serves exchange rates; the sqlite source has
// none.
func buildSource(cfg config.Config) (datasource.Source, datasource.RateSource, func(), error) {
	switch cfg.Source {
	case "file":
		fs := datasource.NewFileSource(cfg.DataDir)
		return fs, fs, func() {}, nil
	case "http":
		hs := datasource.NewHTTPSource(cfg.BaseURL, cfg.RatesURL)
		return hs, hs, func() {}, nil
	case "sqlite":
		ss, err := datasource.NewSQLiteSource(cfg.DBPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return ss, nil, func() { ss.Close() }, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown source %q", cfg.Source)
}

func applyInitialState(dash *service.Dashboard, cfg config.Config) {
	if cfg.Currency != "" {
		if err := dash.SetCurrency(cfg.Currency); err != nil {
			slog.Warn("Initial currency rejected", "currency", cfg.Currency, "error", err)
		}
	}
	if cfg.OrderBy != "" {
		if err := dash.SetOrdering(models.SortKey(cfg.OrderBy)); err != nil {
			slog.Warn("Initial ordering rejected", "order_by", cfg.OrderBy, "error", err)
		}
	}
	if cfg.Filter != "" {
		if err := dash.SetFilter(cfg.Filter); err != nil {
			slog.Warn("Initial filter rejected", "filter", cfg.Filter, "error", err)
		}
	}
}

func runCommandLoop(dash *service.Dashboard, in *os.File) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		var err error
		switch cmd {
		case "":
			continue
		case "quit", "exit":
			return
		case "filter":
			err = dash.SetFilter(arg)
		case "sort":
			err = dash.SetOrdering(models.SortKey(strings.TrimSpace(arg)))
		case "currency":
			err = dash.SetCurrency(strings.TrimSpace(arg))
		case "toggle":
			var id int
			if id, err = strconv.Atoi(strings.TrimSpace(arg)); err == nil {
				err = dash.ToggleUserShowInfo(id)
			}
		default:
			err = fmt.Errorf("unknown command %q", cmd)
		}
		if err != nil {
			slog.Error("Command failed", "command", cmd, "error", err)
		}
	}
}
