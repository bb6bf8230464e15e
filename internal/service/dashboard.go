// Package service orchestrates the dashboard model: it owns the
// normalized working set and the session state (filter, ordering,
// currency, rates), exposes the mutation API, and emits derived
// results over the event bus after every state change.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/orderdash/internal/eventbus"
	"github.com/mmynk/orderdash/internal/metrics"
	"github.com/mmynk/orderdash/internal/models"
	"github.com/mmynk/orderdash/internal/money"
	"github.com/mmynk/orderdash/internal/normalize"
	"github.com/mmynk/orderdash/internal/query"
	"github.com/mmynk/orderdash/internal/stats"
)

// ErrUnknownOrder indicates a toggle was requested for an order id with
// no matching order.
var ErrUnknownOrder = errors.New("no such order")

// DefaultDebounce is the quiet period after the last SetFilter call in
// a burst before the filter is applied.
const DefaultDebounce = 100 * time.Millisecond

// Dashboard is the reactive view-model. Mutations are synchronous
// (except the debounced filter) and recompute all derived state from
// scratch; consumers observe results only through the event bus.
//
// Emission happens while the internal lock is held: bus handlers must
// not call back into the mutation API.
type Dashboard struct {
	mu  sync.Mutex
	bus *eventbus.Bus
	reg *metrics.Registry // nil disables instrumentation

	// Normalized working set. Rebuilt wholesale by SetData, mutated
	// only by ToggleUserShowInfo.
	data []models.NormalizedOrder

	// Session state.
	filter   string // always stored trimmed
	ordering models.Ordering
	currency string
	rates    map[string]float64 // nil until SetExchangeRates

	// Debounce state. filterGen invalidates stale timer callbacks.
	debounce  time.Duration
	timer     *time.Timer
	filterGen uint64
}

// NewDashboard creates a model emitting on bus. reg may be nil.
func NewDashboard(bus *eventbus.Bus, reg *metrics.Registry) *Dashboard {
	return &Dashboard{
		bus:      bus,
		reg:      reg,
		currency: money.DefaultCurrency,
		debounce: DefaultDebounce,
	}
}

// SetDebounce overrides the filter debounce interval.
func (d *Dashboard) SetDebounce(interval time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.debounce = interval
}

// SetData replaces the working set with the normalized join of the
// three raw collections and emits the full derived projection. On any
// failure the previous working set stays in place and nothing is
// emitted.
func (d *Dashboard) SetData(orders []models.RawOrder, users []models.RawUser, companies []models.RawCompany) error {
	normalized, err := normalize.Orders(orders, users, companies)
	if err != nil {
		return fmt.Errorf("set data: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	views, statistic, err := d.deriveLocked(normalized, d.filter, d.ordering, d.currency)
	if err != nil {
		return fmt.Errorf("set data: %w", err)
	}

	d.data = normalized
	if d.reg != nil {
		d.reg.Orders.Set(float64(len(normalized)))
	}
	d.emitLocked(eventbus.OrdersUpdated, views)
	d.emitLocked(eventbus.StatisticUpdated, statistic)
	slog.Info("data replaced", "orders", len(normalized), "users", len(users), "companies", len(companies))
	return nil
}

// SetExchangeRates stores the rate table and announces the available
// currency codes, sorted.
func (d *Dashboard) SetExchangeRates(rates map[string]float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rates = rates
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	d.emitLocked(eventbus.CurrenciesChanged, codes)
}

// SetCurrency switches the display currency and re-emits the full
// projection in it. The code must be present in the loaded rate table
// (or be the bootstrap default while no table is loaded).
func (d *Dashboard) SetCurrency(code string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := money.Rate(code, d.rates); err != nil {
		return fmt.Errorf("set currency: %w", err)
	}

	views, statistic, err := d.deriveLocked(d.data, d.filter, d.ordering, code)
	if err != nil {
		return fmt.Errorf("set currency: %w", err)
	}

	d.currency = code
	d.emitLocked(eventbus.OrdersUpdated, views)
	d.emitLocked(eventbus.StatisticUpdated, statistic)
	return nil
}

// SetFilter schedules a debounced filter change: only the last call
// within the debounce window takes effect, one quiet period after it.
// Invalid patterns fail here, synchronously, and leave both the current
// filter and any already-pending application untouched.
func (d *Dashboard) SetFilter(text string) error {
	trimmed := strings.TrimSpace(text)
	if _, err := query.CompileFilter(trimmed); err != nil {
		return fmt.Errorf("set filter: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.filterGen++
	gen := d.filterGen
	d.timer = time.AfterFunc(d.debounce, func() {
		d.applyFilter(gen, trimmed)
	})
	return nil
}

// applyFilter runs on the debounce timer goroutine.
func (d *Dashboard) applyFilter(gen uint64, trimmed string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// A newer SetFilter superseded this one between firing and locking.
	if gen != d.filterGen {
		return
	}

	views, statistic, err := d.deriveLocked(d.data, trimmed, d.ordering, d.currency)
	if err != nil {
		// Pattern and currency were validated up front, so this is a
		// data problem; keep the previous filter in effect.
		slog.Error("apply filter failed", "filter", trimmed, "error", err)
		return
	}

	d.filter = trimmed
	d.emitLocked(eventbus.OrdersUpdated, views)
	d.emitLocked(eventbus.StatisticUpdated, statistic)
}

// SetOrdering advances the three-state sort cycle for field and emits
// the new ordering followed by the reordered projection.
func (d *Dashboard) SetOrdering(field models.SortKey) error {
	if !query.ValidKey(field) {
		return fmt.Errorf("set ordering: %w: %q", query.ErrUnknownSortKey, field)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	next := query.NextOrdering(d.ordering, field)
	views, _, err := d.deriveLocked(d.data, d.filter, next, d.currency)
	if err != nil {
		return fmt.Errorf("set ordering: %w", err)
	}

	d.ordering = next
	d.emitLocked(eventbus.OrderingChanged, next)
	d.emitLocked(eventbus.OrdersUpdated, views)
	return nil
}

// ToggleUserShowInfo flips the details flag on the single matching
// order's embedded user and emits just that order's projection. The
// currently active filter and ordering are deliberately bypassed: the
// toggled row is always emitted.
func (d *Dashboard) ToggleUserShowInfo(orderID int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := -1
	for i := range d.data {
		if d.data[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("toggle show info: %w: %d", ErrUnknownOrder, orderID)
	}

	toggled := d.data[idx]
	toggled.User.ShowInfo = !toggled.User.ShowInfo
	view, err := d.projectLocked(toggled, d.currency)
	if err != nil {
		return fmt.Errorf("toggle show info: %w", err)
	}

	d.data[idx] = toggled
	d.emitLocked(eventbus.OrderUpdated, view)
	return nil
}

// deriveLocked recomputes the projected order list and its statistics
// for the given working set and session state. Callers hold d.mu.
func (d *Dashboard) deriveLocked(data []models.NormalizedOrder, filter string, ordering models.Ordering, currencyCode string) ([]models.OrderView, models.Statistic, error) {
	start := time.Now()

	format := func(amount float64) (string, error) {
		return money.Format(amount, currencyCode, d.rates)
	}

	filtered, err := query.Run(data, filter, ordering, format)
	if err != nil {
		return nil, models.Statistic{}, err
	}

	views := make([]models.OrderView, 0, len(filtered))
	for _, order := range filtered {
		view, err := d.projectLocked(order, currencyCode)
		if err != nil {
			return nil, models.Statistic{}, err
		}
		views = append(views, view)
	}

	statistic, err := stats.Compute(filtered, format)
	if err != nil {
		return nil, models.Statistic{}, err
	}

	if d.reg != nil {
		d.reg.RecomputeSeconds.Observe(time.Since(start).Seconds())
	}
	return views, statistic, nil
}

func (d *Dashboard) emitLocked(ch eventbus.Channel, payload any) {
	d.bus.Emit(ch, payload)
	if d.reg != nil {
		d.reg.Emissions.WithLabelValues(string(ch)).Inc()
	}
}
