// Package render is a terminal consumer of the dashboard model: it
// subscribes to the event bus and prints the projected order table and
// statistics. It never reaches into the model's state directly.
package render

import (
	"fmt"
	"io"
	"sync"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/orderdash/internal/eventbus"
	"github.com/mmynk/orderdash/internal/models"
)

// Renderer writes the dashboard to an io.Writer. Handlers run on the
// model's emitting goroutine, so writes are serialized with a mutex.
type Renderer struct {
	mu sync.Mutex
	w  io.Writer
	p  *message.Printer
}

// New creates a Renderer writing to w.
func New(w io.Writer) *Renderer {
	return &Renderer{
		w: w,
		p: message.NewPrinter(language.AmericanEnglish),
	}
}

// Attach subscribes the renderer to all dashboard channels on bus.
func (r *Renderer) Attach(bus *eventbus.Bus) {
	bus.Subscribe(eventbus.OrdersUpdated, func(payload any) {
		r.renderOrders(payload.([]models.OrderView))
	})
	bus.Subscribe(eventbus.StatisticUpdated, func(payload any) {
		r.renderStatistic(payload.(models.Statistic))
	})
	bus.Subscribe(eventbus.OrderUpdated, func(payload any) {
		r.renderOrder(payload.(models.OrderView))
	})
	bus.Subscribe(eventbus.OrderingChanged, func(payload any) {
		r.renderOrdering(payload.(models.Ordering))
	})
	bus.Subscribe(eventbus.CurrenciesChanged, func(payload any) {
		r.renderCurrencies(payload.([]string))
	})
}

func (r *Renderer) renderOrders(views []models.OrderView) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.p.Fprintf(r.w, "\n%d orders\n", len(views))
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TRANSACTION\tUSER\tDATE\tAMOUNT\tCARD\tLOCATION")
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s %s\t%s (%s)\n",
			v.TransactionID,
			v.User.FirstName, v.User.LastName,
			v.CreatedAt,
			v.Total,
			v.CardType, v.CardNumber,
			v.Country, v.IP,
		)
	}
	tw.Flush()
}

// renderStatistic prints the summary block. An empty result set has no
// statistics to show, so the block is omitted entirely.
func (r *Renderer) renderStatistic(s models.Statistic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Count == "0" {
		fmt.Fprintln(r.w, "no matching orders")
		return
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Orders count\t%s\n", s.Count)
	fmt.Fprintf(tw, "Orders total\t%s\n", s.Total)
	fmt.Fprintf(tw, "Median value\t%s\n", s.Median)
	fmt.Fprintf(tw, "Average check\t%s\n", s.AverageCheck)
	fmt.Fprintf(tw, "Average check (female)\t%s\n", s.FemaleAverage)
	fmt.Fprintf(tw, "Average check (male)\t%s\n", s.MaleAverage)
	tw.Flush()
}

func (r *Renderer) renderOrder(v models.OrderView) {
	r.mu.Lock()
	defer r.mu.Unlock()

	details := "hidden"
	if v.User.ShowInfo {
		details = "shown"
	}
	fmt.Fprintf(r.w, "order %d updated: user details %s\n", v.ID, details)
	if v.User.ShowInfo {
		fmt.Fprintf(r.w, "  %s %s", v.User.FirstName, v.User.LastName)
		if v.User.Birthday != "" {
			fmt.Fprintf(r.w, ", born %s", v.User.Birthday)
		}
		if v.User.Company != nil {
			fmt.Fprintf(r.w, ", works at %s (%s)", v.User.Company.Title, v.User.Company.Sector)
		}
		fmt.Fprintln(r.w)
	}
}

func (r *Renderer) renderOrdering(o models.Ordering) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case o.Field == models.SortNone:
		fmt.Fprintln(r.w, "ordering: none")
	case o.Reversed:
		fmt.Fprintf(r.w, "ordering: %s (descending)\n", o.Field)
	default:
		fmt.Fprintf(r.w, "ordering: %s (ascending)\n", o.Field)
	}
}

func (r *Renderer) renderCurrencies(codes []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.p.Fprintf(r.w, "%d currencies available: ", len(codes))
	for i, code := range codes {
		if i > 0 {
			fmt.Fprint(r.w, ", ")
		}
		fmt.Fprint(r.w, code)
	}
	fmt.Fprintln(r.w)
}
