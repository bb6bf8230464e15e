// Package datasource loads the raw record collections and exchange
// rates the dashboard model consumes. The model itself never fetches or
// parses anything; everything here is its external collaborator.
package datasource

import (
	"context"

	"github.com/mmynk/orderdash/internal/models"
)

// Collections bundles the three raw record sets delivered together.
type Collections struct {
	Orders    []models.RawOrder
	Users     []models.RawUser
	Companies []models.RawCompany
}

// Source delivers the raw collections. Implementations exist for JSON
// files, HTTP endpoints and SQLite databases; swapping them never
// touches the model.
type Source interface {
	Load(ctx context.Context) (Collections, error)
}

// RateSource delivers the currency rate table.
type RateSource interface {
	LoadRates(ctx context.Context) (map[string]float64, error)
}

// ratesDocument is the wire shape of an exchange-rates endpoint
// response: {"rates": {"EUR": 0.9, ...}}.
type ratesDocument struct {
	Rates map[string]float64 `json:"rates"`
}
