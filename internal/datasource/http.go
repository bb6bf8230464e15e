package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPSource fetches the collections from a REST-style API serving
// /api/orders.json, /api/users.json and /api/companies.json, plus an
// exchange-rates endpoint at a separate URL.
type HTTPSource struct {
	baseURL  string
	ratesURL string
	client   *http.Client
}

var _ Source = (*HTTPSource)(nil)
var _ RateSource = (*HTTPSource)(nil)

// NewHTTPSource creates a source fetching from baseURL. ratesURL may be
// empty when no exchange rates are served.
func NewHTTPSource(baseURL, ratesURL string) *HTTPSource {
	return &HTTPSource{
		baseURL:  baseURL,
		ratesURL: ratesURL,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Load fetches and decodes the three collection documents.
func (s *HTTPSource) Load(ctx context.Context) (Collections, error) {
	var c Collections

	if err := s.fetchJSON(ctx, s.baseURL+"/api/orders.json", &c.Orders); err != nil {
		return Collections{}, err
	}
	if err := s.fetchJSON(ctx, s.baseURL+"/api/users.json", &c.Users); err != nil {
		return Collections{}, err
	}
	if err := s.fetchJSON(ctx, s.baseURL+"/api/companies.json", &c.Companies); err != nil {
		return Collections{}, err
	}
	return c, nil
}

// LoadRates fetches the {"rates": {...}} document from the rates URL.
func (s *HTTPSource) LoadRates(ctx context.Context) (map[string]float64, error) {
	if s.ratesURL == "" {
		return nil, fmt.Errorf("no rates URL configured")
	}
	var doc ratesDocument
	if err := s.fetchJSON(ctx, s.ratesURL, &doc); err != nil {
		return nil, err
	}
	return doc.Rates, nil
}

func (s *HTTPSource) fetchJSON(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
