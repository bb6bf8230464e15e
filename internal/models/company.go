package models

// RawCompany is a company record exactly as delivered by the data source.
type RawCompany struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Industry  string `json:"industry"`
	MarketCap string `json:"market_cap"`
	Sector    string `json:"sector"`
	URL       string `json:"url"`
}

// Company is the normalized company entity. Companies are immutable
// after normalization and referenced (not owned) by users.
type Company struct {
	ID        int
	Title     string
	Industry  string
	MarketCap string
	Sector    string
	URL       string
}
