package models

// RawOrder is an order record exactly as delivered by the data source.
// Numeric-looking fields (CreatedAt, Total) arrive as strings and are
// parsed on demand; malformed values parse as zero.
type RawOrder struct {
	// ID is the unique order identifier.
	ID int `json:"id"`

	// TransactionID is the payment transaction reference.
	TransactionID string `json:"transaction_id"`

	// CreatedAt is the order creation time as epoch seconds.
	CreatedAt string `json:"created_at"`

	// UserID references the user who placed the order.
	UserID int `json:"user_id"`

	// Total is the order amount in the base currency.
	Total string `json:"total"`

	// CardType is the payment card brand (e.g. "visa").
	CardType string `json:"card_type"`

	// CardNumber is the full, unmasked card number.
	CardNumber string `json:"card_number"`

	// OrderCountry is the country the order was placed from.
	OrderCountry string `json:"order_country"`

	// OrderIP is the client IP the order was placed from.
	OrderIP string `json:"order_ip"`
}

// NormalizedOrder is an order joined with its user. The embedded user is
// a per-order copy taken at normalization time, never a shared reference.
type NormalizedOrder struct {
	ID            int
	TransactionID string
	CreatedAt     string
	Total         string
	CardType      string
	CardNumber    string
	Country       string
	IP            string

	// User is this order's own copy of the normalized user.
	User NormalizedUser
}

// OrderView is the masked and formatted projection of a NormalizedOrder
// emitted to consumers. CardNumber is masked, Total is a formatted
// currency string and CreatedAt is a localized date-time string.
type OrderView struct {
	ID            int
	TransactionID string
	CreatedAt     string
	Total         string
	CardType      string
	CardNumber    string
	Country       string
	IP            string
	User          NormalizedUser
}
