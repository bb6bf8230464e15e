package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/orderdash/internal/models"
	"github.com/mmynk/orderdash/internal/money"
	"github.com/mmynk/orderdash/internal/query"
)

// ErrCardNumberTooShort indicates a card number with fewer than the six
// digits the mask needs (two leading plus four trailing).
var ErrCardNumberTooShort = errors.New("card number too short to mask")

// createdAtLayout renders order timestamps as dd/mm/yyyy, hh:mm:ss.
const createdAtLayout = "02/01/2006, 15:04:05"

// projectLocked builds the outward view of one order: masked card
// number, currency-formatted total, localized creation time. Raw
// monetary and card values never leave the model unprojected.
func (d *Dashboard) projectLocked(order models.NormalizedOrder, currencyCode string) (models.OrderView, error) {
	masked, err := maskCardNumber(order.CardNumber)
	if err != nil {
		return models.OrderView{}, fmt.Errorf("order %d: %w", order.ID, err)
	}

	total, err := money.Format(query.ParseAmount(order.Total), currencyCode, d.rates)
	if err != nil {
		return models.OrderView{}, fmt.Errorf("order %d: %w", order.ID, err)
	}

	return models.OrderView{
		ID:            order.ID,
		TransactionID: order.TransactionID,
		CreatedAt:     formatCreatedAt(order.CreatedAt),
		Total:         total,
		CardType:      order.CardType,
		CardNumber:    masked,
		Country:       order.Country,
		IP:            order.IP,
		User:          order.User,
	}, nil
}

// maskCardNumber keeps the first two and last four digits and stars the
// middle: "4111111111111111" becomes "41**********1111".
func maskCardNumber(number string) (string, error) {
	if len(number) < 6 {
		return "", fmt.Errorf("%w: %d characters", ErrCardNumberTooShort, len(number))
	}
	return number[:2] + strings.Repeat("*", len(number)-6) + number[len(number)-4:], nil
}

// formatCreatedAt turns an epoch-seconds string into a localized
// date-time; malformed input parses as epoch zero.
func formatCreatedAt(epoch string) string {
	seconds, _ := strconv.ParseInt(epoch, 10, 64)
	return time.Unix(seconds, 0).UTC().Format(createdAtLayout)
}
