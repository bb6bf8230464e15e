// Package normalize joins the raw order, user and company collections
// into denormalized, self-contained order entities.
package normalize

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mmynk/orderdash/internal/models"
)

// ErrMissingReference indicates an order references a user id absent
// from the user collection. Normalization aborts rather than producing
// partial data.
var ErrMissingReference = errors.New("order references missing user")

// birthdayLayout renders dates of birth as dd/mm/yyyy.
const birthdayLayout = "02/01/2006"

// Orders joins the three raw collections into one NormalizedOrder per
// input order. Each order embeds a fresh copy of its user, so later
// per-order mutations cannot leak across orders sharing a user. The
// inputs are not modified.
func Orders(orders []models.RawOrder, users []models.RawUser, companies []models.RawCompany) ([]models.NormalizedOrder, error) {
	companyByID := normalizeCompanies(companies)
	userByID := normalizeUsers(users, companyByID)

	result := make([]models.NormalizedOrder, 0, len(orders))
	for _, order := range orders {
		user, ok := userByID[order.UserID]
		if !ok {
			return nil, fmt.Errorf("%w: order %d, user %d", ErrMissingReference, order.ID, order.UserID)
		}
		result = append(result, models.NormalizedOrder{
			ID:            order.ID,
			TransactionID: order.TransactionID,
			CreatedAt:     order.CreatedAt,
			Total:         order.Total,
			CardType:      order.CardType,
			CardNumber:    order.CardNumber,
			Country:       order.OrderCountry,
			IP:            order.OrderIP,
			User:          user, // value copy, owned by this order
		})
	}
	return result, nil
}

func normalizeCompanies(companies []models.RawCompany) map[int]*models.Company {
	result := make(map[int]*models.Company, len(companies))
	for _, c := range companies {
		result[c.ID] = &models.Company{
			ID:        c.ID,
			Title:     c.Title,
			Industry:  c.Industry,
			MarketCap: c.MarketCap,
			Sector:    c.Sector,
			URL:       c.URL,
		}
	}
	return result
}

func normalizeUsers(users []models.RawUser, companyByID map[int]*models.Company) map[int]models.NormalizedUser {
	result := make(map[int]models.NormalizedUser, len(users))
	for _, u := range users {
		var company *models.Company
		if u.CompanyID != 0 {
			company = companyByID[u.CompanyID] // nil when unknown
		}
		result[u.ID] = models.NormalizedUser{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Gender:    u.Gender,
			Birthday:  formatBirthday(u.Birthday),
			Avatar:    u.Avatar,
			Company:   company,
			ShowInfo:  false,
		}
	}
	return result
}

// formatBirthday turns an epoch-seconds string into a dd/mm/yyyy date.
// Empty input stays empty; malformed input parses as epoch zero, which
// is the data source's problem, not ours.
func formatBirthday(epoch string) string {
	if epoch == "" {
		return ""
	}
	seconds, _ := strconv.ParseInt(epoch, 10, 64)
	return time.Unix(seconds, 0).UTC().Format(birthdayLayout)
}
