// Package query applies free-text filtering and stable multi-key
// ordering to a normalized order set. All functions are pure: the input
// slice is never modified.
package query

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mmynk/orderdash/internal/models"
)

// ErrInvalidFilterPattern indicates the filter text cannot be compiled
// into a match predicate.
var ErrInvalidFilterPattern = errors.New("invalid filter pattern")

// ErrUnknownSortKey indicates an ordering field that is not one of the
// sortable columns.
var ErrUnknownSortKey = errors.New("unknown sort key")

// FormatFunc renders a raw amount in the currently selected currency.
// Filtering matches against formatted amounts, so the query engine
// needs the same formatter the projection uses.
type FormatFunc func(amount float64) (string, error)

// comparators return negative/zero/positive for ascending order, one
// per sortable column. Ties keep their original relative order (the
// sort is stable).
var comparators = map[models.SortKey]func(a, b models.NormalizedOrder) int{
	models.SortTransaction: func(a, b models.NormalizedOrder) int {
		return strings.Compare(a.TransactionID, b.TransactionID)
	},
	models.SortUserInfo: func(a, b models.NormalizedOrder) int {
		return strings.Compare(a.User.FirstName+a.User.LastName, b.User.FirstName+b.User.LastName)
	},
	models.SortDate: func(a, b models.NormalizedOrder) int {
		return compareFloat(parseEpoch(a.CreatedAt), parseEpoch(b.CreatedAt))
	},
	models.SortAmount: func(a, b models.NormalizedOrder) int {
		return compareFloat(ParseAmount(a.Total), ParseAmount(b.Total))
	},
	models.SortCardType: func(a, b models.NormalizedOrder) int {
		return strings.Compare(a.CardType, b.CardType)
	},
	models.SortLocation: func(a, b models.NormalizedOrder) int {
		return strings.Compare(a.Country+a.IP, b.Country+b.IP)
	},
}

// ValidKey reports whether field names a sortable column.
func ValidKey(field models.SortKey) bool {
	_, ok := comparators[field]
	return ok
}

// CompileFilter compiles free text into a case-insensitive match
// predicate. Empty text compiles to nil, meaning "match everything".
func CompileFilter(text string) (*regexp.Regexp, error) {
	if text == "" {
		return nil, nil
	}
	re, err := regexp.Compile("(?i)" + text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFilterPattern, text, err)
	}
	return re, nil
}

// Run filters orders by filterText and sorts them per ordering,
// returning a fresh slice. An order is kept when any of its searchable
// fields (user name, transaction id, formatted total, card type,
// country, ip) matches the pattern.
func Run(orders []models.NormalizedOrder, filterText string, ordering models.Ordering, format FormatFunc) ([]models.NormalizedOrder, error) {
	re, err := CompileFilter(filterText)
	if err != nil {
		return nil, err
	}

	result := make([]models.NormalizedOrder, 0, len(orders))
	for _, order := range orders {
		if re != nil {
			match, err := matches(order, re, format)
			if err != nil {
				return nil, err
			}
			if !match {
				continue
			}
		}
		result = append(result, order)
	}

	if ordering.Field != models.SortNone {
		cmp, ok := comparators[ordering.Field]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, ordering.Field)
		}
		sort.SliceStable(result, func(i, j int) bool {
			if ordering.Reversed {
				return cmp(result[i], result[j]) > 0
			}
			return cmp(result[i], result[j]) < 0
		})
	}

	return result, nil
}

func matches(order models.NormalizedOrder, re *regexp.Regexp, format FormatFunc) (bool, error) {
	total, err := format(ParseAmount(order.Total))
	if err != nil {
		return false, err
	}

	fields := []string{
		order.User.FirstName,
		order.User.LastName,
		order.User.FirstName + " " + order.User.LastName,
		order.TransactionID,
		total,
		order.CardType,
		order.Country,
		order.IP,
	}
	for _, f := range fields {
		if re.MatchString(f) {
			return true, nil
		}
	}
	return false, nil
}

// ParseAmount parses a raw order total. Malformed values parse as zero;
// data integrity is the data source's responsibility.
func ParseAmount(total string) float64 {
	v, _ := strconv.ParseFloat(total, 64)
	return v
}

func parseEpoch(createdAt string) float64 {
	v, _ := strconv.ParseInt(createdAt, 10, 64)
	return float64(v)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
