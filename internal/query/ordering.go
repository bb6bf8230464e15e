package query

import "github.com/mmynk/orderdash/internal/models"

// NextOrdering advances the sort state machine for a click on field.
// Repeated clicks on the same field cycle ascending → descending →
// unordered; clicking a different field always starts ascending.
func NextOrdering(current models.Ordering, field models.SortKey) models.Ordering {
	if current.Field != field {
		return models.Ordering{Field: field, Reversed: false}
	}
	if current.Reversed {
		return models.Ordering{Field: models.SortNone, Reversed: false}
	}
	return models.Ordering{Field: field, Reversed: true}
}
