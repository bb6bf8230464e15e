package models

// SortKey identifies one of the sortable order table columns.
type SortKey string

// Sortable columns. The empty SortKey means "no ordering".
const (
	SortNone        SortKey = ""
	SortTransaction SortKey = "transaction"
	SortUserInfo    SortKey = "user-info"
	SortDate        SortKey = "date"
	SortAmount      SortKey = "amount"
	SortCardType    SortKey = "card-type"
	SortLocation    SortKey = "location"
)

// Ordering is the current sort state of the order table.
// Invariant: Field == SortNone implies Reversed == false.
type Ordering struct {
	Field    SortKey
	Reversed bool
}
