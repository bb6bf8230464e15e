package models

// Statistic is the aggregate summary of a filtered order set. All
// fields except Count are currency-formatted strings in the currently
// selected currency.
type Statistic struct {
	// Count is the number of orders, formatted as a plain integer.
	Count string

	// Total is the sum of all order amounts.
	Total string

	// Median is the median order amount (average of the two middle
	// values for an even count).
	Median string

	// AverageCheck is Total divided by Count, zero when empty.
	AverageCheck string

	// FemaleAverage and MaleAverage are mean order amounts restricted
	// to orders whose user gender matches exactly.
	FemaleAverage string
	MaleAverage   string
}
