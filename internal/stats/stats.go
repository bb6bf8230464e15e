// Package stats computes aggregate statistics over a filtered order set.
package stats

import (
	"sort"
	"strconv"

	"github.com/mmynk/orderdash/internal/models"
	"github.com/mmynk/orderdash/internal/query"
)

// FormatFunc renders a raw amount in the currently selected currency.
type FormatFunc func(amount float64) (string, error)

// Compute summarizes orders into a Statistic. Every monetary field is
// passed through format; all divisions are zero-safe, so an empty input
// yields formatted zeros and Count "0".
func Compute(orders []models.NormalizedOrder, format FormatFunc) (models.Statistic, error) {
	amounts := make([]float64, 0, len(orders))
	var total, femaleTotal, maleTotal float64
	var femaleCount, maleCount int

	for _, order := range orders {
		amount := query.ParseAmount(order.Total)
		amounts = append(amounts, amount)
		total += amount
		switch order.User.Gender {
		case "Female":
			femaleTotal += amount
			femaleCount++
		case "Male":
			maleTotal += amount
			maleCount++
		}
	}
	sort.Float64s(amounts)

	count := len(amounts)
	var median, averageCheck float64
	if count > 0 {
		median = medianOf(amounts)
		averageCheck = total / float64(count)
	}

	result := models.Statistic{Count: strconv.Itoa(count)}
	for _, field := range []struct {
		dst   *string
		value float64
	}{
		{&result.Total, total},
		{&result.Median, median},
		{&result.AverageCheck, averageCheck},
		{&result.FemaleAverage, mean(femaleTotal, femaleCount)},
		{&result.MaleAverage, mean(maleTotal, maleCount)},
	} {
		formatted, err := format(field.value)
		if err != nil {
			return models.Statistic{}, err
		}
		*field.dst = formatted
	}
	return result, nil
}

// medianOf expects values sorted ascending and non-empty.
func medianOf(values []float64) float64 {
	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2
	}
	return values[n/2]
}

func mean(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
