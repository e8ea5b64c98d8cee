package services

import (
	"sort"
	"strings"

	"card-lister/models"
)

// BuildPriceQuery forms the sold-listings search query for a card: the
// identifying fields joined with "+", empty ones skipped.
func BuildPriceQuery(card *models.CardAttributes) string {
	terms := []string{
		card.Year,
		card.CardSet,
		card.Player,
		card.CardNumber,
		card.Attributes,
		card.Grader,
		card.Grade,
	}
	var present []string
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			present = append(present, t)
		}
	}
	return strings.Join(present, "+")
}

// AggregatePrices reduces observed sale prices to count/average/median/
// range. The prices are treated as an opaque sequence of observations; an
// empty sequence yields a nil report rather than an error.
func AggregatePrices(prices []float64) *models.PriceReport {
	if len(prices) == 0 {
		return nil
	}

	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)

	var total float64
	for _, p := range sorted {
		total += p
	}

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return &models.PriceReport{
		Count:   len(sorted),
		Average: round2(total / float64(len(sorted))),
		Median:  round2(median),
		Min:     round2(sorted[0]),
		Max:     round2(sorted[len(sorted)-1]),
	}
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
