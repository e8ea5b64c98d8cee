package services

import (
	"testing"

	"card-lister/models"
)

func TestBuildPriceQuery(t *testing.T) {
	tests := []struct {
		name string
		card *models.CardAttributes
		want string
	}{
		{
			name: "graded card",
			card: gradedRookieCard(),
			want: "1986+Fleer+Michael Jordan+57+Rookie RC+PSA+10",
		},
		{
			name: "raw card skips empty terms",
			card: &models.CardAttributes{
				Player: "Oscar Wilde", Year: "2021", CardSet: "Prizm",
			},
			want: "2021+Prizm+Oscar Wilde",
		},
		{
			name: "whitespace-only terms skipped",
			card: &models.CardAttributes{
				Player: "Oscar Wilde", Year: "2021", CardSet: "Prizm", Grader: "  ",
			},
			want: "2021+Prizm+Oscar Wilde",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPriceQuery(tt.card); got != tt.want {
				t.Errorf("BuildPriceQuery = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAggregatePrices(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   models.PriceReport
	}{
		{
			name:   "odd count",
			prices: []float64{30, 10, 20},
			want:   models.PriceReport{Count: 3, Average: 20, Median: 20, Min: 10, Max: 30},
		},
		{
			name:   "even count averages middle pair",
			prices: []float64{40, 10, 30, 20},
			want:   models.PriceReport{Count: 4, Average: 25, Median: 25, Min: 10, Max: 40},
		},
		{
			name:   "single sale",
			prices: []float64{149.99},
			want:   models.PriceReport{Count: 1, Average: 149.99, Median: 149.99, Min: 149.99, Max: 149.99},
		},
		{
			name:   "rounds to cents",
			prices: []float64{99.99, 120, 150.5},
			want:   models.PriceReport{Count: 3, Average: 123.5, Median: 120, Min: 99.99, Max: 150.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregatePrices(tt.prices)
			if got == nil {
				t.Fatal("AggregatePrices returned nil for non-empty input")
			}
			if *got != tt.want {
				t.Errorf("AggregatePrices = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestAggregatePricesEmpty(t *testing.T) {
	if got := AggregatePrices(nil); got != nil {
		t.Errorf("AggregatePrices(nil) = %+v, want nil", got)
	}
	if got := AggregatePrices([]float64{}); got != nil {
		t.Errorf("AggregatePrices(empty) = %+v, want nil", got)
	}
}

func TestAggregatePricesDoesNotMutateInput(t *testing.T) {
	prices := []float64{30, 10, 20}
	AggregatePrices(prices)
	if prices[0] != 30 || prices[1] != 10 || prices[2] != 20 {
		t.Errorf("input slice reordered: %v", prices)
	}
}
