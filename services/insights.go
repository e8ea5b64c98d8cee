package services

import (
	"fmt"
	"sort"
	"strings"

	"card-lister/models"
	"card-lister/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the batch analytics over processed listings.
func (s *InsightService) Generate(results []*models.ListingResult) *models.BatchReport {
	report := &models.BatchReport{
		CardsBySport: make(map[string]int),
	}
	if len(results) == 0 {
		return report
	}

	report.TotalCards = len(results)

	var scoreTotal int
	var priceTotal float64
	for _, r := range results {
		scoreTotal += r.TitleReport.Score
		if !r.TitleReport.Under80 {
			report.TitlesOver80++
		}
		if report.TopScored == nil || r.TitleReport.Score > report.TopScored.TitleReport.Score {
			report.TopScored = r
		}
		report.CardsBySport[r.Card.Sport]++

		if r.Pricing != nil {
			report.PricedCards++
			priceTotal += r.Pricing.Median
			if report.MinPrice == 0 || r.Pricing.Min < report.MinPrice {
				report.MinPrice = r.Pricing.Min
			}
			if r.Pricing.Max > report.MaxPrice {
				report.MaxPrice = r.Pricing.Max
			}
		}
	}

	report.AverageScore = round2(float64(scoreTotal) / float64(len(results)))
	if report.PricedCards > 0 {
		report.AveragePrice = round2(priceTotal / float64(report.PricedCards))
	}

	return report
}

// Print renders the batch report to the terminal.
func (s *InsightService) Print(r *models.BatchReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 BATCH LISTING INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Cards processed      : \033[1m%d\033[0m\n", r.TotalCards)
	fmt.Printf("  Average title score  : \033[1m%.1f/100\033[0m\n", r.AverageScore)
	fmt.Printf("  Titles over 80 chars : \033[1m%d\033[0m\n", r.TitlesOver80)
	fmt.Println()

	fmt.Printf("\033[1;33m  Pricing (median per card)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.PricedCards > 0 {
		fmt.Printf("  Cards with sales data : \033[1m%d\033[0m\n", r.PricedCards)
		fmt.Printf("  Average median price  : \033[1;32m$%.2f\033[0m\n", r.AveragePrice)
		fmt.Printf("  Observed price range  : \033[1;32m$%.2f to $%.2f\033[0m\n", r.MinPrice, r.MaxPrice)
	} else {
		fmt.Printf("  No pricing data available\n")
	}
	fmt.Println()

	if r.TopScored != nil {
		fmt.Printf("\033[1;33m  Best Optimized Title\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n", r.TopScored.Title)
		fmt.Printf("  Score : \033[1;32m%d/100\033[0m  Length : %d/80\n",
			r.TopScored.TitleReport.Score, r.TopScored.TitleReport.Length)
		fmt.Println()
	}

	fmt.Printf("\033[1;33m  Cards by Sport\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.CardsBySport) == 0 {
		fmt.Printf("  No sport data\n")
	} else {
		type sportCount struct {
			sport string
			count int
		}
		var sports []sportCount
		for sport, cnt := range r.CardsBySport {
			sports = append(sports, sportCount{sport, cnt})
		}
		sort.Slice(sports, func(i, j int) bool {
			return sports[i].count > sports[j].count
		})
		for _, sc := range sports {
			bar := strings.Repeat("█", sc.count)
			fmt.Printf("  %-20s %s (%d)\n", sc.sport, bar, sc.count)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}
