package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"card-lister/config"
	"card-lister/models"
	"card-lister/scraper/ebay"
	"card-lister/services"
	"card-lister/storage"
	"card-lister/utils"
)

var (
	batchFile    string
	outputFile   string
	makeTemplate bool
	noPricing    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "card-lister",
		Short: "Generate Cassini-optimized eBay listings for sports cards",
		Long: "card-lister turns structured card attributes into a complete eBay listing:\n" +
			"an optimized title, category, item specifics, HTML description, tracking SKU,\n" +
			"and a price estimate from recently sold comparables.",
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&batchFile, "batch", "b", "", "process cards from a CSV file")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output CSV file for batch results")
	rootCmd.Flags().BoolVarP(&makeTemplate, "template", "t", false, "create a CSV template file")
	rootCmd.Flags().BoolVar(&noPricing, "no-pricing", false, "skip pricing analysis (faster)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetDebug(cfg.Debug)

	if makeTemplate {
		if err := storage.WriteTemplate("card_template.csv"); err != nil {
			return err
		}
		logger.Info("CSV template created: card_template.csv")
		logger.Info("Edit it with your card details and rerun with --batch card_template.csv")
		return nil
	}

	var prices services.PriceSource
	if !noPricing {
		prices = ebay.New(cfg, logger)
	}
	lister := services.NewLister(logger, prices, cfg.MaxConcurrency, cfg.RateLimitMs)

	if batchFile != "" {
		return runBatch(cmd.Context(), cfg, logger, lister)
	}
	return runInteractive(cmd.Context(), logger, lister)
}

func runBatch(ctx context.Context, cfg *config.Config, logger *utils.Logger, lister *services.Lister) error {
	logger.Info("=== Card Listing Assistant: batch mode ===")

	cards, err := storage.NewCSVReader(logger).Load(batchFile)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		return fmt.Errorf("no usable cards in %s", batchFile)
	}

	results := lister.BatchProcess(ctx, cards)
	if len(results) == 0 {
		return fmt.Errorf("all %d cards failed to process", len(cards))
	}

	outPath := outputFile
	if outPath == "" {
		outPath = cfg.CSVOutputPath
	}
	csvWriter, err := storage.NewCSVWriter(outPath)
	if err != nil {
		return err
	}
	defer csvWriter.Close()

	if err := csvWriter.Write(results); err != nil {
		logger.Error("CSV write failed: %v", err)
	} else {
		logger.Info("Results saved to %s", outPath)
	}

	// Postgres is optional in batch mode; a missing database costs only
	// persistence, not the run.
	if pgWriter, err := storage.NewPostgresWriter(cfg.DSN()); err != nil {
		logger.Warn("PostgreSQL unavailable, skipping persistence: %v", err)
	} else {
		defer pgWriter.Close()
		if err := pgWriter.Write(results); err != nil {
			logger.Error("PostgreSQL write failed: %v", err)
		} else if stored, err := pgWriter.FetchAll(); err == nil {
			logger.Info("Results stored in PostgreSQL (table: listings, %d all-time)", len(stored))
		} else {
			logger.Info("Results stored in PostgreSQL (table: listings)")
		}
	}

	insightSvc := services.NewInsightService(logger)
	insightSvc.Print(insightSvc.Generate(results))

	fmt.Printf("\n--- EXAMPLE OUTPUT (First Card) ---\n")
	printResult(results[0])
	return nil
}

func runInteractive(ctx context.Context, logger *utils.Logger, lister *services.Lister) error {
	card, err := promptCardDetails()
	if err != nil {
		return err
	}

	result, err := lister.ProcessCard(ctx, card)
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

// promptCardDetails gathers card information from the user via prompts.
func promptCardDetails() (*models.CardAttributes, error) {
	fmt.Println("\n--- Enter Card Details ---")
	scanner := bufio.NewScanner(os.Stdin)
	ask := func(prompt string) string {
		fmt.Print(prompt)
		if !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}

	card := &models.CardAttributes{
		Player:          ask("Player/Athlete Name: "),
		Year:            ask("Year/Season: "),
		CardSet:         ask("Card Brand/Set (e.g., Topps Chrome, Panini Chronicles): "),
		CardNumber:      ask("Card Number (e.g., FX-JWD): "),
		Sport:           strings.ToLower(ask("Sport (baseball, basketball, football, hockey, wrestling, etc.): ")),
		Attributes:      ask("Special Attributes (e.g., Rookie, RC, Auto, Refractor, /99): "),
		Grader:          strings.ToUpper(ask("Grader (e.g., PSA, BGS, SGC) [leave blank if raw]: ")),
		Grade:           ask("Grade (e.g., 10, 9.5) [leave blank if raw]: "),
		ParallelVariety: ask("Parallel/Variety (e.g., Red Prizm, Gold, /99) [optional]: "),
		InsertSet:       ask("Insert Set (e.g., Flux Auto Red) [optional]: "),
		Autographed:     ask("Autographed (Yes/No) [optional]: "),
		AutographAuth:   ask("Autograph Authentication (e.g., Panini Authentic) [optional]: "),
		Team:            ask("Team/League (e.g., WWE, Lakers, Yankees) [optional]: "),
		Manufacturer:    ask("Manufacturer (e.g., Panini, Topps, Upper Deck) [optional]: "),
		EventTournament: ask("Event/Tournament (e.g., Olympic Games, Super Bowl) [optional]: "),
		CardCondition:   ask("Card Condition (Near Mint, Excellent, etc.) [optional]: "),
		CardType:        ask("Card Type (Standard, Jumbo, etc.) [optional]: "),
		PricingType:     ask("Pricing Type (Auction, Buy It Now) [optional]: "),
		AllowOffers:     ask("Allow Offers (Yes/No) [optional]: "),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, scanner.Err()
}

// printResult renders one processed listing as copy-paste-ready output.
func printResult(r *models.ListingResult) {
	line := strings.Repeat("=", 50)
	thin := strings.Repeat("-", 42)

	fmt.Printf("\n%s\n", line)
	fmt.Println("      >>> COPY-PASTE YOUR OPTIMIZED LISTING <<<")
	fmt.Printf("%s\n\n", line)

	fmt.Println("1. CASSINI-OPTIMIZED TITLE:")
	fmt.Println(thin)
	fmt.Println(r.Title)
	fmt.Printf("Length: %d/80 characters\n", r.TitleReport.Length)
	fmt.Printf("Optimization Score: %d/100\n", r.TitleReport.Score)
	if len(r.TitleReport.Recommendations) > 0 {
		fmt.Println("Recommendations:")
		for _, rec := range r.TitleReport.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
	if len(r.TitleReport.KeywordDensity) > 0 {
		fmt.Println("Keyword Density:")
		keywords := make([]string, 0, len(r.TitleReport.KeywordDensity))
		for k := range r.TitleReport.KeywordDensity {
			keywords = append(keywords, k)
		}
		sort.Strings(keywords)
		for _, k := range keywords {
			fmt.Printf("  - %q: %d\n", k, r.TitleReport.KeywordDensity[k])
		}
	}
	fmt.Println()

	fmt.Println("2. SUGGESTED EBAY CATEGORY:")
	fmt.Println(thin)
	fmt.Printf("%s -> ID: %s\n\n", r.CategoryName, r.CategoryID)

	fmt.Println("3. PRICING ANALYSIS (from recent sales):")
	fmt.Println(thin)
	if r.Pricing != nil {
		fmt.Printf("   - Listings Found: %d\n", r.Pricing.Count)
		fmt.Printf("   - Average Price:  $%.2f\n", r.Pricing.Average)
		fmt.Printf("   - Median Price:   $%.2f (often the best indicator)\n", r.Pricing.Median)
		fmt.Printf("   - Price Range:    $%.2f to $%.2f\n", r.Pricing.Min, r.Pricing.Max)
		fmt.Println("RECOMMENDATION: Price your card around the median price for a quick sale.")
	} else {
		fmt.Println("Could not retrieve pricing data. Please research manually.")
	}
	fmt.Println()

	fmt.Println("4. CUSTOM SKU (for Analytics Tracking):")
	fmt.Println(thin)
	fmt.Printf("%s\n\n", r.TrackingSKU)

	fmt.Println("5. ITEM SPECIFICS:")
	fmt.Println(thin)
	fields := make([]string, 0, len(r.Specifics))
	for field := range r.Specifics {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if r.Specifics[field] != "" {
			fmt.Printf("- %s: %s\n", field, r.Specifics[field])
		}
	}
	fmt.Println()

	fmt.Println("6. HTML DESCRIPTION (paste into the HTML tab of the description box):")
	fmt.Println(thin)
	fmt.Println(r.HTMLDescription)
}
