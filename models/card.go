package models

import (
	"fmt"
	"strings"
	"time"
)

// CardAttributes holds the raw card details for one listing, as entered
// interactively or parsed from a CSV row. It is never mutated once built.
type CardAttributes struct {
	Player     string
	Year       string
	CardSet    string
	CardNumber string
	Sport      string // lowercase key, e.g. "basketball"
	Attributes string // free text, e.g. "Rookie RC Auto Refractor"

	Grader          string
	Grade           string
	ParallelVariety string
	InsertSet       string
	Autographed     string
	AutographAuth   string
	Team            string
	Manufacturer    string
	EventTournament string
	CardCondition   string
	CardType        string
	PricingType     string
	AllowOffers     string
}

// Validate checks the required fields at the boundary. The inference and
// title pipeline assumes these are present and non-empty.
func (c *CardAttributes) Validate() error {
	required := []struct {
		name, value string
	}{
		{"player", c.Player},
		{"year", c.Year},
		{"card_set", c.CardSet},
		{"card_number", c.CardNumber},
		{"sport", c.Sport},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("card: missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Key identifies a card for duplicate detection within a batch.
func (c *CardAttributes) Key() string {
	return strings.ToLower(strings.Join(
		[]string{c.Player, c.Year, c.CardSet, c.CardNumber}, "|"))
}

// InferredSpecifics maps eBay item-specific field names to inferred values.
// Fields with no inferred value are simply absent from the map.
type InferredSpecifics map[string]string

// TitleSegment is one named piece of a listing title.
type TitleSegment struct {
	Name string
	Text string
}

// TitleCandidate is a built listing title: the surviving segments in order,
// the joined string, and its length. OverLimit is set when the title still
// exceeds the 80-character cap after every droppable segment was removed.
type TitleCandidate struct {
	Segments  []TitleSegment
	Title     string
	Length    int
	OverLimit bool
}

// OptimizationReport scores a finished title against the source attributes.
type OptimizationReport struct {
	Title           string
	Length          int
	Under80         bool
	Score           int // 0–100
	KeywordDensity  map[string]int
	Recommendations []string
}

// PriceReport aggregates observed sale prices for comparable listings.
type PriceReport struct {
	Count   int
	Average float64
	Median  float64
	Min     float64
	Max     float64
}

// ListingResult bundles everything generated for one card.
type ListingResult struct {
	Card            *CardAttributes
	Title           string
	TitleReport     *OptimizationReport
	CategoryID      string
	CategoryName    string
	Specifics       InferredSpecifics
	TrackingSKU     string
	HTMLDescription string
	Pricing         *PriceReport // nil when pricing was skipped or found nothing
	ProcessedAt     time.Time
}

// StoredListing is the persisted summary row for a processed listing.
type StoredListing struct {
	ID          int64
	TrackingSKU string
	Player      string
	Year        string
	CardSet     string
	CardNumber  string
	Sport       string
	Title       string
	TitleLength int
	Score       int
	CategoryID  string
	AvgPrice    float64
	MedianPrice float64
	CreatedAt   time.Time
}

// BatchReport holds the computed analytics over a processed batch.
type BatchReport struct {
	TotalCards   int
	AverageScore float64
	TitlesOver80 int
	PricedCards  int
	AveragePrice float64
	MinPrice     float64
	MaxPrice     float64
	TopScored    *ListingResult
	CardsBySport map[string]int
}
