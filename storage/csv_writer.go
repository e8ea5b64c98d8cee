package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"card-lister/models"
)

// resultColumns is the header for batch result files: the original inputs
// followed by everything the pipeline generated.
var resultColumns = []string{
	"player", "year", "card_set", "card_number", "sport", "attributes",
	"grader", "grade", "parallel_variety", "insert_set", "autographed",
	"autograph_auth", "team", "manufacturer", "card_condition", "card_type",
	"title", "title_length", "optimization_score", "category_id",
	"category_name", "tracking_sku", "avg_price", "median_price",
	"price_range", "sales_count",
}

// CSVWriter writes processed listing results to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(resultColumns); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one row per processed listing.
func (c *CSVWriter) Write(results []*models.ListingResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range results {
		avgPrice, medianPrice, priceRange, salesCount := "N/A", "N/A", "N/A", "N/A"
		if r.Pricing != nil {
			avgPrice = fmt.Sprintf("%.2f", r.Pricing.Average)
			medianPrice = fmt.Sprintf("%.2f", r.Pricing.Median)
			priceRange = fmt.Sprintf("$%.2f-$%.2f", r.Pricing.Min, r.Pricing.Max)
			salesCount = strconv.Itoa(r.Pricing.Count)
		}

		card := r.Card
		row := []string{
			card.Player, card.Year, card.CardSet, card.CardNumber, card.Sport,
			card.Attributes, card.Grader, card.Grade, card.ParallelVariety,
			card.InsertSet, card.Autographed, card.AutographAuth, card.Team,
			card.Manufacturer, card.CardCondition, card.CardType,
			r.Title,
			strconv.Itoa(r.TitleReport.Length),
			strconv.Itoa(r.TitleReport.Score),
			r.CategoryID,
			r.CategoryName,
			r.TrackingSKU,
			avgPrice, medianPrice, priceRange, salesCount,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
