package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"card-lister/models"
	"card-lister/utils"
)

// CSVReader loads card batches from CSV files. Rows with missing required
// fields are dropped with a warning; exact duplicates (same player, year,
// set and number) are loaded once.
type CSVReader struct {
	logger *utils.Logger
}

// NewCSVReader creates a CSVReader with the given logger.
func NewCSVReader(logger *utils.Logger) *CSVReader {
	return &CSVReader{logger: logger}
}

// Load reads a batch CSV. The header row names the columns; missing
// optional columns simply leave their fields empty.
func (r *CSVReader) Load(path string) ([]*models.CardAttributes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read %q: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("csv: %q has no data rows", path)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	seen := utils.NewStringSet()
	cards := make([]*models.CardAttributes, 0, len(rows)-1)

	for n, row := range rows[1:] {
		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		card := &models.CardAttributes{
			Player:          field("player"),
			Year:            field("year"),
			CardSet:         field("card_set"),
			CardNumber:      field("card_number"),
			Sport:           strings.ToLower(field("sport")),
			Attributes:      field("attributes"),
			Grader:          strings.ToUpper(field("grader")),
			Grade:           field("grade"),
			ParallelVariety: field("parallel_variety"),
			InsertSet:       field("insert_set"),
			Autographed:     field("autographed"),
			AutographAuth:   field("autograph_auth"),
			Team:            field("team"),
			Manufacturer:    field("manufacturer"),
			EventTournament: field("event_tournament"),
			CardCondition:   field("card_condition"),
			CardType:        field("card_type"),
			PricingType:     field("pricing_type"),
			AllowOffers:     field("allow_offers"),
		}

		if err := card.Validate(); err != nil {
			r.logger.Warn("[csv] Dropping row %d: %v", n+2, err)
			continue
		}
		if !seen.Add(card.Key()) {
			r.logger.Debug("[csv] Duplicate card skipped at row %d: %s", n+2, card.Key())
			continue
		}

		cards = append(cards, card)
	}

	r.logger.Info("[csv] Loaded %d cards from %s (%d rows dropped)",
		len(cards), path, len(rows)-1-len(cards))
	return cards, nil
}
