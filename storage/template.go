package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// templateColumns is the batch input header.
var templateColumns = []string{
	"player", "year", "card_set", "card_number", "sport", "attributes",
	"grader", "grade", "parallel_variety", "insert_set", "autographed",
	"autograph_auth", "team", "manufacturer", "event_tournament",
	"card_condition", "card_type", "pricing_type", "allow_offers",
}

// templateRows are worked examples covering a graded vintage rookie, a raw
// modern autograph, and a serial-numbered patch auto.
var templateRows = [][]string{
	{"Michael Jordan", "1986", "Fleer", "57", "basketball", "Rookie RC",
		"PSA", "10", "", "", "", "", "Chicago Bulls", "Fleer", "",
		"Near Mint", "Standard", "Buy It Now", "Yes"},
	{"Joaquin Wilde", "2022", "Panini Chronicles WWE", "FX-JWD", "wrestling", "Auto",
		"", "", "Red Prizm", "Flux Auto Red", "Yes", "Panini Authentic", "WWE", "Panini", "",
		"Near Mint", "Standard", "Auction", "No"},
	{"LeBron James", "2023", "Panini Prizm", "1", "basketball", "Rookie RC Patch Auto /25",
		"PSA", "9", "Gold Refractor", "Rookie Patch Auto", "Yes", "Panini Authentic", "Lakers", "Panini", "",
		"Near Mint", "Standard", "Buy It Now", "Yes"},
}

// WriteTemplate creates a starter batch CSV with sample rows ready to edit.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("csv: create template dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create template %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(templateColumns); err != nil {
		return fmt.Errorf("csv: write template header: %w", err)
	}
	for _, row := range templateRows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write template row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
